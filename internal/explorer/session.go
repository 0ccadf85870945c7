package explorer

import (
	"fmt"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/google/uuid"
)

// SeriesHandler receives every series computed from a drawn region.
type SeriesHandler func(*Series)

// ErrorHandler receives recoverable interaction failures. The session keeps
// accepting events after each one.
type ErrorHandler func(error)

// Session owns one loaded dataset and turns drawing events into index time
// series. The dataset is never mutated, repeated draws accumulate series
// until the selection is cleared or the session closes.
type Session struct {
	id       string
	dataset  *crophealth.Dataset
	series   []*Series
	drawSeq  int
	closed   bool
	onSeries []SeriesHandler
	onError  []ErrorHandler
}

func NewSession(dataset *crophealth.Dataset) *Session {
	return &Session{id: uuid.NewString(), dataset: dataset}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Dataset() *crophealth.Dataset {
	return s.dataset
}

func (s *Session) Closed() bool {
	return s.closed
}

// Series returns the accumulated series in draw order.
func (s *Session) Series() []*Series {
	out := make([]*Series, len(s.series))
	copy(out, s.series)
	return out
}

func (s *Session) OnSeries(handler SeriesHandler) {
	s.onSeries = append(s.onSeries, handler)
}

func (s *Session) OnError(handler ErrorHandler) {
	s.onError = append(s.onError, handler)
}

// HandleEvent feeds one event through the session. Failures reach the error
// handlers, they never escape as panics and never end the session.
func (s *Session) HandleEvent(event Event) {
	if s.closed {
		return
	}
	switch ev := event.(type) {
	case PolygonDrawn:
		series, err := s.DrawPolygon(ev.Label, ev.Selection)
		if err != nil {
			s.fireError(err)
			return
		}
		for _, handler := range s.onSeries {
			handler(series)
		}
	case SelectionCleared:
		s.series = nil
		s.drawSeq = 0
	case SessionClosed:
		s.closed = true
	}
}

// DrawPolygon computes the mean index history inside a drawn region. Every
// observation yields one point, flagged invalid when the usable fraction of
// region pixels does not exceed the good pixel threshold. A region outside
// the dataset extent yields a series with no points, not an error.
func (s *Session) DrawPolygon(label string, selection *RegionSelection) (*Series, error) {
	if selection == nil {
		return nil, &InvalidSelectionError{Reason: "no region drawn"}
	}

	inside := regionPixels(s.dataset.Grid, selection)
	s.drawSeq++
	if label == "" {
		label = fmt.Sprintf("selection %d", s.drawSeq)
	}
	series := &Series{Label: label, Selection: selection}
	if len(inside) == 0 {
		return series, nil
	}

	for _, obs := range s.dataset.Observations {
		good := 0
		sum := 0.0
		for _, idx := range inside {
			if obs.Valid[idx] {
				good++
				sum += obs.NDVI[idx]
			}
		}
		point := SeriesPoint{
			Date:         obs.Time,
			Source:       obs.Source,
			GoodPixels:   good,
			RegionPixels: len(inside),
		}
		if float64(good)/float64(len(inside)) > crophealth.GoodPixelThreshold {
			point.MeanNDVI = sum / float64(good)
			point.Valid = true
		}
		series.Points = append(series.Points, point)
	}

	s.series = append(s.series, series)
	return series, nil
}

func (s *Session) fireError(err error) {
	for _, handler := range s.onError {
		handler(err)
	}
}

// regionPixels lists the grid pixels whose center falls inside the region.
func regionPixels(grid crophealth.Grid, selection *RegionSelection) []int {
	bound := selection.Bound()
	var inside []int
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			center := grid.PixelCenter(x, y)
			if !bound.Contains(center) {
				continue
			}
			if selection.Contains(center) {
				inside = append(inside, y*grid.Width+x)
			}
		}
	}
	return inside
}
