package explorer

import (
	"testing"
	"time"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sessionGrid is a 4x4 grid of 0.01 degree pixels anchored at 150E 30S,
// pixel centers at 150.005 + 0.01x and -30.005 - 0.01y.
func sessionGrid() crophealth.Grid {
	return crophealth.Grid{
		Width:        4,
		Height:       4,
		GeoTransform: [6]float64{150.0, 0.01, 0, -30.0, 0, -0.01},
		EPSG:         4326,
	}
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func uniformObservation(date time.Time, source string, grid crophealth.Grid, value float64) crophealth.Observation {
	count := grid.PixelCount()
	ndvi := make([]float64, count)
	valid := make([]bool, count)
	for i := 0; i < count; i++ {
		ndvi[i] = value
		valid[i] = true
	}
	return crophealth.Observation{Time: date, Source: source, NDVI: ndvi, Valid: valid, Coverage: 1.0}
}

func mustSelection(t *testing.T, vertices ...orb.Point) *RegionSelection {
	t.Helper()
	selection, err := NewRegionSelection(vertices)
	require.NoError(t, err)
	return selection
}

// leftHalfSelection covers grid columns 0 and 1, eight pixels.
func leftHalfSelection(t *testing.T) *RegionSelection {
	t.Helper()
	return mustSelection(t,
		orb.Point{150.0, -30.0}, orb.Point{150.02, -30.0},
		orb.Point{150.02, -30.04}, orb.Point{150.0, -30.04})
}

func TestDrawPolygonMeanOverRegion(t *testing.T) {
	grid := sessionGrid()
	uneven := uniformObservation(day(time.March, 6), "s2b", grid, 0.6)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < 2; x++ {
			uneven.NDVI[y*grid.Width+x] = 0.2
		}
	}
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{
		uniformObservation(day(time.March, 1), "s2a", grid, 0.8),
		uneven,
	}}

	session := NewSession(dataset)
	series, err := session.DrawPolygon("west strip", leftHalfSelection(t))
	require.NoError(t, err)

	assert.Equal(t, "west strip", series.Label)
	require.Len(t, series.Points, 2)

	first := series.Points[0]
	assert.Equal(t, day(time.March, 1), first.Date)
	assert.Equal(t, "s2a", first.Source)
	assert.True(t, first.Valid)
	assert.InDelta(t, 0.8, first.MeanNDVI, 1e-9)
	assert.Equal(t, 8, first.RegionPixels)
	assert.Equal(t, 8, first.GoodPixels)

	second := series.Points[1]
	assert.True(t, second.Valid)
	assert.InDelta(t, 0.2, second.MeanNDVI, 1e-9, "mean covers only the pixels inside the region")

	require.Len(t, session.Series(), 1)
}

func TestDrawPolygonCoverageRule(t *testing.T) {
	grid := sessionGrid()
	half := uniformObservation(day(time.March, 1), "s2a", grid, 0.6)
	for _, idx := range []int{0, 1, 4, 5} { // 4 of the 8 region pixels
		half.Valid[idx] = false
	}
	majority := uniformObservation(day(time.March, 6), "s2a", grid, 0.6)
	for _, idx := range []int{0, 1, 4} { // 5 of 8 stay usable
		majority.Valid[idx] = false
	}
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{half, majority}}

	session := NewSession(dataset)
	series, err := session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)
	require.Len(t, series.Points, 2)

	gap := series.Points[0]
	assert.False(t, gap.Valid, "half coverage does not exceed the threshold")
	assert.Zero(t, gap.MeanNDVI)
	assert.Equal(t, 4, gap.GoodPixels)
	assert.Equal(t, 8, gap.RegionPixels)

	kept := series.Points[1]
	assert.True(t, kept.Valid)
	assert.Equal(t, 5, kept.GoodPixels)
	assert.InDelta(t, 0.6, kept.MeanNDVI, 1e-9)
}

func TestDrawPolygonOutsideExtent(t *testing.T) {
	grid := sessionGrid()
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{
		uniformObservation(day(time.March, 1), "s2a", grid, 0.8),
	}}
	session := NewSession(dataset)

	var received []*Series
	session.OnSeries(func(series *Series) { received = append(received, series) })
	var failures []error
	session.OnError(func(err error) { failures = append(failures, err) })

	session.HandleEvent(PolygonDrawn{Label: "far away", Selection: mustSelection(t,
		orb.Point{151.0, -30.0}, orb.Point{151.01, -30.0}, orb.Point{151.01, -30.01})})

	require.Len(t, received, 1)
	assert.True(t, received[0].Empty())
	assert.Empty(t, failures)
	assert.Empty(t, session.Series(), "an empty series is reported but not accumulated")
	assert.False(t, session.Closed())
}

func TestHandleEventNilSelection(t *testing.T) {
	grid := sessionGrid()
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{
		uniformObservation(day(time.March, 1), "s2a", grid, 0.8),
	}}
	session := NewSession(dataset)

	var failures []error
	session.OnError(func(err error) { failures = append(failures, err) })

	session.HandleEvent(PolygonDrawn{Label: "broken"})

	require.Len(t, failures, 1)
	var invalid *InvalidSelectionError
	require.ErrorAs(t, failures[0], &invalid)
	assert.Empty(t, session.Series())
	assert.False(t, session.Closed(), "a bad draw never ends the session")

	// The session keeps working after the failure.
	_, err := session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)
	assert.Len(t, session.Series(), 1)
}

func TestSeriesAccumulateAcrossDraws(t *testing.T) {
	grid := sessionGrid()
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{
		uniformObservation(day(time.March, 1), "s2a", grid, 0.8),
	}}
	session := NewSession(dataset)

	_, err := session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)
	_, err = session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)
	_, err = session.DrawPolygon("homestead", leftHalfSelection(t))
	require.NoError(t, err)

	all := session.Series()
	require.Len(t, all, 3)
	assert.Equal(t, "selection 1", all[0].Label)
	assert.Equal(t, "selection 2", all[1].Label)
	assert.Equal(t, "homestead", all[2].Label)
}

func TestSelectionClearedResetsSeries(t *testing.T) {
	grid := sessionGrid()
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{
		uniformObservation(day(time.March, 1), "s2a", grid, 0.8),
	}}
	session := NewSession(dataset)

	_, err := session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)
	_, err = session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)

	session.HandleEvent(SelectionCleared{})
	assert.Empty(t, session.Series())

	// The draw counter resets with the series.
	series, err := session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)
	assert.Equal(t, "selection 1", series.Label)
}

func TestSessionClosedIgnoresLaterEvents(t *testing.T) {
	grid := sessionGrid()
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{
		uniformObservation(day(time.March, 1), "s2a", grid, 0.8),
	}}
	session := NewSession(dataset)

	var received []*Series
	session.OnSeries(func(series *Series) { received = append(received, series) })

	session.HandleEvent(SessionClosed{})
	assert.True(t, session.Closed())

	session.HandleEvent(PolygonDrawn{Label: "late", Selection: leftHalfSelection(t)})
	assert.Empty(t, received)
	assert.Empty(t, session.Series())
}

func TestSessionLeavesDatasetUntouched(t *testing.T) {
	grid := sessionGrid()
	obs := uniformObservation(day(time.March, 1), "s2a", grid, 0.8)
	obs.Valid[3] = false
	obs.NDVI[3] = 0
	dataset := &crophealth.Dataset{Grid: grid, Observations: []crophealth.Observation{obs}}

	ndviBefore := append([]float64(nil), obs.NDVI...)
	validBefore := append([]bool(nil), obs.Valid...)

	session := NewSession(dataset)
	_, err := session.DrawPolygon("", leftHalfSelection(t))
	require.NoError(t, err)
	session.HandleEvent(SelectionCleared{})

	assert.Equal(t, ndviBefore, dataset.Observations[0].NDVI)
	assert.Equal(t, validBefore, dataset.Observations[0].Valid)
	assert.Same(t, dataset, session.Dataset())
}

func TestSessionIDsAreUnique(t *testing.T) {
	dataset := &crophealth.Dataset{Grid: sessionGrid()}
	first := NewSession(dataset)
	second := NewSession(dataset)

	assert.NotEmpty(t, first.ID())
	assert.NotEqual(t, first.ID(), second.ID())
}
