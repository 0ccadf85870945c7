package crophealth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/schollz/progressbar/v3"
)

// Source queries one satellite archive product for raw acquisitions over an
// area. Implementations make a single attempt per call, retrying is not
// their business.
type Source interface {
	Name() string
	Query(ctx context.Context, area Area, window TimeRange) (Grid, []RawObservation, error)
}

type TimeRange struct {
	Start time.Time
	End   time.Time
}

func NewTimeRange(start, end time.Time) (TimeRange, error) {
	if end.Before(start) {
		return TimeRange{}, fmt.Errorf("time range end %s precedes start %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return TimeRange{Start: start, End: end}, nil
}

func (w TimeRange) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

const foldWorkers = 8

// Load queries every source once, masks and folds the returned acquisitions
// and merges the survivors into a single time ordered dataset. Acquisitions
// whose usable pixel fraction does not exceed GoodPixelThreshold are
// discarded. A source failure aborts the whole load with a *BackendError,
// an empty result after filtering yields a *DataUnavailableError.
func Load(ctx context.Context, area Area, window TimeRange, sources ...Source) (*Dataset, error) {
	if len(sources) == 0 {
		return nil, &BackendError{Err: errors.New("no sources configured")}
	}

	type sourceBatch struct {
		name string
		raws []RawObservation
	}

	var grid Grid
	var batches []sourceBatch
	total := 0
	for i, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, &BackendError{Source: src.Name(), Err: err}
		}
		sourceGrid, raws, err := src.Query(ctx, area, window)
		if err != nil {
			return nil, &BackendError{Source: src.Name(), Err: err}
		}
		if i == 0 {
			grid = sourceGrid
		} else if !grid.Equal(sourceGrid) {
			return nil, &BackendError{
				Source: src.Name(),
				Err: fmt.Errorf("pixel grid %dx%d does not match the %dx%d grid of %s",
					sourceGrid.Width, sourceGrid.Height, grid.Width, grid.Height, sources[0].Name()),
			}
		}
		batches = append(batches, sourceBatch{name: src.Name(), raws: raws})
		total += len(raws)
	}

	kept := make(map[string]int, len(sources))
	var folded []Observation

	if total > 0 {
		bar := progressbar.Default(int64(total), "masking observations")
		pool := workerpool.New(foldWorkers)
		var mu sync.Mutex
		var once sync.Once
		var errGlobal error

		for _, batch := range batches {
			for _, raw := range batch.raws {
				raw := raw
				name := batch.name
				pool.Submit(func() {
					defer bar.Add(1)
					obs, err := FoldObservation(raw, grid)
					if err != nil {
						once.Do(func() {
							errGlobal = &BackendError{Source: name, Err: err}
						})
						return
					}
					if obs.Coverage <= GoodPixelThreshold {
						return
					}
					mu.Lock()
					defer mu.Unlock()
					kept[name]++
					folded = append(folded, obs)
				})
			}
		}
		pool.StopWait()
		bar.Finish()

		if errGlobal != nil {
			return nil, errGlobal
		}
	}

	for _, batch := range batches {
		fmt.Printf("%s: kept %d of %d observations above %.0f%% usable pixels\n",
			batch.name, kept[batch.name], len(batch.raws), GoodPixelThreshold*100)
	}

	merged := mergeObservations(folded)
	if len(merged) == 0 {
		return nil, &DataUnavailableError{
			Farm:    area.Farm,
			Paddock: area.Paddock,
			Start:   window.Start,
			End:     window.End,
		}
	}

	return &Dataset{Grid: grid, Observations: merged}, nil
}
