package crophealth

import (
	"sort"
	"time"
)

// Dataset is an ordered stack of observations sharing one pixel grid.
// Observations are strictly ascending by acquisition time, ties between
// different sources broken by source name.
type Dataset struct {
	Grid         Grid          `json:"grid"`
	Observations []Observation `json:"observations"`
}

func (d *Dataset) Len() int {
	return len(d.Observations)
}

// Window returns the acquisition times of the first and last observation.
func (d *Dataset) Window() (time.Time, time.Time) {
	if len(d.Observations) == 0 {
		return time.Time{}, time.Time{}
	}
	return d.Observations[0].Time, d.Observations[len(d.Observations)-1].Time
}

// Sources lists the distinct source names present, in first seen order.
func (d *Dataset) Sources() []string {
	seen := map[string]bool{}
	var names []string
	for _, obs := range d.Observations {
		if !seen[obs.Source] {
			seen[obs.Source] = true
			names = append(names, obs.Source)
		}
	}
	return names
}

// mergeObservations orders observations by acquisition time and drops
// duplicate timestamps coming from the same source.
func mergeObservations(observations []Observation) []Observation {
	sort.SliceStable(observations, func(i, j int) bool {
		if !observations[i].Time.Equal(observations[j].Time) {
			return observations[i].Time.Before(observations[j].Time)
		}
		return observations[i].Source < observations[j].Source
	})

	merged := make([]Observation, 0, len(observations))
	for _, obs := range observations {
		if len(merged) > 0 {
			last := merged[len(merged)-1]
			if last.Time.Equal(obs.Time) && last.Source == obs.Source {
				continue
			}
		}
		merged = append(merged, obs)
	}
	return merged
}
