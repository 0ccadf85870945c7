package explorer

import (
	"time"

	"github.com/montanaflynn/stats"
)

// SeriesPoint is the mean index inside a drawn region for one acquisition.
// Valid is false when too few usable pixels fell inside the region, the
// mean is meaningless then and plots leave a gap.
type SeriesPoint struct {
	Date         time.Time `csv:"date" json:"date"`
	Source       string    `csv:"source" json:"source"`
	MeanNDVI     float64   `csv:"mean_ndvi" json:"mean_ndvi"`
	Valid        bool      `csv:"valid" json:"valid"`
	GoodPixels   int       `csv:"good_pixels" json:"good_pixels"`
	RegionPixels int       `csv:"region_pixels" json:"region_pixels"`
}

// Series is one region's index history over the dataset window. A series
// without points means the region fell outside the dataset extent.
type Series struct {
	Label     string
	Selection *RegionSelection
	Points    []SeriesPoint
}

func (s *Series) Empty() bool {
	return len(s.Points) == 0
}

// ValidValues returns the mean values of the points that passed the
// coverage rule, in time order.
func (s *Series) ValidValues() []float64 {
	var values []float64
	for _, point := range s.Points {
		if point.Valid {
			values = append(values, point.MeanNDVI)
		}
	}
	return values
}

// Summary aggregates the valid points of a series.
type Summary struct {
	Mean        float64
	Min         float64
	Max         float64
	StdDev      float64
	ValidPoints int
	TotalPoints int
}

func (s *Series) Summarize() Summary {
	values := s.ValidValues()
	summary := Summary{ValidPoints: len(values), TotalPoints: len(s.Points)}
	if len(values) == 0 {
		return summary
	}
	summary.Mean, _ = stats.Mean(values)
	summary.Min, _ = stats.Min(values)
	summary.Max, _ = stats.Max(values)
	summary.StdDev, _ = stats.StandardDeviation(values)
	return summary
}
