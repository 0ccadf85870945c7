package crophealth

import (
	"fmt"
	"math"
	"time"
)

// GoodPixelThreshold is the fraction of usable pixels an acquisition, or a
// drawn region within one, must exceed to be kept.
const GoodPixelThreshold = 0.5

// Scene classification values treated as unusable when masking. 0 is no
// data, 1 saturated or defective, 3 cloud shadow, 8 and 9 cloud medium and
// high probability, 10 thin cirrus.
var maskedSceneClasses = map[int]bool{
	0:  true,
	1:  true,
	3:  true,
	8:  true,
	9:  true,
	10: true,
}

// RawObservation carries the bands of a single acquisition exactly as the
// archive returned them, one value per grid pixel in row major order.
type RawObservation struct {
	Time   time.Time
	Source string
	Red    []float64
	NIR    []float64
	SCL    []float64
	CLD    []float64
}

// Observation is one acquisition folded down to its vegetation index.
// Coverage is the usable fraction of the grid after cloud and invalid data
// masking. Pixels flagged false in Valid carry no meaningful index value.
type Observation struct {
	Time     time.Time `json:"time"`
	Source   string    `json:"source"`
	NDVI     []float64 `json:"ndvi"`
	Valid    []bool    `json:"valid"`
	Coverage float64   `json:"coverage"`
}

func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

func calculateIndex(a, b float64) float64 {
	return safeDivide(a-b, a+b)
}

func pixelUsable(red, nir, scl, cld float64) bool {
	if math.IsNaN(red) || math.IsNaN(nir) || math.IsNaN(scl) || math.IsNaN(cld) {
		return false
	}
	if red < 0 || nir < 0 {
		return false
	}
	if cld > 0 {
		return false
	}
	return !maskedSceneClasses[int(scl)]
}

// FoldObservation masks clouded and invalid pixels and reduces the raw bands
// to NDVI. A pixel whose red and near infrared reflectances sum to zero has
// an undefined index and is flagged invalid instead of dividing by zero.
func FoldObservation(raw RawObservation, grid Grid) (Observation, error) {
	count := grid.PixelCount()
	if len(raw.Red) != count || len(raw.NIR) != count || len(raw.SCL) != count || len(raw.CLD) != count {
		return Observation{}, fmt.Errorf("observation %s from %s does not match the %dx%d grid",
			raw.Time.Format("2006-01-02"), raw.Source, grid.Width, grid.Height)
	}

	ndvi := make([]float64, count)
	valid := make([]bool, count)
	usable := 0
	for i := 0; i < count; i++ {
		if !pixelUsable(raw.Red[i], raw.NIR[i], raw.SCL[i], raw.CLD[i]) {
			continue
		}
		usable++
		if raw.NIR[i]+raw.Red[i] == 0 {
			continue
		}
		ndvi[i] = calculateIndex(raw.NIR[i], raw.Red[i])
		valid[i] = true
	}

	return Observation{
		Time:     raw.Time,
		Source:   raw.Source,
		NDVI:     ndvi,
		Valid:    valid,
		Coverage: float64(usable) / float64(count),
	}, nil
}

// GoodPixels counts the pixels carrying a usable index value.
func (o Observation) GoodPixels() int {
	count := 0
	for _, ok := range o.Valid {
		if ok {
			count++
		}
	}
	return count
}
