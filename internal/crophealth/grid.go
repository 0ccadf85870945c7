package crophealth

import (
	"math"

	"github.com/paulmach/orb"
)

// Grid describes the pixel layout shared by every observation in a dataset.
// GeoTransform holds the six affine coefficients mapping pixel column and row
// to longitude and latitude, in the order GDAL reports them.
type Grid struct {
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	GeoTransform [6]float64 `json:"geo_transform"`
	EPSG         int        `json:"epsg"`
}

func (g Grid) PixelCount() int {
	return g.Width * g.Height
}

// PixelCenter returns the longitude and latitude of the center of pixel (x, y).
func (g Grid) PixelCenter(x, y int) orb.Point {
	return g.transform(float64(x)+0.5, float64(y)+0.5)
}

// Bound returns the geographic extent covered by the grid.
func (g Grid) Bound() orb.Bound {
	corners := []orb.Point{
		g.transform(0, 0),
		g.transform(float64(g.Width), 0),
		g.transform(0, float64(g.Height)),
		g.transform(float64(g.Width), float64(g.Height)),
	}
	bound := orb.Bound{Min: corners[0], Max: corners[0]}
	for _, corner := range corners[1:] {
		bound = bound.Extend(corner)
	}
	return bound
}

// PixelAt maps a geographic point to the grid cell containing it. The third
// return value is false when the point falls outside the grid.
func (g Grid) PixelAt(point orb.Point) (int, int, bool) {
	det := g.GeoTransform[1]*g.GeoTransform[5] - g.GeoTransform[2]*g.GeoTransform[4]
	if det == 0 {
		return 0, 0, false
	}
	dx := point[0] - g.GeoTransform[0]
	dy := point[1] - g.GeoTransform[3]
	fx := (dx*g.GeoTransform[5] - dy*g.GeoTransform[2]) / det
	fy := (dy*g.GeoTransform[1] - dx*g.GeoTransform[4]) / det
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, 0, false
	}
	return x, y, true
}

func (g Grid) Equal(other Grid) bool {
	if g.Width != other.Width || g.Height != other.Height || g.EPSG != other.EPSG {
		return false
	}
	for i := range g.GeoTransform {
		if math.Abs(g.GeoTransform[i]-other.GeoTransform[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func (g Grid) transform(fx, fy float64) orb.Point {
	lon := g.GeoTransform[0] + fx*g.GeoTransform[1] + fy*g.GeoTransform[2]
	lat := g.GeoTransform[3] + fx*g.GeoTransform[4] + fy*g.GeoTransform[5]
	return orb.Point{lon, lat}
}
