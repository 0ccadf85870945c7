package explorer

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// InvalidSelectionError reports a drawn region that encloses no area.
type InvalidSelectionError struct {
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection: %s", e.Reason)
}

// RegionSelection is a closed region drawn over the dataset extent,
// vertices in longitude latitude order.
type RegionSelection struct {
	ring orb.Ring
}

// NewRegionSelection builds a selection from drawn vertices, closing the
// ring automatically. Selections with fewer than three distinct vertices or
// enclosing no area are rejected with an *InvalidSelectionError.
func NewRegionSelection(vertices []orb.Point) (*RegionSelection, error) {
	distinct := make([]orb.Point, 0, len(vertices))
	for _, vertex := range vertices {
		if len(distinct) > 0 && distinct[len(distinct)-1] == vertex {
			continue
		}
		distinct = append(distinct, vertex)
	}
	if len(distinct) > 1 && distinct[0] == distinct[len(distinct)-1] {
		distinct = distinct[:len(distinct)-1]
	}
	if len(distinct) < 3 {
		return nil, &InvalidSelectionError{Reason: "a region needs at least three distinct vertices"}
	}

	ring := orb.Ring(distinct)
	ring = append(ring, ring[0])
	if math.Abs(planar.Area(ring)) == 0 {
		return nil, &InvalidSelectionError{Reason: "the drawn region encloses no area"}
	}
	return &RegionSelection{ring: ring}, nil
}

// SelectionFromPolygon wraps an existing polygon's outer ring, used when a
// whole paddock boundary is explored instead of a hand drawn region.
func SelectionFromPolygon(polygon orb.Polygon) (*RegionSelection, error) {
	if len(polygon) == 0 {
		return nil, &InvalidSelectionError{Reason: "polygon has no outer ring"}
	}
	return NewRegionSelection([]orb.Point(polygon[0]))
}

func (r *RegionSelection) Ring() orb.Ring {
	return r.ring
}

func (r *RegionSelection) Bound() orb.Bound {
	return r.ring.Bound()
}

func (r *RegionSelection) Area() float64 {
	return math.Abs(planar.Area(r.ring))
}

func (r *RegionSelection) Contains(point orb.Point) bool {
	return planar.RingContains(r.ring, point)
}
