package crophealth

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrisight/agrisight-cli/internal/properties"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

// Area is a named paddock polygon, WGS84 with longitude before latitude.
type Area struct {
	Farm    string
	Paddock string
	Polygon orb.Polygon
}

func (a Area) Bound() orb.Bound {
	return a.Polygon.Bound()
}

func (a Area) Centroid() orb.Point {
	centroid, _ := planar.CentroidArea(a.Polygon)
	return centroid
}

// LoadArea reads the paddock polygon from the farm's GeoJSON file under the
// data root. Features are matched on their paddock_id property.
func LoadArea(farm, paddock string) (Area, error) {
	path := farmGeoJSONPath(farm)
	data, err := os.ReadFile(path)
	if err != nil {
		return Area{}, fmt.Errorf("failed to read farm geojson: %v", err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Area{}, fmt.Errorf("failed to parse farm geojson %s: %v", path, err)
	}

	for _, feature := range collection.Features {
		if feature.Properties.MustString("paddock_id", "") != paddock {
			continue
		}
		switch geom := feature.Geometry.(type) {
		case orb.Polygon:
			return Area{Farm: farm, Paddock: paddock, Polygon: geom}, nil
		case orb.MultiPolygon:
			if len(geom) > 0 {
				return Area{Farm: farm, Paddock: paddock, Polygon: geom[0]}, nil
			}
		}
	}
	return Area{}, fmt.Errorf("paddock %s not found in %s", paddock, path)
}

// PaddockIDs lists the paddock identifiers declared in a farm's GeoJSON file.
func PaddockIDs(farm string) ([]string, error) {
	data, err := os.ReadFile(farmGeoJSONPath(farm))
	if err != nil {
		return nil, fmt.Errorf("failed to read farm geojson: %v", err)
	}

	collection, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse farm geojson: %v", err)
	}

	var ids []string
	for _, feature := range collection.Features {
		if id := feature.Properties.MustString("paddock_id", ""); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func farmGeoJSONPath(farm string) string {
	return filepath.Join(properties.DataRoot(), "geojsons", farm+".geojson")
}
