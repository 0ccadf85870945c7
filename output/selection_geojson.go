package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrisight/agrisight-cli/internal/explorer"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ExportSelectionGeoJSON writes every drawn region with its summary as a
// feature collection, ready to drop onto any web map.
func ExportSelectionGeoJSON(seriesList []*explorer.Series, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create result folder: %v", err)
	}

	collection := geojson.NewFeatureCollection()
	for _, series := range seriesList {
		if series.Selection == nil {
			continue
		}
		summary := series.Summarize()
		feature := geojson.NewFeature(orb.Polygon{series.Selection.Ring()})
		feature.Properties = geojson.Properties{
			"label":        series.Label,
			"mean_ndvi":    summary.Mean,
			"min_ndvi":     summary.Min,
			"max_ndvi":     summary.Max,
			"stddev_ndvi":  summary.StdDev,
			"valid_points": summary.ValidPoints,
			"total_points": summary.TotalPoints,
		}
		collection.Append(feature)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create GeoJSON file: %v", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(collection); err != nil {
		return fmt.Errorf("failed to encode GeoJSON: %v", err)
	}

	fmt.Println("GeoJSON file created successfully at", outputPath)
	return nil
}
