package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisight/agrisight-cli/internal/explorer"
)

func TestExportSelectionGeoJSON(t *testing.T) {
	series := &explorer.Series{
		Label:     "homestead",
		Selection: outputSelection(t),
		Points: []explorer.SeriesPoint{
			{Date: day(time.March, 1), Source: "s2a", MeanNDVI: 0.4, Valid: true, GoodPixels: 4, RegionPixels: 4},
			{Date: day(time.March, 6), Source: "s2b", MeanNDVI: 0.6, Valid: true, GoodPixels: 4, RegionPixels: 4},
		},
	}
	// Series without a region, like a whole extent probe gone empty, are skipped.
	unselected := &explorer.Series{Label: "no region"}

	outputPath := filepath.Join(t.TempDir(), "regions.geojson")
	require.NoError(t, ExportSelectionGeoJSON([]*explorer.Series{series, unselected}, outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	collection, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)

	require.Len(t, collection.Features, 1)
	feature := collection.Features[0]
	assert.Equal(t, "homestead", feature.Properties.MustString("label", ""))
	assert.InDelta(t, 0.5, feature.Properties["mean_ndvi"].(float64), 1e-9)
	assert.EqualValues(t, 2, feature.Properties["valid_points"])
	assert.Equal(t, "Polygon", feature.Geometry.GeoJSONType())
}
