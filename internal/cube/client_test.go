package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/agrisight/agrisight-cli/internal/cube/protobufs"
)

func TestGridFromProto(t *testing.T) {
	grid, err := gridFromProto(&pb.GridSpec{
		Width:        128,
		Height:       96,
		GeoTransform: []float64{150.0, 0.0001, 0, -30.0, 0, -0.0001},
		Epsg:         4326,
	})
	require.NoError(t, err)

	assert.Equal(t, 128, grid.Width)
	assert.Equal(t, 96, grid.Height)
	assert.Equal(t, 4326, grid.EPSG)
	assert.Equal(t, [6]float64{150.0, 0.0001, 0, -30.0, 0, -0.0001}, grid.GeoTransform)
}

func TestGridFromProtoMissingGrid(t *testing.T) {
	_, err := gridFromProto(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carries no grid")
}

func TestGridFromProtoWrongCoefficientCount(t *testing.T) {
	_, err := gridFromProto(&pb.GridSpec{
		Width:        128,
		Height:       96,
		GeoTransform: []float64{150.0, 0.0001, 0},
		Epsg:         4326,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 6")
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "s2a", NewSource(nil, "s2a").Name())
}
