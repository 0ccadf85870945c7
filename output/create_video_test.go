package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVideoFromImages(t *testing.T) {
	t.Setenv("DATA_ROOT", t.TempDir())

	frames, err := RenderObservationMaps(outputDataset(), "riverbend", "north")
	require.NoError(t, err)
	require.NotEmpty(t, frames)

	outputPath := filepath.Join(t.TempDir(), "animation")
	require.NoError(t, CreateVideoFromImages(frames, outputPath))

	info, err := os.Stat(outputPath + ".avi")
	require.NoError(t, err, "the avi extension is appended when missing")
	assert.Greater(t, info.Size(), int64(0))
}

func TestCreateVideoFromDirectory(t *testing.T) {
	t.Setenv("DATA_ROOT", t.TempDir())

	_, err := RenderObservationMaps(outputDataset(), "riverbend", "north")
	require.NoError(t, err)
	imagesDir := filepath.Join(resultDir("riverbend", "north"), "images", "NDVI")

	outputPath := filepath.Join(t.TempDir(), "animation.avi")
	require.NoError(t, CreateVideoFromDirectory(imagesDir, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestCreateVideoFromDirectoryWithoutImages(t *testing.T) {
	err := CreateVideoFromDirectory(t.TempDir(), filepath.Join(t.TempDir(), "animation.avi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no images found")
}
