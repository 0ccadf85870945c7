package sentinel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
)

func TestNewSourceRequiresCredentials(t *testing.T) {
	t.Setenv("COPERNICUS_CLIENT_ID", "")
	t.Setenv("COPERNICUS_CLIENT_SECRET", "")

	_, err := NewSource("sentinel-2-l2a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COPERNICUS_CLIENT_ID")
}

func TestNewSource(t *testing.T) {
	t.Setenv("COPERNICUS_CLIENT_ID", "client")
	t.Setenv("COPERNICUS_CLIENT_SECRET", "secret")

	source, err := NewSource("sentinel-2-l2a")
	require.NoError(t, err)
	assert.Equal(t, "sentinel-2-l2a", source.Name())
	assert.Equal(t, DefaultIntervalDays, source.intervalDays)
}

func TestEmptyAcquisition(t *testing.T) {
	empty := crophealth.RawObservation{SCL: []float64{0, 0, 0, 0}}
	assert.True(t, emptyAcquisition(empty))

	partial := crophealth.RawObservation{SCL: []float64{0, 0, 4, 0}}
	assert.False(t, emptyAcquisition(partial))
}

func TestInvalidImagesRoundTrip(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "invalid_images.json")

	// A missing list reads back empty.
	images, err := loadInvalidImages(filePath)
	require.NoError(t, err)
	assert.Empty(t, images)

	saveInvalidImages(filePath, []string{
		"riverbend_north_sentinel-2-l2a_2024-03-06.tif",
		"riverbend_north_sentinel-2-l2a_2024-03-01.tif",
		"riverbend_north_sentinel-2-l2a_2024-03-06.tif",
	})

	images, err = loadInvalidImages(filePath)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"riverbend_north_sentinel-2-l2a_2024-03-01.tif",
		"riverbend_north_sentinel-2-l2a_2024-03-06.tif",
	}, images, "duplicates collapse and entries come back sorted")
}

func TestLoadInvalidImagesRejectsBadJSON(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "invalid_images.json")
	require.NoError(t, os.WriteFile(filePath, []byte("{broken"), 0644))

	_, err := loadInvalidImages(filePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestContains(t *testing.T) {
	list := []string{"a.tif", "b.tif"}
	assert.True(t, contains(list, "a.tif"))
	assert.False(t, contains(list, "c.tif"))
	assert.False(t, contains(nil, "a.tif"))
}
