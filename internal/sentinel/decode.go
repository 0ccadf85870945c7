package sentinel

import (
	"fmt"
	"time"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/airbusgeo/godal"
)

// Band order produced by the evalscript.
var bandNames = []string{"B04", "B08", "CLD", "SCL"}

func openDataset(path string) (*godal.Dataset, error) {
	return godal.Open(path, godal.ErrLogger(func(ec godal.ErrorCategory, code int, msg string) error {
		if ec == godal.CE_Warning {
			return nil
		}
		return fmt.Errorf("gdal: %s", msg)
	}))
}

// readObservation opens a cached process API TIFF and pulls its four bands
// into a raw observation, one value per pixel in row major order.
func readObservation(path string, date time.Time, source string) (crophealth.Grid, crophealth.RawObservation, error) {
	dataset, err := openDataset(path)
	if err != nil {
		return crophealth.Grid{}, crophealth.RawObservation{}, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer dataset.Close()

	width := dataset.Structure().SizeX
	height := dataset.Structure().SizeY
	bands := dataset.Bands()
	if len(bands) < len(bandNames) {
		return crophealth.Grid{}, crophealth.RawObservation{}, fmt.Errorf("%s has %d bands, expected %d", path, len(bands), len(bandNames))
	}

	geoTransform, err := dataset.GeoTransform()
	if err != nil {
		return crophealth.Grid{}, crophealth.RawObservation{}, fmt.Errorf("failed to read geotransform of %s: %v", path, err)
	}

	values := make([][]float64, len(bandNames))
	for i, name := range bandNames {
		band := bands[i]
		data := make([]float64, width*height)
		for y := 0; y < height; y++ {
			if err := band.Read(0, y, data[y*width:(y+1)*width], width, 1); err != nil {
				return crophealth.Grid{}, crophealth.RawObservation{}, fmt.Errorf("failed to read band %s of %s: %v", name, path, err)
			}
		}
		values[i] = data
	}

	grid := crophealth.Grid{
		Width:        width,
		Height:       height,
		GeoTransform: geoTransform,
		EPSG:         4326,
	}
	raw := crophealth.RawObservation{
		Time:   date,
		Source: source,
		Red:    values[0],
		NIR:    values[1],
		CLD:    values[2],
		SCL:    values[3],
	}
	return grid, raw, nil
}
