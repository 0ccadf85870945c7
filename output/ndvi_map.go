package output

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/properties"
)

func normalize(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	norm := (value - min) / (max - min)
	if norm < 0 {
		return 0
	}
	if norm > 1 {
		return 1
	}
	return norm
}

func valueToColor(norm float64) color.RGBA {
	var r, g, b uint8
	if norm <= 0.5 {
		// Transition from blue to green
		ratio := norm / 0.5
		r = 0
		g = uint8(255 * ratio)
		b = uint8(255 * (1 - ratio))
	} else {
		// Transition from green to red
		ratio := (norm - 0.5) / 0.5
		r = uint8(255 * ratio)
		g = uint8(255 * (1 - ratio))
		b = 0
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

var maskedPixelColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// observationImage renders one observation with the blue to green to red
// colormap. Low index values map to blue, dense vegetation to red. Masked
// pixels come out gray.
func observationImage(grid crophealth.Grid, obs crophealth.Observation) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			idx := y*grid.Width + x
			if !obs.Valid[idx] {
				img.Set(x, y, maskedPixelColor)
				continue
			}
			img.Set(x, y, valueToColor(normalize(obs.NDVI[idx], 0, 1)))
		}
	}
	return img
}

// RenderObservationMaps writes one colormapped JPEG per observation and
// returns the paths in acquisition order.
func RenderObservationMaps(dataset *crophealth.Dataset, farm, paddock string) ([]string, error) {
	resultPath := filepath.Join(resultDir(farm, paddock), "images", "NDVI")
	if err := os.MkdirAll(resultPath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create result folder: %v", err)
	}

	imagePaths := []string{}
	for _, obs := range dataset.Observations {
		outputPath := filepath.Join(resultPath, fmt.Sprintf("%s_%s_%s_%s.jpeg",
			farm, paddock, obs.Time.Format("2006_01_02"), obs.Source))

		outputFile, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create JPEG file: %v", err)
		}

		err = jpeg.Encode(outputFile, observationImage(dataset.Grid, obs), &jpeg.Options{
			Quality: 100,
		})
		outputFile.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to encode JPEG file: %v", err)
		}

		imagePaths = append(imagePaths, outputPath)
	}

	return imagePaths, nil
}

func resultDir(farm, paddock string) string {
	return filepath.Join(properties.DataRoot(), "result", fmt.Sprintf("%s_%s", farm, paddock))
}
