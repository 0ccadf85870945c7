package sentinel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/properties"
	"github.com/agrisight/agrisight-cli/internal/utils"
	"golang.org/x/oauth2/clientcredentials"
)

// DefaultIntervalDays matches the Sentinel-2 revisit time at mid latitudes.
const DefaultIntervalDays = 5

// Source queries the Copernicus Data Space process API for one collection.
// Fetched TIFFs are cached on disk under the data root, repeated loads of
// the same paddock and window stay offline.
type Source struct {
	collection   string
	intervalDays int
	client       *http.Client
}

func NewSource(collection string) (*Source, error) {
	clientID := properties.CopernicusClientID()
	clientSecret := properties.CopernicusClientSecret()
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("missing required environment variables: COPERNICUS_CLIENT_ID or COPERNICUS_CLIENT_SECRET")
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     properties.CopernicusTokenURL(),
	}
	return &Source{
		collection:   collection,
		intervalDays: DefaultIntervalDays,
		client:       config.Client(context.Background()),
	}, nil
}

func (s *Source) Name() string {
	return s.collection
}

// Query walks the window one revisit step at a time, fetching any
// acquisition not already cached on disk and decoding every cached TIFF
// into raw band data. Dates known to carry no acquisition are remembered in
// an invalid-images list next to the TIFFs and skipped on later loads. The
// grid of the first acquisition is authoritative, later acquisitions must
// match it.
func (s *Source) Query(ctx context.Context, area crophealth.Area, window crophealth.TimeRange) (crophealth.Grid, []crophealth.RawObservation, error) {
	imageDir := filepath.Join(properties.DataRoot(), "images", fmt.Sprintf("%s_%s", area.Farm, area.Paddock))
	if err := os.MkdirAll(imageDir, os.ModePerm); err != nil {
		return crophealth.Grid{}, nil, fmt.Errorf("failed to create images directory: %v", err)
	}

	invalidImagesFile := filepath.Join(imageDir, "invalid_images.json")
	invalidImages, err := loadInvalidImages(invalidImagesFile)
	if err != nil {
		return crophealth.Grid{}, nil, err
	}

	var grid crophealth.Grid
	var observations []crophealth.RawObservation
	for currentDate := utils.DayUTC(window.Start); !currentDate.After(window.End); currentDate = currentDate.AddDate(0, 0, s.intervalDays) {
		if err := ctx.Err(); err != nil {
			return crophealth.Grid{}, nil, err
		}

		imageName := fmt.Sprintf("%s_%s_%s_%s.tif",
			area.Farm, area.Paddock, s.collection, currentDate.Format("2006-01-02"))
		if contains(invalidImages, imageName) {
			continue
		}

		fileName := filepath.Join(imageDir, imageName)
		if _, err := os.Stat(fileName); os.IsNotExist(err) {
			endOfDay := currentDate.Add(time.Hour*23 + time.Minute*59 + time.Second*59)
			imageBytes, err := s.requestObservation(ctx, area.Polygon, currentDate, endOfDay)
			if err != nil {
				return crophealth.Grid{}, nil, err
			}
			if err := os.WriteFile(fileName, imageBytes, 0644); err != nil {
				return crophealth.Grid{}, nil, fmt.Errorf("failed to write image file: %v", err)
			}
		}

		observationGrid, raw, err := readObservation(fileName, currentDate, s.collection)
		if err != nil {
			return crophealth.Grid{}, nil, err
		}

		// An empty mosaic means no overpass that day. Remember it so the
		// next load skips the request entirely.
		if emptyAcquisition(raw) {
			invalidImages = append(invalidImages, imageName)
			saveInvalidImages(invalidImagesFile, invalidImages)
			if err := os.Remove(fileName); err != nil {
				fmt.Printf("failed to delete image file %s: %v\n", fileName, err)
			}
			continue
		}

		if len(observations) == 0 {
			grid = observationGrid
		} else if !grid.Equal(observationGrid) {
			return crophealth.Grid{}, nil, fmt.Errorf("image %s does not share the grid of earlier acquisitions", fileName)
		}
		observations = append(observations, raw)
	}

	return grid, observations, nil
}

// emptyAcquisition reports whether a decoded TIFF is an empty mosaic, every
// pixel classified as SCL no-data.
func emptyAcquisition(raw crophealth.RawObservation) bool {
	for _, scl := range raw.SCL {
		if scl != 0 {
			return false
		}
	}
	return true
}

func loadInvalidImages(filePath string) ([]string, error) {
	var invalidImages []string
	if _, err := os.Stat(filePath); err == nil {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %v", filePath, err)
		}
		if err := json.Unmarshal(data, &invalidImages); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %v", filePath, err)
		}
	}
	return invalidImages, nil
}

func saveInvalidImages(filePath string, invalidImages []string) {
	uniqueImages := make(map[string]struct{})
	for _, image := range invalidImages {
		uniqueImages[image] = struct{}{}
	}

	finalImages := make([]string, 0, len(uniqueImages))
	for image := range uniqueImages {
		finalImages = append(finalImages, image)
	}
	sort.Strings(finalImages)

	data, _ := json.Marshal(finalImages)
	_ = os.WriteFile(filePath, data, 0644)
}

func contains(slice []string, item string) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
