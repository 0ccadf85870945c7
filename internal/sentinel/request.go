package sentinel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agrisight/agrisight-cli/internal/properties"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

const archiveResolutionMeters = 10

func calculatePixels(distance float64, resolution float64) int {
	pixels := distance * (111_000.0 / resolution)
	if pixels < 1 {
		return 1
	}
	return int(pixels)
}

const evalscript = `
    //VERSION=3
    function setup() {
      return {
        input: ["B04", "B08", "CLD", "SCL"],
        output: {
          id: "default",
          bands: 4,
          sampleType: SampleType.FLOAT32,
        },
      }
    }

    function evaluatePixel(sample) {
      return [sample.B04, sample.B08, sample.CLD, sample.SCL];
    }
  `

// buildProcessRequest assembles the process API payload for one acquisition
// window over the paddock polygon.
func buildProcessRequest(polygon orb.Polygon, startDate, endDate time.Time, collection string) map[string]interface{} {
	bound := polygon.Bound()
	widthPixels := calculatePixels(bound.Max[0]-bound.Min[0], archiveResolutionMeters)
	heightPixels := calculatePixels(bound.Max[1]-bound.Min[1], archiveResolutionMeters)
	// Clamp to the allowed range (1-2500)
	if widthPixels > 2500 {
		widthPixels = 2500
	}
	if heightPixels > 2500 {
		heightPixels = 2500
	}

	return map[string]interface{}{
		"input": map[string]interface{}{
			"bounds": map[string]interface{}{
				"geometry": geojson.NewGeometry(polygon),
			},
			"data": []map[string]interface{}{
				{
					"dataFilter": map[string]interface{}{
						"timeRange": map[string]string{
							"from": startDate.Format(time.RFC3339),
							"to":   endDate.Format(time.RFC3339),
						},
					},
					"type": collection,
				},
			},
		},
		"output": map[string]interface{}{
			"width":  widthPixels,
			"height": heightPixels,
			"responses": []map[string]interface{}{
				{
					"identifier": "default",
					"format": map[string]string{
						"type": "image/tiff",
					},
				},
			},
		},
		"evalscript": evalscript,
		"mosaicking": "mostRecent",
	}
}

// requestObservation performs a single process API call. It never retries,
// a failed call aborts the surrounding load.
func (s *Source) requestObservation(ctx context.Context, polygon orb.Polygon, startDate, endDate time.Time) ([]byte, error) {
	requestBody, err := json.Marshal(buildProcessRequest(polygon, startDate, endDate, s.collection))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, properties.CopernicusProcessURL(), bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to build process request: %v", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to request image: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		return nil, fmt.Errorf("process API returned status %d: %s", response.StatusCode, string(body))
	}

	content, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}
	return content, nil
}
