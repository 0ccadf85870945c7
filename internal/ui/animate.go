package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/delivery"
	"github.com/agrisight/agrisight-cli/internal/properties"
	"github.com/agrisight/agrisight-cli/output"
)

// AnimatePaddock handles the UI for rendering the per date NDVI maps of a
// paddock and stitching them into an animation
func AnimatePaddock() {
	PrintWarning("- A '.geojson' file with the farm name should be present in the 'geojsons' folder under the data root.\n- The '.geojson' file should contain the desired paddock in its features identified by paddock_id.")

	farm, paddock, err := ReadFarmAndPaddock()
	if err != nil {
		PrintError(err.Error())
		return
	}

	startDate, endDate, err := ReadDateRange()
	if err != nil {
		PrintError(err.Error())
		return
	}

	window, err := crophealth.NewTimeRange(startDate, endDate)
	if err != nil {
		PrintError(err.Error())
		return
	}

	dataset, err := delivery.LoadPaddockDataset(context.Background(), farm, paddock, window)
	if err != nil {
		PrintError(fmt.Sprintf("Error loading dataset: %s", err.Error()))
		return
	}

	imagePaths, err := output.RenderObservationMaps(dataset, farm, paddock)
	if err != nil {
		PrintError(fmt.Sprintf("Error rendering NDVI maps: %s", err.Error()))
		return
	}
	if len(imagePaths) == 0 {
		PrintError("No observation maps rendered")
		return
	}

	videoDir := filepath.Join(properties.DataRoot(), "result", fmt.Sprintf("%s_%s", farm, paddock), "videos")
	if err := os.MkdirAll(videoDir, os.ModePerm); err != nil {
		PrintError(fmt.Sprintf("Error creating videos folder: %s", err.Error()))
		return
	}

	videoPath := filepath.Join(videoDir, fmt.Sprintf("NDVI-%s-%s",
		startDate.Format("2006_01_02"), endDate.Format("2006_01_02")))
	if err := output.CreateVideoFromImages(imagePaths, videoPath); err != nil {
		PrintError(fmt.Sprintf("Error creating NDVI video: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successfully created the NDVI animation!\nVideo located at: %s.avi\nFrames located at: %s", videoPath, filepath.Dir(imagePaths[0])))
}
