package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agrisight/agrisight-cli/internal/properties"
)

// ListFarms handles the UI for viewing the list of available farms
func ListFarms() {
	files, err := os.ReadDir(filepath.Join(properties.DataRoot(), "geojsons"))
	if err != nil {
		PrintError(fmt.Sprintf("Error reading geojsons folder: %s", err.Error()))
		return
	}

	PrintWarning("To add a new farm, add its '.geojson' file at the 'geojsons' folder under the data root.")

	fmt.Printf("\n%sAvailable farms:%s\n", ColorGreen, ColorReset)
	for _, file := range files {
		if strings.HasSuffix(file.Name(), ".geojson") {
			fmt.Printf("%s- %s%s\n", ColorGreen, strings.TrimSuffix(file.Name(), ".geojson"), ColorReset)
		}
	}
}
