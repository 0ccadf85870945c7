package ui

import (
	"fmt"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
)

// ListPaddocks handles the UI for viewing the list of available paddocks
func ListPaddocks(farm string) {
	PrintWarning("To add a paddock to a farm add the 'paddock_id' property at the '.geojson' file from the farm of your choice.\nThe 'paddock_id' property should be located at 'features[N]properties.paddock_id'.")

	if farm == "" {
		farm = ReadString("Enter the farm name: ")
	}

	paddockIDs, err := crophealth.PaddockIDs(farm)
	if err != nil {
		PrintError(err.Error())
		return
	}
	if len(paddockIDs) == 0 {
		PrintError(fmt.Sprintf("no paddock ids found for farm %s", farm))
		return
	}

	fmt.Printf("\n%sAvailable paddocks:%s\n", ColorGreen, ColorReset)
	for _, paddockID := range paddockIDs {
		fmt.Printf("%s- %s%s\n", ColorGreen, paddockID, ColorReset)
	}
}
