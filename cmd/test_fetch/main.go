package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/properties"
	"github.com/agrisight/agrisight-cli/internal/sentinel"
	"github.com/joho/godotenv"
)

func main() {
	// Hardcoded test parameters - modify these to test different scenarios
	farm := "riverbend"
	paddock := "1"
	testDate := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	fmt.Println("=== AgriSight Test Observation Fetch ===")
	fmt.Printf("Farm: %s\n", farm)
	fmt.Printf("Paddock: %s\n", paddock)
	fmt.Printf("Date: %s\n", testDate.Format("2006-01-02"))
	fmt.Println()

	// Load environment variables
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
		fmt.Println("Make sure you have set the required environment variables:")
		fmt.Println("- COPERNICUS_CLIENT_ID")
		fmt.Println("- COPERNICUS_CLIENT_SECRET")
		fmt.Println()
	}

	// Initialize GDAL
	godal.RegisterAll()

	fmt.Printf("Loading geometry for farm '%s', paddock '%s'...\n", farm, paddock)
	area, err := crophealth.LoadArea(farm, paddock)
	if err != nil {
		log.Fatalf("Failed to load area: %v", err)
	}
	fmt.Println("✓ Geometry loaded successfully")

	source, err := sentinel.NewSource("sentinel-2-l2a")
	if err != nil {
		log.Fatalf("Failed to build source: %v", err)
	}

	window, err := crophealth.NewTimeRange(testDate, testDate)
	if err != nil {
		log.Fatalf("Failed to build time range: %v", err)
	}

	fmt.Printf("Requesting observations for %s...\n", testDate.Format("2006-01-02"))
	grid, observations, err := source.Query(context.Background(), area, window)
	if err != nil {
		log.Fatalf("Failed to query observations: %v", err)
	}

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Grid: %dx%d (EPSG:%d)\n", grid.Width, grid.Height, grid.EPSG)
	fmt.Printf("Observations fetched: %d\n", len(observations))

	if len(observations) == 0 {
		fmt.Println("No observations were fetched. This could mean:")
		fmt.Println("- No satellite overpass on this date")
		fmt.Println("- The date is remembered in the invalid-images list")
		fmt.Println("- API credentials issue")
	}

	for _, raw := range observations {
		observation, err := crophealth.FoldObservation(raw, grid)
		if err != nil {
			log.Fatalf("Failed to fold observation: %v", err)
		}
		fmt.Printf("- %s from %s: coverage %.0f%%, %d of %d usable pixels\n",
			observation.Time.Format("2006-01-02"), observation.Source,
			observation.Coverage*100, observation.GoodPixels(), grid.PixelCount())
	}

	// Show file location
	imagePath := fmt.Sprintf("%s/images/%s_%s", properties.DataRoot(), farm, paddock)
	fmt.Printf("\nImage files saved to: %s\n", imagePath)

	// Check if any files exist in the directory
	if entries, err := os.ReadDir(imagePath); err == nil {
		fmt.Printf("Files in directory: %d\n", len(entries))
		for _, entry := range entries {
			if !entry.IsDir() {
				fmt.Printf("- %s\n", entry.Name())
			}
		}
	}

	fmt.Println("\n✓ Test completed!")
}
