package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// Colors for consistent UI
const (
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorReset  = "\033[0m"
)

// PrintWarning displays a warning message with consistent formatting
func PrintWarning(message string) {
	fmt.Printf("%s\nWarning:%s\n", ColorYellow, ColorReset)
	fmt.Printf("%s%s%s\n", ColorYellow, message, ColorReset)
}

// PrintError displays an error message with consistent formatting
func PrintError(message string) {
	fmt.Printf("\n%sError: %s%s\n", ColorRed, message, ColorReset)
}

// PrintSuccess displays a success message with consistent formatting
func PrintSuccess(message string) {
	fmt.Printf("\n%s%s%s\n", ColorGreen, message, ColorReset)
}

// PrintInfo displays an info message with consistent formatting
func PrintInfo(message string) {
	fmt.Printf("%s%s%s", ColorBlue, message, ColorReset)
}

// ReadString reads a string from stdin with trimming
func ReadString(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	PrintInfo(prompt)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// ReadInt reads an integer from stdin with validation
func ReadInt(prompt string, min, max int) (int, error) {
	PrintInfo(prompt)
	var input string
	fmt.Scanln(&input)
	input = strings.TrimSpace(input)

	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %s", input)
	}

	if value < min || value > max {
		return 0, fmt.Errorf("value must be between %d and %d", min, max)
	}

	return value, nil
}

// ReadDate reads a date from stdin with validation
func ReadDate(prompt string) (time.Time, error) {
	input := ReadString(prompt)
	if input == "today" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s. Please use YYYY-MM-DD", input)
	}
	return date, nil
}

// ReadPositiveInt reads a positive integer from stdin
func ReadPositiveInt(prompt string) (int, error) {
	PrintInfo(prompt)
	var input string
	fmt.Scanln(&input)
	input = strings.TrimSpace(input)

	value, err := strconv.Atoi(input)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("invalid number: %s. Please enter a positive integer", input)
	}

	return value, nil
}

// ReadFarmAndPaddock reads farm and paddock information
func ReadFarmAndPaddock() (string, string, error) {
	PrintInfo("Available farms: ")
	ListFarms()
	farm := ReadString("Enter the farm name: ")
	PrintInfo("Available paddocks: ")
	ListPaddocks(farm)
	paddock := ReadString("Enter the paddock id: ")

	if farm == "" || paddock == "" {
		return "", "", fmt.Errorf("farm name and paddock id cannot be empty")
	}

	return farm, paddock, nil
}

// ReadDateRange reads end date and number of days to calculate start date
func ReadDateRange() (time.Time, time.Time, error) {
	endDate, err := ReadDate("Enter the end date (YYYY-MM-DD | today): ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	days, err := ReadPositiveInt("Enter number of days: ")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startDate := endDate.AddDate(0, 0, -days)
	return startDate, endDate, nil
}

// ReadLatLonPolygon reads polygon vertices from user input, one "lat,lon"
// pair per line. Points come back in the lon/lat order the geometry layer
// expects.
func ReadLatLonPolygon() ([]orb.Point, error) {
	var vertices []orb.Point

	for {
		input := ReadString("Enter a vertex (lat,lon) or 'done' to finish: ")
		if strings.ToLower(input) == "done" {
			break
		}

		parts := strings.Split(input, ",")
		if len(parts) != 2 {
			PrintError("Invalid format. Please use lat,lon")
			continue
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			PrintError("Invalid latitude")
			continue
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			PrintError("Invalid longitude")
			continue
		}

		vertices = append(vertices, orb.Point{lon, lat})
	}

	return vertices, nil
}
