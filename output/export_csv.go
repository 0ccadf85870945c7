package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agrisight/agrisight-cli/internal/explorer"
	"github.com/agrisight/agrisight-cli/internal/utils"
	"github.com/agrisight/agrisight-cli/internal/weather"
	"github.com/gocarina/gocsv"
)

type SeriesRecord struct {
	Date          time.Time `csv:"date"`
	Source        string    `csv:"source"`
	MeanNDVI      float64   `csv:"mean_ndvi"`
	Valid         bool      `csv:"valid"`
	GoodPixels    int       `csv:"good_pixels"`
	RegionPixels  int       `csv:"region_pixels"`
	Temperature   float64   `csv:"temperature"`
	Precipitation float64   `csv:"precipitation"`
	Humidity      float64   `csv:"humidity"`
}

// ExportSeriesCSV writes one row per series point, joined with the daily
// weather record when one is available.
func ExportSeriesCSV(series *explorer.Series, climate weather.HistoricalWeather, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create result folder: %v", err)
	}

	records := make([]SeriesRecord, 0, len(series.Points))
	for _, point := range series.Points {
		record := SeriesRecord{
			Date:         point.Date,
			Source:       point.Source,
			MeanNDVI:     point.MeanNDVI,
			Valid:        point.Valid,
			GoodPixels:   point.GoodPixels,
			RegionPixels: point.RegionPixels,
		}
		if daily, ok := climate[utils.DayUTC(point.Date)]; ok {
			record.Temperature = daily.Temperature
			record.Precipitation = daily.Precipitation
			record.Humidity = daily.Humidity
		}
		records = append(records, record)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create series file: %v", err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return fmt.Errorf("failed to save series to file: %w", err)
	}

	fmt.Printf("Series with %d rows successfully saved to %s.\n", len(records), outputPath)
	return nil
}
