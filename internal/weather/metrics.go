package weather

import (
	"time"

	"github.com/agrisight/agrisight-cli/internal/utils"
	"github.com/montanaflynn/stats"
)

// Metrics condenses the daily records touching a set of observation dates.
type Metrics struct {
	MeanTemperature    float64
	TotalPrecipitation float64
	MeanHumidity       float64
	Days               int
}

// MetricsByDates aggregates the historical records for the given acquisition
// dates. Dates without a matching record are skipped.
func MetricsByDates(dates []time.Time, historical HistoricalWeather) Metrics {
	var temperatures, precipitations, humidities []float64
	for _, date := range utils.SortDates(dates, true) {
		record, ok := historical[utils.DayUTC(date)]
		if !ok {
			continue
		}
		temperatures = append(temperatures, record.Temperature)
		precipitations = append(precipitations, record.Precipitation)
		humidities = append(humidities, record.Humidity)
	}

	metrics := Metrics{Days: len(temperatures)}
	if metrics.Days == 0 {
		return metrics
	}
	metrics.MeanTemperature, _ = stats.Mean(temperatures)
	metrics.TotalPrecipitation, _ = stats.Sum(precipitations)
	metrics.MeanHumidity, _ = stats.Mean(humidities)
	return metrics
}
