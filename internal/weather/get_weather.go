package weather

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agrisight/agrisight-cli/internal/cache"
)

type HourlyData struct {
	Time             []string  `json:"time"`
	RelativeHumidity []float64 `json:"relative_humidity_2m"`
}

type DailyData struct {
	Time          []string  `json:"time"`
	Temperature   []float64 `json:"temperature_2m_mean"`
	Precipitation []float64 `json:"precipitation_sum"`
}

type WeatherResponse struct {
	Hourly HourlyData `json:"hourly"`
	Daily  DailyData  `json:"daily"`
}

type Weather struct {
	Precipitation float64
	Temperature   float64
	Humidity      float64
}

// HistoricalWeather maps UTC calendar days to their daily record.
type HistoricalWeather map[time.Time]Weather

const openMeteoArchiveURL = "https://archive-api.open-meteo.com/v1/archive"

// meanHumidityByDay folds hourly relative humidity readings into one mean per
// calendar day, keyed by the YYYY-MM-DD prefix of the timestamps.
func meanHumidityByDay(hourly HourlyData) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, t := range hourly.Time {
		date := t[:10]
		sums[date] += hourly.RelativeHumidity[i]
		counts[date]++
	}

	means := make(map[string]float64, len(sums))
	for date, sum := range sums {
		means[date] = sum / float64(counts[date])
	}
	return means
}

// FetchWeather loads the daily climate history for a point from the
// open-meteo archive, retrying transient failures. Responses are cached under
// the data root so repeat sessions over the same window stay offline.
func FetchWeather(latitude, longitude float64, startDate, endDate time.Time, retries int) (HistoricalWeather, error) {
	store := cache.NewFileCache[HistoricalWeather]("weather")
	key := store.GenerateKey(latitude, longitude, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	if cached, ok := store.Get(key); ok {
		return cached, nil
	}

	params := fmt.Sprintf("?latitude=%f&longitude=%f&start_date=%s&end_date=%s&daily=temperature_2m_mean,precipitation_sum&hourly=relative_humidity_2m",
		latitude, longitude, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))

	for attempt := 0; attempt < retries; attempt++ {
		resp, err := http.Get(openMeteoArchiveURL + params)
		if err != nil {
			fmt.Printf("Failed to retrieve weather data: %v. Retrying... (%d/%d)\n", err, attempt+1, retries)
			time.Sleep(10 * time.Second)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			fmt.Printf("Failed to retrieve weather data: %d. Retrying... (%d/%d)\n", resp.StatusCode, attempt+1, retries)
			time.Sleep(10 * time.Second)
			continue
		}

		var weatherData WeatherResponse
		err = json.NewDecoder(resp.Body).Decode(&weatherData)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse weather response: %v", err)
		}

		historical := HistoricalWeather{}
		humidity := meanHumidityByDay(weatherData.Hourly)
		for i, date := range weatherData.Daily.Time {
			parsedDate, err := time.Parse("2006-01-02", date)
			if err != nil {
				return nil, fmt.Errorf("failed to parse weather date: %v", err)
			}
			historical[parsedDate] = Weather{
				Temperature:   weatherData.Daily.Temperature[i],
				Precipitation: weatherData.Daily.Precipitation[i],
				Humidity:      humidity[date],
			}
		}

		if err := store.Set(key, historical); err != nil {
			fmt.Printf("failed to cache weather data: %v\n", err)
		}
		return historical, nil
	}

	return nil, fmt.Errorf("failed to retrieve weather data after %d attempts", retries)
}
