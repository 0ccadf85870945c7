package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/delivery"
	"github.com/agrisight/agrisight-cli/internal/explorer"
	"github.com/agrisight/agrisight-cli/internal/weather"
	"github.com/agrisight/agrisight-cli/output"
	"github.com/paulmach/orb"
)

// ExplorePaddock handles the UI for loading a paddock dataset and exploring
// mean NDVI series over drawn regions
func ExplorePaddock() {
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

	area, err := crophealth.LoadArea(farm, paddock)
	if err != nil {
		PrintError(err.Error())
		return
	}

	first, last := dataset.Window()
	PrintSuccess(fmt.Sprintf("Loaded %d observations from %s between %s and %s.",
		dataset.Len(), strings.Join(dataset.Sources(), ", "),
		first.Format("2006-01-02"), last.Format("2006-01-02")))

	session := explorer.NewSession(dataset)
	session.OnSeries(func(series *explorer.Series) {
		printSeries(series)
		if series.Empty() {
			return
		}
		chartPath, err := output.RenderSessionChart(session, area)
		if err != nil {
			PrintWarning(fmt.Sprintf("Chart refresh failed: %s", err.Error()))
			return
		}
		fmt.Printf("%sChart updated at: %s%s\n", ColorGreen, chartPath, ColorReset)
	})
	session.OnError(func(err error) {
		PrintError(err.Error())
	})

	runExploreLoop(session, area, window)
}

func runExploreLoop(session *explorer.Session, area crophealth.Area, window crophealth.TimeRange) {
	exploreOptions := []menuOption{
		{"Draw a region (lat,lon vertices)", func() { drawRegion(session) }},
		{"Select the whole paddock", func() { drawPaddock(session, area) }},
		{"Select the full dataset extent", func() { drawExtent(session) }},
		{"Print series summaries and climate context", func() { printSummaries(session, area, window) }},
		{"Render chart, map, GeoJSON and CSV artifacts", func() { renderArtifacts(session, area, window) }},
		{"Clear drawn regions", func() {
			session.HandleEvent(explorer.SelectionCleared{})
			PrintSuccess("Regions cleared.")
		}},
	}

	for !session.Closed() {
		fmt.Printf("\n%sExploring %s/%s%s\n", ColorBlue, area.Farm, area.Paddock, ColorReset)
		for i, opt := range exploreOptions {
			fmt.Printf("%s%d. %s%s\n", ColorBlue, i+1, opt.title, ColorReset)
		}
		fmt.Printf("%s%d. Back to the main menu%s\n", ColorBlue, len(exploreOptions)+1, ColorReset)

		choice, err := ReadInt("Please enter your choice: ", 1, len(exploreOptions)+1)
		if err != nil {
			PrintError(err.Error())
			continue
		}
		if choice == len(exploreOptions)+1 {
			session.HandleEvent(explorer.SessionClosed{})
			continue
		}
		exploreOptions[choice-1].handler()
	}
}

func drawRegion(session *explorer.Session) {
	vertices, err := ReadLatLonPolygon()
	if err != nil {
		PrintError(err.Error())
		return
	}

	selection, err := explorer.NewRegionSelection(vertices)
	if err != nil {
		PrintError(err.Error())
		return
	}

	label := ReadString("Enter a label for this region (leave empty for an automatic one): ")
	session.HandleEvent(explorer.PolygonDrawn{Label: label, Selection: selection})
}

func drawPaddock(session *explorer.Session, area crophealth.Area) {
	selection, err := explorer.SelectionFromPolygon(area.Polygon)
	if err != nil {
		PrintError(err.Error())
		return
	}
	session.HandleEvent(explorer.PolygonDrawn{Label: area.Paddock, Selection: selection})
}

func drawExtent(session *explorer.Session) {
	bound := session.Dataset().Grid.Bound()
	selection, err := explorer.NewRegionSelection([]orb.Point{
		bound.Min,
		{bound.Max[0], bound.Min[1]},
		bound.Max,
		{bound.Min[0], bound.Max[1]},
	})
	if err != nil {
		PrintError(err.Error())
		return
	}
	session.HandleEvent(explorer.PolygonDrawn{Label: "full extent", Selection: selection})
}

func printSeries(series *explorer.Series) {
	if series.Empty() {
		PrintWarning(fmt.Sprintf("No data in region '%s': it lies outside the dataset extent.", series.Label))
		return
	}

	fmt.Printf("\n%sSeries '%s' over %d pixels:%s\n",
		ColorGreen, series.Label, series.Points[0].RegionPixels, ColorReset)
	fmt.Printf("%-12s  %-16s  %10s  %s\n", "date", "source", "mean NDVI", "good pixels")
	for _, point := range series.Points {
		if point.Valid {
			fmt.Printf("%-12s  %-16s  %10.4f  %d/%d\n",
				point.Date.Format("2006-01-02"), point.Source, point.MeanNDVI, point.GoodPixels, point.RegionPixels)
		} else {
			fmt.Printf("%-12s  %-16s  %10s  %d/%d\n",
				point.Date.Format("2006-01-02"), point.Source, "gap", point.GoodPixels, point.RegionPixels)
		}
	}
}

func printSummaries(session *explorer.Session, area crophealth.Area, window crophealth.TimeRange) {
	seriesList := session.Series()
	if len(seriesList) == 0 {
		PrintWarning("No regions drawn yet.")
		return
	}

	for _, series := range seriesList {
		summary := series.Summarize()
		if summary.ValidPoints == 0 {
			fmt.Printf("\n%s%s: no valid points%s\n", ColorGreen, series.Label, ColorReset)
			continue
		}
		fmt.Printf("\n%s%s: mean %.4f, min %.4f, max %.4f, stddev %.4f over %d of %d points%s\n",
			ColorGreen, series.Label, summary.Mean, summary.Min, summary.Max, summary.StdDev,
			summary.ValidPoints, summary.TotalPoints, ColorReset)
	}

	centroid := area.Centroid()
	climate, err := weather.FetchWeather(centroid.Lat(), centroid.Lon(), window.Start, window.End, 10)
	if err != nil {
		PrintError(fmt.Sprintf("Error fetching climate context: %s", err.Error()))
		return
	}

	var dates []time.Time
	for _, obs := range session.Dataset().Observations {
		dates = append(dates, obs.Time)
	}
	metrics := weather.MetricsByDates(dates, climate)
	fmt.Printf("\n%sClimate over %d acquisition days: mean temperature %.1fC, total precipitation %.1fmm, mean humidity %.1f%%%s\n",
		ColorGreen, metrics.Days, metrics.MeanTemperature, metrics.TotalPrecipitation, metrics.MeanHumidity, ColorReset)
}

func renderArtifacts(session *explorer.Session, area crophealth.Area, window crophealth.TimeRange) {
	if len(session.Series()) == 0 {
		PrintWarning("No regions drawn yet.")
		return
	}

	centroid := area.Centroid()
	climate, err := weather.FetchWeather(centroid.Lat(), centroid.Lon(), window.Start, window.End, 10)
	if err != nil {
		PrintWarning(fmt.Sprintf("Climate context unavailable, exporting without it: %s", err.Error()))
		climate = nil
	}

	artifacts, err := output.RenderSessionArtifacts(session, area, climate)
	if err != nil {
		PrintError(fmt.Sprintf("Error rendering artifacts: %s", err.Error()))
		return
	}

	PrintSuccess(fmt.Sprintf("Successful render!\nChart located at: %s\nMap located at: %s\nGeoJSON located at: %s\nCSV files located at: %s",
		artifacts.ChartPath, artifacts.MapPath, artifacts.GeoJSONPath, strings.Join(artifacts.CSVPaths, ", ")))
}
