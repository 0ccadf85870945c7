package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/explorer"
	"github.com/agrisight/agrisight-cli/internal/weather"
	"golang.org/x/sync/errgroup"
)

// Artifacts lists the files a session render produced.
type Artifacts struct {
	ChartPath   string
	MapPath     string
	GeoJSONPath string
	CSVPaths    []string
}

// RenderSessionArtifacts writes the series chart, the selection map, the
// region GeoJSON and one CSV per region concurrently under the result
// folder for the paddock.
func RenderSessionArtifacts(session *explorer.Session, area crophealth.Area, climate weather.HistoricalWeather) (Artifacts, error) {
	seriesList := session.Series()
	if len(seriesList) == 0 {
		return Artifacts{}, fmt.Errorf("session has no series to render")
	}

	dir := resultDir(area.Farm, area.Paddock)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return Artifacts{}, fmt.Errorf("failed to create result folder: %v", err)
	}

	start, end := session.Dataset().Window()
	stamp := fmt.Sprintf("%s_%s", start.Format("2006_01_02"), end.Format("2006_01_02"))
	artifacts := Artifacts{
		ChartPath:   filepath.Join(dir, fmt.Sprintf("chart_%s.png", stamp)),
		MapPath:     filepath.Join(dir, fmt.Sprintf("map_%s.png", stamp)),
		GeoJSONPath: filepath.Join(dir, fmt.Sprintf("regions_%s.geojson", stamp)),
	}
	for i := range seriesList {
		artifacts.CSVPaths = append(artifacts.CSVPaths, filepath.Join(dir, fmt.Sprintf("series_%d_%s.csv", i+1, stamp)))
	}

	var group errgroup.Group
	group.Go(func() error {
		return RenderSeriesChart(seriesList, start, end, artifacts.ChartPath)
	})
	group.Go(func() error {
		return RenderSelectionMap(session.Dataset(), area, seriesList, artifacts.MapPath)
	})
	group.Go(func() error {
		return ExportSelectionGeoJSON(seriesList, artifacts.GeoJSONPath)
	})
	for i, series := range seriesList {
		i, series := i, series
		group.Go(func() error {
			return ExportSeriesCSV(series, climate, artifacts.CSVPaths[i])
		})
	}

	if err := group.Wait(); err != nil {
		return Artifacts{}, err
	}
	return artifacts, nil
}

// RenderSessionChart refreshes the accumulated series chart for a session
// and returns the chart path. Called after each draw so the rendered plot
// tracks the series on screen.
func RenderSessionChart(session *explorer.Session, area crophealth.Area) (string, error) {
	seriesList := session.Series()
	if len(seriesList) == 0 {
		return "", fmt.Errorf("session has no series to render")
	}

	dir := resultDir(area.Farm, area.Paddock)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create result folder: %v", err)
	}

	start, end := session.Dataset().Window()
	chartPath := filepath.Join(dir, fmt.Sprintf("chart_%s_%s.png",
		start.Format("2006_01_02"), end.Format("2006_01_02")))
	if err := RenderSeriesChart(seriesList, start, end, chartPath); err != nil {
		return "", err
	}
	return chartPath, nil
}
