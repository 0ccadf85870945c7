package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/agrisight/agrisight-cli/internal/explorer"
	"github.com/fogleman/gg"
)

const (
	chartWidth   = 960
	chartHeight  = 540
	chartMarginX = 70.0
	chartMarginY = 50.0
)

var seriesPalette = []struct{ r, g, b float64 }{
	{0.85, 0.33, 0.10},
	{0.00, 0.45, 0.74},
	{0.47, 0.67, 0.19},
	{0.49, 0.18, 0.56},
	{0.93, 0.69, 0.13},
}

// RenderSeriesChart plots every series over the dataset window. Valid points
// get a filled marker, lines break where the coverage rule removed a date.
func RenderSeriesChart(seriesList []*explorer.Series, start, end time.Time, outputPath string) error {
	if len(seriesList) == 0 {
		return fmt.Errorf("no series to plot")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create result folder: %v", err)
	}

	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotW := float64(chartWidth) - 2*chartMarginX
	plotH := float64(chartHeight) - 2*chartMarginY

	xAt := func(t time.Time) float64 {
		span := end.Sub(start).Seconds()
		if span <= 0 {
			return chartMarginX + plotW/2
		}
		return chartMarginX + plotW*t.Sub(start).Seconds()/span
	}
	// The index axis runs from -1 at the bottom to 1 at the top.
	yAt := func(v float64) float64 {
		return chartMarginY + plotH*(1-(v+1)/2)
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.SetLineWidth(1)
	dc.DrawLine(chartMarginX, chartMarginY, chartMarginX, chartMarginY+plotH)
	dc.DrawLine(chartMarginX, chartMarginY+plotH, chartMarginX+plotW, chartMarginY+plotH)
	dc.Stroke()

	for _, v := range []float64{-1, -0.5, 0, 0.5, 1} {
		y := yAt(v)
		dc.SetRGBA(0.6, 0.6, 0.6, 0.5)
		dc.DrawLine(chartMarginX, y, chartMarginX+plotW, y)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f", v), chartMarginX-8, y, 1, 0.35)
	}

	dateTicks := 6
	for i := 0; i <= dateTicks; i++ {
		t := start.Add(time.Duration(float64(end.Sub(start)) * float64(i) / float64(dateTicks)))
		x := xAt(t)
		dc.SetRGBA(0.6, 0.6, 0.6, 0.5)
		dc.DrawLine(x, chartMarginY+plotH, x, chartMarginY+plotH+4)
		dc.Stroke()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawStringAnchored(t.Format("2006-01-02"), x, chartMarginY+plotH+16, 0.5, 0.5)
	}

	for i, series := range seriesList {
		clr := seriesPalette[i%len(seriesPalette)]
		dc.SetRGB(clr.r, clr.g, clr.b)
		dc.SetLineWidth(2)

		prevValid := false
		var prevX, prevY float64
		for _, point := range series.Points {
			if !point.Valid {
				prevValid = false
				continue
			}
			x := xAt(point.Date)
			y := yAt(point.MeanNDVI)
			if prevValid {
				dc.DrawLine(prevX, prevY, x, y)
				dc.Stroke()
			}
			prevX, prevY = x, y
			prevValid = true
		}
		for _, point := range series.Points {
			if !point.Valid {
				continue
			}
			dc.DrawCircle(xAt(point.Date), yAt(point.MeanNDVI), 3.5)
			dc.Fill()
		}

		legendY := chartMarginY + float64(i)*16
		dc.DrawRectangle(chartMarginX+plotW-150, legendY-5, 10, 10)
		dc.Fill()
		dc.SetRGB(0.2, 0.2, 0.2)
		dc.DrawString(series.Label, chartMarginX+plotW-134, legendY+4)
	}

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawStringAnchored("mean NDVI", chartMarginX, chartMarginY-14, 0, 0.5)

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save chart: %v", err)
	}
	return nil
}
