package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/explorer"
	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
)

func mapScale(grid crophealth.Grid) int {
	largest := grid.Width
	if grid.Height > largest {
		largest = grid.Height
	}
	scale := 400 / largest
	if scale < 1 {
		return 1
	}
	if scale > 20 {
		return 20
	}
	return scale
}

// RenderSelectionMap draws the dataset extent with the most recent
// observation as backdrop, then the paddock boundary and every drawn
// region on top.
func RenderSelectionMap(dataset *crophealth.Dataset, area crophealth.Area, seriesList []*explorer.Series, outputPath string) error {
	if dataset.Len() == 0 {
		return fmt.Errorf("dataset has no observations to map")
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create result folder: %v", err)
	}

	grid := dataset.Grid
	scale := mapScale(grid)
	dc := gg.NewContext(grid.Width*scale, grid.Height*scale)

	latest := dataset.Observations[dataset.Len()-1]
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			idx := y*grid.Width + x
			if latest.Valid[idx] {
				clr := valueToColor(normalize(latest.NDVI[idx], 0, 1))
				dc.SetRGB255(int(clr.R), int(clr.G), int(clr.B))
			} else {
				dc.SetRGB255(int(maskedPixelColor.R), int(maskedPixelColor.G), int(maskedPixelColor.B))
			}
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	bound := grid.Bound()
	project := func(p orb.Point) (float64, float64) {
		fx := (p[0] - bound.Min[0]) / (bound.Max[0] - bound.Min[0]) * float64(grid.Width*scale)
		fy := (bound.Max[1] - p[1]) / (bound.Max[1] - bound.Min[1]) * float64(grid.Height*scale)
		return fx, fy
	}

	drawRing := func(ring orb.Ring) {
		if len(ring) == 0 {
			return
		}
		x0, y0 := project(ring[0])
		dc.MoveTo(x0, y0)
		for _, p := range ring[1:] {
			x, y := project(p)
			dc.LineTo(x, y)
		}
		dc.ClosePath()
		dc.Stroke()
	}

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(2)
	for _, ring := range area.Polygon {
		drawRing(ring)
	}

	for i, series := range seriesList {
		if series.Selection == nil {
			continue
		}
		clr := seriesPalette[i%len(seriesPalette)]
		dc.SetRGB(clr.r, clr.g, clr.b)
		dc.SetLineWidth(2)
		drawRing(series.Selection.Ring())
	}

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("failed to save map: %v", err)
	}
	return nil
}
