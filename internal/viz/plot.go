package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

const (
	minPlotWidth  = 20
	minPlotHeight = 4
	// room for asciigraph's axis labels
	plotLabelWidth = 12
)

// RenderPlot draws the reference curve in red and the superposed curve in green.
func RenderPlot(res *harmonic.Result, width, height int, caption string) string {
	if res == nil || res.Reference.Len() < 2 {
		return Subtle.Render("press enter to draw")
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}
	if height < minPlotHeight {
		height = minPlotHeight
	}
	return asciigraph.PlotMany(
		[][]float64{res.Reference.Ys(), res.Superposed.Ys()},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green),
		asciigraph.SeriesLegends(res.Reference.Label, res.Superposed.Label),
		asciigraph.Caption(caption),
	)
}

// plotSize maps the free area and zoom factor to asciigraph dimensions.
// Zoom scales the height; zooming out below 1 also narrows the plot.
func plotSize(freeWidth, freeHeight int, zoom float64) (int, int) {
	w := freeWidth - plotLabelWidth
	if zoom < 1 {
		w = int(float64(w) * zoom)
	}
	h := int(float64(freeHeight) / 3 * zoom)
	if h > freeHeight {
		h = freeHeight
	}
	if w < minPlotWidth {
		w = minPlotWidth
	}
	if h < minPlotHeight {
		h = minPlotHeight
	}
	return w, h
}
