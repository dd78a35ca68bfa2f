package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

const (
	ReferenceColor  = "#ff0000"
	SuperposedColor = "#00ff00"
)

// Series is one polyline of a plot.
type Series struct {
	Label  string
	Color  string
	Points []harmonic.Point
}

type Options struct {
	Title  string
	XLabel string
	YLabel string
}

// ResultSeries turns a recompute into the reference (red) and superposed (green) series.
func ResultSeries(res *harmonic.Result) []Series {
	return []Series{
		{Label: res.Reference.Label, Color: ReferenceColor, Points: res.Reference.Points},
		{Label: res.Superposed.Label, Color: SuperposedColor, Points: res.Superposed.Points},
	}
}

// CurvesToSVG draws every series into one SVG document with axis labels and a legend.
func CurvesToSVG(series []Series, width, height int, opts Options) string {
	var plotted []Series
	for _, s := range series {
		if len(s.Points) >= 2 {
			plotted = append(plotted, s)
		}
	}
	if len(plotted) == 0 {
		return ""
	}

	// Find bounds
	first := plotted[0].Points[0]
	minX, maxX := first.X, first.X
	minY, maxY := first.Y, first.Y
	for _, s := range plotted {
		for _, p := range s.Points {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	project := func(p harmonic.Point) (float64, float64) {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Zero lines
	zx, zy := project(harmonic.Point{})
	if minY < 0 && maxY > 0 {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, zy, width, zy))
	}
	if minX < 0 && maxX > 0 {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#444466" stroke-width="1"/>
`, zx, zx, height))
	}

	for _, s := range plotted {
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, s.Color))
		for i, p := range s.Points {
			x, y := project(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	text := func(x, y float64, anchor, body string, extra string) {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#cccccc" font-family="monospace" font-size="12" text-anchor="%s"%s>%s</text>
`, x, y, anchor, extra, html.EscapeString(body)))
	}

	if opts.Title != "" {
		text(float64(width)/2, 16, "middle", opts.Title, "")
	}
	if opts.XLabel != "" {
		text(float64(width)/2, float64(height)-6, "middle", opts.XLabel, "")
	}
	if opts.YLabel != "" {
		text(14, float64(height)/2, "middle", opts.YLabel, fmt.Sprintf(` transform="rotate(-90 14 %.1f)"`, float64(height)/2))
	}

	// Legend
	for i, s := range plotted {
		y := 20 + float64(i)*16
		x := float64(width) - 90
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, x, y-4, x+16, y-4, s.Color))
		text(x+22, y, "start", s.Label, "")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
