package export

import (
	"strings"
	"testing"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

func TestCurvesToSVG(t *testing.T) {
	s := harmonic.NewSampler()
	s.GridSize = 21
	res, err := s.Sample(6)
	if err != nil {
		t.Fatal(err)
	}

	svg := CurvesToSVG(ResultSeries(res), 640, 360, Options{Title: "Impulse", XLabel: "Time", YLabel: "Force"})

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("expected 2 polylines, got %d", n)
	}
	for _, want := range []string{ReferenceColor, SuperposedColor, ">N = 1<", ">N = 6<", ">Time<", ">Force<", ">Impulse<"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if n := strings.Count(svg, " L"); n != 2*20 {
		t.Errorf("expected %d line segments, got %d", 2*20, n)
	}
}

func TestCurvesToSVG_Empty(t *testing.T) {
	if svg := CurvesToSVG(nil, 100, 100, Options{}); svg != "" {
		t.Error("expected empty output without series")
	}
	short := []Series{{Label: "x", Points: []harmonic.Point{{X: 0, Y: 0}}}}
	if svg := CurvesToSVG(short, 100, 100, Options{}); svg != "" {
		t.Error("expected empty output for a single point")
	}
}

func TestCurvesToSVG_EscapesLabels(t *testing.T) {
	series := []Series{{Label: "a<b", Color: "#fff", Points: []harmonic.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}}
	svg := CurvesToSVG(series, 100, 100, Options{})
	if !strings.Contains(svg, "a&lt;b") {
		t.Error("label not escaped")
	}
}
