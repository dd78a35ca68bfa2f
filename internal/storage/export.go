package storage

import (
	"encoding/json"
	"io"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

type ExportData struct {
	ID         string             `json:"id,omitempty"`
	App        string             `json:"app"`
	Harmonics  int                `json:"harmonics"`
	Points     int                `json:"points"`
	Times      []float64          `json:"times"`
	Reference  SeriesData         `json:"reference"`
	Superposed SeriesData         `json:"superposed"`
	Metrics    map[string]float64 `json:"metrics,omitempty"`
}

type SeriesData struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// ExportJSON writes a run with both curves as indented JSON.
func ExportJSON(w io.Writer, id, app string, result *harmonic.Result, metrics map[string]float64) error {
	data := ExportData{
		ID:        id,
		App:       app,
		Harmonics: result.Harmonics,
		Points:    len(result.Grid),
		Times:     []float64(result.Grid),
		Reference: SeriesData{
			Label:  result.Reference.Label,
			Values: result.Reference.Ys(),
		},
		Superposed: SeriesData{
			Label:  result.Superposed.Label,
			Values: result.Superposed.Ys(),
		},
		Metrics: metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
