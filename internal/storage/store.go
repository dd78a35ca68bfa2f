package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

const (
	metadataFile = "metadata.json"
	curvesFile   = "curves.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Run describes the inputs of a recompute.
type Run struct {
	App           string
	Harmonics     int
	Omega         float64
	ReferenceGain float64
}

type RunMetadata struct {
	ID            string             `json:"id"`
	App           string             `json:"app"`
	Timestamp     time.Time          `json:"timestamp"`
	Harmonics     int                `json:"harmonics"`
	GridSize      int                `json:"grid_size"`
	Omega         float64            `json:"omega"`
	ReferenceGain float64            `json:"reference_gain"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Curves is the tabular form of a stored run.
type Curves struct {
	Times      []float64
	Reference  []float64
	Superposed []float64
}

func (s *Store) Save(run Run, result *harmonic.Result, metrics map[string]float64) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", run.App, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		App:           run.App,
		Timestamp:     now,
		Harmonics:     run.Harmonics,
		GridSize:      len(result.Grid),
		Omega:         run.Omega,
		ReferenceGain: run.ReferenceGain,
		Metrics:       metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, curvesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result); err != nil {
		return "", err
	}
	return runID, nil
}

// WriteCSV writes time,reference,superposed rows.
func WriteCSV(out io.Writer, result *harmonic.Result) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"time", "reference", "superposed"}); err != nil {
		return err
	}
	ref, sup := result.Reference.Points, result.Superposed.Points
	for i := range result.Grid {
		row := []string{
			strconv.FormatFloat(result.Grid[i], 'f', 6, 64),
			formatAt(ref, i),
			formatAt(sup, i),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatAt(pts []harmonic.Point, i int) string {
	if i >= len(pts) {
		return "0"
	}
	return strconv.FormatFloat(pts[i].Y, 'f', 6, 64)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadCurves(runID string) (*Curves, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, curvesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	c := &Curves{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 3 {
			continue
		}
		vals := make([]float64, 3)
		ok := true
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		c.Times = append(c.Times, vals[0])
		c.Reference = append(c.Reference, vals[1])
		c.Superposed = append(c.Superposed, vals[2])
	}
	return c, nil
}

// Result rebuilds a harmonic.Result from stored curves, labelled from meta.
func (c *Curves) Result(meta *RunMetadata) *harmonic.Result {
	grid := harmonic.Grid(c.Times)
	return &harmonic.Result{
		Grid:       grid,
		Reference:  harmonic.Zip(harmonic.Legend(1), grid, c.Reference),
		Superposed: harmonic.Zip(harmonic.Legend(meta.Harmonics), grid, c.Superposed),
		Harmonics:  meta.Harmonics,
	}
}
