package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/ballfield/internal/field"
	"github.com/san-kum/ballfield/internal/sim"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
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

type RunMetadata struct {
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Scenario  string             `json:"scenario,omitempty"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	Params    field.Params       `json:"params"`
	Radii     []float64          `json:"radii"`
	Colors    []int              `json:"colors"`
	Metrics   map[string]float64 `json:"metrics"`
}

// RunInfo describes a run about to be saved.
type RunInfo struct {
	Preset   string
	Scenario string
	Seed     int64
	Params   field.Params
}

func (s *Store) Save(info RunInfo, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d_%s", info.Preset, now.Unix(), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    info.Preset,
		Scenario:  info.Scenario,
		Timestamp: now,
		Seed:      info.Seed,
		Frames:    result.StepsTaken,
		Width:     result.Width,
		Height:    result.Height,
		Params:    info.Params,
		Radii:     result.Radii,
		Colors:    result.Colors,
		Metrics:   result.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeStates(filepath.Join(runDir, statesFile), result); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeStates(path string, result *sim.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := []string{"frame", "energy", "collisions", "bounces"}
	for i := range result.Radii {
		header = append(header,
			fmt.Sprintf("b%d_x", i), fmt.Sprintf("b%d_y", i),
			fmt.Sprintf("b%d_vx", i), fmt.Sprintf("b%d_vy", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, fr := range result.Frames {
		row := []string{
			strconv.FormatUint(fr.Index, 10),
			strconv.FormatFloat(fr.Energy, 'f', 6, 64),
			strconv.Itoa(fr.Collisions),
			strconv.Itoa(fr.Bounces),
		}
		for _, v := range fr.State {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// List returns every readable run, oldest first.
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
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// StatesPath is the CSV file holding a run's recorded frames.
func (s *Store) StatesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, statesFile)
}

// Table is a parsed states.csv.
type Table struct {
	Header []string
	Rows   [][]float64
}

// Column returns the named column, or nil if it does not exist.
func (t *Table) Column(name string) []float64 {
	idx := -1
	for i, h := range t.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	col := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			col = append(col, row[idx])
		}
	}
	return col
}

func (s *Store) LoadStates(runID string) (*Table, error) {
	file, err := os.Open(s.StatesPath(runID))
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
	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{Header: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for _, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: %w", runID, err)
			}
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Bodies rebuilds the bodies of one recorded row.
func Bodies(meta *RunMetadata, row []float64) ([]field.Body, error) {
	const prefix = 4
	n := len(meta.Radii)
	if len(row) < prefix+n*4 {
		return nil, fmt.Errorf("run %s: row has %d values, want %d", meta.ID, len(row), prefix+n*4)
	}
	bodies := make([]field.Body, n)
	for i := 0; i < n; i++ {
		v := row[prefix+i*4:]
		color := 0
		if i < len(meta.Colors) {
			color = meta.Colors[i]
		}
		bodies[i] = field.NewBody(r2.Vec{X: v[0], Y: v[1]}, r2.Vec{X: v[2], Y: v[3]}, meta.Radii[i], color)
	}
	return bodies, nil
}
