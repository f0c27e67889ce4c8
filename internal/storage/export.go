package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/ballfield/internal/sim"
)

type ExportData struct {
	Preset  string             `json:"preset"`
	Seed    int64              `json:"seed"`
	Width   float64            `json:"width"`
	Height  float64            `json:"height"`
	Radii   []float64          `json:"radii"`
	Colors  []int              `json:"colors"`
	Frames  []sim.Frame        `json:"frames"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run's metadata and recorded frames as one document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	table, err := s.LoadStates(runID)
	if err != nil {
		return err
	}

	data := ExportData{
		Preset:  meta.Preset,
		Seed:    meta.Seed,
		Width:   meta.Width,
		Height:  meta.Height,
		Radii:   meta.Radii,
		Colors:  meta.Colors,
		Frames:  make([]sim.Frame, 0, len(table.Rows)),
		Metrics: meta.Metrics,
	}
	for _, row := range table.Rows {
		if len(row) < 4 {
			continue
		}
		data.Frames = append(data.Frames, sim.Frame{
			Index:      uint64(row[0]),
			Energy:     row[1],
			Collisions: int(row[2]),
			Bounces:    int(row[3]),
			State:      row[4:],
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (s *Store) ExportJSONFile(path, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(f, runID)
}
