package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/ballfield/internal/field"
	"github.com/san-kum/ballfield/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Width:  800,
		Height: 600,
		Radii:  []float64{20, 30},
		Colors: []int{1, 4},
		Frames: []sim.Frame{
			{Index: 0, State: []float64{100, 100, 1, 0, 300, 300, 0, -1}, Energy: 25, Collisions: 0},
			{Index: 1, State: []float64{101, 100, 1, 0, 300, 299, 0, -1}, Energy: 25, Collisions: 1, Bounces: 2},
		},
		Metrics:    map[string]float64{"kinetic_energy": 25},
		StepsTaken: 2,
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunInfo{Preset: "login", Seed: 42, Params: field.DefaultParams()}, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "login_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 || meta.Frames != 2 || meta.Width != 800 {
		t.Errorf("metadata lost values: %+v", meta)
	}
	if meta.Metrics["kinetic_energy"] != 25 {
		t.Errorf("expected energy 25, got %f", meta.Metrics["kinetic_energy"])
	}
	if meta.Params.Count != field.DefaultCount {
		t.Errorf("params not stored: %+v", meta.Params)
	}

	table, err := st.LoadStates(runID)
	if err != nil {
		t.Fatalf("load states failed: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if len(table.Header) != 4+8 {
		t.Errorf("expected 12 columns, got %d", len(table.Header))
	}
	if col := table.Column("collisions"); len(col) != 2 || col[1] != 1 {
		t.Errorf("collisions column = %v", col)
	}
	if col := table.Column("b1_y"); col[1] != 299 {
		t.Errorf("b1_y column = %v", col)
	}
	if table.Column("missing") != nil {
		t.Error("expected nil for missing column")
	}

	bodies, err := Bodies(meta, table.Rows[1])
	if err != nil {
		t.Fatalf("rebuild bodies: %v", err)
	}
	if len(bodies) != 2 || bodies[0].Pos.X != 101 || bodies[1].Radius() != 30 || bodies[1].Color() != 4 {
		t.Errorf("unexpected bodies: %+v", bodies)
	}

	if _, err := Bodies(meta, table.Rows[1][:5]); err == nil {
		t.Error("expected error for short row")
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save(RunInfo{Preset: "calm"}, sampleResult()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID == runs[1].ID {
		t.Error("runs saved in the same second share an id")
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(RunInfo{Preset: "login"}, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{metadataFile, statesFile} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	runID, err := st.Save(RunInfo{Preset: "login", Seed: 7}, sampleResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.Seed != 7 || len(data.Frames) != 2 || data.Frames[1].Bounces != 2 || len(data.Frames[0].State) != 8 {
		t.Errorf("unexpected export: %+v", data)
	}
}
