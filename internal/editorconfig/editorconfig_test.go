package editorconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"brickyard/internal/grid"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p != Default() {
		t.Fatalf("expected defaults, got %+v", p)
	}
}

func TestSaveLoadKeepsPolicies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "editor.json")
	p := Default()
	p.SnapPolicy = "floor"
	p.MaterialPolicy = MaterialObject
	if err := Save(path, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	g, err := got.Grid()
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if g.Policy != grid.SnapFloorOnly {
		t.Fatalf("policy = %v, want floor", g.Policy)
	}
	shared, err := got.SharedMaterial()
	if err != nil || shared {
		t.Fatalf("SharedMaterial = %v, %v", shared, err)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.json")
	if err := os.WriteFile(path, []byte(`{"grid_size": 4}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.GridSize != 4 || p.BrickScale != 0.25 {
		t.Fatalf("unexpected prefs %+v", p)
	}
}

func TestInvalidPolicies(t *testing.T) {
	p := Default()
	p.SnapPolicy = "sometimes"
	if _, err := p.Grid(); err == nil {
		t.Fatal("expected snap policy error")
	}
	p = Default()
	p.MaterialPolicy = "rainbow"
	if _, err := p.SharedMaterial(); err == nil {
		t.Fatal("expected material policy error")
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv("BRICKYARD_EDITOR_CONFIG", "/tmp/brickyard.json")
	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/brickyard.json" {
		t.Fatalf("Path = %q", got)
	}
}

func TestPathReportsEnvError(t *testing.T) {
	orig := parseEnv
	t.Cleanup(func() { parseEnv = orig })
	parseEnv = func(any) error { return errors.New("bad env") }

	got, err := Path()
	if err == nil {
		t.Fatal("expected error")
	}
	if got != DefaultPath {
		t.Fatalf("Path = %q, want %q", got, DefaultPath)
	}
}
