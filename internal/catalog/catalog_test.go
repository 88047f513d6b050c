package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"brickyard/internal/models"
)

func TestDefault(t *testing.T) {
	c := Default()
	if len(c.Bricks) != 11 {
		t.Fatalf("expected 11 bricks, got %d", len(c.Bricks))
	}
	b, err := c.Lookup("object6")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if b.Path != "1x12.stl" {
		t.Fatalf("object6 path = %q", b.Path)
	}
	if _, err := c.Lookup(BaseplateID); err != nil {
		t.Fatalf("baseplate lookup: %v", err)
	}
	if _, err := c.Lookup("object99"); !errors.Is(err, ErrUnknownBrick) {
		t.Fatalf("err = %v, want ErrUnknownBrick", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricks.yaml")
	doc := "bricks:\n  - id: tall\n    name: brick tall\n    path: tall/1x1.stl\nbaseplate:\n  id: baseplate\n  name: plate\n  path: 782.stl\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Bricks) != 1 || c.Bricks[0].ID != "tall" || c.Baseplate == nil {
		t.Fatalf("unexpected catalog %+v", c)
	}
	if got := c.Bricks[0].Label(); got != "Brick Tall" {
		t.Fatalf("label = %q", got)
	}
}

func TestLoadRejectsIncompleteBrick(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bricks.yaml")
	if err := os.WriteFile(path, []byte("bricks:\n  - name: nameless\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for brick without id")
	}
}

func TestResolveFallsBackToScan(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"1x1", "782"} {
		dir := filepath.Join(root, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, name+models.Ext), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	c, err := Resolve(filepath.Join(root, "missing.yaml"), root)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(c.Bricks) != 1 || c.Bricks[0].ID != "object1" {
		t.Fatalf("unexpected bricks %+v", c.Bricks)
	}
	if c.Baseplate == nil || c.Baseplate.Path != filepath.Join(root, "782", "782.stl") {
		t.Fatalf("unexpected baseplate %+v", c.Baseplate)
	}
}

func TestResolveDefaultsWhenNothingOnDisk(t *testing.T) {
	dir := t.TempDir()
	c, err := Resolve(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "nomodels"))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(c.Bricks) != len(Default().Bricks) {
		t.Fatalf("expected default catalog, got %d bricks", len(c.Bricks))
	}
}

func TestMeshPath(t *testing.T) {
	dir := filepath.Join("resources", "models")
	if got := MeshPath(dir, Brick{Path: "1x2.stl"}); got != filepath.Join(dir, "1x2.stl") {
		t.Fatalf("relative path = %q", got)
	}
	inside := filepath.Join(dir, "1x2", "1x2.stl")
	if got := MeshPath(dir, Brick{Path: inside}); got != inside {
		t.Fatalf("already-joined path = %q", got)
	}
}
