// Package catalog lists the bricks the object bar can spawn.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"brickyard/internal/models"
)

// ErrUnknownBrick is returned when an id is not in the catalog.
var ErrUnknownBrick = errors.New("unknown brick")

// BaseplateID is the catalog id of the fixed, non-draggable ground plate.
const BaseplateID = "baseplate"

// Brick is one spawnable mesh. Path is relative to the models directory unless absolute.
type Brick struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Label is the name shown in the object bar.
func (b Brick) Label() string {
	return DisplayName(b.Name)
}

// Catalog is the ordered object bar plus the baseplate.
type Catalog struct {
	Bricks    []Brick `yaml:"bricks"`
	Baseplate *Brick  `yaml:"baseplate,omitempty"`
}

// Default returns the eleven standard bricks and the 782 baseplate.
func Default() Catalog {
	sizes := []string{"1x1", "1x2", "1x3", "1x4", "1x5", "1x12", "2x2", "2x3", "2x4", "2x5", "2x12"}
	c := Catalog{Bricks: make([]Brick, 0, len(sizes))}
	for i, s := range sizes {
		c.Bricks = append(c.Bricks, Brick{
			ID:   fmt.Sprintf("object%d", i+1),
			Name: "brick " + s,
			Path: s + models.Ext,
		})
	}
	c.Baseplate = &Brick{ID: BaseplateID, Name: "baseplate", Path: "782" + models.Ext}
	return c
}

// Load reads a YAML catalog. The returned error wraps os.ErrNotExist when the file is missing.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	for i, b := range c.Bricks {
		if b.ID == "" || b.Path == "" {
			return Catalog{}, fmt.Errorf("catalog %s: brick %d needs id and path", path, i+1)
		}
	}
	return c, nil
}

// FromEntries builds a catalog from a models directory listing. Entries named like the
// baseplate mesh ("782") become the baseplate.
func FromEntries(entries []models.Entry) Catalog {
	var c Catalog
	for _, e := range entries {
		if e.Name == "782" || strings.EqualFold(e.Name, BaseplateID) {
			c.Baseplate = &Brick{ID: BaseplateID, Name: "baseplate", Path: e.Path}
			continue
		}
		c.Bricks = append(c.Bricks, Brick{
			ID:   fmt.Sprintf("object%d", len(c.Bricks)+1),
			Name: "brick " + e.Name,
			Path: e.Path,
		})
	}
	return c
}

// Resolve loads the catalog at path; when it does not exist, it scans modelsDir, and when
// that fails too, it falls back to Default.
func Resolve(path, modelsDir string) (Catalog, error) {
	c, err := Load(path)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return Catalog{}, err
	}
	if entries, scanErr := models.Scan(modelsDir); scanErr == nil && len(entries) > 0 {
		return FromEntries(entries), nil
	}
	return Default(), nil
}

// Lookup returns the brick with the given id, including the baseplate.
func (c Catalog) Lookup(id string) (Brick, error) {
	if c.Baseplate != nil && c.Baseplate.ID == id {
		return *c.Baseplate, nil
	}
	for _, b := range c.Bricks {
		if b.ID == id {
			return b, nil
		}
	}
	return Brick{}, fmt.Errorf("%w: %q", ErrUnknownBrick, id)
}

// MeshPath joins a brick path with the models directory unless it is already absolute or
// already points inside that directory.
func MeshPath(modelsDir string, b Brick) string {
	if filepath.IsAbs(b.Path) || modelsDir == "" {
		return b.Path
	}
	clean := filepath.Clean(b.Path)
	if strings.HasPrefix(clean, filepath.Clean(modelsDir)+string(filepath.Separator)) {
		return clean
	}
	return filepath.Join(modelsDir, clean)
}

var titleCaser = cases.Title(language.English)

// DisplayName title-cases a brick name for the UI: "corner_brick" becomes "Corner Brick".
func DisplayName(name string) string {
	return titleCaser.String(strings.ReplaceAll(strings.TrimSpace(name), "_", " "))
}
