package editorconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"brickyard/internal/config"
	"brickyard/internal/grid"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/editor.json"

// Material policies for what an object shows after it is deselected.
const (
	MaterialShared = "shared" // one shared default material carrying the last picked color
	MaterialObject = "object" // the object's own material from when it was created
)

// Prefs are the editor preferences. Persisted across runs.
type Prefs struct {
	GridSize        float32 `json:"grid_size"`
	VerticalStep    float32 `json:"vertical_step"`
	TranslationSnap float32 `json:"translation_snap"`
	SnapPolicy      string  `json:"snap_policy"`
	MaterialPolicy  string  `json:"material_policy"`
	BrickScale      float32 `json:"brick_scale"`
	BrickColor      string  `json:"brick_color"`
	ModelsDir       string  `json:"models_dir"`
	CatalogPath     string  `json:"catalog_path"`
	ShowHUD         bool    `json:"show_hud"`
}

// Default returns the stock preferences: 2 unit grid, 2.4 unit layers, red bricks.
func Default() Prefs {
	return Prefs{
		GridSize:        grid.DefaultSize,
		VerticalStep:    grid.DefaultVerticalStep,
		TranslationSnap: grid.DefaultTranslationSnap,
		SnapPolicy:      grid.SnapNearest.String(),
		MaterialPolicy:  MaterialShared,
		BrickScale:      0.25,
		BrickColor:      "#ff0000",
		ModelsDir:       "resources/models",
		CatalogPath:     "assets/bricks.yaml",
		ShowHUD:         true,
	}
}

// pathEnv lets the preferences file be relocated without flags.
type pathEnv struct {
	Path string `env:"BRICKYARD_EDITOR_CONFIG" envDefault:"config/editor.json"`
}

var parseEnv = config.ParseEnv

// Path returns the preferences path, honouring BRICKYARD_EDITOR_CONFIG.
func Path() (string, error) {
	var e pathEnv
	if err := parseEnv(&e); err != nil {
		return DefaultPath, fmt.Errorf("editor config path: %w", err)
	}
	if e.Path == "" {
		return DefaultPath, nil
	}
	return e.Path, nil
}

// Load reads preferences from path. A missing or unreadable file yields Default() and no
// error; fields absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to path, creating its directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Grid converts the preferences into grid parameters.
func (p Prefs) Grid() (grid.Params, error) {
	policy, err := grid.ParseSnapPolicy(p.SnapPolicy)
	if err != nil {
		return grid.Params{}, fmt.Errorf("editor config: %w", err)
	}
	return grid.Params{
		Size:            p.GridSize,
		VerticalStep:    p.VerticalStep,
		MinY:            grid.FloorY,
		TranslationSnap: p.TranslationSnap,
		Policy:          policy,
	}.Normalize(), nil
}

// SharedMaterial reports whether deselected objects use the shared default material.
func (p Prefs) SharedMaterial() (bool, error) {
	switch p.MaterialPolicy {
	case "", MaterialShared:
		return true, nil
	case MaterialObject:
		return false, nil
	}
	return false, fmt.Errorf("editor config: unknown material policy %q", p.MaterialPolicy)
}
