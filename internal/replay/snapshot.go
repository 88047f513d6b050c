package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jinzhu/copier"

	"brickyard/internal/editor"
	"brickyard/internal/scene"
)

// ObjectState is the printable state of one scene object.
type ObjectState struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	Position  [3]float32 `json:"position"`
	Scale     [3]float32 `json:"scale"`
	RotationX float32    `json:"rotation_x"`
	Draggable bool       `json:"draggable"`
	Color     string     `json:"color"`
	Wearing   string     `json:"material"`
	Selected  bool       `json:"selected,omitempty"`
}

// Snapshot is the printable state of an editor.
type Snapshot struct {
	Mode     string        `json:"mode"`
	Color    string        `json:"color"`
	Selected string        `json:"selected,omitempty"`
	Objects  []ObjectState `json:"objects"`
	Failures []string      `json:"failures,omitempty"`
}

// Take captures e. The snapshot shares no memory with the scene.
func Take(e *editor.Editor) (Snapshot, error) {
	snap := Snapshot{
		Mode:    e.Modes.Mode().String(),
		Color:   scene.HexColor(e.Color()),
		Objects: []ObjectState{},
	}
	sel := e.Selection.Selected()
	if sel != nil {
		snap.Selected = sel.ID
	}
	for _, o := range e.Scene.Children() {
		var st ObjectState
		if err := copier.Copy(&st, o); err != nil {
			return Snapshot{}, fmt.Errorf("snapshot %s: %w", o.ID, err)
		}
		if o.Material != nil {
			st.Color = scene.HexColor(o.Material.Color)
			st.Wearing = o.Material.Name
		}
		st.Selected = o == sel
		snap.Objects = append(snap.Objects, st)
	}
	for _, f := range e.Failures() {
		snap.Failures = append(snap.Failures, fmt.Sprintf("%s: %v", f.Brick.ID, f.Err))
	}
	return snap, nil
}

// Write prints s as indented JSON.
func (s Snapshot) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
