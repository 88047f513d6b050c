package editor

import (
	"image/color"

	"brickyard/internal/grid"
	"brickyard/internal/scene"
)

// Picker returns the objects under a screen position, nearest first.
type Picker interface {
	Pick(x, y, width, height float32) []scene.Hit
}

// Selection tracks the single selected object. The selected object wears the shared
// highlight material; every other object wears its default material.
type Selection struct {
	scene  *scene.Scene
	picker Picker
	grid   grid.Params
	render Renderer

	highlight     *scene.Material
	sharedDefault *scene.Material
	useShared     bool

	selected *scene.Object

	// OnSelect runs after the selection changes; next may be nil.
	OnSelect func(prev, next *scene.Object)
	// OnRemove runs after Delete removed o from the scene.
	OnRemove func(o *scene.Object)
}

// SelectionOptions configure a Selection.
type SelectionOptions struct {
	Scene  *scene.Scene
	Picker Picker
	Grid   grid.Params
	Render Renderer
	// SharedDefault makes deselected objects wear one shared default material instead of
	// their own base material.
	SharedDefault bool
	// DefaultColor is the initial color of the shared default material.
	DefaultColor color.RGBA
}

// NewSelection returns an empty selection.
func NewSelection(opts SelectionOptions) *Selection {
	r := opts.Render
	if r == nil {
		r = nopRenderer{}
	}
	return &Selection{
		scene:         opts.Scene,
		picker:        opts.Picker,
		grid:          opts.Grid,
		render:        r,
		highlight:     scene.NewHighlightMaterial(),
		sharedDefault: scene.NewMaterial("default", opts.DefaultColor),
		useShared:     opts.SharedDefault,
	}
}

// Selected returns the selected object or nil.
func (s *Selection) Selected() *scene.Object {
	return s.selected
}

// HighlightMaterial returns the shared highlight material.
func (s *Selection) HighlightMaterial() *scene.Material {
	return s.highlight
}

// DefaultMaterial returns the shared default material.
func (s *Selection) DefaultMaterial() *scene.Material {
	return s.sharedDefault
}

// SetDefaultColor changes the color carried by the shared default material.
func (s *Selection) SetDefaultColor(c color.RGBA) {
	s.sharedDefault.Color = c
}

// PointerDown picks at a screen position and updates the selection from the nearest hit:
// a draggable object is selected, or deselected if it already was; anything else is
// ignored. It returns the nearest hit, if any.
func (s *Selection) PointerDown(x, y, width, height float32) (scene.Hit, bool) {
	if s.picker == nil {
		return scene.Hit{}, false
	}
	hits := s.picker.Pick(x, y, width, height)
	if len(hits) == 0 {
		return scene.Hit{}, false
	}
	s.Toggle(hits[0].Object)
	return hits[0], true
}

// Toggle applies a click on o: select it, or clear the selection if o is already selected.
// Nil and non-draggable objects leave the selection unchanged.
func (s *Selection) Toggle(o *scene.Object) {
	if o == nil || !o.Draggable {
		return
	}
	if o == s.selected {
		s.set(nil)
		return
	}
	s.set(o)
}

// Clear deselects. Safe with nothing selected.
func (s *Selection) Clear() {
	s.set(nil)
}

// KeyDown applies a key to the selection. Moves, Delete and Escape are handled; other keys
// are ignored. Nothing happens without a selection except Escape, which is always safe.
func (s *Selection) KeyDown(k Key) {
	switch k {
	case KeyEscape:
		s.Clear()
	case KeyDelete:
		s.deleteSelected()
	default:
		if m := k.Move(); m != grid.MoveNone {
			s.move(m)
		}
	}
}

func (s *Selection) move(m grid.Move) {
	o := s.selected
	if o == nil {
		return
	}
	s.unhighlight(o)
	o.Position = s.grid.Apply(o.Position, m)
	s.highlightObject(o)
	s.render.RenderFrame()
}

func (s *Selection) deleteSelected() {
	o := s.selected
	if o == nil {
		return
	}
	s.scene.Remove(o)
	s.selected = nil
	if s.OnSelect != nil {
		s.OnSelect(o, nil)
	}
	if s.OnRemove != nil {
		s.OnRemove(o)
	}
	s.render.RenderFrame()
}

func (s *Selection) set(next *scene.Object) {
	prev := s.selected
	if prev == next {
		return
	}
	if prev != nil {
		s.unhighlight(prev)
	}
	s.selected = next
	if next != nil {
		s.highlightObject(next)
	}
	if s.OnSelect != nil {
		s.OnSelect(prev, next)
	}
	s.render.RenderFrame()
}

func (s *Selection) highlightObject(o *scene.Object) {
	o.Material = s.highlight
}

func (s *Selection) unhighlight(o *scene.Object) {
	if s.useShared || o.Base == nil {
		o.Material = s.sharedDefault
		return
	}
	o.Material = o.Base
}
