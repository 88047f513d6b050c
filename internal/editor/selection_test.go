package editor

import (
	"testing"

	"brickyard/internal/grid"
	"brickyard/internal/scene"
)

// stubPicker returns whatever object is under the pointer next.
type stubPicker struct {
	next []*scene.Object
}

func (p *stubPicker) Pick(x, y, width, height float32) []scene.Hit {
	hits := make([]scene.Hit, 0, len(p.next))
	for i, o := range p.next {
		hits = append(hits, scene.Hit{Object: o, Distance: float32(i + 1)})
	}
	return hits
}

type countingRenderer struct {
	frames int
}

func (r *countingRenderer) RenderFrame() { r.frames++ }

func brick(name string, draggable bool) *scene.Object {
	o := scene.NewObject(name, "object1", scene.NewMaterial(name, scene.DefaultBrickColor))
	o.Draggable = draggable
	return o
}

func newSelection(t *testing.T, shared bool, objs ...*scene.Object) (*Selection, *stubPicker, *countingRenderer) {
	t.Helper()
	sc := scene.New()
	for _, o := range objs {
		sc.Add(o)
	}
	p := &stubPicker{}
	r := &countingRenderer{}
	s := NewSelection(SelectionOptions{
		Scene:         sc,
		Picker:        p,
		Grid:          grid.Default(),
		Render:        r,
		SharedDefault: shared,
		DefaultColor:  scene.DefaultBrickColor,
	})
	return s, p, r
}

func click(s *Selection, p *stubPicker, objs ...*scene.Object) {
	p.next = objs
	s.PointerDown(10, 10, 100, 100)
}

func highlighted(s *Selection, objs ...*scene.Object) int {
	n := 0
	for _, o := range objs {
		if o.Material == s.HighlightMaterial() {
			n++
		}
	}
	return n
}

func TestClickTogglesAndSwitches(t *testing.T) {
	a, b := brick("a", true), brick("b", true)
	s, p, _ := newSelection(t, true, a, b)

	click(s, p, a)
	if s.Selected() != a || a.Material != s.HighlightMaterial() {
		t.Fatal("first click should select and highlight a")
	}

	click(s, p, a)
	if s.Selected() != nil {
		t.Fatal("second click on a should deselect")
	}
	if a.Material != s.DefaultMaterial() {
		t.Fatalf("a should wear the default material, got %q", a.Material.Name)
	}

	click(s, p, a)
	click(s, p, b)
	if s.Selected() != b {
		t.Fatal("clicking b should switch the selection")
	}
	if a.Material != s.DefaultMaterial() || b.Material != s.HighlightMaterial() {
		t.Fatal("expected a default and b highlighted")
	}
}

func TestClickOnlyConsidersNearestHit(t *testing.T) {
	plate, a := brick("plate", false), brick("a", true)
	s, p, _ := newSelection(t, true, plate, a)

	click(s, p, plate, a)
	if s.Selected() != nil {
		t.Fatal("a non-draggable nearest hit must not select what is behind it")
	}
	click(s, p)
	if s.Selected() != nil {
		t.Fatal("empty click must not select")
	}

	click(s, p, a)
	click(s, p, plate)
	if s.Selected() != a {
		t.Fatal("clicking a non-draggable object keeps the selection")
	}
}

func TestKeyboardMoves(t *testing.T) {
	tests := []struct {
		key  Key
		want [3]float32
	}{
		{KeyArrowRight, [3]float32{2, 0, 0}},
		{KeyArrowLeft, [3]float32{-2, 0, 0}},
		{KeyArrowUp, [3]float32{0, 0, -2}},
		{KeyArrowDown, [3]float32{0, 0, 2}},
		{KeyShift, [3]float32{0, 2.4, 0}},
		{KeyControl, [3]float32{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			a := brick("a", true)
			s, p, _ := newSelection(t, true, a)
			click(s, p, a)
			s.KeyDown(tt.key)
			for i := range 3 {
				if !near(a.Position[i], tt.want[i]) {
					t.Fatalf("position = %v, want %v", a.Position, tt.want)
				}
			}
			if a.Material != s.HighlightMaterial() {
				t.Fatal("moved object should stay highlighted")
			}
		})
	}
}

func TestVerticalKeysUnderFloorPolicy(t *testing.T) {
	a := brick("a", true)
	a.Position = [3]float32{0, 1, 0}
	s, p, _ := newSelection(t, true, a)
	s.grid.Policy = grid.SnapFloorOnly
	click(s, p, a)

	s.KeyDown(KeyShift)
	if !near(a.Position[1], 3.4) {
		t.Fatalf("after Shift: y = %v, want 3.4", a.Position[1])
	}
	s.KeyDown(KeyControl)
	if !near(a.Position[1], 1) {
		t.Fatalf("after Control: y = %v, want 1", a.Position[1])
	}
}

func TestKeysWithoutSelectionAreIgnored(t *testing.T) {
	a := brick("a", true)
	s, _, r := newSelection(t, true, a)
	for _, k := range []Key{KeyArrowUp, KeyShift, KeyDelete, KeyNone} {
		s.KeyDown(k)
	}
	if a.Position != [3]float32{} {
		t.Fatalf("unselected object moved to %v", a.Position)
	}
	s.KeyDown(KeyEscape)
	if s.Selected() != nil {
		t.Fatal("escape with nothing selected must stay empty")
	}
	if r.frames != 0 {
		t.Fatalf("expected no redraws, got %d", r.frames)
	}
}

func TestEscapeClearsSelection(t *testing.T) {
	a := brick("a", true)
	s, p, _ := newSelection(t, true, a)
	click(s, p, a)
	s.KeyDown(KeyEscape)
	if s.Selected() != nil || a.Material == s.HighlightMaterial() {
		t.Fatal("escape should clear and unhighlight")
	}
}

func TestDeleteRemovesSelected(t *testing.T) {
	a, b := brick("a", true), brick("b", true)
	s, p, _ := newSelection(t, true, a, b)
	var removed *scene.Object
	s.OnRemove = func(o *scene.Object) { removed = o }

	click(s, p, a)
	s.KeyDown(KeyDelete)
	if removed != a {
		t.Fatal("OnRemove should receive a")
	}
	if s.Selected() != nil {
		t.Fatal("selection should be empty after delete")
	}
	if s.scene.Contains(a) || !s.scene.Contains(b) {
		t.Fatal("only a should leave the scene")
	}
}

func TestAtMostOneHighlighted(t *testing.T) {
	a, b, c := brick("a", true), brick("b", true), brick("c", true)
	s, p, _ := newSelection(t, true, a, b, c)
	steps := []func(){
		func() { click(s, p, a) },
		func() { click(s, p, b) },
		func() { s.KeyDown(KeyArrowLeft) },
		func() { click(s, p, c) },
		func() { click(s, p, c) },
		func() { click(s, p, a) },
		func() { s.KeyDown(KeyShift) },
		func() { s.KeyDown(KeyEscape) },
	}
	for i, step := range steps {
		step()
		n := highlighted(s, a, b, c)
		if n > 1 {
			t.Fatalf("step %d: %d objects highlighted", i, n)
		}
		if (s.Selected() != nil) != (n == 1) {
			t.Fatalf("step %d: selection and highlight disagree", i)
		}
	}
}

func TestObjectMaterialPolicyRestoresBase(t *testing.T) {
	a := brick("a", true)
	own := a.Base
	s, p, _ := newSelection(t, false, a)
	click(s, p, a)
	click(s, p, a)
	if a.Material != own {
		t.Fatalf("expected a's own material back, got %q", a.Material.Name)
	}
}

func TestSharedDefaultFollowsColor(t *testing.T) {
	a := brick("a", true)
	s, p, _ := newSelection(t, true, a)
	blue, _ := scene.ParseHexColor("#0000ff")
	s.SetDefaultColor(blue)
	click(s, p, a)
	click(s, p, a)
	if a.Material.Color != blue {
		t.Fatalf("deselected color = %v, want blue", a.Material.Color)
	}
}
