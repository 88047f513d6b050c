package gizmo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"brickyard/internal/grid"
	"brickyard/internal/scene"
)

func down(x, z float32) scene.Ray {
	return scene.Ray{Origin: mgl32.Vec3{x, 10, z}, Dir: mgl32.Vec3{0, -1, 0}}
}

func TestHorizontalDragSnapsOnRelease(t *testing.T) {
	g := New(grid.Default())
	o := scene.NewObject("brick", "object1", nil)
	g.Attach(o)

	var changes int
	var dragEvents []bool
	g.OnObjectChanged(func(*scene.Object) { changes++ })
	g.OnDraggingChanged(func(v bool) { dragEvents = append(dragEvents, v) })

	if !g.Begin(down(0, 0), AxisXZ) {
		t.Fatal("expected drag to begin")
	}
	g.Drag(down(3.2, 0.9))
	if o.Position != [3]float32{3.2, 0, 0.9} {
		t.Fatalf("position during drag = %v", o.Position)
	}
	g.End()
	if o.Position != [3]float32{4, 0, 0} {
		t.Fatalf("position after release = %v", o.Position)
	}
	if changes != 2 {
		t.Fatalf("expected 2 change notifications, got %d", changes)
	}
	if len(dragEvents) != 2 || !dragEvents[0] || dragEvents[1] {
		t.Fatalf("unexpected dragging events %v", dragEvents)
	}
}

func TestVerticalDrag(t *testing.T) {
	g := New(grid.Default())
	o := scene.NewObject("brick", "object1", nil)
	g.Attach(o)
	side := func(y float32) scene.Ray {
		return scene.Ray{Origin: mgl32.Vec3{0, y, 10}, Dir: mgl32.Vec3{0, 0, -1}}
	}
	if !g.Begin(side(0), AxisY) {
		t.Fatal("expected vertical drag to begin")
	}
	g.Drag(side(3.5))
	if o.Position[1] != 3.5 || o.Position[0] != 0 || o.Position[2] != 0 {
		t.Fatalf("unexpected position %v", o.Position)
	}
	g.End()
	if g.Dragging() {
		t.Fatal("drag should have ended")
	}
}

func TestBeginRequiresAttachedObject(t *testing.T) {
	g := New(grid.Default())
	if g.Begin(down(0, 0), AxisXZ) {
		t.Fatal("begin without an object should fail")
	}
	g.DragBy([3]float32{1, 0, 0})
	g.End()
}

func TestAttachEndsRunningDrag(t *testing.T) {
	g := New(grid.Default())
	a := scene.NewObject("a", "k", nil)
	b := scene.NewObject("b", "k", nil)
	var last bool
	g.OnDraggingChanged(func(v bool) { last = v })
	g.Attach(a)
	g.DragBy([3]float32{1.1, 0, 0})
	if !last {
		t.Fatal("expected dragging to start")
	}
	g.Attach(b)
	if last || g.Dragging() {
		t.Fatal("attaching another object should end the drag")
	}
	if a.Position[0] != 2 {
		t.Fatalf("released object should be snapped, got %v", a.Position)
	}
	if g.Object() != b {
		t.Fatal("expected b to be attached")
	}
}
