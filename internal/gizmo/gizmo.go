// Package gizmo implements a translate handle that moves one attached object with the
// pointer and reports changes to listeners.
package gizmo

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"brickyard/internal/grid"
	"brickyard/internal/scene"
)

// parallelEpsilon is the smallest ray/plane alignment we still intersect.
const parallelEpsilon = 1e-4

// Axis selects which plane a drag moves in.
type Axis int

const (
	// AxisXZ drags on the horizontal plane through the object.
	AxisXZ Axis = iota
	// AxisY drags vertically on a camera-facing plane.
	AxisY
)

// Gizmo moves the attached object. ObjectChanged listeners run on every drag update;
// DraggingChanged listeners run once when a drag starts and once when it ends.
type Gizmo struct {
	grid   grid.Params
	object *scene.Object

	dragging  bool
	axis      Axis
	startPos  [3]float32
	startHit  mgl32.Vec3
	planeN    mgl32.Vec3
	planeP    mgl32.Vec3
	onChanged []func(*scene.Object)
	onDrag    []func(bool)
}

// New returns a detached gizmo that snaps X/Z to p.TranslationSnap on release.
func New(p grid.Params) *Gizmo {
	return &Gizmo{grid: p}
}

// OnObjectChanged registers fn for every position change made by the gizmo.
func (g *Gizmo) OnObjectChanged(fn func(*scene.Object)) {
	g.onChanged = append(g.onChanged, fn)
}

// OnDraggingChanged registers fn for drag start (true) and end (false).
func (g *Gizmo) OnDraggingChanged(fn func(bool)) {
	g.onDrag = append(g.onDrag, fn)
}

// Attach binds the gizmo to o. A drag in progress is ended first.
func (g *Gizmo) Attach(o *scene.Object) {
	if g.object == o {
		return
	}
	g.End()
	g.object = o
}

// Detach unbinds the gizmo.
func (g *Gizmo) Detach() {
	g.Attach(nil)
}

// Object returns the attached object, or nil.
func (g *Gizmo) Object() *scene.Object {
	return g.object
}

// Dragging reports whether a drag is in progress.
func (g *Gizmo) Dragging() bool {
	return g.dragging
}

// Begin starts a drag along axis from the point where r meets the drag plane. It reports
// false when nothing is attached, a drag is already running or the ray misses the plane.
func (g *Gizmo) Begin(r scene.Ray, axis Axis) bool {
	if g.object == nil || g.dragging {
		return false
	}
	pos := mgl32.Vec3(g.object.Position)
	n := mgl32.Vec3{0, 1, 0}
	if axis == AxisY {
		n = mgl32.Vec3{r.Dir[0], 0, r.Dir[2]}
		if n.Len() < parallelEpsilon {
			return false
		}
		n = n.Normalize()
	}
	hit, ok := intersectPlane(r, pos, n)
	if !ok {
		return false
	}
	g.axis = axis
	g.startPos = g.object.Position
	g.startHit = hit
	g.planeN = n
	g.planeP = pos
	g.setDragging(true)
	return true
}

// Drag moves the object so it follows r on the drag plane.
func (g *Gizmo) Drag(r scene.Ray) {
	if !g.dragging || g.object == nil {
		return
	}
	hit, ok := intersectPlane(r, g.planeP, g.planeN)
	if !ok {
		return
	}
	d := hit.Sub(g.startHit)
	if g.axis == AxisY {
		g.move([3]float32{0, d[1], 0})
		return
	}
	g.move([3]float32{d[0], 0, d[2]})
}

// DragBy moves the object by delta relative to where the drag started, starting a drag if
// none is running. Used by scripted input.
func (g *Gizmo) DragBy(delta [3]float32) {
	if g.object == nil {
		return
	}
	if !g.dragging {
		g.axis = AxisXZ
		g.startPos = g.object.Position
		g.setDragging(true)
	}
	g.move(delta)
}

// End finishes the drag, snapping X/Z to the translation grid.
func (g *Gizmo) End() {
	if !g.dragging {
		return
	}
	if g.object != nil {
		g.object.Position = g.grid.SnapXZ(g.object.Position)
		g.changed()
	}
	g.setDragging(false)
}

func (g *Gizmo) move(delta [3]float32) {
	g.object.Position = [3]float32{
		g.startPos[0] + delta[0],
		g.startPos[1] + delta[1],
		g.startPos[2] + delta[2],
	}
	g.changed()
}

func (g *Gizmo) changed() {
	for _, fn := range g.onChanged {
		fn(g.object)
	}
}

func (g *Gizmo) setDragging(v bool) {
	if g.dragging == v {
		return
	}
	g.dragging = v
	for _, fn := range g.onDrag {
		fn(v)
	}
}

func intersectPlane(r scene.Ray, p, n mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := r.Dir.Dot(n)
	if math32.Abs(denom) < parallelEpsilon {
		return mgl32.Vec3{}, false
	}
	t := p.Sub(r.Origin).Dot(n) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.At(t), true
}
