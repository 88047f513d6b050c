package editor

import (
	"math"

	"brickyard/internal/gizmo"
	"brickyard/internal/scene"
)

// zoomStep is the distance factor applied per wheel notch.
const zoomStep = 0.95

// pointerState is what the left button started on.
type pointerState struct {
	down       bool
	lastX      float32
	lastY      float32
	navigating bool
}

// Pointer is a pointer event in window pixels. Alt switches gizmo drags to the vertical axis.
type Pointer struct {
	X, Y          float32
	Width, Height float32
	Alt           bool
}

// PointerDown applies a press. The nearest hit toggles the selection; pressing on the object
// the gizmo holds starts a drag, anything else starts orbit navigation.
func (e *Editor) PointerDown(p Pointer) {
	e.pointer = pointerState{down: true, lastX: p.X, lastY: p.Y}
	hit, ok := e.Selection.PointerDown(p.X, p.Y, p.Width, p.Height)
	if ok && hit.Object == e.Gizmo.Object() && hit.Object.Draggable {
		axis := gizmo.AxisXZ
		if p.Alt {
			axis = gizmo.AxisY
		}
		if e.Gizmo.Begin(e.Camera.ScreenRay(p.X, p.Y, p.Width, p.Height), axis) {
			return
		}
	}
	e.pointer.navigating = e.Modes.BeginNavigate()
}

// PointerMove drags the gizmo or orbits the camera, depending on what the press started.
func (e *Editor) PointerMove(p Pointer) {
	if !e.pointer.down {
		return
	}
	dx, dy := p.X-e.pointer.lastX, p.Y-e.pointer.lastY
	e.pointer.lastX, e.pointer.lastY = p.X, p.Y
	if e.Gizmo.Dragging() {
		e.Gizmo.Drag(e.Camera.ScreenRay(p.X, p.Y, p.Width, p.Height))
		return
	}
	if !e.pointer.navigating || p.Height <= 0 {
		return
	}
	e.Orbit(2*math.Pi*dx/p.Height, 2*math.Pi*dy/p.Height)
}

// PointerUp ends a drag or navigation.
func (e *Editor) PointerUp() {
	e.Gizmo.End()
	if e.pointer.navigating {
		e.Modes.EndNavigate()
	}
	e.pointer = pointerState{}
}

// Orbit rotates the camera unless a drag is running.
func (e *Editor) Orbit(dAzimuth, dPolar float32) {
	if !e.Modes.CanNavigate() {
		return
	}
	e.Camera.Orbit(dAzimuth, dPolar)
	e.render.RenderFrame()
}

// Wheel zooms by notches; positive values move closer.
func (e *Editor) Wheel(notches float32) {
	if notches == 0 || !e.Modes.CanNavigate() {
		return
	}
	e.Camera.Zoom(float32(math.Pow(zoomStep, float64(notches))))
	e.render.RenderFrame()
}

// ObjectAt returns the nearest object under a screen position.
func (e *Editor) ObjectAt(x, y, width, height float32) *scene.Object {
	hits := e.Picker.Pick(x, y, width, height)
	if len(hits) == 0 {
		return nil
	}
	return hits[0].Object
}
