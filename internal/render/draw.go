package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"brickyard/internal/grid"
	"brickyard/internal/scene"
)

const (
	gridCells      = 25
	gridMajorEvery = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 130
	axisLineAlpha  = 220
	gizmoLength    = 3
)

var (
	axisX = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// toCamera converts the editor camera into a raylib camera.
func toCamera(c *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec(c.Position),
		Target:     vec(c.Target),
		Up:         vec(c.Up),
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}

func vec(v [3]float32) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

// drawEditorGrid draws the placement grid on the floor with one line per grid cell and
// a stronger line every few cells, plus the axis lines through the origin.
func drawEditorGrid(p grid.Params) {
	minor := rl.NewColor(110, 110, 110, gridMinorAlpha)
	major := rl.NewColor(90, 90, 90, gridMajorAlpha)
	extent := p.Size * gridCells

	var start, end rl.Vector3
	for i := -gridCells; i <= gridCells; i++ {
		c := minor
		if i%gridMajorEvery == 0 {
			c = major
		}
		at := float32(i) * p.Size
		start.X, start.Y, start.Z = at, p.MinY, -extent
		end.X, end.Y, end.Z = at, p.MinY, extent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -extent, p.MinY, at
		end.X, end.Y, end.Z = extent, p.MinY, at
		rl.DrawLine3D(start, end, c)
	}

	rl.DrawLine3D(rl.NewVector3(-extent, 0, 0), rl.NewVector3(extent, 0, 0), axisX)
	rl.DrawLine3D(rl.NewVector3(0, 0, -extent), rl.NewVector3(0, 0, extent), axisZ)
}

// drawGizmo draws the translate handle on top of o: X and Z arrows for horizontal drags and
// a Y arrow for Alt drags.
func drawGizmo(o *scene.Object, dragging bool) {
	if o == nil {
		return
	}
	b := o.WorldBounds()
	origin := rl.NewVector3((b.Min[0]+b.Max[0])/2, b.Max[1], (b.Min[2]+b.Max[2])/2)
	rl.DrawLine3D(origin, rl.NewVector3(origin.X+gizmoLength, origin.Y, origin.Z), axisX)
	rl.DrawLine3D(origin, rl.NewVector3(origin.X, origin.Y+gizmoLength, origin.Z), axisY)
	rl.DrawLine3D(origin, rl.NewVector3(origin.X, origin.Y, origin.Z+gizmoLength), axisZ)
	rl.DrawCube(rl.NewVector3(origin.X+gizmoLength, origin.Y, origin.Z), 0.2, 0.2, 0.2, axisX)
	rl.DrawCube(rl.NewVector3(origin.X, origin.Y+gizmoLength, origin.Z), 0.2, 0.2, 0.2, axisY)
	rl.DrawCube(rl.NewVector3(origin.X, origin.Y, origin.Z+gizmoLength), 0.2, 0.2, 0.2, axisZ)
	if dragging {
		size := rl.NewVector3(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1], b.Max[2]-b.Min[2])
		center := rl.NewVector3(origin.X, (b.Min[1]+b.Max[1])/2, origin.Z)
		rl.DrawCubeWiresV(center, size, rl.Yellow)
	}
}
