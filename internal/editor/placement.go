package editor

import (
	"brickyard/internal/grid"
	"brickyard/internal/scene"
)

// Placement keeps a dragged object on the floor and, depending on the grid policy, on a
// brick layer. It is wired to the gizmo's object-changed notification.
type Placement struct {
	grid   grid.Params
	render Renderer
}

// NewPlacement returns a placement controller for p that redraws through r.
func NewPlacement(p grid.Params, r Renderer) *Placement {
	return &Placement{grid: p, render: r}
}

// OnLiveObjectMoved corrects o's Y and redraws. A nil object is ignored.
func (p *Placement) OnLiveObjectMoved(o *scene.Object) {
	if o == nil {
		return
	}
	o.Position[1] = p.grid.CorrectY(o.Position[1])
	p.render.RenderFrame()
}
