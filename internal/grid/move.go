package grid

// Move is one discrete keyboard step.
type Move int

const (
	MoveNone Move = iota
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

func (m Move) String() string {
	switch m {
	case MoveForward:
		return "forward"
	case MoveBack:
		return "back"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	}
	return "none"
}

// Vertical reports whether the move changes Y.
func (m Move) Vertical() bool {
	return m == MoveUp || m == MoveDown
}

// Offset returns the position delta for m. Forward is -Z, matching a camera that looks
// down the negative Z axis. Vertical moves are one brick layer, the vertical step.
func (p Params) Offset(m Move) [3]float32 {
	layer := p.VerticalStep
	if layer <= 0 {
		layer = p.Size + DefaultStudHeight
	}
	switch m {
	case MoveForward:
		return [3]float32{0, 0, -p.Size}
	case MoveBack:
		return [3]float32{0, 0, p.Size}
	case MoveLeft:
		return [3]float32{-p.Size, 0, 0}
	case MoveRight:
		return [3]float32{p.Size, 0, 0}
	case MoveUp:
		return [3]float32{0, layer, 0}
	case MoveDown:
		return [3]float32{0, -layer, 0}
	}
	return [3]float32{}
}

// Apply returns pos moved by m. Vertical results never go below the floor; under
// SnapNearest they also rest on a layer boundary, under SnapFloorOnly they keep the exact
// one-layer step.
func (p Params) Apply(pos [3]float32, m Move) [3]float32 {
	off := p.Offset(m)
	out := [3]float32{pos[0] + off[0], pos[1] + off[1], pos[2] + off[2]}
	if !m.Vertical() {
		return out
	}
	if p.Policy == SnapFloorOnly {
		out[1] = max(out[1], p.MinY)
		return out
	}
	out[1] = p.RestY(out[1])
	return out
}
