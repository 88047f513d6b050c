package grid

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Default grid values. A brick layer is one horizontal step plus the stud height.
const (
	DefaultSize            = float32(2)
	DefaultStudHeight      = float32(0.4)
	DefaultVerticalStep    = DefaultSize + DefaultStudHeight
	DefaultTranslationSnap = float32(2)
	FloorY                 = float32(0)
)

// SnapPolicy decides what happens to Y while an object is being dragged above the floor.
type SnapPolicy int

const (
	// SnapNearest rounds Y to the nearest multiple of the vertical step.
	SnapNearest SnapPolicy = iota
	// SnapFloorOnly only clamps Y to the floor and leaves it continuous otherwise.
	SnapFloorOnly
)

func (p SnapPolicy) String() string {
	switch p {
	case SnapFloorOnly:
		return "floor"
	default:
		return "nearest"
	}
}

// ParseSnapPolicy accepts "nearest" or "floor" (case-insensitive). Empty means nearest.
func ParseSnapPolicy(s string) (SnapPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nearest":
		return SnapNearest, nil
	case "floor", "floor-only", "none":
		return SnapFloorOnly, nil
	}
	return SnapNearest, fmt.Errorf("unknown snap policy %q", s)
}

// Params are the placement grid: horizontal step, vertical step, floor height and the
// translation snap the gizmo applies to X/Z on release.
type Params struct {
	Size            float32
	VerticalStep    float32
	MinY            float32
	TranslationSnap float32
	Policy          SnapPolicy
}

// Default returns the grid used by the brick demos: 2 units wide, 2.4 units tall layers.
func Default() Params {
	return Params{
		Size:            DefaultSize,
		VerticalStep:    DefaultVerticalStep,
		MinY:            FloorY,
		TranslationSnap: DefaultTranslationSnap,
		Policy:          SnapNearest,
	}
}

// Normalize fills zero or negative steps with defaults so snapping never divides by zero.
func (p Params) Normalize() Params {
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.VerticalStep <= 0 {
		p.VerticalStep = p.Size + DefaultStudHeight
	}
	if p.TranslationSnap < 0 {
		p.TranslationSnap = 0
	}
	return p
}

// CorrectY applies the floor clamp and, under SnapNearest, the vertical snap.
func (p Params) CorrectY(y float32) float32 {
	if y < p.MinY {
		return p.MinY
	}
	if p.Policy == SnapFloorOnly {
		return y
	}
	return Snap(y, p.VerticalStep)
}

// RestY clamps y to the floor and quantises it to the vertical step. Used after discrete
// vertical moves regardless of the drag policy.
func (p Params) RestY(y float32) float32 {
	if y <= p.MinY {
		return p.MinY
	}
	return Snap(y, p.VerticalStep)
}

// SnapXZ rounds X and Z to the translation snap, leaving Y untouched.
func (p Params) SnapXZ(pos [3]float32) [3]float32 {
	if p.TranslationSnap <= 0 {
		return pos
	}
	pos[0] = Snap(pos[0], p.TranslationSnap)
	pos[2] = Snap(pos[2], p.TranslationSnap)
	return pos
}

// Snap rounds v to the nearest multiple of step. A non-positive step returns v unchanged.
func Snap(v, step float32) float32 {
	if step <= 0 {
		return v
	}
	s := math32.Round(v/step) * step
	if s == 0 {
		// avoid -0 leaking into positions
		return 0
	}
	return s
}

// IsMultiple reports whether v is within eps of a multiple of step.
func IsMultiple(v, step, eps float32) bool {
	if step <= 0 {
		return false
	}
	return math32.Abs(v-Snap(v, step)) <= eps
}
