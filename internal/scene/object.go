package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Bounds is an axis-aligned box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Object is one renderable entity in the scene. Brick objects are created by the editor when
// their geometry finishes loading; the scene only stores them.
type Object struct {
	ID        string
	Name      string
	Kind      string // catalog id, e.g. "object3" or "baseplate"
	Mesh      string // geometry key, the asset path
	Position  [3]float32
	Scale     [3]float32
	RotationX float32 // radians
	Draggable bool

	// Material is what the object is currently drawn with; Base is the material it was
	// created with.
	Material *Material
	Base     *Material

	// Local is the geometry's bounding box before scale, rotation and translation.
	Local Bounds
}

// NewObject returns an object with a fresh id, unit scale and mat as both its current and
// base material.
func NewObject(name, kind string, mat *Material) *Object {
	return &Object{
		ID:       uuid.NewString(),
		Name:     name,
		Kind:     kind,
		Scale:    [3]float32{1, 1, 1},
		Material: mat,
		Base:     mat,
	}
}

// Transform returns the model matrix: translate * rotateX * scale.
func (o *Object) Transform() mgl32.Mat4 {
	t := mgl32.Translate3D(o.Position[0], o.Position[1], o.Position[2])
	r := mgl32.HomogRotate3DX(o.RotationX)
	s := mgl32.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// WorldBounds transforms the eight corners of Local and returns their enclosing box.
func (o *Object) WorldBounds() Bounds {
	m := o.Transform()
	lo, hi := o.Local.Min, o.Local.Max
	var out Bounds
	for i := 0; i < 8; i++ {
		c := mgl32.Vec4{lo[0], lo[1], lo[2], 1}
		if i&1 != 0 {
			c[0] = hi[0]
		}
		if i&2 != 0 {
			c[1] = hi[1]
		}
		if i&4 != 0 {
			c[2] = hi[2]
		}
		w := m.Mul4x1(c)
		for a := 0; a < 3; a++ {
			if i == 0 || w[a] < out.Min[a] {
				out.Min[a] = w[a]
			}
			if i == 0 || w[a] > out.Max[a] {
				out.Max[a] = w[a]
			}
		}
	}
	return out
}
