package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in world space. Dir is normalized.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Hit is one ray intersection.
type Hit struct {
	Object   *Object
	Point    [3]float32
	Distance float32
}

// NDC converts a screen position (origin top-left) to normalized device coordinates.
func NDC(x, y, width, height float32) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return (x/width)*2 - 1, -(y/height)*2 + 1
}

// RayFromNDC casts a ray from the camera through the given NDC point.
func (c *Camera) RayFromNDC(nx, ny, aspect float32) Ray {
	inv := c.Projection(aspect).Mul4(c.View()).Inv()
	near := inv.Mul4x1(mgl32.Vec4{nx, ny, -1, 1})
	far := inv.Mul4x1(mgl32.Vec4{nx, ny, 1, 1})
	n := near.Vec3().Mul(1 / near[3])
	f := far.Vec3().Mul(1 / far[3])
	return Ray{Origin: n, Dir: f.Sub(n).Normalize()}
}

// ScreenRay casts a ray through a screen pixel.
func (c *Camera) ScreenRay(x, y, width, height float32) Ray {
	nx, ny := NDC(x, y, width, height)
	aspect := float32(1)
	if height > 0 {
		aspect = width / height
	}
	return c.RayFromNDC(nx, ny, aspect)
}

// IntersectBox returns the entry distance of r into b using the slab method.
func (r Ray) IntersectBox(b Bounds) (float32, bool) {
	tmin := float32(math.Inf(-1))
	tmax := float32(math.Inf(1))
	for a := 0; a < 3; a++ {
		if r.Dir[a] == 0 {
			if r.Origin[a] < b.Min[a] || r.Origin[a] > b.Max[a] {
				return 0, false
			}
			continue
		}
		inv := 1 / r.Dir[a]
		t1 := (b.Min[a] - r.Origin[a]) * inv
		t2 := (b.Max[a] - r.Origin[a]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

// Picker finds scene objects under a screen position.
type Picker struct {
	Camera *Camera
	Scene  *Scene
}

// Pick returns every object hit by the ray through (x, y), nearest first.
func (p *Picker) Pick(x, y, width, height float32) []Hit {
	if p == nil || p.Camera == nil || p.Scene == nil {
		return nil
	}
	return p.Cast(p.Camera.ScreenRay(x, y, width, height))
}

// hitTolerance is how close two entry distances must be to count as the same surface.
const hitTolerance = 1e-4

// Cast returns every object hit by r, nearest first. Boxes entered at the same distance
// are ordered top-down, so a click on a stacked brick's lower band picks the upper brick
// whose box overlaps the one below.
func (p *Picker) Cast(r Ray) []Hit {
	type candidate struct {
		hit  Hit
		minY float32
	}
	var cands []candidate
	for _, o := range p.Scene.Children() {
		b := o.WorldBounds()
		t, ok := r.IntersectBox(b)
		if !ok {
			continue
		}
		cands = append(cands, candidate{
			hit:  Hit{Object: o, Point: [3]float32(r.At(t)), Distance: t},
			minY: b.Min[1],
		})
	}
	sort.SliceStable(cands, func(i, j int) bool {
		di, dj := cands[i].hit.Distance, cands[j].hit.Distance
		if di-dj > hitTolerance || dj-di > hitTolerance {
			return di < dj
		}
		return cands[i].minY > cands[j].minY
	})
	if len(cands) == 0 {
		return nil
	}
	hits := make([]Hit, len(cands))
	for i, c := range cands {
		hits[i] = c.hit
	}
	return hits
}
