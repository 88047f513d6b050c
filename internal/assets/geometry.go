package assets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gostl/pkg/stl"

	"brickyard/internal/scene"
)

// ErrUnsupportedFormat is returned for files that are not STL meshes.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Geometry is a flat triangle list ready for upload: three vertices per triangle, one face
// normal repeated per vertex. It is translated so Bounds.Min is the origin.
type Geometry struct {
	Path     string
	Vertices []float32
	Normals  []float32
	Bounds   scene.Bounds
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Vertices) / 9
}

// Parser turns a file into geometry.
type Parser func(path string) (*Geometry, error)

// ParseSTL reads an STL file and rebases it so its bounding box starts at the origin.
func ParseSTL(path string) (*Geometry, error) {
	if !strings.EqualFold(filepath.Ext(path), ".stl") {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	model, err := stl.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse stl %s: %w", path, err)
	}
	g := &Geometry{
		Path:     path,
		Vertices: make([]float32, 0, len(model.Triangles)*9),
		Normals:  make([]float32, 0, len(model.Triangles)*9),
	}
	for _, tri := range model.Triangles {
		n := tri.CalculateNormal()
		for _, v := range [3][3]float64{
			{tri.V1.X, tri.V1.Y, tri.V1.Z},
			{tri.V2.X, tri.V2.Y, tri.V2.Z},
			{tri.V3.X, tri.V3.Y, tri.V3.Z},
		} {
			g.Vertices = append(g.Vertices, float32(v[0]), float32(v[1]), float32(v[2]))
			g.Normals = append(g.Normals, float32(n.X), float32(n.Y), float32(n.Z))
		}
	}
	g.Rebase()
	return g, nil
}

// Rebase computes the bounding box and translates the vertices so its minimum corner sits
// at the origin.
func (g *Geometry) Rebase() {
	if len(g.Vertices) < 3 {
		g.Bounds = scene.Bounds{}
		return
	}
	var b scene.Bounds
	for i := 0; i+2 < len(g.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			v := g.Vertices[i+a]
			if i == 0 || v < b.Min[a] {
				b.Min[a] = v
			}
			if i == 0 || v > b.Max[a] {
				b.Max[a] = v
			}
		}
	}
	for i := 0; i+2 < len(g.Vertices); i += 3 {
		for a := 0; a < 3; a++ {
			g.Vertices[i+a] -= b.Min[a]
		}
	}
	g.Bounds = scene.Bounds{Max: [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}}
}
