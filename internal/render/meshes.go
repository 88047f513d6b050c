package render

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"brickyard/internal/assets"
	"brickyard/internal/scene"
)

// uploaded is one mesh on the GPU. The slices stay referenced because raylib keeps
// pointers to them for the CPU-side copy.
type uploaded struct {
	mesh      rl.Mesh
	vertices  []float32
	normals   []float32
	texcoords []float32
}

// Meshes uploads loaded geometry on first use and draws scene objects with the lit shader.
// GPU resources are created lazily so they only exist once the window has a GL context.
type Meshes struct {
	lookup   func(key string) (*assets.Geometry, bool)
	cache    map[string]uploaded
	mtl      rl.Material
	uniforms litUniforms
	ready    bool
}

// NewMeshes returns a cache resolving mesh keys with lookup.
func NewMeshes(lookup func(key string) (*assets.Geometry, bool)) *Meshes {
	return &Meshes{lookup: lookup, cache: make(map[string]uploaded)}
}

func (m *Meshes) ensureMaterial() {
	if m.ready {
		return
	}
	m.mtl = rl.LoadMaterialDefault()
	if s := loadLitShader(); rl.IsShaderValid(s) {
		m.mtl.Shader = s
		m.uniforms = lookupUniforms(s)
	} else {
		m.uniforms = litUniforms{-1, -1, -1, -1, -1, -1, -1, -1}
	}
	m.ready = true
}

// ensure uploads the geometry behind key.
func (m *Meshes) ensure(key string) (uploaded, bool) {
	if u, ok := m.cache[key]; ok {
		return u, true
	}
	g, ok := m.lookup(key)
	if !ok || g.TriangleCount() == 0 {
		return uploaded{}, false
	}
	u := uploaded{
		vertices:  g.Vertices,
		normals:   g.Normals,
		texcoords: make([]float32, len(g.Vertices)/3*2),
	}
	u.mesh = rl.Mesh{
		VertexCount:   int32(len(g.Vertices) / 3),
		TriangleCount: int32(g.TriangleCount()),
		Vertices:      &u.vertices[0],
		Normals:       &u.normals[0],
		Texcoords:     &u.texcoords[0],
	}
	rl.UploadMesh(&u.mesh, false)
	m.cache[key] = u
	return u, true
}

// Begin sets per-frame lighting. Call once per frame inside BeginMode3D.
func (m *Meshes) Begin(viewPos [3]float32) {
	m.ensureMaterial()
	m.uniforms.setFrame(m.mtl.Shader, viewPos)
}

// Draw draws every object of objs: opaque ones first, then transparent ones.
func (m *Meshes) Draw(objs []*scene.Object) {
	var transparent []*scene.Object
	for _, o := range objs {
		if o.Material != nil && o.Material.Transparent() {
			transparent = append(transparent, o)
			continue
		}
		m.drawObject(o)
	}
	for _, o := range transparent {
		m.drawObject(o)
	}
}

func (m *Meshes) drawObject(o *scene.Object) {
	u, ok := m.ensure(o.Mesh)
	if !ok {
		return
	}
	mat := o.Material
	if mat == nil {
		mat = scene.NewMaterial("", scene.DefaultBrickColor)
	}
	if albedo := m.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		c := mat.Color
		c.A = uint8(mat.Opacity * 255)
		albedo.Color = rl.Color(c)
	}
	m.uniforms.setEmissive(m.mtl.Shader, emissive(mat.Emissive))
	rl.DrawMesh(u.mesh, m.mtl, toMatrix(o.Transform()))
}

// Unload frees every uploaded mesh.
func (m *Meshes) Unload() {
	for k, u := range m.cache {
		rl.UnloadMesh(&u.mesh)
		delete(m.cache, k)
	}
}

func emissive(c color.RGBA) [3]float32 {
	const strength = 0.35
	return [3]float32{
		float32(c.R) / 255 * strength,
		float32(c.G) / 255 * strength,
		float32(c.B) / 255 * strength,
	}
}

// toMatrix converts a column-major mgl32 matrix to raylib's layout.
func toMatrix(t mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: t[0], M1: t[1], M2: t[2], M3: t[3],
		M4: t[4], M5: t[5], M6: t[6], M7: t[7],
		M8: t[8], M9: t[9], M10: t[10], M11: t[11],
		M12: t[12], M13: t[13], M14: t[14], M15: t[15],
	}
}

// Len returns how many meshes are on the GPU.
func (m *Meshes) Len() int {
	return len(m.cache)
}
