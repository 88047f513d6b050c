// Package editor holds the brick editor state: the scene, the single selection, the gizmo
// with its placement correction, the input mode and the bricks waiting for their meshes.
// Every method runs on the frame loop; only mesh parsing happens elsewhere.
package editor

import (
	"context"
	"image/color"
	"math"

	"brickyard/internal/assets"
	"brickyard/internal/catalog"
	"brickyard/internal/gizmo"
	"brickyard/internal/grid"
	"brickyard/internal/logger"
	"brickyard/internal/scene"
)

// brickRotationX lays the STL bricks, modelled Z-up, onto the Y-up world.
const brickRotationX = -math.Pi / 2

// Options configure an Editor.
type Options struct {
	Grid          grid.Params
	Catalog       catalog.Catalog
	ModelsDir     string
	Loader        *assets.Loader
	Log           *logger.Logger
	Render        Renderer
	SharedDefault bool
	BrickScale    float32
	BrickColor    color.RGBA
}

// spawn is a brick waiting for its mesh.
type spawn struct {
	brick catalog.Brick
	color color.RGBA
	req   *assets.Request
}

// Failure records a brick whose mesh could not be loaded.
type Failure struct {
	Brick catalog.Brick
	Path  string
	Err   error
}

// Editor is the application state owned by the frame loop.
type Editor struct {
	Scene     *scene.Scene
	Camera    *scene.Camera
	Picker    *scene.Picker
	Gizmo     *gizmo.Gizmo
	Selection *Selection
	Placement *Placement
	Modes     *Modes

	grid      grid.Params
	catalog   catalog.Catalog
	modelsDir string
	loader    *assets.Loader
	log       *logger.Logger
	render    Renderer
	scale     float32
	color     color.RGBA

	meshes   map[string]*assets.Geometry
	pending  map[uint64]spawn
	failures []Failure
	pointer  pointerState
}

// New wires a fresh editor. The gizmo reports drags to the input modes and every gizmo
// move goes through the placement controller.
func New(opts Options) *Editor {
	r := opts.Render
	if r == nil {
		r = nopRenderer{}
	}
	log := opts.Log
	if log == nil {
		log = logger.New("")
	}
	loader := opts.Loader
	if loader == nil {
		loader = assets.NewLoader(nil, assets.DefaultConcurrency)
	}
	scale := opts.BrickScale
	if scale <= 0 {
		scale = 1
	}
	g := opts.Grid.Normalize()

	e := &Editor{
		Scene:     scene.New(),
		Camera:    scene.NewCamera(),
		Modes:     &Modes{},
		grid:      g,
		catalog:   opts.Catalog,
		modelsDir: opts.ModelsDir,
		loader:    loader,
		log:       log,
		render:    r,
		scale:     scale,
		color:     opts.BrickColor,
		meshes:    make(map[string]*assets.Geometry),
		pending:   make(map[uint64]spawn),
	}
	e.Picker = &scene.Picker{Camera: e.Camera, Scene: e.Scene}
	e.Placement = NewPlacement(g, r)
	e.Gizmo = gizmo.New(g)
	e.Gizmo.OnObjectChanged(e.Placement.OnLiveObjectMoved)
	e.Gizmo.OnDraggingChanged(e.Modes.DraggingChanged)
	e.Selection = NewSelection(SelectionOptions{
		Scene:         e.Scene,
		Picker:        e.Picker,
		Grid:          g,
		Render:        r,
		SharedDefault: opts.SharedDefault,
		DefaultColor:  opts.BrickColor,
	})
	e.Selection.OnSelect = e.selectionChanged
	e.Selection.OnRemove = e.removed
	return e
}

// Grid returns the grid parameters in use.
func (e *Editor) Grid() grid.Params {
	return e.grid
}

// Catalog returns the bricks the object bar offers.
func (e *Editor) Catalog() catalog.Catalog {
	return e.catalog
}

// Log returns the editor event log.
func (e *Editor) Log() *logger.Logger {
	return e.log
}

// Color returns the color new bricks are created with.
func (e *Editor) Color() color.RGBA {
	return e.color
}

// SetColor picks the color for new bricks; the shared default material follows it.
func (e *Editor) SetColor(c color.RGBA) {
	e.color = c
	e.Selection.SetDefaultColor(c)
	e.render.RenderFrame()
}

// Mesh returns loaded geometry by its key.
func (e *Editor) Mesh(key string) (*assets.Geometry, bool) {
	g, ok := e.meshes[key]
	return g, ok
}

// Spawn requests a brick from the catalog. The brick appears in the scene once Poll sees
// its mesh finish loading.
func (e *Editor) Spawn(ctx context.Context, id string) (*assets.Request, error) {
	b, err := e.catalog.Lookup(id)
	if err != nil {
		return nil, err
	}
	path := catalog.MeshPath(e.modelsDir, b)
	req := e.loader.Load(ctx, path)
	e.pending[req.ID] = spawn{brick: b, color: e.color, req: req}
	e.log.Logf("loading %s from %s", b.ID, path)
	return req, nil
}

// LoadBaseplate requests the catalog's baseplate, if it has one.
func (e *Editor) LoadBaseplate(ctx context.Context) (*assets.Request, bool) {
	if e.catalog.Baseplate == nil {
		return nil, false
	}
	req, err := e.Spawn(ctx, e.catalog.Baseplate.ID)
	if err != nil {
		return nil, false
	}
	return req, true
}

// Pending returns the requests still loading.
func (e *Editor) Pending() []*assets.Request {
	out := make([]*assets.Request, 0, len(e.pending))
	for _, s := range e.pending {
		out = append(out, s.req)
	}
	return out
}

// Failures returns the bricks whose meshes failed to load.
func (e *Editor) Failures() []Failure {
	out := make([]Failure, len(e.failures))
	copy(out, e.failures)
	return out
}

// Poll applies every finished load without blocking and returns how many it handled.
func (e *Editor) Poll() int {
	n := e.sweep()
	for {
		select {
		case req := <-e.loader.Completed():
			if e.complete(req) {
				n++
			}
		default:
			return n
		}
	}
}

// WaitIdle blocks until every pending load has been applied or ctx ends.
func (e *Editor) WaitIdle(ctx context.Context) error {
	for len(e.pending) > 0 {
		if e.sweep() > 0 {
			continue
		}
		var next *assets.Request
		for _, s := range e.pending {
			next = s.req
			break
		}
		select {
		case req := <-e.loader.Completed():
			e.complete(req)
		case <-next.Done():
			e.complete(next)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// sweep applies finished requests the loader could not deliver on its channel,
// such as loads whose context was cancelled.
func (e *Editor) sweep() int {
	var done []*assets.Request
	for _, s := range e.pending {
		select {
		case <-s.req.Done():
			done = append(done, s.req)
		default:
		}
	}
	n := 0
	for _, req := range done {
		if e.complete(req) {
			n++
		}
	}
	return n
}

func (e *Editor) complete(req *assets.Request) bool {
	s, ok := e.pending[req.ID]
	if !ok {
		return false
	}
	delete(e.pending, req.ID)
	g, err := req.Result()
	if err != nil {
		e.failures = append(e.failures, Failure{Brick: s.brick, Path: req.Path, Err: err})
		e.log.Logf("failed to load %s: %v", s.brick.ID, err)
		return true
	}
	e.meshes[req.Path] = g
	o := e.newObject(s, g)
	e.Scene.Add(o)
	if o.Draggable {
		e.Gizmo.Attach(o)
	}
	e.log.Logf("added %s", o.Name)
	e.render.RenderFrame()
	return true
}

func (e *Editor) newObject(s spawn, g *assets.Geometry) *scene.Object {
	baseplate := s.brick.ID == catalog.BaseplateID
	c := s.color
	if baseplate {
		c = scene.BaseplateColor
	}
	o := scene.NewObject(s.brick.ID, s.brick.ID, scene.NewMaterial(s.brick.ID, c))
	o.Mesh = g.Path
	o.Local = g.Bounds
	o.Scale = [3]float32{e.scale, e.scale, e.scale}
	o.RotationX = brickRotationX
	o.Draggable = !baseplate
	if baseplate {
		// top face flush with the floor, centred on the origin
		wb := o.WorldBounds()
		o.Position = [3]float32{
			-(wb.Min[0] + wb.Max[0]) / 2,
			-wb.Max[1],
			-(wb.Min[2] + wb.Max[2]) / 2,
		}
	}
	return o
}

// KeyDown forwards a key to the selection.
func (e *Editor) KeyDown(k Key) {
	e.Selection.KeyDown(k)
}

func (e *Editor) selectionChanged(prev, next *scene.Object) {
	if next != nil {
		e.Gizmo.Attach(next)
		e.log.Logf("selected %s", next.Name)
		return
	}
	if prev != nil {
		e.log.Logf("deselected %s", prev.Name)
	}
}

func (e *Editor) removed(o *scene.Object) {
	if e.Gizmo.Object() == o {
		e.Gizmo.Detach()
	}
	e.log.Logf("deleted %s", o.Name)
}
