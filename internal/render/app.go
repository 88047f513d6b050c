package render

import (
	"context"
	"image/color"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"

	"brickyard/internal/debug"
	"brickyard/internal/editor"
	"brickyard/internal/replay"
	"brickyard/internal/terminal"
)

// Redraw counts redraw requests. The window redraws every frame; the counter lets the
// overlays show how often the editor asked for one.
type Redraw struct {
	n atomic.Uint64
}

// RenderFrame records a request.
func (r *Redraw) RenderFrame() {
	r.n.Add(1)
}

// Count returns the number of requests so far.
func (r *Redraw) Count() uint64 {
	return r.n.Load()
}

var keyBindings = map[int32]editor.Key{
	rl.KeyUp:           editor.KeyArrowUp,
	rl.KeyDown:         editor.KeyArrowDown,
	rl.KeyLeft:         editor.KeyArrowLeft,
	rl.KeyRight:        editor.KeyArrowRight,
	rl.KeyLeftShift:    editor.KeyShift,
	rl.KeyRightShift:   editor.KeyShift,
	rl.KeyLeftControl:  editor.KeyControl,
	rl.KeyRightControl: editor.KeyControl,
	rl.KeyDelete:       editor.KeyDelete,
	rl.KeyBackspace:    editor.KeyDelete,
	rl.KeyEscape:       editor.KeyEscape,
}

// App connects an editor to the raylib window.
type App struct {
	ctx    context.Context
	editor *editor.Editor
	redraw *Redraw
	meshes *Meshes
	hud    *HUD
	debug  *debug.Debug
	term   *terminal.Terminal

	hudCaptured bool
	lastMouse   rl.Vector2
}

// NewApp returns an app drawing e. redraw must be the renderer e was built with.
func NewApp(ctx context.Context, e *editor.Editor, redraw *Redraw) *App {
	a := &App{
		ctx:    ctx,
		editor: e,
		redraw: redraw,
		meshes: NewMeshes(e.Mesh),
		hud:    NewHUD(e.Catalog()),
		debug:  debug.New(),
	}
	a.hud.OnSpawn = a.spawn
	a.hud.OnColor = func(c color.RGBA) { e.SetColor(c) }

	console := replay.New(e, e.Log())
	console.SetAsync(true)
	console.SetContext(ctx)
	a.term = terminal.New(e.Log(), console.Exec)
	return a
}

// SetHUDVisible shows or hides the overlay.
func (a *App) SetHUDVisible(v bool) {
	a.hud.Visible = v
}

// Run opens the window and blocks until it is closed.
func (a *App) Run(w Window) {
	defer a.meshes.Unload()
	Run(w, a.Update, a.Draw)
}

func (a *App) spawn(id string) {
	if _, err := a.editor.Spawn(a.ctx, id); err != nil {
		a.editor.Log().Logf("spawn %s: %v", id, err)
	}
}

// Update applies finished loads and this frame's input.
func (a *App) Update() {
	a.editor.Poll()

	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	mouse := rl.GetMousePosition()
	p := editor.Pointer{
		X: mouse.X, Y: mouse.Y, Width: w, Height: h,
		Alt: rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt),
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		a.hudCaptured = a.hud.Press(mouse, h)
		if !a.hudCaptured {
			a.editor.PointerDown(p)
		}
	} else if rl.IsMouseButtonDown(rl.MouseButtonLeft) && !a.hudCaptured && mouse != a.lastMouse {
		a.editor.PointerMove(p)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		if !a.hudCaptured {
			a.editor.PointerUp()
		}
		a.hudCaptured = false
	}
	a.lastMouse = mouse

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.editor.Wheel(wheel)
	}

	if a.hud.Typing() {
		a.hud.Type()
		return
	}
	wasOpen := a.term.IsOpen()
	a.term.Update()
	if wasOpen || a.term.IsOpen() {
		return
	}
	for rlKey, k := range keyBindings {
		if rl.IsKeyPressed(rlKey) {
			a.editor.KeyDown(k)
		}
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		a.debug.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		a.hud.Visible = !a.hud.Visible
	}
}

// Draw draws the scene and the overlays.
func (a *App) Draw() {
	e := a.editor
	rl.BeginMode3D(toCamera(e.Camera))
	drawEditorGrid(e.Grid())
	a.meshes.Begin(e.Camera.Position)
	a.meshes.Draw(e.Scene.Children())
	drawGizmo(e.Gizmo.Object(), e.Gizmo.Dragging())
	rl.EndMode3D()

	a.hud.Draw(e)
	a.debug.Draw(a.stats)
	a.term.Draw()
}

func (a *App) stats() debug.Stats {
	return debug.Stats{
		Objects:  a.editor.Scene.Len(),
		Meshes:   a.meshes.Len(),
		Pending:  len(a.editor.Pending()),
		Failures: len(a.editor.Failures()),
		Redraws:  a.redraw.Count(),
	}
}
