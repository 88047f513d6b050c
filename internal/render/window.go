// Package render draws the editor with raylib and feeds raylib input back into it.
package render

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the editor window.
type Window struct {
	Width      int32
	Height     int32
	Title      string
	Fullscreen bool
	TargetFPS  int32
}

// DefaultWindow is a resizable 1280x720 window at 60 FPS.
func DefaultWindow() Window {
	return Window{Width: 1280, Height: 720, Title: "brickyard", TargetFPS: 60}
}

// Run opens the window and runs the frame loop until it is closed. Each frame calls update
// (input and loads) and then draw between BeginDrawing and EndDrawing.
// ESC clears the selection, so closing goes through the window button.
func Run(w Window, update, draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	width, height := w.Width, w.Height
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()
	if w.Fullscreen {
		rl.SetWindowSize(rl.GetMonitorWidth(0), rl.GetMonitorHeight(0))
	}

	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.TargetFPS)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
}

var backgroundColor = rl.NewColor(0xdd, 0xe3, 0xea, 0xff)
