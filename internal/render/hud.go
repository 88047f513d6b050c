package render

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"brickyard/internal/catalog"
	"brickyard/internal/editor"
	"brickyard/internal/scene"
)

const (
	barButtonW   = 96
	barButtonH   = 34
	barGap       = 6
	barMargin    = 12
	swatchSize   = 28
	hudFontSize  = 18
	logFontSize  = 14
	logTailLines = 6
	hexFieldW    = 96
)

// Palette is the set of colors offered next to the object bar.
var Palette = []color.RGBA{
	{R: 0xff, A: 0xff},
	{R: 0xff, G: 0x8c, A: 0xff},
	{R: 0xf2, G: 0xcd, B: 0x37, A: 0xff},
	{R: 0x23, G: 0x78, B: 0x41, A: 0xff},
	{R: 0x00, G: 0x55, B: 0xbf, A: 0xff},
	{R: 0x81, G: 0x00, B: 0x7b, A: 0xff},
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	{R: 0x1b, G: 0x2a, B: 0x34, A: 0xff},
}

// HUD is the 2D overlay: the object bar, the color palette, the status line and the log tail.
type HUD struct {
	Visible bool
	bricks  []catalog.Brick
	palette []color.RGBA
	hex     editor.ColorInput

	OnSpawn func(id string)
	OnColor func(c color.RGBA)
}

// NewHUD returns a visible HUD offering the catalog's bricks.
func NewHUD(c catalog.Catalog) *HUD {
	return &HUD{Visible: true, bricks: c.Bricks, palette: Palette}
}

func (h *HUD) brickRect(i int, screenH float32) rl.Rectangle {
	return rl.NewRectangle(
		barMargin+float32(i)*(barButtonW+barGap),
		screenH-barMargin-barButtonH,
		barButtonW, barButtonH,
	)
}

func (h *HUD) swatchRect(i int) rl.Rectangle {
	return rl.NewRectangle(barMargin+float32(i)*(swatchSize+barGap), barMargin, swatchSize, swatchSize)
}

func (h *HUD) hexRect() rl.Rectangle {
	return rl.NewRectangle(barMargin+float32(len(h.palette))*(swatchSize+barGap), barMargin, hexFieldW, swatchSize)
}

// Typing reports whether the hex field has the keyboard.
func (h *HUD) Typing() bool {
	return h.Visible && h.hex.Focused
}

// Type feeds this frame's keyboard input to the hex field.
func (h *HUD) Type() {
	for {
		c := rl.GetCharPressed()
		if c == 0 {
			break
		}
		h.hex.Insert(rune(c))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		h.hex.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		h.hex.Focused = false
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		c, err := h.hex.Submit()
		if err != nil {
			return
		}
		if h.OnColor != nil {
			h.OnColor(c)
		}
	}
}

// Press handles a click on the overlay and reports whether it consumed it.
func (h *HUD) Press(pt rl.Vector2, screenH float32) bool {
	if !h.Visible {
		return false
	}
	h.hex.Focused = rl.CheckCollisionPointRec(pt, h.hexRect())
	if h.hex.Focused {
		return true
	}
	for i, b := range h.bricks {
		if rl.CheckCollisionPointRec(pt, h.brickRect(i, screenH)) {
			if h.OnSpawn != nil {
				h.OnSpawn(b.ID)
			}
			return true
		}
	}
	for i, c := range h.palette {
		if rl.CheckCollisionPointRec(pt, h.swatchRect(i)) {
			if h.OnColor != nil {
				h.OnColor(c)
			}
			return true
		}
	}
	return false
}

// Draw draws the overlay for the current editor state.
func (h *HUD) Draw(e *editor.Editor) {
	if !h.Visible {
		return
	}
	screenH := float32(rl.GetScreenHeight())
	mouse := rl.GetMousePosition()

	for i, b := range h.bricks {
		r := h.brickRect(i, screenH)
		bg := rl.NewColor(40, 44, 52, 220)
		if rl.CheckCollisionPointRec(mouse, r) {
			bg = rl.NewColor(70, 76, 88, 235)
		}
		rl.DrawRectangleRec(r, bg)
		label := b.Label()
		w := rl.MeasureText(label, hudFontSize)
		rl.DrawText(label, int32(r.X)+(barButtonW-w)/2, int32(r.Y)+(barButtonH-hudFontSize)/2, hudFontSize, rl.RayWhite)
	}

	current := e.Color()
	for i, c := range h.palette {
		r := h.swatchRect(i)
		rl.DrawRectangleRec(r, rl.Color(c))
		border := rl.DarkGray
		if c == current {
			border = rl.Black
			rl.DrawRectangleLinesEx(r, 3, border)
			continue
		}
		rl.DrawRectangleLinesEx(r, 1, border)
	}

	hr := h.hexRect()
	rl.DrawRectangleRec(hr, rl.NewColor(250, 250, 250, 230))
	if h.hex.Focused {
		rl.DrawRectangleLinesEx(hr, 2, rl.Black)
	} else {
		rl.DrawRectangleLinesEx(hr, 1, rl.DarkGray)
	}
	text, tint := h.hex.Text(), rl.Black
	if text == "" && !h.hex.Focused {
		text, tint = "#hex", rl.Gray
	}
	rl.DrawText(text, int32(hr.X)+6, int32(hr.Y)+(swatchSize-hudFontSize)/2, hudFontSize, tint)

	status := fmt.Sprintf("%s  |  color %s  |  %d objects", e.Modes.Mode(), scene.HexColor(current), e.Scene.Len())
	if o := e.Selection.Selected(); o != nil {
		status += "  |  selected " + o.Name
	}
	if n := len(e.Pending()); n > 0 {
		status += fmt.Sprintf("  |  loading %d", n)
	}
	rl.DrawText(status, barMargin, barMargin+swatchSize+barGap, hudFontSize, rl.DarkGray)

	lines := e.Log().Tail(logTailLines)
	y := int32(screenH) - barMargin - barButtonH - barGap - int32(len(lines))*(logFontSize+2)
	for _, line := range lines {
		rl.DrawText(line, barMargin, y, logFontSize, rl.DarkGray)
		y += logFontSize + 2
	}
}
