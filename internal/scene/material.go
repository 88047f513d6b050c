package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Material is the surface an object is drawn with. Objects hold a pointer, so two objects
// sharing a *Material share its color.
type Material struct {
	Name     string
	Color    color.RGBA
	Emissive color.RGBA
	Opacity  float32 // 0 or 1 = opaque
}

// Transparent reports whether the material must be drawn with blending.
func (m *Material) Transparent() bool {
	return m != nil && m.Opacity > 0 && m.Opacity < 1
}

// NewMaterial returns an opaque material of the given color.
func NewMaterial(name string, c color.RGBA) *Material {
	return &Material{Name: name, Color: c, Opacity: 1}
}

// NewHighlightMaterial returns the translucent green material used for the selection.
func NewHighlightMaterial() *Material {
	green := color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	return &Material{Name: "highlight", Color: green, Emissive: green, Opacity: 0.5}
}

// Colors used by the brick demo.
var (
	DefaultBrickColor = color.RGBA{R: 0xff, A: 0xff}
	BaseplateColor    = color.RGBA{R: 0x9c, G: 0xa3, B: 0xa8, A: 0xff}
)

// ParseHexColor parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.ToLower(h), "0x")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
