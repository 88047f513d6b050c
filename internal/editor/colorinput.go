package editor

import (
	"image/color"
	"strings"

	"brickyard/internal/scene"
)

const maxColorInput = 7

// ColorInput is the hex entry next to the palette. Only hex digits and a leading '#' are accepted.
type ColorInput struct {
	Focused bool
	text    string
}

// Text returns what has been typed so far.
func (c *ColorInput) Text() string {
	return c.text
}

// Insert appends r if it can belong to a hex color.
func (c *ColorInput) Insert(r rune) {
	if len(c.text) >= maxColorInput {
		return
	}
	switch {
	case r == '#' && c.text == "":
	case strings.ContainsRune("0123456789abcdefABCDEF", r):
		if len(strings.TrimPrefix(c.text, "#")) >= 6 {
			return
		}
	default:
		return
	}
	c.text += string(r)
}

// Backspace removes the last character.
func (c *ColorInput) Backspace() {
	if c.text != "" {
		c.text = c.text[:len(c.text)-1]
	}
}

// Submit parses the entry. On success the field is cleared and unfocused; on failure the text stays.
func (c *ColorInput) Submit() (color.RGBA, error) {
	col, err := scene.ParseHexColor(c.text)
	if err != nil {
		return color.RGBA{}, err
	}
	c.text = ""
	c.Focused = false
	return col, nil
}
