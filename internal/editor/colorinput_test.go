package editor

import (
	"image/color"
	"testing"
)

func typeInto(c *ColorInput, s string) {
	for _, r := range s {
		c.Insert(r)
	}
}

func TestColorInputSubmit(t *testing.T) {
	c := &ColorInput{Focused: true}
	typeInto(c, "#1a2B3c")
	got, err := c.Submit()
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}); got != want {
		t.Fatalf("color = %v, want %v", got, want)
	}
	if c.Text() != "" || c.Focused {
		t.Fatalf("entry not reset: %q focused=%v", c.Text(), c.Focused)
	}
}

func TestColorInputFiltersKeys(t *testing.T) {
	c := &ColorInput{}
	typeInto(c, "g12 #34zz5678")
	if c.Text() != "123456" {
		t.Fatalf("text = %q", c.Text())
	}
	c.Backspace()
	c.Backspace()
	if c.Text() != "1234" {
		t.Fatalf("after backspace = %q", c.Text())
	}
	if _, err := c.Submit(); err == nil {
		t.Fatal("expected error for short color")
	}
	if c.Text() != "1234" {
		t.Fatalf("failed submit cleared text: %q", c.Text())
	}
}

func TestColorInputAppliesToEditor(t *testing.T) {
	e := newEditor(t, nil)
	c := &ColorInput{}
	typeInto(c, "00ff80")
	col, err := c.Submit()
	if err != nil {
		t.Fatal(err)
	}
	e.SetColor(col)
	o := spawnBrick(t, e, "object1")
	if o.Material.Color != col {
		t.Fatalf("brick color = %v, want %v", o.Material.Color, col)
	}
}
