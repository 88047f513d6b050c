package editor

import (
	"fmt"

	"brickyard/internal/grid"
)

// Key is a keyboard key the editor reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyShift
	KeyControl
	KeyDelete
	KeyEscape
)

var keyNames = map[Key]string{
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyShift:      "Shift",
	KeyControl:    "Control",
	KeyDelete:     "Delete",
	KeyEscape:     "Escape",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "None"
}

// ParseKey maps a key name such as "ArrowUp" or "Escape" to a Key.
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("unknown key %q", name)
}

// Move returns the grid move bound to k, or grid.MoveNone.
func (k Key) Move() grid.Move {
	switch k {
	case KeyArrowUp:
		return grid.MoveForward
	case KeyArrowDown:
		return grid.MoveBack
	case KeyArrowLeft:
		return grid.MoveLeft
	case KeyArrowRight:
		return grid.MoveRight
	case KeyShift:
		return grid.MoveUp
	case KeyControl:
		return grid.MoveDown
	}
	return grid.MoveNone
}
