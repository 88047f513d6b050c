// Package terminal is the in-window command console. Typed lines run through the same
// commands a replay script uses.
package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"brickyard/internal/commands"
	"brickyard/internal/logger"
)

const (
	BarHeight = 36
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineLen       = 160
)

var (
	barColor    = rl.NewColor(40, 40, 40, 235)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	historyBg   = rl.NewColor(24, 24, 24, 220)
	toggleKey   = int32(rl.KeyGrave)
	toggleKeyF1 = int32(rl.KeyF1)
)

// Terminal is the console bar at the top of the window, toggled with ` or F1. While open it
// captures the keyboard so typing does not move the selection.
type Terminal struct {
	log      *logger.Logger
	exec     func(args []string) error
	inputBuf string
	open     bool
}

// New returns a closed console that logs every line and runs it through exec.
func New(log *logger.Logger, exec func(args []string) error) *Terminal {
	return &Terminal{log: log, exec: exec}
}

// IsOpen reports whether the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Submit runs one line as if it had been typed.
func (t *Terminal) Submit(line string) {
	args, ok := commands.Parse(line)
	if !ok {
		return
	}
	t.log.Log(prompt + line)
	if err := t.exec(args); err != nil {
		t.log.Log(err.Error())
	}
}

// Update handles toggling and, when open, typing, backspace, paste and enter. Call once per
// frame before the editor sees the keyboard.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(toggleKey) || rl.IsKeyPressed(toggleKeyF1) {
		t.open = !t.open
		// drain the toggle character
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.inputBuf = ""
		t.open = false
		return
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.Submit(line)
	}
}

// Draw draws the input bar at the top and the recent log lines under it.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())

	lines := t.log.Tail(maxLinesOnScreen)
	historyH := int32(len(lines)*lineHeight + padding)
	rl.DrawRectangle(0, BarHeight, screenW, historyH, historyBg)
	for i, line := range lines {
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		rl.DrawText(line, padding, BarHeight+int32(i*lineHeight)+padding, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, 0, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, BarHeight-1, screenW, 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, padding, fontSize, rl.White)
}
