// Package debug draws runtime overlays: frame rate, heap use and editor counters.
package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh text every N frames to reduce allocations.
	updateInterval = 30
)

// Stats are the editor counters shown under the frame rate.
type Stats struct {
	Objects  int
	Meshes   int
	Pending  int
	Failures int
	Redraws  uint64
}

// Debug holds the overlay switches. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool

	frameCount uint32
	fpsText    string
	memText    string
	statsText  string
	memStats   runtime.MemStats
}

// New returns a Debug with every overlay hidden.
func New() *Debug {
	return &Debug{}
}

// Toggle flips every overlay on or off together.
func (d *Debug) Toggle() {
	on := !(d.ShowFPS || d.ShowMemAlloc || d.ShowStats)
	d.ShowFPS, d.ShowMemAlloc, d.ShowStats = on, on, on
	d.fpsText, d.memText, d.statsText = "", "", ""
}

// Draw renders the enabled overlays at the top right. stats is only called when the text
// is refreshed.
func (d *Debug) Draw(stats func() Stats) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)
	line := func(text string) {
		if text == "" {
			return
		}
		w := rl.MeasureText(text, fontSize)
		rl.DrawText(text, screenW-w-padding, y, fontSize, rl.DarkGreen)
		y += lineHeight
	}

	if d.ShowFPS {
		if update || d.fpsText == "" {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		line(d.fpsText)
	}
	if d.ShowMemAlloc {
		if update || d.memText == "" {
			runtime.ReadMemStats(&d.memStats)
			d.memText = fmt.Sprintf("Mem: %.2f MiB", float64(d.memStats.Alloc)/(1024*1024))
		}
		line(d.memText)
	}
	if d.ShowStats && stats != nil {
		if update || d.statsText == "" {
			s := stats()
			d.statsText = fmt.Sprintf("objects %d  meshes %d  pending %d  failed %d  redraws %d",
				s.Objects, s.Meshes, s.Pending, s.Failures, s.Redraws)
		}
		line(d.statsText)
	}
}
