package editor

// Renderer redraws the scene. Calls are idempotent.
type Renderer interface {
	RenderFrame()
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func()

// RenderFrame calls f.
func (f RenderFunc) RenderFrame() {
	if f != nil {
		f()
	}
}

// nopRenderer is used when no renderer is configured.
type nopRenderer struct{}

func (nopRenderer) RenderFrame() {}
