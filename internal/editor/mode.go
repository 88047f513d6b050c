package editor

// Mode is what the pointer is currently doing.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeNavigating
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeNavigating:
		return "navigating"
	}
	return "idle"
}

// Modes owns the input mode. The gizmo reports drags through DraggingChanged; camera
// navigation asks for permission with BeginNavigate and is refused while dragging.
type Modes struct {
	mode Mode
}

// Mode returns the current mode.
func (m *Modes) Mode() Mode {
	return m.mode
}

// DraggingChanged is wired to the gizmo's dragging notification.
func (m *Modes) DraggingChanged(dragging bool) {
	if dragging {
		m.mode = ModeDragging
		return
	}
	if m.mode == ModeDragging {
		m.mode = ModeIdle
	}
}

// CanNavigate reports whether the camera may move.
func (m *Modes) CanNavigate() bool {
	return m.mode != ModeDragging
}

// BeginNavigate enters ModeNavigating unless a drag is running.
func (m *Modes) BeginNavigate() bool {
	if !m.CanNavigate() {
		return false
	}
	m.mode = ModeNavigating
	return true
}

// EndNavigate returns to idle after navigation.
func (m *Modes) EndNavigate() {
	if m.mode == ModeNavigating {
		m.mode = ModeIdle
	}
}
