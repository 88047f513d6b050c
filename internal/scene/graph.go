package scene

// Scene is the ordered set of objects in the world. Order is insertion order and is the
// draw order.
type Scene struct {
	objects []*Object
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends o. Adding nil or an object already present is a no-op.
func (s *Scene) Add(o *Object) {
	if o == nil || s.Contains(o) {
		return
	}
	s.objects = append(s.objects, o)
}

// Remove drops o from the scene and reports whether it was present.
func (s *Scene) Remove(o *Object) bool {
	for i, c := range s.objects {
		if c == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether o is in the scene.
func (s *Scene) Contains(o *Object) bool {
	for _, c := range s.objects {
		if c == o {
			return true
		}
	}
	return false
}

// Find returns the object with the given id.
func (s *Scene) Find(id string) (*Object, bool) {
	for _, c := range s.objects {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Children returns a copy of the object list.
func (s *Scene) Children() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.objects)
}
