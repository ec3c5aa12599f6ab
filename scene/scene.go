// Package scene holds the document model for FluxionJS scenes and the
// codec that maps it to and from the engine's markup format.
package scene

const (
	// DefaultTargetWidth and DefaultTargetHeight are the logical viewport
	// size assumed when a scene's camera does not declare one.
	DefaultTargetWidth  = 1920
	DefaultTargetHeight = 1080
)

// Scene is a complete scene document: one camera plus a flat, ordered list
// of elements. Element order is insertion order from the source document;
// paint and hit-test order come from each element's Layer, not list position.
type Scene struct {
	Name     string
	Camera   Camera
	Elements []Element
}

// Camera is the scene's authored camera. Width and Height are the logical
// viewport ("target resolution") the scene was authored against.
type Camera struct {
	Name   string
	X, Y   float64
	Zoom   float64
	Width  float64
	Height float64
}

// NewScene returns an empty scene with a default camera.
func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		Camera: DefaultCamera(),
	}
}

// DefaultCamera returns a camera at the origin with zoom 1 and the default
// target resolution.
func DefaultCamera() Camera {
	return Camera{
		Zoom:   1,
		Width:  DefaultTargetWidth,
		Height: DefaultTargetHeight,
	}
}

// Add appends an element to the scene.
func (s *Scene) Add(el Element) {
	s.Elements = append(s.Elements, el)
}

// Remove deletes the element at index i, preserving order.
func (s *Scene) Remove(i int) {
	if i < 0 || i >= len(s.Elements) {
		return
	}
	s.Elements = append(s.Elements[:i], s.Elements[i+1:]...)
}

// Find returns the first element whose name matches (case-insensitive),
// or nil. Duplicate names are tolerated; the first in document order wins.
func (s *Scene) Find(name string) Element {
	for _, el := range s.Elements {
		if equalFold(el.Common().Name, name) {
			return el
		}
	}
	return nil
}

// Clone returns a deep copy of the scene. The editor's undo stack stores
// clones, so mutations to the original must never leak into a snapshot.
func (s *Scene) Clone() *Scene {
	out := &Scene{
		Name:   s.Name,
		Camera: s.Camera,
	}
	out.Elements = make([]Element, 0, len(s.Elements))
	for _, el := range s.Elements {
		out.Elements = append(out.Elements, CloneElement(el))
	}
	return out
}

// CloneElement returns a deep copy of a single element.
func CloneElement(el Element) Element {
	switch e := el.(type) {
	case *Sprite:
		c := *e
		return &c
	case *AnimatedSprite:
		c := *e
		c.Animations = make([]Animation, len(e.Animations))
		for i, a := range e.Animations {
			c.Animations[i] = a
			c.Animations[i].Frames = append([]string(nil), a.Frames...)
		}
		return &c
	case *Audio:
		c := *e
		return &c
	case *Clickable:
		c := *e
		if e.ExplicitWidth != nil {
			w := *e.ExplicitWidth
			c.ExplicitWidth = &w
		}
		if e.ExplicitHeight != nil {
			h := *e.ExplicitHeight
			c.ExplicitHeight = &h
		}
		return &c
	case *Text:
		c := *e
		return &c
	default:
		return el
	}
}
