package scene

import "sort"

// SortedByLayer returns the elements in paint order: ascending layer,
// ties broken by name. The scene's own list order is left untouched.
func SortedByLayer(elements []Element) []Element {
	out := append([]Element(nil), elements...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Common(), out[j].Common()
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.Name < b.Name
	})
	return out
}

// ElementAt returns the topmost element whose bounds contain the world
// point, or nil. Topmost means highest layer, name as tie-break, matching
// the paint order. Zero-sized elements (audio, text) are never hit.
func (s *Scene) ElementAt(wx, wy float64) Element {
	ordered := SortedByLayer(s.Elements)
	for i := len(ordered) - 1; i >= 0; i-- {
		b := ordered[i].Common()
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		if b.Bounds().Contains(wx, wy) {
			return ordered[i]
		}
	}
	return nil
}

// MoveElement translates el by a world-space delta. Clickables whose
// Parent names el move by the identical delta so they stay visually
// attached to their owner.
func (s *Scene) MoveElement(el Element, dx, dy float64) {
	b := el.Common()
	b.X += dx
	b.Y += dy
	if !Visual(el) {
		return
	}
	for _, other := range s.Elements {
		c, ok := other.(*Clickable)
		if !ok || c == el {
			continue
		}
		if c.Parent != "" && equalFold(c.Parent, b.Name) {
			c.X += dx
			c.Y += dy
		}
	}
}

// RenameElement changes el's name and rewrites the Parent back-reference
// of every clickable that pointed at the old name.
func (s *Scene) RenameElement(el Element, newName string) {
	old := el.Common().Name
	el.Common().Name = newName
	if !Visual(el) {
		return
	}
	for _, other := range s.Elements {
		if c, ok := other.(*Clickable); ok && c.Parent != "" && equalFold(c.Parent, old) {
			c.Parent = newName
		}
	}
}

// Dependents returns the clickables attached to el by parent name.
func (s *Scene) Dependents(el Element) []*Clickable {
	name := el.Common().Name
	var out []*Clickable
	for _, other := range s.Elements {
		if c, ok := other.(*Clickable); ok && c.Parent != "" && equalFold(c.Parent, name) {
			out = append(out, c)
		}
	}
	return out
}

// RemoveElement deletes el and its dependent clickables from the scene.
func (s *Scene) RemoveElement(el Element) {
	deps := make(map[Element]bool)
	for _, c := range s.Dependents(el) {
		deps[c] = true
	}
	for i := len(s.Elements) - 1; i >= 0; i-- {
		if other := s.Elements[i]; other == el || deps[other] {
			s.Remove(i)
		}
	}
}
