package view

// Axis selects which components of a gizmo drag apply to the dragged
// element.
type Axis int

const (
	AxisBoth Axis = iota
	AxisX
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	default:
		return "XY"
	}
}

// DragDelta converts a pixel drag from (startX, startY) to (curX, curY)
// into a world-space delta constrained to the engaged axis. The caller
// applies the same delta to the dragged element and to every clickable
// parented to it, so they stay visually attached.
func DragDelta(c *Camera, vp Viewport, startX, startY, curX, curY float64, axis Axis) (dx, dy float64) {
	dx, dy = ScreenSizeToWorldSize(c, vp, curX-startX, curY-startY)
	switch axis {
	case AxisX:
		dy = 0
	case AxisY:
		dx = 0
	}
	return dx, dy
}
