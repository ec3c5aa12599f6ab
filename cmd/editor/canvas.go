package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/kisstp2006/FluxionJsSceneEditor/common"
	"github.com/kisstp2006/FluxionJsSceneEditor/scene"
	"github.com/kisstp2006/FluxionJsSceneEditor/view"
)

const (
	gizmoArmPix    = 48
	gizmoGrabPix   = 8
	gizmoCenterPix = 14
)

// Canvas is the world-editing surface between the side panels: it owns
// pan/zoom input, selection, and the move gizmo.
type Canvas struct {
	ed *Editor

	// middle-drag pan state
	panActive bool
	lastMX    int
	lastMY    int

	// gizmo drag state
	dragging     bool
	dragAxis     view.Axis
	dragStartX   float64
	dragStartY   float64
	appliedDX    float64
	appliedDY    float64
	dragSnapshot bool
}

func NewCanvas(ed *Editor) *Canvas {
	return &Canvas{ed: ed}
}

// Viewport returns the letterboxed placement of the logical frame inside
// the canvas region (the window minus panels, toolbar and status line).
func (c *Canvas) Viewport() view.Viewport {
	w := float64(c.ed.surfaceW - leftPanelWidth - rightPanelWidth)
	h := float64(c.ed.surfaceH - toolbarHeight - statusHeight)
	tw, th := c.ed.TargetResolution()
	vp := view.Fit(w, h, tw, th)
	vp.X += leftPanelWidth
	vp.Y += toolbarHeight
	return vp
}

func (c *Canvas) inCanvas(mx, my int) bool {
	return mx >= leftPanelWidth && mx < c.ed.surfaceW-rightPanelWidth &&
		my >= toolbarHeight && my < c.ed.surfaceH-statusHeight
}

func (c *Canvas) Update() {
	mx, my := ebiten.CursorPosition()
	vp := c.Viewport()

	// wheel zoom anchored at the cursor
	if c.inCanvas(mx, my) {
		_, wy := ebiten.Wheel()
		if wy != 0 {
			factor := 1.1
			if wy < 0 {
				factor = 1.0 / 1.1
			}
			c.ed.cam.CancelScroll()
			c.ed.cam.ZoomAt(vp, float64(mx), float64(my), factor)
		}
	}

	// middle-button pan
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) && (c.panActive || c.inCanvas(mx, my)) {
		if !c.panActive {
			c.panActive = true
		} else {
			c.ed.cam.CancelScroll()
			c.ed.cam.Pan(vp, float64(mx-c.lastMX), float64(my-c.lastMY))
		}
		c.lastMX = mx
		c.lastMY = my
	} else {
		c.panActive = false
	}

	c.updateDrag(mx, my, vp)

	// plain click selects
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !c.dragging && c.inCanvas(mx, my) {
		wx, wy := view.ScreenToWorld(c.ed.cam, vp, float64(mx), float64(my))
		c.ed.Select(c.ed.scn.ElementAt(wx, wy))
	}
}

func (c *Canvas) updateDrag(mx, my int, vp view.Viewport) {
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && c.ed.selected != nil && c.inCanvas(mx, my) {
		if axis, ok := c.gizmoHandleAt(float64(mx), float64(my), vp); ok {
			c.dragging = true
			c.dragAxis = axis
			c.dragStartX = float64(mx)
			c.dragStartY = float64(my)
			c.appliedDX = 0
			c.appliedDY = 0
			c.dragSnapshot = false
			return
		}
	}

	if c.dragging && pressed && c.ed.selected != nil {
		dx, dy := view.DragDelta(c.ed.cam, vp, c.dragStartX, c.dragStartY, float64(mx), float64(my), c.dragAxis)
		if dx != c.appliedDX || dy != c.appliedDY {
			if !c.dragSnapshot {
				c.ed.PushUndo()
				c.dragSnapshot = true
			}
			// apply only the unapplied remainder so dependents get the
			// same total delta exactly once
			c.ed.scn.MoveElement(c.ed.selected, dx-c.appliedDX, dy-c.appliedDY)
			c.appliedDX = dx
			c.appliedDY = dy
			c.ed.dirty = true
		}
	}

	if !pressed && c.dragging {
		c.dragging = false
		if c.dragSnapshot {
			b := c.ed.selected.Common()
			c.ed.SetStatus(fmt.Sprintf("moved %s to (%.1f, %.1f)", b.Name, b.X, b.Y))
		}
	}
}

// gizmoHandleAt hit-tests the move gizmo of the selected element, in
// pixels. Center square drags both axes; the X and Y arms constrain to
// one axis.
func (c *Canvas) gizmoHandleAt(px, py float64, vp view.Viewport) (view.Axis, bool) {
	b := c.ed.selected.Common()
	ox, oy := view.WorldToScreen(c.ed.cam, vp, b.X, b.Y)

	if math.Abs(px-ox) <= gizmoCenterPix && math.Abs(py-oy) <= gizmoCenterPix {
		return view.AxisBoth, true
	}
	if px > ox && px <= ox+gizmoArmPix && math.Abs(py-oy) <= gizmoGrabPix {
		return view.AxisX, true
	}
	if py < oy && py >= oy-gizmoArmPix && math.Abs(px-ox) <= gizmoGrabPix {
		return view.AxisY, true
	}
	return 0, false
}

func (c *Canvas) Draw(screen *ebiten.Image) {
	vp := c.Viewport()

	// letterbox frame
	vector.FillRect(screen, float32(vp.X), float32(vp.Y), float32(vp.Width), float32(vp.Height), color.RGBA{24, 24, 32, 255}, false)
	vector.StrokeRect(screen, float32(vp.X), float32(vp.Y), float32(vp.Width), float32(vp.Height), 1, colornames.Dimgray, false)

	region := common.Rect{
		X:      leftPanelWidth,
		Y:      toolbarHeight,
		Width:  float64(c.ed.surfaceW - leftPanelWidth - rightPanelWidth),
		Height: float64(c.ed.surfaceH - toolbarHeight - statusHeight),
	}
	for _, el := range scene.SortedByLayer(c.ed.scn.Elements) {
		c.drawElement(screen, el, vp, region)
	}

	if c.ed.selected != nil {
		c.drawGizmo(screen, vp)
	}
}

func (c *Canvas) drawElement(screen *ebiten.Image, el scene.Element, vp view.Viewport, region common.Rect) {
	b := el.Common()
	sx, sy := view.WorldToScreen(c.ed.cam, vp, b.X, b.Y)
	sw, sh := view.WorldSizeToScreenSize(c.ed.cam, vp, b.Width, b.Height)

	if sw < 2 {
		sw = 2
	}
	if sh < 2 {
		sh = 2
	}
	if !region.Intersects(common.Rect{X: sx, Y: sy, Width: sw, Height: sh}) {
		return
	}

	fill, outline := elementColors(el)
	fill.A = uint8(uint16(fill.A) * uint16(b.Opacity) / 255)
	if !b.Active {
		fill.A /= 3
		outline = colornames.Gray
	}

	vector.FillRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), fill, false)
	vector.StrokeRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), 1, outline, false)

	if el == c.ed.selected {
		vector.StrokeRect(screen, float32(sx)-2, float32(sy)-2, float32(sw)+4, float32(sh)+4, 2, colornames.Orange, false)
	}
	ebitenutil.DebugPrintAt(screen, b.Name, int(sx)+2, int(sy)+2)
}

func elementColors(el scene.Element) (color.RGBA, color.RGBA) {
	switch el.Kind() {
	case scene.KindSprite:
		return color.RGBA{70, 110, 180, 160}, colornames.Steelblue
	case scene.KindAnimatedSprite:
		return color.RGBA{90, 160, 90, 160}, colornames.Seagreen
	case scene.KindAudio:
		return color.RGBA{160, 120, 60, 160}, colornames.Peru
	case scene.KindClickable:
		return color.RGBA{180, 70, 70, 90}, colornames.Indianred
	case scene.KindText:
		return color.RGBA{150, 150, 60, 160}, colornames.Khaki
	default:
		return color.RGBA{120, 120, 120, 160}, colornames.Gray
	}
}

func (c *Canvas) drawGizmo(screen *ebiten.Image, vp view.Viewport) {
	b := c.ed.selected.Common()
	ox, oy := view.WorldToScreen(c.ed.cam, vp, b.X, b.Y)
	fx, fy := float32(ox), float32(oy)

	vector.StrokeLine(screen, fx, fy, fx+gizmoArmPix, fy, 3, colornames.Red, true)
	vector.StrokeLine(screen, fx, fy, fx, fy-gizmoArmPix, 3, colornames.Lime, true)
	vector.FillRect(screen, fx-gizmoCenterPix/2, fy-gizmoCenterPix/2, gizmoCenterPix, gizmoCenterPix, color.RGBA{255, 200, 0, 200}, false)
}
