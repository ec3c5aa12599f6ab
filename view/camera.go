package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/kisstp2006/FluxionJsSceneEditor/common"
)

// Editor zoom limits. The transform math requires a strictly positive
// zoom, so SetZoom clamps rather than trusting callers.
const (
	MinZoom = 0.05
	MaxZoom = 16.0
)

// scrollAnim holds the active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the editor-side view state: the world point at the top-left
// of the logical frame plus a zoom factor. It is deliberately separate from
// the scene's authored camera; the editor's view is free to diverge while
// browsing.
type Camera struct {
	X, Y float64
	zoom float64

	scroll *scrollAnim
}

// NewCamera returns a camera at the origin with zoom 1.
func NewCamera() *Camera {
	return &Camera{zoom: 1}
}

// Zoom returns the current zoom factor. Always strictly positive.
func (c *Camera) Zoom() float64 { return c.zoom }

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) {
	c.zoom = common.Clamp(z, MinZoom, MaxZoom)
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// the cursor (sx, sy in surface pixels) visually stationary: the world
// point under the cursor is sampled before the zoom change, the zoom is
// applied and clamped, and the camera is translated by the drift.
func (c *Camera) ZoomAt(vp Viewport, sx, sy, factor float64) {
	wx0, wy0 := ScreenToWorld(c, vp, sx, sy)
	c.SetZoom(c.zoom * factor)
	wx1, wy1 := ScreenToWorld(c, vp, sx, sy)
	c.X += wx0 - wx1
	c.Y += wy0 - wy1
}

// Pan translates the camera by a surface-pixel delta, so the scene appears
// to follow the pointer during a middle-drag.
func (c *Camera) Pan(vp Viewport, dxPix, dyPix float64) {
	dx, dy := ScreenSizeToWorldSize(c, vp, dxPix, dyPix)
	c.X -= dx
	c.Y -= dy
}

// ScrollTo animates the camera to a world position over duration
// seconds. Interrupted by a new ScrollTo or by CancelScroll.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scroll = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// CancelScroll stops an in-flight scroll animation, leaving the camera
// wherever it currently is.
func (c *Camera) CancelScroll() { c.scroll = nil }

// Update advances the scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scroll == nil {
		return
	}
	if !c.scroll.doneX {
		val, done := c.scroll.tweenX.Update(dt)
		c.X = float64(val)
		c.scroll.doneX = done
	}
	if !c.scroll.doneY {
		val, done := c.scroll.tweenY.Update(dt)
		c.Y = float64(val)
		c.scroll.doneY = done
	}
	if c.scroll.doneX && c.scroll.doneY {
		c.scroll = nil
	}
}
