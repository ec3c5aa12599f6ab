package view

// The editor uses the letterboxed pixel-scale convention throughout:
// Y grows downward and world units scale by camera zoom times the fitted
// viewport scale. The alternate NDC convention from the earlier format
// revision lives in ndc.go and is never mixed with this path.

// WorldToScreen maps a world point to surface pixels.
func WorldToScreen(c *Camera, vp Viewport, wx, wy float64) (sx, sy float64) {
	k := c.Zoom() * vp.Scale
	return vp.X + (wx-c.X)*k, vp.Y + (wy-c.Y)*k
}

// ScreenToWorld is the exact algebraic inverse of WorldToScreen.
func ScreenToWorld(c *Camera, vp Viewport, sx, sy float64) (wx, wy float64) {
	k := c.Zoom() * vp.Scale
	if k == 0 {
		return c.X, c.Y
	}
	return c.X + (sx-vp.X)/k, c.Y + (sy-vp.Y)/k
}

// WorldSizeToScreenSize scales a world-unit extent to pixels. No
// translation term: sizes are translation-invariant.
func WorldSizeToScreenSize(c *Camera, vp Viewport, w, h float64) (sw, sh float64) {
	k := c.Zoom() * vp.Scale
	return w * k, h * k
}

// ScreenSizeToWorldSize is the inverse of WorldSizeToScreenSize.
func ScreenSizeToWorldSize(c *Camera, vp Viewport, sw, sh float64) (w, h float64) {
	k := c.Zoom() * vp.Scale
	if k == 0 {
		return 0, 0
	}
	return sw / k, sh / k
}
