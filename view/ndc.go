package view

// Normalized-device-coordinate mapping used by an earlier revision of the
// scene format: Y flips upward and X divides by the frame's aspect ratio
// instead of multiplying by the letterbox scale. Kept as a documented
// alternative for reading old tooling output; the editor itself only uses
// the pixel convention in transform.go. The two are never mixed.

// WorldToNDC maps a world point to the legacy NDC convention for a frame
// with the given aspect ratio (width / height).
func WorldToNDC(c *Camera, aspect, wx, wy float64) (nx, ny float64) {
	z := c.Zoom()
	if aspect == 0 {
		aspect = 1
	}
	return (wx - c.X) * z / aspect, -(wy - c.Y) * z
}

// NDCToWorld is the exact inverse of WorldToNDC.
func NDCToWorld(c *Camera, aspect, nx, ny float64) (wx, wy float64) {
	z := c.Zoom()
	if aspect == 0 {
		aspect = 1
	}
	if z == 0 {
		return c.X, c.Y
	}
	return c.X + nx*aspect/z, c.Y - ny/z
}
