// Package view is the editor's coordinate transform engine: it maps
// between world units, the scene's logical target resolution, and the
// physical pixel surface the editor draws into. All mappings are pure
// functions of a camera and a fitted viewport.
package view

import "math"

// Viewport is the placement of the logical target-resolution frame inside
// the physical drawing surface after aspect-correct letterboxing. X and Y
// are the pixel origin of the frame, Scale the uniform pixels-per-logical-
// unit factor, Width and Height the frame's size in pixels.
type Viewport struct {
	X, Y   float64
	Scale  float64
	Width  float64
	Height float64
}

// Fit letterboxes a targetW x targetH logical frame into a surfaceW x
// surfaceH pixel surface: uniform scale on both axes, centered, slack
// margins on whichever axis has room. A non-finite or non-positive scale
// (degenerate surface or target) is clamped to 1.
func Fit(surfaceW, surfaceH, targetW, targetH float64) Viewport {
	scale := math.Min(surfaceW/targetW, surfaceH/targetH)
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		scale = 1
	}
	w := targetW * scale
	h := targetH * scale
	return Viewport{
		X:      (surfaceW - w) / 2,
		Y:      (surfaceH - h) / 2,
		Scale:  scale,
		Width:  w,
		Height: h,
	}
}

// Contains reports whether the pixel point lies inside the letterboxed frame.
func (v Viewport) Contains(sx, sy float64) bool {
	return sx >= v.X && sx < v.X+v.Width &&
		sy >= v.Y && sy < v.Y+v.Height
}
