package view

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestFitLetterbox(t *testing.T) {
	cases := []struct {
		name                       string
		surfaceW, surfaceH         float64
		targetW, targetH           float64
		wantScale, wantOX, wantOY  float64
	}{
		{"tall_surface", 800, 800, 1920, 1080, 800.0 / 1920, 0, (800 - 1080*800.0/1920) / 2},
		{"exact_fit", 1920, 1080, 1920, 1080, 1, 0, 0},
		{"wide_surface", 2000, 500, 1000, 500, 1, 500, 0},
		{"double", 3840, 2160, 1920, 1080, 2, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vp := Fit(c.surfaceW, c.surfaceH, c.targetW, c.targetH)
			if !approxEqual(vp.Scale, c.wantScale, epsilon) {
				t.Errorf("scale = %v, want %v", vp.Scale, c.wantScale)
			}
			if !approxEqual(vp.X, c.wantOX, epsilon) || !approxEqual(vp.Y, c.wantOY, epsilon) {
				t.Errorf("origin = (%v,%v), want (%v,%v)", vp.X, vp.Y, c.wantOX, c.wantOY)
			}
		})
	}
}

func TestFitDegenerateClampsToOne(t *testing.T) {
	cases := []struct {
		name               string
		surfaceW, surfaceH float64
		targetW, targetH   float64
	}{
		{"zero_target", 800, 600, 0, 0},
		{"zero_surface", 0, 0, 1920, 1080},
		{"negative_surface", -10, 600, 1920, 1080},
		{"nan_surface", math.NaN(), 600, 1920, 1080},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vp := Fit(c.surfaceW, c.surfaceH, c.targetW, c.targetH)
			if vp.Scale != 1 {
				t.Errorf("scale = %v, want 1", vp.Scale)
			}
		})
	}
}

func TestViewportContains(t *testing.T) {
	vp := Fit(800, 800, 1920, 1080)
	// frame spans y in [175, 625) at full width
	cases := []struct {
		name   string
		sx, sy float64
		want   bool
	}{
		{"center", 400, 400, true},
		{"top_left_corner", 0, 175, true},
		{"letterbox_bar", 400, 100, false},
		{"below_frame", 400, 625, false},
		{"right_of_frame", 800, 400, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := vp.Contains(c.sx, c.sy); got != c.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", c.sx, c.sy, got, c.want)
			}
		})
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	cam := NewCamera()
	cam.X, cam.Y = -37.5, 12.25
	cam.SetZoom(1.75)
	vp := Fit(800, 800, 1920, 1080)

	points := [][2]float64{{0, 0}, {100, 200}, {-55.5, 31.125}, {1e4, -1e4}}
	for _, p := range points {
		sx, sy := WorldToScreen(cam, vp, p[0], p[1])
		wx, wy := ScreenToWorld(cam, vp, sx, sy)
		if !approxEqual(wx, p[0], epsilon) || !approxEqual(wy, p[1], epsilon) {
			t.Errorf("round trip of (%v,%v) gave (%v,%v)", p[0], p[1], wx, wy)
		}
	}
}

func TestWorldToScreenFormula(t *testing.T) {
	cam := NewCamera()
	cam.X, cam.Y = 10, 20
	cam.SetZoom(2)
	vp := Viewport{X: 50, Y: 60, Scale: 0.5, Width: 960, Height: 540}

	sx, sy := WorldToScreen(cam, vp, 30, 40)
	// 50 + (30-10)*2*0.5 = 70; 60 + (40-20)*2*0.5 = 80
	if sx != 70 || sy != 80 {
		t.Errorf("got (%v,%v), want (70,80)", sx, sy)
	}

	sw, sh := WorldSizeToScreenSize(cam, vp, 8, 4)
	if sw != 8 || sh != 4 {
		t.Errorf("size = (%v,%v), want (8,4)", sw, sh)
	}
	w, h := ScreenSizeToWorldSize(cam, vp, sw, sh)
	if w != 8 || h != 4 {
		t.Errorf("inverse size = (%v,%v), want (8,4)", w, h)
	}
}

func TestZoomAtKeepsCursorStationary(t *testing.T) {
	cases := []struct {
		name   string
		px, py float64
		factor float64
	}{
		{"zoom_in_center", 400, 400, 1.1},
		{"zoom_out_corner", 13, 777, 1 / 1.1},
		{"zoom_in_edge", 0, 400, 2},
		{"repeated_small", 123, 456, 1.0001},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera()
			cam.X, cam.Y = 5, -3
			cam.SetZoom(0.8)
			vp := Fit(800, 800, 1920, 1080)

			wx0, wy0 := ScreenToWorld(cam, vp, c.px, c.py)
			cam.ZoomAt(vp, c.px, c.py, c.factor)
			wx1, wy1 := ScreenToWorld(cam, vp, c.px, c.py)

			if !approxEqual(wx0, wx1, epsilon) || !approxEqual(wy0, wy1, epsilon) {
				t.Errorf("world point drifted from (%v,%v) to (%v,%v)", wx0, wy0, wx1, wy1)
			}
		})
	}
}

func TestZoomClamped(t *testing.T) {
	cam := NewCamera()
	cam.SetZoom(1e9)
	if cam.Zoom() != MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", cam.Zoom(), MaxZoom)
	}
	cam.SetZoom(-5)
	if cam.Zoom() != MinZoom {
		t.Errorf("zoom = %v, want clamped to %v", cam.Zoom(), MinZoom)
	}
	cam.SetZoom(0)
	if cam.Zoom() <= 0 {
		t.Error("zoom must stay strictly positive")
	}
}

func TestDragDeltaAxisConstraint(t *testing.T) {
	cam := NewCamera()
	cam.SetZoom(2)
	vp := Viewport{Scale: 0.5, Width: 960, Height: 540}
	// zoom*scale = 1, so pixel deltas equal world deltas here

	cases := []struct {
		name       string
		axis       Axis
		wantX, wantY float64
	}{
		{"both", AxisBoth, 10, -6},
		{"x_only", AxisX, 10, 0},
		{"y_only", AxisY, 0, -6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dx, dy := DragDelta(cam, vp, 100, 100, 110, 94, c.axis)
			if dx != c.wantX || dy != c.wantY {
				t.Errorf("delta = (%v,%v), want (%v,%v)", dx, dy, c.wantX, c.wantY)
			}
		})
	}
}

func TestPanFollowsPointer(t *testing.T) {
	cam := NewCamera()
	cam.SetZoom(2)
	vp := Viewport{Scale: 1}

	wx0, wy0 := ScreenToWorld(cam, vp, 100, 100)
	cam.Pan(vp, 40, -20)
	wx1, wy1 := ScreenToWorld(cam, vp, 140, 80)
	if !approxEqual(wx0, wx1, epsilon) || !approxEqual(wy0, wy1, epsilon) {
		t.Errorf("world point under pointer drifted: (%v,%v) -> (%v,%v)", wx0, wy0, wx1, wy1)
	}
}

func TestNDCConvention(t *testing.T) {
	cam := NewCamera()
	cam.X, cam.Y = 2, 3
	cam.SetZoom(1.5)
	aspect := 16.0 / 9.0

	nx, ny := WorldToNDC(cam, aspect, 4, 7)
	// x divides by aspect, y flips
	if !approxEqual(nx, (4-2)*1.5/aspect, epsilon) || !approxEqual(ny, -(7-3)*1.5, epsilon) {
		t.Errorf("ndc = (%v,%v)", nx, ny)
	}

	wx, wy := NDCToWorld(cam, aspect, nx, ny)
	if !approxEqual(wx, 4, epsilon) || !approxEqual(wy, 7, epsilon) {
		t.Errorf("inverse = (%v,%v), want (4,7)", wx, wy)
	}
}

func TestScrollToAnimates(t *testing.T) {
	cam := NewCamera()
	cam.ScrollTo(100, 50, 1, easeLinear)

	cam.Update(0.5)
	if !approxEqual(cam.X, 50, 0.5) || !approxEqual(cam.Y, 25, 0.5) {
		t.Errorf("midpoint = (%v,%v), want near (50,25)", cam.X, cam.Y)
	}
	cam.Update(0.6)
	if !approxEqual(cam.X, 100, 1e-3) || !approxEqual(cam.Y, 50, 1e-3) {
		t.Errorf("end = (%v,%v), want (100,50)", cam.X, cam.Y)
	}
	if cam.scroll != nil {
		t.Error("finished scroll should clear itself")
	}
}

func easeLinear(t, b, c, d float32) float32 {
	return c*t/d + b
}
