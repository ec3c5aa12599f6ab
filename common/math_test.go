package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-4, 4, 0.75, 2},
		{3, 3, 0.5, 3},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); !ApproxEqual(got, c.want, 1e-12) {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestApproxEqual(t *testing.T) {
	if !ApproxEqual(1, 1+5e-7, 1e-6) {
		t.Error("difference inside tolerance should compare equal")
	}
	if ApproxEqual(1, 1.01, 1e-6) {
		t.Error("difference outside tolerance should not compare equal")
	}
	if !ApproxEqual(2, 2+1e-6, 1e-6) {
		t.Error("tolerance is inclusive")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	cases := []struct {
		x, y float64
		want bool
	}{
		{10, 20, true},
		{25, 40, true},
		{40, 60, false},
		{9.9, 20, false},
		{10, 60.1, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 3, Height: 3}, true},
		{"touching_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Intersects(c.other); got != c.want {
				t.Errorf("Intersects = %v, want %v", got, c.want)
			}
			if got := c.other.Intersects(r); got != c.want {
				t.Errorf("Intersects (reversed) = %v, want %v", got, c.want)
			}
		})
	}
}
