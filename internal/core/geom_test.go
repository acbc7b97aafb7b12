package core

import (
	"math"
	"testing"
)

func TestRectFIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     RectF
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        R(0, 0, 10, 10),
			b:        R(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        R(0, 0, 10, 10),
			b:        R(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        R(0, 0, 10, 10),
			b:        R(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "standing on top (touching edges)",
			a:        R(0, 0, 10, 10),
			b:        R(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "one unit probe below touching edge",
			a:        R(0, 1, 10, 10),
			b:        R(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        R(0, 0, 20, 20),
			b:        R(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        R(0, 0, 10, 10),
			b:        R(9.5, 9.5, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFAnchors(t *testing.T) {
	r := RectFromMidBottom(V(100, 560), 30, 40)
	if r.X != 85 || r.Y != 520 {
		t.Errorf("RectFromMidBottom = %+v, expected X=85 Y=520", r)
	}
	if got := r.MidBottom(); got != V(100, 560) {
		t.Errorf("MidBottom() = %+v, expected (100, 560)", got)
	}

	c := RectFromCenter(V(50, 50), 20, 10)
	if c.Left() != 40 || c.Top() != 45 || c.Right() != 60 || c.Bottom() != 55 {
		t.Errorf("RectFromCenter edges = %v %v %v %v", c.Left(), c.Top(), c.Right(), c.Bottom())
	}
	if got := c.Center(); got != V(50, 50) {
		t.Errorf("Center() = %+v, expected (50, 50)", got)
	}
}

func TestRectFInflate(t *testing.T) {
	r := R(0, 0, 100, 50).Inflate(0.8)
	if r.W != 80 || r.H != 40 {
		t.Errorf("Inflate size = %vx%v, expected 80x40", r.W, r.H)
	}
	if r.CenterX() != 50 || r.CenterY() != 25 {
		t.Errorf("Inflate moved center to (%v, %v)", r.CenterX(), r.CenterY())
	}
}

func TestVec2Normalize(t *testing.T) {
	u, ok := V(3, 4).Normalize()
	if !ok {
		t.Fatal("Normalize() of (3,4) reported degenerate")
	}
	if math.Abs(u.X-0.6) > 1e-9 || math.Abs(u.Y-0.8) > 1e-9 {
		t.Errorf("Normalize() = %+v, expected (0.6, 0.8)", u)
	}

	if _, ok := V(0, 0).Normalize(); ok {
		t.Error("Normalize() of zero vector should report degenerate")
	}
}

func TestVec2Distance(t *testing.T) {
	if d := V(0, 0).DistanceTo(V(3, 4)); d != 5 {
		t.Errorf("DistanceTo = %v, expected 5", d)
	}
	if got := V(1, 2).Add(V(3, 4)).Sub(V(1, 1)).Scale(2); got != V(6, 10) {
		t.Errorf("vector arithmetic = %+v, expected (6, 10)", got)
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(9, 9, 10, 10)) {
		t.Error("single cell overlap should intersect")
	}
	if a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("adjacent rects should not intersect")
	}
	if a.Right() != 10 || a.Bottom() != 10 {
		t.Errorf("edges = %d, %d", a.Right(), a.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF below = %v", got)
	}
	if got := ClampF(15.5, 0, 10); got != 10 {
		t.Errorf("ClampF above = %v", got)
	}
}
