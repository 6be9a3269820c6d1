package main

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	v := newViewport(120, 43)
	for _, c := range [][2]int{{0, 0}, {10, 5}, {119, 39}} {
		x, y := v.toWorld(c[0], c[1])
		col, row, ok := v.toCell(x, y)
		if !ok || col != c[0] || row != c[1] {
			t.Errorf("cell %v: expected round trip, got (%d, %d, %v)", c, col, row, ok)
		}
	}
}

func TestViewportOutside(t *testing.T) {
	v := newViewport(120, 43)
	if _, _, ok := v.toCell(-1, 10); ok {
		t.Error("Expected negative x to be outside")
	}
	if _, _, ok := v.toCell(1200, 10); ok {
		t.Error("Expected right edge to be outside")
	}
}

func TestViewportTinyTerminal(t *testing.T) {
	v := newViewport(0, 2)
	if v.cols != 1 || v.rows != 1 {
		t.Errorf("Expected 1x1 viewport, got %dx%d", v.cols, v.rows)
	}
	if r := v.pickRadius(); r < 18 {
		t.Errorf("Expected pick radius at least tower radius, got %v", r)
	}
}

func TestClamp(t *testing.T) {
	if clamp(-3, 0, 10) != 0 || clamp(15, 0, 10) != 10 || clamp(4, 0, 10) != 4 {
		t.Error("clamp returned unexpected values")
	}
}
