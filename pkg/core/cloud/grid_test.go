package cloud

import (
	"math"
	"testing"
)

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"Same", Box{0, 0, 5, 5}, Box{0, 0, 5, 5}, true},
		{"Nested", Box{0, 0, 10, 10}, Box{1, 1, 1, 1}, true},
		{"Touching", Box{0, 0, 5, 5}, Box{10, 0, 5, 5}, false},
		{"Apart", Box{0, 0, 5, 5}, Box{20, 20, 5, 5}, false},
		{"OnlyX", Box{0, 0, 5, 5}, Box{2, 30, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotatedExtents(t *testing.T) {
	w, h := rotatedExtents(100, 20, 90)
	if w < 19.999 || w > 20.001 || h < 99.999 || h > 100.001 {
		t.Errorf("90 degrees: got %vx%v, want 20x100", w, h)
	}
	if w, h := rotatedExtents(100, 20, 0); w != 100 || h != 20 {
		t.Errorf("0 degrees: got %vx%v, want 100x20", w, h)
	}
	w, h = rotatedExtents(100, 20, 45)
	if w <= 100 || h <= 20 {
		t.Errorf("45 degrees: got %vx%v, want larger than 100x20", w, h)
	}
}

func TestGrid(t *testing.T) {
	g := newGrid(10, 200, 200)
	g.insert(Box{CX: 15, CY: 15, HW: 4, HH: 4})
	g.insert(Box{CX: 100, CY: 5, HW: 40, HH: 2})

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"SameCell", Box{CX: 14, CY: 14, HW: 1, HH: 1}, true},
		{"NeighborCellOverlap", Box{CX: 21, CY: 15, HW: 3, HH: 1}, true},
		{"Touching", Box{CX: 23, CY: 15, HW: 4, HH: 4}, false},
		{"WideBoxFarCell", Box{CX: 135, CY: 5, HW: 2, HH: 2}, true},
		{"Empty", Box{CX: 50, CY: 50, HW: 5, HH: 5}, false},
		{"Negative", Box{CX: -30, CY: -30, HW: 5, HH: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.collides(tt.b); got != tt.want {
				t.Errorf("collides(%+v) = %v, want %v", tt.b, got, tt.want)
			}
		})
	}
	if g.len() != 2 {
		t.Errorf("len = %d, want 2", g.len())
	}
}

func TestGridClipsToCanvas(t *testing.T) {
	g := newGrid(10, 100, 50)
	g.insert(Box{CX: 50, CY: 25, HW: 1e7, HH: 1e7})
	if got, want := len(g.cells), 11*6; got != want {
		t.Errorf("giant box indexed %d cells, want %d", got, want)
	}
	if !g.collides(Box{CX: 95, CY: 45, HW: 2, HH: 2}) {
		t.Error("box inside the canvas missed the giant box")
	}

	g.insert(Box{CX: math.NaN(), CY: math.Inf(1), HW: 5, HH: 5})
	if g.len() != 2 {
		t.Errorf("len = %d, want 2", g.len())
	}
}

func TestGridCoarsensLargeCanvas(t *testing.T) {
	g := newGrid(4, 8192, 8192)
	if g.size != 32 {
		t.Errorf("cell size = %v, want 32", g.size)
	}
	if g.lastX != maxGridCells || g.lastY != maxGridCells {
		t.Errorf("last cells = %d,%d, want %d", g.lastX, g.lastY, maxGridCells)
	}
}
