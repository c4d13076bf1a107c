package cloud

import "math"

// maxGridCells bounds the grid to this many cells per side. Larger canvases
// get coarser cells.
const maxGridCells = 256

type cell struct{ x, y int }

// grid is a sparse occupancy index from cell coordinates to the boxes that
// intersect the cell. A box is registered in every canvas cell it touches, so
// two boxes overlapping inside the canvas always share at least one cell.
// Cells outside the canvas are never indexed: placed boxes lie within it, and
// a fallback box only needs its on-canvas part registered.
type grid struct {
	size         float64
	lastX, lastY int
	cells        map[cell][]int
	boxes        []Box
	seen         []int // per-box stamp of the last query that visited it
	query        int
}

func newGrid(size, width, height float64) *grid {
	if side := max(width, height); side > 0 && !math.IsInf(side, 1) {
		size = max(size, side/maxGridCells)
	}
	return &grid{
		size:  size,
		lastX: lastCell(width, size),
		lastY: lastCell(height, size),
		cells: make(map[cell][]int),
	}
}

// lastCell returns the index of the cell holding the far canvas edge.
func lastCell(extent, size float64) int {
	c := math.Floor(extent / size)
	if !(c > 0) {
		return 0
	}
	return int(min(c, maxGridCells))
}

// insert registers b and returns its index.
func (g *grid) insert(b Box) int {
	idx := len(g.boxes)
	g.boxes = append(g.boxes, b)
	g.seen = append(g.seen, 0)
	g.each(b, func(c cell) bool {
		g.cells[c] = append(g.cells[c], idx)
		return true
	})
	return idx
}

// collides reports whether b overlaps any registered box.
func (g *grid) collides(b Box) bool {
	g.query++
	hit := false
	g.each(b, func(c cell) bool {
		for _, idx := range g.cells[c] {
			if g.seen[idx] == g.query {
				continue
			}
			g.seen[idx] = g.query
			if g.boxes[idx].Overlaps(b) {
				hit = true
				return false
			}
		}
		return true
	})
	return hit
}

// each calls fn for every canvas cell covered by b until fn returns false.
func (g *grid) each(b Box, fn func(cell) bool) {
	x0, x1 := g.clamp(b.Left(), g.lastX), g.clamp(b.Right(), g.lastX)
	y0, y1 := g.clamp(b.Top(), g.lastY), g.clamp(b.Bottom(), g.lastY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !fn(cell{x, y}) {
				return
			}
		}
	}
}

// clamp maps a coordinate to its cell index within [0, last]. NaN maps to 0.
func (g *grid) clamp(v float64, last int) int {
	c := math.Floor(v / g.size)
	switch {
	case !(c > 0):
		return 0
	case c > float64(last):
		return last
	}
	return int(c)
}

func (g *grid) len() int { return len(g.boxes) }
