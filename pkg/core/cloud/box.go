package cloud

import "math"

// Box is an axis-aligned bounding box given by its center and half extents.
type Box struct {
	CX, CY float64
	HW, HH float64
}

// Left returns the minimum x of the box.
func (b Box) Left() float64 { return b.CX - b.HW }

// Right returns the maximum x of the box.
func (b Box) Right() float64 { return b.CX + b.HW }

// Top returns the minimum y of the box.
func (b Box) Top() float64 { return b.CY - b.HH }

// Bottom returns the maximum y of the box.
func (b Box) Bottom() float64 { return b.CY + b.HH }

// Overlaps reports whether b and o overlap. Boxes that only touch do not.
func (b Box) Overlaps(o Box) bool {
	return math.Abs(b.CX-o.CX) < b.HW+o.HW && math.Abs(b.CY-o.CY) < b.HH+o.HH
}

// Within reports whether b lies inside [minX,maxX] x [minY,maxY].
func (b Box) Within(minX, minY, maxX, maxY float64) bool {
	return b.Left() >= minX && b.Right() <= maxX && b.Top() >= minY && b.Bottom() <= maxY
}

// rotatedExtents returns the width and height of the axis-aligned box that
// encloses a w x h rectangle rotated by deg degrees about its center.
func rotatedExtents(w, h, deg float64) (float64, float64) {
	if deg == 0 {
		return w, h
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Abs(math.Sin(rad)), math.Abs(math.Cos(rad))
	return w*cos + h*sin, w*sin + h*cos
}
