package cloud

import "math"

// anchor is a spiral origin. Each anchor starts its spiral at a different
// phase so the four quadrant spirals do not trace the same curve.
type anchor struct {
	x, y  float64
	phase float64
}

// anchors returns the canvas center followed by the four quadrant anchors.
func anchors(width, height float64) []anchor {
	cx, cy := width/2, height/2
	dx, dy := width/4, height/4
	return []anchor{
		{cx, cy, 0},
		{cx - dx, cy - dy, math.Pi / 4},
		{cx + dx, cy - dy, 3 * math.Pi / 4},
		{cx - dx, cy + dy, 5 * math.Pi / 4},
		{cx + dx, cy + dy, 7 * math.Pi / 4},
	}
}

// point returns step i of the Archimedean spiral around a.
func (c Config) point(a anchor, i int) (float64, float64) {
	r := c.RadiusStep * float64(i)
	theta := c.AngleStep*float64(i) + a.phase
	return a.x + r*math.Cos(theta), a.y + r*math.Sin(theta)
}
