package cloud

import (
	"math"
	"math/rand/v2"
)

// colorFor picks the palette entry for the word at rank out of n.
func (c Config) colorFor(rank, n int, weight, maxWeight float64, rng *rand.Rand) string {
	k := len(c.Palette)
	switch c.ColorPolicy {
	case ColorRandom:
		return c.Palette[rng.IntN(k)]
	case ColorByWeight:
		if !(weight > 0) || !(maxWeight > 0) {
			return c.Palette[0]
		}
		idx := int(math.Floor(weight / maxWeight * float64(k)))
		return c.Palette[min(max(idx, 0), k-1)]
	default:
		return c.Palette[min(rank*k/max(n, 1), k-1)]
	}
}
