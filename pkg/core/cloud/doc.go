// Package cloud computes word cloud layouts.
//
// # Overview
//
// Given a batch of weighted words and a canvas size, [Build] assigns every word
// a font size, a color, an optional rotation and a center position such that
// no two words overlap. The result is a [Layout], a plain value that renderers
// in [render/sink] turn into SVG, PNG, PDF, JSON or terminal output.
//
// # Font Size
//
// Font sizes are a linear interpolation between [Config.MinFontSize] and
// [Config.MaxFontSize], relative to the heaviest word in the batch:
//
//	size = min + (weight / maxWeight) * (max - min)
//
// Words with a non-positive weight are clamped to the minimum size.
//
// # Placement
//
// Words are placed heaviest first. Each word walks an Archimedean spiral out
// of a sequence of anchors (the canvas center, then one anchor per quadrant)
// and takes the first candidate whose padded box stays inside the canvas and
// does not overlap an earlier box. Overlap checks only consider boxes that
// share a cell of the occupancy grid with the candidate.
//
// When every anchor and spiral step is exhausted the word is placed at a
// random in-bounds point and flagged with [Placed.Fallback]. A crowded layout
// is preferred to a missing word, so [Build] never fails.
//
// # Determinism
//
// All randomness (rotation, random colors, fallback points) comes from a PCG
// generator seeded with [Config.Seed]. Two calls with the same words, canvas
// and config return identical layouts.
//
// # Building a Layout
//
//	l := cloud.Build(words, 800, 600,
//	    cloud.WithFontRange(18, 72),
//	    cloud.WithRotation(15),
//	    cloud.WithSeed(7),
//	)
//	for _, p := range l.Words {
//	    fmt.Println(p.Text, p.X, p.Y, p.FontSize)
//	}
//
// # Options
//
//   - [WithFontRange]: bounds of the size mapping (default 22..80)
//   - [WithSpacing]: padding between boxes (default 4)
//   - [WithGridSize]: occupancy grid cell size (default 40)
//   - [WithAttempts]: spiral steps per anchor (default 400)
//   - [WithPalette], [WithColorPolicy]: coloring (default purple, by rank)
//   - [WithRotation]: maximum rotation in degrees (default 0)
//   - [WithSeed]: generator seed (default 42)
//   - [WithMeasurer]: glyph box estimation (default [EstimateMeasurer])
//
// [render/sink]: github.com/matzehuels/wordstorm/pkg/core/render/sink
package cloud
