package cloud

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Build places words on a width x height canvas.
//
// Every input word appears exactly once in the result, in placement order
// (heaviest first). Words that fit nowhere along any spiral are still placed,
// at a fallback point, and carry Fallback = true. Build never fails: an empty
// batch yields an empty layout and a degenerate canvas yields fallbacks.
func Build(words []Word, width, height float64, opts ...Option) Layout {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	cfg := s.Config
	cfg.Normalize()
	cfg.PlacementAttempts = min(cfg.PlacementAttempts, MaxPlacementAttempts)

	measurer := s.measurer
	if measurer == nil {
		measurer = EstimateMeasurer{}
	}

	layout := Layout{
		Width:  width,
		Height: height,
		Config: cfg,
		Words:  make([]Placed, 0, len(words)),
	}
	if len(words) == 0 {
		return layout
	}

	p := &placer{
		cfg:     cfg,
		width:   width,
		height:  height,
		anchors: anchors(width, height),
		grid:    newGrid(cfg.GridSize, width, height),
		rng:     newRand(cfg.Seed),
	}

	maxWeight := maxPositive(words)
	n := len(words)
	for rank, idx := range placementOrder(words) {
		w := words[idx]
		size := cfg.FontSize(w.Weight, maxWeight)
		gw, gh := measurer.Measure(w.Text, size)

		rotation := 0.0
		if cfg.RotationRange > 0 {
			rotation = (p.rng.Float64()*2 - 1) * cfg.RotationRange
		}

		x, y, ok := p.place(gw, gh, rotation)
		if !ok {
			layout.Fallbacks++
		}
		layout.Words = append(layout.Words, Placed{
			Text:     w.Text,
			Weight:   w.Weight,
			Index:    idx,
			Rank:     rank,
			FontSize: size,
			X:        x,
			Y:        y,
			Width:    gw,
			Height:   gh,
			Rotation: rotation,
			Color:    cfg.colorFor(rank, n, w.Weight, maxWeight, p.rng),
			Fallback: !ok,
		})
	}
	return layout
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// maxPositive returns the largest finite positive weight, or 0.
func maxPositive(words []Word) float64 {
	m := 0.0
	for _, w := range words {
		if w.Weight > m && !math.IsInf(w.Weight, 1) {
			m = w.Weight
		}
	}
	return m
}

// placementOrder returns input indices sorted by descending weight. Ties and
// invalid weights keep their input order; invalid weights sort last.
func placementOrder(words []Word) []int {
	order := make([]int, len(words))
	for i := range order {
		order[i] = i
	}
	key := func(i int) float64 {
		w := words[i].Weight
		if !(w > 0) {
			return 0
		}
		return w
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ka, kb := key(a), key(b)
		switch {
		case ka > kb:
			return -1
		case ka < kb:
			return 1
		}
		return 0
	})
	return order
}

// placer carries the per-call placement state.
type placer struct {
	cfg           Config
	width, height float64
	anchors       []anchor
	grid          *grid
	rng           *rand.Rand
}

// place finds a position for a glyph box and registers it in the grid. It
// reports false when the position is a fallback.
func (p *placer) place(w, h, rotation float64) (float64, float64, bool) {
	m := p.cfg.Margin()
	minX, minY := m, m
	maxX, maxY := p.width-m, p.height-m

	for _, a := range p.anchors {
		for i := range p.cfg.PlacementAttempts {
			x, y := p.cfg.point(a, i)
			b := p.cfg.box(x, y, w, h, rotation)
			if !b.Within(minX, minY, maxX, maxY) {
				continue
			}
			if p.grid.collides(b) {
				continue
			}
			p.grid.insert(b)
			return x, y, true
		}
	}

	probe := p.cfg.box(0, 0, w, h, rotation)
	x := p.fallback(minX+probe.HW, maxX-probe.HW, p.width/2)
	y := p.fallback(minY+probe.HH, maxY-probe.HH, p.height/2)
	p.grid.insert(p.cfg.box(x, y, w, h, rotation))
	return x, y, false
}

// fallback draws a coordinate uniformly from [lo, hi], or returns center when
// the range is empty.
func (p *placer) fallback(lo, hi, center float64) float64 {
	if !(hi >= lo) {
		return center
	}
	return lo + p.rng.Float64()*(hi-lo)
}
