package sink

import (
	"bytes"
	"context"
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/render"
	"github.com/matzehuels/wordstorm/pkg/core/render/styles"
	"github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/fonts"
)

// maxPNGSide bounds the raster size after scaling.
const maxPNGSide = 16384

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style styles.Style
	title string
	scale float64
	rsvg  bool
	ctx   context.Context
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGStyle sets the visual style.
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// WithPNGTitle draws a backdrop title for styles that have one.
func WithPNGTitle(t string) PNGOption {
	return func(r *pngRenderer) { r.title = t }
}

// WithRSVG rasterizes the SVG output with rsvg-convert instead of gogpu/gg.
// This honors rotation but requires librsvg.
func WithRSVG(ctx context.Context) PNGOption {
	return func(r *pngRenderer) { r.rsvg = true; r.ctx = ctx }
}

// RenderPNG renders the layout as PNG.
func RenderPNG(l cloud.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, style: styles.Plain{}}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 2.0
	}

	if r.rsvg {
		svg := RenderSVG(l, WithStyle(r.style), WithTitle(r.title))
		return render.ToPNG(r.ctx, svg, r.scale)
	}

	w := int(math.Ceil(l.Width * r.scale))
	h := int(math.Ceil(l.Height * r.scale))
	if w <= 0 || h <= 0 || w > maxPNGSide || h > maxPNGSide {
		return nil, errors.New(errors.ErrCodeInvalidCanvas, "cannot rasterize %dx%d pixels", w, h)
	}

	src, err := fonts.Source(false)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.Hex(r.style.Background()))
	if g, ok := r.style.(styles.Glower); ok {
		if err := drawGlow(dc, g, float64(w), float64(h)); err != nil {
			return nil, err
		}
	}
	if r.title != "" {
		if g, ok := r.style.(styles.Glower); ok {
			hex, _ := g.Glow()
			c := gg.Hex(hex)
			size := styles.TitleSize(styles.Canvas{Width: l.Width, Title: r.title})
			dc.SetFont(src.Face(size * r.scale))
			dc.SetRGBA(c.R, c.G, c.B, 0.35)
			dc.DrawStringAnchored(r.title, float64(w)/2, float64(h)/2, 0.5, 0.5)
		}
	}

	for _, p := range l.Words {
		dc.SetFont(src.Face(p.FontSize * r.scale))
		dc.SetHexColor(p.Color)
		dc.DrawStringAnchored(p.Text, p.X*r.scale, p.Y*r.scale, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawGlow(dc *gg.Context, g styles.Glower, w, h float64) error {
	hex, ratio := g.Glow()
	c := gg.Hex(hex)
	grad := gg.NewRadialGradientBrush(w/2, h/2, 0, ratio*math.Max(w, h)).
		AddColorStop(0, gg.RGBA2(c.R, c.G, c.B, 0.9)).
		AddColorStop(1, gg.RGBA2(c.R, c.G, c.B, 0))
	dc.SetFillBrush(grad)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("draw glow: %w", err)
	}
	return nil
}
