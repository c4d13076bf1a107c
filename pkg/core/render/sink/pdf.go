package sink

import (
	"context"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/render"
)

// RenderPDF converts the static SVG rendering of l to PDF. Animation options
// and the embedded font are dropped; words appear at rest.
func RenderPDF(ctx context.Context, l cloud.Layout, opts ...SVGOption) ([]byte, error) {
	still := append(opts[:len(opts):len(opts)], func(r *svgRenderer) { r.animate, r.embed = false, false })
	return render.ToPDF(ctx, RenderSVG(l, still...))
}
