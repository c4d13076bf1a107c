package sink

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/cloud/motion"
	"github.com/matzehuels/wordstorm/pkg/core/render/styles"
	"github.com/matzehuels/wordstorm/pkg/fonts"
)

// easeOutCubic as a CSS timing function.
const easeOutCubicCSS = "cubic-bezier(0.33, 1, 0.68, 1)"

const animationCSS = `
    @keyframes ws-enter { from { opacity: 0; transform: scale(0.5); } to { opacity: 1; transform: scale(1); } }
    @keyframes ws-float { 0%%, 100%% { transform: translateY(calc(-1 * var(--amp))); } 50%% { transform: translateY(var(--amp)); } }
    .enter { animation-name: ws-enter; animation-timing-function: %s; animation-fill-mode: both; }
    .float { animation-name: ws-float; animation-timing-function: ease-in-out; animation-iteration-count: infinite; }
    @media (prefers-reduced-motion: reduce) { .enter, .float { animation: none; } }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style   styles.Style
	title   string
	animate bool
	params  motion.Params
	embed   bool
}

// WithStyle sets the visual style (default plain).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithTitle adds a <title> element and, for styles that have one, a backdrop title.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

// WithEmbeddedFont inlines the Go font as a data URL so the SVG renders the
// same without the font installed.
func WithEmbeddedFont() SVGOption { return func(r *svgRenderer) { r.embed = true } }

// WithAnimation adds the entrance and idle float as CSS animations.
func WithAnimation(p motion.Params) SVGOption {
	return func(r *svgRenderer) { r.animate = true; r.params = p }
}

// RenderSVG renders the layout as an SVG document.
func RenderSVG(l cloud.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	canvas := styles.Canvas{Width: l.Width, Height: l.Height, Title: r.title}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}

	buf.WriteString("  <defs>\n")
	r.style.RenderDefs(&buf, canvas)
	buf.WriteString("  </defs>\n")
	renderStyleSheet(&buf, r)

	fmt.Fprintf(&buf, `  <rect class="background" width="%.0f" height="%.0f" fill="%s"/>`+"\n",
		l.Width, l.Height, r.style.Background())
	r.style.RenderBackdrop(&buf, canvas)

	if r.animate {
		renderAnimated(&buf, r, motion.Plan(l, r.params))
	} else {
		for _, p := range l.Words {
			r.style.RenderWord(&buf, wordOf(p))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Plain{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderStyleSheet(buf *bytes.Buffer, r svgRenderer) {
	if !r.embed && !r.animate {
		return
	}
	buf.WriteString("  <style>")
	if r.embed {
		buf.WriteString("\n    " + fonts.FontFace())
	}
	if r.animate {
		fmt.Fprintf(buf, animationCSS, easeOutCubicCSS)
	}
	buf.WriteString("\n  </style>\n")
}

// renderAnimated wraps each word in a float group (outer) and an entrance
// group (inner), so the two transforms compose instead of overriding each
// other.
func renderAnimated(buf *bytes.Buffer, r svgRenderer, tracks []motion.Track) {
	for _, t := range tracks {
		floatStyle := ""
		if !t.NoFloat {
			// A negative delay starts the loop mid-cycle at the track's phase.
			offset := -t.Phase / (2 * math.Pi) * seconds(t.Period)
			floatStyle = fmt.Sprintf(` style="--amp: %.2fpx; animation-duration: %.3fs; animation-delay: %.3fs"`,
				t.Amplitude, seconds(t.Period), offset)
		}
		fmt.Fprintf(buf, `  <g class="float"%s>`+"\n", floatStyle)
		fmt.Fprintf(buf, `   <g class="enter" style="animation-duration: %.3fs; animation-delay: %.3fs; transform-origin: %.2fpx %.2fpx">`+"\n",
			seconds(t.Duration), seconds(t.Delay), t.Word.X, t.Word.Y)
		r.style.RenderWord(buf, wordOf(t.Word))
		buf.WriteString("   </g>\n  </g>\n")
	}
}

func wordOf(p cloud.Placed) styles.Word {
	return styles.Word{
		Text:     p.Text,
		X:        p.X,
		Y:        p.Y,
		FontSize: p.FontSize,
		Rotation: p.Rotation,
		Color:    p.Color,
		Rank:     p.Rank,
		Attrs:    fmt.Sprintf(`data-rank="%d"`, p.Rank),
	}
}

func seconds(d time.Duration) float64 { return d.Seconds() }
