package styles

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/wordstorm/pkg/fonts"
)

const (
	stormBackground = "#000000"
	stormGlow       = "#4B0082"
	stormOutline    = "#6F31EC"
	stormOutlined   = 5 // heaviest words that get an outline
	stormTitleMax   = 150.0
)

// Storm is the dark "word storm" look: a purple radial glow and a large faint
// title behind the words, with the heaviest words outlined.
type Storm struct{}

func (Storm) Name() string       { return "storm" }
func (Storm) Background() string { return stormBackground }

// Glow implements [Glower].
func (Storm) Glow() (string, float64) { return stormGlow, 0.6 }

func (Storm) RenderDefs(buf *bytes.Buffer, _ Canvas) {
	buf.WriteString(`    <radialGradient id="storm-glow" cx="50%" cy="50%" r="60%">` + "\n")
	fmt.Fprintf(buf, `      <stop offset="0%%" stop-color="%s" stop-opacity="0.9"/>`+"\n", stormGlow)
	fmt.Fprintf(buf, `      <stop offset="100%%" stop-color="%s" stop-opacity="0"/>`+"\n", stormBackground)
	buf.WriteString("    </radialGradient>\n")
}

func (Storm) RenderBackdrop(buf *bytes.Buffer, c Canvas) {
	fmt.Fprintf(buf, `  <rect class="glow" width="%.0f" height="%.0f" fill="url(#storm-glow)"/>`+"\n", c.Width, c.Height)
	if c.Title == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="title" x="%.2f" y="%.2f" font-size="%.2f" fill="%s" fill-opacity="0.35" font-family="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		c.Width/2, c.Height/2, TitleSize(c), stormGlow, EscapeXML(fonts.FallbackFontFamily), EscapeXML(c.Title))
}

func (Storm) RenderWord(buf *bytes.Buffer, w Word) {
	extra := ""
	if w.Rank < stormOutlined {
		extra = fmt.Sprintf(`stroke="%s" stroke-width="0.5"`, stormOutline)
	}
	writeText(buf, w, extra)
}

// TitleSize returns the backdrop title font size: 150px, shrunk so the title
// spans at most the canvas width.
func TitleSize(c Canvas) float64 {
	n := max(1, len([]rune(c.Title)))
	return math.Min(stormTitleMax, c.Width/(float64(n)*0.6))
}
