package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/wordstorm/pkg/fonts"
)

// Plain renders flat colored words on white.
type Plain struct{}

func (Plain) Name() string       { return "plain" }
func (Plain) Background() string { return "#ffffff" }

func (Plain) RenderDefs(buf *bytes.Buffer, _ Canvas)     {}
func (Plain) RenderBackdrop(buf *bytes.Buffer, _ Canvas) {}

func (Plain) RenderWord(buf *bytes.Buffer, w Word) {
	writeText(buf, w, "")
}

// writeText writes a centered text element. extra is inserted verbatim into
// the attribute list.
func writeText(buf *bytes.Buffer, w Word, extra string) {
	fmt.Fprintf(buf, `    <text class="word" x="%.2f" y="%.2f" font-size="%.2f" fill="%s" font-family="%s" text-anchor="middle" dominant-baseline="central"`,
		w.X, w.Y, w.FontSize, EscapeXML(w.Color), EscapeXML(fonts.FallbackFontFamily))
	if w.Rotation != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%.2f %.2f %.2f)"`, w.Rotation, w.X, w.Y)
	}
	if extra != "" {
		buf.WriteString(" " + extra)
	}
	if w.Attrs != "" {
		buf.WriteString(" " + w.Attrs)
	}
	fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(w.Text))
}
