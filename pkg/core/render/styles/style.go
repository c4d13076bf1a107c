// Package styles defines visual styles for word cloud rendering.
//
// # Overview
//
// A style controls everything around the placed words: the background, SVG
// definitions such as gradients, a backdrop drawn behind the words, and how a
// single word's text element looks. Positions, sizes and colors always come
// from the layout.
//
//   - [Plain]: white background, flat text
//   - [Storm]: black background with a purple glow and a faint title behind
//     the words, the heaviest words outlined
//
// Usage:
//
//	svg := sink.RenderSVG(layout, sink.WithStyle(styles.Storm{}))
//
// Styles are looked up by name with [Lookup].
package styles

import (
	"bytes"
	"encoding/xml"
	"slices"

	"github.com/matzehuels/wordstorm/pkg/errors"
)

// Style defines the visual appearance of a rendered cloud.
type Style interface {
	// Name is the identifier used by [Lookup].
	Name() string
	// Background is the canvas fill color.
	Background() string
	// RenderDefs writes SVG <defs> content (gradients, filters).
	RenderDefs(buf *bytes.Buffer, c Canvas)
	// RenderBackdrop writes the elements drawn between background and words.
	RenderBackdrop(buf *bytes.Buffer, c Canvas)
	// RenderWord writes the <text> element of one word.
	RenderWord(buf *bytes.Buffer, w Word)
}

// Glower is implemented by styles that draw a radial glow behind the words.
// Raster sinks use it to reproduce the SVG backdrop.
type Glower interface {
	Glow() (color string, radiusRatio float64)
}

// Canvas describes the drawing surface.
type Canvas struct {
	Width, Height float64
	Title         string // optional backdrop title
}

// Word contains all data needed to render a single word.
type Word struct {
	Text     string
	X, Y     float64 // glyph-box center
	FontSize float64
	Rotation float64 // degrees
	Color    string
	Rank     int    // placement order, 0 is heaviest
	Attrs    string // extra attributes supplied by the sink, already escaped
}

var registry = map[string]Style{
	Plain{}.Name(): Plain{},
	Storm{}.Name(): Storm{},
}

// Lookup returns the style registered under name. The empty name is Plain.
func Lookup(name string) (Style, error) {
	if name == "" {
		return Plain{}, nil
	}
	s, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want one of %v)", name, Names())
	}
	return s, nil
}

// Names returns the registered style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
