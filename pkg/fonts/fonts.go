// Package fonts provides the embedded Go fonts for SVG and raster rendering.
//
// The fonts come from golang.org/x/image/font/gofont and are compiled into
// the binary, so rendering needs no system fonts. SVG output embeds the
// regular face as a base64 data URL; the PNG sink rasterizes it with
// gogpu/gg.
package fonts

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name used for the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fonts to use when the embedded font is not loaded.
const FallbackFontFamily = `'Go', 'Josefin Sans', 'Helvetica Neue', Arial, sans-serif`

// RegularTTF returns the regular TTF font data.
func RegularTTF() []byte { return goregular.TTF }

// BoldTTF returns the bold TTF font data.
func BoldTTF() []byte { return gobold.TTF }

// Cache for base64-encoded fonts (computed once on first access).
var (
	ttfBase64     string
	ttfBase64Once sync.Once
)

// RegularTTFBase64 returns the regular font data as a base64 string.
// The result is cached after first computation.
func RegularTTFBase64() string {
	ttfBase64Once.Do(func() {
		ttfBase64 = base64.StdEncoding.EncodeToString(goregular.TTF)
	})
	return ttfBase64
}

// FontFace returns an @font-face rule that embeds the regular font.
func FontFace() string {
	return fmt.Sprintf("@font-face{font-family:'%s';src:url(data:font/ttf;base64,%s) format('truetype');}",
		FontFamily, RegularTTFBase64())
}

var (
	sources   = map[bool]*text.FontSource{}
	sourcesMu sync.Mutex
)

// Source returns the parsed regular or bold font. Sources are parsed once and
// shared.
func Source(bold bool) (*text.FontSource, error) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	if s, ok := sources[bold]; ok {
		return s, nil
	}
	data := goregular.TTF
	if bold {
		data = gobold.TTF
	}
	s, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("parse go font: %w", err)
	}
	sources[bold] = s
	return s, nil
}

// Measurer measures text with real glyph advances of the regular Go font.
// It satisfies cloud.Measurer and is safe for concurrent use.
type Measurer struct {
	mu     sync.Mutex
	source *text.FontSource
	faces  map[float64]text.Face
}

// NewMeasurer returns a Measurer backed by the regular Go font.
func NewMeasurer() (*Measurer, error) {
	s, err := Source(false)
	if err != nil {
		return nil, err
	}
	return &Measurer{source: s, faces: make(map[float64]text.Face)}, nil
}

// Measure returns the advance width and line height of s at fontSize pixels.
func (m *Measurer) Measure(s string, fontSize float64) (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	face, ok := m.faces[fontSize]
	if !ok {
		face = m.source.Face(fontSize)
		m.faces[fontSize] = face
	}
	w, h := text.Measure(s, face)
	if h == 0 {
		h = fontSize
	}
	return w, h
}
