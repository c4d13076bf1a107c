// Package pipeline provides the word cloud pipeline shared by the CLI and the
// HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Count: tokenize texts and weight words by frequency
//  2. Layout: place the weighted words on the canvas
//  3. Render: generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
// Layout and render results are cached through a [cache.Cache].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Texts:   []string{speech},
//	    Formats: []string{"svg", "png"},
//	    Style:   "storm",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordstorm/pkg/cache"
	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/core/cloud/motion"
	"github.com/matzehuels/wordstorm/pkg/core/render/styles"
	"github.com/matzehuels/wordstorm/pkg/core/text/wordfreq"
	"github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0

	// DefaultStyle is the default visual style.
	DefaultStyle = wordcloud.StylePlain
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// Measurers select how word boxes are sized.
const (
	MeasureEstimate = "estimate" // character-width estimate
	MeasureFont     = "font"     // glyph advances of the Go font
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the word cloud pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Count options
	Texts     []string `json:"texts,omitempty"`
	TopN      int      `json:"top_n,omitempty"`
	MinLength int      `json:"min_length,omitempty"`
	Stopwords []string `json:"stopwords,omitempty"` // added to the English list

	// Layout options. Words skips counting when set.
	Words    []wordcloud.Word `json:"words,omitempty"`
	Width    float64          `json:"width,omitempty"`
	Height   float64          `json:"height,omitempty"`
	Config   cloud.Config     `json:"config,omitzero"`
	Measurer string           `json:"measurer,omitempty"`
	Refresh  bool             `json:"refresh,omitempty"`

	// Render options
	Formats []string       `json:"formats,omitempty"`
	Style   string         `json:"style,omitempty"`
	Title   string         `json:"title,omitempty"`
	Animate bool           `json:"animate,omitempty"`
	Motion  *motion.Params `json:"motion,omitempty"`
	Scale   float64        `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Words is the weighted word list the layout was built from.
	Words []cloud.Word

	// WordsHash is the content hash of Words.
	WordsHash string

	// Layout is the placed cloud.
	Layout cloud.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Tokens     int
	Unique     int
	WordCount  int
	Placed     int
	Fallbacks  int
	CountTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	_, err := styles.Lookup(style)
	return err
}

// ValidateMeasurer checks that a measurer name is valid. Empty selects the
// estimate.
func ValidateMeasurer(m string) error {
	switch m {
	case "", MeasureEstimate, MeasureFont:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput,
		"invalid measurer: %q (must be one of: estimate, font)", m)
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCount(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForCount checks that there is something to count.
func (o *Options) ValidateForCount() error {
	if len(o.Texts) == 0 && len(o.Words) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "texts or words are required")
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Measurer == "" {
		o.Measurer = MeasureEstimate
	}
	o.Config.Normalize()
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}
	if err := errors.ValidateConfig(o.Config); err != nil {
		return err
	}
	return ValidateMeasurer(o.Measurer)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "scale %.2f out of range (0, 8]", o.Scale)
	}
	return errors.ValidateTitle(o.Title)
}

// CountOptions returns the word counter options.
func (o *Options) CountOptions() wordfreq.Options {
	return wordfreq.Options{
		MinLength: o.MinLength,
		Extra:     o.Stopwords,
		TopN:      o.TopN,
	}
}

// MotionParams returns the animation parameters, defaults when unset.
func (o *Options) MotionParams() motion.Params {
	if o.Motion == nil {
		return motion.DefaultParams()
	}
	p := *o.Motion
	p.Normalize()
	return p
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:    o.Width,
		Height:   o.Height,
		Config:   o.Config,
		Measurer: o.Measurer,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Title:  o.Title,
	}
	switch format {
	case FormatSVG:
		if o.Animate {
			k.Animate = true
			k.Motion = o.MotionParams()
		}
	case FormatPNG:
		k.Scale = o.Scale
	}
	return k
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// String summarizes the options for debug logging.
func (o *Options) String() string {
	return fmt.Sprintf("%gx%g %s %v", o.Width, o.Height, o.Style, o.Formats)
}
