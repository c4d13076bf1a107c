package cloud

import (
	"math"
	"slices"
)

// Color policies.
const (
	ColorByRank   = "rank"   // bucket the palette by placement rank
	ColorByWeight = "weight" // bucket the palette by weight / maxWeight
	ColorRandom   = "random" // draw from the palette with the seeded generator
)

// DefaultPalette is the purple ramp of the word storm screen, darkest first.
var DefaultPalette = []string{
	"#8A4FFF",
	"#9966FF",
	"#A67CFF",
	"#B38EFF",
	"#C0A0FF",
	"#CDB2FF",
	"#DAC4FF",
}

// Default configuration values.
const (
	DefaultMaxFontSize       = 80.0
	DefaultMinFontSize       = 22.0
	DefaultWordSpacing       = 4.0
	DefaultGridSize          = 40.0
	DefaultPlacementAttempts = 400
	DefaultSafetyMargin      = 1.05
	DefaultCanvasMargin      = 8.0
	DefaultAngleStep         = 0.35
	DefaultRadiusStep        = 1.5
	DefaultSeed              = uint64(42)

	minGridSize = 4.0
)

// MaxPlacementAttempts caps the spiral steps [Build] tries per anchor.
const MaxPlacementAttempts = 10000

// Config holds every knob of the layout. Zero fields take the defaults above
// (see [Config.Normalize]); the zero Config is therefore usable.
type Config struct {
	MaxFontSize       float64  `json:"max_font_size" toml:"max_font_size" bson:"max_font_size"`
	MinFontSize       float64  `json:"min_font_size" toml:"min_font_size" bson:"min_font_size"`
	WordSpacing       float64  `json:"word_spacing" toml:"word_spacing" bson:"word_spacing"`
	GridSize          float64  `json:"grid_size" toml:"grid_size" bson:"grid_size"`
	PlacementAttempts int      `json:"placement_attempts" toml:"placement_attempts" bson:"placement_attempts"`
	Palette           []string `json:"palette" toml:"palette" bson:"palette"`
	ColorPolicy       string   `json:"color_policy" toml:"color_policy" bson:"color_policy"`
	RotationRange     float64  `json:"rotation_range" toml:"rotation_range" bson:"rotation_range"`
	SafetyMargin      float64  `json:"safety_margin" toml:"safety_margin" bson:"safety_margin"`
	CanvasMargin      float64  `json:"canvas_margin" toml:"canvas_margin" bson:"canvas_margin"`
	AngleStep         float64  `json:"angle_step" toml:"angle_step" bson:"angle_step"`
	RadiusStep        float64  `json:"radius_step" toml:"radius_step" bson:"radius_step"`
	Seed              uint64   `json:"seed" toml:"seed" bson:"seed"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	var c Config
	c.Normalize()
	return c
}

// Normalize replaces zero or invalid fields with defaults and orders the
// font range. It is idempotent. Negative WordSpacing and CanvasMargin are kept
// and mean "none".
func (c *Config) Normalize() {
	if c.MaxFontSize <= 0 {
		c.MaxFontSize = DefaultMaxFontSize
	}
	if c.MinFontSize <= 0 {
		c.MinFontSize = DefaultMinFontSize
	}
	if c.MinFontSize > c.MaxFontSize {
		c.MinFontSize, c.MaxFontSize = c.MaxFontSize, c.MinFontSize
	}
	if c.WordSpacing == 0 {
		c.WordSpacing = DefaultWordSpacing
	}
	if c.GridSize <= 0 {
		c.GridSize = DefaultGridSize
	}
	c.GridSize = max(c.GridSize, minGridSize)
	if c.PlacementAttempts <= 0 {
		c.PlacementAttempts = DefaultPlacementAttempts
	}
	if len(c.Palette) == 0 {
		c.Palette = append([]string(nil), DefaultPalette...)
	}
	switch c.ColorPolicy {
	case ColorByRank, ColorByWeight, ColorRandom:
	default:
		c.ColorPolicy = ColorByRank
	}
	c.RotationRange = math.Min(math.Abs(c.RotationRange), 90)
	if c.SafetyMargin < 1 {
		c.SafetyMargin = DefaultSafetyMargin
	}
	if c.CanvasMargin == 0 {
		c.CanvasMargin = DefaultCanvasMargin
	}
	if c.AngleStep <= 0 {
		c.AngleStep = DefaultAngleStep
	}
	if c.RadiusStep <= 0 {
		c.RadiusStep = DefaultRadiusStep
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
}

// FontSize maps weight to a font size given the batch maximum.
func (c Config) FontSize(weight, maxWeight float64) float64 {
	if !(weight > 0) || !(maxWeight > 0) {
		return c.MinFontSize
	}
	ratio := math.Min(weight/maxWeight, 1)
	return c.MinFontSize + ratio*(c.MaxFontSize-c.MinFontSize)
}

// box derives the collision box of a glyph box centered at (x, y).
func (c Config) box(x, y, w, h, rotation float64) Box {
	rw, rh := rotatedExtents(w, h, rotation)
	return Box{
		CX: x,
		CY: y,
		HW: (rw + c.spacing()) / 2 * c.SafetyMargin,
		HH: (rh + c.spacing()) / 2 * c.SafetyMargin,
	}
}

// settings is what options mutate.
type settings struct {
	Config
	measurer Measurer
}

// spacing returns the effective box padding. Negative WordSpacing means none.
func (c Config) spacing() float64 { return max(c.WordSpacing, 0) }

// Margin returns the effective canvas margin. Negative CanvasMargin means none.
func (c Config) Margin() float64 { return max(c.CanvasMargin, 0) }

// Option configures [Build].
type Option func(*settings)

// WithConfig replaces the whole configuration. Later options still apply.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.Config = cfg
		s.Palette = slices.Clone(cfg.Palette)
	}
}

// WithFontRange sets the font size bounds in pixels.
func WithFontRange(minSize, maxSize float64) Option {
	return func(c *settings) { c.MinFontSize, c.MaxFontSize = minSize, maxSize }
}

// WithSpacing sets the padding added to every box before overlap testing.
// Pass a negative value for no padding.
func WithSpacing(px float64) Option {
	return func(c *settings) { c.WordSpacing = px }
}

// WithGridSize sets the occupancy grid cell size.
func WithGridSize(px float64) Option {
	return func(c *settings) { c.GridSize = px }
}

// WithAttempts sets the number of spiral steps tried per anchor.
func WithAttempts(n int) Option {
	return func(c *settings) { c.PlacementAttempts = n }
}

// WithPalette sets the colors to assign.
func WithPalette(colors ...string) Option {
	return func(c *settings) { c.Palette = append([]string(nil), colors...) }
}

// WithColorPolicy selects one of [ColorByRank], [ColorByWeight], [ColorRandom].
func WithColorPolicy(policy string) Option {
	return func(c *settings) { c.ColorPolicy = policy }
}

// WithRotation sets the maximum absolute rotation in degrees. 0 disables it.
func WithRotation(deg float64) Option {
	return func(c *settings) { c.RotationRange = deg }
}

// WithSeed seeds the generator used for rotation, random colors and fallback points.
func WithSeed(seed uint64) Option {
	return func(c *settings) { c.Seed = seed }
}

// WithCanvasMargin sets the clearance kept at each canvas edge.
// Pass a negative value for no margin.
func WithCanvasMargin(px float64) Option {
	return func(c *settings) { c.CanvasMargin = px }
}

// WithMeasurer replaces the glyph box estimator.
func WithMeasurer(m Measurer) Option {
	return func(c *settings) { c.measurer = m }
}
