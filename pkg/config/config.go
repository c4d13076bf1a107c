// Package config loads the wordstorm configuration file.
//
// The file is TOML, by default at $XDG_CONFIG_HOME/wordstorm/config.toml:
//
//	[canvas]
//	width = 1200
//	height = 800
//
//	[layout]
//	max_font_size = 96
//	palette = ["#8A4FFF", "#C0A0FF"]
//	measurer = "font"
//
//	[render]
//	formats = ["svg", "png"]
//	style = "storm"
//
//	[text]
//	top_n = 60
//	stopwords = ["lol"]
//
//	[cache]
//	redis = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//	mongo_uri = "mongodb://localhost:27017"
//
// Every value is optional. Command-line flags override the file, and the
// file overrides built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/pipeline"
)

// Config is the parsed configuration file.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Layout Layout `toml:"layout"`
	Render Render `toml:"render"`
	Text   Text   `toml:"text"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Layout holds the layout knobs plus the measurer choice.
type Layout struct {
	cloud.Config
	Measurer string `toml:"measurer"`
}

type Render struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Title   string   `toml:"title"`
	Animate bool     `toml:"animate"`
	Scale   float64  `toml:"scale"`
}

type Text struct {
	TopN      int      `toml:"top_n"`
	MinLength int      `toml:"min_length"`
	Stopwords []string `toml:"stopwords"`
}

type Cache struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
	Redis    string `toml:"redis"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

type Server struct {
	Addr            string        `toml:"addr"`
	MongoURI        string        `toml:"mongo_uri"`
	MongoDatabase   string        `toml:"mongo_database"`
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

// Server defaults.
const (
	DefaultAddr            = ":8080"
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Server: Server{
			Addr:            DefaultAddr,
			ReadTimeout:     DefaultReadTimeout,
			WriteTimeout:    DefaultWriteTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/wordstorm/config.toml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "wordstorm", "config.toml"), nil
}

// Load reads the configuration at path, or at DefaultPath when path is empty.
// A missing default file yields Default(); a missing explicit file is an
// error. Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	cfg.fillServerDefaults()
	return cfg, nil
}

// Parse decodes configuration from TOML text.
func Parse(data string) (*Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.fillServerDefaults()
	return cfg, nil
}

func (c *Config) fillServerDefaults() {
	d := Default().Server
	if c.Server.Addr == "" {
		c.Server.Addr = d.Addr
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = d.ReadTimeout
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = d.WriteTimeout
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = d.ShutdownTimeout
	}
}

// Apply fills the zero fields of opts from the configuration. Fields already
// set, typically from flags, are left alone.
func (c *Config) Apply(opts *pipeline.Options) {
	if opts.Width == 0 {
		opts.Width = c.Canvas.Width
	}
	if opts.Height == 0 {
		opts.Height = c.Canvas.Height
	}
	if opts.Measurer == "" {
		opts.Measurer = c.Layout.Measurer
	}
	mergeLayout(&opts.Config, c.Layout.Config)

	if len(opts.Formats) == 0 {
		opts.Formats = slices.Clone(c.Render.Formats)
	}
	if opts.Style == "" {
		opts.Style = c.Render.Style
	}
	if opts.Title == "" {
		opts.Title = c.Render.Title
	}
	if c.Render.Animate {
		opts.Animate = true
	}
	if opts.Scale == 0 {
		opts.Scale = c.Render.Scale
	}

	if opts.TopN == 0 {
		opts.TopN = c.Text.TopN
	}
	if opts.MinLength == 0 {
		opts.MinLength = c.Text.MinLength
	}
	opts.Stopwords = append(opts.Stopwords, c.Text.Stopwords...)
}

func mergeLayout(dst *cloud.Config, src cloud.Config) {
	setF := func(d *float64, s float64) {
		if *d == 0 {
			*d = s
		}
	}
	setF(&dst.MaxFontSize, src.MaxFontSize)
	setF(&dst.MinFontSize, src.MinFontSize)
	setF(&dst.WordSpacing, src.WordSpacing)
	setF(&dst.GridSize, src.GridSize)
	setF(&dst.RotationRange, src.RotationRange)
	setF(&dst.SafetyMargin, src.SafetyMargin)
	setF(&dst.CanvasMargin, src.CanvasMargin)
	setF(&dst.AngleStep, src.AngleStep)
	setF(&dst.RadiusStep, src.RadiusStep)
	if dst.PlacementAttempts == 0 {
		dst.PlacementAttempts = src.PlacementAttempts
	}
	if len(dst.Palette) == 0 {
		dst.Palette = slices.Clone(src.Palette)
	}
	if dst.ColorPolicy == "" {
		dst.ColorPolicy = src.ColorPolicy
	}
	if dst.Seed == 0 {
		dst.Seed = src.Seed
	}
}
