package errors

import (
	"math"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
)

// Limits enforced by the validators.
const (
	MaxCanvasSide = 8192 // pixels
	MaxWords      = 500
	MaxWordLength = 64 // runes
	MaxTitle      = 120
	MaxFontSize   = 2048 // pixels
	MaxSafety     = 4    // SafetyMargin factor
)

// ValidateCanvas checks a canvas size. Both sides must be finite, positive
// and at most MaxCanvasSide.
func ValidateCanvas(width, height float64) error {
	for _, v := range []float64{width, height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return New(ErrCodeInvalidCanvas, "canvas must be positive, got %vx%v", width, height)
		}
		if v > MaxCanvasSide {
			return New(ErrCodeInvalidCanvas, "canvas too large (max %d per side), got %vx%v", MaxCanvasSide, width, height)
		}
	}
	return nil
}

// ValidateConfig checks a normalized layout configuration. Every length
// must be finite and at most the canvas limit, fonts at most MaxFontSize,
// and PlacementAttempts at most [cloud.MaxPlacementAttempts]. Together with
// the canvas limit this bounds the work of one layout.
func ValidateConfig(c cloud.Config) error {
	lengths := []struct {
		name  string
		value float64
		limit float64
	}{
		{"max_font_size", c.MaxFontSize, MaxFontSize},
		{"min_font_size", c.MinFontSize, MaxFontSize},
		{"word_spacing", c.WordSpacing, MaxCanvasSide},
		{"grid_size", c.GridSize, MaxCanvasSide},
		{"canvas_margin", c.CanvasMargin, MaxCanvasSide},
		{"radius_step", c.RadiusStep, MaxCanvasSide},
		{"angle_step", c.AngleStep, 2 * math.Pi},
		{"rotation_range", c.RotationRange, 90},
		{"safety_margin", c.SafetyMargin, MaxSafety},
	}
	for _, l := range lengths {
		if math.IsNaN(l.value) || math.IsInf(l.value, 0) {
			return New(ErrCodeInvalidConfig, "%s must be finite, got %v", l.name, l.value)
		}
		if math.Abs(l.value) > l.limit {
			return New(ErrCodeInvalidConfig, "%s out of range (max %v), got %v", l.name, l.limit, l.value)
		}
	}
	if c.PlacementAttempts > cloud.MaxPlacementAttempts {
		return New(ErrCodeInvalidConfig, "placement_attempts too large (max %d), got %d",
			cloud.MaxPlacementAttempts, c.PlacementAttempts)
	}
	return ValidatePalette(c.Palette)
}

// ValidateWords checks a word batch. An empty batch is valid.
//
// Weights are not rejected: the layout clamps non-positive weights to the
// minimum font size. Text must be non-empty, free of control characters and
// at most MaxWordLength runes.
func ValidateWords(words []cloud.Word) error {
	if len(words) > MaxWords {
		return New(ErrCodeInvalidWords, "too many words (max %d), got %d", MaxWords, len(words))
	}
	for i, w := range words {
		t := w.Text
		if strings.TrimSpace(t) == "" {
			return New(ErrCodeInvalidWords, "word %d is empty", i)
		}
		if utf8.RuneCountInString(t) > MaxWordLength {
			return New(ErrCodeInvalidWords, "word %d too long (max %d characters)", i, MaxWordLength)
		}
		for _, r := range t {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidWords, "word %d contains control characters", i)
			}
		}
	}
	return nil
}

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor checks a CSS hex color (#rgb, #rrggbb or #rrggbbaa).
func ValidateColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidStyle, "invalid color %q (want #rrggbb)", color)
	}
	return nil
}

// ValidatePalette checks every palette entry. An empty palette is valid and
// means the default palette.
func ValidatePalette(colors []string) error {
	for _, c := range colors {
		if err := ValidateColor(c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTitle checks a cloud title. Empty titles are valid.
func ValidateTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitle {
		return New(ErrCodeInvalidInput, "title too long (max %d characters)", MaxTitle)
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains control characters")
		}
	}
	return nil
}

// ValidateOutputPath checks a user-supplied output file path. The path must
// name a file and carry one of the allowed extensions when any are given.
func ValidateOutputPath(path string, exts ...string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "output path contains invalid characters")
	}
	if strings.HasSuffix(path, "/") || filepath.Base(path) == "." {
		return New(ErrCodeInvalidPath, "output path %q is a directory", path)
	}
	if len(exts) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return nil
		}
	}
	return New(ErrCodeInvalidPath, "output path %q must end in one of %s", path, strings.Join(exts, ", "))
}
