package errors

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
)

func TestValidateCanvas(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"valid", 800, 600, false},
		{"max", MaxCanvasSide, MaxCanvasSide, false},
		{"zero width", 0, 600, true},
		{"negative height", 800, -1, true},
		{"NaN", math.NaN(), 600, true},
		{"infinite", math.Inf(1), 600, true},
		{"too large", MaxCanvasSide + 1, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCanvas(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCanvas(%v, %v) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidCanvas) {
				t.Errorf("ValidateCanvas returned wrong error code: %v", err)
			}
		})
	}
}

func TestValidateWords(t *testing.T) {
	many := make([]cloud.Word, MaxWords+1)
	for i := range many {
		many[i] = cloud.Word{Text: "w", Weight: 1}
	}

	tests := []struct {
		name    string
		words   []cloud.Word
		wantErr bool
	}{
		{"empty batch", nil, false},
		{"valid", []cloud.Word{{Text: "cats", Weight: 10}, {Text: "☔", Weight: 1}}, false},
		{"zero weight allowed", []cloud.Word{{Text: "cats", Weight: 0}}, false},
		{"empty text", []cloud.Word{{Text: "  ", Weight: 1}}, true},
		{"control char", []cloud.Word{{Text: "a\nb", Weight: 1}}, true},
		{"too long", []cloud.Word{{Text: strings.Repeat("x", MaxWordLength+1), Weight: 1}}, true},
		{"too many", many, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWords(tt.words)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWords() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidWords) {
				t.Errorf("ValidateWords returned wrong error code: %v", err)
			}
		})
	}
}

func TestValidatePalette(t *testing.T) {
	tests := []struct {
		name    string
		colors  []string
		wantErr bool
	}{
		{"empty", nil, false},
		{"valid", []string{"#8A4FFF", "#fff", "#00000080"}, false},
		{"named color", []string{"purple"}, true},
		{"missing hash", []string{"8A4FFF"}, true},
		{"bad length", []string{"#8A4F"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePalette(tt.colors)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePalette(%v) error = %v, wantErr %v", tt.colors, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidStyle) {
				t.Errorf("ValidatePalette returned wrong error code: %v", err)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("sonder"); err != nil {
		t.Errorf("ValidateTitle(sonder) = %v", err)
	}
	if err := ValidateTitle(strings.Repeat("t", MaxTitle+1)); err == nil {
		t.Error("expected error for long title")
	}
	if err := ValidateTitle("a\x00b"); err == nil {
		t.Error("expected error for control character")
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		exts    []string
		wantErr bool
	}{
		{"relative", "out/storm.svg", []string{".svg"}, false},
		{"absolute", "/tmp/storm.PNG", []string{".png", ".svg"}, false},
		{"any extension", "storm.bin", nil, false},
		{"empty", " ", nil, true},
		{"directory", "out/", nil, true},
		{"dot", ".", nil, true},
		{"wrong extension", "storm.gif", []string{".png"}, true},
		{"null byte", "a\x00.svg", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path, tt.exts...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidStyle,
		ErrCodeInvalidCanvas,
		ErrCodeInvalidWords,
		ErrCodeInvalidPath,
		ErrCodeInvalidConfig,
		ErrCodeNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(cloud.DefaultConfig()); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*cloud.Config)
		want   Code
	}{
		{"huge font", func(c *cloud.Config) { c.MaxFontSize = 200000 }, ErrCodeInvalidConfig},
		{"nan font", func(c *cloud.Config) { c.MaxFontSize = math.NaN() }, ErrCodeInvalidConfig},
		{"too many attempts", func(c *cloud.Config) { c.PlacementAttempts = 1_000_000_000 }, ErrCodeInvalidConfig},
		{"huge grid", func(c *cloud.Config) { c.GridSize = 1e9 }, ErrCodeInvalidConfig},
		{"infinite radius step", func(c *cloud.Config) { c.RadiusStep = math.Inf(1) }, ErrCodeInvalidConfig},
		{"nan angle step", func(c *cloud.Config) { c.AngleStep = math.NaN() }, ErrCodeInvalidConfig},
		{"huge negative spacing", func(c *cloud.Config) { c.WordSpacing = -1e6 }, ErrCodeInvalidConfig},
		{"nan safety", func(c *cloud.Config) { c.SafetyMargin = math.NaN() }, ErrCodeInvalidConfig},
		{"bad palette", func(c *cloud.Config) { c.Palette = []string{"purple"} }, ErrCodeInvalidStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cloud.DefaultConfig()
			tt.mutate(&c)
			err := ValidateConfig(c)
			if !Is(err, tt.want) {
				t.Errorf("ValidateConfig() = %v, want %s", err, tt.want)
			}
			if !GetCode(err).Invalid() {
				t.Errorf("code %q is not an input error", GetCode(err))
			}
		})
	}

	edge := cloud.DefaultConfig()
	edge.MaxFontSize = MaxFontSize
	edge.PlacementAttempts = cloud.MaxPlacementAttempts
	edge.WordSpacing = -4
	if err := ValidateConfig(edge); err != nil {
		t.Errorf("limits themselves rejected: %v", err)
	}
}
