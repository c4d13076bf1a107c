package cloud

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func numbered(n int) []Word {
	words := make([]Word, n)
	for i := range words {
		words[i] = Word{Text: fmt.Sprintf("word%02d", i), Weight: float64(n - i)}
	}
	return words
}

func TestBuildEmpty(t *testing.T) {
	l := Build(nil, 400, 400)
	if l.Words == nil || len(l.Words) != 0 {
		t.Fatalf("Words = %v, want empty non-nil slice", l.Words)
	}
	if l.Fallbacks != 0 {
		t.Errorf("Fallbacks = %d, want 0", l.Fallbacks)
	}
	if l.Width != 400 || l.Height != 400 {
		t.Errorf("canvas = %vx%v, want 400x400", l.Width, l.Height)
	}
}

func TestBuildCatsAndDogs(t *testing.T) {
	l := Build([]Word{{"cats", 10}, {"dogs", 2}}, 400, 400)

	if len(l.Words) != 2 {
		t.Fatalf("got %d words, want 2", len(l.Words))
	}
	cats, dogs := l.Words[0], l.Words[1]
	if cats.Text != "cats" || dogs.Text != "dogs" {
		t.Fatalf("order = %q, %q, want cats, dogs", cats.Text, dogs.Text)
	}
	if cats.FontSize != DefaultMaxFontSize {
		t.Errorf("cats.FontSize = %v, want %v", cats.FontSize, DefaultMaxFontSize)
	}
	if cats.FontSize <= dogs.FontSize {
		t.Errorf("cats.FontSize = %v, want > dogs.FontSize %v", cats.FontSize, dogs.FontSize)
	}
	if cats.X != 200 || cats.Y != 200 {
		t.Errorf("cats at (%v, %v), want canvas center", cats.X, cats.Y)
	}
	if cats.Fallback || dogs.Fallback {
		t.Errorf("unexpected fallback: cats=%v dogs=%v", cats.Fallback, dogs.Fallback)
	}
	if l.Bounds(cats).Overlaps(l.Bounds(dogs)) {
		t.Error("cats and dogs overlap")
	}
}

func TestBuildKeepsEveryWord(t *testing.T) {
	tests := []struct {
		name   string
		words  []Word
		w, h   float64
		opts   []Option
		wantFB bool
	}{
		{name: "Roomy", words: numbered(10), w: 800, h: 600},
		{name: "Crowded", words: numbered(40), w: 300, h: 300, opts: []Option{WithAttempts(10)}, wantFB: true},
		{name: "Duplicates", words: []Word{{"a", 1}, {"a", 1}, {"a", 2}}, w: 400, h: 400},
		{name: "ZeroCanvas", words: numbered(3), w: 0, h: 0, wantFB: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Build(tt.words, tt.w, tt.h, tt.opts...)
			if len(l.Words) != len(tt.words) {
				t.Fatalf("got %d words, want %d", len(l.Words), len(tt.words))
			}
			seen := make(map[int]bool)
			for _, p := range l.Words {
				if seen[p.Index] {
					t.Fatalf("index %d placed twice", p.Index)
				}
				seen[p.Index] = true
				if p.Text != tt.words[p.Index].Text {
					t.Errorf("word %d text = %q, want %q", p.Index, p.Text, tt.words[p.Index].Text)
				}
			}
			if got := l.PlacedCount() + l.Fallbacks; got != len(tt.words) {
				t.Errorf("placed + fallbacks = %d, want %d", got, len(tt.words))
			}
			if tt.wantFB && l.Fallbacks == 0 {
				t.Error("expected fallback placements")
			}
		})
	}
}

func TestBuildNoOverlap(t *testing.T) {
	for _, n := range []int{5, 20, 40} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			l := Build(numbered(n), 900, 700, WithRotation(25))
			m := l.Config.Margin()
			for i, a := range l.Words {
				if a.Fallback {
					continue
				}
				ba := l.Bounds(a)
				if !ba.Within(m, m, l.Width-m, l.Height-m) {
					t.Errorf("%s out of bounds: %+v", a.Text, ba)
				}
				for _, b := range l.Words[i+1:] {
					if b.Fallback {
						continue
					}
					if ba.Overlaps(l.Bounds(b)) {
						t.Errorf("%s overlaps %s", a.Text, b.Text)
					}
				}
			}
		})
	}
}

func TestBuildFontSizeMonotonic(t *testing.T) {
	words := []Word{{"x", 3}, {"y", 17}, {"z", 9}, {"w", 17}, {"v", 1}}
	l := Build(words, 600, 600)
	for _, a := range l.Words {
		if a.FontSize < DefaultMinFontSize || a.FontSize > DefaultMaxFontSize {
			t.Errorf("%s size %v outside font range", a.Text, a.FontSize)
		}
		for _, b := range l.Words {
			if a.Weight > b.Weight && a.FontSize < b.FontSize {
				t.Errorf("%s (w=%v, size=%v) smaller than %s (w=%v, size=%v)",
					a.Text, a.Weight, a.FontSize, b.Text, b.Weight, b.FontSize)
			}
		}
	}
	for i := 1; i < len(l.Words); i++ {
		if l.Words[i-1].Weight < l.Words[i].Weight {
			t.Errorf("placement order not descending at %d", i)
		}
	}
	// Ties keep input order.
	if l.Words[0].Text != "y" || l.Words[1].Text != "w" {
		t.Errorf("tie order = %s, %s, want y, w", l.Words[0].Text, l.Words[1].Text)
	}
}

func TestBuildWeights(t *testing.T) {
	tests := []struct {
		name  string
		words []Word
		want  []float64
	}{
		{
			name:  "AllEqual",
			words: []Word{{"a", 4}, {"b", 4}, {"c", 4}},
			want:  []float64{80, 80, 80},
		},
		{
			name:  "Invalid",
			words: []Word{{"ok", 2}, {"nan", math.NaN()}, {"neg", -3}, {"zero", 0}},
			want:  []float64{80, 22, 22, 22},
		},
		{
			name:  "Half",
			words: []Word{{"a", 10}, {"b", 5}},
			want:  []float64{80, 51},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Build(tt.words, 800, 800)
			for i, p := range l.Words {
				if p.FontSize != tt.want[i] {
					t.Errorf("%s FontSize = %v, want %v", p.Text, p.FontSize, tt.want[i])
				}
			}
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	words := numbered(30)
	opts := []Option{WithRotation(40), WithColorPolicy(ColorRandom), WithSeed(7)}

	a := Build(words, 500, 400, opts...)
	b := Build(words, 500, 400, opts...)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("layouts differ (-first +second):\n%s", diff)
	}

	c := Build(words, 500, 400, WithRotation(40), WithColorPolicy(ColorRandom), WithSeed(8))
	if cmp.Equal(a.Words, c.Words) {
		t.Error("different seeds produced identical layouts")
	}
}

func TestBuildSingleWord(t *testing.T) {
	t.Run("Centered", func(t *testing.T) {
		l := Build([]Word{{"hello", 1}}, 640, 480)
		p := l.Words[0]
		if p.X != 320 || p.Y != 240 || p.Fallback {
			t.Errorf("got (%v, %v, fallback=%v), want (320, 240, false)", p.X, p.Y, p.Fallback)
		}
	})
	t.Run("TooLarge", func(t *testing.T) {
		l := Build([]Word{{"supercalifragilistic", 1}}, 50, 50)
		p := l.Words[0]
		if !p.Fallback || l.Fallbacks != 1 {
			t.Fatalf("fallback = %v (count %d), want true", p.Fallback, l.Fallbacks)
		}
		if p.X != 25 || p.Y != 25 {
			t.Errorf("got (%v, %v), want (25, 25)", p.X, p.Y)
		}
	})
}

func TestBuildRotation(t *testing.T) {
	l := Build(numbered(12), 800, 800, WithRotation(30))
	rotated := 0
	for _, p := range l.Words {
		if math.Abs(p.Rotation) > 30 {
			t.Errorf("%s rotation %v exceeds 30", p.Text, p.Rotation)
		}
		if p.Rotation != 0 {
			rotated++
		}
	}
	if rotated == 0 {
		t.Error("no word was rotated")
	}

	for _, p := range Build(numbered(5), 800, 800).Words {
		if p.Rotation != 0 {
			t.Errorf("%s rotated by %v with rotation disabled", p.Text, p.Rotation)
		}
	}
}

func TestBuildColors(t *testing.T) {
	palette := []string{"#000", "#111", "#222", "#333"}

	t.Run("Rank", func(t *testing.T) {
		l := Build(numbered(4), 800, 800, WithPalette(palette...))
		for i, p := range l.Words {
			if p.Color != palette[i] {
				t.Errorf("rank %d color = %s, want %s", i, p.Color, palette[i])
			}
		}
	})
	t.Run("Weight", func(t *testing.T) {
		words := []Word{{"max", 8}, {"half", 4}, {"low", 1}}
		l := Build(words, 800, 800, WithPalette(palette...), WithColorPolicy(ColorByWeight))
		want := []string{"#333", "#222", "#000"}
		for i, p := range l.Words {
			if p.Color != want[i] {
				t.Errorf("%s color = %s, want %s", p.Text, p.Color, want[i])
			}
		}
	})
	t.Run("Random", func(t *testing.T) {
		l := Build(numbered(20), 900, 900, WithPalette(palette...), WithColorPolicy(ColorRandom))
		for _, p := range l.Words {
			found := false
			for _, c := range palette {
				found = found || c == p.Color
			}
			if !found {
				t.Errorf("%s color %s not in palette", p.Text, p.Color)
			}
		}
	})
}

type fixedMeasurer struct{ w, h float64 }

func (m fixedMeasurer) Measure(string, float64) (float64, float64) { return m.w, m.h }

func TestBuildMeasurer(t *testing.T) {
	l := Build([]Word{{"a", 1}, {"b", 1}}, 200, 200, WithMeasurer(fixedMeasurer{50, 20}))
	for _, p := range l.Words {
		if p.Width != 50 || p.Height != 20 {
			t.Errorf("%s glyph = %vx%v, want 50x20", p.Text, p.Width, p.Height)
		}
	}
}

func TestNormalize(t *testing.T) {
	var c Config
	c.Normalize()
	if diff := cmp.Diff(DefaultConfig(), c); diff != "" {
		t.Errorf("zero config mismatch (-want +got):\n%s", diff)
	}
	if c.MaxFontSize != 80 || c.MinFontSize != 22 || c.PlacementAttempts != 400 || c.Seed != 42 {
		t.Errorf("unexpected defaults: %+v", c)
	}

	c = Config{MinFontSize: 90, MaxFontSize: 30, ColorPolicy: "rainbow", RotationRange: -120}
	c.Normalize()
	if c.MinFontSize != 30 || c.MaxFontSize != 90 {
		t.Errorf("font range = [%v, %v], want [30, 90]", c.MinFontSize, c.MaxFontSize)
	}
	if c.ColorPolicy != ColorByRank {
		t.Errorf("ColorPolicy = %q, want %q", c.ColorPolicy, ColorByRank)
	}
	if c.RotationRange != 90 {
		t.Errorf("RotationRange = %v, want 90", c.RotationRange)
	}

	before := c
	c.Normalize()
	if diff := cmp.Diff(before, c); diff != "" {
		t.Errorf("Normalize not idempotent:\n%s", diff)
	}
}

func TestBuildExtremeConfigFinishes(t *testing.T) {
	long := []Word{{Text: strings.Repeat("w", 64), Weight: 1}}
	tests := []struct {
		name  string
		words []Word
		opts  []Option
	}{
		{"HugeFont", long, []Option{WithFontRange(22, 200000)}},
		{"HugeFontManyWords", numbered(200), []Option{WithFontRange(22, 200000)}},
		{"HugeGridCell", numbered(100), []Option{WithGridSize(1e6)}},
		{"TinyGridCell", numbered(100), []Option{WithGridSize(0.001)}},
		{"SpacingNearCanvas", numbered(50), []Option{WithSpacing(790)}},
		{"MarginNearCanvas", numbered(50), []Option{WithCanvasMargin(299)}},
		{"AttemptsBeyondCap", numbered(20), []Option{WithAttempts(1_000_000_000), WithFontRange(300, 400)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan Layout, 1)
			go func() { done <- Build(tt.words, 800, 600, tt.opts...) }()

			select {
			case l := <-done:
				if len(l.Words) != len(tt.words) {
					t.Errorf("placed %d words, want %d", len(l.Words), len(tt.words))
				}
				if l.Config.PlacementAttempts > MaxPlacementAttempts {
					t.Errorf("PlacementAttempts = %d, want at most %d", l.Config.PlacementAttempts, MaxPlacementAttempts)
				}
			case <-time.After(10 * time.Second):
				t.Fatal("Build did not return within 10s")
			}
		})
	}
}
