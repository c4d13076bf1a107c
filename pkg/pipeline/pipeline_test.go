package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/wordstorm/pkg/cache"
	"github.com/matzehuels/wordstorm/pkg/core/cloud"
	"github.com/matzehuels/wordstorm/pkg/errors"
	"github.com/matzehuels/wordstorm/pkg/wordcloud"
)

const speech = `The storm rolled in over the hills. Storm clouds, storm winds,
and rain on the hills again. Rain, rain and more rain.`

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		style   string
		wantErr bool
	}{
		{"plain", false},
		{"storm", false},
		{"handdrawn", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateStyle(tt.style)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateStyle(%q) error = %v, wantErr %v", tt.style, err, tt.wantErr)
		}
	}
}

func TestParseFormats(t *testing.T) {
	got := ParseFormats(" svg, PNG,,svg ,json")
	want := []string{"svg", "png", "json"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFormats mismatch (-want +got):\n%s", diff)
	}
	if ParseFormats("") != nil {
		t.Error("empty list should parse to nil")
	}
}

func TestOptionsValidateForCount(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForCount(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing input: got %v", err)
	}

	opts = Options{Texts: []string{"hello"}}
	if err := opts.ValidateForCount(); err != nil {
		t.Errorf("texts should pass: %v", err)
	}
	if opts.Logger == nil {
		t.Error("logger default not applied")
	}

	opts = Options{Words: []wordcloud.Word{{Text: "go", Weight: 1}}}
	if err := opts.ValidateForCount(); err != nil {
		t.Errorf("words should pass: %v", err)
	}
}

func TestOptionsValidateForLayout(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"defaults", Options{}, ""},
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidCanvas},
		{"huge canvas", Options{Width: 1e6, Height: 10}, errors.ErrCodeInvalidCanvas},
		{"bad palette", Options{Config: cloud.Config{Palette: []string{"purple"}}}, errors.ErrCodeInvalidStyle},
		{"bad measurer", Options{Measurer: "ruler"}, errors.ErrCodeInvalidInput},
		{"huge font", Options{Config: cloud.Config{MaxFontSize: 200000}}, errors.ErrCodeInvalidConfig},
		{"too many attempts", Options{Config: cloud.Config{PlacementAttempts: 1_000_000_000}}, errors.ErrCodeInvalidConfig},
		{"huge grid", Options{Config: cloud.Config{GridSize: 1e9}}, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForLayout()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (err %v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("canvas = %vx%v", opts.Width, opts.Height)
	}
	if opts.Measurer != MeasureEstimate {
		t.Errorf("Measurer = %q", opts.Measurer)
	}
	if diff := cmp.Diff(cloud.DefaultConfig(), opts.Config); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Style != DefaultStyle {
		t.Errorf("Style should be %s, got %s", DefaultStyle, opts.Style)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %v, got %v", DefaultScale, opts.Scale)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Texts: []string{speech}}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	first := opts.String()
	cfg := opts.Config

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.String() != first {
		t.Errorf("options changed on second call: %s vs %s", first, opts.String())
	}
	if diff := cmp.Diff(cfg, opts.Config); diff != "" {
		t.Errorf("Config changed on second call:\n%s", diff)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Style: "storm", Animate: true, Scale: 3}

	svg := opts.ArtifactKeyOpts(FormatSVG)
	if !svg.Animate || svg.Motion == nil || svg.Scale != 0 {
		t.Errorf("svg key opts = %+v", svg)
	}
	png := opts.ArtifactKeyOpts(FormatPNG)
	if png.Animate || png.Scale != 3 {
		t.Errorf("png key opts = %+v", png)
	}
}

func TestCount(t *testing.T) {
	words, stats, err := Count(Options{Texts: []string{speech}, TopN: 3})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if len(words) != 3 {
		t.Fatalf("words = %v", words)
	}
	if words[0].Text != "rain" || words[0].Weight != 4 {
		t.Errorf("top word = %+v, want rain x4", words[0])
	}
	if stats.Tokens == 0 || stats.Unique == 0 {
		t.Errorf("stats = %+v", stats)
	}

	given := []wordcloud.Word{{Text: "go", Weight: 2}}
	words, _, err = Count(Options{Words: given, Texts: []string{speech}})
	if err != nil || len(words) != 1 || words[0].Text != "go" {
		t.Errorf("explicit words not used: %v %v", words, err)
	}

	if _, _, err := Count(Options{Texts: []string{"the and of"}}); !errors.Is(err, errors.ErrCodeInvalidWords) {
		t.Errorf("stopwords only: got %v", err)
	}
}

func TestGenerateLayout(t *testing.T) {
	words := []cloud.Word{{Text: "cats", Weight: 10}, {Text: "dogs", Weight: 2}}

	l, err := GenerateLayout(words, Options{Width: 400, Height: 400})
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	if len(l.Words) != 2 || l.Words[0].Text != "cats" {
		t.Errorf("layout words = %+v", l.Words)
	}

	fontLayout, err := GenerateLayout(words, Options{Width: 400, Height: 400, Measurer: MeasureFont})
	if err != nil {
		t.Fatalf("GenerateLayout with font metrics: %v", err)
	}
	if fontLayout.Words[0].Width == l.Words[0].Width {
		t.Error("font metrics should size words differently from the estimate")
	}

	if _, err := GenerateLayout([]cloud.Word{{Text: " ", Weight: 1}}, Options{}); !errors.Is(err, errors.ErrCodeInvalidWords) {
		t.Errorf("blank word: got %v", err)
	}
}

func TestRender(t *testing.T) {
	l := cloud.Build([]cloud.Word{{Text: "cats", Weight: 10}, {Text: "dogs", Weight: 2}}, 400, 300)

	artifacts, err := Render(context.Background(), l, Options{
		Formats: []string{FormatSVG, FormatPNG, FormatJSON},
		Style:   "storm",
		Title:   "Pets",
		Scale:   1,
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(artifacts) != 3 {
		t.Fatalf("artifacts = %d, want 3", len(artifacts))
	}
	if !bytes.HasPrefix(artifacts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact is not svg")
	}
	if !bytes.HasPrefix(artifacts[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact is not png")
	}
	parsed, err := wordcloud.UnmarshalLayout(artifacts[FormatJSON])
	if err != nil || parsed.Style != "storm" || parsed.Title != "Pets" {
		t.Errorf("json artifact = %+v, %v", parsed, err)
	}

	if _, err := Render(context.Background(), l, Options{Formats: []string{"gif"}}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRenderFromLayoutData(t *testing.T) {
	l := cloud.Build([]cloud.Word{{Text: "hello", Weight: 1}}, 300, 200)
	doc := wordcloud.FromCloud(l)
	doc.Style = "storm"
	data, _ := wordcloud.MarshalLayout(doc)

	artifacts, err := RenderFromLayoutData(context.Background(), data, Options{})
	if err != nil {
		t.Fatalf("RenderFromLayoutData: %v", err)
	}
	if !strings.Contains(string(artifacts[FormatSVG]), "storm-glow") {
		t.Error("style recorded in the layout was not applied")
	}

	if _, err := RenderFromLayoutData(context.Background(), []byte(`{"words":[]}`), Options{}); err == nil {
		t.Error("layout without canvas should fail")
	}
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := Options{Texts: []string{speech}, Width: 500, Height: 300, Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if first.Stats.WordCount == 0 || first.Stats.Placed+first.Stats.Fallbacks != first.Stats.WordCount {
		t.Errorf("stats = %+v", first.Stats)
	}
	if first.WordsHash == "" {
		t.Error("missing words hash")
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit the cache: %+v", second.CacheInfo)
	}
	if diff := cmp.Diff(first.Layout, second.Layout); diff != "" {
		t.Errorf("cached layout differs (-first +second):\n%s", diff)
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}

	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if third.CacheInfo.LayoutHit || third.CacheInfo.RenderHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerPartialRenderHit(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)
	l := cloud.Build([]cloud.Word{{Text: "go", Weight: 1}}, 200, 200)

	if _, hit, err := r.RenderWithCacheInfo(ctx, l, Options{Formats: []string{FormatSVG}}); err != nil || hit {
		t.Fatalf("first render: hit=%v err=%v", hit, err)
	}
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, l, Options{Formats: []string{FormatSVG, FormatJSON}})
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if hit {
		t.Error("json was not cached, hit should be false")
	}
	if len(artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(artifacts))
	}
}

func TestRunnerExecuteInvalid(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Texts: []string{"x"}, Formats: []string{"gif"}})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("got %v, want invalid format", err)
	}
}
