package wordcloud

import (
	"slices"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
)

// Version is the current layout format version.
const Version = 1

// Visual styles for rendering.
const (
	StylePlain = "plain"
	StyleStorm = "storm"
)

// =============================================================================
// Words - Input Format
// =============================================================================

// Words is the serialization format for a weighted word list.
type Words struct {
	Words  []Word `json:"words" bson:"words"`
	Source string `json:"source,omitempty" bson:"source,omitempty"` // where the words were counted from
	Stats  *Stats `json:"stats,omitempty" bson:"stats,omitempty"`
}

// Word is one weighted word.
type Word struct {
	Text   string  `json:"text" bson:"text"`
	Weight float64 `json:"weight" bson:"weight"`
}

// Stats records how a word list was counted.
type Stats struct {
	Tokens int `json:"tokens" bson:"tokens"`
	Kept   int `json:"kept" bson:"kept"`
	Unique int `json:"unique" bson:"unique"`
}

// NewWords wraps cloud words for serialization.
func NewWords(words []cloud.Word) Words {
	out := Words{Words: make([]Word, len(words))}
	for i, w := range words {
		out.Words[i] = Word{Text: w.Text, Weight: w.Weight}
	}
	return out
}

// ToCloud converts the list for layout.
func (w Words) ToCloud() []cloud.Word {
	out := make([]cloud.Word, len(w.Words))
	for i, x := range w.Words {
		out[i] = cloud.Word{Text: x.Text, Weight: x.Weight}
	}
	return out
}

// =============================================================================
// Layout - Placed Cloud Format
// =============================================================================

// Layout is the serialization format for a placed cloud.
type Layout struct {
	Version   int          `json:"version" bson:"version"`
	Width     float64      `json:"width" bson:"width"`
	Height    float64      `json:"height" bson:"height"`
	Style     string       `json:"style,omitempty" bson:"style,omitempty"`
	Title     string       `json:"title,omitempty" bson:"title,omitempty"`
	Seed      uint64       `json:"seed" bson:"seed"`
	Fallbacks int          `json:"fallbacks" bson:"fallbacks"`
	Config    cloud.Config `json:"config" bson:"config"`
	Words     []Placed     `json:"words" bson:"words"`
}

// Placed is one positioned word.
type Placed struct {
	Text     string  `json:"text" bson:"text"`
	Weight   float64 `json:"weight" bson:"weight"`
	Index    int     `json:"index" bson:"index"`
	Rank     int     `json:"rank" bson:"rank"`
	FontSize float64 `json:"font_size" bson:"font_size"`
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Rotation float64 `json:"rotation,omitempty" bson:"rotation,omitempty"`
	Color    string  `json:"color" bson:"color"`
	Fallback bool    `json:"fallback,omitempty" bson:"fallback,omitempty"`
}

// FromCloud converts a computed layout for serialization.
func FromCloud(l cloud.Layout) Layout {
	cfg := l.Config
	cfg.Palette = slices.Clone(cfg.Palette)
	out := Layout{
		Version:   Version,
		Width:     l.Width,
		Height:    l.Height,
		Seed:      l.Seed(),
		Fallbacks: l.Fallbacks,
		Config:    cfg,
		Words:     make([]Placed, len(l.Words)),
	}
	for i, p := range l.Words {
		out.Words[i] = Placed(p)
	}
	return out
}

// ToCloud converts a serialized layout back for rendering. A seed recorded
// outside the config wins over a missing one inside it.
func (l Layout) ToCloud() cloud.Layout {
	cfg := l.Config
	cfg.Palette = slices.Clone(cfg.Palette)
	if cfg.Seed == 0 {
		cfg.Seed = l.Seed
	}
	out := cloud.Layout{
		Width:     l.Width,
		Height:    l.Height,
		Config:    cfg,
		Fallbacks: l.Fallbacks,
		Words:     make([]cloud.Placed, len(l.Words)),
	}
	for i, p := range l.Words {
		out.Words[i] = cloud.Placed(p)
	}
	return out
}
