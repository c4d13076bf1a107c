package cloud

// Word is one weighted entry of an input batch.
// Texts need not be unique; duplicates are placed as separate words.
type Word struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// Placed is a word after layout. X and Y are the glyph-box center in canvas
// pixels; Width and Height are the unpadded, unrotated glyph extents.
type Placed struct {
	Text     string  `json:"text"`
	Weight   float64 `json:"weight"`
	Index    int     `json:"index"` // position in the input batch
	Rank     int     `json:"rank"`  // placement order, 0 is heaviest
	FontSize float64 `json:"font_size"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"` // degrees
	Color    string  `json:"color"`
	Fallback bool    `json:"fallback,omitempty"`
}

// Layout is the result of [Build]. Words are in placement order.
type Layout struct {
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Words     []Placed `json:"words"`
	Config    Config   `json:"config"`
	Fallbacks int      `json:"fallbacks"`
}

// Seed returns the generator seed the layout was built with.
func (l Layout) Seed() uint64 { return l.Config.Seed }

// PlacedCount returns the number of words placed without fallback.
func (l Layout) PlacedCount() int { return len(l.Words) - l.Fallbacks }

// Bounds returns the padded, inflated box of p as used for collision tests.
func (l Layout) Bounds(p Placed) Box {
	return l.Config.box(p.X, p.Y, p.Width, p.Height, p.Rotation)
}
