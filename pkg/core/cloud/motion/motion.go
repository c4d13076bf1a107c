// Package motion animates a finished [cloud.Layout].
//
// Each placed word gets a [Track]: an entrance (fade in from opacity 0 and
// grow from half scale, staggered by placement rank) followed by an idle
// vertical float with a per-word amplitude, period and phase. Tracks are
// derived deterministically from the layout seed by [Plan].
//
// Motion is purely visual. Poses are offsets layered over the placed
// position; nothing here changes the layout or its collision state.
//
// [Animator] holds the tracks of one rendering surface. It is created when
// the surface mounts and discarded when it unmounts:
//
//	a := motion.NewAnimator(layout, motion.DefaultParams())
//	a.Mount(time.Now())
//	defer a.Unmount()
//	for range ticker.C {
//	    draw(a.Frame(time.Now()))
//	}
package motion

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
)

// Default animation parameters.
const (
	DefaultStagger      = 60 * time.Millisecond
	DefaultEntrance     = 600 * time.Millisecond
	DefaultMinAmplitude = 2.0
	DefaultMaxAmplitude = 6.0
	DefaultMinPeriod    = 2500 * time.Millisecond
	DefaultMaxPeriod    = 4500 * time.Millisecond

	// StartScale is the scale a word enters at.
	StartScale = 0.5
)

// Params controls entrance timing and the idle float.
type Params struct {
	Stagger      time.Duration `json:"stagger" toml:"stagger"`
	Entrance     time.Duration `json:"entrance" toml:"entrance"`
	MinAmplitude float64       `json:"min_amplitude" toml:"min_amplitude"`
	MaxAmplitude float64       `json:"max_amplitude" toml:"max_amplitude"`
	MinPeriod    time.Duration `json:"min_period" toml:"min_period"`
	MaxPeriod    time.Duration `json:"max_period" toml:"max_period"`
	// NoFloat disables the idle float; words settle after the entrance.
	NoFloat bool `json:"no_float,omitempty" toml:"no_float"`
}

// DefaultParams returns the default animation parameters.
func DefaultParams() Params {
	var p Params
	p.Normalize()
	return p
}

// Normalize fills zero fields with defaults and orders the ranges. A negative
// Stagger is kept and means all words enter together.
func (p *Params) Normalize() {
	if p.Stagger == 0 {
		p.Stagger = DefaultStagger
	}
	if p.Entrance <= 0 {
		p.Entrance = DefaultEntrance
	}
	if p.MinAmplitude <= 0 {
		p.MinAmplitude = DefaultMinAmplitude
	}
	if p.MaxAmplitude <= 0 {
		p.MaxAmplitude = DefaultMaxAmplitude
	}
	if p.MinAmplitude > p.MaxAmplitude {
		p.MinAmplitude, p.MaxAmplitude = p.MaxAmplitude, p.MinAmplitude
	}
	if p.MinPeriod <= 0 {
		p.MinPeriod = DefaultMinPeriod
	}
	if p.MaxPeriod <= 0 {
		p.MaxPeriod = DefaultMaxPeriod
	}
	if p.MinPeriod > p.MaxPeriod {
		p.MinPeriod, p.MaxPeriod = p.MaxPeriod, p.MinPeriod
	}
}

// Track is the motion of one placed word.
type Track struct {
	Word      cloud.Placed
	Delay     time.Duration // entrance start, relative to mount
	Duration  time.Duration // entrance length
	Amplitude float64       // float amplitude in pixels
	Period    time.Duration // float period
	Phase     float64       // float phase in radians
	NoFloat   bool
}

// Plan derives one track per placed word. The result is a pure function of
// the layout (including its seed) and the params.
func Plan(l cloud.Layout, p Params) []Track {
	p.Normalize()
	seed := l.Seed()
	rng := rand.New(rand.NewPCG(seed, seed^0x5eed))

	tracks := make([]Track, len(l.Words))
	for i, w := range l.Words {
		tracks[i] = Track{
			Word:      w,
			Delay:     time.Duration(w.Rank) * max(p.Stagger, 0),
			Duration:  p.Entrance,
			Amplitude: p.MinAmplitude + rng.Float64()*(p.MaxAmplitude-p.MinAmplitude),
			Period:    p.MinPeriod + time.Duration(rng.Float64()*float64(p.MaxPeriod-p.MinPeriod)),
			Phase:     rng.Float64() * 2 * math.Pi,
			NoFloat:   p.NoFloat,
		}
	}
	return tracks
}

// Pose is a word's drawable state at one instant.
type Pose struct {
	Text     string
	Color    string
	FontSize float64
	X, Y     float64
	Rotation float64
	Opacity  float64 // 0..1
	Scale    float64 // StartScale..1
}

// At returns the pose elapsed after mount.
func (t Track) At(elapsed time.Duration) Pose {
	progress := 0.0
	if since := elapsed - t.Delay; since >= t.Duration {
		progress = 1
	} else if since > 0 {
		progress = float64(since) / float64(t.Duration)
	}
	eased := EaseOutCubic(progress)

	pose := Pose{
		Text:     t.Word.Text,
		Color:    t.Word.Color,
		FontSize: t.Word.FontSize,
		X:        t.Word.X,
		Y:        t.Word.Y,
		Rotation: t.Word.Rotation,
		Opacity:  eased,
		Scale:    StartScale + (1-StartScale)*eased,
	}
	if !t.NoFloat && t.Period > 0 && elapsed > 0 {
		pose.Y += t.Offset(elapsed)
	}
	return pose
}

// Offset returns the vertical float offset elapsed after mount.
func (t Track) Offset(elapsed time.Duration) float64 {
	turns := float64(elapsed) / float64(t.Period)
	return t.Amplitude * math.Sin(2*math.Pi*turns+t.Phase)
}

// EaseOutCubic maps linear progress in [0,1] to eased progress.
func EaseOutCubic(x float64) float64 {
	x = math.Min(math.Max(x, 0), 1)
	u := 1 - x
	return 1 - u*u*u
}
