package motion

import (
	"time"

	"github.com/matzehuels/wordstorm/pkg/core/cloud"
)

// Animator owns the tracks of one mounted rendering surface. It is not safe
// for concurrent use; each surface creates its own.
type Animator struct {
	tracks  []Track
	start   time.Time
	mounted bool
}

// NewAnimator plans tracks for l. The animator is idle until [Animator.Mount].
func NewAnimator(l cloud.Layout, p Params) *Animator {
	return &Animator{tracks: Plan(l, p)}
}

// Mount starts the clock. Mounting an already mounted animator restarts the
// entrance.
func (a *Animator) Mount(now time.Time) {
	a.start = now
	a.mounted = true
}

// Unmount stops the animator and releases its tracks.
func (a *Animator) Unmount() {
	a.mounted = false
	a.tracks = nil
}

// Mounted reports whether the animator is running.
func (a *Animator) Mounted() bool { return a.mounted }

// Tracks returns the planned tracks.
func (a *Animator) Tracks() []Track { return a.tracks }

// Frame returns one pose per word at now, in placement order. An unmounted
// animator has no frame.
func (a *Animator) Frame(now time.Time) []Pose {
	if !a.mounted {
		return nil
	}
	elapsed := now.Sub(a.start)
	poses := make([]Pose, len(a.tracks))
	for i, t := range a.tracks {
		poses[i] = t.At(elapsed)
	}
	return poses
}

// Entered reports whether every entrance has finished at now.
func (a *Animator) Entered(now time.Time) bool {
	if !a.mounted {
		return false
	}
	return now.Sub(a.start) >= a.EntranceDuration()
}

// EntranceDuration is the time from mount until the last word is fully in.
func (a *Animator) EntranceDuration() time.Duration {
	var d time.Duration
	for _, t := range a.tracks {
		d = max(d, t.Delay+t.Duration)
	}
	return d
}
