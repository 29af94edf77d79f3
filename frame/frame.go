// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides the per-frame scheduling contract used by
// renderers: an [Animation] is called once per display refresh while its
// owner is mounted and the [Driver] mode is not [Disabled]. It does not
// depend on any particular host animation-frame API; hosts call
// [Driver.Tick] from their own refresh callback, or use [RunTicker].
package frame

import (
	"slices"
	"time"
)

// Animation represents one per-frame activity, such as a camera
// interpolation loop. You can call [Driver.Animate] to create one.
type Animation struct {

	// Func is the animation function, which is run every time the [Driver]
	// ticks. It receives the [Animation] object so that it can reference
	// things such as [Animation.Delta] and set things such as
	// [Animation.Done] and [Animation.Settled].
	Func func(a *Animation)

	// Delta is the amount of time that has passed since the
	// last frame.
	Delta time.Duration

	// Done can be set to true to permanently stop the animation; it is
	// removed from the [Driver] at the end of the frame.
	Done bool

	// Settled can be set to report that the animation has nothing left to
	// do until something changes. An [OnDemand] driver stops ticking once
	// every animation has settled, until it is invalidated.
	Settled bool
}

// Driver runs a set of animations once per tick according to its [Modes].
// It is driven from the host's frame goroutine and is not safe for
// concurrent use.
type Driver struct {
	mode  Modes
	anims []*Animation

	// dirty is set by Invalidate and cleared by a tick that runs.
	dirty bool

	// frames is the number of ticks that ran animations.
	frames uint64
}

// NewDriver returns a new driver in the given mode.
func NewDriver(mode Modes) *Driver {
	return &Driver{mode: mode, dirty: true}
}

// Mode returns the frame-loop mode.
func (d *Driver) Mode() Modes { return d.mode }

// SetMode sets the frame-loop mode. Leaving [Disabled] invalidates the
// driver so that the next tick renders.
func (d *Driver) SetMode(m Modes) {
	if d.mode == Disabled && m != Disabled {
		d.dirty = true
	}
	d.mode = m
}

// Animate adds a new [Animation] running the given function, and returns it.
func (d *Driver) Animate(f func(a *Animation)) *Animation {
	a := &Animation{Func: f}
	d.anims = append(d.anims, a)
	d.dirty = true
	return a
}

// Remove removes the given animation.
func (d *Driver) Remove(a *Animation) {
	d.anims = slices.DeleteFunc(d.anims, func(o *Animation) bool { return o == a })
}

// Len returns the number of animations.
func (d *Driver) Len() int { return len(d.anims) }

// Frames returns the number of ticks that ran animations.
func (d *Driver) Frames() uint64 { return d.frames }

// Invalidate requests that the next tick runs, in [OnDemand] mode.
func (d *Driver) Invalidate() { d.dirty = true }

// NeedsFrame returns whether the next tick would run the animations.
func (d *Driver) NeedsFrame() bool {
	switch d.mode {
	case Disabled:
		return false
	case OnDemand:
		if d.dirty {
			return true
		}
		for _, a := range d.anims {
			if !a.Settled {
				return true
			}
		}
		return false
	}
	return len(d.anims) > 0
}

// Tick runs one frame with the given elapsed time, and reports whether any
// animation ran. Animations marked Done are removed afterwards.
func (d *Driver) Tick(delta time.Duration) bool {
	if !d.NeedsFrame() {
		return false
	}
	d.dirty = false
	d.frames++
	// animations added during the frame run on the next one
	anims := slices.Clone(d.anims)
	for _, a := range anims {
		if a.Done {
			continue
		}
		a.Delta = delta
		a.Settled = false
		a.Func(a)
	}
	d.anims = slices.DeleteFunc(d.anims, func(a *Animation) bool { return a.Done })
	return len(anims) > 0
}
