// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"time"

	"cogentcore.org/scrolly/preset"
)

// Source is the current-preset source read by a [Loop] on every frame.
// [viewpoint.Store] implements it.
type Source interface {
	Get() string
}

// Resolver resolves preset ids to presets, falling back to a default for
// unknown ids. [preset.Domain] implements it.
type Resolver interface {
	Resolve(presetID string) preset.Preset
}

// Loop is the camera interpolation loop of one renderer. On every frame it
// reads whatever preset the source names now, and moves the live camera a
// bounded fraction of the remaining distance toward it. Rapid successive
// preset changes simply retarget the approach; there is nothing to cancel.
type Loop struct {

	// Damping configures the approach.
	Damping Damping

	// Responsive optionally adjusts every target to the viewport.
	Responsive *Responsive

	source   Source
	resolver Resolver

	camera   Transform
	target   Transform
	targetID string
	settled  bool
}

// NewLoop returns a new loop reading the given source and resolver, with
// the camera starting exactly at the current preset.
func NewLoop(src Source, res Resolver) *Loop {
	l := &Loop{Damping: DefaultDamping(), source: src, resolver: res}
	l.targetID = src.Get()
	l.target = FromPreset(res.Resolve(l.targetID), DefaultFOV)
	l.camera = l.target
	l.settled = true
	return l
}

// Camera returns the live camera transform.
func (l *Loop) Camera() Transform { return l.camera }

// SetCamera sets the live camera transform, as when a renderer is
// resized or the user drags the view.
func (l *Loop) SetCamera(t Transform) {
	l.camera = t
	l.settled = false
}

// Target returns the target of the most recent frame.
func (l *Loop) Target() Transform { return l.target }

// TargetID returns the preset id targeted in the most recent frame.
func (l *Loop) TargetID() string { return l.targetID }

// Settled returns whether the camera was at its target after the most
// recent frame.
func (l *Loop) Settled() bool { return l.settled }

// Frame runs one frame of the given duration and reports whether the
// camera is at its target.
func (l *Loop) Frame(delta time.Duration) bool {
	l.targetID = l.source.Get()
	l.target = FromPreset(l.resolver.Resolve(l.targetID), l.camera.FOV)
	if l.Responsive != nil {
		l.target = l.Responsive.Adjust(l.target)
	}
	l.camera, l.settled = l.Damping.Step(l.camera, l.target, delta)
	return l.settled
}
