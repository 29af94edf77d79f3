// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the live camera transform of a renderer and the
// per-frame loop that moves it smoothly toward the preset currently named
// by a viewpoint store.
package camera

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/scrolly/preset"
)

// DefaultFOV is the field of view used when neither the camera nor the
// preset defines one.
const DefaultFOV = 45

// Transform is a camera transform: where the camera is, what it looks at,
// and its vertical field of view in degrees.
type Transform struct {
	Position math32.Vector3
	LookAt   math32.Vector3
	FOV      float32
}

// FromPreset returns the transform of the given preset. A preset without
// a field of view takes the given fov.
func FromPreset(p preset.Preset, fov float32) Transform {
	if p.FOV > 0 {
		fov = p.FOV
	}
	return Transform{Position: p.Position, LookAt: p.LookAt, FOV: fov}
}

// Distance returns the distance between two transforms: the sum of the
// position distance, the look-at distance and the field of view difference
// in degrees. It is zero only for equal transforms.
func (t Transform) Distance(o Transform) float32 {
	return t.Position.Sub(o.Position).Length() + t.LookAt.Sub(o.LookAt).Length() + math32.Abs(t.FOV-o.FOV)
}

// Lerp returns the transform the given fraction of the way from t to o.
func (t Transform) Lerp(o Transform, alpha float32) Transform {
	return Transform{
		Position: t.Position.Add(o.Position.Sub(t.Position).MulScalar(alpha)),
		LookAt:   t.LookAt.Add(o.LookAt.Sub(t.LookAt).MulScalar(alpha)),
		FOV:      t.FOV + (o.FOV-t.FOV)*alpha,
	}
}

// ViewDir returns the normalized direction from the position to the
// look-at point; a degenerate transform looks down the negative Z axis.
func (t Transform) ViewDir() math32.Vector3 {
	d := t.LookAt.Sub(t.Position)
	l := d.Length()
	if l == 0 {
		return math32.Vec3(0, 0, -1)
	}
	return d.MulScalar(1 / l)
}

// Damping configures the exponential approach of a camera to its target.
// Each frame moves the camera the fraction 1 - exp(-delta/TimeConstant)
// of the remaining distance, which never overshoots, and snaps it onto the
// target once within Epsilon.
type Damping struct {

	// TimeConstant is the time after which the remaining distance has
	// shrunk to 1/e of its value.
	TimeConstant time.Duration

	// Factor is the fraction used for frames without timing information
	// (a zero delta), in (0, 1].
	Factor float32

	// Epsilon is the [Transform.Distance] below which the camera snaps
	// onto its target.
	Epsilon float32
}

// DefaultDamping returns the damping used by renderers by default: a
// quarter-second time constant, which settles in about a second and a half.
func DefaultDamping() Damping {
	return Damping{TimeConstant: 250 * time.Millisecond, Factor: 0.025, Epsilon: 1e-3}
}

// Alpha returns the fraction of the remaining distance to cover in a frame
// of the given duration, in (0, 1].
func (d Damping) Alpha(delta time.Duration) float32 {
	if delta <= 0 || d.TimeConstant <= 0 {
		if d.Factor <= 0 || d.Factor > 1 {
			return 1
		}
		return d.Factor
	}
	a := 1 - math32.Exp(-float32(delta)/float32(d.TimeConstant))
	if a <= 0 {
		// delta is tiny relative to the time constant
		return math32.SmallestNonzeroFloat32
	}
	return min(a, 1)
}

// Step returns the camera moved one frame of the given duration toward the
// target, and whether it has reached the target. At the target it returns
// the target exactly, so a settled camera does not drift.
func (d Damping) Step(cur, target Transform, delta time.Duration) (Transform, bool) {
	if cur.Distance(target) <= d.Epsilon {
		return target, true
	}
	next := cur.Lerp(target, d.Alpha(delta))
	if next.Distance(target) <= d.Epsilon {
		return target, true
	}
	return next, false
}
