// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

// Responsive adjusts camera targets to the viewport: on narrow viewports
// the camera is pushed back along its view direction and the field of view
// is widened, so that the subject stays framed.
type Responsive struct {

	// Width is the current viewport width in CSS pixels.
	Width float32

	// FullWidth is the width at and above which no adjustment is made.
	FullWidth float32

	// MaxPush is the extra distance factor at zero width; the distance to
	// the look-at point is scaled by up to 1+MaxPush.
	MaxPush float32

	// NarrowWidth is the width below which the field of view is widened
	// to at least NarrowFOV.
	NarrowWidth float32

	// NarrowFOV is the minimum field of view on narrow viewports.
	NarrowFOV float32
}

// NewResponsive returns the default adjustment for the given viewport width.
func NewResponsive(width float32) *Responsive {
	return &Responsive{Width: width, FullWidth: 1280, MaxPush: 0.5, NarrowWidth: 640, NarrowFOV: 55}
}

// Scale returns the distance factor for the current width, in [1, 1+MaxPush].
func (r *Responsive) Scale() float32 {
	if r.FullWidth <= 0 || r.Width >= r.FullWidth {
		return 1
	}
	f := max(r.Width, 0) / r.FullWidth
	return 1 + r.MaxPush*(1-f)
}

// Adjust returns the given target adjusted to the current width.
func (r *Responsive) Adjust(t Transform) Transform {
	if s := r.Scale(); s != 1 {
		t.Position = t.LookAt.Add(t.Position.Sub(t.LookAt).MulScalar(s))
	}
	if r.Width < r.NarrowWidth && t.FOV < r.NarrowFOV {
		t.FOV = r.NarrowFOV
	}
	return t
}
