// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

//go:generate core generate

// Modes are the frame-loop modes of a [Driver].
type Modes int32 //enums:enum -transform kebab

const (
	// Continuous runs every animation on every display refresh.
	Continuous Modes = iota

	// OnDemand runs animations only after [Driver.Invalidate] has been
	// called, or while some animation has not settled yet.
	OnDemand

	// Disabled never runs any animation.
	Disabled
)
