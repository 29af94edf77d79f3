// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

//go:generate core generate

// Regimes are the layout regimes a [Mapper] can operate in.
type Regimes int32 //enums:enum -transform lower

const (
	// Sticky is the continuous viewing regime, where the visual stays
	// pinned while the container scrolls past, and the active scene is
	// derived from one global scroll fraction of the container.
	Sticky Regimes = iota

	// Stacked is the linear viewing regime used below the responsive
	// breakpoint, where scenes are laid out one after another and each
	// one becomes active when it enters the viewing region.
	Stacked
)

// DefaultBreakpoint is the viewport width, in CSS pixels, at and above
// which the [Sticky] regime is used.
const DefaultBreakpoint = 1024

// RegimeFor returns the regime for the given viewport width and breakpoint.
func RegimeFor(width, breakpoint float32) Regimes {
	if width >= breakpoint {
		return Sticky
	}
	return Stacked
}
