// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import "cogentcore.org/core/math32"

// Geometry is the vertical layout of a scroll container relative to the
// document, in CSS pixels.
type Geometry struct {

	// Top is the document offset of the top of the container.
	Top float32

	// Height is the full height of the container.
	Height float32

	// Viewport is the height of the viewport.
	Viewport float32
}

// Travel returns the scroll distance over which the container's progress
// goes from 0 to 1: from the container top reaching the viewport top to
// the container bottom reaching the viewport bottom.
func (g Geometry) Travel() float32 {
	return g.Height - g.Viewport
}

// Progress returns the progress ratio in [0, 1] of the container for the
// given document scroll offset. A container that is not taller than the
// viewport has no travel and reports 0 until it is scrolled past its top.
func (g Geometry) Progress(scrollY float32) float32 {
	tr := g.Travel()
	if tr <= 0 {
		if scrollY > g.Top {
			return 1
		}
		return 0
	}
	return Clamp01((scrollY - g.Top) / tr)
}

// Item is the vertical extent of one stacked item, in the same coordinates
// as [Geometry].
type Item struct {
	Top    float32
	Height float32
}

// VisibleRatio returns the fraction of the item that is inside the
// viewport [scrollY, scrollY+viewport).
func (it Item) VisibleRatio(scrollY, viewport float32) float32 {
	if it.Height <= 0 {
		return 0
	}
	lo := math32.Max(it.Top, scrollY)
	hi := math32.Min(it.Top+it.Height, scrollY+viewport)
	if hi <= lo {
		return 0
	}
	return Clamp01((hi - lo) / it.Height)
}

// Clamp01 clamps the given value to [0, 1]; NaN becomes 0.
func Clamp01(v float32) float32 {
	if math32.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Index returns the active index for the given progress ratio and number
// of scenes: floor(progress*n) clamped to [0, n-1]. It returns 0 for n < 1.
func Index(progress float32, n int) int {
	if n < 1 {
		return 0
	}
	idx := int(math32.Floor(Clamp01(progress) * float32(n)))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
