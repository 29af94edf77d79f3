// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lazy

import "cogentcore.org/scrolly/scroll"

const (
	// DefaultMargin is the default distance in CSS pixels by which the
	// viewport is expanded when checking visibility, so that loading
	// starts shortly before the container scrolls in.
	DefaultMargin = 100

	// DefaultThreshold is the default fraction of the container that must
	// be inside the expanded viewport.
	DefaultThreshold = 0.1
)

// Observer reports, once, that a container has come within the viewport
// expanded by Margin with at least Threshold of it visible. After firing
// it detaches and ignores all further observations.
type Observer struct {

	// Margin expands the viewport on both ends, in CSS pixels.
	Margin float32

	// Threshold is the minimum visible fraction of the container.
	Threshold float32

	onEnter  func()
	detached bool
}

// NewObserver returns a new observer with the default margin and
// threshold that calls onEnter when it fires.
func NewObserver(onEnter func()) *Observer {
	return &Observer{Margin: DefaultMargin, Threshold: DefaultThreshold, onEnter: onEnter}
}

// Intersects returns whether the given container intersects the expanded
// viewport enough to fire, regardless of whether the observer is detached.
func (o *Observer) Intersects(it scroll.Item, scrollY, viewport float32) bool {
	r := it.VisibleRatio(scrollY-o.Margin, viewport+2*o.Margin)
	if r <= 0 {
		return false
	}
	return r >= o.Threshold
}

// Observe checks the container at the given scroll offset and fires the
// observer if it intersects. It reports whether it fired.
func (o *Observer) Observe(it scroll.Item, scrollY, viewport float32) bool {
	if o.detached || !o.Intersects(it, scrollY, viewport) {
		return false
	}
	o.detached = true
	if o.onEnter != nil {
		o.onEnter()
	}
	return true
}

// Detach stops the observer without firing.
func (o *Observer) Detach() { o.detached = true }

// Detached returns whether the observer has fired or been detached.
func (o *Observer) Detached() bool { return o.detached }
