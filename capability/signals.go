// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capability

// PowerHints are coarse power/performance hints from the host.
type PowerHints int32 //enums:enum -trim-prefix Power -transform kebab

const (
	// PowerDefault means the host expressed no preference.
	PowerDefault PowerHints = iota

	// PowerLow means the host prefers saving energy.
	PowerLow

	// PowerHigh means the host prefers performance.
	PowerHigh
)

// Battery is the battery status reported by the host.
type Battery struct {

	// Known is whether the host reports a battery status at all.
	Known bool

	// Level is the charge level in [0, 1].
	Level float32

	// Charging is whether the battery is charging.
	Charging bool
}

// Signals are the read-only device and preference inputs from the
// hosting environment.
type Signals struct {

	// Width and Height are the viewport size in CSS pixels.
	Width, Height float32

	// PixelRatio is the device pixel ratio; zero means 1.
	PixelRatio float32

	// ReducedMotion is the explicit "prefers reduced motion"
	// accessibility setting. It takes precedence over every heuristic.
	ReducedMotion bool

	// Power is the optional power/performance hint.
	Power PowerHints

	// Touch is whether the primary pointer is coarse (touch).
	Touch bool

	// Battery is the battery status.
	Battery Battery

	// Background is whether the page is hidden (a background tab).
	Background bool

	// MemoryGB is the approximate device memory; zero means unknown.
	MemoryGB float32

	// Cores is the number of logical processors; zero means unknown.
	Cores int
}

// DefaultSignals returns the signals assumed before the host has reported
// anything: a full HD desktop viewport with no constraints.
func DefaultSignals() Signals {
	return Signals{Width: 1920, Height: 1080, PixelRatio: 1}
}
