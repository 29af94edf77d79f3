// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package capability derives a render-quality profile from device and
// accessibility signals, and decides whether a GPU scene may be rendered.
package capability

//go:generate core generate

import (
	"fmt"

	"cogentcore.org/scrolly/frame"
)

// Thresholds are the tunable limits used to classify devices.
type Thresholds struct {

	// MobileWidth is the viewport width below which a device is mobile.
	MobileWidth float32 `default:"768"`

	// TabletWidth is the viewport width below which a device is a tablet.
	TabletWidth float32 `default:"1024"`

	// LowBattery is the battery level below which a discharging device
	// is considered low on power.
	LowBattery float32 `default:"0.2"`

	// LowMemoryGB is the device memory below which a device is low-end.
	LowMemoryGB float32 `default:"4"`

	// LowCores is the processor count below which a device is low-end.
	LowCores int `default:"4"`

	// MaxPixelRatio caps the pixel ratio on wide viewports.
	MaxPixelRatio float32 `default:"2"`

	// NarrowPixelRatio caps the pixel ratio on mobile viewports.
	NarrowPixelRatio float32 `default:"1.5"`
}

// DefaultThresholds returns the default thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MobileWidth:      768,
		TabletWidth:      1024,
		LowBattery:       0.2,
		LowMemoryGB:      4,
		LowCores:         4,
		MaxPixelRatio:    2,
		NarrowPixelRatio: 1.5,
	}
}

// Classes are coarse device classes by viewport width.
type Classes int32 //enums:enum -transform lower

const (
	// Desktop is a viewport at least [Thresholds.TabletWidth] wide.
	Desktop Classes = iota

	// Tablet is a viewport narrower than [Thresholds.TabletWidth].
	Tablet

	// Mobile is a viewport narrower than [Thresholds.MobileWidth].
	Mobile
)

// Profile is the render-quality profile derived from [Signals].
type Profile struct {

	// PixelRatioCap is the maximum pixel ratio a renderer may use.
	PixelRatioCap float32

	// FrameLoop is how often renderers run their frame loop.
	FrameLoop frame.Modes

	// ParticleScale scales particle counts and similar detail, in [0, 1].
	ParticleScale float32

	// ForceStatic is a hard gate: when true, no GPU renderer may be
	// constructed and a static placeholder is shown instead. It is true
	// whenever the user has requested reduced motion.
	ForceStatic bool

	// Class is the device class the profile was derived for.
	Class Classes

	// Eco is whether the device is low on power or low-end.
	Eco bool
}

func (p Profile) String() string {
	return fmt.Sprintf("%s dpr<=%g loop=%s particles=%g static=%v eco=%v",
		p.Class, p.PixelRatioCap, p.FrameLoop, p.ParticleScale, p.ForceStatic, p.Eco)
}

// Classify returns the device class for the given viewport width.
func (th Thresholds) Classify(width float32) Classes {
	switch {
	case width < th.MobileWidth:
		return Mobile
	case width < th.TabletWidth:
		return Tablet
	}
	return Desktop
}

// LowPower returns whether the signals describe a device saving power:
// an explicit low-power hint, or a known battery that is low and not
// charging.
func (th Thresholds) LowPower(s Signals) bool {
	if s.Power == PowerLow {
		return true
	}
	return s.Battery.Known && s.Battery.Level < th.LowBattery && !s.Battery.Charging
}

// LowEnd returns whether the signals describe a low-end device: little
// memory, few cores, or a very dense small screen.
func (th Thresholds) LowEnd(s Signals) bool {
	switch {
	case s.MemoryGB > 0 && s.MemoryGB < th.LowMemoryGB:
		return true
	case s.Cores > 0 && s.Cores < th.LowCores:
		return true
	case s.PixelRatio > 2 && s.Width < 400:
		return true
	}
	return false
}

// Compute derives the profile for the given signals. The reduced motion
// setting is applied last, so it overrides every performance heuristic.
func Compute(s Signals, th Thresholds) Profile {
	dpr := s.PixelRatio
	if dpr < 1 {
		dpr = 1
	}
	p := Profile{Class: th.Classify(s.Width)}
	p.Eco = th.LowPower(s) || th.LowEnd(s)

	switch {
	case p.Eco:
		p.PixelRatioCap = 1
	case p.Class == Mobile:
		p.PixelRatioCap = min(dpr, th.NarrowPixelRatio)
	default:
		p.PixelRatioCap = min(dpr, th.MaxPixelRatio)
	}

	switch {
	case s.Background:
		p.FrameLoop = frame.Disabled
	case p.Eco && s.Power != PowerHigh:
		p.FrameLoop = frame.OnDemand
	default:
		p.FrameLoop = frame.Continuous
	}

	switch {
	case p.Eco:
		p.ParticleScale = 0.25
	case p.Class == Mobile:
		p.ParticleScale = 0.5
	case p.Class == Tablet:
		p.ParticleScale = 0.75
	default:
		p.ParticleScale = 1
	}

	if s.ReducedMotion {
		p.ForceStatic = true
		p.FrameLoop = frame.Disabled
		p.ParticleScale = 0
	}
	return p
}
