// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capability

// ChangeFunc is called with the previous and the new profile after the
// profile of a [Profiler] changes.
type ChangeFunc func(prev, cur Profile)

// Profiler keeps the current [Profile] up to date as the host reports
// signal changes. It does nothing between events. It is driven from the
// host's event goroutine and is not safe for concurrent use.
type Profiler struct {

	// Thresholds are the device classification limits.
	Thresholds Thresholds

	signals  Signals
	profile  Profile
	onChange []ChangeFunc
}

// NewProfiler returns a new profiler with the profile computed for the
// given initial signals and the default thresholds.
func NewProfiler(s Signals) *Profiler {
	return NewProfilerThresholds(s, DefaultThresholds())
}

// NewProfilerThresholds returns a new profiler with the given thresholds.
func NewProfilerThresholds(s Signals, th Thresholds) *Profiler {
	p := &Profiler{Thresholds: th, signals: s}
	p.profile = Compute(s, th)
	return p
}

// Signals returns the current signals.
func (p *Profiler) Signals() Signals { return p.signals }

// Profile returns the current profile.
func (p *Profiler) Profile() Profile { return p.profile }

// ForceStatic returns whether renderers must be replaced by placeholders.
func (p *Profiler) ForceStatic() bool { return p.profile.ForceStatic }

// OnChange adds a function called after every change of the profile.
func (p *Profiler) OnChange(f ChangeFunc) {
	p.onChange = append(p.onChange, f)
}

// Update replaces all signals and recomputes the profile, calling the
// change functions if it changed. It reports whether the profile changed.
func (p *Profiler) Update(s Signals) bool {
	p.signals = s
	prev := p.profile
	p.profile = Compute(s, p.Thresholds)
	if p.profile == prev {
		return false
	}
	for _, f := range p.onChange {
		f(prev, p.profile)
	}
	return true
}

// Resize records a viewport resize.
func (p *Profiler) Resize(width, height, pixelRatio float32) bool {
	s := p.signals
	s.Width, s.Height = width, height
	if pixelRatio > 0 {
		s.PixelRatio = pixelRatio
	}
	return p.Update(s)
}

// SetReducedMotion records a change of the reduced motion preference.
func (p *Profiler) SetReducedMotion(on bool) bool {
	s := p.signals
	s.ReducedMotion = on
	return p.Update(s)
}

// SetBackground records the page becoming hidden or visible.
func (p *Profiler) SetBackground(hidden bool) bool {
	s := p.signals
	s.Background = hidden
	return p.Update(s)
}

// SetBattery records a battery status change.
func (p *Profiler) SetBattery(b Battery) bool {
	s := p.signals
	s.Battery = b
	return p.Update(s)
}

// SetPower records a power hint change.
func (p *Profiler) SetPower(h PowerHints) bool {
	s := p.signals
	s.Power = h
	return p.Update(s)
}
