// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the page-level events sent by the host
// environment, such as scrolling, resizing, preference changes and
// frame ticks, together with listener lists and a compressing queue.
package events

import (
	"fmt"
	"time"

	"cogentcore.org/scrolly/capability"
)

// Event is the interface implemented by all page events.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types

	// Time returns the time the event was created.
	Time() time.Time

	// IsHandled returns whether a listener has handled the event,
	// which stops further processing.
	IsHandled() bool

	// SetHandled marks the event as handled.
	SetHandled()
}

// Base is the base type of all events.
type Base struct {
	Typ     Types
	GenTime time.Time
	Handled bool
}

// NewBase returns a new base event of the given type stamped with the
// current time.
func NewBase(typ Types) Base {
	return Base{Typ: typ, GenTime: time.Now()}
}

func (b *Base) Type() Types     { return b.Typ }
func (b *Base) Time() time.Time { return b.GenTime }
func (b *Base) IsHandled() bool { return b.Handled }
func (b *Base) SetHandled()     { b.Handled = true }

func (b *Base) String() string {
	return fmt.Sprintf("%v{Time: %v}", b.Typ, b.GenTime.Format("04:05.000"))
}

// ScrollEvent reports the vertical scroll offset of the page.
type ScrollEvent struct {
	Base

	// Y is the scroll offset in CSS pixels from the top of the page.
	Y float32
}

// NewScroll returns a new [ScrollEvent].
func NewScroll(y float32) *ScrollEvent {
	return &ScrollEvent{Base: NewBase(Scroll), Y: y}
}

func (ev *ScrollEvent) String() string {
	return fmt.Sprintf("%v{Y: %g}", ev.Typ, ev.Y)
}

// ResizeEvent reports a new viewport size.
type ResizeEvent struct {
	Base

	// Width and Height are the viewport size in CSS pixels.
	Width, Height float32

	// PixelRatio is the device pixel ratio; zero means unchanged.
	PixelRatio float32
}

// NewResize returns a new [ResizeEvent].
func NewResize(width, height, pixelRatio float32) *ResizeEvent {
	return &ResizeEvent{Base: NewBase(Resize), Width: width, Height: height, PixelRatio: pixelRatio}
}

func (ev *ResizeEvent) String() string {
	return fmt.Sprintf("%v{%gx%g @%g}", ev.Typ, ev.Width, ev.Height, ev.PixelRatio)
}

// PreferenceEvent reports the current user preferences.
type PreferenceEvent struct {
	Base

	// ReducedMotion is the "prefers reduced motion" setting.
	ReducedMotion bool

	// Power is the power/performance hint.
	Power capability.PowerHints
}

// NewPreference returns a new [PreferenceEvent].
func NewPreference(reducedMotion bool, power capability.PowerHints) *PreferenceEvent {
	return &PreferenceEvent{Base: NewBase(Preference), ReducedMotion: reducedMotion, Power: power}
}

func (ev *PreferenceEvent) String() string {
	return fmt.Sprintf("%v{ReducedMotion: %v, Power: %v}", ev.Typ, ev.ReducedMotion, ev.Power)
}

// VisibilityEvent reports the page becoming hidden or visible.
type VisibilityEvent struct {
	Base
	Hidden bool
}

// NewVisibility returns a new [VisibilityEvent].
func NewVisibility(hidden bool) *VisibilityEvent {
	return &VisibilityEvent{Base: NewBase(Visibility), Hidden: hidden}
}

func (ev *VisibilityEvent) String() string {
	return fmt.Sprintf("%v{Hidden: %v}", ev.Typ, ev.Hidden)
}

// BatteryEvent reports a battery status change.
type BatteryEvent struct {
	Base
	Battery capability.Battery
}

// NewBattery returns a new [BatteryEvent].
func NewBattery(b capability.Battery) *BatteryEvent {
	return &BatteryEvent{Base: NewBase(Battery), Battery: b}
}

func (ev *BatteryEvent) String() string {
	return fmt.Sprintf("%v{%+v}", ev.Typ, ev.Battery)
}

// FrameEvent is a display refresh tick.
type FrameEvent struct {
	Base

	// Delta is the time since the previous frame.
	Delta time.Duration
}

// NewFrame returns a new [FrameEvent].
func NewFrame(delta time.Duration) *FrameEvent {
	return &FrameEvent{Base: NewBase(Frame), Delta: delta}
}

func (ev *FrameEvent) String() string {
	return fmt.Sprintf("%v{Delta: %v}", ev.Typ, ev.Delta)
}
