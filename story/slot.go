// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package story

import (
	"image/draw"
	"time"

	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/frame"
	"cogentcore.org/scrolly/lazy"
	"cogentcore.org/scrolly/placeholder"
	"cogentcore.org/scrolly/scroll"
)

// Resizer is implemented by renderers that follow the viewport width.
type Resizer interface {
	SetViewportWidth(width float32)
}

// Slot is the place of one renderer on the page. It owns the lazy
// wrapper, and replaces it with a fresh one when the capability profile
// switches between static and dynamic rendering.
type Slot struct {

	// Name identifies the slot in failure records.
	Name string

	// Item is the layout of the container.
	Item scroll.Item

	// Poster is the placeholder poster.
	Poster *placeholder.Poster

	// Loader is the loading indicator.
	Loader *placeholder.Loader

	// OnError is called with every failure record of the slot.
	OnError func(rec *lazy.Record)

	// Margin and Threshold configure the visibility observer of every
	// wrapper of the slot; see [lazy.Observer].
	Margin, Threshold float32

	factory lazy.Factory
	driver  *frame.Driver
	wrapper *lazy.Wrapper

	// generation counts the wrappers created.
	generation int
}

// NewSlot returns a new slot with a wrapper for the given profile.
func NewSlot(name string, item scroll.Item, f lazy.Factory, p capability.Profile, d *frame.Driver) *Slot {
	sl := &Slot{Name: name, Item: item, factory: f, driver: d, Margin: lazy.DefaultMargin, Threshold: lazy.DefaultThreshold}
	sl.Poster = placeholder.NewPoster(name, "")
	sl.Loader = placeholder.NewLoader("")
	sl.build(p)
	return sl
}

// Wrapper returns the current wrapper.
func (sl *Slot) Wrapper() *lazy.Wrapper { return sl.wrapper }

// Generation returns the number of wrappers created for the slot.
func (sl *Slot) Generation() int { return sl.generation }

// State returns the state of the current wrapper.
func (sl *Slot) State() lazy.States { return sl.wrapper.State() }

// SetVisibility sets the observer margin and threshold of the slot.
func (sl *Slot) SetVisibility(margin, threshold float32) {
	sl.Margin, sl.Threshold = margin, threshold
	sl.wrapper.Observer.Margin, sl.wrapper.Observer.Threshold = margin, threshold
}

func (sl *Slot) build(p capability.Profile) {
	w := lazy.New(sl.Name, sl.factory, p, sl.driver)
	w.Observer.Margin, w.Observer.Threshold = sl.Margin, sl.Threshold
	w.Placeholder = posterPainter{sl}
	w.Loader = loaderPainter{sl}
	w.OnError = func(rec *lazy.Record) {
		if sl.OnError != nil {
			sl.OnError(rec)
		}
	}
	sl.wrapper = w
	sl.generation++
}

// Apply applies a profile change. Becoming static tears a healthy
// renderer down into a fresh static wrapper; leaving static replaces
// the static wrapper with a fresh one that mounts lazily again. Other
// changes are applied live. An errored wrapper stays errored.
func (sl *Slot) Apply(prev, cur capability.Profile) {
	st := sl.wrapper.State()
	switch {
	case st == lazy.Errored:
		return
	case cur.ForceStatic && st != lazy.Static:
		sl.wrapper.Close()
		sl.build(cur)
	case !cur.ForceStatic && st == lazy.Static:
		sl.wrapper.Close()
		sl.build(cur)
	default:
		sl.wrapper.Reconfigure(cur)
	}
}

// Observe forwards a scroll sample to the wrapper's visibility observer.
func (sl *Slot) Observe(scrollY, viewport float32) bool {
	return sl.wrapper.Observe(sl.Item, scrollY, viewport)
}

// Update applies a finished renderer load and advances the loader.
func (sl *Slot) Update(delta time.Duration) lazy.States {
	st := sl.wrapper.Update()
	if st == lazy.Loading && sl.Loader != nil {
		sl.Loader.Advance(delta)
	}
	return st
}

// Render draws the slot into dst.
func (sl *Slot) Render(dst draw.Image) {
	sl.wrapper.Render(dst)
}

// Resize forwards a viewport width change to a mounted renderer.
func (sl *Slot) Resize(width float32) {
	if r, ok := sl.wrapper.Renderer().(Resizer); ok {
		r.SetViewportWidth(width)
	}
}

// Close closes the current wrapper.
func (sl *Slot) Close() {
	sl.wrapper.Close()
}

type posterPainter struct{ sl *Slot }

func (pp posterPainter) Paint(dst draw.Image) {
	if pp.sl.Poster != nil {
		pp.sl.Poster.Paint(dst)
	}
}

type loaderPainter struct{ sl *Slot }

func (lp loaderPainter) Paint(dst draw.Image) {
	if lp.sl.Loader != nil {
		lp.sl.Loader.Paint(dst)
		return
	}
	posterPainter(lp).Paint(dst)
}
