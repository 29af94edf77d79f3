// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package story assembles scroll-synchronized scenes into a page:
// sections map scrolling to scenes and write the translated presets to
// per-domain viewpoint stores, and slots lazily mount the renderers
// that follow those stores, all gated by the capability profile.
package story

import (
	"image/draw"
	"log/slog"
	"time"

	"cogentcore.org/scrolly/camera"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/events"
	"cogentcore.org/scrolly/frame"
	"cogentcore.org/scrolly/lazy"
	"cogentcore.org/scrolly/preset"
	"cogentcore.org/scrolly/scene"
	"cogentcore.org/scrolly/scroll"
	"cogentcore.org/scrolly/viewpoint"
	"cogentcore.org/scrolly/visual"
)

// Page is the orchestrator of one scrollytelling page. All of its
// methods must be called from the host goroutine; other goroutines
// send events through [Page.Send].
type Page struct {

	// Stores are the viewpoint stores, one per preset domain.
	Stores *viewpoint.Stores

	// Profiler keeps the capability profile up to date.
	Profiler *capability.Profiler

	// Driver runs the per-frame animations of mounted renderers.
	Driver *frame.Driver

	// Sections are the scroll containers, in page order.
	Sections []*Section

	// Slots are the renderer places, in page order.
	Slots []*Slot

	// Listeners receive dispatched events. The page adds its own
	// listeners first, so listeners added later run before them and
	// may handle an event to stop the default behavior.
	Listeners events.Listeners

	// Queue holds events sent from other goroutines until
	// [Page.ProcessEvents].
	Queue events.Queue

	// Breakpoint is the viewport width at and above which new sections
	// use the sticky regime.
	Breakpoint float32

	// Margin and Threshold configure the visibility observers of new
	// slots.
	Margin, Threshold float32

	// Damping is the camera smoothing of new visuals; zero means the
	// default.
	Damping camera.Damping

	scrollY float32
}

// NewPage returns a new page for the given initial signals.
func NewPage(sig capability.Signals) *Page {
	return NewPageThresholds(sig, capability.DefaultThresholds())
}

// NewPageThresholds returns a new page with the given device thresholds.
func NewPageThresholds(sig capability.Signals, th capability.Thresholds) *Page {
	p := &Page{Stores: viewpoint.NewStores(), Breakpoint: scroll.DefaultBreakpoint, Margin: lazy.DefaultMargin, Threshold: lazy.DefaultThreshold}
	p.Profiler = capability.NewProfilerThresholds(sig, th)
	p.Driver = frame.NewDriver(p.Profiler.Profile().FrameLoop)
	p.Profiler.OnChange(p.profileChanged)
	p.addListeners()
	return p
}

func (p *Page) addListeners() {
	p.Listeners.Add(events.Scroll, func(ev events.Event) {
		p.Scroll(ev.(*events.ScrollEvent).Y)
	})
	p.Listeners.Add(events.Resize, func(ev events.Event) {
		re := ev.(*events.ResizeEvent)
		p.Resize(re.Width, re.Height, re.PixelRatio)
	})
	p.Listeners.Add(events.Preference, func(ev events.Event) {
		pe := ev.(*events.PreferenceEvent)
		s := p.Profiler.Signals()
		s.ReducedMotion, s.Power = pe.ReducedMotion, pe.Power
		p.Profiler.Update(s)
	})
	p.Listeners.Add(events.Visibility, func(ev events.Event) {
		p.Profiler.SetBackground(ev.(*events.VisibilityEvent).Hidden)
	})
	p.Listeners.Add(events.Battery, func(ev events.Event) {
		p.Profiler.SetBattery(ev.(*events.BatteryEvent).Battery)
	})
	p.Listeners.Add(events.Frame, func(ev events.Event) {
		p.Frame(ev.(*events.FrameEvent).Delta)
	})
}

// Profile returns the current capability profile.
func (p *Page) Profile() capability.Profile { return p.Profiler.Profile() }

// Viewport returns the current viewport size.
func (p *Page) Viewport() (width, height float32) {
	s := p.Profiler.Signals()
	return s.Width, s.Height
}

// ScrollY returns the most recent scroll offset.
func (p *Page) ScrollY() float32 { return p.scrollY }

// AddSection adds a section for the given scenes laid out with the given
// geometry, writing to the store of the given domain. Sections of the
// same domain share its store.
func (p *Page) AddSection(name string, scenes scene.List, d *preset.Domain, g scroll.Geometry) *Section {
	st := p.Stores.Store(d.Name, d.Translate(scenes.ID(0)))
	s := NewSection(name, scenes, d, st)
	s.Geometry = g
	s.Mapper.Breakpoint = p.Breakpoint
	w, _ := p.Viewport()
	s.Resize(w)
	p.Sections = append(p.Sections, s)
	return s
}

// AddSlot adds a renderer slot for the given container layout and
// factory. The renderer is constructed only once the container comes
// near the viewport, and never while the profile forces static rendering.
func (p *Page) AddSlot(name string, item scroll.Item, f lazy.Factory) *Slot {
	sl := NewSlot(name, item, f, p.Profile(), p.Driver)
	sl.SetVisibility(p.Margin, p.Threshold)
	p.Slots = append(p.Slots, sl)
	_, h := p.Viewport()
	sl.Observe(p.scrollY, h)
	return sl
}

// AddVisual adds a slot for a built-in scene renderer of the given kind
// whose camera follows the store of the given domain. The placeholder
// poster carries the domain name and default accent.
func (p *Page) AddVisual(name string, kind visual.Kinds, d *preset.Domain, item scroll.Item, opts visual.Options) *Slot {
	st := p.Stores.Store(d.Name, d.Translate(""))
	if opts.Width == 0 {
		opts.Width, _ = p.Viewport()
	}
	if opts.Damping == (camera.Damping{}) {
		opts.Damping = p.Damping
	}
	if opts.PixelRatio == 0 {
		opts.PixelRatio = p.Profiler.Signals().PixelRatio
	}
	sl := p.AddSlot(name, item, visual.Factory(kind, st, d, opts))
	accent := d.Accent(d.Default)
	sl.Poster.Label = d.Name
	sl.Poster.Accent = accent
	sl.Loader.Accent = accent
	return sl
}

// Send queues an event for [Page.ProcessEvents]. It is safe to call from
// any goroutine.
func (p *Page) Send(ev events.Event) {
	p.Queue.Send(ev)
}

// ProcessEvents dispatches all queued events in order and returns how
// many there were.
func (p *Page) ProcessEvents() int {
	evs := p.Queue.Drain()
	for _, ev := range evs {
		p.Dispatch(ev)
	}
	return len(evs)
}

// Dispatch calls the listeners for the given event.
func (p *Page) Dispatch(ev events.Event) {
	p.Listeners.Call(ev)
}

// Scroll records a document scroll offset: every section maps it to its
// active scene and every slot checks whether to start loading.
func (p *Page) Scroll(scrollY float32) {
	p.scrollY = scrollY
	_, h := p.Viewport()
	for _, s := range p.Sections {
		s.Scroll(scrollY, h)
	}
	for _, sl := range p.Slots {
		sl.Observe(scrollY, h)
	}
}

// Resize records a viewport resize.
func (p *Page) Resize(width, height, pixelRatio float32) {
	p.Profiler.Resize(width, height, pixelRatio)
	for _, s := range p.Sections {
		s.Resize(width)
	}
	for _, sl := range p.Slots {
		sl.Resize(width)
	}
	p.Scroll(p.scrollY)
}

// Frame runs one display refresh: finished renderer loads are applied
// and the driver ticks the mounted renderers. It reports whether any
// animation ran.
func (p *Page) Frame(delta time.Duration) bool {
	for _, sl := range p.Slots {
		sl.Update(delta)
	}
	return p.Driver.Tick(delta)
}

// NeedsFrame returns whether the next frame would do anything.
func (p *Page) NeedsFrame() bool {
	for _, sl := range p.Slots {
		if sl.State() == lazy.Loading {
			return true
		}
	}
	return p.Driver.NeedsFrame()
}

// Render draws the slot at the given index into dst.
func (p *Page) Render(idx int, dst draw.Image) {
	if idx < 0 || idx >= len(p.Slots) {
		return
	}
	p.Slots[idx].Render(dst)
}

func (p *Page) profileChanged(prev, cur capability.Profile) {
	slog.Debug("capability profile changed", "from", prev.String(), "to", cur.String())
	p.Driver.SetMode(cur.FrameLoop)
	for _, sl := range p.Slots {
		sl.Apply(prev, cur)
	}
	// slots rebuilt as dynamic need to see the current scroll position
	_, h := p.Viewport()
	for _, sl := range p.Slots {
		sl.Observe(p.scrollY, h)
	}
}

// Close tears the page down: every slot is closed and every store
// released.
func (p *Page) Close() {
	for _, sl := range p.Slots {
		sl.Close()
	}
	p.Stores.CloseAll()
}
