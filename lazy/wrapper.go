// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lazy provides a resilient lazy-mount wrapper for scene
// renderers: a renderer is constructed only once its container comes
// near the viewport, every failure it produces is contained and
// classified, and a static placeholder is shown whenever it cannot run.
package lazy

import (
	"context"
	"image/draw"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/frame"
	"cogentcore.org/scrolly/scroll"
)

type loadResult struct {
	renderer Renderer
	op       Ops
	err      error
}

// Wrapper is the lazy-mount state machine and failure boundary around
// one [Renderer]. A new Wrapper has fresh state; recovering from
// [Errored] means making a new one. All methods must be called from the
// host goroutine; only the renderer load runs in the background.
type Wrapper struct {

	// Scene is the label used in failure records.
	Scene string

	// Placeholder is painted in every state other than [Loading] and
	// [Mounted], and in place of a failed render.
	Placeholder Painter

	// Loader is painted while [Loading]. If nil, Placeholder is used.
	Loader Painter

	// OnError is called with the record of a failure, after it is logged.
	OnError func(rec *Record)

	// OnState is called after every state transition.
	OnState func(prev, cur States)

	// Observer decides when the container is close enough to mount.
	Observer *Observer

	factory  Factory
	profile  capability.Profile
	built    capability.Profile
	driver   *frame.Driver
	state    States
	renderer Renderer
	record   *Record
	anim     *frame.Animation
	result   chan loadResult
	cancel   context.CancelFunc
	loads    int
	closed   bool
}

// New returns a new wrapper for the given factory. If the profile forces
// static rendering the wrapper starts, and stays, in [Static]: its
// observer is detached and the factory is never called. The driver, if
// non-nil, runs the renderer's frames while it is mounted.
func New(scene string, f Factory, p capability.Profile, d *frame.Driver) *Wrapper {
	w := &Wrapper{Scene: scene, factory: f, profile: p, driver: d}
	w.Observer = NewObserver(w.enter)
	if p.ForceStatic {
		w.Observer.Detach()
		w.state = Static
	}
	return w
}

// State returns the current state.
func (w *Wrapper) State() States { return w.state }

// Record returns the failure record, or nil if the wrapper has not failed.
func (w *Wrapper) Record() *Record { return w.record }

// Renderer returns the live renderer, or nil if not [Mounted].
func (w *Wrapper) Renderer() Renderer {
	if w.state != Mounted {
		return nil
	}
	return w.renderer
}

// Loads returns how many times the wrapper entered [Loading], which is
// at most once.
func (w *Wrapper) Loads() int { return w.loads }

// Profile returns the current capability profile.
func (w *Wrapper) Profile() capability.Profile { return w.profile }

// Observe forwards the container geometry to the observer, which starts
// loading the first time the container comes near the viewport.
func (w *Wrapper) Observe(it scroll.Item, scrollY, viewport float32) bool {
	return w.Observer.Observe(it, scrollY, viewport)
}

// Enter starts loading as if the observer had fired. It does nothing
// unless the wrapper is [Unmounted].
func (w *Wrapper) Enter() {
	w.Observer.Detach()
	w.enter()
}

func (w *Wrapper) enter() {
	if w.state != Unmounted || w.closed {
		return
	}
	w.loads++
	w.setState(Loading)
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.result = make(chan loadResult, 1)
	w.built = w.profile
	env := Env{Scene: w.Scene, Profile: w.profile, Invalidate: w.invalidate}
	go func(f Factory, res chan<- loadResult) {
		var r Renderer
		err := protect(func() error {
			var err error
			r, err = f(env)
			if err == nil && r == nil {
				err = errors.New("factory returned no renderer")
			}
			return err
		})
		if err != nil {
			res <- loadResult{op: OpConstruct, err: err}
			return
		}
		err = protect(func() error { return r.Mount(ctx) })
		res <- loadResult{renderer: r, op: OpMount, err: err}
	}(w.factory, w.result)
}

// Update applies the result of a finished background load, if any.
// It never blocks. It returns the resulting state.
func (w *Wrapper) Update() States {
	if w.result == nil {
		return w.state
	}
	select {
	case res := <-w.result:
		w.apply(res)
	default:
	}
	return w.state
}

// Await blocks until the background load finishes or ctx is done, and
// applies its result. It returns the resulting state and ctx.Err() if
// ctx ended first.
func (w *Wrapper) Await(ctx context.Context) (States, error) {
	if w.result == nil {
		return w.state, nil
	}
	select {
	case res := <-w.result:
		w.apply(res)
		return w.state, nil
	case <-ctx.Done():
		return w.state, ctx.Err()
	}
}

func (w *Wrapper) apply(res loadResult) {
	w.result = nil
	w.cancel()
	if w.state != Loading || w.closed {
		if res.renderer != nil {
			w.unmount(res.renderer)
		}
		return
	}
	w.renderer = res.renderer
	if res.err != nil {
		w.fail(res.op, res.err)
		return
	}
	w.setState(Mounted)
	if w.driver != nil {
		w.anim = w.driver.Animate(func(a *frame.Animation) {
			a.Settled = w.Frame(a.Delta)
		})
	}
	if w.profile != w.built {
		w.Reconfigure(w.profile)
	}
}

// Frame advances a mounted renderer, containing any failure. It reports
// whether nothing more needs to be drawn until something changes, which
// is always true when not [Mounted].
func (w *Wrapper) Frame(delta time.Duration) bool {
	if w.state != Mounted {
		return true
	}
	settled := true
	err := protect(func() error {
		var err error
		settled, err = w.renderer.Frame(delta)
		return err
	})
	if err != nil {
		w.fail(OpFrame, err)
		return true
	}
	return settled
}

// Render draws the current visual into dst: the renderer when
// [Mounted], the loader when [Loading], and the placeholder otherwise.
// A failing render is contained and replaced by the placeholder.
func (w *Wrapper) Render(dst draw.Image) {
	switch w.state {
	case Mounted:
		err := protect(func() error { return w.renderer.Render(dst) })
		if err == nil {
			return
		}
		w.fail(OpRender, err)
	case Loading:
		if w.Loader != nil {
			w.Loader.Paint(dst)
			return
		}
	}
	if w.Placeholder != nil {
		w.Placeholder.Paint(dst)
	}
}

// Reconfigure applies a new quality profile. A mounted renderer that
// implements [Reconfigurer] receives it live; others keep their
// construction profile. A profile set while [Loading] is delivered once
// the renderer mounts. It does not change between static and dynamic
// rendering: a wrapper is created as [Static] or not for its lifetime.
func (w *Wrapper) Reconfigure(p capability.Profile) {
	w.profile = p
	if w.state != Mounted {
		return
	}
	rc, ok := w.renderer.(Reconfigurer)
	if !ok {
		return
	}
	if err := protect(func() error { return rc.Reconfigure(p) }); err != nil {
		w.fail(OpReconfigure, err)
		return
	}
	w.invalidate()
}

// Close tears the wrapper down: a pending load is cancelled and its
// renderer released when it arrives, and a mounted renderer is
// unmounted. The state is left as is.
func (w *Wrapper) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.Observer.Detach()
	if w.cancel != nil {
		w.cancel()
	}
	if w.result != nil {
		go func(res <-chan loadResult) {
			if r := <-res; r.renderer != nil {
				protect(func() error { r.renderer.Unmount(); return nil })
			}
		}(w.result)
		w.result = nil
	}
	w.stop()
}

// Closed returns whether [Wrapper.Close] has been called.
func (w *Wrapper) Closed() bool { return w.closed }

// fail moves to [Errored], releasing the renderer and reporting the
// failure. It is called at most once, as Errored is terminal.
func (w *Wrapper) fail(op Ops, err error) {
	w.stop()
	w.record = NewRecord(w.Scene, op, err)
	w.record.Log()
	w.setState(Errored)
	if w.OnError != nil {
		w.OnError(w.record)
	}
}

// stop removes the frame animation and unmounts the renderer.
func (w *Wrapper) stop() {
	if w.anim != nil {
		w.driver.Remove(w.anim)
		w.anim = nil
	}
	if w.renderer != nil {
		r := w.renderer
		w.renderer = nil
		w.unmount(r)
	}
}

func (w *Wrapper) unmount(r Renderer) {
	if err := protect(func() error { r.Unmount(); return nil }); err != nil {
		NewRecord(w.Scene, OpUnmount, err).Log()
	}
}

func (w *Wrapper) invalidate() {
	if w.driver != nil {
		w.driver.Invalidate()
	}
}

func (w *Wrapper) setState(s States) {
	prev := w.state
	if prev == s {
		return
	}
	w.state = s
	Logger().Debug("scene renderer state", "scene", w.Scene, "from", prev.String(), "to", s.String())
	if w.OnState != nil {
		w.OnState(prev, s)
	}
}
