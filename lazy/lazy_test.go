// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lazy

import (
	"bytes"
	"context"
	"image"
	"image/draw"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scrolly/asset"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/frame"
	"cogentcore.org/scrolly/scroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fake struct {
	mountErr  error
	frame     func() error
	renderErr error
	block     chan struct{}

	mounts    atomic.Int32
	unmounts  atomic.Int32
	frames    int
	renders   int
	reconfigs []capability.Profile
}

func (f *fake) Mount(ctx context.Context) error {
	f.mounts.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return f.mountErr
}

func (f *fake) Frame(delta time.Duration) (bool, error) {
	f.frames++
	if f.frame != nil {
		return false, f.frame()
	}
	return true, nil
}

func (f *fake) Render(dst draw.Image) error {
	f.renders++
	return f.renderErr
}

func (f *fake) Unmount() { f.unmounts.Add(1) }

func (f *fake) Reconfigure(p capability.Profile) error {
	f.reconfigs = append(f.reconfigs, p)
	return nil
}

func factoryOf(r Renderer) Factory {
	return func(env Env) (Renderer, error) { return r, nil }
}

type counter struct{ n int }

func (c *counter) Paint(dst draw.Image) { c.n++ }

func await(t *testing.T, w *Wrapper) States {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	st, err := w.Await(ctx)
	require.NoError(t, err)
	return st
}

var (
	dst      = image.NewRGBA(image.Rect(0, 0, 8, 8))
	desktop  = capability.Compute(capability.DefaultSignals(), capability.DefaultThresholds())
	reduced  = capability.Compute(capability.Signals{Width: 1920, ReducedMotion: true}, capability.DefaultThresholds())
	nearItem = scroll.Item{Top: 0, Height: 500}
)

func TestFailuresBecomePlaceholders(t *testing.T) {
	cases := []struct {
		name    string
		factory Factory
		cat     asset.Categories
		op      Ops
	}{
		{"construct-error", func(Env) (Renderer, error) { return nil, errors.New("WebGL context lost") }, asset.Context, OpConstruct},
		{"construct-panic", func(Env) (Renderer, error) { panic("shader compile failed") }, asset.Shader, OpConstruct},
		{"mount-error", factoryOf(&fake{mountErr: asset.Errorf(asset.Texture, "sky.hdr", "bad header")}), asset.Texture, OpMount},
		{"frame-panic", factoryOf(&fake{frame: func() error { panic(asset.Errorf(asset.Model, "villa.yaml", "bad")) }}), asset.Model, OpFrame},
		{"render-error", factoryOf(&fake{renderErr: errors.New("fetch failed")}), asset.Network, OpRender},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ph := &counter{}
			var recs []*Record
			w := New(c.name, c.factory, desktop, nil)
			w.Placeholder = ph
			w.OnError = func(rec *Record) { recs = append(recs, rec) }

			w.Enter()
			st := await(t, w)
			if st == Mounted {
				w.Frame(16 * time.Millisecond)
			}
			w.Render(dst)
			w.Render(dst)

			assert.Equal(t, Errored, w.State())
			require.Len(t, recs, 1)
			assert.Equal(t, c.cat, recs[0].Category)
			assert.Equal(t, c.op, recs[0].Op)
			assert.Equal(t, c.name, recs[0].Scene)
			assert.Equal(t, 2, ph.n)
			assert.Nil(t, w.Renderer())

			// errored is terminal
			w.Enter()
			w.Reconfigure(desktop)
			assert.Equal(t, Errored, w.State())
			assert.Equal(t, 1, w.Loads())
		})
	}
}

func TestPanicStack(t *testing.T) {
	w := New("p", func(Env) (Renderer, error) { panic("boom") }, desktop, nil)
	w.Enter()
	await(t, w)
	rec := w.Record()
	require.NotNil(t, rec)
	assert.Equal(t, asset.Unknown, rec.Category)
	assert.Equal(t, "panic: boom", rec.Message)
	assert.Contains(t, rec.Stack, "goroutine")

	w = New("nil", func(Env) (Renderer, error) { return nil, nil }, desktop, nil)
	w.Enter()
	assert.Equal(t, Errored, await(t, w))
}

func TestLoadingOnce(t *testing.T) {
	f := &fake{}
	var built atomic.Int32
	w := New("once", func(Env) (Renderer, error) { built.Add(1); return f, nil }, desktop, nil)
	var loading int
	w.OnState = func(prev, cur States) {
		if cur == Loading {
			loading++
		}
	}
	it := scroll.Item{Top: 2000, Height: 500}
	for range 3 {
		assert.False(t, w.Observer.Intersects(it, 0, 800))
		w.Observe(it, 0, 800)
		w.Observe(it, 1500, 800)
	}
	assert.Equal(t, Mounted, await(t, w))
	for range 3 {
		w.Observe(it, 0, 800)
		w.Observe(it, 1500, 800)
		w.Enter()
	}
	assert.Equal(t, 1, loading)
	assert.Equal(t, 1, w.Loads())
	assert.Equal(t, int32(1), built.Load())
	assert.Equal(t, int32(1), f.mounts.Load())
}

func TestObserver(t *testing.T) {
	var fired int
	o := NewObserver(func() { fired++ })
	it := scroll.Item{Top: 1000, Height: 1000}

	// within the margin, but below the threshold
	assert.False(t, o.Observe(it, 150, 800))
	// 100px inside the expanded viewport is exactly the threshold
	assert.True(t, o.Intersects(it, 200, 800))
	assert.True(t, o.Observe(it, 200, 800))
	assert.True(t, o.Detached())
	assert.False(t, o.Observe(it, 1000, 800))
	assert.Equal(t, 1, fired)

	o = NewObserver(nil)
	o.Threshold = 0
	assert.True(t, o.Observe(it, 150, 800))
}

func TestForceStatic(t *testing.T) {
	var built atomic.Int32
	ph := &counter{}
	w := New("static", func(Env) (Renderer, error) { built.Add(1); return &fake{}, nil }, reduced, nil)
	w.Placeholder = ph
	assert.Equal(t, Static, w.State())
	assert.True(t, w.Observer.Detached())

	assert.False(t, w.Observe(nearItem, 0, 800))
	w.Enter()
	assert.Equal(t, Static, w.Update())
	assert.Equal(t, Static, await(t, w))
	w.Frame(time.Millisecond)
	w.Render(dst)

	assert.Equal(t, int32(0), built.Load())
	assert.Equal(t, 0, w.Loads())
	assert.Equal(t, 1, ph.n)
	assert.True(t, w.State().IsFinal())
}

func TestMountedOnDriver(t *testing.T) {
	d := frame.NewDriver(frame.OnDemand)
	f := &fake{}
	ph, ld := &counter{}, &counter{}
	w := New("live", factoryOf(f), desktop, d)
	w.Placeholder, w.Loader = ph, ld

	w.Render(dst)
	assert.Equal(t, 1, ph.n)
	assert.True(t, w.Observe(nearItem, 0, 800))
	assert.Equal(t, Loading, w.State())
	w.Render(dst)
	assert.Equal(t, 1, ld.n)

	assert.Equal(t, Mounted, await(t, w))
	assert.Same(t, f, w.Renderer())
	assert.Equal(t, 1, d.Len())
	assert.True(t, d.Tick(16*time.Millisecond))
	assert.Equal(t, 1, f.frames)
	assert.False(t, d.NeedsFrame())
	w.Render(dst)
	assert.Equal(t, 1, f.renders)

	w.Reconfigure(reduced)
	require.Len(t, f.reconfigs, 1)
	assert.True(t, d.NeedsFrame())

	w.Close()
	assert.Equal(t, int32(1), f.unmounts.Load())
	assert.Equal(t, 0, d.Len())
	assert.True(t, w.Closed())
}

func TestFrameFailureOnDriver(t *testing.T) {
	d := frame.NewDriver(frame.Continuous)
	f := &fake{frame: func() error { return errors.New("shader lost") }}
	w := New("bad-frame", factoryOf(f), desktop, d)
	w.Enter()
	assert.Equal(t, Mounted, await(t, w))
	d.Tick(time.Millisecond)
	assert.Equal(t, Errored, w.State())
	assert.Equal(t, asset.Shader, w.Record().Category)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, int32(1), f.unmounts.Load())
}

func TestCloseWhileLoading(t *testing.T) {
	f := &fake{block: make(chan struct{})}
	w := New("slow", factoryOf(f), desktop, nil)
	w.Enter()
	assert.Equal(t, Loading, w.Update())
	w.Close()
	assert.Eventually(t, func() bool { return f.unmounts.Load() == 1 }, 5*time.Second, time.Millisecond)
	assert.Equal(t, Loading, w.Update())
}

func TestAwaitTimeout(t *testing.T) {
	f := &fake{block: make(chan struct{})}
	w := New("slow", factoryOf(f), desktop, nil)
	w.Enter()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	st, err := w.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, Loading, st)
	close(f.block)
	assert.Equal(t, Mounted, await(t, w))
}

func TestReconfigureWhileLoading(t *testing.T) {
	d := frame.NewDriver(frame.OnDemand)
	f := &fake{block: make(chan struct{})}
	var env Env
	w := New("late", func(e Env) (Renderer, error) {
		env = e
		return f, nil
	}, desktop, d)
	w.Enter()
	assert.Equal(t, Loading, w.Update())

	eco := capability.Compute(capability.Signals{Width: 1920, PixelRatio: 2, Power: capability.PowerLow}, capability.DefaultThresholds())
	require.True(t, eco.Eco)
	w.Reconfigure(eco)
	assert.Empty(t, f.reconfigs)

	close(f.block)
	assert.Equal(t, Mounted, await(t, w))
	assert.Equal(t, desktop, env.Profile)
	require.Len(t, f.reconfigs, 1)
	assert.Equal(t, eco, f.reconfigs[0])
	assert.Equal(t, eco, w.Profile())
	assert.True(t, d.NeedsFrame())
}

func TestUnchangedProfileNotRedelivered(t *testing.T) {
	f := &fake{block: make(chan struct{})}
	w := New("same", factoryOf(f), desktop, nil)
	w.Enter()
	w.Reconfigure(desktop)
	close(f.block)
	assert.Equal(t, Mounted, await(t, w))
	assert.Empty(t, f.reconfigs)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	w := New("logged", func(Env) (Renderer, error) { return nil, errors.New("webgl context lost") }, desktop, nil)
	w.Enter()
	await(t, w)
	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "category=context")
	assert.Contains(t, out, "scene=logged")
	assert.Contains(t, out, "op=construct")
}

func TestStatesText(t *testing.T) {
	var s States
	require.NoError(t, s.UnmarshalText([]byte("mounted")))
	assert.Equal(t, Mounted, s)
	b, err := Static.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "static", string(b))
	assert.Error(t, s.SetString("gone"))
	assert.False(t, Loading.IsFinal())
	assert.Equal(t, "reconfigure", OpReconfigure.String())
}
