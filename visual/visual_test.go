// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"context"
	"image"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/scrolly/asset"
	"cogentcore.org/scrolly/camera"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/frame"
	"cogentcore.org/scrolly/lazy"
	"cogentcore.org/scrolly/preset"
	"cogentcore.org/scrolly/viewpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	still  = capability.Profile{PixelRatioCap: 2, FrameLoop: frame.OnDemand, ParticleScale: 0}
	lively = capability.Profile{PixelRatioCap: 2, FrameLoop: frame.Continuous, ParticleScale: 1}
)

func mount(t *testing.T, kind Kinds, d *preset.Domain, p capability.Profile, opts Options) (*Scene, *viewpoint.Store, *int) {
	st := viewpoint.NewStore(d.Name, d.Default)
	invalidated := new(int)
	env := lazy.Env{Scene: kind.String(), Profile: p, Invalidate: func() { *invalidated++ }}
	r, err := Factory(kind, st, d, opts)(env)
	require.NoError(t, err)
	require.NoError(t, r.Mount(context.Background()))
	return r.(*Scene), st, invalidated
}

func TestBuiltinModels(t *testing.T) {
	reg := preset.Builtin()
	for k := Residence; k < KindsN; k++ {
		w, err := asset.OpenWireframe(models, "models/"+k.String()+".yaml")
		require.NoError(t, err, k)
		assert.Equal(t, k.String(), w.Name)
		d := reg.Domain(k.String())
		require.NotNil(t, d, k)
		for id := range w.Highlights {
			_, ok := d.Presets[id]
			assert.True(t, ok, "%s highlight %q is not a preset", k, id)
		}
	}
}

func TestSceneFollowsStore(t *testing.T) {
	d := preset.NewResidence()
	s, st, invalidated := mount(t, Residence, d, still, Options{Width: 1920})
	assert.Equal(t, "intro", s.Loop().TargetID())
	assert.Equal(t, 0, s.Particles())

	settled, err := s.Frame(16 * time.Millisecond)
	require.NoError(t, err)
	assert.True(t, settled)

	st.Set("security")
	assert.Equal(t, 1, *invalidated)
	n := 0
	for ; n < 1000; n++ {
		settled, err := s.Frame(16 * time.Millisecond)
		require.NoError(t, err)
		if settled {
			break
		}
	}
	assert.Less(t, n, 1000)
	want := camera.FromPreset(d.Resolve("security"), camera.DefaultFOV)
	assert.InDelta(t, 0, s.Camera().Distance(want), 1e-2)

	s.Unmount()
	assert.Equal(t, 0, st.NumListeners())
	st.Set("intro")
	assert.Equal(t, 1, *invalidated)
}

func TestNarrowViewport(t *testing.T) {
	d := preset.NewVilla()
	s, _, _ := mount(t, Villa, d, still, Options{Width: 375})
	for range 1000 {
		if settled, _ := s.Frame(16 * time.Millisecond); settled {
			break
		}
	}
	intro := d.Resolve("intro")
	cam := s.Camera()
	assert.Greater(t, cam.Position.Sub(intro.LookAt).Length(), intro.Position.Sub(intro.LookAt).Length())
	assert.InDelta(t, 55, cam.FOV, 1e-2)

	s.SetViewportWidth(1920)
	for range 1000 {
		if settled, _ := s.Frame(16 * time.Millisecond); settled {
			break
		}
	}
	assert.InDelta(t, 0, s.Camera().Distance(camera.FromPreset(intro, camera.DefaultFOV)), 1e-2)
}

func uniform(img *image.RGBA) bool {
	for i := 4; i < len(img.Pix); i += 4 {
		if img.Pix[i] != img.Pix[0] || img.Pix[i+1] != img.Pix[1] || img.Pix[i+2] != img.Pix[2] {
			return false
		}
	}
	return true
}

func TestRender(t *testing.T) {
	for k := Residence; k < KindsN; k++ {
		d := preset.Builtin().Domain(k.String())
		s, st, _ := mount(t, k, d, lively, Options{Width: 1280, PixelRatio: 1})
		dst := image.NewRGBA(image.Rect(0, 0, 160, 90))
		require.NoError(t, s.Render(dst))
		assert.False(t, uniform(dst), k)

		for _, id := range d.IDs() {
			st.Set(id)
			s.Frame(time.Second)
			require.NoError(t, s.Render(dst), id)
		}
		require.NoError(t, s.Render(image.NewRGBA(image.Rectangle{})))
	}
}

func TestRenderScale(t *testing.T) {
	d := preset.NewResidence()
	s, _, _ := mount(t, Residence, d, capability.Profile{PixelRatioCap: 1}, Options{Width: 1280, PixelRatio: 2})
	assert.Equal(t, float32(0.5), s.renderScale())
	dst := image.NewRGBA(image.Rect(0, 0, 100, 60))
	require.NoError(t, s.Render(dst))
	assert.False(t, uniform(dst))

	require.NoError(t, s.Reconfigure(capability.Profile{PixelRatioCap: 3}))
	assert.Equal(t, float32(1), s.renderScale())
}

func TestParticles(t *testing.T) {
	d := preset.NewVilla()
	s, _, _ := mount(t, Villa, d, lively, Options{Width: 1280, Seed: 7})
	assert.Equal(t, 160, s.Particles())
	before := s.particles[0]
	settled, err := s.Frame(100 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, settled)
	assert.NotEqual(t, before, s.particles[0])
	for _, p := range s.particles {
		assert.LessOrEqual(t, p.Y, s.bounds.Max.Y)
	}

	require.NoError(t, s.Reconfigure(capability.Profile{FrameLoop: frame.OnDemand, ParticleScale: 0.25}))
	assert.Equal(t, 40, s.Particles())
	settled, _ = s.Frame(16 * time.Millisecond)
	assert.True(t, settled)
}

func TestMountErrors(t *testing.T) {
	d := preset.NewResidence()
	st := viewpoint.NewStore(d.Name, d.Default)
	bad := fstest.MapFS{"broken.yaml": {Data: []byte("vertices: [[0, 0, 0]]\nedges: [[0, 5]]\n")}}
	r := New(Residence, st, d, Options{Models: bad, Model: "broken.yaml"}, lazy.Env{})
	err := r.Mount(context.Background())
	assert.Equal(t, asset.Model, asset.Classify(err))

	r = New(Residence, st, d, Options{Models: bad, Model: "missing.yaml"}, lazy.Env{})
	assert.Equal(t, asset.Network, asset.Classify(r.Mount(context.Background())))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r = New(Villa, st, d, Options{}, lazy.Env{})
	assert.ErrorIs(t, r.Mount(ctx), context.Canceled)

	_, err = Factory(Villa, nil, d, Options{})(lazy.Env{})
	assert.Error(t, err)
}

func TestThroughWrapper(t *testing.T) {
	d := preset.NewVilla()
	st := viewpoint.NewStore(d.Name, d.Default)
	drv := frame.NewDriver(frame.OnDemand)
	w := lazy.New("villa", Factory(Villa, st, d, Options{Width: 1280}), still, drv)
	w.Enter()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	state, err := w.Await(ctx)
	require.NoError(t, err)
	require.Equal(t, lazy.Mounted, state)

	for drv.Tick(16 * time.Millisecond) {
	}
	assert.False(t, drv.NeedsFrame())
	st.Set("climate")
	assert.True(t, drv.NeedsFrame())
	frames := drv.Frames()
	for drv.Tick(16 * time.Millisecond) {
	}
	assert.Greater(t, drv.Frames()-frames, uint64(10))
	s := w.Renderer().(*Scene)
	assert.Equal(t, "climate", s.Loop().TargetID())

	w.Close()
	assert.Equal(t, 0, st.NumListeners())
}

func TestKindsText(t *testing.T) {
	var k Kinds
	require.NoError(t, k.UnmarshalText([]byte("villa")))
	assert.Equal(t, Villa, k)
	assert.Error(t, k.SetString("castle"))
	assert.Equal(t, "5", Kinds(5).String())
	assert.Equal(t, []Kinds{Residence, Villa}, KindsValues())
}

func TestDampingOption(t *testing.T) {
	d := preset.NewVilla()
	s, _, _ := mount(t, Villa, d, still, Options{})
	assert.Equal(t, camera.DefaultDamping(), s.Loop().Damping)
	s.Unmount()

	slow := camera.Damping{TimeConstant: time.Second, Epsilon: 1e-3}
	s, _, _ = mount(t, Villa, d, still, Options{Damping: slow})
	assert.Equal(t, slow, s.Loop().Damping)
	s.Unmount()
}
