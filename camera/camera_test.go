// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/scrolly/preset"
	"cogentcore.org/scrolly/viewpoint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

func TestAlpha(t *testing.T) {
	d := DefaultDamping()
	a := d.Alpha(tick)
	assert.Greater(t, a, float32(0))
	assert.Less(t, a, float32(1))
	assert.Equal(t, float32(0.025), d.Alpha(0))
	assert.Equal(t, float32(1), Damping{}.Alpha(0))
	assert.Greater(t, d.Alpha(time.Second), a)
	assert.LessOrEqual(t, d.Alpha(time.Hour), float32(1))
}

func TestStepApproach(t *testing.T) {
	dom := preset.NewResidence()
	from := FromPreset(dom.Resolve("intro"), DefaultFOV)
	to := FromPreset(dom.Resolve("dashboard"), DefaultFOV)
	d := DefaultDamping()

	cur := from
	prev := cur.Distance(to)
	settled := false
	frames := 0
	for ; frames < 400 && !settled; frames++ {
		cur, settled = d.Step(cur, to, tick)
		dist := cur.Distance(to)
		require.LessOrEqual(t, dist, prev, "frame %d", frames)
		prev = dist
	}
	assert.True(t, settled)
	assert.Equal(t, to, cur)
	assert.Greater(t, frames, 10, "a preset change must not be a cut")

	// idempotent at target
	for range 10 {
		next, ok := d.Step(cur, to, tick)
		assert.True(t, ok)
		assert.Equal(t, to, next)
		cur = next
	}
}

func TestStepNoOvershoot(t *testing.T) {
	d := DefaultDamping()
	from := Transform{Position: math32.Vec3(0, 0, 0), LookAt: math32.Vec3(0, 0, -1), FOV: 45}
	to := Transform{Position: math32.Vec3(10, 0, 0), LookAt: math32.Vec3(0, 0, -1), FOV: 45}
	cur := from
	for range 300 {
		cur, _ = d.Step(cur, to, 100*time.Millisecond)
		assert.LessOrEqual(t, cur.Position.X, float32(10))
		assert.GreaterOrEqual(t, cur.Position.X, float32(0))
	}
}

func TestResponsive(t *testing.T) {
	r := NewResponsive(1920)
	assert.Equal(t, float32(1), r.Scale())
	tr := Transform{Position: math32.Vec3(0, 3, 10), LookAt: math32.Vec3(0, 3, 0), FOV: 45}
	assert.Equal(t, tr, r.Adjust(tr))

	r.Width = 0
	assert.Equal(t, float32(1.5), r.Scale())
	adj := r.Adjust(tr)
	assert.Equal(t, math32.Vec3(0, 3, 15), adj.Position)
	assert.Equal(t, float32(55), adj.FOV)

	r.Width = 960
	assert.InDelta(t, 1.125, r.Scale(), 1e-5)
	assert.Equal(t, float32(45), r.Adjust(tr).FOV)
}

func TestLoopFollowsStore(t *testing.T) {
	dom := preset.NewVilla()
	st := viewpoint.NewStore(dom.Name, "intro")
	l := NewLoop(st, dom)
	assert.True(t, l.Settled())
	assert.Equal(t, dom.Presets["intro"].Position, l.Camera().Position)

	assert.True(t, l.Frame(tick))

	st.Set("security")
	assert.False(t, l.Frame(tick))
	assert.Equal(t, "security", l.TargetID())

	// retarget mid-flight, then settle on the latest preset
	for range 5 {
		l.Frame(tick)
	}
	st.Set("climate")
	settled := false
	for i := 0; i < 600 && !settled; i++ {
		settled = l.Frame(tick)
	}
	require.True(t, settled)
	assert.Equal(t, dom.Presets["climate"].Position, l.Camera().Position)

	// unknown preset ids fall back to the default
	st.Set("no-such-preset")
	for i := 0; i < 600 && !l.Frame(tick); i++ {
	}
	assert.Equal(t, dom.Presets["intro"].Position, l.Camera().Position)
}

type fixed string

func (f fixed) Get() string { return string(f) }

func TestLoopSetCamera(t *testing.T) {
	dom := preset.NewVilla()
	l := NewLoop(fixed("lighting"), dom)
	home := l.Camera()
	moved := home
	moved.Position = home.Position.Add(math32.Vec3(5, 0, 0))
	l.SetCamera(moved)
	assert.False(t, l.Settled())

	settled := false
	for i := 0; i < 600 && !settled; i++ {
		settled = l.Frame(tick)
	}
	require.True(t, settled)
	assert.Equal(t, home.Position, l.Camera().Position)
	assert.Equal(t, "lighting", l.TargetID())
}
