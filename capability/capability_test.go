// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capability

import (
	"testing"

	"cogentcore.org/scrolly/frame"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	th := DefaultThresholds()

	desk := Compute(Signals{Width: 1920, Height: 1080, PixelRatio: 3}, th)
	assert.Equal(t, Desktop, desk.Class)
	assert.Equal(t, float32(2), desk.PixelRatioCap)
	assert.Equal(t, frame.Continuous, desk.FrameLoop)
	assert.Equal(t, float32(1), desk.ParticleScale)
	assert.False(t, desk.ForceStatic)
	assert.False(t, desk.Eco)

	tab := Compute(Signals{Width: 900, PixelRatio: 1}, th)
	assert.Equal(t, Tablet, tab.Class)
	assert.Equal(t, float32(0.75), tab.ParticleScale)

	mob := Compute(Signals{Width: 420, PixelRatio: 2, Touch: true}, th)
	assert.Equal(t, Mobile, mob.Class)
	assert.Equal(t, float32(1.5), mob.PixelRatioCap)
	assert.Equal(t, float32(0.5), mob.ParticleScale)

	zero := Compute(Signals{Width: 1920}, th)
	assert.Equal(t, float32(1), zero.PixelRatioCap)
}

func TestEco(t *testing.T) {
	th := DefaultThresholds()
	cases := map[string]Signals{
		"low-power-hint": {Width: 1920, PixelRatio: 2, Power: PowerLow},
		"low-battery":    {Width: 1920, PixelRatio: 2, Battery: Battery{Known: true, Level: 0.1}},
		"low-memory":     {Width: 1920, PixelRatio: 2, MemoryGB: 2},
		"few-cores":      {Width: 1920, PixelRatio: 2, Cores: 2},
		"dense-small":    {Width: 360, PixelRatio: 3},
	}
	for name, s := range cases {
		p := Compute(s, th)
		assert.True(t, p.Eco, name)
		assert.Equal(t, float32(1), p.PixelRatioCap, name)
		assert.Equal(t, frame.OnDemand, p.FrameLoop, name)
		assert.Equal(t, float32(0.25), p.ParticleScale, name)
	}

	charging := Compute(Signals{Width: 1920, Battery: Battery{Known: true, Level: 0.1, Charging: true}}, th)
	assert.False(t, charging.Eco)
	unknown := Compute(Signals{Width: 1920, Battery: Battery{Level: 0}}, th)
	assert.False(t, unknown.Eco)
}

func TestBackground(t *testing.T) {
	p := Compute(Signals{Width: 1920, PixelRatio: 1, Background: true}, DefaultThresholds())
	assert.Equal(t, frame.Disabled, p.FrameLoop)
	assert.False(t, p.ForceStatic)
}

func TestReducedMotionWins(t *testing.T) {
	th := DefaultThresholds()
	all := []Signals{
		{Width: 1920, PixelRatio: 1, ReducedMotion: true},
		{Width: 1920, PixelRatio: 2, ReducedMotion: true, Power: PowerHigh, MemoryGB: 32, Cores: 16},
		{Width: 320, PixelRatio: 3, ReducedMotion: true, Touch: true},
		{Width: 1920, ReducedMotion: true, Background: true},
	}
	for _, s := range all {
		p := Compute(s, th)
		assert.True(t, p.ForceStatic)
		assert.Equal(t, frame.Disabled, p.FrameLoop)
		assert.Zero(t, p.ParticleScale)
	}
}

func TestProfiler(t *testing.T) {
	p := NewProfiler(DefaultSignals())
	assert.Equal(t, Desktop, p.Profile().Class)

	var changes [][2]Profile
	p.OnChange(func(prev, cur Profile) { changes = append(changes, [2]Profile{prev, cur}) })

	assert.False(t, p.Resize(1920, 1000, 0))
	assert.Len(t, changes, 0)
	assert.Equal(t, float32(1), p.Signals().PixelRatio)

	assert.True(t, p.Resize(600, 800, 2))
	assert.Len(t, changes, 1)
	assert.Equal(t, Desktop, changes[0][0].Class)
	assert.Equal(t, Mobile, changes[0][1].Class)

	assert.True(t, p.SetReducedMotion(true))
	assert.True(t, p.ForceStatic())
	assert.False(t, p.SetPower(PowerHigh))
	assert.True(t, p.SetReducedMotion(false))
	assert.False(t, p.ForceStatic())

	assert.True(t, p.SetBackground(true))
	assert.Equal(t, frame.Disabled, p.Profile().FrameLoop)
	assert.True(t, p.SetBackground(false))

	assert.True(t, p.SetBattery(Battery{Known: true, Level: 0.05}))
	assert.True(t, p.Profile().Eco)
	assert.Len(t, changes, 6)
}

func TestPowerHintsText(t *testing.T) {
	var h PowerHints
	assert.NoError(t, h.UnmarshalText([]byte("low")))
	assert.Equal(t, PowerLow, h)
	b, err := PowerHints(PowerHigh).MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "high", string(b))
	assert.Error(t, h.SetString("turbo"))
	assert.Equal(t, "7", PowerHints(7).String())
	assert.Len(t, PowerHintsValues(), int(PowerHintsN))
	assert.Equal(t, "tablet", Tablet.String())
}
