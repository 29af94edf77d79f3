// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

import (
	"math/rand/v2"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type change struct {
	index int
	id    string
}

func record(m *Mapper) *[]change {
	var got []change
	m.OnChange(func(i int, id string) { got = append(got, change{i, id}) })
	return &got
}

func TestIndex(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for i := 0; i < 1000; i++ {
			p := float32(i) / 1000
			idx := Index(p, n)
			assert.Equal(t, int(math32.Floor(p*float32(n))), idx, "p=%v n=%d", p, n)
			assert.True(t, idx >= 0 && idx < n)
		}
		assert.Equal(t, n-1, Index(1, n))
		assert.Equal(t, n-1, Index(1.5, n))
		assert.Equal(t, 0, Index(-0.2, n))
		assert.Equal(t, 0, Index(math32.NaN(), n))
	}
	assert.Equal(t, 0, Index(0.5, 0))
}

func TestGeometryProgress(t *testing.T) {
	g := Geometry{Top: 1000, Height: 5000, Viewport: 1000}
	assert.Equal(t, float32(4000), g.Travel())
	assert.Equal(t, float32(0), g.Progress(0))
	assert.Equal(t, float32(0), g.Progress(1000))
	assert.Equal(t, float32(0.5), g.Progress(3000))
	assert.Equal(t, float32(1), g.Progress(5000))
	assert.Equal(t, float32(1), g.Progress(9000))

	short := Geometry{Top: 200, Height: 500, Viewport: 800}
	assert.Equal(t, float32(0), short.Progress(100))
	assert.Equal(t, float32(1), short.Progress(300))
}

func TestVisibleRatio(t *testing.T) {
	it := Item{Top: 1000, Height: 800}
	assert.Equal(t, float32(0), it.VisibleRatio(0, 900))
	assert.Equal(t, float32(0.5), it.VisibleRatio(500, 900))
	assert.Equal(t, float32(1), it.VisibleRatio(1000, 900))
	assert.Equal(t, float32(0), Item{}.VisibleRatio(0, 900))
}

func TestStickyMonotonic(t *testing.T) {
	m := NewMapper("a", "b", "c", "d", "e")
	got := record(m)
	for i := 0; i <= 100; i++ {
		m.SetProgress(float32(i) / 100)
	}
	assert.Equal(t, []change{{1, "b"}, {2, "c"}, {3, "d"}, {4, "e"}}, *got)
	assert.Equal(t, 4, m.Index())
	assert.Equal(t, "e", m.SceneID())
	assert.Equal(t, float32(1), m.Progress())

	*got = nil
	for i := 0; i < 10; i++ {
		m.SetProgress(0.95)
		m.SetProgress(1)
	}
	assert.Empty(t, *got)
}

func TestStickyBackAndForth(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.IntN(8)
		ids := make([]string, n)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		m := NewMapper(ids...)
		got := record(m)

		var want []change
		prev := 0
		p := float32(0)
		for step := 0; step < 300; step++ {
			p = Clamp01(p + (rng.Float32()-0.5)*0.3)
			m.SetProgress(p)
			idx := Index(p, n)
			if idx != prev {
				want = append(want, change{idx, ids[idx]})
				prev = idx
			}
			require.Equal(t, idx, m.Index())
		}
		assert.Equal(t, want, *got, "trial %d", trial)
	}
}

func TestProgressListener(t *testing.T) {
	m := NewMapper("a", "b")
	var ps []float32
	m.OnProgress(func(p float32) { ps = append(ps, p) })
	m.SetProgress(0.25)
	m.SetProgress(0.25)
	m.SetProgress(2)
	m.Scroll(0, Geometry{Top: 100, Height: 1100, Viewport: 100})
	assert.Equal(t, []float32{0.25, 1, 0}, ps)
}

func TestStacked(t *testing.T) {
	m := NewMapper("a", "b", "c")
	got := record(m)
	assert.Equal(t, Stacked, m.SetViewportWidth(600))

	// global progress does not drive the index
	m.SetProgress(0.9)
	assert.Equal(t, 0, m.Index())
	assert.Empty(t, *got)

	m.SetItemVisibility(1, 0.3)
	assert.Empty(t, *got)
	m.SetItemVisibility(1, 0.6)
	m.SetItemVisibility(1, 0.8)
	m.SetItemVisibility(1, 1)
	assert.Equal(t, []change{{1, "b"}}, *got)

	// item 2 enters while item 1 is still visible
	m.SetItemVisibility(2, 0.5)
	// item 1 leaves and re-enters
	m.SetItemVisibility(1, 0.1)
	m.SetItemVisibility(1, 0.7)
	// item 0 enters while scrolling back up
	m.SetItemVisibility(0, 0.9)
	assert.Equal(t, []change{{1, "b"}, {2, "c"}, {1, "b"}, {0, "a"}}, *got)

	m.SetItemVisibility(-1, 1)
	m.SetItemVisibility(3, 1)
	assert.Len(t, *got, 4)
}

func TestScrollItems(t *testing.T) {
	m := NewMapper("a", "b", "c")
	m.SetRegime(Stacked)
	got := record(m)
	items := []Item{{Top: 0, Height: 800}, {Top: 800, Height: 800}, {Top: 1600, Height: 800}}
	for y := float32(0); y <= 1600; y += 100 {
		m.ScrollItems(y, 800, items)
	}
	assert.Equal(t, []change{{1, "b"}, {2, "c"}}, *got)
}

func TestRegimeSwitchDoesNotFire(t *testing.T) {
	m := NewMapper("a", "b", "c", "d")
	got := record(m)
	m.SetProgress(0.6)
	require.Equal(t, 2, m.Index())
	*got = nil

	assert.Equal(t, Stacked, m.SetViewportWidth(800))
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, Sticky, m.SetViewportWidth(1440))
	assert.Equal(t, 2, m.Index())
	assert.Empty(t, *got)

	// an item that stays visible does not trigger again
	m.SetRegime(Stacked)
	m.SetItemVisibility(2, 1)
	m.SetItemVisibility(2, 1)
	assert.Empty(t, *got)
}

func TestSwitchToStackedPicksMostVisible(t *testing.T) {
	m := NewMapper("a", "b", "c", "d")
	got := record(m)
	m.SetProgress(0.1)
	require.Equal(t, 0, m.Index())

	// visibility recorded while sticky only counts once stacked
	m.SetItemVisibility(1, 0.6)
	m.SetItemVisibility(2, 0.9)
	m.SetItemVisibility(3, 0.2)
	assert.Empty(t, *got)

	m.SetRegime(Stacked)
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, []change{{2, "c"}}, *got)
	m.SetRegime(Stacked)
	assert.Len(t, *got, 1)

	// nothing at the threshold keeps the index
	m.SetRegime(Sticky)
	for i := range 4 {
		m.SetItemVisibility(i, 0.1)
	}
	m.SetRegime(Stacked)
	assert.Equal(t, 2, m.Index())
	assert.Len(t, *got, 1)
}

func TestSelect(t *testing.T) {
	m := NewMapper("a", "b", "c")
	got := record(m)
	m.Select(2)
	m.Select(2)
	m.Select(99)
	m.Select(-3)
	assert.Equal(t, []change{{2, "c"}, {0, "a"}}, *got)

	empty := NewMapper()
	empty.Select(1)
	empty.SetProgress(0.5)
	assert.Equal(t, 0, empty.Index())
	assert.Equal(t, "", empty.SceneID())
}

func TestRegimesText(t *testing.T) {
	var r Regimes
	require.NoError(t, r.UnmarshalText([]byte("stacked")))
	assert.Equal(t, Stacked, r)
	b, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "stacked", string(b))
	assert.Error(t, r.SetString("diagonal"))
	assert.Equal(t, "7", Regimes(7).String())
}
