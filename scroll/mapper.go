// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scroll converts the scroll position of a story container into
// a discrete active scene and a continuous progress ratio.
package scroll

// ChangeFunc is called with the new active index and scene id after the
// active scene of a [Mapper] changes.
type ChangeFunc func(index int, sceneID string)

// ProgressFunc is called with the new progress ratio after it changes.
type ProgressFunc func(progress float32)

// State is the scroll progress state of a [Mapper].
type State struct {

	// Progress is the scroll progress of the container, in [0, 1].
	Progress float32

	// Index is the active scene index, in [0, N-1].
	Index int
}

// Mapper converts scroll samples of one container into the active scene
// of an ordered list of scenes. It calls its change functions exactly once
// for every change of the active index, and never while only the progress
// moves. Mappers are driven from the host's event goroutine and are not
// safe for concurrent use.
//
// In the [Sticky] regime the active index is floor(progress*N) clamped
// to N-1. In the [Stacked] regime the index is driven by each item's own
// visibility: an item becomes active when its visible ratio rises to
// [Mapper.Threshold]. Progress is tracked in both regimes so that a
// progress indicator keeps working.
type Mapper struct {

	// Threshold is the visible ratio at which a stacked item becomes
	// active. It defaults to 0.5.
	Threshold float32

	// Breakpoint is the viewport width at and above which the Sticky
	// regime is used by [Mapper.SetViewportWidth].
	// It defaults to [DefaultBreakpoint].
	Breakpoint float32

	ids    []string
	regime Regimes
	state  State

	// ratios are the last visible ratios of the items. Only upward
	// crossings of the threshold trigger.
	ratios []float32

	onChange   []ChangeFunc
	onProgress []ProgressFunc
}

// NewMapper returns a new mapper for the given ordered scene ids, starting
// at index 0 and progress 0 in the Sticky regime.
func NewMapper(ids ...string) *Mapper {
	return &Mapper{
		Threshold:  0.5,
		Breakpoint: DefaultBreakpoint,
		ids:        ids,
		ratios:     make([]float32, len(ids)),
	}
}

// OnChange adds a function called on every change of the active scene.
func (m *Mapper) OnChange(f ChangeFunc) *Mapper {
	m.onChange = append(m.onChange, f)
	return m
}

// OnProgress adds a function called on every change of the progress ratio.
func (m *Mapper) OnProgress(f ProgressFunc) *Mapper {
	m.onProgress = append(m.onProgress, f)
	return m
}

// Len returns the number of scenes.
func (m *Mapper) Len() int { return len(m.ids) }

// State returns the current scroll progress state.
func (m *Mapper) State() State { return m.state }

// Index returns the active scene index.
func (m *Mapper) Index() int { return m.state.Index }

// Progress returns the current progress ratio.
func (m *Mapper) Progress() float32 { return m.state.Progress }

// SceneID returns the id of the active scene, or "" if there are no scenes.
func (m *Mapper) SceneID() string {
	if len(m.ids) == 0 {
		return ""
	}
	return m.ids[m.state.Index]
}

// Regime returns the current layout regime.
func (m *Mapper) Regime() Regimes { return m.regime }

// SetRegime sets the layout regime. Switching to [Stacked] activates the
// most visible item at or above the threshold, if any. Switching to
// [Sticky] keeps the active index until the next progress sample.
func (m *Mapper) SetRegime(r Regimes) {
	if r == m.regime {
		return
	}
	m.regime = r
	if r != Stacked {
		return
	}
	if idx := m.mostVisible(); idx >= 0 {
		m.setIndex(idx)
	}
}

// mostVisible returns the index of the item with the highest visible
// ratio at or above the threshold, or -1 if there is none. Ties go to
// the first item.
func (m *Mapper) mostVisible() int {
	idx := -1
	for i, r := range m.ratios {
		if r >= m.Threshold && (idx < 0 || r > m.ratios[idx]) {
			idx = i
		}
	}
	return idx
}

// SetViewportWidth sets the regime from the given viewport width and
// [Mapper.Breakpoint], and returns the resulting regime.
func (m *Mapper) SetViewportWidth(width float32) Regimes {
	m.SetRegime(RegimeFor(width, m.Breakpoint))
	return m.regime
}

// SetProgress records a progress sample. In the Sticky regime this also
// derives the active index, firing the change functions if it changed.
func (m *Mapper) SetProgress(progress float32) {
	progress = Clamp01(progress)
	if progress != m.state.Progress {
		m.state.Progress = progress
		for _, f := range m.onProgress {
			f(progress)
		}
	}
	if m.regime == Sticky {
		m.setIndex(Index(progress, len(m.ids)))
	}
}

// Scroll records a document scroll offset for a container with the
// given geometry; see [Geometry.Progress].
func (m *Mapper) Scroll(scrollY float32, g Geometry) {
	m.SetProgress(g.Progress(scrollY))
}

// SetItemVisibility records the visible ratio of the item at the given
// index. In the Stacked regime, an item whose ratio rises to the threshold
// becomes the active scene. Visibility is tracked in every regime, but
// only triggers in the Stacked regime.
func (m *Mapper) SetItemVisibility(idx int, ratio float32) {
	if idx < 0 || idx >= len(m.ids) {
		return
	}
	entered := ratio >= m.Threshold && m.ratios[idx] < m.Threshold
	m.ratios[idx] = ratio
	if entered && m.regime == Stacked {
		m.setIndex(idx)
	}
}

// ScrollItems records the visibility of each of the given stacked items
// for the given document scroll offset and viewport height, in item order.
func (m *Mapper) ScrollItems(scrollY, viewport float32, items []Item) {
	for i, it := range items {
		m.SetItemVisibility(i, it.VisibleRatio(scrollY, viewport))
	}
}

// Select makes the scene at the given index active, as when the user
// picks a step in a step indicator. The index is clamped to the valid range.
func (m *Mapper) Select(idx int) {
	if len(m.ids) == 0 {
		return
	}
	m.setIndex(min(max(idx, 0), len(m.ids)-1))
}

// setIndex sets the active index, calling the change functions only
// when it actually changes.
func (m *Mapper) setIndex(idx int) {
	if idx == m.state.Index || len(m.ids) == 0 {
		return
	}
	m.state.Index = idx
	id := m.ids[idx]
	for _, f := range m.onChange {
		f(idx, id)
	}
}
