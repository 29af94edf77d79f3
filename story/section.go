// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package story

import (
	"log/slog"

	"cogentcore.org/scrolly/preset"
	"cogentcore.org/scrolly/scene"
	"cogentcore.org/scrolly/scroll"
	"cogentcore.org/scrolly/viewpoint"
)

// Section is one scrollytelling container: an ordered list of scenes
// mapped from its scroll progress, bound to the store of a preset domain.
// Every change of its active scene is translated to a preset id and
// written to the store synchronously, so the next frame sees it.
type Section struct {

	// Name identifies the section.
	Name string

	// Scenes are the scenes in narrative order.
	Scenes scene.List

	// Domain translates scene ids to preset ids.
	Domain *preset.Domain

	// Store receives the translated preset ids.
	Store *viewpoint.Store

	// Mapper maps scroll samples to the active scene.
	Mapper *scroll.Mapper

	// Geometry is the layout of the container in the sticky regime.
	Geometry scroll.Geometry

	// Items are the layouts of the scene items in the stacked regime.
	Items []scroll.Item
}

// NewSection returns a new section for the given scenes, and writes the
// preset of the first scene to the store.
func NewSection(name string, scenes scene.List, d *preset.Domain, st *viewpoint.Store) *Section {
	s := &Section{Name: name, Scenes: scenes, Domain: d, Store: st}
	s.Mapper = scroll.NewMapper(scenes.IDs()...)
	s.Mapper.OnChange(func(idx int, sceneID string) {
		pid := d.Translate(sceneID)
		slog.Debug("scene change", "section", name, "index", idx, "scene", sceneID, "preset", pid)
		st.Set(pid)
	})
	st.Set(d.Translate(scenes.ID(0)))
	return s
}

// Scroll records a document scroll offset for the given viewport height.
func (s *Section) Scroll(scrollY, viewport float32) {
	g := s.Geometry
	g.Viewport = viewport
	s.Mapper.Scroll(scrollY, g)
	if len(s.Items) > 0 {
		s.Mapper.ScrollItems(scrollY, viewport, s.Items)
	}
}

// Resize selects the layout regime for the given viewport width.
func (s *Section) Resize(width float32) scroll.Regimes {
	return s.Mapper.SetViewportWidth(width)
}

// Select makes the scene at the given index active.
func (s *Section) Select(idx int) {
	s.Mapper.Select(idx)
}

// Current returns the active scene, or the zero descriptor if the
// section has no scenes.
func (s *Section) Current() scene.Descriptor {
	if s.Scenes.Len() == 0 {
		return scene.Descriptor{}
	}
	return s.Scenes[s.Mapper.Index()]
}
