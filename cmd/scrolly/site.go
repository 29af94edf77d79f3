// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/config"
	"cogentcore.org/scrolly/content"
	"cogentcore.org/scrolly/events"
	"cogentcore.org/scrolly/preset"
	"cogentcore.org/scrolly/scroll"
	"cogentcore.org/scrolly/story"
	"cogentcore.org/scrolly/visual"
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// site is a page built from the stories of a site configuration.
type site struct {
	Config  *config.Site
	Locale  language.Tag
	Stories []*content.Story
	Page    *story.Page

	// height is the height of the page.
	height float32
}

// openSite opens the site configuration of the given command config.
func openSite(c *Config) (*config.Site, error) {
	s := config.Defaults()
	if c.Site != "" {
		var err error
		s, err = config.Open(c.Site)
		if err != nil {
			return nil, err
		}
	}
	if c.Content != "" {
		s.Content = c.Content
	}
	if c.Locale != "" {
		s.Locale = c.Locale
	}
	return s, s.Validate()
}

// openLibrary opens the stories of the given site configuration.
func openLibrary(s *config.Site) (*content.Library, error) {
	if s.Content == "" {
		return content.OpenBuiltin()
	}
	return content.Open(os.DirFS(s.Content), s.DefaultLocale)
}

// matchLocale returns the locale of the library to show, preferring the
// configured locale over those of the operating system.
func matchLocale(s *config.Site, lib *content.Library) language.Tag {
	if s.Locale != "" {
		return lib.Match(s.Locale)
	}
	locs, err := locale.GetLocales()
	if err != nil {
		slog.Debug("no operating system locale", "err", err)
	}
	return lib.Match(locs...)
}

// kindOf returns the renderer kind for a preset domain.
func kindOf(d *preset.Domain) visual.Kinds {
	var k visual.Kinds
	if err := k.SetString(d.Name); err != nil {
		return visual.Residence
	}
	return k
}

// newSite builds a page for the stories of the given site configuration.
func newSite(s *config.Site, sig capability.Signals) (*site, error) {
	lib, err := openLibrary(s)
	if err != nil {
		return nil, err
	}
	reg := preset.Builtin()
	if err := reg.OpenFiles(s.Presets...); err != nil {
		return nil, err
	}
	st := &site{Config: s, Locale: matchLocale(s, lib)}
	if len(s.Stories) == 0 {
		st.Stories, err = lib.LoadAll(st.Locale)
		if err != nil {
			return nil, err
		}
	}
	for _, nm := range s.Stories {
		sty, _, err := lib.Load(st.Locale, nm)
		if err != nil {
			return nil, err
		}
		st.Stories = append(st.Stories, sty)
	}
	if len(st.Stories) == 0 {
		return nil, errors.New("no stories to show")
	}

	p := story.NewPageThresholds(sig, s.Capability)
	if err := s.Configure(p); err != nil {
		return nil, err
	}
	for _, sty := range st.Stories {
		d := reg.Domain(sty.Domain)
		if d == nil {
			p.Close()
			return nil, fmt.Errorf("story %q: unknown preset domain %q", sty.Name, sty.Domain)
		}
		p.AddSection(sty.Name, sty.Scenes.Clone(), d, scroll.Geometry{})
		p.AddVisual(sty.Name, kindOf(d), d, scroll.Item{}, visual.Options{})
	}
	st.Page = p
	st.layout(sig.Height)
	// layout changes with the viewport height, ahead of the page itself
	p.Listeners.Add(events.Resize, func(ev events.Event) {
		st.layout(ev.(*events.ResizeEvent).Height)
	})
	p.Scroll(0)
	return st, nil
}

// layout stacks the sections of the page for the given viewport height:
// each scene takes [config.Site.SceneHeight] viewports of scrolling, and
// the renderer of a section spans the whole section.
func (st *site) layout(viewport float32) {
	top := float32(0)
	step := st.Config.SceneHeight * viewport
	for i, sty := range st.Stories {
		n := float32(sty.Scenes.Len())
		h := n*step + viewport
		sec := st.Page.Sections[i]
		sec.Geometry = scroll.Geometry{Top: top, Height: h, Viewport: viewport}
		sec.Items = sec.Items[:0]
		for j := range sty.Scenes.Len() {
			sec.Items = append(sec.Items, scroll.Item{Top: top + float32(j)*step, Height: viewport})
		}
		st.Page.Slots[i].Item = scroll.Item{Top: top, Height: h}
		top += h
	}
	st.height = top
}

// Height returns the height of the page.
func (st *site) Height() float32 { return st.height }

// MaxScroll returns the largest scroll offset for the given viewport
// height.
func (st *site) MaxScroll(viewport float32) float32 {
	return max(st.height-viewport, 0)
}

// Active returns the index of the section under the middle of the
// viewport.
func (st *site) Active() int {
	_, h := st.Page.Viewport()
	mid := st.Page.ScrollY() + h/2
	for i, sec := range st.Page.Sections {
		g := sec.Geometry
		if mid < g.Top+g.Height {
			return i
		}
	}
	return len(st.Page.Sections) - 1
}

// Close closes the page.
func (st *site) Close() {
	st.Page.Close()
}
