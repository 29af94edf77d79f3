// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/events"
	"cogentcore.org/scrolly/frame"
	"cogentcore.org/scrolly/lazy"
	"cogentcore.org/scrolly/placeholder"
	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
)

// Preview scrolls through the stories without a window, printing scene
// changes and renderer states to the terminal.
func Preview(c *Config) error {
	s, err := openSite(c)
	if err != nil {
		return err
	}
	sig := capability.DefaultSignals()
	sig.Width, sig.Height, sig.PixelRatio = float32(c.Width), float32(c.Height), c.PixelRatio
	sig.ReducedMotion = c.ReducedMotion
	st, err := newSite(s, sig)
	if err != nil {
		return err
	}
	pv := newPreviewer(st, c, termenv.NewOutput(os.Stdout))
	defer func() { pv.site.Close() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if c.Watch && s.Content != "" {
		reload, err := watch(ctx, s.Content)
		if err != nil {
			return err
		}
		pv.reload = reload
	}
	pv.header()
	err = frame.RunTicker(ctx, frame.TickerConfig{Hz: c.Hz, Ticks: c.Ticks}, pv.step)
	if errors.Is(err, errDone) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// errDone stops the preview at the end of the page.
var errDone = errors.New("end of page")

// previewer drives a site from a ticker.
type previewer struct {
	site   *site
	config *Config
	out    *termenv.Output
	reload <-chan struct{}

	scrollY float32
	scenes  []int
	states  []lazy.States
}

func newPreviewer(st *site, c *Config, out *termenv.Output) *previewer {
	pv := &previewer{site: st, config: c, out: out}
	pv.track()
	return pv
}

// track resets the recorded scene indexes and renderer states.
func (pv *previewer) track() {
	p := pv.site.Page
	pv.scenes = make([]int, len(p.Sections))
	for i, sec := range p.Sections {
		pv.scenes[i] = sec.Mapper.Index()
	}
	pv.states = make([]lazy.States, len(p.Slots))
	for i, sl := range p.Slots {
		pv.states[i] = sl.State()
		sl.OnError = pv.failed
	}
}

func (pv *previewer) header() {
	p := pv.site.Page
	accent := pv.out.Color(placeholder.DefaultAccent)
	fmt.Fprintln(pv.out, pv.out.String("scrolly preview").Bold().Foreground(accent))
	fmt.Fprintf(pv.out, "locale %s, %d stories, page height %.0f, profile %s\n",
		pv.site.Locale, len(pv.site.Stories), pv.site.Height(), p.Profile())
	for i, sec := range p.Sections {
		pv.scene(i, sec.Mapper.Index())
	}
}

func (pv *previewer) step(delta time.Duration) error {
	select {
	case <-pv.reload:
		if err := pv.rebuild(); err != nil {
			slog.Error("preview: reload failed", "err", err)
		}
	default:
	}
	p := pv.site.Page
	_, h := p.Viewport()
	end := pv.site.MaxScroll(h)
	pv.scrollY = min(pv.scrollY+pv.config.Speed*float32(delta.Seconds()), end)
	p.Send(events.NewScroll(pv.scrollY))
	p.Send(events.NewFrame(delta))
	p.ProcessEvents()

	for i, sec := range p.Sections {
		if idx := sec.Mapper.Index(); idx != pv.scenes[i] {
			pv.scenes[i] = idx
			pv.scene(i, idx)
		}
	}
	for i, sl := range p.Slots {
		if s := sl.State(); s != pv.states[i] {
			pv.states[i] = s
			pv.state(sl.Name, s)
		}
	}
	if logx.UserLevel <= slog.LevelDebug {
		slog.Debug("preview frame", "scroll", pv.scrollY, "delta", delta, "animations", p.Driver.Len())
	}
	if pv.scrollY >= end && !pv.loading() {
		fmt.Fprintln(pv.out, pv.out.String("end of page").Faint())
		return errDone
	}
	return nil
}

// loading returns whether any renderer is still loading.
func (pv *previewer) loading() bool {
	for _, s := range pv.states {
		if s == lazy.Loading {
			return true
		}
	}
	return false
}

func (pv *previewer) scene(sec, idx int) {
	s := pv.site.Page.Sections[sec]
	d := s.Scenes[idx]
	accent := d.Accent
	if accent == "" {
		accent = s.Domain.Accent(s.Domain.Translate(d.ID))
	}
	label := pv.out.String(fmt.Sprintf("%s %d/%d", s.Name, idx+1, s.Scenes.Len())).Foreground(pv.out.Color(accent)).Bold()
	fmt.Fprintf(pv.out, "%s %s  %s\n", label, d.Title, pv.out.String("→ "+s.Store.Get()).Faint())
}

func (pv *previewer) state(name string, s lazy.States) {
	c := "#94a3b8"
	switch s {
	case lazy.Mounted:
		c = "#22c55e"
	case lazy.Errored:
		c = "#ef4444"
	case lazy.Static:
		c = "#f59e0b"
	}
	fmt.Fprintf(pv.out, "  %s %s\n", name, pv.out.String(s.String()).Foreground(pv.out.Color(c)))
}

func (pv *previewer) failed(rec *lazy.Record) {
	fmt.Fprintf(pv.out, "  %s %s: %s\n", rec.Scene, pv.out.String(rec.Category.String()).Foreground(pv.out.Color("#ef4444")), rec.Message)
}

// rebuild replaces the page with one built from the current stories,
// keeping the scroll position and signals.
func (pv *previewer) rebuild() error {
	old := pv.site
	st, err := newSite(old.Config, old.Page.Profiler.Signals())
	if err != nil {
		return err
	}
	old.Close()
	pv.site = st
	_, h := st.Page.Viewport()
	pv.scrollY = min(pv.scrollY, st.MaxScroll(h))
	st.Page.Scroll(pv.scrollY)
	pv.track()
	fmt.Fprintln(pv.out, pv.out.String("reloaded").Italic())
	pv.header()
	return nil
}

// watch watches the given content directory and its locale directories,
// and signals on the returned channel when a story changes.
func watch(ctx context.Context, dir string) (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}
		return w.Add(path)
	})
	if err != nil {
		w.Close()
		return nil, err
	}
	reload := make(chan struct{}, 1)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				slog.Debug("preview: content changed", "file", ev.Name, "op", ev.Op.String())
				select {
				case reload <- struct{}{}:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return reload, nil
}
