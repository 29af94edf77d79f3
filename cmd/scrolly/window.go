// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"strings"
	"time"

	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/events"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelStep is the scroll distance of one mouse wheel notch.
const wheelStep = 60

// Run shows the stories in a window. Scroll with the mouse wheel or the
// arrow and page keys; number keys jump to a scene of the active section.
func Run(c *Config) error { //cli:cmd -root
	s, err := openSite(c)
	if err != nil {
		return err
	}
	sig := capability.DefaultSignals()
	sig.Width, sig.Height = float32(c.Width), float32(c.Height)
	sig.PixelRatio = deviceScale()
	sig.ReducedMotion = c.ReducedMotion
	st, err := newSite(s, sig)
	if err != nil {
		return err
	}
	defer st.Close()

	w := &window{site: st, width: c.Width, height: c.Height, last: time.Now()}
	ebiten.SetWindowTitle("scrolly")
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(w)
}

// window hosts a page in an ebiten window.
type window struct {
	site *site

	width, height int
	focused       bool
	scrollY       float32
	last          time.Time

	img    *image.RGBA
	canvas *ebiten.Image
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	p := w.site.Page
	if f := ebiten.IsFocused(); f != w.focused {
		w.focused = f
		p.Send(events.NewVisibility(!f))
	}

	dy := float32(0)
	_, wy := ebiten.Wheel()
	dy -= float32(wy) * wheelStep
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		dy += wheelStep
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		dy -= wheelStep
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		dy += float32(w.height)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		dy -= float32(w.height)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		dy = -w.scrollY
	}
	if dy != 0 {
		w.scrollY = min(max(w.scrollY+dy, 0), w.site.MaxScroll(float32(w.height)))
		p.Send(events.NewScroll(w.scrollY))
	}
	for i := range 9 {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			p.Sections[w.site.Active()].Select(i)
		}
	}

	p.ProcessEvents()
	now := time.Now()
	p.Frame(now.Sub(w.last))
	w.last = now
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	sz := screen.Bounds().Size()
	if w.img == nil || w.img.Bounds().Size() != sz {
		w.img = image.NewRGBA(image.Rectangle{Max: sz})
		if w.canvas != nil {
			w.canvas.Deallocate()
		}
		w.canvas = ebiten.NewImage(sz.X, sz.Y)
	}
	idx := w.site.Active()
	w.site.Page.Render(idx, w.img)
	w.canvas.WritePixels(w.img.Pix)
	screen.DrawImage(w.canvas, nil)
	ebitenutil.DebugPrintAt(screen, w.caption(idx), 16, 16)
}

// caption returns the text of the active scene of the given section.
func (w *window) caption(idx int) string {
	sec := w.site.Page.Sections[idx]
	d := sec.Current()
	var b strings.Builder
	if d.Badge != "" {
		b.WriteString(d.Badge + "\n")
	}
	b.WriteString(d.Title + "\n")
	if d.Subtitle != "" {
		b.WriteString(d.Subtitle + "\n")
	}
	b.WriteString("\n" + d.Body + "\n")
	for _, s := range d.Stats {
		fmt.Fprintf(&b, "\n%s: %s", s.Label, s.Value)
	}
	fmt.Fprintf(&b, "\n\n%d/%d  %s", sec.Mapper.Index()+1, sec.Scenes.Len(), w.site.Page.Profile())
	return b.String()
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.site.Page.Send(events.NewResize(float32(outsideWidth), float32(outsideHeight), deviceScale()))
	}
	return outsideWidth, outsideHeight
}

// deviceScale returns the device scale factor of the current monitor.
func deviceScale() float32 {
	if m := ebiten.Monitor(); m != nil {
		return float32(m.DeviceScaleFactor())
	}
	return 1
}
