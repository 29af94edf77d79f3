// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placeholder

import (
	"image"
	"image/draw"
	"math"
	"time"

	"cogentcore.org/core/base/errors"
	"github.com/gogpu/gg"
)

// Loader is the loading indicator shown while a renderer is constructed:
// a dimmed background with a rotating accent arc. It is distinct from
// the failure [Poster].
type Loader struct {

	// Accent is the arc color as hex.
	Accent string

	// Background is the background color as hex.
	Background string

	// Label is optional text drawn under the arc.
	Label string

	// Period is the time of one full rotation.
	Period time.Duration

	// phase is the rotation in [0, 1).
	phase float64
}

// NewLoader returns a new loader with the given accent.
func NewLoader(accent string) *Loader {
	return &Loader{Accent: accent, Label: "Loading", Period: 1200 * time.Millisecond}
}

// Phase returns the rotation in [0, 1).
func (l *Loader) Phase() float64 { return l.phase }

// Advance rotates the arc by the given elapsed time.
func (l *Loader) Advance(delta time.Duration) {
	if l.Period <= 0 {
		return
	}
	l.phase = math.Mod(l.phase+float64(delta)/float64(l.Period), 1)
}

// Draw draws the loader at the given size.
func (l *Loader) Draw(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("placeholder: loader size must be positive")
	}
	w, h := float64(width), float64(height)
	acc := gg.Hex(DefaultAccent)
	if l.Accent != "" {
		acc = gg.Hex(l.Accent)
	}
	bg := gg.Hex(DefaultBackground)
	if l.Background != "" {
		bg = gg.Hex(l.Background)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(bg)

	r := math.Min(w, h) * 0.08
	cx, cy := w/2, h/2
	dc.SetLineWidth(math.Max(2, r/5))
	dc.SetRGBA(1, 1, 1, 0.12)
	dc.DrawCircle(cx, cy, r)
	errs := []error{dc.Stroke()}

	a0 := 2*math.Pi*l.phase - math.Pi/2
	dc.SetFillBrush(gg.Solid(acc))
	dc.DrawArc(cx, cy, r, a0, a0+math.Pi/2)
	errs = append(errs, dc.Stroke())
	errs = append(errs, drawLabels(dc, w, h, "", l.Label))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return img, errors.Join(errs...)
}

// Paint implements the lazy Painter interface.
func (l *Loader) Paint(dst draw.Image) {
	b := dst.Bounds()
	img, err := l.Draw(b.Dx(), b.Dy())
	if errors.Log(err) != nil && img == nil {
		return
	}
	draw.Draw(dst, b, img, image.Point{}, draw.Src)
}
