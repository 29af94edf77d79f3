// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placeholder draws the static visuals shown in place of a scene
// renderer: the poster shown when rendering is forbidden or has failed,
// and the loading indicator shown while a renderer is constructed.
package placeholder

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"cogentcore.org/core/base/errors"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/clone"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

const (
	// DefaultAccent is the accent color used when none is given.
	DefaultAccent = "#3b82f6"

	// DefaultBackground is the background color used when none is given.
	DefaultBackground = "#0b1020"
)

// Poster is a static, non-interactive placeholder: a background gradient
// tinted by the accent color, a faint grid, a soft glow, a cube glyph and
// an optional label. It implements the lazy Painter interface.
type Poster struct {

	// Label is an optional scene or domain label drawn at the bottom.
	Label string

	// Caption is optional smaller text drawn under the label.
	Caption string

	// Accent is the accent color as hex.
	Accent string

	// Background is the background color as hex.
	Background string

	// Glow is the blur radius of the soft glow behind the glyph, in
	// pixels. Zero disables the glow.
	Glow float64

	// Image is an optional poster image, scaled to cover the poster
	// behind the glyph.
	Image image.Image

	// GridStep is the spacing of the grid lines in pixels; zero disables
	// the grid.
	GridStep float64
}

// NewPoster returns a new poster with the given label and accent and
// the default look.
func NewPoster(label, accent string) *Poster {
	return &Poster{Label: label, Accent: accent, Glow: 24, GridStep: 32}
}

func (p *Poster) accent() gg.RGBA {
	if p.Accent == "" {
		return gg.Hex(DefaultAccent)
	}
	return gg.Hex(p.Accent)
}

func (p *Poster) background() gg.RGBA {
	if p.Background == "" {
		return gg.Hex(DefaultBackground)
	}
	return gg.Hex(p.Background)
}

// mix returns a + (b-a)*t for each channel, keeping a's alpha.
func mix(a, b gg.RGBA, t float64) gg.RGBA {
	return gg.RGBA2(a.R+(b.R-a.R)*t, a.G+(b.G-a.G)*t, a.B+(b.B-a.B)*t, a.A)
}

// Draw draws the poster at the given size.
func (p *Poster) Draw(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("placeholder: poster size must be positive")
	}
	w, h := float64(width), float64(height)
	acc, bg := p.accent(), p.background()

	dc := gg.NewContext(width, height)
	defer dc.Close()
	var errs []error

	grad := gg.NewLinearGradientBrush(0, 0, w, h).
		AddColorStop(0, bg).
		AddColorStop(1, mix(bg, acc, 0.35))
	dc.SetFillBrush(grad)
	dc.DrawRectangle(0, 0, w, h)
	errs = append(errs, dc.Fill())

	if p.GridStep > 0 {
		dc.SetRGBA(acc.R, acc.G, acc.B, 0.12)
		dc.SetLineWidth(1)
		for x := p.GridStep; x < w; x += p.GridStep {
			dc.DrawLine(x, 0, x, h)
		}
		for y := p.GridStep; y < h; y += p.GridStep {
			dc.DrawLine(0, y, w, y)
		}
		errs = append(errs, dc.Stroke())
	}
	out := clone.AsRGBA(dc.Image())

	if p.Image != nil {
		coverScale(out, p.Image)
	}
	if p.Glow > 0 {
		draw.Draw(out, out.Bounds(), glow(width, height, acc, p.Glow), image.Point{}, draw.Over)
	}

	fg := gg.NewContextForImage(out)
	defer fg.Close()
	errs = append(errs, drawCube(fg, w/2, h*0.42, math.Min(w, h)*0.16, acc)...)
	errs = append(errs, drawLabels(fg, w, h, p.Label, p.Caption))
	return clone.AsRGBA(fg.Image()), errors.Join(errs...)
}

// Paint implements the lazy Painter interface by drawing the poster
// over the whole of dst. Drawing errors are logged.
func (p *Poster) Paint(dst draw.Image) {
	b := dst.Bounds()
	img, err := p.Draw(b.Dx(), b.Dy())
	if errors.Log(err) != nil && img == nil {
		return
	}
	draw.Draw(dst, b, img, image.Point{}, draw.Src)
}

// coverScale scales src to cover dst, cropping the overflow, and draws it
// over dst at half opacity.
func coverScale(dst *image.RGBA, src image.Image) {
	db, sb := dst.Bounds(), src.Bounds()
	if sb.Empty() {
		return
	}
	s := math.Max(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	cw, ch := int(float64(db.Dx())/s), int(float64(db.Dy())/s)
	x0 := sb.Min.X + (sb.Dx()-cw)/2
	y0 := sb.Min.Y + (sb.Dy()-ch)/2
	crop := image.Rect(x0, y0, x0+cw, y0+ch)
	scaled := image.NewRGBA(db)
	xdraw.CatmullRom.Scale(scaled, db, src, crop, xdraw.Src, nil)
	mask := image.NewUniform(color.Alpha{A: 128})
	draw.DrawMask(dst, db, scaled, db.Min, mask, image.Point{}, draw.Over)
}

// glow returns a blurred accent disc centered in an image of the given size.
func glow(width, height int, acc gg.RGBA, radius float64) *image.RGBA {
	dc := gg.NewContext(width, height)
	defer dc.Close()
	w, h := float64(width), float64(height)
	dc.SetRGBA(acc.R, acc.G, acc.B, 0.45)
	dc.DrawCircle(w/2, h*0.42, math.Min(w, h)*0.22)
	errors.Log(dc.Fill())
	return blur.Gaussian(dc.Image(), radius)
}

// drawCube draws an isometric wireframe cube glyph of the given size
// centered at (cx, cy).
func drawCube(dc *gg.Context, cx, cy, size float64, acc gg.RGBA) []error {
	dx := size * math.Cos(math.Pi/6)
	dy := size * 0.5
	top := [4][2]float64{{cx, cy - size}, {cx + dx, cy - size + dy}, {cx, cy - size + 2*dy}, {cx - dx, cy - size + dy}}
	var errs []error

	dc.SetRGBA(acc.R, acc.G, acc.B, 0.25)
	dc.MoveTo(top[0][0], top[0][1])
	for _, pt := range top[1:] {
		dc.LineTo(pt[0], pt[1])
	}
	dc.ClosePath()
	errs = append(errs, dc.Fill())

	dc.SetRGBA(1, 1, 1, 0.85)
	dc.SetLineWidth(math.Max(1, size/24))
	dc.MoveTo(top[0][0], top[0][1])
	for _, pt := range top[1:] {
		dc.LineTo(pt[0], pt[1])
	}
	dc.ClosePath()
	for _, pt := range top[1:] {
		dc.DrawLine(pt[0], pt[1], pt[0], pt[1]+size)
	}
	dc.DrawLine(top[1][0], top[1][1]+size, top[2][0], top[2][1]+size)
	dc.DrawLine(top[3][0], top[3][1]+size, top[2][0], top[2][1]+size)
	errs = append(errs, dc.Stroke())
	return errs
}

func drawLabels(dc *gg.Context, w, h float64, label, caption string) error {
	if label == "" && caption == "" {
		return nil
	}
	regular, bold := fonts()
	if bold == nil || regular == nil {
		return errors.New("placeholder: label fonts are not available")
	}
	size := math.Max(10, math.Min(w, h)/14)
	dc.SetRGBA(1, 1, 1, 0.92)
	if label != "" {
		dc.SetFont(bold.Face(size))
		dc.DrawStringAnchored(label, w/2, h*0.78, 0.5, 0.5)
	}
	if caption != "" {
		dc.SetRGBA(1, 1, 1, 0.6)
		dc.SetFont(regular.Face(size * 0.6))
		dc.DrawStringAnchored(caption, w/2, h*0.78+size*1.2, 0.5, 0.5)
	}
	return nil
}
