// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package visual provides the scene renderers: wireframe views of a
// residential complex and a smart villa whose camera follows the preset
// named by a viewpoint store.
package visual

import (
	"context"
	"embed"
	"image"
	"image/draw"
	"io/fs"
	"math/rand/v2"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/scrolly/asset"
	"cogentcore.org/scrolly/camera"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/frame"
	"cogentcore.org/scrolly/lazy"
	"cogentcore.org/scrolly/preset"
	"cogentcore.org/scrolly/viewpoint"
	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

//go:embed models/*.yaml
var models embed.FS

// Options configure a scene renderer.
type Options struct {

	// Width is the viewport width in CSS pixels, used to push the
	// camera back on narrow viewports.
	Width float32

	// PixelRatio is the device pixel ratio of the render target; the
	// renderer draws at PixelRatioCap/PixelRatio of the target size
	// when that is less than one.
	PixelRatio float32

	// Models is the filesystem the model is read from; nil means the
	// built-in models.
	Models fs.FS

	// Model is the model file name; empty means models/<kind>.yaml.
	Model string

	// Seed seeds the particle layout.
	Seed uint64

	// Damping is the camera smoothing; a zero TimeConstant and Factor
	// mean [camera.DefaultDamping].
	Damping camera.Damping
}

// Scene is a wireframe scene renderer. It implements [lazy.Renderer]
// and [lazy.Reconfigurer].
type Scene struct {
	Kind Kinds

	store   *viewpoint.Store
	domain  *preset.Domain
	opts    Options
	env     lazy.Env
	profile capability.Profile
	style   style

	model     *asset.Wireframe
	bounds    math32.Box3
	loop      *camera.Loop
	particles []math32.Vector3
	unsub     func()
}

// New returns a new unmounted scene renderer of the given kind whose
// camera follows the given store, resolved in the given domain.
func New(kind Kinds, st *viewpoint.Store, d *preset.Domain, opts Options, env lazy.Env) *Scene {
	if kind < 0 || kind >= KindsN {
		kind = Residence
	}
	return &Scene{Kind: kind, store: st, domain: d, opts: opts, env: env, profile: env.Profile, style: styles[kind]}
}

// Factory returns a [lazy.Factory] constructing scenes of the given kind.
func Factory(kind Kinds, st *viewpoint.Store, d *preset.Domain, opts Options) lazy.Factory {
	return func(env lazy.Env) (lazy.Renderer, error) {
		if st == nil || d == nil {
			return nil, errors.New("visual: scene needs a viewpoint store and a preset domain")
		}
		return New(kind, st, d, opts, env), nil
	}
}

// Mount loads the model and sets up the camera loop.
func (s *Scene) Mount(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fsys, name := s.opts.Models, s.opts.Model
	if fsys == nil {
		fsys = models
	}
	if name == "" {
		name = "models/" + s.Kind.String() + ".yaml"
	}
	m, err := asset.OpenWireframe(fsys, name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.model = m
	s.bounds = m.Bounds()
	s.loop = camera.NewLoop(s.store, s.domain)
	s.loop.Responsive = camera.NewResponsive(s.opts.Width)
	if s.opts.Damping.TimeConstant > 0 || s.opts.Damping.Factor > 0 {
		s.loop.Damping = s.opts.Damping
	}
	s.layoutParticles()
	s.unsub = s.store.Subscribe(func(string) {
		if s.env.Invalidate != nil {
			s.env.Invalidate()
		}
	})
	return nil
}

// Unmount stops following the store.
func (s *Scene) Unmount() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// Camera returns the live camera transform.
func (s *Scene) Camera() camera.Transform { return s.loop.Camera() }

// Loop returns the camera loop.
func (s *Scene) Loop() *camera.Loop { return s.loop }

// Particles returns the number of particles.
func (s *Scene) Particles() int { return len(s.particles) }

// SetViewportWidth updates the responsive camera for a resized viewport.
func (s *Scene) SetViewportWidth(width float32) {
	s.opts.Width = width
	if s.loop != nil {
		s.loop.Responsive.Width = width
	}
}

// Reconfigure applies a new quality profile.
func (s *Scene) Reconfigure(p capability.Profile) error {
	s.profile = p
	s.layoutParticles()
	return nil
}

// animated returns whether the particles move every frame.
func (s *Scene) animated() bool {
	return len(s.particles) > 0 && s.profile.FrameLoop == frame.Continuous
}

// Frame advances the camera and the particles.
func (s *Scene) Frame(delta time.Duration) (bool, error) {
	settled := s.loop.Frame(delta)
	if !s.animated() {
		return settled, nil
	}
	dy := s.style.drift * float32(delta.Seconds())
	h := s.bounds.Max.Y - s.bounds.Min.Y
	for i := range s.particles {
		p := &s.particles[i]
		p.Y += dy
		if p.Y > s.bounds.Max.Y {
			p.Y -= h
		}
	}
	return false, nil
}

func (s *Scene) layoutParticles() {
	n := int(float32(s.style.particles) * math32.Clamp(s.profile.ParticleScale, 0, 1))
	if s.model == nil || n == len(s.particles) {
		return
	}
	rng := rand.New(rand.NewPCG(s.opts.Seed, uint64(s.Kind)))
	b := s.bounds
	size := b.Max.Sub(b.Min)
	s.particles = make([]math32.Vector3, n)
	for i := range s.particles {
		s.particles[i] = math32.Vec3(
			b.Min.X+rng.Float32()*size.X,
			b.Min.Y+rng.Float32()*size.Y,
			b.Min.Z+rng.Float32()*size.Z,
		)
	}
}

// renderScale returns the fraction of the target resolution drawn.
func (s *Scene) renderScale() float32 {
	dpr := max(s.opts.PixelRatio, 1)
	limit := s.profile.PixelRatioCap
	if limit <= 0 || limit >= dpr {
		return 1
	}
	return limit / dpr
}

// Render draws the scene into dst.
func (s *Scene) Render(dst draw.Image) error {
	db := dst.Bounds()
	if db.Empty() {
		return nil
	}
	sc := s.renderScale()
	w := max(1, int(float32(db.Dx())*sc))
	h := max(1, int(float32(db.Dy())*sc))

	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.Hex(s.style.background))
	v := newView(s.loop.Camera(), w, h)
	lw := max(1, float64(h)/360)

	var errs []error
	id := s.loop.TargetID()
	hl := make(map[int]bool)
	for _, vi := range s.model.Highlights[id] {
		hl[vi] = true
	}
	stroke := func(highlighted bool) {
		for _, e := range s.model.Edges {
			if (hl[e[0]] && hl[e[1]]) != highlighted {
				continue
			}
			x0, y0, _, ok0 := v.project(s.model.Vertices[e[0]])
			x1, y1, _, ok1 := v.project(s.model.Vertices[e[1]])
			if ok0 && ok1 {
				dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
			}
		}
		errs = append(errs, dc.Stroke())
	}

	line := gg.Hex(s.style.line)
	dc.SetRGBA(line.R, line.G, line.B, 0.55)
	dc.SetLineWidth(lw)
	stroke(false)
	if len(hl) > 0 {
		dc.SetHexColor(s.accent(id))
		dc.SetLineWidth(lw * 2)
		stroke(true)
	}

	if len(s.particles) > 0 {
		pc := gg.Hex(s.style.particle)
		dc.SetRGBA(pc.R, pc.G, pc.B, 0.7)
		for _, p := range s.particles {
			if x, y, depth, ok := v.project(p); ok {
				dc.DrawCircle(float64(x), float64(y), max(0.5, lw*3/float64(depth)))
			}
		}
		errs = append(errs, dc.Fill())
	}

	img := dc.Image()
	if sc < 1 {
		xdraw.ApproxBiLinear.Scale(dst, db, img, img.Bounds(), draw.Src, nil)
	} else {
		draw.Draw(dst, db, img, image.Point{}, draw.Src)
	}
	return errors.Join(errs...)
}

func (s *Scene) accent(presetID string) string {
	if a := s.domain.Accent(presetID); a != "" {
		return a
	}
	return s.style.particle
}
