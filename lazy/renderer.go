// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lazy

import (
	"context"
	"image/draw"
	"time"

	"cogentcore.org/scrolly/capability"
)

// Renderer is a scene visual that may fail during construction or
// operation. Renderers are constructed by a [Factory] only after their
// container approaches the viewport.
type Renderer interface {

	// Mount loads everything the renderer needs. It runs on a background
	// goroutine and must not touch host state other than through the
	// [Env] it was constructed with. It should return promptly once ctx
	// is done.
	Mount(ctx context.Context) error

	// Frame advances the renderer by delta. It reports whether the
	// renderer has settled and needs no more frames until something
	// changes.
	Frame(delta time.Duration) (settled bool, err error)

	// Render draws the current state into dst.
	Render(dst draw.Image) error

	// Unmount releases the renderer. It is called at most once.
	Unmount()
}

// Reconfigurer is implemented by renderers that can apply a new
// capability profile without being reconstructed.
type Reconfigurer interface {
	Reconfigure(p capability.Profile) error
}

// Env is the environment a [Factory] constructs a renderer for.
type Env struct {

	// Scene is the label of the scene slot, used for diagnostics.
	Scene string

	// Profile is the capability profile at construction time.
	Profile capability.Profile

	// Invalidate requests a new frame. It must only be called from the
	// host goroutine, typically from a viewpoint store listener.
	Invalidate func()
}

// Factory constructs a renderer. It runs on a background goroutine and
// may fail or panic; both are contained by the [Wrapper].
type Factory func(env Env) (Renderer, error)

// Painter draws a static visual, such as a placeholder poster or a
// loading indicator. Painters never fail.
type Painter interface {
	Paint(dst draw.Image)
}

// PainterFunc is a function that implements [Painter].
type PainterFunc func(dst draw.Image)

func (f PainterFunc) Paint(dst draw.Image) { f(dst) }
