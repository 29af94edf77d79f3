// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/scrolly/camera"
)

// nearPlane is the closest view-space depth that is drawn.
const nearPlane = 0.05

// view is a perspective projection of a camera transform onto an image.
type view struct {
	pos, right, up, fwd math32.Vector3

	// focal is the projection scale in pixels at unit depth.
	focal  float32
	cx, cy float32
}

func newView(t camera.Transform, width, height int) view {
	v := view{pos: t.Position, cx: float32(width) / 2, cy: float32(height) / 2}
	v.fwd = t.ViewDir()
	worldUp := math32.Vec3(0, 1, 0)
	v.right = v.fwd.Cross(worldUp)
	if v.right.Length() < 1e-6 {
		// looking straight up or down
		v.right = math32.Vec3(1, 0, 0)
	}
	v.right = v.right.Normal()
	v.up = v.right.Cross(v.fwd).Normal()
	fov := t.FOV
	if fov <= 0 {
		fov = camera.DefaultFOV
	}
	v.focal = v.cy / math32.Tan(math32.DegToRad(fov)/2)
	return v
}

// project returns the image position of the given world point, and
// false if it is behind the near plane.
func (v view) project(p math32.Vector3) (x, y, depth float32, ok bool) {
	d := p.Sub(v.pos)
	depth = d.Dot(v.fwd)
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	x = v.cx + d.Dot(v.right)*v.focal/depth
	y = v.cy - d.Dot(v.up)*v.focal/depth
	return x, y, depth, true
}
