// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visual

//go:generate core generate

// Kinds are the renderer variants.
type Kinds int32 //enums:enum -transform lower

const (
	// Residence is the residential complex: a tower with parking,
	// perimeter and access gate, with drifting data points.
	Residence Kinds = iota

	// Villa is the smart villa: a single house with fence cameras,
	// with slowly rising fireflies.
	Villa
)

// style is the look of one kind.
type style struct {
	background string
	line       string
	particle   string

	// particles is the particle count at full quality.
	particles int

	// drift is the particle velocity in model units per second.
	drift float32
}

var styles = [KindsN]style{
	Residence: {background: "#070b16", line: "#94a3b8", particle: "#38bdf8", particles: 400, drift: 0.35},
	Villa:     {background: "#0c0a09", line: "#d6d3d1", particle: "#fde047", particles: 160, drift: 0.15},
}
