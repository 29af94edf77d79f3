// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

import "cogentcore.org/core/math32"

// Names of the built-in domains.
const (
	ResidenceName = "residence"
	VillaName     = "villa"
)

// NewResidence returns the preset table for the residence building
// visualization, which tours from the building overview through its
// infrastructure down to the management dashboard.
func NewResidence() *Domain {
	d := NewDomain(ResidenceName, "intro")
	d.Add(Preset{ID: "intro", Position: math32.Vec3(0, 0, 12), LookAt: math32.Vec3(0, 3, 0), FOV: 45}).
		Add(Preset{ID: "infrastructure", Position: math32.Vec3(4, -1, 9), LookAt: math32.Vec3(0, -1.2, 0.5), FOV: 45}).
		Add(Preset{ID: "security", Position: math32.Vec3(6, 2, 6), LookAt: math32.Vec3(1.5, -0.3, 0), FOV: 40}).
		Add(Preset{ID: "smartliving", Position: math32.Vec3(-3, 4, 9), LookAt: math32.Vec3(0, 3, 0), FOV: 45}).
		Add(Preset{ID: "platform", Position: math32.Vec3(3, 5, 10), LookAt: math32.Vec3(0, 3, 0), FOV: 45}).
		Add(Preset{ID: "mobile", Position: math32.Vec3(-4, 2, 8), LookAt: math32.Vec3(-1, 3, 0), FOV: 40}).
		Add(Preset{ID: "access", Position: math32.Vec3(0, 3, 9), LookAt: math32.Vec3(0, 0, 0), FOV: 45}).
		Add(Preset{ID: "dashboard", Position: math32.Vec3(0, 0, 7), LookAt: math32.Vec3(0, 3.5, 0), FOV: 50})

	d.Map("intro", "intro", "overview", "macro").
		Map("infrastructure", "infrastructure", "parking").
		Map("security", "security", "perimeter").
		Map("smartliving", "smartliving", "smart-living", "apartments").
		Map("platform", "platform").
		Map("mobile", "mobile", "app").
		Map("access", "access").
		Map("dashboard", "dashboard", "management")

	d.Accents = map[string]string{
		"intro":          "#F97316",
		"infrastructure": "#64748B",
		"security":       "#EF4444",
		"smartliving":    "#FCD34D",
		"platform":       "#8B5CF6",
		"mobile":         "#06B6D4",
		"access":         "#22C55E",
		"dashboard":      "#3B82F6",
	}
	return d
}

// NewVilla returns the preset table for the smart villa visualization.
// All villa viewpoints orbit the house and look at its center.
func NewVilla() *Domain {
	center := math32.Vec3(0, 0.5, 0)
	d := NewDomain(VillaName, "intro")
	d.Add(Preset{ID: "intro", Position: math32.Vec3(5, 4, 5), LookAt: center, FOV: 45}).
		Add(Preset{ID: "lighting", Position: math32.Vec3(3, 2, 4), LookAt: center, FOV: 45}).
		Add(Preset{ID: "climate", Position: math32.Vec3(4, 3, 3), LookAt: center, FOV: 45}).
		Add(Preset{ID: "security", Position: math32.Vec3(2, 5, 4), LookAt: center, FOV: 45}).
		Add(Preset{ID: "integrated", Position: math32.Vec3(4, 3, 4), LookAt: center, FOV: 45})

	d.Map("intro", "intro", "overview", "hero").
		Map("lighting", "lighting", "morning").
		Map("climate", "climate", "energy", "comfort").
		Map("security", "security").
		Map("integrated", "integrated", "all-systems")

	d.Accents = map[string]string{
		"intro":      "#F97316",
		"lighting":   "#FCD34D",
		"climate":    "#60A5FA",
		"security":   "#EF4444",
		"integrated": "#10B981",
	}
	return d
}

// Builtin returns a new [Registry] holding the built-in domains.
func Builtin() Registry {
	return Registry{
		ResidenceName: NewResidence(),
		VillaName:     NewVilla(),
	}
}
