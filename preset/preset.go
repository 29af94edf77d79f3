// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preset provides named camera viewpoints for each visualization
// domain, and the tables that translate scene ids into those viewpoints.
package preset

import (
	"fmt"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Preset is a named camera transform that a renderer can target.
type Preset struct {

	// ID is the name of the preset within its [Domain].
	ID string

	// Position is the camera position.
	Position math32.Vector3

	// LookAt is the point the camera is oriented toward.
	LookAt math32.Vector3

	// FOV is the vertical field of view in degrees.
	// Zero means the renderer keeps its current field of view.
	FOV float32
}

// Domain is the fixed preset registry of one visualization domain
// (for example "residence" or "villa"). A Domain is built once and
// treated as immutable afterwards; all of its lookups are pure.
type Domain struct {

	// Name is the name of the domain, which also names its viewpoint store.
	Name string

	// Default is the id of the preset used for any scene or preset id
	// that is not in the tables. It must be defined in Presets.
	Default string

	// Presets are the camera presets keyed by preset id.
	Presets map[string]Preset

	// Scenes translates scene ids into preset ids.
	Scenes map[string]string

	// Accents are optional hex colors keyed by preset id.
	Accents map[string]string
}

// NewDomain returns a new empty domain with the given name and default
// preset id. Presets and scene mappings are added with [Domain.Add] and
// [Domain.Map].
func NewDomain(name, def string) *Domain {
	return &Domain{
		Name:    name,
		Default: def,
		Presets: map[string]Preset{},
		Scenes:  map[string]string{},
		Accents: map[string]string{},
	}
}

// Add adds the given preset, keyed by its id. It returns the domain
// so calls can be chained while building a table.
func (d *Domain) Add(p Preset) *Domain {
	d.Presets[p.ID] = p
	return d
}

// Map maps the given scene ids to the given preset id.
func (d *Domain) Map(presetID string, sceneIDs ...string) *Domain {
	for _, s := range sceneIDs {
		d.Scenes[s] = presetID
	}
	return d
}

// Translate returns the preset id for the given scene id. Scene ids that
// are not in the table, or that map to an undefined preset, translate to
// the default preset id. It never returns "" for a valid domain.
func (d *Domain) Translate(sceneID string) string {
	if id, ok := d.Scenes[sceneID]; ok {
		if _, ok := d.Presets[id]; ok {
			return id
		}
	}
	return d.Default
}

// Resolve returns the preset with the given id, falling back to the
// default preset for unknown ids.
func (d *Domain) Resolve(presetID string) Preset {
	if p, ok := d.Presets[presetID]; ok {
		return p
	}
	return d.Presets[d.Default]
}

// ForScene is shorthand for Resolve(Translate(sceneID)).
func (d *Domain) ForScene(sceneID string) Preset {
	return d.Resolve(d.Translate(sceneID))
}

// Accent returns the accent color for the given preset id, or the
// accent of the default preset, or "".
func (d *Domain) Accent(presetID string) string {
	if c, ok := d.Accents[presetID]; ok {
		return c
	}
	return d.Accents[d.Default]
}

// IDs returns the sorted preset ids.
func (d *Domain) IDs() []string {
	ids := make([]string, 0, len(d.Presets))
	for id := range d.Presets {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Validate checks that the domain is named, that its default preset is
// defined, and that every scene mapping names a defined preset.
func (d *Domain) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("preset.Domain: no name"))
	}
	if _, ok := d.Presets[d.Default]; !ok {
		errs = append(errs, fmt.Errorf("preset.Domain %q: default preset %q is not defined", d.Name, d.Default))
	}
	for id, p := range d.Presets {
		if id != p.ID {
			errs = append(errs, fmt.Errorf("preset.Domain %q: preset key %q does not match id %q", d.Name, id, p.ID))
		}
	}
	for s, id := range d.Scenes {
		if _, ok := d.Presets[id]; !ok {
			errs = append(errs, fmt.Errorf("preset.Domain %q: scene %q maps to undefined preset %q", d.Name, s, id))
		}
	}
	return errors.Join(errs...)
}
