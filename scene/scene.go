// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the authored descriptors for the discrete
// narrative steps of a scroll-driven story.
package scene

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
)

// Stat is a label/value pair shown alongside a scene, such as
// "Response time" / "< 50 ms".
type Stat struct {
	Label string `toml:"label" yaml:"label"`
	Value string `toml:"value" yaml:"value"`
}

// Descriptor is one discrete narrative step of a story. Descriptors are
// constructed once when the page is built and are read-only afterwards.
type Descriptor struct {

	// ID identifies the scene; it is the key used by preset translation
	// tables, so it must be unique within a [List].
	ID string `toml:"id" yaml:"id"`

	// Badge is an optional short label shown above the title.
	Badge string `toml:"badge,omitempty" yaml:"badge,omitempty"`

	// Title is the headline of the scene.
	Title string `toml:"title" yaml:"title"`

	// Subtitle is an optional secondary headline.
	Subtitle string `toml:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// Body is the main text of the scene.
	Body string `toml:"body" yaml:"body"`

	// Stats are optional figures shown with the scene.
	Stats []Stat `toml:"stats,omitempty" yaml:"stats,omitempty"`

	// Accent is an optional hex color (#rrggbb) used to tint the
	// background and placeholder visuals while the scene is active.
	Accent string `toml:"accent,omitempty" yaml:"accent,omitempty"`
}

// List is an ordered sequence of scenes. The order defines the narrative
// and the discrete index of each scene.
type List []Descriptor

// Len returns the number of scenes.
func (ls List) Len() int { return len(ls) }

// IDs returns the scene ids in order.
func (ls List) IDs() []string {
	ids := make([]string, len(ls))
	for i := range ls {
		ids[i] = ls[i].ID
	}
	return ids
}

// ID returns the id of the scene at the given index, or "" if the index
// is out of range.
func (ls List) ID(idx int) string {
	if idx < 0 || idx >= len(ls) {
		return ""
	}
	return ls[idx].ID
}

// IndexOf returns the index of the scene with the given id, or -1.
func (ls List) IndexOf(id string) int {
	for i := range ls {
		if ls[i].ID == id {
			return i
		}
	}
	return -1
}

// Validate checks that the list is non-empty and that every scene has a
// unique non-empty id and a title.
func (ls List) Validate() error {
	if len(ls) == 0 {
		return errors.New("scene.List: no scenes")
	}
	var errs []error
	seen := make(map[string]int, len(ls))
	for i, d := range ls {
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("scene.List: scene %d has no id", i))
			continue
		}
		if j, ok := seen[d.ID]; ok {
			errs = append(errs, fmt.Errorf("scene.List: duplicate id %q at %d and %d", d.ID, j, i))
		}
		seen[d.ID] = i
		if d.Title == "" {
			errs = append(errs, fmt.Errorf("scene.List: scene %q has no title", d.ID))
		}
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy of the list, so that sections never share
// the stats slices of authored content.
func (ls List) Clone() List {
	if ls == nil {
		return nil
	}
	var cp List
	errors.Log(copier.CopyWithOption(&cp, &ls, copier.Option{DeepCopy: true}))
	// copier allocates empty slices for nil ones
	for i := range cp {
		if ls[i].Stats == nil {
			cp[i].Stats = nil
		}
	}
	return cp
}
