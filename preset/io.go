// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package preset

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/pelletier/go-toml/v2"
)

// Registry holds the domains available to a page, keyed by name.
type Registry map[string]*Domain

// Domain returns the domain with the given name, or nil.
func (r Registry) Domain(name string) *Domain {
	return r[name]
}

// Add adds the given domain, replacing any domain of the same name.
func (r Registry) Add(d *Domain) {
	r[d.Name] = d
}

// Names returns the sorted domain names.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// domainFile is the TOML representation of a [Domain]:
//
//	name = "tower"
//	default = "intro"
//
//	[[presets]]
//	id = "intro"
//	position = [0, 0, 12]
//	look-at = [0, 3, 0]
//	fov = 45
//	accent = "#F97316"
//
//	[scenes]
//	overview = "intro"
type domainFile struct {
	Name    string            `toml:"name"`
	Default string            `toml:"default"`
	Presets []presetFile      `toml:"presets"`
	Scenes  map[string]string `toml:"scenes"`
}

type presetFile struct {
	ID       string     `toml:"id"`
	Position [3]float32 `toml:"position"`
	LookAt   [3]float32 `toml:"look-at"`
	FOV      float32    `toml:"fov"`
	Accent   string     `toml:"accent"`
}

// ReadDomain reads a domain in TOML format from the given reader, and
// validates it.
func ReadDomain(r io.Reader) (*Domain, error) {
	var df domainFile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&df); err != nil {
		return nil, fmt.Errorf("preset.ReadDomain: %w", err)
	}
	d := NewDomain(df.Name, df.Default)
	for _, pf := range df.Presets {
		d.Add(Preset{
			ID:       pf.ID,
			Position: math32.Vec3(pf.Position[0], pf.Position[1], pf.Position[2]),
			LookAt:   math32.Vec3(pf.LookAt[0], pf.LookAt[1], pf.LookAt[2]),
			FOV:      pf.FOV,
		})
		if pf.Accent != "" {
			d.Accents[pf.ID] = pf.Accent
		}
	}
	for s, id := range df.Scenes {
		d.Map(id, s)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ReadDomainBytes reads a domain in TOML format from the given bytes.
func ReadDomainBytes(b []byte) (*Domain, error) {
	return ReadDomain(bytes.NewReader(b))
}

// OpenDomain reads a domain from the given TOML file.
func OpenDomain(filename string) (*Domain, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDomain(f)
}

// OpenDomainFS reads a domain from the given TOML file in the given
// filesystem.
func OpenDomainFS(fsys fs.FS, filename string) (*Domain, error) {
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDomain(f)
}

// OpenFiles adds the domains in the given TOML files to the registry.
// All files are attempted; the returned error joins any failures.
func (r Registry) OpenFiles(filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		d, err := OpenDomain(fn)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.Add(d)
	}
	return errors.Join(errs...)
}
