// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"io"
	"io/fs"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
)

// Wireframe is a line model: a set of vertices and the edges between them.
type Wireframe struct {

	// Name is the name of the model.
	Name string

	// Vertices are the model-space vertex positions.
	Vertices []math32.Vector3

	// Edges are pairs of indexes into Vertices.
	Edges [][2]int

	// Highlights are named groups of vertex indexes, such as the parts
	// of a building emphasized for a scene.
	Highlights map[string][]int
}

// wireframeFile is the YAML representation of a [Wireframe].
type wireframeFile struct {
	Name       string           `yaml:"name"`
	Vertices   [][3]float32     `yaml:"vertices"`
	Edges      [][2]int         `yaml:"edges"`
	Highlights map[string][]int `yaml:"highlights,omitempty"`
}

// Bounds returns the axis-aligned bounds of the vertices.
func (w *Wireframe) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, v := range w.Vertices {
		b.ExpandByPoint(v)
	}
	return b
}

// Validate checks that the model has vertices and that every edge and
// highlight refers to an existing vertex.
func (w *Wireframe) Validate() error {
	n := len(w.Vertices)
	if n == 0 {
		return Errorf(Model, w.Name, "wireframe has no vertices")
	}
	for i, e := range w.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return Errorf(Model, w.Name, "edge %d %v is out of range for %d vertices", i, e, n)
		}
	}
	for nm, hl := range w.Highlights {
		for _, vi := range hl {
			if vi < 0 || vi >= n {
				return Errorf(Model, w.Name, "highlight %q vertex %d is out of range", nm, vi)
			}
		}
	}
	return nil
}

// ReadWireframe reads a YAML wireframe model from the given reader.
// All failures are [*Error] values in the [Model] category.
func ReadWireframe(name string, r io.Reader) (*Wireframe, error) {
	var f wireframeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, &Error{Category: Model, Name: name, Err: err}
	}
	w := &Wireframe{Name: f.Name, Edges: f.Edges, Highlights: f.Highlights}
	if w.Name == "" {
		w.Name = name
	}
	w.Vertices = make([]math32.Vector3, len(f.Vertices))
	for i, v := range f.Vertices {
		w.Vertices[i] = math32.Vec3(v[0], v[1], v[2])
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// OpenWireframe reads the named YAML wireframe model from the given
// filesystem.
func OpenWireframe(fsys fs.FS, name string) (*Wireframe, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &Error{Category: Network, Name: name, Err: err}
	}
	defer f.Close()
	return ReadWireframe(name, f)
}
