// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package content loads the stories of a page: ordered scene lists in
// TOML or YAML files, one directory per locale, with fallback to a
// default locale.
package content

import (
	"fmt"
	"io"
	"path"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scrolly/scene"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Story is one scrollytelling section: a title and its scenes, and the
// preset domain its camera lives in.
type Story struct {

	// Name is the file name the story was loaded from, without extension.
	Name string `toml:"-" yaml:"-"`

	// Domain is the preset domain of the story, such as residence.
	Domain string `toml:"domain" yaml:"domain"`

	// Title is the title of the section.
	Title string `toml:"title" yaml:"title"`

	// Scenes are the scenes in narrative order.
	Scenes scene.List `toml:"scenes" yaml:"scenes"`
}

// Validate checks that the story names a domain and has valid scenes.
func (s *Story) Validate() error {
	var errs []error
	if s.Domain == "" {
		errs = append(errs, fmt.Errorf("story %q has no domain", s.Name))
	}
	if err := s.Scenes.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("story %q: %w", s.Name, err))
	}
	return errors.Join(errs...)
}

// Formats are the supported story file formats.
type Formats int32

const (
	TOML Formats = iota
	YAML
)

// Extensions are the recognized file extensions in lookup order.
var Extensions = []string{".toml", ".yaml", ".yml"}

// FormatOf returns the format for the given file name.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("content: unsupported story file %q", filename)
}

// ReadStory reads and validates a story in the given format. Unknown
// fields are rejected.
func ReadStory(r io.Reader, f Formats) (*Story, error) {
	s := &Story{}
	switch f {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, err
		}
	default:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}
