// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the site configuration of a scrollytelling
// page: where its stories and presets come from, and the tuning of
// scrolling, visibility, camera smoothing and device classification.
package config

import (
	"fmt"
	"io/fs"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/cli"
	"cogentcore.org/scrolly/camera"
	"cogentcore.org/scrolly/capability"
	"cogentcore.org/scrolly/story"
)

// Site is the configuration of a scrollytelling page.
type Site struct {

	// Content is the directory of the stories, with one subdirectory per
	// locale. If it is empty, the builtin stories are used.
	Content string

	// Locale is the locale to show the stories in. If it is empty, the
	// locale of the operating system is used.
	Locale string

	// DefaultLocale is the locale stories fall back to. It must have a
	// directory in Content.
	DefaultLocale string `default:"tr"`

	// Stories are the names of the stories to show, in page order. If it
	// is empty, all stories are shown in name order.
	Stories []string

	// Presets are extra preset domain files, in TOML, added to the
	// builtin residence and villa domains.
	Presets []string

	// Breakpoint is the viewport width at and above which sections
	// switch scenes by scroll progress rather than by visible items.
	Breakpoint float32 `default:"1024"`

	// Margin is the distance, in CSS pixels, by which a renderer
	// container counts as visible before it enters the viewport.
	Margin float32 `default:"100"`

	// Threshold is the visible fraction of a renderer container at
	// which its renderer starts loading.
	Threshold float32 `default:"0.1"`

	// Damping is the time constant of the camera smoothing, as a
	// duration such as 250ms.
	Damping string `default:"250ms"`

	// SceneHeight is the scroll distance of each scene, in viewport
	// heights.
	SceneHeight float32 `default:"1"`

	// Capability holds the device classification thresholds.
	Capability capability.Thresholds
}

// Defaults returns a new site configuration with the default values.
func Defaults() *Site {
	s := &Site{}
	cli.SetFromDefaults(s)
	return s
}

// Open returns the site configuration in the given TOML file, with the
// default values for the settings it lacks.
func Open(filename string) (*Site, error) {
	s := Defaults()
	if err := tomlx.Open(s, filename); err != nil {
		return nil, err
	}
	return s, s.Validate()
}

// OpenFS is like [Open] for a file in the given filesystem.
func OpenFS(fsys fs.FS, filename string) (*Site, error) {
	s := Defaults()
	if err := tomlx.OpenFS(s, fsys, filename); err != nil {
		return nil, err
	}
	return s, s.Validate()
}

// Save saves the site configuration to the given TOML file.
func (s *Site) Save(filename string) error {
	return tomlx.Save(s, filename)
}

// DampingDuration returns the parsed [Site.Damping].
func (s *Site) DampingDuration() (time.Duration, error) {
	d, err := time.ParseDuration(s.Damping)
	if err != nil {
		return 0, fmt.Errorf("config: damping: %w", err)
	}
	return d, nil
}

// CameraDamping returns the camera damping for [Site.Damping].
func (s *Site) CameraDamping() (camera.Damping, error) {
	cd := camera.DefaultDamping()
	d, err := s.DampingDuration()
	if err != nil {
		return cd, err
	}
	cd.TimeConstant = d
	return cd, nil
}

// Validate checks the ranges of the settings.
func (s *Site) Validate() error {
	var errs []error
	if s.DefaultLocale == "" {
		errs = append(errs, errors.New("config: no default locale"))
	}
	if s.Breakpoint <= 0 {
		errs = append(errs, fmt.Errorf("config: breakpoint %g must be positive", s.Breakpoint))
	}
	if s.Margin < 0 {
		errs = append(errs, fmt.Errorf("config: margin %g must not be negative", s.Margin))
	}
	if s.Threshold < 0 || s.Threshold > 1 {
		errs = append(errs, fmt.Errorf("config: threshold %g must be in [0, 1]", s.Threshold))
	}
	if s.SceneHeight <= 0 {
		errs = append(errs, fmt.Errorf("config: scene height %g must be positive", s.SceneHeight))
	}
	if d, err := s.DampingDuration(); err != nil {
		errs = append(errs, err)
	} else if d <= 0 {
		errs = append(errs, fmt.Errorf("config: damping %v must be positive", d))
	}
	c := s.Capability
	if c.MobileWidth <= 0 || c.TabletWidth < c.MobileWidth {
		errs = append(errs, fmt.Errorf("config: capability widths %g and %g must be positive and ordered", c.MobileWidth, c.TabletWidth))
	}
	return errors.Join(errs...)
}

// Configure applies the settings to the given page. It must be called
// before sections and slots are added.
func (s *Site) Configure(p *story.Page) error {
	cd, err := s.CameraDamping()
	if err != nil {
		return err
	}
	p.Breakpoint = s.Breakpoint
	p.Margin, p.Threshold = s.Margin, s.Threshold
	p.Damping = cd
	return nil
}
