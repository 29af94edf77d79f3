// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"cogentcore.org/core/base/errors"
	"golang.org/x/text/language"
)

// Library is a tree of stories with one directory per locale:
//
//	en/residence.toml
//	tr/residence.toml
//	tr/villa.yaml
//
// Stories are looked up in the best matching locale, falling back to
// the default locale when the matched locale lacks a story.
type Library struct {
	fsys    fs.FS
	def     language.Tag
	tags    []language.Tag
	dirs    []string
	matcher language.Matcher
}

// Open opens the library in the given filesystem with the given default
// locale, which must have a directory.
func Open(fsys fs.FS, defaultLocale string) (*Library, error) {
	def, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("content: default locale: %w", err)
	}
	ents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	l := &Library{fsys: fsys, def: def}
	// the default locale goes first so that the matcher falls back to it
	defDir := ""
	for _, e := range ents {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		tag, err := language.Parse(e.Name())
		if err != nil {
			slog.Debug("content: skipping directory that is not a locale", "dir", e.Name())
			continue
		}
		if tag == def {
			defDir = e.Name()
			continue
		}
		l.tags = append(l.tags, tag)
		l.dirs = append(l.dirs, e.Name())
	}
	if defDir == "" {
		return nil, fmt.Errorf("content: no directory for default locale %q", defaultLocale)
	}
	l.tags = slices.Insert(l.tags, 0, def)
	l.dirs = slices.Insert(l.dirs, 0, defDir)
	l.matcher = language.NewMatcher(l.tags)
	return l, nil
}

// Default returns the default locale.
func (l *Library) Default() language.Tag { return l.def }

// Locales returns the available locales, default first.
func (l *Library) Locales() []language.Tag { return slices.Clone(l.tags) }

// Match returns the available locale best matching the given
// preferences, which may be tags like "en-GB" or Accept-Language
// values like "tr;q=0.9, en;q=0.8". It returns the default locale when
// nothing matches.
func (l *Library) Match(prefs ...string) language.Tag {
	_, idx := language.MatchStrings(l.matcher, prefs...)
	return l.tags[idx]
}

func (l *Library) dir(tag language.Tag) string {
	if i := slices.Index(l.tags, tag); i >= 0 {
		return l.dirs[i]
	}
	return l.dirs[0]
}

// Names returns the sorted story names available in the given locale,
// including those only available in the default locale.
func (l *Library) Names(locale language.Tag) ([]string, error) {
	var names []string
	for _, dir := range []string{l.dir(locale), l.dirs[0]} {
		ents, err := fs.ReadDir(l.fsys, dir)
		if err != nil {
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() {
				continue
			}
			ext := path.Ext(e.Name())
			if !slices.Contains(Extensions, strings.ToLower(ext)) {
				continue
			}
			nm := strings.TrimSuffix(e.Name(), ext)
			if !slices.Contains(names, nm) {
				names = append(names, nm)
			}
		}
	}
	slices.Sort(names)
	return names, nil
}

// Load loads and validates the named story for the given locale,
// falling back to the default locale if the locale has no such story.
// It returns the locale the story was found in.
func (l *Library) Load(locale language.Tag, name string) (*Story, language.Tag, error) {
	tried := []language.Tag{l.Match(locale.String())}
	if tried[0] != l.def {
		tried = append(tried, l.def)
	}
	for _, tag := range tried {
		s, err := l.loadFrom(l.dir(tag), name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, tag, err
		}
		return s, tag, nil
	}
	return nil, l.def, fmt.Errorf("content: story %q not found: %w", name, fs.ErrNotExist)
}

// LoadAll loads every story of the given locale, in name order.
func (l *Library) LoadAll(locale language.Tag) ([]*Story, error) {
	names, err := l.Names(locale)
	if err != nil {
		return nil, err
	}
	var stories []*Story
	var errs []error
	for _, nm := range names {
		s, _, err := l.Load(locale, nm)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		stories = append(stories, s)
	}
	return stories, errors.Join(errs...)
}

func (l *Library) loadFrom(dir, name string) (*Story, error) {
	for _, ext := range Extensions {
		fn := path.Join(dir, name+ext)
		f, err := l.fsys.Open(fn)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		format, _ := FormatOf(fn)
		s, err := ReadStory(f, format)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", fn, err)
		}
		s.Name = name
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("content: %s: %w", fn, err)
		}
		return s, nil
	}
	return nil, fs.ErrNotExist
}
