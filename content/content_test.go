// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/scrolly/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const residenceTOML = `
domain = "residence"
title = "Residence"

[[scenes]]
id = "overview"
title = "Overview"
body = "At a glance."

[[scenes]]
id = "parking"
title = "Parking"
body = "Below ground."
stats = [{ label = "Spaces", value = "180" }]
`

const residenceTR = `
domain = "residence"
title = "Site"

[[scenes]]
id = "overview"
title = "Genel bakış"
body = "Tek bakışta."
`

const villaYAML = `
domain: villa
title: Villa
scenes:
  - id: hero
    title: Hero
    body: Start.
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"tr/residence.toml": {Data: []byte(residenceTR)},
		"tr/villa.yml":      {Data: []byte(villaYAML)},
		"en/residence.toml": {Data: []byte(residenceTOML)},
		"en/README.md":      {Data: []byte("notes")},
		"assets/logo.png":   {Data: []byte{0x89}},
	}
}

func TestReadStory(t *testing.T) {
	s, err := ReadStory(strings.NewReader(residenceTOML), TOML)
	require.NoError(t, err)
	assert.Equal(t, "residence", s.Domain)
	assert.Equal(t, []string{"overview", "parking"}, s.Scenes.IDs())
	assert.Equal(t, "180", s.Scenes[1].Stats[0].Value)

	s, err = ReadStory(strings.NewReader(villaYAML), YAML)
	require.NoError(t, err)
	assert.Equal(t, "villa", s.Domain)

	_, err = ReadStory(strings.NewReader("domain = \"x\"\ncolour = \"red\"\n"), TOML)
	assert.Error(t, err)
	_, err = ReadStory(strings.NewReader("domain: x\ncolour: red\n"), YAML)
	assert.Error(t, err)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)
	f, err = FormatOf("b.yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatOf("b.json")
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	l, err := Open(testFS(), "tr")
	require.NoError(t, err)
	assert.Equal(t, language.Turkish, l.Default())
	assert.Equal(t, []language.Tag{language.Turkish, language.English}, l.Locales())

	_, err = Open(testFS(), "de")
	assert.Error(t, err)
	_, err = Open(testFS(), "not a locale!")
	assert.Error(t, err)
}

func TestMatch(t *testing.T) {
	l, err := Open(testFS(), "tr")
	require.NoError(t, err)
	assert.Equal(t, language.English, l.Match("en-GB"))
	assert.Equal(t, language.Turkish, l.Match("tr;q=0.9, en;q=0.8"))
	assert.Equal(t, language.Turkish, l.Match("de"))
	assert.Equal(t, language.Turkish, l.Match())
}

func TestLoadFallback(t *testing.T) {
	l, err := Open(testFS(), "tr")
	require.NoError(t, err)

	s, tag, err := l.Load(language.English, "residence")
	require.NoError(t, err)
	assert.Equal(t, language.English, tag)
	assert.Equal(t, "residence", s.Name)
	assert.Equal(t, "Residence", s.Title)

	// villa only exists in the default locale
	s, tag, err = l.Load(language.English, "villa")
	require.NoError(t, err)
	assert.Equal(t, language.Turkish, tag)
	assert.Equal(t, "villa", s.Domain)

	_, _, err = l.Load(language.English, "missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	names, err := l.Names(language.English)
	require.NoError(t, err)
	assert.Equal(t, []string{"residence", "villa"}, names)

	all, err := l.LoadAll(language.English)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Residence", all[0].Title)
}

func TestLoadInvalid(t *testing.T) {
	fsys := testFS()
	fsys["tr/broken.toml"] = &fstest.MapFile{Data: []byte("domain = \"residence\"\n")}
	l, err := Open(fsys, "tr")
	require.NoError(t, err)
	_, _, err = l.Load(language.Turkish, "broken")
	assert.ErrorContains(t, err, "tr/broken.toml")

	all, err := l.LoadAll(language.Turkish)
	assert.Error(t, err)
	assert.Len(t, all, 2)
}

func TestBuiltin(t *testing.T) {
	l, err := OpenBuiltin()
	require.NoError(t, err)
	reg := preset.Builtin()
	for _, tag := range l.Locales() {
		all, err := l.LoadAll(tag)
		require.NoError(t, err, tag.String())
		require.Len(t, all, 2)
		for _, s := range all {
			d := reg.Domain(s.Domain)
			require.NotNil(t, d, s.Domain)
			for _, id := range s.Scenes.IDs() {
				_, ok := d.Scenes[id]
				assert.True(t, ok, "%s: scene %q has no preset", s.Domain, id)
			}
		}
	}
	s, _, err := l.Load(language.English, "villa")
	require.NoError(t, err)
	assert.Equal(t, "SCENARIO 01", s.Scenes[0].Badge)
	s, _, err = l.Load(language.Turkish, "villa")
	require.NoError(t, err)
	assert.Equal(t, "SENARYO 01", s.Scenes[0].Badge)
}
