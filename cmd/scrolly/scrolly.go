// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scrolly shows scroll-synchronized 3D stories in a window, runs
// them headless in the terminal, and draws placeholder posters.
package main

import (
	"log/slog"

	"cogentcore.org/core/cli"
	"cogentcore.org/scrolly/lazy"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration of the scrolly command.
type Config struct {

	// Site is the site configuration file. If it is empty, the default
	// site configuration is used.
	Site string `flag:"s,site"`

	// Content overrides the content directory of the site.
	Content string

	// Locale overrides the locale of the site.
	Locale string

	// Width is the width of the viewport in CSS pixels.
	Width int `default:"1280"`

	// Height is the height of the viewport in CSS pixels.
	Height int `default:"800"`

	// PixelRatio is the device pixel ratio of the preview viewport.
	PixelRatio float32 `cmd:"preview" default:"1"`

	// ReducedMotion simulates a reduced motion preference.
	ReducedMotion bool

	// Hz is the tick rate of the preview.
	Hz int `cmd:"preview" default:"60"`

	// Speed is the auto-scroll speed of the preview in CSS pixels per second.
	Speed float32 `cmd:"preview" default:"600"`

	// Ticks stops the preview after the given number of ticks. If it is
	// 0, the preview runs until the end of the page.
	Ticks uint64 `cmd:"preview"`

	// Watch reloads the stories of the preview when they change.
	Watch bool `cmd:"preview" flag:"w,watch"`

	// Domain is the preset domain of the poster.
	Domain string `cmd:"poster" posarg:"0" required:"-" default:"residence"`

	// Image is an optional image shown behind the poster.
	Image string `cmd:"poster"`

	// Output is the file the poster is saved to.
	Output string `cmd:"poster" flag:"o,output" default:"poster.png"`
}

func main() { //types:skip
	lazy.SetLogger(slog.Default())
	opts := cli.DefaultOptions("scrolly", "Scrolly shows scroll-synchronized 3D stories.")
	cli.Run(opts, &Config{}, Run, Preview, Poster)
}
