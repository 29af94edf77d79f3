// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/scrolly/asset"
	"cogentcore.org/scrolly/placeholder"
	"cogentcore.org/scrolly/preset"
)

// Poster draws the placeholder poster of a preset domain and saves it
// as an image.
func Poster(c *Config) error {
	s, err := openSite(c)
	if err != nil {
		return err
	}
	reg := preset.Builtin()
	if err := reg.OpenFiles(s.Presets...); err != nil {
		return err
	}
	d := reg.Domain(c.Domain)
	if d == nil {
		return fmt.Errorf("unknown preset domain %q; have %v", c.Domain, reg.Names())
	}
	p := placeholder.NewPoster(d.Name, d.Accent(d.Default))
	p.Caption = d.Default
	if c.Image != "" {
		tx, err := asset.OpenTexture(os.DirFS(filepath.Dir(c.Image)), filepath.Base(c.Image))
		if err != nil {
			return err
		}
		slog.Debug("poster image", "file", c.Image, "type", tx.MIME)
		p.Image = tx.Image
	}
	img, err := p.Draw(c.Width, c.Height)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, c.Output); err != nil {
		return err
	}
	slog.Info("saved poster", "domain", d.Name, "file", c.Output)
	return nil
}
