// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

import (
	"bytes"
	"image"
	"io/fs"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/h2non/filetype"
)

// Image is a decoded texture image.
type Image struct {

	// Name is the name the texture was loaded from.
	Name string

	// MIME is the sniffed media type, such as image/webp.
	MIME string

	// Format is the decoded format.
	Format imagex.Formats

	// Image is the decoded image.
	Image image.Image
}

// ReadTexture sniffs and decodes the given texture bytes.
// png, jpeg, gif, tiff, bmp and webp are supported.
// All failures are [*Error] values in the [Texture] category.
func ReadTexture(name string, b []byte) (*Image, error) {
	if len(b) == 0 {
		return nil, Errorf(Texture, name, "empty texture data")
	}
	kind, err := filetype.Match(b)
	if err != nil {
		return nil, &Error{Category: Texture, Name: name, Err: err}
	}
	if !filetype.IsImage(b) {
		return nil, Errorf(Texture, name, "not an image (%s)", kind.MIME.Value)
	}
	img, f, err := imagex.Read(bytes.NewReader(b))
	if err != nil {
		return nil, &Error{Category: Texture, Name: name, Err: err}
	}
	return &Image{Name: name, MIME: kind.MIME.Value, Format: f, Image: img}, nil
}

// OpenTexture reads and decodes the named texture from the given
// filesystem. A failure to read the file is a [Network] error, as the
// filesystem stands in for a remote fetch.
func OpenTexture(fsys fs.FS, name string) (*Image, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &Error{Category: Network, Name: name, Err: err}
	}
	return ReadTexture(name, b)
}
