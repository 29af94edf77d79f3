// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package content

import (
	"embed"
	"io/fs"

	"cogentcore.org/core/base/errors"
)

//go:embed stories
var stories embed.FS

// DefaultLocale is the default locale of the builtin stories.
const DefaultLocale = "tr"

// Builtin returns the filesystem of the builtin stories.
func Builtin() fs.FS {
	return errors.Log1(fs.Sub(stories, "stories"))
}

// OpenBuiltin opens the builtin stories as a [Library].
func OpenBuiltin() (*Library, error) {
	return Open(Builtin(), DefaultLocale)
}
