// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placeholder

import (
	"sync"

	"cogentcore.org/core/base/errors"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce    sync.Once
	regularFont *text.FontSource
	boldFont    *text.FontSource
)

// fonts returns the label fonts, which are nil if they failed to parse.
func fonts() (regular, bold *text.FontSource) {
	fontOnce.Do(func() {
		regularFont = errors.Log1(text.NewFontSource(goregular.TTF))
		boldFont = errors.Log1(text.NewFontSource(gobold.TTF))
	})
	return regularFont, boldFont
}
