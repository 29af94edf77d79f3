// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asset

//go:generate core generate

import (
	"strings"

	"cogentcore.org/core/base/errors"
)

// Categories classify renderer failures by their likely cause.
type Categories int32 //enums:enum -transform lower

const (
	// Unknown is any failure that matches no other category.
	Unknown Categories = iota

	// Context is a failure to create or keep a graphics context.
	Context

	// Texture is a failure to load or decode a texture, image or
	// environment map.
	Texture

	// Shader is a shader compile or link failure.
	Shader

	// Model is a failure to load or parse a model file.
	Model

	// Network is a failure to fetch a resource, including policy blocks.
	Network
)

// Categorized is implemented by errors that know their own category.
type Categorized interface {
	error
	ErrorCategory() Categories
}

// keywords are checked in order; the first match wins.
var keywords = []struct {
	cat   Categories
	words []string
}{
	{Context, []string{"webgl", "webgpu", "context", "adapter", "device lost"}},
	{Texture, []string{"hdr", "rgbe", "environment", "texture", "image"}},
	{Shader, []string{"shader", "glsl", "wgsl", "spir"}},
	{Model, []string{"gltf", "model", "draco", "mesh", "wireframe"}},
	{Network, []string{"csp", "security", "connect-src", "network", "fetch", "load", "http"}},
}

// Classify returns the category of the given error. An error in the
// chain implementing [Categorized] determines it; otherwise the message
// is matched against known keywords. A nil error is [Unknown].
func Classify(err error) Categories {
	if err == nil {
		return Unknown
	}
	var ce Categorized
	if errors.As(err, &ce) {
		return ce.ErrorCategory()
	}
	return ClassifyMessage(err.Error())
}

// ClassifyMessage returns the category for the given failure message.
func ClassifyMessage(msg string) Categories {
	msg = strings.ToLower(msg)
	for _, kw := range keywords {
		for _, w := range kw.words {
			if strings.Contains(msg, w) {
				return kw.cat
			}
		}
	}
	return Unknown
}
