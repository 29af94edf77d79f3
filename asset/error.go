// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asset loads the resources used by scene renderers, such as
// textures and wireframe models, returning classified errors.
package asset

import "fmt"

// Error is a classified asset failure.
type Error struct {

	// Category is the failure category.
	Category Categories

	// Name is the asset that failed, typically a file name.
	Name string

	// Err is the underlying error.
	Err error
}

// Errorf returns a new [*Error] with a formatted underlying error.
func Errorf(cat Categories, name, format string, args ...any) *Error {
	return &Error{Category: cat, Name: name, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Category, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrorCategory implements [Categorized].
func (e *Error) ErrorCategory() Categories { return e.Category }
