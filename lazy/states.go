// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lazy

//go:generate core generate

// States are the states of a [Wrapper].
type States int32 //enums:enum -transform lower

const (
	// Unmounted is the initial state: the container has not yet come
	// near the viewport and nothing has been constructed.
	Unmounted States = iota

	// Loading means the renderer is being constructed in the background
	// and the loading visual is shown.
	Loading

	// Mounted means the renderer is live.
	Mounted

	// Errored means the renderer failed and the placeholder is shown.
	// It is terminal.
	Errored

	// Static means rendering was forbidden by the capability profile,
	// so the placeholder is shown and nothing is ever constructed.
	Static
)

// IsFinal returns whether no further transition can happen.
func (s States) IsFinal() bool {
	return s == Errored || s == Static
}
