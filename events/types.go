// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types determines the type of a page event. Events of a non-unique
// type are subject to compression in a [Queue]: if the last queued event
// is of the same type it is replaced instead of appended.
type Types int32 //enums:enum

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// Scroll is sent when the page scroll offset changes.
	// Not unique.
	Scroll

	// Resize is sent when the viewport size or pixel ratio changes.
	// Not unique.
	Resize

	// Preference is sent when an accessibility or power preference
	// changes, such as reduced motion.
	Preference

	// Visibility is sent when the page is hidden or shown.
	Visibility

	// Battery is sent when the battery status changes.
	Battery

	// Frame is sent once per display refresh while anything animates.
	// Not unique.
	Frame
)

// IsUnique returns whether events of this type are always delivered,
// rather than being compressed with a queued event of the same type.
func (t Types) IsUnique() bool {
	switch t {
	case Scroll, Resize, Frame:
		return false
	}
	return true
}
