// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lazy

import (
	"fmt"
	"runtime/debug"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scrolly/asset"
)

// Ops are the renderer operations a failure can happen in.
type Ops int32 //enums:enum -trim-prefix Op -transform lower

const (
	// OpConstruct is the call of the [Factory].
	OpConstruct Ops = iota

	// OpMount is [Renderer.Mount].
	OpMount

	// OpFrame is [Renderer.Frame].
	OpFrame

	// OpRender is [Renderer.Render].
	OpRender

	// OpReconfigure is [Reconfigurer.Reconfigure].
	OpReconfigure

	// OpUnmount is [Renderer.Unmount].
	OpUnmount
)

// PanicError is a panic recovered at the failure boundary.
type PanicError struct {

	// Value is the value passed to panic.
	Value any

	// Stack is the stack trace of the panicking goroutine.
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error, so that a
// panicking [asset.Error] keeps its category.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Record is the structured diagnostic record of a renderer failure.
// It is logged and handed to [Wrapper.OnError]; it is never shown to
// the end user.
type Record struct {
	Scene    string
	Op       Ops
	Category asset.Categories
	Message  string
	Stack    string
	Time     time.Time
	Err      error
}

// NewRecord classifies the given failure.
func NewRecord(scene string, op Ops, err error) *Record {
	rec := &Record{Scene: scene, Op: op, Category: asset.Classify(err), Message: err.Error(), Time: time.Now(), Err: err}
	var pe *PanicError
	if errors.As(err, &pe) {
		rec.Stack = string(pe.Stack)
	}
	return rec
}

// Log logs the record at warning level.
func (r *Record) Log() {
	Logger().Warn("scene renderer failed", "category", r.Category.String(), "scene", r.Scene,
		"op", r.Op.String(), "error", r.Message, "stack", r.Stack)
}

// protect calls f and converts a panic into a [*PanicError].
func protect(f func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()
	return f()
}
