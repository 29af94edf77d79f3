// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewpoint provides the shared store holding the camera preset
// currently targeted in each visualization domain.
package viewpoint

import (
	"slices"
	"sync"
)

// Listener is called with the new preset id after a store changes.
type Listener func(presetID string)

// Store holds the currently targeted preset id of one visualization domain.
// It is written by the scroll mapper of a page section, through preset
// translation, and read by every renderer mounted in that domain.
// Writes are scalar replacements (last write wins) and reads are snapshots.
//
// Listeners are called synchronously from [Store.Set], after the value has
// been updated and outside of the store lock, so a listener may read the
// store or unsubscribe itself.
type Store struct {

	// domain is the name of the visualization domain of this store.
	domain string

	// mu protects the fields below.
	mu sync.RWMutex

	current string

	// listeners are the subscribers keyed by subscription id;
	// order holds the ids in subscription order.
	listeners map[uint64]Listener
	order     []uint64
	nextID    uint64

	closed bool
}

// NewStore returns a new store for the given domain, holding the given
// initial preset id.
func NewStore(domain, initial string) *Store {
	return &Store{domain: domain, current: initial, listeners: map[uint64]Listener{}}
}

// Domain returns the name of the visualization domain of the store.
func (st *Store) Domain() string {
	return st.domain
}

// Get returns the current preset id.
func (st *Store) Get() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current
}

// Set sets the current preset id and notifies the listeners. Setting the
// value the store already holds does nothing, so listeners are called at
// most once per distinct value. It reports whether the value changed.
func (st *Store) Set(presetID string) bool {
	st.mu.Lock()
	if st.closed || st.current == presetID {
		st.mu.Unlock()
		return false
	}
	st.current = presetID
	ls := make([]Listener, 0, len(st.order))
	for _, id := range st.order {
		ls = append(ls, st.listeners[id])
	}
	st.mu.Unlock()
	for _, l := range ls {
		l(presetID)
	}
	return true
}

// Subscribe adds the given listener and returns a function that removes it.
// The returned function is safe to call more than once.
func (st *Store) Subscribe(l Listener) (unsubscribe func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return func() {}
	}
	id := st.nextID
	st.nextID++
	st.listeners[id] = l
	st.order = append(st.order, id)
	return func() {
		st.mu.Lock()
		defer st.mu.Unlock()
		if _, ok := st.listeners[id]; !ok {
			return
		}
		delete(st.listeners, id)
		st.order = slices.DeleteFunc(st.order, func(o uint64) bool { return o == id })
	}
}

// NumListeners returns the number of current subscribers.
func (st *Store) NumListeners() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.listeners)
}

// Close tears the store down: all listeners are dropped and further
// calls to Set and Subscribe are ignored. Get keeps returning the last value.
func (st *Store) Close() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.closed = true
	st.listeners = map[uint64]Listener{}
	st.order = nil
}
