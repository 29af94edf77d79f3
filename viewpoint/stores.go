// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewpoint

import "sync"

// Stores is the set of stores of a page, one per visualization domain.
// Keeping one store per domain makes the domain explicit in each store's
// identity, so that sections in different domains never share a target.
type Stores struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewStores returns a new empty store set.
func NewStores() *Stores {
	return &Stores{stores: map[string]*Store{}}
}

// Store returns the store for the given domain, creating it with the given
// initial preset id if it does not exist yet. The initial value is ignored
// for an existing store.
func (ss *Stores) Store(domain, initial string) *Store {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if st, ok := ss.stores[domain]; ok {
		return st
	}
	st := NewStore(domain, initial)
	ss.stores[domain] = st
	return st
}

// Lookup returns the existing store for the given domain, if any.
func (ss *Stores) Lookup(domain string) (*Store, bool) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	st, ok := ss.stores[domain]
	return st, ok
}

// Close closes and removes the store of the given domain.
func (ss *Stores) Close(domain string) {
	ss.mu.Lock()
	st, ok := ss.stores[domain]
	delete(ss.stores, domain)
	ss.mu.Unlock()
	if ok {
		st.Close()
	}
}

// CloseAll closes and removes every store.
func (ss *Stores) CloseAll() {
	ss.mu.Lock()
	all := ss.stores
	ss.stores = map[string]*Store{}
	ss.mu.Unlock()
	for _, st := range all {
		st.Close()
	}
}
