// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"log/slog"
	"sync"
)

// TraceEventCompression can be set to true to see when events
// are being compressed.
var TraceEventCompression = false

// Queue is a FIFO event queue safe for concurrent senders.
// Events of a non-unique type replace the last queued event if it has
// the same type, so a burst of scroll or resize events collapses into
// the latest one. The zero value is ready to use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Send adds an event to the end of the queue.
func (q *Queue) Send(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); n > 0 && !ev.Type().IsUnique() {
		if last := q.events[n-1]; last.Type() == ev.Type() {
			if TraceEventCompression {
				slog.Info("events: compressing", "old", last, "new", ev)
			}
			q.events[n-1] = ev
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev
}

// Drain removes and returns all queued events in order.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	evs := q.events
	q.events = nil
	return evs
}

// Len returns the length of the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
