// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"context"
	"fmt"
	"time"
)

// TickerConfig configures [RunTicker].
type TickerConfig struct {

	// Hz is the tick rate. It defaults to 60.
	Hz int

	// Ticks stops the loop after the given number of ticks; 0 runs until
	// the context is done.
	Ticks uint64
}

// RunTicker is a headless host for the scheduling contract: it calls step
// once per tick on the calling goroutine with the elapsed time since the
// previous tick, until the context is done, step returns an error, or the
// configured number of ticks is reached. A context cancellation returns
// the context error.
func RunTicker(ctx context.Context, cfg TickerConfig, step func(delta time.Duration) error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("frame.RunTicker: invalid hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	last := time.Now()
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			delta := now.Sub(last)
			last = now
			if err := step(delta); err != nil {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
