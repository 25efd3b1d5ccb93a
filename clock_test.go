//
// Copyright 2018-2025 Cristian Maglie. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package logofetch

import (
	"sync"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
)

// newAutoClock returns a test clock that fires every pending wait as soon
// as it is registered, so backoff and pacing do not slow tests down.
func newAutoClock(t *testing.T) *testclock.Clock {
	clk := testclock.NewClock(time.Now())
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-done:
				return
			default:
			}
			_ = clk.WaitAdvance(time.Minute, 10*time.Millisecond, 1)
		}
	}()
	t.Cleanup(func() {
		close(done)
		<-stopped
	})
	return clk
}

// backoffRecorder wraps a backoff function and records the attempts it
// was asked about.
type backoffRecorder struct {
	mu      sync.Mutex
	backoff func(k int) time.Duration
	calls   []int
}

func (r *backoffRecorder) Backoff(k int) time.Duration {
	r.mu.Lock()
	r.calls = append(r.calls, k)
	r.mu.Unlock()
	return r.backoff(k)
}

func (r *backoffRecorder) Calls() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.calls...)
}
