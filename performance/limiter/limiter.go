// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. The playmode loop uses it for the 60Hz frame/timer beat, and
// again at a higher rate for instruction pacing.
//
// Operations are stalled with the Wait() function:
//
//	lim, _ := limiter.NewRateLimiter(60)
//	for {
//		lim.Wait()
//		renderFrame()
//	}
package limiter

import (
	"time"

	"github.com/gopher8/gopher8/curated"
)

// Sentinal error raised by the limiter package.
const InvalidRate = "limiter: invalid rate (%d per second)"

// RateLimiter triggers at a fixed number of events per second.
//
// The ticker goroutine adjusts its sleep by the measured overshoot of the
// previous period, which keeps the average rate honest even though any
// individual period is only approximate. Good enough as long as the host is
// comfortably faster than the requested rate.
type RateLimiter struct {
	perSecond time.Duration
	tick      chan bool
}

// NewRateLimiter is the preferred method of initialisation for the
// RateLimiter type.
func NewRateLimiter(perSecond int) (*RateLimiter, error) {
	if perSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, perSecond)
	}

	lim := &RateLimiter{
		perSecond: time.Second / time.Duration(perSecond),
		tick:      make(chan bool),
	}

	go func() {
		adjusted := lim.perSecond
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.perSecond
			t = nt
		}
	}()

	return lim, nil
}

// Wait blocks until the next trigger.
func (lim *RateLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the trigger has already elapsed; false if it is
// still to happen. Never blocks.
func (lim *RateLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
