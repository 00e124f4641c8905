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

package timer_test

import (
	"testing"

	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/test"
)

func TestSaturation(t *testing.T) {
	tmr := timer.NewPair()

	tmr.SetDelay(3)
	test.Equate(t, tmr.Delay(), 3)

	// after exactly three ticks the delay timer reads zero
	tmr.Tick()
	tmr.Tick()
	tmr.Tick()
	test.Equate(t, tmr.Delay(), 0)

	// and it stays there
	tmr.Tick()
	test.Equate(t, tmr.Delay(), 0)
}

func TestIndependence(t *testing.T) {
	tmr := timer.NewPair()

	tmr.SetDelay(2)
	tmr.SetSound(5)

	tmr.Tick()
	tmr.Tick()
	tmr.Tick()

	test.Equate(t, tmr.Delay(), 0)
	test.Equate(t, tmr.Sound(), 2)
}

func TestSoundActive(t *testing.T) {
	tmr := timer.NewPair()
	test.ExpectedFailure(t, tmr.SoundActive())

	tmr.SetSound(1)
	test.ExpectedSuccess(t, tmr.SoundActive())

	tmr.Tick()
	test.ExpectedFailure(t, tmr.SoundActive())
}
