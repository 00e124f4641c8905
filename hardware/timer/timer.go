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

// Package timer implements the delay and sound timers of the CHIP-8 machine.
//
// The pair is decremented by the Tick() function which the controlling
// emulation must call at a fixed 60Hz, regardless of how many instructions
// are being executed in the same period. The timer package itself has no
// notion of wall-clock time.
package timer

// TicksPerSecond is the rate at which Tick() is expected to be called.
const TicksPerSecond = 60

// Pair is the delay/sound timer pair.
type Pair struct {
	delay uint8
	sound uint8
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair() *Pair {
	return &Pair{}
}

// Reset both timers to zero.
func (tmr *Pair) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Tick decrements both timers by one. A timer at zero stays at zero until
// explicitly set.
func (tmr *Pair) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// Delay returns the current value of the delay timer.
func (tmr *Pair) Delay() uint8 {
	return tmr.delay
}

// SetDelay sets the delay timer.
func (tmr *Pair) SetDelay(value uint8) {
	tmr.delay = value
}

// Sound returns the current value of the sound timer.
func (tmr *Pair) Sound() uint8 {
	return tmr.sound
}

// SetSound sets the sound timer.
func (tmr *Pair) SetSound(value uint8) {
	tmr.sound = value
}

// SoundActive is true for as long as the sound timer is not zero. The audio
// collaborator should poll this to decide when the beeper is on.
func (tmr *Pair) SoundActive() bool {
	return tmr.sound != 0
}
