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

// Package audio generates the beeper tone. The machine has exactly one
// sound, a fixed tone played while the sound timer is running down, so the
// generator is nothing more than a square wave that can be switched on and
// off.
//
// The beeper and wavwriter packages consume the generator. The sdlaudio
// package generates its own samples because the SDL device dictates the
// silence value.
package audio

// SampleFreq is the number of samples generated per second.
const SampleFreq = 22050

// ToneFreq is the frequency of the beeper tone in Hz.
const ToneFreq = 440

// amplitude of the square wave around the 8-bit midpoint.
const amplitude = 24

// midpoint of an unsigned 8-bit sample. silence.
const midpoint = 128

// half the period of the tone, in samples.
const halfPeriod = SampleFreq / ToneFreq / 2

// Generator produces unsigned 8-bit mono samples of the beeper tone.
//
// The zero value is a silent generator, ready for use.
type Generator struct {
	active bool
	phase  int
}

// SetActive turns the tone on or off.
func (gen *Generator) SetActive(active bool) {
	gen.active = active
}

// IsActive returns true if the tone is currently on.
func (gen *Generator) IsActive() bool {
	return gen.active
}

// Sample returns the next sample of the tone. Returns silence when the tone
// is off. The phase resets on silence so the tone always starts at the
// beginning of a period.
func (gen *Generator) Sample() uint8 {
	if !gen.active {
		gen.phase = 0
		return midpoint
	}

	s := uint8(midpoint - amplitude)
	if (gen.phase/halfPeriod)%2 == 0 {
		s = midpoint + amplitude
	}

	gen.phase++
	if gen.phase >= halfPeriod*2 {
		gen.phase = 0
	}

	return s
}
