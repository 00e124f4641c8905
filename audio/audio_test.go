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

package audio_test

import (
	"testing"

	"github.com/gopher8/gopher8/audio"
	"github.com/gopher8/gopher8/test"
)

func TestSilence(t *testing.T) {
	gen := audio.Generator{}
	for i := 0; i < 100; i++ {
		test.Equate(t, gen.Sample(), uint8(128))
	}
}

func TestTone(t *testing.T) {
	gen := audio.Generator{}
	gen.SetActive(true)

	// one full second of tone alternates between exactly two levels, evenly
	high := 0
	low := 0
	for i := 0; i < audio.SampleFreq; i++ {
		switch gen.Sample() {
		case 128 + 24:
			high++
		case 128 - 24:
			low++
		default:
			t.Fatal("unexpected sample level")
		}
	}
	test.Equate(t, high, low)
}

func TestPhaseResetsOnSilence(t *testing.T) {
	gen := audio.Generator{}
	gen.SetActive(true)
	first := gen.Sample()

	// advance part way into a period before switching off
	for i := 0; i < 7; i++ {
		gen.Sample()
	}

	gen.SetActive(false)
	test.Equate(t, gen.Sample(), uint8(128))

	gen.SetActive(true)
	test.Equate(t, gen.Sample(), first)
}
