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

package input_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/test"
)

func TestSetKey(t *testing.T) {
	kp := input.NewKeypad()

	test.ExpectedFailure(t, kp.IsPressed(0x0a))
	test.ExpectedSuccess(t, kp.SetKey(0x0a, true))
	test.ExpectedSuccess(t, kp.IsPressed(0x0a))
	test.ExpectedSuccess(t, kp.SetKey(0x0a, false))
	test.ExpectedFailure(t, kp.IsPressed(0x0a))

	// key indexes outside of [0, 16)
	err := kp.SetKey(16, true)
	test.ExpectedSuccess(t, curated.Is(err, input.InvalidKeyIndex))
	err = kp.SetKey(-1, true)
	test.ExpectedSuccess(t, curated.Is(err, input.InvalidKeyIndex))
}

func TestLatchedPress(t *testing.T) {
	kp := input.NewKeypad()

	// nothing latched on a fresh keypad
	_, ok := kp.LatchedPress()
	test.ExpectedFailure(t, ok)

	kp.SetKey(0x05, true)
	k, ok := kp.LatchedPress()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, k, 0x05)

	// the latch has been consumed
	_, ok = kp.LatchedPress()
	test.ExpectedFailure(t, ok)

	// a held key does not re-latch
	kp.SetKey(0x05, true)
	_, ok = kp.LatchedPress()
	test.ExpectedFailure(t, ok)

	// releasing and pressing again does
	kp.SetKey(0x05, false)
	kp.SetKey(0x05, true)
	k, ok = kp.LatchedPress()
	test.ExpectedSuccess(t, ok)
	test.Equate(t, k, 0x05)
}

func TestDiscardPress(t *testing.T) {
	kp := input.NewKeypad()

	kp.SetKey(0x01, true)
	kp.DiscardPress()
	_, ok := kp.LatchedPress()
	test.ExpectedFailure(t, ok)

	// the key is still pressed, only the latch is discarded
	test.ExpectedSuccess(t, kp.IsPressed(0x01))
}
