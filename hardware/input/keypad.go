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

// Package input implements the sixteen key hexadecimal keypad of the CHIP-8
// machine.
//
// The keypad is written to by the frontend (whenever physical key state
// changes) and read by the CPU. In addition to the plain pressed/released
// state, the keypad latches the most recent unset-to-set transition. The
// latch is what the wait-for-key instruction consumes: a held key does not
// re-trigger the wait across steps.
package input

import (
	"github.com/gopher8/gopher8/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Sentinal error raised by the input package.
const InvalidKeyIndex = "keypad: invalid key index (%d)"

// value of the press field when no fresh keypress is latched.
const noPress = -1

// Keypad is the key state of the CHIP-8 machine.
type Keypad struct {
	keys [NumKeys]bool

	// the most recent unset-to-set transition, not yet consumed. noPress if
	// there is none.
	press int
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{press: noPress}
}

// Reset releases all keys and discards any latched keypress.
func (kp *Keypad) Reset() {
	kp.keys = [NumKeys]bool{}
	kp.press = noPress
}

// SetKey records a change in physical key state. The key index must be in the
// range [0, 16) or the function fails with InvalidKeyIndex.
//
// An unset-to-set transition is latched for consumption by the wait-for-key
// instruction. Repeated calls for a key that is already pressed do not
// re-latch.
func (kp *Keypad) SetKey(key int, pressed bool) error {
	if key < 0 || key >= NumKeys {
		return curated.Errorf(InvalidKeyIndex, key)
	}

	if pressed && !kp.keys[key] {
		kp.press = key
	}
	kp.keys[key] = pressed

	return nil
}

// IsPressed returns the current state of the key. Only the low nibble of the
// argument is considered, mirroring how the skip-on-key instructions treat
// their register operand.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f]
}

// LatchedPress returns the most recent unconsumed keypress and consumes it.
// The second return value is false if no keypress is latched.
func (kp *Keypad) LatchedPress() (uint8, bool) {
	if kp.press == noPress {
		return 0, false
	}
	k := uint8(kp.press)
	kp.press = noPress
	return k, true
}

// DiscardPress throws away any latched keypress. The wait-for-key instruction
// calls this when the wait begins so that only presses arriving after that
// point can end the wait.
func (kp *Keypad) DiscardPress() {
	kp.press = noPress
}
