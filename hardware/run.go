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

package hardware

// Run the machine as fast as possible until the continueCheck says otherwise
// or the machine halts.
//
// Run never ticks the timers. It exists for callers that pace timers
// themselves (or don't care, like the performance mode); interactive
// frontends drive Step() and TickTimers() from their own loop.
func (ch8 *CHIP8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	var err error

	for cont {
		if err = ch8.Step(); err != nil {
			return err
		}
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
