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

import (
	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/romloader"
)

// CHIP8 is the emulated machine. The fields are public for the benefit of
// debugging frontends; normal operation goes through the function interface.
type CHIP8 struct {
	Mem    *memory.Memory
	Video  *video.Video
	Keypad *input.Keypad
	Timers *timer.Pair
	CPU    *cpu.CPU
}

// NewCHIP8 creates a fully assembled machine with no program attached.
func NewCHIP8(q quirks.Quirks) *CHIP8 {
	ch8 := &CHIP8{
		Mem:    memory.NewMemory(),
		Video:  video.NewVideo(),
		Keypad: input.NewKeypad(),
		Timers: timer.NewPair(),
	}
	ch8.CPU = cpu.NewCPU(ch8.Mem, ch8.Video, ch8.Keypad, ch8.Timers, q)
	return ch8
}

// AttachROM loads the ROM and copies it into the machine. The machine is
// reset before the copy so the program starts from a clean state.
//
// The ROM is validated before anything is touched. A failed attach leaves the
// machine exactly as it was.
func (ch8 *CHIP8) AttachROM(roml romloader.Loader) error {
	if err := roml.Load(); err != nil {
		return err
	}

	if len(roml.Data) > memory.MaxROMSize {
		// validated before Reset() so an oversized ROM cannot disturb a
		// running machine. LoadROM performs the same check and raises the
		// error; it will not have copied anything
		return ch8.Mem.LoadROM(roml.Data)
	}

	ch8.Reset()

	if err := ch8.Mem.LoadROM(roml.Data); err != nil {
		return err
	}

	logger.Logf("hardware", "attached %s (%d bytes, sha1 %s)", roml.ShortName(), len(roml.Data), roml.Hash)

	return nil
}

// Reset the machine to its startup state. The attached program, if any, is
// wiped along with everything else; attach it again to rerun it.
func (ch8 *CHIP8) Reset() {
	ch8.Mem.Reset()
	ch8.Video.Reset()
	ch8.Keypad.Reset()
	ch8.Timers.Reset()
	ch8.CPU.Reset()
}

// Step executes one instruction cycle. See the documentation for the cpu
// package for the meaning of a step in each execution state.
func (ch8 *CHIP8) Step() error {
	return ch8.CPU.Step()
}

// TickTimers decrements the delay and sound timers. Must be called at 60Hz
// for correct program timing, independently of the instruction rate.
func (ch8 *CHIP8) TickTimers() {
	ch8.Timers.Tick()
}

// SoundActive is true while the sound timer is running down.
func (ch8 *CHIP8) SoundActive() bool {
	return ch8.Timers.SoundActive()
}

// IsHalted is true once an execution error has stopped the machine.
func (ch8 *CHIP8) IsHalted() bool {
	return ch8.CPU.IsHalted()
}

// LastError returns the error that halted the machine, or nil.
func (ch8 *CHIP8) LastError() error {
	return ch8.CPU.LastError()
}

// SetQuirks changes the quirk set consulted during execution. Takes effect on
// the next call to Step().
func (ch8 *CHIP8) SetQuirks(q quirks.Quirks) {
	ch8.CPU.Quirks = q
}
