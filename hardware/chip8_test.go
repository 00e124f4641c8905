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

package hardware_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/romloader"
	"github.com/gopher8/gopher8/test"
)

func romOf(opcodes ...uint16) romloader.Loader {
	data := make([]byte, 0, len(opcodes)*2)
	for _, opcode := range opcodes {
		data = append(data, uint8(opcode>>8), uint8(opcode))
	}
	return romloader.Loader{Filename: "test", Data: data}
}

func TestAttachAndRun(t *testing.T) {
	ch8 := hardware.NewCHIP8(quirks.Default())
	test.ExpectedSuccess(t, ch8.AttachROM(romOf(
		0x6005, // LD V0, 0x05
		0x7001, // ADD V0, 0x01
		0x1202, // JP 0x202
	)))

	ct := 0
	err := ch8.Run(func() (bool, error) {
		ct++
		return ct < 21, nil
	})
	test.ExpectedSuccess(t, err)

	// one load and ten trips around the add/jump loop
	test.Equate(t, ch8.CPU.V[0], 0x0f)
}

func TestAttachOversizedROM(t *testing.T) {
	ch8 := hardware.NewCHIP8(quirks.Default())
	test.ExpectedSuccess(t, ch8.AttachROM(romOf(0x6042)))
	test.ExpectedSuccess(t, ch8.Step())
	test.Equate(t, ch8.CPU.V[0], 0x42)

	// an oversized ROM fails to attach and leaves the machine untouched
	err := ch8.AttachROM(romloader.Loader{
		Filename: "oversized",
		Data:     make([]byte, memory.MaxROMSize+1),
	})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.RomTooLarge))
	test.Equate(t, ch8.CPU.V[0], 0x42)
	test.Equate(t, ch8.CPU.PC, memory.Origin+2)
}

func TestTimersDecoupledFromStep(t *testing.T) {
	ch8 := hardware.NewCHIP8(quirks.Default())
	test.ExpectedSuccess(t, ch8.AttachROM(romOf(
		0x6002, // LD V0, 0x02
		0xf018, // LD ST, V0
		0x1204, // JP 0x204
	)))

	for i := 0; i < 10; i++ {
		test.ExpectedSuccess(t, ch8.Step())
	}
	test.ExpectedSuccess(t, ch8.SoundActive())

	ch8.TickTimers()
	test.ExpectedSuccess(t, ch8.SoundActive())
	ch8.TickTimers()
	test.ExpectedFailure(t, ch8.SoundActive())
}

func TestRunStopsOnHalt(t *testing.T) {
	ch8 := hardware.NewCHIP8(quirks.Default())
	test.ExpectedSuccess(t, ch8.AttachROM(romOf(0x00ee)))

	err := ch8.Run(nil)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, ch8.IsHalted())
	test.Equate(t, ch8.LastError().Error(), err.Error())
}

func TestResetClearsHalt(t *testing.T) {
	ch8 := hardware.NewCHIP8(quirks.Default())
	test.ExpectedSuccess(t, ch8.AttachROM(romOf(0x00ee)))
	test.ExpectedFailure(t, ch8.Step())
	test.ExpectedSuccess(t, ch8.IsHalted())

	ch8.Reset()
	test.ExpectedFailure(t, ch8.IsHalted())

	// reset wipes the program region along with everything else
	v, err := ch8.Mem.Read(memory.Origin)
	test.ExpectedSuccess(t, err)
	test.Equate(t, v, 0x00)
}
