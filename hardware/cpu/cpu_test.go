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

package cpu_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/test"
)

// the collaborators a CPU under test executes against.
type testBench struct {
	mem *memory.Memory
	vid *video.Video
	kpd *input.Keypad
	tmr *timer.Pair
	mc  *cpu.CPU
}

func newBench(t *testing.T, q quirks.Quirks, program ...uint16) *testBench {
	t.Helper()

	b := &testBench{
		mem: memory.NewMemory(),
		vid: video.NewVideo(),
		kpd: input.NewKeypad(),
		tmr: timer.NewPair(),
	}

	rom := make([]byte, 0, len(program)*2)
	for _, opcode := range program {
		rom = append(rom, uint8(opcode>>8), uint8(opcode))
	}
	if err := b.mem.LoadROM(rom); err != nil {
		t.Fatal(err)
	}

	b.mc = cpu.NewCPU(b.mem, b.vid, b.kpd, b.tmr, q)
	return b
}

func (b *testBench) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := b.mc.Step(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestProgramCounterAdvance(t *testing.T) {
	b := newBench(t, quirks.Default(), 0x6001)
	test.Equate(t, b.mc.PC, memory.Origin)
	b.step(t, 1)
	test.Equate(t, b.mc.PC, memory.Origin+2)
	test.Equate(t, b.mc.V[0], 0x01)
}

func TestClearAndJump(t *testing.T) {
	// draw something, clear, jump to 0x300
	b := newBench(t, quirks.Default(),
		0xa000, // LD I, 0x000 (font data, all we need is lit pixels)
		0xd015, // DRW V0, V1, 5
		0x00e0, // CLS
		0x1300, // JP 0x300
	)
	b.step(t, 4)

	test.Equate(t, b.mc.PC, 0x0300)
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			test.ExpectedFailure(t, b.vid.Pixel(x, y))
		}
	}
}

func TestCallAndReturn(t *testing.T) {
	b := newBench(t, quirks.Default(), 0x2206, 0x0000, 0x0000, 0x00ee)
	b.step(t, 1)
	test.Equate(t, b.mc.PC, 0x0206)
	test.Equate(t, b.mc.Stack.Depth(), 1)

	b.step(t, 1)
	test.Equate(t, b.mc.PC, memory.Origin+2)
	test.Equate(t, b.mc.Stack.Depth(), 0)
}

func TestMachineRoutineAsCall(t *testing.T) {
	// SYS behaves as a subroutine call
	b := newBench(t, quirks.Default(), 0x0206, 0x0000, 0x0000, 0x00ee)
	b.step(t, 2)
	test.Equate(t, b.mc.PC, memory.Origin+2)
}

func TestSkips(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x6042, // LD V0, 0x42
		0x3042, // SE V0, 0x42 (skips)
		0x0000,
		0x4042, // SNE V0, 0x42 (does not skip)
		0x6142, // LD V1, 0x42
		0x5010, // SE V0, V1 (skips)
		0x0000,
		0x9010, // SNE V0, V1 (does not skip)
		0x6200, // LD V2, 0x00
	)
	b.step(t, 7)
	test.Equate(t, b.mc.PC, memory.Origin+18)
}

func TestArithmeticFlags(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x60ff, // LD V0, 0xff
		0x6102, // LD V1, 0x02
		0x8014, // ADD V0, V1 (overflows)
	)
	b.step(t, 3)
	test.Equate(t, b.mc.V[0], 0x01)
	test.Equate(t, b.mc.V[0xf], 0x01)

	b = newBench(t, quirks.Default(),
		0x6005, // LD V0, 0x05
		0x6107, // LD V1, 0x07
		0x8015, // SUB V0, V1 (borrows)
		0x8017, // SUBN V0, V1 (V1 - VX, no borrow)
	)
	b.step(t, 3)
	test.Equate(t, b.mc.V[0], 0xfe)
	test.Equate(t, b.mc.V[0xf], 0x00)

	b.step(t, 1)
	// V0 = V1 - V0 = 0x07 - 0xfe, borrows
	test.Equate(t, b.mc.V[0], 0x09)
	test.Equate(t, b.mc.V[0xf], 0x00)
}

func TestSubtractionOfEqualOperands(t *testing.T) {
	// equal operands do not borrow. VF is set for both subtraction forms
	b := newBench(t, quirks.Default(),
		0x6042, // LD V0, 0x42
		0x6142, // LD V1, 0x42
		0x8015, // SUB V0, V1
	)
	b.step(t, 3)
	test.Equate(t, b.mc.V[0], 0x00)
	test.Equate(t, b.mc.V[0xf], 0x01)

	b = newBench(t, quirks.Default(),
		0x6042, // LD V0, 0x42
		0x6142, // LD V1, 0x42
		0x8017, // SUBN V0, V1
	)
	b.step(t, 3)
	test.Equate(t, b.mc.V[0], 0x00)
	test.Equate(t, b.mc.V[0xf], 0x01)
}

func TestFlagRegisterAsTarget(t *testing.T) {
	// the carry outcome wins over the arithmetic result when VF is the
	// target register
	b := newBench(t, quirks.Default(),
		0x6fff, // LD VF, 0xff
		0x6101, // LD V1, 0x01
		0x8f14, // ADD VF, V1
	)
	b.step(t, 3)
	test.Equate(t, b.mc.V[0xf], 0x01)
}

func TestShiftQuirk(t *testing.T) {
	program := []uint16{
		0x6081, // LD V0, 0x81
		0x6103, // LD V1, 0x03
		0x8016, // SHR V0 (V0, V1 depending on quirk)
	}

	b := newBench(t, quirks.Default(), program...)
	b.step(t, 3)
	test.Equate(t, b.mc.V[0], 0x40)
	test.Equate(t, b.mc.V[0xf], 0x01)

	q, err := quirks.Preset("vip")
	test.ExpectedSuccess(t, err)
	b = newBench(t, q, program...)
	b.step(t, 3)
	test.Equate(t, b.mc.V[0], 0x01)
	test.Equate(t, b.mc.V[0xf], 0x01)
}

func TestJumpOffsetQuirk(t *testing.T) {
	program := []uint16{
		0x6010, // LD V0, 0x10
		0x6220, // LD V2, 0x20
		0xb280, // JP V0, 0x280
	}

	b := newBench(t, quirks.Default(), program...)
	b.step(t, 3)
	test.Equate(t, b.mc.PC, 0x0290)

	q, err := quirks.Preset("schip")
	test.ExpectedSuccess(t, err)
	b = newBench(t, q, program...)
	b.step(t, 3)
	test.Equate(t, b.mc.PC, 0x02a0)
}

func TestJumpOffsetOverflow(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x60ff, // LD V0, 0xff
		0xbfff, // JP V0, 0xfff
	)
	b.step(t, 1)
	err := b.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.AddressOverflow))
}

func TestIndexRegister(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0xa202, // LD I, 0x202
		0x6005, // LD V0, 0x05
		0xf01e, // ADD I, V0
	)
	b.step(t, 1)
	test.Equate(t, b.mc.I, 0x0202)
	b.step(t, 2)
	test.Equate(t, b.mc.I, 0x0207)
}

func TestIndexOverflow(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0xafff, // LD I, 0xfff
		0x6001, // LD V0, 0x01
		0xf01e, // ADD I, V0
	)
	b.step(t, 2)
	err := b.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.AddressOverflow))
	test.ExpectedSuccess(t, b.mc.IsHalted())
}

func TestDrawCollision(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0xa000, // LD I, 0x000 (digit 0 sprite)
		0xd005, // DRW V0, V0, 5
		0xd005, // DRW V0, V0, 5 (same sprite, collides everywhere)
	)
	b.step(t, 2)
	test.Equate(t, b.mc.V[0xf], 0x00)
	b.step(t, 1)
	test.Equate(t, b.mc.V[0xf], 0x01)
	test.ExpectedFailure(t, b.vid.Pixel(0, 0))
}

func TestBCD(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x60fe, // LD V0, 0xfe (254)
		0xa300, // LD I, 0x300
		0xf033, // LD B, V0
	)
	b.step(t, 3)

	for i, expected := range []uint8{2, 5, 4} {
		v, err := b.mem.Read(uint16(0x300 + i))
		test.ExpectedSuccess(t, err)
		test.Equate(t, v, expected)
	}
}

func TestStoreLoadRegisters(t *testing.T) {
	program := []uint16{
		0x6011, // LD V0, 0x11
		0x6122, // LD V1, 0x22
		0x6233, // LD V2, 0x33
		0xa300, // LD I, 0x300
		0xf255, // LD [I], V2
		0x6000, // LD V0, 0x00
		0x6100, // LD V1, 0x00
		0x6200, // LD V2, 0x00
		0xf265, // LD V2, [I]
	}

	b := newBench(t, quirks.Default(), program...)
	b.step(t, 9)
	test.Equate(t, b.mc.V[0], 0x11)
	test.Equate(t, b.mc.V[1], 0x22)
	test.Equate(t, b.mc.V[2], 0x33)
	test.Equate(t, b.mc.I, 0x0300)

	// without the preserve quirk the index register walks forward on both
	// the store and the load
	q, err := quirks.Preset("vip")
	test.ExpectedSuccess(t, err)
	b = newBench(t, q, program...)
	b.step(t, 9)
	test.Equate(t, b.mc.I, 0x0306)
	test.Equate(t, b.mc.V[0], 0x00)
}

func TestTimers(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x603c, // LD V0, 0x3c
		0xf015, // LD DT, V0
		0xf118, // LD ST, V1 (V1 is zero)
		0xf207, // LD V2, DT
	)
	b.step(t, 3)
	test.Equate(t, b.tmr.Delay(), 0x3c)
	test.ExpectedFailure(t, b.tmr.SoundActive())

	b.tmr.Tick()
	b.step(t, 1)
	test.Equate(t, b.mc.V[2], 0x3b)
}

func TestSkipOnKey(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x6105, // LD V1, 0x05
		0xe19e, // SKP V1 (key pressed, skips)
		0x0000,
		0xe1a1, // SKNP V1 (key pressed, does not skip)
		0x6200, // LD V2, 0x00
	)
	test.ExpectedSuccess(t, b.kpd.SetKey(0x05, true))
	b.step(t, 4)
	test.Equate(t, b.mc.PC, memory.Origin+10)
}

func TestWaitForKey(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0xf30a, // LD V3, K
		0x6001, // LD V0, 0x01
	)

	// a press latched before the wait begins is discarded
	test.ExpectedSuccess(t, b.kpd.SetKey(0x02, true))

	b.step(t, 1)
	test.Equate(t, int(b.mc.Status()), int(cpu.WaitingForKey))

	// the held key does not end the wait
	b.step(t, 3)
	test.Equate(t, int(b.mc.Status()), int(cpu.WaitingForKey))
	test.Equate(t, b.mc.PC, memory.Origin+2)

	// a fresh press ends the wait. that step consumes the press and the
	// following step resumes execution
	test.ExpectedSuccess(t, b.kpd.SetKey(0x02, false))
	test.ExpectedSuccess(t, b.kpd.SetKey(0x0a, true))
	b.step(t, 1)
	test.Equate(t, int(b.mc.Status()), int(cpu.Running))
	test.Equate(t, b.mc.V[3], 0x0a)
	test.Equate(t, b.mc.V[0], 0x00)

	b.step(t, 1)
	test.Equate(t, b.mc.V[0], 0x01)
}

func TestRandomMasks(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0xc00f, // RND V0, 0x0f
	)
	b.step(t, 1)
	test.Equate(t, b.mc.V[0]&0xf0, 0)
}

func TestDigitSprites(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x600a, // LD V0, 0x0a
		0xf029, // LD F, V0
	)
	b.step(t, 2)
	test.Equate(t, b.mc.I, memory.DigitAddress(0x0a))
}

func TestHaltIsLatched(t *testing.T) {
	b := newBench(t, quirks.Default(),
		0x00ee, // RET on an empty stack
	)

	err := b.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
	test.ExpectedSuccess(t, b.mc.IsHalted())

	pc := b.mc.PC

	// subsequent steps return the same error without mutating state
	err = b.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
	test.Equate(t, b.mc.PC, int(pc))
	test.Equate(t, b.mc.LastError().Error(), err.Error())
}

func TestInvalidOpcodeHalts(t *testing.T) {
	b := newBench(t, quirks.Default(), 0xf1ff)
	err := b.mc.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.InvalidOpcode))
	test.ExpectedSuccess(t, b.mc.IsHalted())
}

func TestReset(t *testing.T) {
	b := newBench(t, quirks.Default(), 0x00ee)
	test.ExpectedFailure(t, b.mc.Step())
	test.ExpectedSuccess(t, b.mc.IsHalted())

	b.mc.Reset()
	test.ExpectedFailure(t, b.mc.IsHalted())
	test.ExpectedSuccess(t, b.mc.LastError() == nil)
	test.Equate(t, b.mc.PC, memory.Origin)
}
