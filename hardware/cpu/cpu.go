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

// Package cpu implements the instruction decoding and execution core of the
// CHIP-8 machine. The CPU collaborates with the memory, video, input and
// timer packages; it owns nothing but the registers, the stack and the
// execution status.
//
// Two byte instructions are fetched from the address in the PC register,
// decoded into an Instruction value and executed. The PC is advanced past the
// instruction before execution, so the jump and skip instructions see the
// address of the next instruction and never compensate for fetch.
//
// A CPU that encounters an execution error halts. Once halted, Step() returns
// the same error on every subsequent call without touching any state; the
// only way out is Reset().
package cpu

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/input"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/hardware/video"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// Sentinal error raised when an index register operation produces an address
// outside of addressable memory.
const AddressOverflow = "cpu: address overflow (%#04x)"

// Status describes what the CPU will do on the next call to Step().
type Status int

// List of valid Status values.
const (
	// executing instructions normally.
	Running Status = iota

	// a wait-for-key instruction is pending. Step() does not fetch until a
	// fresh keypress arrives.
	WaitingForKey

	// an execution error has occurred. Step() is inert until Reset().
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForKey:
		return "waiting for key"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// CPU is the execution core of the CHIP-8 machine.
type CPU struct {
	mem *memory.Memory
	vid *video.Video
	kpd *input.Keypad
	tmr *timer.Pair

	// the quirk set consulted during execution. safe to change between calls
	// to Step() but a mid-program change will confuse most ROMs.
	Quirks quirks.Quirks

	// Rand is the source for the random number instruction. Replace it with a
	// deterministically seeded source for reproducible tests.
	Rand *rand.Rand

	// the register file. V[0xf] doubles as the flag register.
	V [NumRegisters]uint8

	// the index register.
	I uint16

	// the program counter.
	PC uint16

	Stack Stack

	status Status

	// the register that will receive the key from a pending wait-for-key.
	waitReg uint8

	// the error that halted the CPU. returned by every Step() while halted.
	execErr error
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, vid *video.Video, kpd *input.Keypad, tmr *timer.Pair, q quirks.Quirks) *CPU {
	mc := &CPU{
		mem:    mem,
		vid:    vid,
		kpd:    kpd,
		tmr:    tmr,
		Quirks: q,
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	mc.Reset()
	return mc
}

// Reset the CPU to its startup state. Registers and the stack are zeroed, the
// PC is set to the program origin and the status returns to Running. The
// collaborating components are not touched.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.Origin
	mc.Stack.Reset()
	mc.status = Running
	mc.waitReg = 0
	mc.execErr = nil
}

// Status returns what the CPU will do on the next call to Step().
func (mc *CPU) Status() Status {
	return mc.status
}

// IsHalted is true once an execution error has occurred.
func (mc *CPU) IsHalted() bool {
	return mc.status == Halted
}

// LastError returns the error that halted the CPU, or nil.
func (mc *CPU) LastError() error {
	return mc.execErr
}

// Step executes one instruction cycle.
//
// In the Running state this is fetch, decode, execute. In the WaitingForKey
// state the step is spent checking for a fresh keypress; if one has arrived
// it is stored and the CPU returns to Running, otherwise the step is a no-op.
// In the Halted state nothing happens and the halting error is returned.
//
// Step never advances the timers. Timer ticks come from the controlling
// emulation at their own rate.
func (mc *CPU) Step() error {
	switch mc.status {
	case Halted:
		return mc.execErr

	case WaitingForKey:
		if k, ok := mc.kpd.LatchedPress(); ok {
			mc.V[mc.waitReg] = k
			mc.status = Running
		}
		return nil
	}

	opcode, err := mc.fetch()
	if err != nil {
		return mc.halt(err)
	}

	ins, err := Decode(opcode)
	if err != nil {
		return mc.halt(err)
	}

	if err := mc.execute(ins); err != nil {
		return mc.halt(err)
	}

	return nil
}

// halt latches the error and moves the CPU to the Halted state.
func (mc *CPU) halt(err error) error {
	mc.status = Halted
	mc.execErr = err
	return err
}

// fetch reads the two byte instruction word at the PC and advances the PC
// past it.
func (mc *CPU) fetch() (uint16, error) {
	hi, err := mc.mem.Read(mc.PC)
	if err != nil {
		return 0, err
	}
	lo, err := mc.mem.Read(mc.PC + 1)
	if err != nil {
		return 0, err
	}
	mc.PC += 2
	return uint16(hi)<<8 | uint16(lo), nil
}

// skip the next instruction.
func (mc *CPU) skip() {
	mc.PC += 2
}

func (mc *CPU) execute(ins Instruction) error {
	switch ins.Operator {
	case Cls:
		mc.vid.Clear()

	case Ret:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.PC = address

	case Sys, Call:
		if err := mc.Stack.Push(mc.PC); err != nil {
			return err
		}
		mc.PC = ins.Address

	case Jump:
		mc.PC = ins.Address

	case SkipEqData:
		if mc.V[ins.X] == ins.Data {
			mc.skip()
		}

	case SkipNotEqData:
		if mc.V[ins.X] != ins.Data {
			mc.skip()
		}

	case SkipEqReg:
		if mc.V[ins.X] == mc.V[ins.Y] {
			mc.skip()
		}

	case LoadData:
		mc.V[ins.X] = ins.Data

	case AddData:
		// no carry flag for the immediate form
		mc.V[ins.X] += ins.Data

	case Move:
		mc.V[ins.X] = mc.V[ins.Y]

	case Or:
		mc.V[ins.X] |= mc.V[ins.Y]

	case And:
		mc.V[ins.X] &= mc.V[ins.Y]

	case Xor:
		mc.V[ins.X] ^= mc.V[ins.Y]

	case AddReg:
		r := uint16(mc.V[ins.X]) + uint16(mc.V[ins.Y])
		mc.V[ins.X] = uint8(r)
		mc.setFlag(r > 0xff)

	case SubReg:
		noBorrow := mc.V[ins.X] >= mc.V[ins.Y]
		mc.V[ins.X] -= mc.V[ins.Y]
		mc.setFlag(noBorrow)

	case ShiftRight:
		v := mc.V[ins.X]
		if !mc.Quirks.ShiftTarget {
			v = mc.V[ins.Y]
		}
		mc.V[ins.X] = v >> 1
		mc.setFlag(v&0x01 == 0x01)

	case SubRegN:
		noBorrow := mc.V[ins.Y] >= mc.V[ins.X]
		mc.V[ins.X] = mc.V[ins.Y] - mc.V[ins.X]
		mc.setFlag(noBorrow)

	case ShiftLeft:
		v := mc.V[ins.X]
		if !mc.Quirks.ShiftTarget {
			v = mc.V[ins.Y]
		}
		mc.V[ins.X] = v << 1
		mc.setFlag(v&0x80 == 0x80)

	case SkipNotEqReg:
		if mc.V[ins.X] != mc.V[ins.Y] {
			mc.skip()
		}

	case LoadIndex:
		mc.I = ins.Address

	case JumpOffset:
		offset := mc.V[0]
		if mc.Quirks.JumpHighNibble {
			offset = mc.V[ins.Address>>8&0x0f]
		}
		target := ins.Address + uint16(offset)
		if int(target) >= memory.Size {
			return curated.Errorf(AddressOverflow, target)
		}
		mc.PC = target

	case Random:
		mc.V[ins.X] = uint8(mc.Rand.Intn(0x100)) & ins.Data

	case DrawSprite:
		sprite := make([]uint8, ins.Nibble)
		for i := range sprite {
			b, err := mc.mem.Read(mc.I + uint16(i))
			if err != nil {
				return err
			}
			sprite[i] = b
		}
		collision := mc.vid.DrawSprite(mc.V[ins.X], mc.V[ins.Y], sprite, mc.Quirks.DrawWrap)
		mc.setFlag(collision)

	case SkipKeyPressed:
		if mc.kpd.IsPressed(mc.V[ins.X]) {
			mc.skip()
		}

	case SkipKeyNotPressed:
		if !mc.kpd.IsPressed(mc.V[ins.X]) {
			mc.skip()
		}

	case LoadDelay:
		mc.V[ins.X] = mc.tmr.Delay()

	case WaitKey:
		// presses already latched before the wait began do not count
		mc.kpd.DiscardPress()
		mc.waitReg = ins.X
		mc.status = WaitingForKey

	case SetDelay:
		mc.tmr.SetDelay(mc.V[ins.X])

	case SetSound:
		mc.tmr.SetSound(mc.V[ins.X])

	case AddIndex:
		target := mc.I + uint16(mc.V[ins.X])
		if int(target) >= memory.Size {
			return curated.Errorf(AddressOverflow, target)
		}
		mc.I = target

	case LoadDigit:
		mc.I = memory.DigitAddress(mc.V[ins.X])

	case StoreBCD:
		v := mc.V[ins.X]
		if err := mc.mem.Write(mc.I, v/100); err != nil {
			return err
		}
		if err := mc.mem.Write(mc.I+1, v/10%10); err != nil {
			return err
		}
		if err := mc.mem.Write(mc.I+2, v%10); err != nil {
			return err
		}

	case StoreRegs:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			if err := mc.mem.Write(mc.I+i, mc.V[i]); err != nil {
				return err
			}
		}
		if !mc.Quirks.PreserveIndex {
			mc.I += uint16(ins.X) + 1
		}

	case LoadRegs:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			b, err := mc.mem.Read(mc.I + i)
			if err != nil {
				return err
			}
			mc.V[i] = b
		}
		if !mc.Quirks.PreserveIndex {
			mc.I += uint16(ins.X) + 1
		}
	}

	return nil
}

// setFlag puts the result of a carry/borrow/collision test into the flag
// register. Always last in the instruction's execution so that instructions
// targeting V[0xf] itself still leave the flag, as real interpreters did.
func (mc *CPU) setFlag(set bool) {
	if set {
		mc.V[0xf] = 0x01
	} else {
		mc.V[0xf] = 0x00
	}
}

// String returns the register file in the format used by the debugger's
// REGISTERS command.
func (mc *CPU) String() string {
	s := strings.Builder{}
	for i := 0; i < NumRegisters; i++ {
		if i > 0 && i%8 == 0 {
			s.WriteString("\n")
		} else if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("V%X=%02x", i, mc.V[i]))
	}
	s.WriteString(fmt.Sprintf("\nI=%#04x PC=%#04x SP=%d", mc.I, mc.PC, mc.Stack.Depth()))
	s.WriteString(fmt.Sprintf("\nDT=%02x ST=%02x", mc.tmr.Delay(), mc.tmr.Sound()))
	s.WriteString(fmt.Sprintf("\nstatus: %s", mc.status))
	if mc.execErr != nil {
		s.WriteString(fmt.Sprintf(" (%s)", mc.execErr))
	}
	return s.String()
}
