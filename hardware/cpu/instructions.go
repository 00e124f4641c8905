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

package cpu

import (
	"fmt"

	"github.com/gopher8/gopher8/curated"
)

// Sentinal error raised on decoding an unrecognised bit pattern.
const InvalidOpcode = "cpu: invalid opcode (%#04x)"

// Operator identifies the instruction class of a decoded instruction.
type Operator int

// The complete list of instruction classes in the CHIP-8 instruction set.
const (
	Cls Operator = iota
	Ret
	Sys
	Jump
	Call
	SkipEqData
	SkipNotEqData
	SkipEqReg
	LoadData
	AddData
	Move
	Or
	And
	Xor
	AddReg
	SubReg
	ShiftRight
	SubRegN
	ShiftLeft
	SkipNotEqReg
	LoadIndex
	JumpOffset
	Random
	DrawSprite
	SkipKeyPressed
	SkipKeyNotPressed
	LoadDelay
	WaitKey
	SetDelay
	SetSound
	AddIndex
	LoadDigit
	StoreBCD
	StoreRegs
	LoadRegs
)

// Instruction is the result of decoding a two byte instruction word: the
// instruction class and the operand fields. Only the fields meaningful to the
// operator are populated; the rest are zero.
type Instruction struct {
	// the instruction word the instruction was decoded from.
	Opcode uint16

	Operator Operator

	// register operands (the X and Y nibbles).
	X uint8
	Y uint8

	// the low nibble (N), byte (NN) and address (NNN) operands.
	Nibble  uint8
	Data    uint8
	Address uint16
}

// Decode the two byte instruction word into an Instruction. Bit patterns
// outside of the instruction set fail with InvalidOpcode.
func Decode(opcode uint16) (Instruction, error) {
	ins := Instruction{
		Opcode:  opcode,
		X:       uint8(opcode >> 8 & 0x0f),
		Y:       uint8(opcode >> 4 & 0x0f),
		Nibble:  uint8(opcode & 0x000f),
		Data:    uint8(opcode & 0x00ff),
		Address: opcode & 0x0fff,
	}

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			ins.Operator = Cls
		case 0x00ee:
			ins.Operator = Ret
		default:
			// 0NNN historically jumped to a machine code routine on the host
			// processor. there is no host processor here; it is treated as a
			// plain subroutine call, as most later interpreters did.
			ins.Operator = Sys
		}
	case 0x1000:
		ins.Operator = Jump
	case 0x2000:
		ins.Operator = Call
	case 0x3000:
		ins.Operator = SkipEqData
	case 0x4000:
		ins.Operator = SkipNotEqData
	case 0x5000:
		if ins.Nibble != 0x0 {
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
		ins.Operator = SkipEqReg
	case 0x6000:
		ins.Operator = LoadData
	case 0x7000:
		ins.Operator = AddData
	case 0x8000:
		switch ins.Nibble {
		case 0x0:
			ins.Operator = Move
		case 0x1:
			ins.Operator = Or
		case 0x2:
			ins.Operator = And
		case 0x3:
			ins.Operator = Xor
		case 0x4:
			ins.Operator = AddReg
		case 0x5:
			ins.Operator = SubReg
		case 0x6:
			ins.Operator = ShiftRight
		case 0x7:
			ins.Operator = SubRegN
		case 0xe:
			ins.Operator = ShiftLeft
		default:
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
	case 0x9000:
		if ins.Nibble != 0x0 {
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
		ins.Operator = SkipNotEqReg
	case 0xa000:
		ins.Operator = LoadIndex
	case 0xb000:
		ins.Operator = JumpOffset
	case 0xc000:
		ins.Operator = Random
	case 0xd000:
		ins.Operator = DrawSprite
	case 0xe000:
		switch ins.Data {
		case 0x9e:
			ins.Operator = SkipKeyPressed
		case 0xa1:
			ins.Operator = SkipKeyNotPressed
		default:
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
	case 0xf000:
		switch ins.Data {
		case 0x07:
			ins.Operator = LoadDelay
		case 0x0a:
			ins.Operator = WaitKey
		case 0x15:
			ins.Operator = SetDelay
		case 0x18:
			ins.Operator = SetSound
		case 0x1e:
			ins.Operator = AddIndex
		case 0x29:
			ins.Operator = LoadDigit
		case 0x33:
			ins.Operator = StoreBCD
		case 0x55:
			ins.Operator = StoreRegs
		case 0x65:
			ins.Operator = LoadRegs
		default:
			return Instruction{}, curated.Errorf(InvalidOpcode, opcode)
		}
	}

	return ins, nil
}

// String returns the instruction in the mnemonic form used by the assembler.
func (ins Instruction) String() string {
	switch ins.Operator {
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Sys:
		return fmt.Sprintf("SYS %#04x", ins.Address)
	case Jump:
		return fmt.Sprintf("JP %#04x", ins.Address)
	case Call:
		return fmt.Sprintf("CALL %#04x", ins.Address)
	case SkipEqData:
		return fmt.Sprintf("SE V%X, %#02x", ins.X, ins.Data)
	case SkipNotEqData:
		return fmt.Sprintf("SNE V%X, %#02x", ins.X, ins.Data)
	case SkipEqReg:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case LoadData:
		return fmt.Sprintf("LD V%X, %#02x", ins.X, ins.Data)
	case AddData:
		return fmt.Sprintf("ADD V%X, %#02x", ins.X, ins.Data)
	case Move:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case AddReg:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case SubReg:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X", ins.X)
	case SubRegN:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X", ins.X)
	case SkipNotEqReg:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("LD I, %#04x", ins.Address)
	case JumpOffset:
		return fmt.Sprintf("JP V0, %#04x", ins.Address)
	case Random:
		return fmt.Sprintf("RND V%X, %#02x", ins.X, ins.Data)
	case DrawSprite:
		return fmt.Sprintf("DRW V%X, V%X, %#x", ins.X, ins.Y, ins.Nibble)
	case SkipKeyPressed:
		return fmt.Sprintf("SKP V%X", ins.X)
	case SkipKeyNotPressed:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case LoadDelay:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case SetDelay:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case SetSound:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LoadDigit:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case StoreBCD:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case StoreRegs:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case LoadRegs:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return fmt.Sprintf("??? %#04x", ins.Opcode)
}
