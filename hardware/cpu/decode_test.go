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
	"github.com/gopher8/gopher8/test"
)

func TestDecodeOperands(t *testing.T) {
	ins, err := cpu.Decode(0xd12f)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.DrawSprite))
	test.Equate(t, ins.X, 0x1)
	test.Equate(t, ins.Y, 0x2)
	test.Equate(t, ins.Nibble, 0xf)

	ins, err = cpu.Decode(0x1abc)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.Jump))
	test.Equate(t, ins.Address, 0x0abc)

	ins, err = cpu.Decode(0x63ff)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.LoadData))
	test.Equate(t, ins.X, 0x3)
	test.Equate(t, ins.Data, 0xff)
}

func TestDecodeMachineRoutine(t *testing.T) {
	// 0NNN patterns other than CLS and RET decode as SYS
	ins, err := cpu.Decode(0x0123)
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(ins.Operator), int(cpu.Sys))
	test.Equate(t, ins.Address, 0x0123)
}

func TestDecodeInvalid(t *testing.T) {
	for _, opcode := range []uint16{0x5ab1, 0x8ab8, 0x9ab5, 0xe1c0, 0xf1ff} {
		_, err := cpu.Decode(opcode)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, cpu.InvalidOpcode))
	}
}

func TestMnemonics(t *testing.T) {
	for _, c := range []struct {
		opcode   uint16
		mnemonic string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x1abc, "JP 0x0abc"},
		{0x2abc, "CALL 0x0abc"},
		{0x8126, "SHR V1"},
		{0xa123, "LD I, 0x0123"},
		{0xf10a, "LD V1, K"},
		{0xf255, "LD [I], V2"},
	} {
		ins, err := cpu.Decode(c.opcode)
		test.ExpectedSuccess(t, err)
		test.Equate(t, ins.String(), c.mnemonic)
	}
}
