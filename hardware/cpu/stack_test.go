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

func TestStackRoundtrip(t *testing.T) {
	stk := cpu.Stack{}

	test.ExpectedSuccess(t, stk.Push(0x0200))
	test.ExpectedSuccess(t, stk.Push(0x0300))
	test.Equate(t, stk.Depth(), 2)

	address, err := stk.Pop()
	test.ExpectedSuccess(t, err)
	test.Equate(t, address, 0x0300)

	address, err = stk.Pop()
	test.ExpectedSuccess(t, err)
	test.Equate(t, address, 0x0200)
	test.Equate(t, stk.Depth(), 0)
}

func TestStackUnderflow(t *testing.T) {
	stk := cpu.Stack{}

	_, err := stk.Pop()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackUnderflow))
}

func TestStackOverflow(t *testing.T) {
	stk := cpu.Stack{}

	for i := 0; i < cpu.StackDepth; i++ {
		test.ExpectedSuccess(t, stk.Push(uint16(0x0200+i*2)))
	}

	// the sixteen entries are intact after a failed push
	err := stk.Push(0x0999)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, cpu.StackOverflow))
	test.Equate(t, stk.Depth(), cpu.StackDepth)

	for i := cpu.StackDepth - 1; i >= 0; i-- {
		address, err := stk.Pop()
		test.ExpectedSuccess(t, err)
		test.Equate(t, address, 0x0200+i*2)
	}
}
