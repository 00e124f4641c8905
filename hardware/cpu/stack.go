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
	"strings"

	"github.com/gopher8/gopher8/curated"
)

// StackDepth is the maximum number of return addresses the stack can hold.
const StackDepth = 16

// Sentinal errors raised by the stack.
const (
	StackOverflow  = "stack: overflow (depth %d)"
	StackUnderflow = "stack: underflow"
)

// Stack is the bounded stack of return addresses. Only the call and return
// instructions touch the stack contents; there is no other path to it.
type Stack struct {
	addresses [StackDepth]uint16
	depth     int
}

// Reset empties the stack.
func (stk *Stack) Reset() {
	stk.depth = 0
}

// Push a return address onto the stack. Fails with StackOverflow when the
// stack is at maximum depth, leaving the existing entries untouched.
func (stk *Stack) Push(address uint16) error {
	if stk.depth >= StackDepth {
		return curated.Errorf(StackOverflow, StackDepth)
	}
	stk.addresses[stk.depth] = address
	stk.depth++
	return nil
}

// Pop the most recently pushed return address. Fails with StackUnderflow
// when the stack is empty.
func (stk *Stack) Pop() (uint16, error) {
	if stk.depth == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	stk.depth--
	return stk.addresses[stk.depth], nil
}

// Depth returns the number of addresses currently on the stack.
func (stk *Stack) Depth() int {
	return stk.depth
}

// Addresses returns a copy of the stack contents, bottom first. Used by
// debugging frontends.
func (stk *Stack) Addresses() []uint16 {
	a := make([]uint16, stk.depth)
	copy(a, stk.addresses[:stk.depth])
	return a
}

func (stk *Stack) String() string {
	if stk.depth == 0 {
		return "empty"
	}
	s := strings.Builder{}
	for i := 0; i < stk.depth; i++ {
		if i > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("%#04x", stk.addresses[i]))
	}
	return s.String()
}
