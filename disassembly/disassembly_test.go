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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/gopher8/gopher8/disassembly"
	"github.com/gopher8/gopher8/test"
)

func TestListing(t *testing.T) {
	dsm := disassembly.FromData([]byte{
		0x00, 0xe0, // CLS
		0xa2, 0x0a, // LD I, 0x20a
		0x12, 0x02, // JP 0x202
		0xff, 0xff, // does not decode
	})

	test.Equate(t, len(dsm.Entries), 4)

	s := strings.Builder{}
	test.ExpectedSuccess(t, dsm.Write(&s))

	lines := strings.Split(strings.TrimSpace(s.String()), "\n")
	test.Equate(t, len(lines), 4)
	test.Equate(t, lines[0], "0x0200  00e0  CLS")
	test.Equate(t, lines[1], "0x0202  a20a  LD I, 0x020a")
	test.Equate(t, lines[2], "0x0204  1202  JP 0x0202")
	test.Equate(t, lines[3], "0x0206  ffff  .dw 0xffff")
}

func TestFindAddress(t *testing.T) {
	dsm := disassembly.FromData([]byte{0x00, 0xe0, 0x12, 0x00})

	e, ok := dsm.FindAddress(0x0202)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, e.Opcode, 0x1200)

	_, ok = dsm.FindAddress(0x0204)
	test.ExpectedFailure(t, ok)
	_, ok = dsm.FindAddress(0x0100)
	test.ExpectedFailure(t, ok)
}

func TestOddLength(t *testing.T) {
	dsm := disassembly.FromData([]byte{0x00, 0xe0, 0x80})
	test.Equate(t, len(dsm.Entries), 2)
	test.Equate(t, dsm.Entries[1].Opcode, 0x8000)
}
