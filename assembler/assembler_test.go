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

package assembler_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gopher8/gopher8/assembler"
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/test"
)

func assemble(t *testing.T, src string) []byte {
	t.Helper()
	rom, err := assembler.AssembleSource(src)
	if err != nil {
		t.Fatal(err)
	}
	return rom
}

func equateROM(t *testing.T, rom []byte, expected []byte) {
	t.Helper()
	if !bytes.Equal(rom, expected) {
		t.Errorf("rom does not match: got % 02x, expected % 02x", rom, expected)
	}
}

func TestBasicInstructions(t *testing.T) {
	rom := assemble(t, `
		CLS
		LD V0, #2a
		ADD V0, 1
		LD I, #20a
		DRW V0, V1, 5
		RET
	`)
	equateROM(t, rom, []byte{
		0x00, 0xe0,
		0x60, 0x2a,
		0x70, 0x01,
		0xa2, 0x0a,
		0xd0, 0x15,
		0x00, 0xee,
	})
}

func TestSpecialOperands(t *testing.T) {
	rom := assemble(t, `
		LD V1, DT
		LD DT, V1
		LD ST, V2
		LD V3, K
		LD F, V4
		LD B, V5
		LD [I], V6
		LD V7, [I]
		ADD I, V8
	`)
	equateROM(t, rom, []byte{
		0xf1, 0x07,
		0xf1, 0x15,
		0xf2, 0x18,
		0xf3, 0x0a,
		0xf4, 0x29,
		0xf5, 0x33,
		0xf6, 0x55,
		0xf7, 0x65,
		0xf8, 0x1e,
	})
}

func TestLabels(t *testing.T) {
	// the jump target is defined after the reference
	rom := assemble(t, `
		start:
			JP done
			CLS
		done:
			JP start
	`)
	equateROM(t, rom, []byte{
		0x12, 0x04,
		0x00, 0xe0,
		0x12, 0x00,
	})
}

func TestDataDirectives(t *testing.T) {
	rom := assemble(t, `
		DB #f0
		DB 144
		DW #1234
	`)
	equateROM(t, rom, []byte{0xf0, 0x90, 0x12, 0x34})
}

func TestJumpOffsetForm(t *testing.T) {
	rom := assemble(t, `JP V0, #280`)
	equateROM(t, rom, []byte{0xb2, 0x80})
}

func TestShiftForms(t *testing.T) {
	rom := assemble(t, `
		SHR V1
		SHL V2
		SHR V1, V3
	`)
	equateROM(t, rom, []byte{0x81, 0x16, 0x82, 0x2e, 0x81, 0x36})
}

func TestComments(t *testing.T) {
	rom := assemble(t, `
		; a comment on its own
		CLS ; a trailing comment
	`)
	equateROM(t, rom, []byte{0x00, 0xe0})
}

func TestRoundtrip(t *testing.T) {
	input := strings.NewReader("CLS\nJP #200\n")
	output := &bytes.Buffer{}
	test.ExpectedSuccess(t, assembler.Assemble(input, output))
	equateROM(t, output.Bytes(), []byte{0x00, 0xe0, 0x12, 0x00})
}

func TestErrors(t *testing.T) {
	for _, c := range []struct {
		src      string
		sentinel string
	}{
		{"JP nowhere", assembler.UndefinedLabel},
		{"here:\nhere:\nCLS", assembler.DuplicateLabel},
		{"JP #1000", assembler.InvalidAddress},
		{"LD V0, #100", assembler.InvalidByte},
		{"DRW V0, V1, 16", assembler.InvalidNibble},
		{"LD V0, #zz", assembler.InvalidNumber},
		{"FROB V0", assembler.InvalidLine},
	} {
		_, err := assembler.AssembleSource(c.src)
		test.ExpectedFailure(t, err)
		test.ExpectedSuccess(t, curated.Is(err, c.sentinel))
	}
}

func TestErrorLineNumbers(t *testing.T) {
	_, err := assembler.AssembleSource("CLS\nCLS\nFROB V0\n")
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, strings.Contains(err.Error(), "line 3"))
}
