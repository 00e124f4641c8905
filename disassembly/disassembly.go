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

// Package disassembly turns ROM data back into assembly mnemonics.
//
// CHIP-8 ROMs freely mix code and data and carry no markers to tell the two
// apart. The disassembler walks the ROM two bytes at a time from the load
// origin; words that do not decode are presented as data. Sprite data that
// happens to decode will be presented as instructions, and code at odd
// addresses will be misread. There is no way to do better without executing
// the program.
package disassembly

import (
	"fmt"
	"io"

	"github.com/gopher8/gopher8/hardware/cpu"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/romloader"
)

// Entry is one word of the ROM with its disassembled form.
type Entry struct {
	Address uint16
	Opcode  uint16

	// the disassembled instruction. not meaningful when IsData is true.
	Instruction cpu.Instruction

	// the word did not decode as an instruction.
	IsData bool
}

// String returns the entry formatted as a line of a listing.
func (e Entry) String() string {
	if e.IsData {
		return fmt.Sprintf("%#04x  %04x  .dw %#04x", e.Address, e.Opcode, e.Opcode)
	}
	return fmt.Sprintf("%#04x  %04x  %s", e.Address, e.Opcode, e.Instruction.String())
}

// Disasm is the disassembled ROM.
type Disasm struct {
	Entries []Entry
}

// FromLoader loads the ROM and disassembles it.
func FromLoader(roml romloader.Loader) (*Disasm, error) {
	if err := roml.Load(); err != nil {
		return nil, err
	}
	return FromData(roml.Data), nil
}

// FromData disassembles a ROM byte stream. A trailing odd byte is treated as
// a data word with a zero low byte.
func FromData(data []byte) *Disasm {
	dsm := &Disasm{
		Entries: make([]Entry, 0, (len(data)+1)/2),
	}

	for i := 0; i < len(data); i += 2 {
		opcode := uint16(data[i]) << 8
		if i+1 < len(data) {
			opcode |= uint16(data[i+1])
		}

		e := Entry{
			Address: memory.Origin + uint16(i),
			Opcode:  opcode,
		}

		ins, err := cpu.Decode(opcode)
		if err != nil {
			e.IsData = true
		} else {
			e.Instruction = ins
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	return dsm
}

// FindAddress returns the entry covering the address, or false if the address
// is outside the ROM. An odd address returns the entry it falls inside.
func (dsm *Disasm) FindAddress(address uint16) (Entry, bool) {
	idx := (int(address) - memory.Origin) / 2
	if idx < 0 || idx >= len(dsm.Entries) {
		return Entry{}, false
	}
	return dsm.Entries[idx], true
}

// Write the disassembly as a listing, one entry per line.
func (dsm *Disasm) Write(output io.Writer) error {
	for _, e := range dsm.Entries {
		if _, err := fmt.Fprintln(output, e.String()); err != nil {
			return err
		}
	}
	return nil
}
