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

// Package memory implements the flat, byte addressable memory of the CHIP-8
// machine. The lowest region holds the built-in font sprites; the program
// region begins at the origin address 0x200.
package memory

import (
	"github.com/gopher8/gopher8/curated"
)

// Size is the amount of addressable memory, in bytes.
const Size = 0x1000

// Origin is the address at which programs are loaded and begin execution.
// Memory below the origin is reserved for the interpreter; in this
// implementation only the font sprites live there.
const Origin = 0x0200

// MaxROMSize is the largest ROM that can fit in the program region.
const MaxROMSize = Size - Origin

// Sentinal errors raised by the memory package.
const (
	OutOfBounds = "memory: out of bounds (%#04x)"
	RomTooLarge = "memory: rom too large (%d bytes, %d bytes available)"
)

// Memory is the flat memory map of the CHIP-8 machine.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears all memory and repopulates the font region.
func (mem *Memory) Reset() {
	mem.ram = [Size]uint8{}
	copy(mem.ram[FontOrigin:], fontData[:])
}

// Read returns the byte at the specified address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(OutOfBounds, address)
	}
	return mem.ram[address], nil
}

// Write the byte to the specified address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(OutOfBounds, address)
	}
	mem.ram[address] = data
	return nil
}

// LoadROM copies the ROM byte stream into the program region. The ROM is
// validated before any memory is touched; a failed load leaves memory
// unchanged.
//
// Note that LoadROM does not clear memory. Use Reset() beforehand when
// loading a new program into a used machine.
func (mem *Memory) LoadROM(data []byte) error {
	if len(data) > MaxROMSize {
		return curated.Errorf(RomTooLarge, len(data), MaxROMSize)
	}
	copy(mem.ram[Origin:], data)
	return nil
}
