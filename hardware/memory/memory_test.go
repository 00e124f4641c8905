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

package memory_test

import (
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/test"
)

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectedSuccess(t, mem.Write(0x0300, 0xab))
	d, err := mem.Read(0x0300)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xab)

	// last valid address
	test.ExpectedSuccess(t, mem.Write(memory.Size-1, 0x01))

	// out of bounds access
	err = mem.Write(memory.Size, 0x01)
	test.ExpectedSuccess(t, curated.Is(err, memory.OutOfBounds))
	_, err = mem.Read(0xffff)
	test.ExpectedSuccess(t, curated.Is(err, memory.OutOfBounds))
}

func TestFontRegion(t *testing.T) {
	mem := memory.NewMemory()

	// first row of the sprite for digit 0
	d, err := mem.Read(memory.DigitAddress(0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xf0)

	// first row of the sprite for digit F
	d, err = mem.Read(memory.DigitAddress(0xf))
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xf0)

	// sprites are five bytes apart
	test.Equate(t, memory.DigitAddress(1), memory.FontOrigin+memory.FontHeight)

	// only the low nibble of the digit is considered
	test.Equate(t, memory.DigitAddress(0x1a), memory.DigitAddress(0x0a))
}

func TestLoadROM(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectedSuccess(t, mem.LoadROM([]byte{0x12, 0x00}))
	d, _ := mem.Read(memory.Origin)
	test.Equate(t, d, 0x12)
	d, _ = mem.Read(memory.Origin + 1)
	test.Equate(t, d, 0x00)
}

func TestLoadROMTooLarge(t *testing.T) {
	mem := memory.NewMemory()
	test.ExpectedSuccess(t, mem.Write(memory.Origin, 0x55))

	// one byte too many
	rom := make([]byte, memory.MaxROMSize+1)
	err := mem.LoadROM(rom)
	test.ExpectedSuccess(t, curated.Is(err, memory.RomTooLarge))

	// failed load leaves memory untouched
	d, _ := mem.Read(memory.Origin)
	test.Equate(t, d, 0x55)

	// the maximum size is fine
	test.ExpectedSuccess(t, mem.LoadROM(make([]byte, memory.MaxROMSize)))
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	test.ExpectedSuccess(t, mem.Write(0x0300, 0xab))
	mem.Reset()

	d, _ := mem.Read(0x0300)
	test.Equate(t, d, 0x00)

	// font region is repopulated on reset
	d, _ = mem.Read(memory.DigitAddress(0))
	test.Equate(t, d, 0xf0)
}
