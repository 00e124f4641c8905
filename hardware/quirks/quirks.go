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

// Package quirks enumerates the historically ambiguous CHIP-8 instruction
// behaviours. Different interpreter lineages disagreed on these and ROMs
// written for one lineage misbehave on another, so the choice must be
// explicit rather than baked into the execution logic.
//
// The default values follow the CHIP-48/SCHIP lineage for the shift and
// store/load instructions, and the original interpreter for jumping and
// drawing. This matches the majority of ROMs in circulation. ROMs written for
// the original COSMAC VIP interpreter need the "vip" preset.
package quirks

import (
	"github.com/gopher8/gopher8/curated"
)

// Sentinal error raised by the quirks package.
const UnknownPreset = "quirks: unknown preset (%s)"

// Quirks is the set of variant behaviours the CPU consults during execution.
// The zero value is not useful; use Default() or Preset().
type Quirks struct {
	// the shift instructions operate on the register being shifted (VX),
	// ignoring the source register operand. when false, the value of VY is
	// shifted into VX, as the original interpreter did.
	ShiftTarget bool

	// the store/load register range instructions leave the index register
	// unchanged. when false, the index register is incremented as a side
	// effect, as the original interpreter did.
	PreserveIndex bool

	// the jump-with-offset instruction takes its offset from the register
	// selected by the high nibble of the target address. when false, the
	// offset always comes from V0.
	JumpHighNibble bool

	// sprites drawn over the display edge wrap to the opposite edge. when
	// false, the overflowing part of the sprite is clipped.
	DrawWrap bool
}

// Default returns the default quirk set.
func Default() Quirks {
	return Quirks{
		ShiftTarget:    true,
		PreserveIndex:  true,
		JumpHighNibble: false,
		DrawWrap:       true,
	}
}

// Preset returns the named quirk set. Valid names are "default", "vip" (the
// original COSMAC VIP interpreter) and "schip" (the HP48 SCHIP interpreter).
// The empty string is an alias of "default".
func Preset(name string) (Quirks, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "vip":
		return Quirks{
			ShiftTarget:    false,
			PreserveIndex:  false,
			JumpHighNibble: false,
			DrawWrap:       true,
		}, nil
	case "schip":
		return Quirks{
			ShiftTarget:    true,
			PreserveIndex:  true,
			JumpHighNibble: true,
			DrawWrap:       false,
		}, nil
	}
	return Quirks{}, curated.Errorf(UnknownPreset, name)
}
