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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
)

// ansi color numbers.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// Pens is the table of bright colors to be used for text.
var Pens map[string]string

// DimPens is the table of muted colors to be used for text.
var DimPens map[string]string

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// cursor control sequences.
const (
	ClearLine         = "\033[2K"
	CursorStore       = "\0337"
	CursorRestore     = "\0338"
	CursorForwardOne  = "\033[C"
	CursorBackwardOne = "\033[D"
)

// CursorMove returns the sequence moving the cursor n characters, forward for
// positive n and backward for negative n.
func CursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	}
	if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	for name, col := range map[string]int{
		"black":   colBlack,
		"red":     colRed,
		"green":   colGreen,
		"yellow":  colYellow,
		"blue":    colBlue,
		"magenta": colMagenta,
		"cyan":    colCyan,
		"white":   colWhite,
	} {
		Pens[name] = fmt.Sprintf("\033[3%d;1m", col)
		DimPens[name] = fmt.Sprintf("\033[3%dm", col)
	}
}
