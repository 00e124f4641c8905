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

package colorterm

import (
	"unicode"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/debugger/terminal"
	"github.com/gopher8/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/gopher8/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
//
// The terminal is placed in raw mode for the duration of the read so that
// cursor keys, backspace and history scrolling can be handled directly.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt, events *terminal.ReadEvents) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	input := make([]rune, 0, 255)
	cursor := 0
	history := len(ct.commandHistory)

	// the latest unsubmitted input is kept aside while scrolling through
	// history so the user can return to it
	var pending []rune

	redraw := func() {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.Pens["white"])
		ct.EasyTerm.TermPrint(prompt.String())
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursor - len(input)))
	}

	for {
		redraw()

		// an interrupt may have arrived while we were waiting for a key
		select {
		case sig := <-events.Signal:
			ct.EasyTerm.TermPrint("\n")
			return "", events.SignalHandler(sig)
		default:
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			ct.EasyTerm.TermPrint("\n")
			s := string(input)
			if s != "" && (len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s) {
				ct.commandHistory = append(ct.commandHistory, s)
			}
			return s, nil

		case easyterm.KeyEsc:
			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						pending = append([]rune(nil), input...)
					}
					history--
					input = append(input[:0], []rune(ct.commandHistory[history])...)
					cursor = len(input)
				}

			case easyterm.CursorDown:
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						input = append(input[:0], pending...)
					} else {
						input = append(input[:0], []rune(ct.commandHistory[history])...)
					}
					cursor = len(input)
				}

			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDel:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
