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

// Package terminal defines the operations required for command line
// interaction with the debugger. Implementations are in the plainterm and
// colorterm sub-packages.
package terminal

import (
	"os"
)

// Sentinal errors returned by TermRead() when the user has interrupted or
// ended the input stream.
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Prompt is the information a terminal needs to show a prompt.
type Prompt struct {
	// the content, without decoration. typically the disassembly of the next
	// instruction to be executed.
	Content string

	// the machine has halted. terminals may want to show this prominently.
	Halted bool
}

// String returns the prompt with standard decoration. Terminals with styling
// of their own may prefer to build from the fields directly.
func (p Prompt) String() string {
	if p.Halted {
		return "[ " + p.Content + " ] !! "
	}
	return "[ " + p.Content + " ] >> "
}

// ReadEvents are the events a terminal should service while waiting in
// TermRead().
type ReadEvents struct {
	// interrupt signals from the operating system
	Signal        chan os.Signal
	SignalHandler func(os.Signal) error
}

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the next line of user input.
	//
	// If possible the implementation should check the ReadEvents channels for
	// activity while waiting. Implementations that can't will limit how
	// responsive the debugger is to interrupts.
	TermRead(prompt Prompt, events *ReadEvents) (string, error)

	// IsInteractive returns true for implementations that take their input
	// from a user rather than, say, a script.
	IsInteractive() bool
}

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all implementations need to do anything.
	Initialise() error

	// CleanUp restores the terminal to its original state, if possible. for
	// example, returning the terminal to canonical mode.
	CleanUp()

	// Silence all input and output except error messages.
	Silence(silenced bool)
}

// Style identifies the category of text being sent to the terminal, so that
// capable terminals can present each category differently.
type Style int

// List of valid Style values.
const (
	// the prompt. terminals that print the prompt through other means can
	// ignore this style.
	StylePrompt Style = iota

	// normal feedback from the debugger.
	StyleFeedback

	// the disassembly of the instruction just executed.
	StyleInstruction

	// help text.
	StyleHelp

	// error messages. shown even when the terminal is silenced.
	StyleError
)
