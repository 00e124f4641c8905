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

// Package debugger implements an interactive command line debugger for the
// emulated machine. The machine is stepped by hand, run to breakpoints, and
// inspected through the terminal interface defined in the terminal
// sub-package.
package debugger

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gopher8/gopher8/audio/beeper"
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/debugger/terminal"
	"github.com/gopher8/gopher8/disassembly"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/performance/limiter"
	"github.com/gopher8/gopher8/romloader"
)

// the number of instructions between timer ticks when stepping and running
// inside the debugger. based on a nominal 700 instructions per second.
const stepsPerTick = 700 / timer.TicksPerSecond

// Debugger is the interactive debugger for the emulated machine.
type Debugger struct {
	ch8  *hardware.CHIP8
	dsm  *disassembly.Disasm
	term terminal.Terminal
	roml romloader.Loader

	breakpoints map[uint16]bool

	events *terminal.ReadEvents

	// the RUN command paces the machine against the wall clock and, when
	// sound is enabled, plays the beeper. both are created on first use.
	lim       *limiter.RateLimiter
	sound     bool
	snd       *beeper.Beeper
	sndFailed bool

	// instructions executed since the timers last ticked.
	sinceTick int

	// the input loop ends when this is set.
	quit bool

	// the previous input line, repeated when the user presses return on an
	// empty line.
	lastInput string
}

// NewDebugger creates a machine and the apparatus to debug it.
func NewDebugger(term terminal.Terminal, q quirks.Quirks) *Debugger {
	dbg := &Debugger{
		ch8:         hardware.NewCHIP8(q),
		term:        term,
		breakpoints: make(map[uint16]bool),
	}

	dbg.events = &terminal.ReadEvents{
		Signal: make(chan os.Signal, 1),
		SignalHandler: func(sig os.Signal) error {
			return curated.Errorf(terminal.UserInterrupt)
		},
	}

	return dbg
}

// EnableSound allows the RUN command to play the beeper. Disabled by default.
func (dbg *Debugger) EnableSound(enable bool) {
	dbg.sound = enable
}

// Start the interactive session. Returns when the user quits.
func (dbg *Debugger) Start(roml romloader.Loader) error {
	if err := dbg.ch8.AttachROM(roml); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	dbg.roml = roml

	var err error
	dbg.dsm, err = disassembly.FromLoader(roml)
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}

	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.events.Signal, os.Interrupt)
	defer signal.Stop(dbg.events.Signal)

	dbg.printInstruction()

	err = dbg.inputLoop()

	if dbg.snd != nil {
		_ = dbg.snd.End()
	}

	return err
}

// inputLoop reads and dispatches commands until the QUIT command or the input
// stream ends.
func (dbg *Debugger) inputLoop() error {
	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt(), dbg.events)
		if err != nil {
			// interrupt or end of input at the prompt is a request to leave,
			// same as QUIT
			if curated.Is(err, terminal.UserInterrupt) || curated.Is(err, terminal.UserAbort) {
				return nil
			}
			return err
		}

		if input == "" {
			input = dbg.lastInput
		} else {
			dbg.lastInput = input
		}

		if err := dbg.parseCommand(input); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// prompt builds the prompt for the next TermRead. The content is the
// disassembly of the instruction the PC points at.
func (dbg *Debugger) prompt() terminal.Prompt {
	content := fmt.Sprintf("%#04x", dbg.ch8.CPU.PC)
	if e, ok := dbg.dsm.FindAddress(dbg.ch8.CPU.PC); ok {
		content = e.String()
	}
	return terminal.Prompt{
		Content: content,
		Halted:  dbg.ch8.IsHalted(),
	}
}

// step the machine once, keeping the timers ticking at the right ratio.
func (dbg *Debugger) step() error {
	if err := dbg.ch8.Step(); err != nil {
		return err
	}

	dbg.sinceTick++
	if dbg.sinceTick >= stepsPerTick {
		dbg.sinceTick = 0
		dbg.ch8.TickTimers()
	}

	return nil
}

// printInstruction shows the instruction at the current PC.
func (dbg *Debugger) printInstruction() {
	if e, ok := dbg.dsm.FindAddress(dbg.ch8.CPU.PC); ok {
		dbg.term.TermPrintLine(terminal.StyleInstruction, e.String())
	}
}
