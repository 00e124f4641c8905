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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopher8/gopher8/audio/beeper"
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/debugger/terminal"
	"github.com/gopher8/gopher8/hardware/memory"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/performance/limiter"
	"github.com/gopher8/gopher8/screenshot"
)

// Sentinal errors raised by command parsing.
const (
	UnknownCommand  = "debugger: unknown command (%s)"
	InvalidArgument = "debugger: invalid argument (%s)"
	MissingArgument = "debugger: %s requires an argument"
)

const helpText = `STEP [n]          execute the next instruction (or the next n instructions)
RUN               run until a breakpoint, a halt or an interrupt
BREAK <address>   toggle a breakpoint at the address
CLEAR             remove all breakpoints
REGISTERS         show the CPU registers and timers
STACK             show the address stack
MEMORY <address> [n]
                  show n bytes of memory from the address (default 16)
DISASM            show the disassembly of the whole ROM
DISPLAY           show the display buffer
KEY <key> [UP]    press (or release) a key, 0 to F
TICK [n]          tick the timers
RESET             reset the machine and reattach the ROM
SCREENSHOT [file] save the display buffer as a PNG
QUIT              leave the debugger`

// parse a numeric argument. hexadecimal with a # or 0x prefix, decimal
// otherwise.
func parseNumber(arg string) (uint16, error) {
	base := 10
	s := arg
	if strings.HasPrefix(s, "#") {
		base = 16
		s = s[1:]
	} else if strings.HasPrefix(strings.ToLower(s), "0x") {
		base = 16
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, arg)
	}
	return uint16(v), nil
}

// parseCommand dispatches one line of input.
func (dbg *Debugger) parseCommand(input string) error {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil
	}

	command := strings.ToUpper(fields[0])
	args := fields[1:]

	switch command {
	case "HELP":
		dbg.term.TermPrintLine(terminal.StyleHelp, helpText)

	case "STEP":
		n := 1
		if len(args) > 0 {
			v, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			n = int(v)
		}
		for i := 0; i < n; i++ {
			if err := dbg.step(); err != nil {
				return err
			}
		}
		dbg.printInstruction()

	case "RUN":
		return dbg.run()

	case "BREAK":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		address, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		if dbg.breakpoints[address] {
			delete(dbg.breakpoints, address)
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint removed at %#04x", address))
		} else {
			dbg.breakpoints[address] = true
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint added at %#04x", address))
		}

	case "CLEAR":
		dbg.breakpoints = make(map[uint16]bool)
		dbg.term.TermPrintLine(terminal.StyleFeedback, "breakpoints cleared")

	case "REGISTERS":
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.ch8.CPU.String())

	case "STACK":
		dbg.term.TermPrintLine(terminal.StyleFeedback, dbg.ch8.CPU.Stack.String())

	case "MEMORY":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		address, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		length := uint16(16)
		if len(args) > 1 {
			length, err = parseNumber(args[1])
			if err != nil {
				return err
			}
		}
		return dbg.printMemory(address, length)

	case "DISASM":
		s := &strings.Builder{}
		if err := dbg.dsm.Write(s); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, strings.TrimSuffix(s.String(), "\n"))

	case "DISPLAY":
		dbg.term.TermPrintLine(terminal.StyleFeedback, strings.TrimSuffix(dbg.ch8.Video.String(), "\n"))

	case "KEY":
		if len(args) == 0 {
			return curated.Errorf(MissingArgument, command)
		}
		key, err := strconv.ParseUint(args[0], 16, 8)
		if err != nil || key > 0x0f {
			return curated.Errorf(InvalidArgument, args[0])
		}
		pressed := true
		if len(args) > 1 && strings.EqualFold(args[1], "UP") {
			pressed = false
		}
		return dbg.ch8.Keypad.SetKey(int(key), pressed)

	case "TICK":
		n := 1
		if len(args) > 0 {
			v, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			n = int(v)
		}
		for i := 0; i < n; i++ {
			dbg.ch8.TickTimers()
		}

	case "RESET":
		if err := dbg.ch8.AttachROM(dbg.roml); err != nil {
			return err
		}
		dbg.sinceTick = 0
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case "SCREENSHOT":
		path := "gopher8_screenshot.png"
		if len(args) > 0 {
			path = args[0]
		}
		if err := screenshot.Save(dbg.ch8.Video, path); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("saved %s", path))

	case "QUIT":
		dbg.quit = true

	default:
		return curated.Errorf(UnknownCommand, command)
	}

	return nil
}

// run the machine until a breakpoint, a halt or a user interrupt. the
// machine is paced against the wall clock so timers and sound behave as they
// would in play mode.
func (dbg *Debugger) run() error {
	if dbg.lim == nil {
		var err error
		dbg.lim, err = limiter.NewRateLimiter(timer.TicksPerSecond)
		if err != nil {
			return err
		}
	}

	if dbg.sound && dbg.snd == nil && !dbg.sndFailed {
		var err error
		dbg.snd, err = beeper.NewBeeper()
		if err != nil {
			dbg.sndFailed = true
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	if dbg.snd != nil {
		defer dbg.snd.SetActive(false)
	}

	for {
		if err := dbg.step(); err != nil {
			return err
		}

		// sinceTick wraps to zero when step() ticks the timers
		if dbg.sinceTick == 0 {
			if dbg.snd != nil {
				dbg.snd.SetActive(dbg.ch8.SoundActive())
			}
			dbg.lim.Wait()
		}

		if dbg.breakpoints[dbg.ch8.CPU.PC] {
			dbg.term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint at %#04x", dbg.ch8.CPU.PC))
			dbg.printInstruction()
			return nil
		}

		select {
		case <-dbg.events.Signal:
			dbg.term.TermPrintLine(terminal.StyleFeedback, "interrupted")
			dbg.printInstruction()
			return nil
		default:
		}
	}
}

// printMemory shows a hex dump of the address range, eight bytes per row.
func (dbg *Debugger) printMemory(address uint16, length uint16) error {
	s := &strings.Builder{}

	for i := uint16(0); i < length; i++ {
		if int(address)+int(i) >= memory.Size {
			break
		}

		if i%8 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%#04x ", address+i))
		}

		v, err := dbg.ch8.Mem.Read(address + i)
		if err != nil {
			return err
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}

	dbg.term.TermPrintLine(terminal.StyleFeedback, s.String())
	return nil
}
