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

package debugger_test

import (
	"strings"
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/debugger"
	"github.com/gopher8/gopher8/debugger/terminal"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/romloader"
	"github.com/gopher8/gopher8/test"
)

// mockTerm feeds a script of commands to the debugger and collects the
// output.
type mockTerm struct {
	script []string
	output []string
}

func (trm *mockTerm) Initialise() error { return nil }
func (trm *mockTerm) CleanUp()          {}
func (trm *mockTerm) Silence(bool)      {}
func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(_ terminal.Prompt, _ *terminal.ReadEvents) (string, error) {
	if len(trm.script) == 0 {
		return "", curated.Errorf(terminal.UserAbort)
	}
	input := trm.script[0]
	trm.script = trm.script[1:]
	return input, nil
}

func (trm *mockTerm) TermPrintLine(style terminal.Style, s string) {
	trm.output = append(trm.output, s)
}

func (trm *mockTerm) contains(t *testing.T, substring string) {
	t.Helper()
	for _, s := range trm.output {
		if strings.Contains(s, substring) {
			return
		}
	}
	t.Errorf("output does not contain %q", substring)
}

func startDebugger(t *testing.T, script []string, program ...uint16) *mockTerm {
	t.Helper()

	data := make([]byte, 0, len(program)*2)
	for _, opcode := range program {
		data = append(data, uint8(opcode>>8), uint8(opcode))
	}

	trm := &mockTerm{script: script}
	dbg := debugger.NewDebugger(trm, quirks.Default())
	err := dbg.Start(romloader.Loader{Filename: "test", Data: data})
	if err != nil {
		t.Fatal(err)
	}
	return trm
}

func TestStepAndRegisters(t *testing.T) {
	trm := startDebugger(t,
		[]string{"STEP", "REGISTERS", "QUIT"},
		0x6042, // LD V0, 0x42
	)
	trm.contains(t, "V0=42")
}

func TestBreakpoint(t *testing.T) {
	trm := startDebugger(t,
		[]string{"BREAK #204", "RUN", "REGISTERS", "QUIT"},
		0x6001, // LD V0, 0x01
		0x7001, // ADD V0, 0x01
		0x1202, // JP 0x202
	)
	trm.contains(t, "breakpoint at 0x0204")
	trm.contains(t, "V0=02")
}

func TestMemoryDump(t *testing.T) {
	trm := startDebugger(t,
		[]string{"MEMORY #200 2", "QUIT"},
		0x6042,
	)
	trm.contains(t, "60 42")
}

func TestDisplayCommand(t *testing.T) {
	trm := startDebugger(t,
		[]string{"STEP 2", "DISPLAY", "QUIT"},
		0xa000, // LD I, 0x000
		0xd015, // DRW V0, V1, 5
	)
	trm.contains(t, "█")
}

func TestUnknownCommand(t *testing.T) {
	trm := startDebugger(t,
		[]string{"WOBBLE", "QUIT"},
		0x6042,
	)
	trm.contains(t, "unknown command (WOBBLE)")
}

func TestEmptyInputRepeats(t *testing.T) {
	trm := startDebugger(t,
		[]string{"STEP", "", "REGISTERS", "QUIT"},
		0x6001, // LD V0, 0x01
		0x7001, // ADD V0, 0x01
	)
	trm.contains(t, "V0=02")
}

func TestScriptEndsSession(t *testing.T) {
	// an exhausted input script ends the session without error
	trm := startDebugger(t, []string{"STEP"}, 0x6042)
	test.ExpectedSuccess(t, len(trm.output) > 0)
}
