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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gopher8/gopher8/assembler"
	"github.com/gopher8/gopher8/debugger"
	"github.com/gopher8/gopher8/debugger/terminal"
	"github.com/gopher8/gopher8/debugger/terminal/colorterm"
	"github.com/gopher8/gopher8/debugger/terminal/plainterm"
	"github.com/gopher8/gopher8/disassembly"
	"github.com/gopher8/gopher8/hardware/preferences"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/modalflag"
	"github.com/gopher8/gopher8/performance"
	"github.com/gopher8/gopher8/playmode"
	"github.com/gopher8/gopher8/romloader"
	"github.com/gopher8/gopher8/statsview"
	"github.com/gopher8/gopher8/version"
)

func init() {
	// SDL and GLFW want the main thread
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "DEBUG", "DISASM", "ASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "PLAY":
		err = play(md)

	case "DEBUG":
		err = debug(md)

	case "DISASM":
		err = disasm(md)

	case "ASM":
		err = asm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		ver, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, ver)
		if !release {
			fmt.Printf("  %s\n", rev)
		}
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// resolveQuirks returns the quirks selection for the named preset. The empty
// string means the saved preferences, falling back to the defaults when no
// preferences file exists.
func resolveQuirks(preset string) (quirks.Quirks, error) {
	if preset == "" {
		prf, err := preferences.NewPreferences()
		if err != nil {
			return quirks.Quirks{}, err
		}
		return prf.Quirks(), nil
	}
	return quirks.Preset(strings.ToLower(preset))
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	backend := md.AddString("backend", "sdl", "display backend: SDL, GL")
	scale := md.AddInt("scale", 10, "display scaling")
	preset := md.AddString("quirks", "", "quirks preset: DEFAULT, VIP, SCHIP")
	fpsCap := md.AddBool("fpscap", true, "cap emulation to the timer frequency")
	wav := md.AddString("wav", "", "record audio to wav file")
	stats := md.AddBool("statsview", false, "run stats server")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		q, err := resolveQuirks(*preset)
		if err != nil {
			return err
		}

		roml := romloader.NewLoader(md.GetArg(0))
		return playmode.Play(strings.ToLower(*backend), *scale, q, !*fpsCap, *wav, roml)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	termType := md.AddString("term", "COLOR", "terminal type to use in debug mode: COLOR, PLAIN")
	preset := md.AddString("quirks", "", "quirks preset: DEFAULT, VIP, SCHIP")
	sound := md.AddBool("sound", true, "play the beeper during the RUN command")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Printf("! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = &plainterm.PlainTerminal{}
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		q, err := resolveQuirks(*preset)
		if err != nil {
			return err
		}

		dbg := debugger.NewDebugger(term, q)
		dbg.EnableSound(*sound)
		return dbg.Start(romloader.NewLoader(md.GetArg(0)))
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		dsm, err := disassembly.FromLoader(romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}
		return dsm.Write(md.Output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func asm(md *modalflag.Modes) error {
	md.NewMode()

	outFile := md.AddString("o", "", "output file. by default the input file with a .ch8 extension")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("assembly source file required for %s mode", md)
	case 1:
		inFile := md.GetArg(0)

		if *outFile == "" {
			ext := filepath.Ext(inFile)
			*outFile = strings.TrimSuffix(inFile, ext) + ".ch8"
		}

		input, err := os.Open(inFile)
		if err != nil {
			return err
		}
		defer input.Close()

		output, err := os.Create(*outFile)
		if err != nil {
			return err
		}

		if err := assembler.Assemble(input, output); err != nil {
			_ = output.Close()
			return err
		}
		return output.Close()
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	preset := md.AddString("quirks", "", "quirks preset: DEFAULT, VIP, SCHIP")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM file required for %s mode", md)
	case 1:
		q, err := resolveQuirks(*preset)
		if err != nil {
			return err
		}

		roml := romloader.NewLoader(md.GetArg(0))
		return performance.Check(md.Output, roml, q, *duration, *profile, *profile)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}
