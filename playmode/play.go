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

// Package playmode runs the emulation with a graphical frontend and no
// debugging features.
package playmode

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/gui"
	"github.com/gopher8/gopher8/gui/glplay"
	"github.com/gopher8/gopher8/gui/sdlplay"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/logger"
	"github.com/gopher8/gopher8/performance/limiter"
	"github.com/gopher8/gopher8/romloader"
	"github.com/gopher8/gopher8/screenshot"
	"github.com/gopher8/gopher8/wavwriter"
)

// error sentinels for the playmode package.
const (
	PlayError      = "playmode: %v"
	UnknownBackend = "playmode: unknown backend (%s)"
)

// nominal instruction rate of the interpreter, per timer tick.
const stepsPerTick = 700 / timer.TicksPerSecond

// Play sets the emulation running. It returns when the user closes the
// window or interrupts the program.
func Play(backend string, scale int, q quirks.Quirks, uncapped bool, wavfile string, roml romloader.Loader) error {
	// the channel must be able to absorb every event a single Service() can
	// produce, because Service() runs on the same goroutine as the drain
	events := make(chan gui.Event, 32)

	var scr gui.GUI
	var err error

	switch backend {
	case "sdl", "":
		scr, err = sdlplay.NewSdlPlay(events, scale)
	case "gl":
		scr, err = glplay.NewGlPlay(events, scale)
	default:
		return curated.Errorf(UnknownBackend, backend)
	}
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.End()

	ch8 := hardware.NewCHIP8(q)
	if err := ch8.AttachROM(roml); err != nil {
		return curated.Errorf(PlayError, err)
	}
	scr.SetTitle(roml.ShortName())

	var aw *wavwriter.WavWriter
	if wavfile != "" {
		aw, err = wavwriter.New(wavfile)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		defer func() {
			if err := aw.End(); err != nil {
				logger.Logf("playmode", "%v", err)
			}
		}()
	}

	lim, err := limiter.NewRateLimiter(timer.TicksPerSecond)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	// once the interpreter halts the loop keeps running so the final frame
	// stays on screen. the cause is logged once
	halted := false

	for {
		if !halted {
			for i := 0; i < stepsPerTick; i++ {
				if err := ch8.Step(); err != nil {
					logger.Logf("playmode", "%v", err)
					halted = true
					break
				}
			}
			ch8.TickTimers()
		}

		scr.SetSound(ch8.SoundActive())
		if aw != nil {
			aw.AddFrame(ch8.SoundActive())
		}

		if err := scr.Render(ch8.Video.Copy()); err != nil {
			return curated.Errorf(PlayError, err)
		}
		scr.Service()

		select {
		case <-intChan:
			return nil
		default:
		}

		// handle everything the frontend queued this frame
		drained := false
		for !drained {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case gui.EventQuit:
					return nil
				case gui.EventKey:
					if err := ch8.Keypad.SetKey(int(ev.Key), ev.Pressed); err != nil {
						return curated.Errorf(PlayError, err)
					}
				case gui.EventScreenshot:
					saveScreenshot(ch8)
				}
			default:
				drained = true
			}
		}

		if !uncapped {
			lim.Wait()
		}
	}
}

func saveScreenshot(ch8 *hardware.CHIP8) {
	n := time.Now()
	path := fmt.Sprintf("gopher8_%04d%02d%02d_%02d%02d%02d.png",
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	if err := screenshot.Save(ch8.Video, path); err != nil {
		logger.Logf("playmode", "%v", err)
		return
	}
	logger.Logf("playmode", "screenshot saved to %s", path)
}
