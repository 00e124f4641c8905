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

// Package performance measures the raw speed of the emulation. The machine
// runs headless and uncapped for a fixed wall-clock period and the number of
// instructions executed per second is reported.
//
// The measurement can optionally run under the CPU profiler, or conclude with
// a heap profile, for digging into where the time goes.
package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/romloader"
)

// how often the run loop checks the wall clock, in instructions. checking
// time.Since() on every instruction costs more than the instruction.
const checkBrake = 1000

// Check the performance of the emulation using the supplied ROM.
//
// Timers are ticked at the correct ratio to the instruction count rather than
// from a wall clock, so a timer-bound ROM does not spin the measurement out.
func Check(output io.Writer, roml romloader.Loader, q quirks.Quirks, duration string, profileCPU bool, profileMem bool) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	ch8 := hardware.NewCHIP8(q)
	if err := ch8.AttachROM(roml); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	instructions := 0
	var elapsed time.Duration

	runner := func() error {
		// instructions per timer tick, assuming a nominal 700 instructions
		// per second. only relative correctness matters here
		const perTick = 700 / timer.TicksPerSecond

		brake := 0
		sinceTick := 0
		start := time.Now()

		err := ch8.Run(func() (bool, error) {
			instructions++

			sinceTick++
			if sinceTick >= perTick {
				sinceTick = 0
				ch8.TickTimers()
			}

			brake++
			if brake >= checkBrake {
				brake = 0
				elapsed = time.Since(start)
				return elapsed < dur, nil
			}

			return true, nil
		})

		elapsed = time.Since(start)
		return err
	}

	err = profile(profileCPU, profileMem, runner)
	if err != nil {
		// a halted machine is still a valid measurement
		if !ch8.IsHalted() {
			return curated.Errorf("performance: %v", err)
		}
		fmt.Fprintf(output, "machine halted: %s\n", err)
	}

	persec := float64(instructions) / elapsed.Seconds()
	fmt.Fprintf(output, "%.0f instructions per second (%d instructions in %.2f seconds)\n",
		persec, instructions, elapsed.Seconds())

	return nil
}
