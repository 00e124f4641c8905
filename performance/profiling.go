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

package performance

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/paths"
)

// filenames of the profiles, written to the resource path.
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

// profile wraps the runner with the requested profiling. The CPU profile
// covers the whole run; the heap profile is a snapshot taken after the run
// completes.
func profile(profileCPU bool, profileMem bool, run func() error) error {
	if profileCPU {
		pth, err := paths.ResourcePath(cpuProfileFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}

		f, err := os.Create(pth)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profileMem {
		pth, err := paths.ResourcePath(memProfileFile)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}

		f, err := os.Create(pth)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
