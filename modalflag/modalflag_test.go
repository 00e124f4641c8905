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

package modalflag_test

import (
	"testing"

	"github.com/gopher8/gopher8/modalflag"
	"github.com/gopher8/gopher8/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"rom.ch8"})

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "")
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "rom.ch8")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"debug", "rom.ch8"})
	md.AddSubModes("RUN", "DEBUG", "DISASM")

	r, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.Mode(), "DEBUG")

	// the mode selector has been consumed
	md.NewMode()
	r, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, int(r), int(modalflag.ParseContinue))
	test.Equate(t, md.GetArg(0), "rom.ch8")
}

func TestDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"rom.ch8"})
	md.AddSubModes("RUN", "DEBUG")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.Mode(), "RUN")

	// the rom argument is still available to the selected mode
	md.NewMode()
	_, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, md.GetArg(0), "rom.ch8")
}

func TestFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-scale", "4", "rom.ch8"})

	scale := md.AddInt("scale", 2, "window scale")

	_, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, *scale, 4)
	test.Equate(t, md.GetArg(0), "rom.ch8")
}
