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

package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/prefs"
	"github.com/gopher8/gopher8/test"
)

func TestTypes(t *testing.T) {
	var b prefs.Bool
	test.Equate(t, b.Get().(bool), false)
	test.ExpectedSuccess(t, b.Set(true))
	test.Equate(t, b.Get().(bool), true)
	test.ExpectedSuccess(t, b.Set("TRUE"))
	test.Equate(t, b.Get().(bool), true)
	test.ExpectedSuccess(t, b.Set("no"))
	test.Equate(t, b.Get().(bool), false)

	var n prefs.Int
	test.ExpectedSuccess(t, n.Set(100))
	test.Equate(t, n.Get().(int), 100)
	test.ExpectedSuccess(t, n.Set("250"))
	test.Equate(t, n.Get().(int), 250)
	test.ExpectedFailure(t, n.Set("not a number"))
	test.Equate(t, n.Get().(int), 250)

	var s prefs.String
	test.ExpectedSuccess(t, s.Set("shift"))
	test.Equate(t, s.Get().(string), "shift")
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prefs")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var b prefs.Bool
	var s prefs.String
	test.ExpectedSuccess(t, dsk.Add("test.bool", &b))
	test.ExpectedSuccess(t, dsk.Add("test.string", &s))

	b.Set(true)
	s.Set("hello")
	test.ExpectedSuccess(t, dsk.Save())

	// load into a fresh Disk instance
	dsk2, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var b2 prefs.Bool
	var s2 prefs.String
	test.ExpectedSuccess(t, dsk2.Add("test.bool", &b2))
	test.ExpectedSuccess(t, dsk2.Add("test.string", &s2))

	test.ExpectedSuccess(t, dsk2.Load())
	test.Equate(t, b2.Get().(bool), true)
	test.Equate(t, s2.Get().(string), "hello")
}

func TestNoPrefsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "does.not.exist")

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	err = dsk.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, prefs.NoPrefsFile))
}

func TestForeignEntriesPreserved(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.prefs")

	// first instance saves a value unknown to the second instance
	dsk, _ := prefs.NewDisk(fn)
	var b prefs.Bool
	dsk.Add("first.bool", &b)
	b.Set(true)
	test.ExpectedSuccess(t, dsk.Save())

	dsk2, _ := prefs.NewDisk(fn)
	var s prefs.String
	dsk2.Add("second.string", &s)
	s.Set("world")
	test.ExpectedSuccess(t, dsk2.Save())

	// first instance can still see its value
	dsk3, _ := prefs.NewDisk(fn)
	var b3 prefs.Bool
	dsk3.Add("first.bool", &b3)
	test.ExpectedSuccess(t, dsk3.Load())
	test.Equate(t, b3.Get().(bool), true)
}
