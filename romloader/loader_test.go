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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/romloader"
	"github.com/gopher8/gopher8/test"
)

func TestLoadFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(pth, []byte{0x12, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	roml := romloader.NewLoader(pth)
	test.ExpectedFailure(t, roml.HasLoaded())
	test.ExpectedSuccess(t, roml.Load())
	test.ExpectedSuccess(t, roml.HasLoaded())
	test.Equate(t, len(roml.Data), 2)

	// sha1 of the two bytes 0x12 0x00
	test.Equate(t, roml.Hash, "92a5652d382a18e89c4881ec57041fc7d885ca80")
}

func TestHashMismatch(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "test.ch8")
	if err := os.WriteFile(pth, []byte{0x12, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	roml := romloader.NewLoader(pth)
	roml.Hash = "0000000000000000000000000000000000000000"
	err := roml.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.HashMismatch))
}

func TestMissingFile(t *testing.T) {
	roml := romloader.NewLoader(filepath.Join(t.TempDir(), "no_such_file.ch8"))
	test.ExpectedFailure(t, roml.Load())
}
