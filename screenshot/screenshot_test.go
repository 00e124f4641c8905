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

package screenshot_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopher8/gopher8/hardware/video"
	"github.com/gopher8/gopher8/screenshot"
	"github.com/gopher8/gopher8/test"
)

func TestImageScale(t *testing.T) {
	vid := video.NewVideo()
	vid.DrawSprite(0, 0, []uint8{0x80}, true)

	img := screenshot.Image(vid, 4)
	test.Equate(t, img.Bounds().Dx(), video.Width*4)
	test.Equate(t, img.Bounds().Dy(), video.Height*4)

	// the lit pixel scales to a 4x4 block
	r, _, _, _ := img.At(0, 0).RGBA()
	test.ExpectedSuccess(t, r > 0x8000)
	r, _, _, _ = img.At(3, 3).RGBA()
	test.ExpectedSuccess(t, r > 0x8000)
	r, _, _, _ = img.At(4, 0).RGBA()
	test.ExpectedSuccess(t, r < 0x8000)
}

func TestSave(t *testing.T) {
	vid := video.NewVideo()
	vid.DrawSprite(10, 10, []uint8{0xff}, true)

	pth := filepath.Join(t.TempDir(), "screen.png")
	test.ExpectedSuccess(t, screenshot.Save(vid, pth))

	f, err := os.Open(pth)
	test.ExpectedSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.ExpectedSuccess(t, err)
	test.Equate(t, img.Bounds().Dx(), video.Width*screenshot.DefaultScale)
}
