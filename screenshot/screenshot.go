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

// Package screenshot saves the display buffer as a PNG image. The 64x32
// buffer is upscaled with nearest neighbour so the pixels stay crisp.
package screenshot

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/video"
	"golang.org/x/image/draw"
)

// DefaultScale is the upscaling factor used by Save().
const DefaultScale = 8

// palette used for the saved image.
var (
	unlit = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	lit   = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
)

// Image renders the display buffer into an image, upscaled by the scale
// factor.
func Image(vid *video.Video, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	src := image.NewRGBA(image.Rect(0, 0, video.Width, video.Height))
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if vid.Pixel(x, y) {
				src.Set(x, y, lit)
			} else {
				src.Set(x, y, unlit)
			}
		}
	}

	if scale == 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, video.Width*scale, video.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Save the display buffer to the named file as a PNG.
func Save(vid *video.Video, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("screenshot: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, Image(vid, DefaultScale)); err != nil {
		return curated.Errorf("screenshot: %v", err)
	}

	return nil
}
