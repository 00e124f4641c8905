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

// Package video implements the display buffer of the CHIP-8 machine: a 64x32
// grid of monochrome pixels.
//
// The buffer is mutated only by the sprite draw and clear instructions.
// Frontends read the buffer once per frame, through the Pixel() function or
// one of the bulk accessors. The video package does no rendering of its own;
// how pixels reach a screen is entirely the concern of the frontend.
package video

import (
	"strings"
)

// Width and Height are the display buffer dimensions, in pixels.
const (
	Width  = 64
	Height = 32
)

// MaxSpriteHeight is the maximum number of rows in a sprite.
const MaxSpriteHeight = 15

// Video is the display buffer of the CHIP-8 machine.
type Video struct {
	pixels [Height][Width]bool
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Clear sets every pixel to the unlit state.
func (vid *Video) Clear() {
	vid.pixels = [Height][Width]bool{}
}

// Reset is an alias of Clear(). It exists so the Video type resets the same
// way as the other components of the machine.
func (vid *Video) Reset() {
	vid.Clear()
}

// DrawSprite XORs the sprite rows into the buffer at the coordinates. The
// origin always wraps to the buffer dimensions. The wrap argument decides the
// treatment of the parts of the sprite that extend over the buffer edge:
// wrapped to the opposite edge, or clipped.
//
// Returns true if any lit pixel was unlit by the draw. The caller is
// responsible for putting the result in the collision register.
func (vid *Video) DrawSprite(x uint8, y uint8, sprite []uint8, wrap bool) bool {
	ox := int(x) % Width
	oy := int(y) % Height

	collision := false

	for r, row := range sprite {
		py := oy + r
		if py >= Height {
			if !wrap {
				continue
			}
			py %= Height
		}

		for c := 0; c < 8; c++ {
			if row&(0x80>>c) == 0 {
				continue
			}

			px := ox + c
			if px >= Width {
				if !wrap {
					continue
				}
				px %= Width
			}

			if vid.pixels[py][px] {
				collision = true
			}
			vid.pixels[py][px] = !vid.pixels[py][px]
		}
	}

	return collision
}

// Pixel returns the state of the pixel at the coordinates. Coordinates
// outside of the buffer are unlit.
func (vid *Video) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return vid.pixels[y][x]
}

// Copy returns a snapshot of the display buffer. Useful for frontends that
// render from a different goroutine to the one running the emulation.
func (vid *Video) Copy() [Height][Width]bool {
	return vid.pixels
}

// String returns the display buffer rendered as text, one character per
// pixel. Used by the debugger's DISPLAY command.
func (vid *Video) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if vid.pixels[y][x] {
				s.WriteRune('█')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
