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

// Package sdlplay is the SDL implementation of the gui.GUI interface. It is
// the default frontend for playing ROMs.
package sdlplay

import (
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/gui"
	"github.com/gopher8/gopher8/gui/sdlaudio"
	"github.com/gopher8/gopher8/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

// pixel colors, packed as ARGB8888.
const (
	colUnlit = 0xff101010
	colLit   = 0xfff0f0f0
)

// SdlPlay is the SDL implementation of the gui.GUI interface.
type SdlPlay struct {
	events chan<- gui.Event

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	snd *sdlaudio.Audio

	// pixels in the format expected by the texture.
	pixels [video.Height * video.Width]uint32

	// map from SDL keycode to emulated keypad key, built from the shared
	// keyboard layout.
	keymap map[sdl.Keycode]uint8
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// Events detected during Service() are forwarded to the events channel.
func NewSdlPlay(events chan<- gui.Event, scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{events: events}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	var err error

	scr.window, err = sdl.CreateWindow("Gopher8",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(video.Width*scale), int32(video.Height*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the texture is the size of the display buffer. the renderer scales it
	// to the window
	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING, video.Width, video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.snd, err = sdlaudio.NewAudio()
	if err != nil {
		return nil, err
	}

	scr.keymap = make(map[sdl.Keycode]uint8)
	for r, k := range gui.KeyboardLayout {
		scr.keymap[sdl.Keycode(r)] = k
	}

	return scr, nil
}

// SetTitle implements the gui.GUI interface.
func (scr *SdlPlay) SetTitle(title string) {
	scr.window.SetTitle("Gopher8: " + title)
}

// Render implements the gui.GUI interface.
func (scr *SdlPlay) Render(pixels [video.Height][video.Width]bool) error {
	for y := 0; y < video.Height; y++ {
		for x := 0; x < video.Width; x++ {
			if pixels[y][x] {
				scr.pixels[y*video.Width+x] = colLit
			} else {
				scr.pixels[y*video.Width+x] = colUnlit
			}
		}
	}

	err := scr.texture.UpdateRGBA(nil, scr.pixels[:], video.Width)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	scr.snd.Pulse()

	return nil
}

// SetSound implements the gui.GUI interface.
func (scr *SdlPlay) SetSound(active bool) {
	scr.snd.SetActive(active)
}

// Service implements the gui.GUI interface.
func (scr *SdlPlay) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.events <- gui.EventQuit{}

		case *sdl.KeyboardEvent:
			pressed := ev.Type == sdl.KEYDOWN

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				if pressed {
					scr.events <- gui.EventQuit{}
				}
			case sdl.K_F12:
				if pressed {
					scr.events <- gui.EventScreenshot{}
				}
			default:
				// key repeat must not look like a fresh press or the
				// wait-for-key instruction would trigger on held keys
				if ev.Repeat != 0 {
					continue
				}
				if key, ok := scr.keymap[ev.Keysym.Sym]; ok {
					scr.events <- gui.EventKey{Key: key, Pressed: pressed}
				}
			}
		}
	}
}

// End implements the gui.GUI interface.
func (scr *SdlPlay) End() error {
	scr.snd.End()
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
	return nil
}
