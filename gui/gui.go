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

// Package gui defines the operations required of a graphical frontend.
// Implementations are in the sdlplay and glplay sub-packages.
//
// The emulation loop owns the GUI. It calls Render() once per frame with a
// snapshot of the display buffer and Service() to pump window events. Input
// travels the other way, through the event channel given at creation.
package gui

import (
	"github.com/gopher8/gopher8/hardware/video"
)

// GUI defines the operations required by a graphical frontend.
type GUI interface {
	// SetTitle sets the window title. Usually the name of the attached ROM.
	SetTitle(title string)

	// Render the display buffer snapshot.
	Render(pixels [video.Height][video.Width]bool) error

	// SetSound turns the beeper on or off. The frontend decides what a beep
	// sounds like.
	SetSound(active bool)

	// Service pumps window events, forwarding anything of interest to the
	// event channel. Must be called regularly from the same goroutine that
	// created the GUI.
	Service()

	// End releases all resources. The GUI is unusable afterwards.
	End() error
}

// Event represents an input event sent from the GUI to the emulation loop.
type Event interface{}

// EventQuit is sent when the user closes the window or presses escape.
type EventQuit struct{}

// EventKey is sent on changes to the state of a key on the emulated keypad.
type EventKey struct {
	Key     uint8
	Pressed bool
}

// EventScreenshot is sent when the user requests a screenshot.
type EventScreenshot struct{}
