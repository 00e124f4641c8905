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

// Package hardware assembles the components of the CHIP-8 machine into a
// single CHIP8 type: memory, display buffer, keypad, timer pair and CPU.
//
// The machine has two decoupled entry points. Step() executes one instruction
// cycle and can be called at whatever rate the frontend likes. TickTimers()
// decrements the delay and sound timers and must be called at 60Hz. Keeping
// the two apart means the instruction rate can be throttled, stepped by hand
// in the debugger, or uncapped for performance measurement without changing
// the speed at which programs perceive time.
//
// The CHIP8 type exposes its components as public fields for the benefit of
// the debugger and the GUI frontends. Programs that just want to run a ROM
// only need AttachROM(), Step(), TickTimers() and the video and keypad
// accessors.
package hardware
