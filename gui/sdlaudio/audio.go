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

// Package sdlaudio implements the beeper using the SDL queue audio API.
//
// The machine has a single fixed tone, on while the sound timer is running
// down. Pulse() keeps a small amount of square wave queued ahead of the
// device while the tone is on; when it is off the queue drains and the
// device falls back to silence.
package sdlaudio

import (
	"github.com/gopher8/gopher8/curated"

	"github.com/veandco/go-sdl2/sdl"
)

// sample frequency and tone of the beeper.
const (
	sampleFreq = 22050
	toneFreq   = 440
)

// the amount of audio queued ahead of the device, in samples. long enough to
// survive a late frame, short enough that the tone stops promptly.
const bufferLength = sampleFreq / 30

// amplitude of the square wave around the device silence value.
const amplitude = 24

// Audio is the SDL implementation of the beeper.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	active bool

	// one buffered period of the square wave, queued repeatedly while the
	// tone is on.
	wave []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	// precompute the square wave
	aud.wave = make([]uint8, bufferLength)
	halfPeriod := sampleFreq / toneFreq / 2
	for i := range aud.wave {
		if (i/halfPeriod)%2 == 0 {
			aud.wave[i] = aud.spec.Silence + amplitude
		} else {
			aud.wave[i] = aud.spec.Silence - amplitude
		}
	}

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetActive turns the tone on or off.
func (aud *Audio) SetActive(active bool) {
	aud.active = active
}

// Pulse tops up the audio queue. Call once per frame.
func (aud *Audio) Pulse() {
	if !aud.active {
		return
	}
	if sdl.GetQueuedAudioSize(aud.id) < uint32(bufferLength) {
		_ = sdl.QueueAudio(aud.id, aud.wave)
	}
}

// End releases the audio device.
func (aud *Audio) End() {
	sdl.CloseAudioDevice(aud.id)
}
