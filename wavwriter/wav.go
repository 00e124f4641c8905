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

// Package wavwriter records beeper output to disk as a WAV file. Audio data
// is buffered in memory in its entirety and written on program end, so it is
// only suitable for short recordings.
package wavwriter

import (
	"os"

	"github.com/gopher8/gopher8/audio"
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/timer"
	"github.com/gopher8/gopher8/logger"

	"github.com/youpy/go-wav"
)

// samples generated for every timer tick
const samplesPerFrame = audio.SampleFreq / timer.TicksPerSecond

// WavWriter records the state of the beeper frame by frame.
type WavWriter struct {
	filename string
	gen      audio.Generator
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0),
	}
	return aw, nil
}

// AddFrame appends one frame of audio, tone or silence. Call once per timer
// tick with the state of the sound timer.
func (aw *WavWriter) AddFrame(active bool) {
	aw.gen.SetActive(active)
	for i := 0; i < samplesPerFrame; i++ {
		w := wav.Sample{}
		w.Values[0] = int(aw.gen.Sample())
		aw.buffer = append(aw.buffer, w)
	}
}

// End writes the buffered audio to disk.
func (aw *WavWriter) End() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(audio.SampleFreq), 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)
	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
