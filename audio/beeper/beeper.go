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

// Package beeper plays the beeper tone through the oto library. Used by
// frontends that do not bring their own audio, the glplay package in
// particular.
package beeper

import (
	"sync"

	"github.com/gopher8/gopher8/audio"
	"github.com/gopher8/gopher8/curated"

	"github.com/ebitengine/oto/v3"
)

// Beeper generates the tone on demand. oto pulls samples from its own
// goroutine through the io.Reader interface.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player

	crit sync.Mutex
	gen  audio.Generator
}

// NewBeeper is the preferred method of initialisation for the Beeper type.
// The returned beeper is playing silence until SetActive is called.
func NewBeeper() (*Beeper, error) {
	bpr := &Beeper{}

	op := &oto.NewContextOptions{
		SampleRate:   audio.SampleFreq,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("beeper: %v", err)
	}
	<-ready

	bpr.ctx = ctx
	bpr.player = ctx.NewPlayer(bpr)
	bpr.player.Play()

	return bpr, nil
}

// Read implements the io.Reader interface. Called by oto.
func (bpr *Beeper) Read(p []byte) (int, error) {
	bpr.crit.Lock()
	defer bpr.crit.Unlock()

	for i := range p {
		p[i] = bpr.gen.Sample()
	}
	return len(p), nil
}

// SetActive turns the tone on or off.
func (bpr *Beeper) SetActive(active bool) {
	bpr.crit.Lock()
	defer bpr.crit.Unlock()
	bpr.gen.SetActive(active)
}

// End stops playback and releases the player.
func (bpr *Beeper) End() error {
	if err := bpr.player.Close(); err != nil {
		return curated.Errorf("beeper: %v", err)
	}
	return nil
}
