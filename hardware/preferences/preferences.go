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

// Package preferences ties the quirk settings of the emulated machine to the
// prefs system, so a choice of quirks survives between sessions.
package preferences

import (
	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/hardware/quirks"
	"github.com/gopher8/gopher8/paths"
	"github.com/gopher8/gopher8/prefs"
)

// Preferences is the on-disk representation of the machine's quirk settings.
type Preferences struct {
	dsk *prefs.Disk

	ShiftTarget    prefs.Bool
	PreserveIndex  prefs.Bool
	JumpHighNibble prefs.Bool
	DrawWrap       prefs.Bool
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are the defaults overlaid with whatever is in the
// prefs file.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for key, pref := range map[string]*prefs.Bool{
		"hardware.quirks.shiftTarget":    &p.ShiftTarget,
		"hardware.quirks.preserveIndex":  &p.PreserveIndex,
		"hardware.quirks.jumpHighNibble": &p.JumpHighNibble,
		"hardware.quirks.drawWrap":       &p.DrawWrap,
	} {
		if err := p.dsk.Add(key, pref); err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	if err := p.dsk.Load(); err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to the default quirk set.
func (p *Preferences) SetDefaults() {
	p.SetQuirks(quirks.Default())
}

// SetQuirks copies a quirk set into the preference values.
func (p *Preferences) SetQuirks(q quirks.Quirks) {
	_ = p.ShiftTarget.Set(q.ShiftTarget)
	_ = p.PreserveIndex.Set(q.PreserveIndex)
	_ = p.JumpHighNibble.Set(q.JumpHighNibble)
	_ = p.DrawWrap.Set(q.DrawWrap)
}

// Quirks gathers the preference values into the form the CPU consumes.
func (p *Preferences) Quirks() quirks.Quirks {
	return quirks.Quirks{
		ShiftTarget:    p.ShiftTarget.Get().(bool),
		PreserveIndex:  p.PreserveIndex.Get().(bool),
		JumpHighNibble: p.JumpHighNibble.Get().(bool),
		DrawWrap:       p.DrawWrap.Get().(bool),
	}
}

// Load reads the preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save writes the preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
