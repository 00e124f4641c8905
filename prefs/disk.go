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

package prefs

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/gopher8/gopher8/curated"
	"github.com/gopher8/gopher8/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "gopher8.prefs"

// the first line of a valid prefs file.
const warningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file entry.
const keySep = " :: "

// Sentinal error indicating a missing prefs file.
const NoPrefsFile = "prefs: no prefs file (%s)"

// Disk represents preference values as stored on disk. Individual preference
// values are added with the Add() function.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk. The key
// must be unique to this Disk instance.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, keySep) {
		return curated.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns all the current preference values as a single string,
// in the format used by the prefs file.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}

// Load preference values from disk. Values in the file that have no
// corresponding entry in the Disk instance are left alone; they may belong
// to another part of the application.
//
// Loading a file that does not exist returns an error matching the
// NoPrefsFile sentinel. Callers are free to ignore that condition.
func (dsk *Disk) Load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check validity of file before reading any values
	if !scanner.Scan() || scanner.Text() != warningBoilerPlate {
		return curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), keySep, 2)
		if len(spt) != 2 {
			return curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
		}

		if p, ok := dsk.entries[spt[0]]; ok {
			if err := p.Set(spt[1]); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	logger.Logf("prefs", "loaded %s", dsk.path)

	return nil
}

// Save current preference values to disk. Values already in the file that
// have no corresponding entry in the Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	// load any entries in the existing file that we don't know about. these
	// are written back out alongside our own entries.
	foreign := make(map[string]string)

	if f, err := os.Open(dsk.path); err == nil {
		scanner := bufio.NewScanner(f)
		scanner.Scan() // boilerplate
		for scanner.Scan() {
			spt := strings.SplitN(scanner.Text(), keySep, 2)
			if len(spt) == 2 {
				if _, ok := dsk.entries[spt[0]]; !ok {
					foreign[spt[0]] = spt[1]
				}
			}
		}
		f.Close()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	if _, err := f.WriteString(warningBoilerPlate + "\n"); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	if _, err := f.WriteString(dsk.String()); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	keys := make([]string, 0, len(foreign))
	for k := range foreign {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := f.WriteString(k + keySep + foreign[k] + "\n"); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}

	return nil
}
