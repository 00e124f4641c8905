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

// Package romloader is the single entry point through which ROM data reaches
// the emulated machine. ROMs can come from local files or over HTTP; either
// way the loaded data carries a SHA1 hash which can be checked against an
// expected value.
package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopher8/gopher8/curated"
)

// Sentinal errors raised by the romloader package.
const (
	UnsupportedScheme = "romloader: unsupported URL scheme (%s)"
	HashMismatch      = "romloader: hash of loaded data does not match expected hash"
)

// Loader specifies the ROM to attach to the machine.
type Loader struct {
	// filename or URL of the ROM. HTTP(S) and local files are supported.
	Filename string

	// expected SHA1 hash of the ROM data. the empty string means the hash is
	// unknown and need not be validated. after a successful Load() the field
	// holds the hash of the loaded data.
	Hash string

	// the loaded data. subsequent calls to Load() are no-ops once the field
	// is populated.
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a name suitable for logging and window titles.
func (roml Loader) ShortName() string {
	shortFilename := filepath.Base(roml.Filename)
	return strings.TrimSuffix(shortFilename, filepath.Ext(shortFilename))
}

// HasLoaded returns true if Load() has been successfully called.
func (roml Loader) HasLoaded() bool {
	return len(roml.Data) > 0
}

// Load the ROM data. Filenames with a valid URL scheme are fetched over the
// network; anything else is treated as a local file path.
func (roml *Loader) Load() error {
	if len(roml.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(roml.Filename); err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(roml.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", resp.Status)
		}

		roml.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file", "":
		data, err := os.ReadFile(roml.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		roml.Data = data

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(roml.Data))
	if roml.Hash != "" && roml.Hash != hash {
		return curated.Errorf(HashMismatch)
	}
	roml.Hash = hash

	return nil
}
