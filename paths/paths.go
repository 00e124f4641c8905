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

// Package paths resolves the location of resource files used by the project:
// preference files, screenshots, recorded audio. Resources live in a
// .gopher8 directory, either in the current working directory or in the
// user's configuration directory.
package paths

import (
	"os"
	"path"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".gopher8"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The path up to
// and including the final directory is created if necessary.
func ResourcePath(resource ...string) (string, error) {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	p = append(p, resource...)

	rp := path.Join(p...)

	if err := os.MkdirAll(filepath.Dir(rp), 0700); err != nil {
		return "", err
	}

	return rp, nil
}

// getBasePath() returns baseResourcePath with the user's configuration
// directory prepended, unless the unadorned baseResourcePath can be found in
// the current directory.
//
// note that we're not checking for the existence of the resource requested by
// the caller, only of 'baseResourcePath' itself.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	// drop the leading dot when homed in the user's configuration directory
	return path.Join(cnf, baseResourcePath[1:])
}
