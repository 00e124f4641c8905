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

// Package prefs facilitates the storage of preference values to disk.
//
// A preference value is one of the typed values in this package (Bool, String,
// Int). The value types are safe to access concurrently; the emulation can
// read a quirk preference while a frontend thread changes it.
//
// Preference values are registered with a Disk instance under a unique key.
// The Disk instance can then Load() and Save() all registered values to the
// preferences file. Keys not registered with the instance are preserved on
// save; different parts of the application can share one file.
package prefs
