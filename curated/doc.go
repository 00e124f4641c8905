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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It is similar to
// Errorf() in the fmt package, taking a formatting pattern and placeholder
// values, and returning an error.
//
// The Is() function checks whether an error is a curated error with a
// specific pattern. For example:
//
//	e := curated.Errorf("error: value = %d", 10)
//
//	if curated.Is(e, "error: value = %d") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if the pattern occurs somewhere in
// the error chain, not just at the outermost level. The IsAny() function
// answers whether the error was created by curated.Errorf() at all; errors
// that are 'curated' can be thought of as expected errors, as opposed to
// unexpected errors from some other source.
//
// Sentinel patterns should be stored as const strings, suitably named and
// commented, in the package that raises them.
//
// The Error() function implementation normalises the error chain by removing
// duplicate adjacent parts. The practical advantage is that it alleviates the
// problem of when and how to wrap errors: wrapping with the same prefix twice
// does not produce a stuttering message.
package curated
