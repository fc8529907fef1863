// This file is part of m8link.
//
// m8link is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m8link is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m8link.  If not, see <https://www.gnu.org/licenses/>.

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Curated errors are created with Errorf(), which takes the
// same arguments as fmt.Errorf(). The pattern string, rather than the
// formatted message, identifies the error:
//
//	const Overflow = "slip: frame exceeds %d bytes"
//
//	err := curated.Errorf(Overflow, 1024)
//	if curated.Is(err, Overflow) {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of curated errors.
// A curated error wrapped in another curated error is part of the chain:
//
//	f := curated.Errorf(transport.Fatal, err)
//	curated.Is(f, Overflow)  // false
//	curated.Has(f, Overflow) // true
//
// The Error() string of a curated error is normalised so that adjacent
// duplicate parts of the chain are printed once. Parts are separated by the
// sub-string ": ", so that wrapping an error with a pattern that repeats the
// prefix does not produce messages like "serial: serial: port busy".
//
// Sentinel patterns should be stored as exported string constants in the
// package that creates the error.
//
// Values of the uncurated error type passed to Errorf() are available through
// errors.Unwrap(), so curated errors remain usable with errors.Is() and
// errors.As() from the standard library.
package curated
