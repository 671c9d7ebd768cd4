// This file is part of elf2fae.
//
// elf2fae is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// elf2fae is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with elf2fae.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("%s: no symbol with this name", "start")
//
//	if curated.Is(e, "%s: no symbol with this name") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("symbols: %v", e)
//
//	if curated.Has(f, "%s: no symbol with this name") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We think of curated errors as 'expected' errors, the
// result of bad input or a failing external tool, and uncurated errors as
// 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping "fae: bad input" with the
// pattern "fae: %v" results in the message:
//
//	fae: bad input
//
// and not:
//
//	fae: fae: bad input
//
// Chains are composed of parts separated by the sub-string ': '.
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that creates the error.
package curated
