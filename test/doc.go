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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality(), ExpectSuccess() and ExpectFailure() functions report a
// failed test but allow the test function to continue. The Demand*()
// equivalents stop the test function immediately.
//
// CompareWriter is an io.Writer that records everything written to it, for
// comparison against expected output.
//
// The ELF type builds small ELF32 ARM files in memory. It is intended for
// use as a fixture by tests that need a real file to hand to debug/elf.
package test
