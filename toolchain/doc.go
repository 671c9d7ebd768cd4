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

// Package toolchain runs the external tools needed to build an FAE image.
//
// Crt0 builds the crt0 blob with make and Objcopy extracts the program
// partition with objcopy. Both satisfy the interfaces required by
// fae.Assembler. Builtin is an alternative to Objcopy that extracts the
// partition without running an external tool.
//
// Every external tool is run to completion with its output captured. A tool
// that exits with a non-zero status results in a curated error containing
// the captured output. A tool that runs for longer than the configured
// timeout is killed.
//
// The names of the tools, the timeout and the default crt0 path are stored
// in the preferences file. See the Preferences type.
package toolchain
