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

// Package gdbinit generates a GDB command script for an FAE image.
//
// The script defines convenience variables for the runtime position of each
// section of the program and loads the symbols of the crt0 blob and of the
// program at those positions. The flash and RAM base addresses are not known
// until the image is loaded on the target and must be filled in by the user.
//
// The script is written to a file called gdbinit in the same directory as the
// ELF file.
package gdbinit
