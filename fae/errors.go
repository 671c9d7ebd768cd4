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

package fae

// Sentinel patterns for errors created by this package. Use with
// curated.Is() and curated.Has().
const (
	NotELF32        = "%s: is not a 32-bit ELF file"
	NotLittleEndian = "%s: is not a little-endian ELF file"
	NotARM          = "%s: is not an ARM ELF file"

	NoSection      = "%s: no section with this name"
	NotSymbolTable = "%s: is not a SHT_SYMTAB section"

	NoSymbol        = "%s: %s: no symbol with this name"
	AmbiguousSymbol = "%s: %s: more than one symbol with this name"

	NotRelocationSection       = "%s: is not a relocation section"
	UnsupportedRELA            = "%s: unsupported RELA"
	MalformedRelocationSection = "%s: malformed relocation section: %s"
	UnsupportedRelocation      = "%s: entry %d: unsupported relocation type (%v)"

	WordOverflow = "value %#x does not fit in a 32-bit word"

	BadFilename = "%s: should be something along the line of name.elf"

	// the image is empty after assembly. this should never happen and
	// indicates a fault in elf2fae rather than in its input
	NothingProduced = "nothing has been produced"
)
