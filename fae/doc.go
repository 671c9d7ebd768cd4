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

// Package fae assembles FAE images from ARMv7-M ELF executables. An FAE image
// is a flat binary consumed by the boot-loader. It has no header and no
// length field. The boot-loader navigates it by the fixed order of its parts
// and the counts and sizes embedded in it:
//
//	offset          content
//	0               crt0 blob
//	+len(crt0)      six 32-bit words: the values of the ExportedSymbols
//	+24             for each of the ExportedRelocationTables: a 32-bit entry
//	                count followed by the r_offset of every entry
//	MetadataSize    the whole program as a flat binary (the partition)
//	end             0xff bytes up to the next 32 byte boundary
//
// All words are little-endian.
//
// The crt0 blob and the partition are produced by external tools. The
// Assembler type reaches them through the Crt0Builder and PartitionExtractor
// interfaces, implementations of which can be found in the toolchain package.
//
// Structural problems with the ELF file are returned as curated errors. The
// sentinel patterns are defined in this package.
package fae
