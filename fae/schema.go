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

// The values of these symbols are written to the image in this order,
// immediately after the crt0 blob. The order is part of the contract with the
// boot-loader and must not change.
var ExportedSymbols = []string{
	"start",
	"__rom_size",
	"__rom_ram_size",
	"__ram_size",
	"__got_size",
	"__rom_ram_end",
}

// The relocation sections written to the image, in this order. .rel.rom.ram
// records the fix-ups needed when .rom.ram is copied from flash to RAM at
// boot.
var ExportedRelocationTables = []string{
	".rel.rom.ram",
}

// SymbolTable is the name of the section searched for symbols.
const SymbolTable = ".symtab"

// The size of the image must be a multiple of PaddingAlignment. This is the
// minimum region alignment of the ARMv7-M MPU.
const PaddingAlignment = 32

// PaddingValue is the erased state of the target flash memory.
const PaddingValue = 0xff

// Filename suffixes of the input and output files.
const (
	ELFSuffix = ".elf"
	Suffix    = ".fae"
)

// the size of an Elf32_Rel entry.
const relEntrySize = 8
