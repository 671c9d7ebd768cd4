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

package gdbinit

import (
	"debug/elf"
	"fmt"
	"io"
	"path/filepath"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/fae"
)

// Filename of the generated script.
const Filename = "gdbinit"

// Crt0ELF is the name of the crt0 ELF file in the crt0 directory.
const Crt0ELF = "crt0.elf"

// Symbols are the linker symbols giving the size of each section of the
// program. In order: code, indirection table, initialised data and
// zero-initialised data.
var Symbols = []string{"__rom_size", "__got_size", "__rom_ram_size", "__ram_size"}

// Script describes the layout of the FAE image as seen by the debugger.
type Script struct {
	// absolute paths of the program and crt0 ELF files
	ELFPath  string
	Crt0Path string

	// offset of the program in the image
	MetadataSize int

	// section sizes
	Text uint64
	GOT  uint64
	Data uint64
	BSS  uint64
}

// New is the preferred method of initialisation for the Script type. The
// section sizes are taken from the symbol table of ef. The elfPath argument
// is the path from which ef was opened and crt0Path is the crt0 directory.
func New(ef *elf.File, elfPath string, crt0Path string, metadataSize int) (*Script, error) {
	values, err := fae.LookupSymbols(ef, Symbols)
	if err != nil {
		return nil, curated.Errorf("gdbinit: %v", err)
	}

	scr := &Script{
		MetadataSize: metadataSize,
		Text:         values[0],
		GOT:          values[1],
		Data:         values[2],
		BSS:          values[3],
	}

	scr.ELFPath, err = filepath.Abs(elfPath)
	if err != nil {
		return nil, curated.Errorf("gdbinit: %v", err)
	}

	scr.Crt0Path, err = filepath.Abs(crt0Path)
	if err != nil {
		return nil, curated.Errorf("gdbinit: %v", err)
	}
	scr.Crt0Path = filepath.Join(scr.Crt0Path, Crt0ELF)

	return scr, nil
}

// Path returns the path of the script for the named ELF file.
func Path(elfPath string) string {
	return filepath.Join(filepath.Dir(elfPath), Filename)
}

// Generate writes the script to w.
func (scr *Script) Generate(w io.Writer) error {
	meta := uint64(scr.MetadataSize)

	lines := []string{
		"set $flash_base = # Define the flash base address here",
		"set $ram_base = # Define the RAM base address here",
		"set $crt0_text = $flash_base",
		fmt.Sprintf("set $text = $crt0_text + %d", meta),
		fmt.Sprintf("set $got = $text + %d", scr.Text),
		fmt.Sprintf("set $data = $got + %d", scr.GOT),
		"set $rel_got = $ram_base",
		fmt.Sprintf("set $rel_data = $rel_got + %d", scr.GOT),
		fmt.Sprintf("set $bss = $rel_data + %d", scr.Data),
		fmt.Sprintf("add-symbol-file %s -s .text $crt0_text", scr.Crt0Path),
		fmt.Sprintf("add-symbol-file %s -s .rom $text -s .got $rel_got -s .rom.ram $rel_data -s .ram $bss", scr.ELFPath),
		fmt.Sprintf("set $flash_end = $flash_base + %d", meta+scr.Text+scr.GOT+scr.Data),
		fmt.Sprintf("set $ram_end = $ram_base + %d", scr.GOT+scr.Data+scr.BSS),
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return curated.Errorf("gdbinit: %v", err)
		}
	}

	return nil
}
