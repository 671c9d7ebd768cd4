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

import (
	"debug/elf"

	"github.com/elf2fae/elf2fae/curated"
)

// Open the named ELF file and check that it is a 32-bit little-endian ARM
// file. The caller must close the returned file.
func Open(path string) (*elf.File, error) {
	ef, err := elf.Open(path)
	if err != nil {
		return nil, curated.Errorf("elf: %v", err)
	}

	if err := check(ef, path); err != nil {
		ef.Close()
		return nil, err
	}

	return ef, nil
}

func check(ef *elf.File, path string) error {
	if ef.Class != elf.ELFCLASS32 {
		return curated.Errorf("elf: %v", curated.Errorf(NotELF32, path))
	}
	if ef.Data != elf.ELFDATA2LSB {
		return curated.Errorf("elf: %v", curated.Errorf(NotLittleEndian, path))
	}
	if ef.Machine != elf.EM_ARM {
		return curated.Errorf("elf: %v", curated.Errorf(NotARM, path))
	}
	return nil
}
