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
	"path/filepath"
	"strings"

	"github.com/elf2fae/elf2fae/curated"
)

// OutputFilename returns the name of the FAE file for the named ELF file. The
// base name of the ELF file must contain exactly one '.' and end with
// ELFSuffix. The FAE file is placed alongside the ELF file.
//
// No filesystem access takes place.
func OutputFilename(elfPath string) (string, error) {
	base := filepath.Base(elfPath)
	if !strings.HasSuffix(elfPath, ELFSuffix) || strings.Count(base, ".") != 1 || base == ELFSuffix {
		return "", curated.Errorf(BadFilename, elfPath)
	}
	return strings.TrimSuffix(elfPath, ELFSuffix) + Suffix, nil
}
