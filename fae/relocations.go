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
	"fmt"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/logger"
)

// AppendRelocationTables appends each of the named relocation sections to
// buf. Each section is written as an entry count followed by the r_offset
// field of every entry. Only SHT_REL sections containing R_ARM_ABS32 entries
// are supported.
func AppendRelocationTables(buf []byte, ef *elf.File, names []string) ([]byte, error) {
	var err error
	for _, name := range names {
		buf, err = appendRelocationTable(buf, ef, name)
		if err != nil {
			return nil, curated.Errorf("relocations: %v", err)
		}
	}
	return buf, nil
}

func appendRelocationTable(buf []byte, ef *elf.File, name string) ([]byte, error) {
	sec := ef.Section(name)
	if sec == nil {
		return nil, curated.Errorf(NoSection, name)
	}
	if sec.Type == elf.SHT_RELA {
		return nil, curated.Errorf(UnsupportedRELA, name)
	}
	if sec.Type != elf.SHT_REL {
		return nil, curated.Errorf(NotRelocationSection, name)
	}
	if sec.Entsize != 0 && sec.Entsize != relEntrySize {
		return nil, curated.Errorf(MalformedRelocationSection, name,
			fmt.Sprintf("entry size is %d", sec.Entsize))
	}

	// relocation data. we walk over the data and extract the relocation
	// entries manually
	data, err := sec.Data()
	if err != nil {
		return nil, curated.Errorf("%s: %v", name, err)
	}
	if len(data)%relEntrySize != 0 {
		return nil, curated.Errorf(MalformedRelocationSection, name,
			fmt.Sprintf("size of %d is not a multiple of %d", len(data), relEntrySize))
	}

	// the entry count precedes the offsets
	n := len(data) / relEntrySize
	buf, err = AppendWord(buf, uint64(n))
	if err != nil {
		return nil, curated.Errorf("%s: %v", name, err)
	}

	for i := 0; i < n; i++ {
		ent := data[i*relEntrySize : (i+1)*relEntrySize]

		// the relocation entry fields
		offset := ef.ByteOrder.Uint32(ent[0:4])
		info := ef.ByteOrder.Uint32(ent[4:8])

		// reltype is encoded in the low byte of the info value
		relType := elf.R_ARM(info & 0xff)
		if relType != elf.R_ARM_ABS32 {
			return nil, curated.Errorf(UnsupportedRelocation, name, i, relType)
		}

		// cannot fail for a uint32 value
		buf, _ = AppendWord(buf, uint64(offset))
	}

	logger.Logf("relocations", "%s: %d entries", name, n)

	return buf, nil
}
