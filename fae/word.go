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
	"encoding/binary"

	"github.com/elf2fae/elf2fae/curated"
)

// AppendWord appends v to buf as four little-endian bytes. Values that do not
// fit in 32 bits are rejected rather than truncated.
func AppendWord(buf []byte, v uint64) ([]byte, error) {
	if v > 0xffffffff {
		return buf, curated.Errorf(WordOverflow, v)
	}
	var w [4]byte
	binary.LittleEndian.PutUint32(w[:], uint32(v))
	return append(buf, w[:]...), nil
}
