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

package fae_test

import (
	"encoding/binary"
	"testing"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/fae"
	"github.com/elf2fae/elf2fae/test"
)

func TestWordRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xff, 0x100, 0x12345678, 0x80000000, 0xfffffffe, 0xffffffff}

	for _, v := range values {
		prefix := []byte{0xaa, 0xbb}
		buf, err := fae.AppendWord(prefix, v)
		test.DemandSuccess(t, err, v)
		test.ExpectEquality(t, len(buf), 6, v)
		test.ExpectEquality(t, uint64(binary.LittleEndian.Uint32(buf[2:])), v, v)

		// existing contents are untouched
		test.ExpectEquality(t, buf[0], byte(0xaa))
		test.ExpectEquality(t, buf[1], byte(0xbb))
	}
}

func TestWordByteOrder(t *testing.T) {
	buf, err := fae.AppendWord(nil, 0x12345678)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(buf), "\x78\x56\x34\x12")
}

func TestWordOverflow(t *testing.T) {
	buf, err := fae.AppendWord([]byte{0x01}, 0x100000000)
	test.ExpectSuccess(t, curated.Is(err, fae.WordOverflow))
	test.ExpectEquality(t, len(buf), 1)
}
