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

// PadCount returns the number of bytes required to extend length to the next
// multiple of alignment. Alignment must be a power of two.
func PadCount(length int, alignment int) int {
	return ((length + alignment - 1) &^ (alignment - 1)) - length
}

// Pad extends buf with PaddingValue bytes to the next multiple of
// PaddingAlignment.
func Pad(buf []byte) []byte {
	n := PadCount(len(buf), PaddingAlignment)
	for i := 0; i < n; i++ {
		buf = append(buf, PaddingValue)
	}
	return buf
}
