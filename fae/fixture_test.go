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
	"bytes"
	"debug/elf"
	"testing"

	"github.com/elf2fae/elf2fae/test"
)

// the symbols from the example program with arbitrary values.
var exampleSymbols = []test.Symbol{
	{Name: "start", Value: 0x100},
	{Name: "__rom_size", Value: 0x200},
	{Name: "__rom_ram_size", Value: 0x30},
	{Name: "__ram_size", Value: 0x40},
	{Name: "__got_size", Value: 0x10},
	{Name: "__rom_ram_end", Value: 0x240},
}

func openFixture(t *testing.T, e test.ELF) *elf.File {
	t.Helper()
	ef, err := elf.NewFile(bytes.NewReader(e.Bytes()))
	test.DemandSuccess(t, err)
	return ef
}
