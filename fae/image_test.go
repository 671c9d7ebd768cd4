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
	"context"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/fae"
	"github.com/elf2fae/elf2fae/test"
)

type fakeCrt0 struct {
	data  []byte
	err   error
	calls int
	path  string
}

func (f *fakeCrt0) BuildCrt0(_ context.Context, path string) ([]byte, error) {
	f.calls++
	f.path = path
	return f.data, f.err
}

type fakePartition struct {
	data    []byte
	err     error
	calls   int
	elfPath string
}

func (f *fakePartition) ExtractPartition(_ context.Context, elfPath string) ([]byte, error) {
	f.calls++
	f.elfPath = elfPath
	return f.data, f.err
}

func sequence(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

func emptyRelocations() []test.RelocationSection {
	return []test.RelocationSection{{Name: ".rel.rom.ram", Type: elf.SHT_REL}}
}

func TestAssemble(t *testing.T) {
	ef := openFixture(t, test.ELF{
		Symbols:     exampleSymbols,
		Relocations: emptyRelocations(),
	})

	crt0 := &fakeCrt0{data: sequence(16, 0x00)}
	part := &fakePartition{data: sequence(50, 0x40)}
	asm := fae.Assembler{Crt0: crt0, Partition: part, Crt0Path: "./crt0/"}

	img, err := asm.Assemble(context.Background(), ef, "build/prog.elf")
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, crt0.calls, 1)
	test.ExpectEquality(t, crt0.path, "./crt0/")
	test.ExpectEquality(t, part.calls, 1)
	test.ExpectEquality(t, part.elfPath, "build/prog.elf")

	// round_up(16 + 24 + 4 + 50, 32)
	test.DemandEquality(t, len(img.Data), 96)
	test.ExpectEquality(t, img.MetadataSize, 44)

	test.ExpectSuccess(t, bytes.Equal(img.Data[:16], crt0.data))
	for i, s := range exampleSymbols {
		test.ExpectEquality(t, binary.LittleEndian.Uint32(img.Data[16+i*4:]), s.Value, s.Name)
	}
	test.ExpectSuccess(t, bytes.Equal(img.Data[40:44], []byte{0x00, 0x00, 0x00, 0x00}))
	test.ExpectSuccess(t, bytes.Equal(img.Data[44:94], part.data))
	test.ExpectSuccess(t, bytes.Equal(img.Data[94:96], []byte{0xff, 0xff}))
}

func TestAssembleWithRelocations(t *testing.T) {
	ef := openFixture(t, test.ELF{
		Symbols: exampleSymbols,
		Relocations: []test.RelocationSection{
			{
				Name: ".rel.rom.ram",
				Type: elf.SHT_REL,
				Entries: []test.Relocation{
					{Offset: 0x200, Info: test.ABS32(1)},
					{Offset: 0x204, Info: test.ABS32(2)},
				},
			},
		},
	})

	asm := fae.Assembler{
		Crt0:      &fakeCrt0{data: sequence(8, 0x00)},
		Partition: &fakePartition{data: sequence(32, 0x80)},
	}

	img, err := asm.Assemble(context.Background(), ef, "prog.elf")
	test.DemandSuccess(t, err)

	// 8 + 24 + 4 + 8 = 44 bytes of metadata. 76 bytes padded to 96
	test.ExpectEquality(t, img.MetadataSize, 44)
	test.DemandEquality(t, len(img.Data), 96)
	test.ExpectEquality(t, binary.LittleEndian.Uint32(img.Data[32:]), uint32(2))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(img.Data[36:]), uint32(0x200))
	test.ExpectEquality(t, binary.LittleEndian.Uint32(img.Data[40:]), uint32(0x204))
	test.ExpectEquality(t, img.Data[44], byte(0x80))
	test.ExpectEquality(t, img.Data[75], byte(0x80+31))
	test.ExpectEquality(t, img.Data[76], byte(0xff))
	test.ExpectEquality(t, img.Data[95], byte(0xff))
}

func TestAssembleFailsFast(t *testing.T) {
	missing := test.ELF{
		Symbols:     exampleSymbols[1:],
		Relocations: emptyRelocations(),
	}

	duplicate := test.ELF{
		Symbols:     append([]test.Symbol{{Name: "start", Value: 0x0}}, exampleSymbols...),
		Relocations: emptyRelocations(),
	}

	badRelocation := test.ELF{
		Symbols: exampleSymbols,
		Relocations: []test.RelocationSection{
			{
				Name:    ".rel.rom.ram",
				Type:    elf.SHT_REL,
				Entries: []test.Relocation{{Offset: 0x04, Info: 1<<8 | uint32(elf.R_ARM_THM_PC22)}},
			},
		},
	}

	noRelocations := test.ELF{
		Symbols: exampleSymbols,
	}

	cases := []struct {
		name    string
		fixture test.ELF
		pattern string
	}{
		{"missing", missing, fae.NoSymbol},
		{"duplicate", duplicate, fae.AmbiguousSymbol},
		{"bad relocation", badRelocation, fae.UnsupportedRelocation},
		{"no relocations", noRelocations, fae.NoSection},
	}

	for _, c := range cases {
		ef := openFixture(t, c.fixture)
		crt0 := &fakeCrt0{data: sequence(16, 0x00)}
		part := &fakePartition{data: sequence(50, 0x40)}
		asm := fae.Assembler{Crt0: crt0, Partition: part}

		img, err := asm.Assemble(context.Background(), ef, "prog.elf")
		test.ExpectSuccess(t, curated.Has(err, c.pattern), c.name)
		test.ExpectSuccess(t, img == nil, c.name)

		// no external tool is run
		test.ExpectEquality(t, crt0.calls, 0, c.name)
		test.ExpectEquality(t, part.calls, 0, c.name)
	}
}

func TestAssembleToolFailure(t *testing.T) {
	ef := openFixture(t, test.ELF{
		Symbols:     exampleSymbols,
		Relocations: emptyRelocations(),
	})

	toolErr := curated.Errorf("tool failed: %s", "exit status 2")

	crt0 := &fakeCrt0{err: toolErr}
	part := &fakePartition{data: sequence(50, 0x40)}
	asm := fae.Assembler{Crt0: crt0, Partition: part}
	_, err := asm.Assemble(context.Background(), ef, "prog.elf")
	test.ExpectSuccess(t, curated.Has(err, "tool failed: %s"))
	test.ExpectEquality(t, part.calls, 0)

	crt0 = &fakeCrt0{data: sequence(16, 0x00)}
	part = &fakePartition{err: toolErr}
	asm = fae.Assembler{Crt0: crt0, Partition: part}
	_, err = asm.Assemble(context.Background(), ef, "prog.elf")
	test.ExpectSuccess(t, curated.Has(err, "tool failed: %s"))
	test.ExpectEquality(t, crt0.calls, 1)
}
