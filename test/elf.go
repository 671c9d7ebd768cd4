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

package test

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Symbol is an absolute symbol in the .symtab section of an ELF fixture.
type Symbol struct {
	Name  string
	Value uint32
}

// Relocation is a single entry in a relocation section of an ELF fixture.
type Relocation struct {
	Offset uint32
	Info   uint32
}

// ABS32 returns the Info field for an R_ARM_ABS32 relocation against symbol
// index sym.
func ABS32(sym uint32) uint32 {
	return sym<<8 | uint32(elf.R_ARM_ABS32)
}

// RelocationSection describes a relocation section in an ELF fixture. Type
// will normally be SHT_REL but can be anything in order to test failure
// conditions. SHT_RELA sections are given twelve byte entries with a zero
// addend.
type RelocationSection struct {
	Name    string
	Type    elf.SectionType
	Entries []Relocation
}

// Segment is a loadable segment in an ELF fixture. Each segment is also given
// an allocated PROGBITS section.
type Segment struct {
	Paddr uint32
	Data  []byte
}

// ELF describes a small ELF32 little-endian executable.
type ELF struct {
	// defaults to EM_ARM
	Machine elf.Machine

	// do not add .symtab and .strtab sections
	NoSymtab bool

	Symbols     []Symbol
	Relocations []RelocationSection
	Segments    []Segment
}

const (
	header32Size  = 52
	prog32Size    = 32
	section32Size = 40
	sym32Size     = 16
)

type stringTable struct {
	data []byte
}

func (st *stringTable) add(s string) uint32 {
	if len(st.data) == 0 {
		st.data = append(st.data, 0x00)
	}
	idx := uint32(len(st.data))
	st.data = append(st.data, []byte(s)...)
	st.data = append(st.data, 0x00)
	return idx
}

func align4(n int) int {
	return (n + 3) &^ 3
}

// Bytes returns the ELF fixture as a byte slice.
func (e ELF) Bytes() []byte {
	machine := e.Machine
	if machine == elf.EM_NONE {
		machine = elf.EM_ARM
	}

	var shstrtab stringTable
	var data bytes.Buffer
	sections := []elf.Section32{{}}
	progs := []elf.Prog32{}

	dataOrigin := header32Size + len(e.Segments)*prog32Size

	// add a blob to the data area and return its file offset
	place := func(b []byte) uint32 {
		for data.Len() != align4(data.Len()) {
			data.WriteByte(0x00)
		}
		off := uint32(dataOrigin + data.Len())
		data.Write(b)
		return off
	}

	for i, s := range e.Segments {
		off := place(s.Data)
		sections = append(sections, elf.Section32{
			Name:      shstrtab.add(segmentName(i)),
			Type:      uint32(elf.SHT_PROGBITS),
			Flags:     uint32(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
			Addr:      s.Paddr,
			Off:       off,
			Size:      uint32(len(s.Data)),
			Addralign: 4,
		})
		progs = append(progs, elf.Prog32{
			Type:   uint32(elf.PT_LOAD),
			Off:    off,
			Vaddr:  s.Paddr,
			Paddr:  s.Paddr,
			Filesz: uint32(len(s.Data)),
			Memsz:  uint32(len(s.Data)),
			Flags:  uint32(elf.PF_R | elf.PF_X),
			Align:  4,
		})
	}

	// the symbol table follows the relocation sections in the section header
	// table. relocation sections link to it
	symtabIdx := uint32(len(sections) + len(e.Relocations))

	for _, r := range e.Relocations {
		var b bytes.Buffer
		entsize := uint32(8)
		if r.Type == elf.SHT_RELA {
			entsize = 12
		}
		for _, ent := range r.Entries {
			binary.Write(&b, binary.LittleEndian, ent.Offset)
			binary.Write(&b, binary.LittleEndian, ent.Info)
			if r.Type == elf.SHT_RELA {
				binary.Write(&b, binary.LittleEndian, uint32(0))
			}
		}
		sec := elf.Section32{
			Name:      shstrtab.add(r.Name),
			Type:      uint32(r.Type),
			Off:       place(b.Bytes()),
			Size:      uint32(b.Len()),
			Addralign: 4,
			Entsize:   entsize,
		}
		if !e.NoSymtab {
			sec.Link = symtabIdx
		}
		sections = append(sections, sec)
	}

	if !e.NoSymtab {
		var strtab stringTable
		var b bytes.Buffer
		binary.Write(&b, binary.LittleEndian, elf.Sym32{})
		for _, s := range e.Symbols {
			binary.Write(&b, binary.LittleEndian, elf.Sym32{
				Name:  strtab.add(s.Name),
				Value: s.Value,
				Info:  elf.ST_INFO(elf.STB_GLOBAL, elf.STT_NOTYPE),
				Shndx: uint16(elf.SHN_ABS),
			})
		}
		if len(strtab.data) == 0 {
			strtab.add("")
		}

		sections = append(sections, elf.Section32{
			Name:      shstrtab.add(".symtab"),
			Type:      uint32(elf.SHT_SYMTAB),
			Off:       place(b.Bytes()),
			Size:      uint32(b.Len()),
			Link:      symtabIdx + 1,
			Info:      1,
			Addralign: 4,
			Entsize:   sym32Size,
		})
		sections = append(sections, elf.Section32{
			Name:      shstrtab.add(".strtab"),
			Type:      uint32(elf.SHT_STRTAB),
			Off:       place(strtab.data),
			Size:      uint32(len(strtab.data)),
			Addralign: 1,
		})
	}

	// section header string table is always the last section
	name := shstrtab.add(".shstrtab")
	sections = append(sections, elf.Section32{
		Name:      name,
		Type:      uint32(elf.SHT_STRTAB),
		Off:       place(shstrtab.data),
		Size:      uint32(len(shstrtab.data)),
		Addralign: 1,
	})

	shoff := place(nil)

	hdr := elf.Header32{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(machine),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     shoff,
		Ehsize:    header32Size,
		Shentsize: section32Size,
		Shnum:     uint16(len(sections)),
		Shstrndx:  uint16(len(sections) - 1),
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS32)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	if len(progs) > 0 {
		hdr.Phoff = header32Size
		hdr.Phentsize = prog32Size
		hdr.Phnum = uint16(len(progs))
	}

	var out bytes.Buffer
	binary.Write(&out, binary.LittleEndian, hdr)
	for _, p := range progs {
		binary.Write(&out, binary.LittleEndian, p)
	}
	out.Write(data.Bytes())
	for _, s := range sections {
		binary.Write(&out, binary.LittleEndian, s)
	}

	return out.Bytes()
}

func segmentName(i int) string {
	if i == 0 {
		return ".rom"
	}
	return ".rom" + string(rune('0'+i))
}

// WriteFile writes the ELF fixture to dir/name and returns the full path.
func (e ELF) WriteFile(t *testing.T, dir string, name string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, e.Bytes(), 0o644); err != nil {
		t.Fatalf("error writing ELF fixture: %v", err)
	}
	return fn
}
