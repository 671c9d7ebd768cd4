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
	"context"
	"debug/elf"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/logger"
)

// Crt0Builder builds the crt0 blob found at path and returns it.
type Crt0Builder interface {
	BuildCrt0(ctx context.Context, path string) ([]byte, error)
}

// PartitionExtractor returns the whole of the named ELF file as a flat
// binary.
type PartitionExtractor interface {
	ExtractPartition(ctx context.Context, elfPath string) ([]byte, error)
}

// Image is the result of a call to Assemble().
type Image struct {
	// the complete contents of the FAE file
	Data []byte

	// the offset in Data at which the partition begins
	MetadataSize int
}

// Assembler puts together an FAE image.
type Assembler struct {
	Crt0      Crt0Builder
	Partition PartitionExtractor

	// path to the crt0 directory passed to Crt0.BuildCrt0()
	Crt0Path string
}

// Assemble the FAE image for the ELF file. The elfPath argument is the path
// of the file from which ef was opened. It is passed to the
// PartitionExtractor.
//
// The symbol and relocation metadata is extracted from ef before any external
// tool is run. An ELF file with a structural problem therefore never causes a
// subprocess to be started.
func (asm *Assembler) Assemble(ctx context.Context, ef *elf.File, elfPath string) (*Image, error) {
	var meta []byte
	var err error

	meta, err = AppendSymbols(meta, ef, ExportedSymbols)
	if err != nil {
		return nil, curated.Errorf("fae: %v", err)
	}

	meta, err = AppendRelocationTables(meta, ef, ExportedRelocationTables)
	if err != nil {
		return nil, curated.Errorf("fae: %v", err)
	}

	crt0, err := asm.Crt0.BuildCrt0(ctx, asm.Crt0Path)
	if err != nil {
		return nil, curated.Errorf("fae: %v", err)
	}
	logger.Logf("crt0", "%d bytes", len(crt0))

	img := &Image{}
	img.Data = make([]byte, 0, len(crt0)+len(meta))
	img.Data = append(img.Data, crt0...)
	img.Data = append(img.Data, meta...)
	img.MetadataSize = len(img.Data)
	logger.Logf("fae", "metadata size is %d bytes", img.MetadataSize)

	partition, err := asm.Partition.ExtractPartition(ctx, elfPath)
	if err != nil {
		return nil, curated.Errorf("fae: %v", err)
	}
	img.Data = append(img.Data, partition...)
	logger.Logf("partition", "%d bytes", len(partition))

	n := len(img.Data)
	img.Data = Pad(img.Data)
	logger.Logf("padding", "%d bytes", len(img.Data)-n)

	if len(img.Data) == 0 {
		return nil, curated.Errorf("fae: %v", curated.Errorf(NothingProduced))
	}

	return img, nil
}
