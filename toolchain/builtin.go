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

package toolchain

import (
	"context"
	"debug/elf"
	"io"
	"sort"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/logger"
)

// the largest gap between segments that will be filled. anything larger
// almost certainly means that the segments are intended for different
// memories and that the image would be unusable.
const maxGap = 0x100000

// Builtin extracts the partition without running an external tool. The
// result is a memory dump of the loadable segments of the ELF file, starting
// at the lowest physical address. Gaps between segments are filled with zero.
// This is the same as the output of objcopy with the --output-target=binary
// flag for the linker scripts used with elf2fae.
type Builtin struct{}

// ExtractPartition implements the fae.PartitionExtractor interface.
func (Builtin) ExtractPartition(_ context.Context, elfPath string) ([]byte, error) {
	ef, err := elf.Open(elfPath)
	if err != nil {
		return nil, curated.Errorf("partition: %v", err)
	}
	defer ef.Close()

	var progs []*elf.Prog
	for _, p := range ef.Progs {
		if p.Type != elf.PT_LOAD || p.Filesz == 0 {
			continue
		}
		progs = append(progs, p)
	}

	// objcopy produces an empty file if there is nothing to copy
	if len(progs) == 0 {
		logger.Log("partition", "no loadable segments")
		return []byte{}, nil
	}

	sort.SliceStable(progs, func(i, j int) bool {
		return progs[i].Paddr < progs[j].Paddr
	})

	origin := progs[0].Paddr
	var data []byte

	for _, p := range progs {
		offset := p.Paddr - origin
		if offset < uint64(len(data)) {
			return nil, curated.Errorf("partition: %v", curated.Errorf(OverlapFailed, p.Paddr))
		}

		gap := offset - uint64(len(data))
		if gap > maxGap {
			return nil, curated.Errorf("partition: %v", curated.Errorf(GapTooLarge, gap, p.Paddr))
		}
		data = append(data, make([]byte, gap)...)

		seg, err := io.ReadAll(p.Open())
		if err != nil {
			return nil, curated.Errorf("partition: %v", err)
		}
		data = append(data, seg...)

		logger.Logf("partition", "segment at %#08x (%d bytes)", p.Paddr, len(seg))
	}

	return data, nil
}
