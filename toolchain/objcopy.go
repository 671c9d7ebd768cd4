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
	"os"
	"time"

	"github.com/elf2fae/elf2fae/curated"
)

// ObjcopyFlags select a 32-bit little-endian ARM ELF file as input and a flat
// binary as output.
var ObjcopyFlags = []string{
	"--input-target=elf32-littlearm",
	"--output-target=binary",
}

// Objcopy extracts the partition by running objcopy. The output of objcopy is
// written to a transient file which is removed once it has been read.
type Objcopy struct {
	Tool    string
	Flags   []string
	Timeout time.Duration
}

// NewObjcopy is the preferred method of initialisation for the Objcopy type.
func NewObjcopy(tool string, timeout time.Duration) Objcopy {
	return Objcopy{
		Tool:    tool,
		Flags:   ObjcopyFlags,
		Timeout: timeout,
	}
}

// ExtractPartition implements the fae.PartitionExtractor interface.
func (o Objcopy) ExtractPartition(ctx context.Context, elfPath string) (data []byte, err error) {
	f, err := os.CreateTemp("", "partition-*.fae")
	if err != nil {
		return nil, curated.Errorf("partition: %v", err)
	}
	transient := f.Name()
	f.Close()

	// the transient file is removed on every path. failure to remove it is an
	// error even if everything else has succeeded
	defer func() {
		if rerr := os.Remove(transient); rerr != nil && err == nil {
			data = nil
			err = curated.Errorf("partition: %v", curated.Errorf(RemoveFailed, transient, rerr))
		}
	}()

	args := make([]string, 0, len(o.Flags)+2)
	args = append(args, o.Flags...)
	args = append(args, elfPath, transient)

	err = run(ctx, o.Timeout, o.Tool, args...)
	if err != nil {
		return nil, curated.Errorf("partition: failed to run objcopy: %v", err)
	}

	data, err = os.ReadFile(transient)
	if err != nil {
		return nil, curated.Errorf("partition: %v", err)
	}

	return data, nil
}
