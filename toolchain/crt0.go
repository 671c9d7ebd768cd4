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
	"path/filepath"
	"time"

	"github.com/elf2fae/elf2fae/curated"
)

// Crt0Filename is the file produced by a successful build of the crt0
// directory.
const Crt0Filename = "crt0.fae"

// Crt0 builds the crt0 blob by running make in the crt0 directory. The
// directory is cleaned before it is built.
type Crt0 struct {
	Make    string
	Timeout time.Duration
}

// BuildCrt0 implements the fae.Crt0Builder interface.
func (c Crt0) BuildCrt0(ctx context.Context, path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, curated.Errorf("crt0: %v", err)
	}

	err = run(ctx, c.Timeout, c.Make, "-C", abs, "realclean", "all")
	if err != nil {
		return nil, curated.Errorf("crt0: failed to build crt0: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(abs, Crt0Filename))
	if err != nil {
		return nil, curated.Errorf("crt0: %v", err)
	}

	return data, nil
}
