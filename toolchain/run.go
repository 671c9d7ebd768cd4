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
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/logger"
)

// how long to wait for the output pipes to close after the tool has been
// killed.
const waitDelay = time.Second

// run the named program and wait for it to finish. a timeout of zero means
// that the program can run for as long as it likes.
func run(ctx context.Context, timeout time.Duration, name string, args ...string) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// the tool and any processes it starts are killed together on timeout.
	// waitDelay covers descendants that escape the process group
	killGroup(cmd)
	cmd.WaitDelay = waitDelay

	logger.Log("toolchain", strings.Join(cmd.Args, " "))

	err := cmd.Run()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return curated.Errorf(ToolTimeout, name, timeout)
		}
		return curated.Errorf(ToolFailed, name, err, diagnostic(stdout.String(), stderr.String()))
	}

	return nil
}

// diagnostic combines the captured output of a program into a single string.
func diagnostic(stdout string, stderr string) string {
	var d []string
	if s := strings.TrimSpace(stdout); s != "" {
		d = append(d, s)
	}
	if s := strings.TrimSpace(stderr); s != "" {
		d = append(d, s)
	}
	if len(d) == 0 {
		return "no output"
	}
	return strings.Join(d, "; ")
}
