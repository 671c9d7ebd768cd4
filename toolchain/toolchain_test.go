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

package toolchain_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/toolchain"
	"github.com/elf2fae/elf2fae/test"
)

// writeScript creates an executable shell script that stands in for one of
// the external tools.
func writeScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not supported on windows")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh is not available")
	}
	fn := filepath.Join(dir, name)
	err := os.WriteFile(fn, []byte("#!/bin/sh\n"+body), 0o755)
	test.DemandSuccess(t, err)
	return fn
}

func TestCrt0(t *testing.T) {
	bin := t.TempDir()
	crt0 := t.TempDir()

	makeTool := writeScript(t, bin, "make", `
[ "$1" = "-C" ] || exit 1
[ "$3" = "realclean" ] || exit 1
[ "$4" = "all" ] || exit 1
printf 'CRT0BLOB' > "$2/crt0.fae"
`)

	c := toolchain.Crt0{Make: makeTool, Timeout: 10 * time.Second}
	data, err := c.BuildCrt0(context.Background(), crt0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "CRT0BLOB")
}

func TestCrt0Failure(t *testing.T) {
	bin := t.TempDir()
	crt0 := t.TempDir()

	makeTool := writeScript(t, bin, "make", `
echo "make: *** No rule to make target 'realclean'.  Stop." >&2
exit 2
`)

	c := toolchain.Crt0{Make: makeTool, Timeout: 10 * time.Second}
	_, err := c.BuildCrt0(context.Background(), crt0)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, toolchain.ToolFailed))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "No rule to make target"), err.Error())
}

func TestCrt0NoOutput(t *testing.T) {
	bin := t.TempDir()
	crt0 := t.TempDir()

	// build succeeds but crt0.fae is not produced
	makeTool := writeScript(t, bin, "make", "exit 0\n")

	c := toolchain.Crt0{Make: makeTool}
	_, err := c.BuildCrt0(context.Background(), crt0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}

func TestTimeout(t *testing.T) {
	bin := t.TempDir()
	crt0 := t.TempDir()

	// the sleep process replaces the shell
	makeTool := writeScript(t, bin, "make", "exec sleep 10\n")

	c := toolchain.Crt0{Make: makeTool, Timeout: 100 * time.Millisecond}
	start := time.Now()
	_, err := c.BuildCrt0(context.Background(), crt0)
	test.ExpectSuccess(t, curated.Has(err, toolchain.ToolTimeout))
	test.ExpectSuccess(t, time.Since(start) < 5*time.Second)
}

func TestTimeoutChildProcess(t *testing.T) {
	bin := t.TempDir()
	crt0 := t.TempDir()

	// the shell forks sleep and a nested shell, in the same way that make
	// runs its recipes. both hold the output pipes open
	makeTool := writeScript(t, bin, "make", `
sleep 10
sh -c 'sleep 10'
echo finished
`)

	c := toolchain.Crt0{Make: makeTool, Timeout: 100 * time.Millisecond}
	start := time.Now()
	_, err := c.BuildCrt0(context.Background(), crt0)
	test.ExpectSuccess(t, curated.Has(err, toolchain.ToolTimeout))
	test.ExpectSuccess(t, time.Since(start) < 5*time.Second, time.Since(start))

	// objcopy is subject to the same timeout
	o := toolchain.NewObjcopy(makeTool, 100*time.Millisecond)
	start = time.Now()
	_, err = o.ExtractPartition(context.Background(), "prog.elf")
	test.ExpectSuccess(t, curated.Has(err, toolchain.ToolTimeout))
	test.ExpectSuccess(t, time.Since(start) < 5*time.Second, time.Since(start))
}

func TestObjcopy(t *testing.T) {
	bin := t.TempDir()
	record := filepath.Join(t.TempDir(), "transient")

	objcopy := writeScript(t, bin, "objcopy", `
[ "$1" = "--input-target=elf32-littlearm" ] || exit 1
[ "$2" = "--output-target=binary" ] || exit 1
[ "$3" = "prog.elf" ] || exit 1
echo "$4" > "`+record+`"
printf 'PARTITION' > "$4"
`)

	o := toolchain.NewObjcopy(objcopy, 10*time.Second)
	data, err := o.ExtractPartition(context.Background(), "prog.elf")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "PARTITION")

	// transient file has been removed
	transient, err := os.ReadFile(record)
	test.DemandSuccess(t, err)
	_, err = os.Stat(strings.TrimSpace(string(transient)))
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestObjcopyFailure(t *testing.T) {
	bin := t.TempDir()
	record := filepath.Join(t.TempDir(), "transient")

	objcopy := writeScript(t, bin, "objcopy", `
echo "$4" > "`+record+`"
echo "checking input"
echo "objcopy: prog.elf: file format not recognized" >&2
exit 1
`)

	o := toolchain.NewObjcopy(objcopy, 10*time.Second)
	data, err := o.ExtractPartition(context.Background(), "prog.elf")
	test.ExpectSuccess(t, data == nil)
	test.ExpectSuccess(t, curated.Has(err, toolchain.ToolFailed))
	test.ExpectSuccess(t, strings.Contains(err.Error(), "checking input"), err.Error())
	test.ExpectSuccess(t, strings.Contains(err.Error(), "file format not recognized"), err.Error())

	// transient file has been removed on the failure path too
	transient, err := os.ReadFile(record)
	test.DemandSuccess(t, err)
	_, err = os.Stat(strings.TrimSpace(string(transient)))
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestMissingTool(t *testing.T) {
	o := toolchain.NewObjcopy(filepath.Join(t.TempDir(), "no-such-objcopy"), time.Second)
	_, err := o.ExtractPartition(context.Background(), "prog.elf")
	test.ExpectSuccess(t, curated.Has(err, toolchain.ToolFailed))
}
