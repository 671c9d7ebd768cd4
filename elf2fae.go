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

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/elf2fae/elf2fae/commandline"
	"github.com/elf2fae/elf2fae/curated"
	"github.com/elf2fae/elf2fae/fae"
	"github.com/elf2fae/elf2fae/gdbinit"
	"github.com/elf2fae/elf2fae/logger"
	"github.com/elf2fae/elf2fae/prefs"
	"github.com/elf2fae/elf2fae/resources"
	"github.com/elf2fae/elf2fae/terminal"
	"github.com/elf2fae/elf2fae/toolchain"
	"github.com/elf2fae/elf2fae/version"
)

const program = version.ApplicationName

// values returned by run() and passed to os.Exit().
const (
	exitSuccess = 0

	// usage error or a failure to process the ELF file
	exitFailure = 1

	// elf2fae itself is at fault
	exitInternal = 2
)

const additionalHelp = `Converts an ARMv7-M ELF file into a flat FAE image. The FAE image and a
gdbinit script are written to the same directory as the ELF file.

Toolchain options given on the command line override the values in the
preferences file. Use -saveprefs to make them the new defaults once the
conversion has succeeded.`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run elf2fae with the command line arguments and return the exit value.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	colour := terminal.Colour(stderr)

	p := &commandline.Parser{Output: stdout}
	p.NewArgs(args)
	p.Usage(fmt.Sprintf("%s [options] ELFFilename", program))
	p.AdditionalHelp(additionalHelp)

	crt0Path := p.AddString("crt0_path", toolchain.DefaultCrt0Path, "directory containing the crt0 sources")
	objcopy := p.AddString("objcopy", toolchain.DefaultObjcopy, "objcopy program used to extract the partition")
	makeTool := p.AddString("make", toolchain.DefaultMake, "make program used to build crt0")
	timeout := p.AddDuration("timeout", toolchain.DefaultTimeout, "time allowed for each external tool (0 for no limit)")
	builtin := p.AddBool("builtin", false, "extract the partition without running objcopy")
	echo := p.AddBool("log", false, "echo log to stderr")
	savePrefs := p.AddBool("saveprefs", false, "save toolchain options as the new defaults")
	showVersion := p.AddBool("version", false, "print version information and exit")

	usage := func(msg string) int {
		terminal.Fatal(stderr, colour, program, msg)
		p.Output = stderr
		p.Help()
		return exitFailure
	}

	r, err := p.Parse()
	switch r {
	case commandline.ParseHelp:
		return exitSuccess
	case commandline.ParseError:
		return usage(err.Error())
	}

	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return exitSuccess
	}

	if len(p.RemainingArgs()) != 1 {
		return usage("one ELF file required")
	}

	// the filename is checked before the filesystem is touched
	elfPath := p.GetArg(0)
	faePath, err := fae.OutputFilename(elfPath)
	if err != nil {
		return usage(err.Error())
	}

	if *echo {
		logger.SetEcho(stderr)
		defer logger.SetEcho(nil)
	}

	fail := func(err error) int {
		terminal.Fatal(stderr, colour, program, err.Error())
		if curated.Has(err, fae.NothingProduced) {
			return exitInternal
		}
		return exitFailure
	}

	pref, err := preferences(p, *crt0Path, *objcopy, *makeTool, *timeout)
	if err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = convert(ctx, elfPath, faePath, pref, *builtin)
	if err != nil {
		return fail(err)
	}

	// the preferences are only saved once they have produced an image
	if *savePrefs {
		err = pref.Save()
		if err != nil {
			return fail(err)
		}
	}

	return exitSuccess
}

// preferences loads the toolchain preferences from disk and applies any
// options given on the command line.
func preferences(p *commandline.Parser, crt0Path, objcopy, makeTool string, timeout time.Duration) (*toolchain.Preferences, error) {
	fn, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	pref, err := toolchain.NewPreferences(fn)
	if err != nil {
		return nil, err
	}

	// values of type string and time.Duration are always accepted by the
	// preference types so the errors can be ignored
	p.Visit(func(flag string) {
		switch flag {
		case "crt0_path":
			_ = pref.Crt0Path.Set(crt0Path)
		case "objcopy":
			_ = pref.Objcopy.Set(objcopy)
		case "make":
			_ = pref.Make.Set(makeTool)
		case "timeout":
			_ = pref.Timeout.Set(timeout)
		}
	})

	logger.Logf("prefs", "crt0 path is %s", pref.Crt0Path.String())
	logger.Logf("prefs", "objcopy is %s", pref.Objcopy.String())
	logger.Logf("prefs", "make is %s", pref.Make.String())
	logger.Logf("prefs", "timeout is %s", pref.Timeout.String())

	return pref, nil
}

// convert the ELF file to an FAE image and write the image and the gdbinit
// script. nothing is written if any part of the conversion fails.
func convert(ctx context.Context, elfPath string, faePath string, pref *toolchain.Preferences, builtin bool) error {
	ef, err := fae.Open(elfPath)
	if err != nil {
		return err
	}
	defer ef.Close()

	var part fae.PartitionExtractor
	if builtin {
		part = toolchain.Builtin{}
	} else {
		part = toolchain.NewObjcopy(pref.Objcopy.String(), pref.Timeout.Duration())
	}

	asm := fae.Assembler{
		Crt0: toolchain.Crt0{
			Make:    pref.Make.String(),
			Timeout: pref.Timeout.Duration(),
		},
		Partition: part,
		Crt0Path:  pref.Crt0Path.String(),
	}

	img, err := asm.Assemble(ctx, ef, elfPath)
	if err != nil {
		return err
	}

	scr, err := gdbinit.New(ef, elfPath, pref.Crt0Path.String(), img.MetadataSize)
	if err != nil {
		return err
	}

	var script bytes.Buffer
	err = scr.Generate(&script)
	if err != nil {
		return err
	}

	err = os.WriteFile(faePath, img.Data, 0o644)
	if err != nil {
		return curated.Errorf("output: %v", err)
	}
	logger.Logf("output", "%s (%d bytes)", faePath, len(img.Data))

	scriptPath := gdbinit.Path(elfPath)
	err = os.WriteFile(scriptPath, script.Bytes(), 0o644)
	if err != nil {
		_ = os.Remove(faePath)
		return curated.Errorf("output: %v", err)
	}
	logger.Logf("output", "%s", scriptPath)

	return nil
}
