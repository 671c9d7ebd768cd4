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

package commandline_test

import (
	"testing"
	"time"

	"github.com/elf2fae/elf2fae/commandline"
	"github.com/elf2fae/elf2fae/test"
)

func TestNoFlags(t *testing.T) {
	p := commandline.Parser{Output: &test.CompareWriter{}}
	p.NewArgs([]string{})

	r, err := p.Parse()
	test.ExpectEquality(t, r, commandline.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(p.RemainingArgs()), 0)
	test.ExpectSuccess(t, p.Parsed())
}

func TestFlags(t *testing.T) {
	p := commandline.Parser{Output: &test.CompareWriter{}}
	p.NewArgs([]string{"--crt0_path", "../crt0", "-timeout", "5s", "-log", "prog.elf"})
	crt0 := p.AddString("crt0_path", "./crt0/", "path to crt0")
	timeout := p.AddDuration("timeout", time.Minute, "timeout")
	log := p.AddBool("log", false, "log")
	builtin := p.AddBool("builtin", false, "builtin")

	test.ExpectEquality(t, *crt0, "./crt0/")

	r, err := p.Parse()
	test.ExpectEquality(t, r, commandline.ParseContinue)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, *crt0, "../crt0")
	test.ExpectEquality(t, *timeout, 5*time.Second)
	test.ExpectSuccess(t, *log)
	test.ExpectFailure(t, *builtin)

	test.ExpectEquality(t, len(p.RemainingArgs()), 1)
	test.ExpectEquality(t, p.GetArg(0), "prog.elf")

	test.ExpectSuccess(t, p.IsSet("crt0_path"))
	test.ExpectSuccess(t, p.IsSet("log"))
	test.ExpectFailure(t, p.IsSet("builtin"))
}

func TestUnknownFlag(t *testing.T) {
	tw := &test.CompareWriter{}
	p := commandline.Parser{Output: tw}
	p.NewArgs([]string{"-foo", "prog.elf"})

	r, err := p.Parse()
	test.ExpectEquality(t, r, commandline.ParseError)
	test.ExpectFailure(t, err)

	// nothing is printed by Parse() in the case of an error
	test.ExpectEquality(t, tw.String(), "")
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	p := commandline.Parser{Output: tw}
	p.NewArgs([]string{"-help"})
	p.Usage("prog [options] FILE")
	p.AdditionalHelp("more help")
	p.AddBool("test", true, "test flag")

	r, err := p.Parse()
	test.ExpectEquality(t, r, commandline.ParseHelp)
	test.ExpectSuccess(t, err)

	expectedHelp := "usage: prog [options] FILE\n" +
		"\n" +
		"options:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"more help\n"

	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpNoFlags(t *testing.T) {
	tw := &test.CompareWriter{}
	p := commandline.Parser{Output: tw}
	p.NewArgs([]string{})
	p.Usage("prog FILE")
	p.Help()

	test.ExpectEquality(t, tw.String(), "usage: prog FILE\n")
}
