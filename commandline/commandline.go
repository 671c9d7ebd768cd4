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

package commandline

import (
	"flag"
	"io"
	"os"
	"time"
)

// Parser is the top-level structure for command line parsing.
type Parser struct {
	// where to print output (help messages etc). defaults to os.Stdout
	Output io.Writer

	// the underlying flag structure. a new flagset is created on every call to
	// NewArgs()
	flags *flag.FlagSet

	// the argument list as specified by the NewArgs() function
	args []string

	// whether Parse() has been called since the last call to NewArgs()
	parsed bool

	// one line synopsis of the program and its arguments
	usage string

	// text printed after the flag descriptions
	additionalHelp string
}

// NewArgs with a string of arguments (from the command line for example).
// Any flags added before this call are forgotten.
func (p *Parser) NewArgs(args []string) {
	p.args = args
	p.flags = flag.NewFlagSet("", flag.ContinueOnError)
	p.flags.Usage = func() {}
	p.parsed = false
}

// Usage sets the synopsis line printed at the head of the help message.
func (p *Parser) Usage(usage string) {
	p.usage = usage
}

// AdditionalHelp allows a program to provide a verbose explanation of what
// it does. It is printed after the flag descriptions.
func (p *Parser) AdditionalHelp(help string) {
	p.additionalHelp = help
}

// Parsed returns false if Parse() has not yet been called since either a call
// to NewArgs().
func (p *Parser) Parsed() bool {
	return p.parsed
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// Continue with command line processing.
	ParseContinue ParseResult = iota

	// Help was requested and has been printed.
	ParseHelp

	// an error has occurred and is returned as the second return value.
	ParseError
)

// Parse the top level layer of arguments.
func (p *Parser) Parse() (ParseResult, error) {
	// flag the parsed flag in all instances, even if we eventually return an
	// error
	p.parsed = true

	// messages from the flag package are not printed. errors are returned to
	// the caller and help is printed by Help()
	hw := &helpWriter{}
	p.flags.SetOutput(hw)

	err := p.flags.Parse(p.args)
	if err != nil {
		if err == flag.ErrHelp {
			p.Help()
			return ParseHelp, nil
		}
		return ParseError, err
	}

	return ParseContinue, nil
}

// Help prints the usage synopsis, the flag descriptions and any additional
// help to the Output writer.
func (p *Parser) Help() {
	output := p.Output
	if output == nil {
		output = os.Stdout
	}

	hw := &helpWriter{}
	p.flags.SetOutput(hw)
	p.flags.PrintDefaults()
	hw.help(output, p.usage, p.additionalHelp)
}

// RemainingArgs after a call to Parse() ie. arguments that aren't flags.
func (p *Parser) RemainingArgs() []string {
	return p.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag.
func (p *Parser) GetArg(i int) string {
	return p.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (p *Parser) AddBool(name string, value bool, usage string) *bool {
	return p.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (p *Parser) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return p.flags.Duration(name, value, usage)
}

// AddString flag for next call to Parse().
func (p *Parser) AddString(name string, value string, usage string) *string {
	return p.flags.String(name, value, usage)
}

// Visit visits the flags in lexicographical order, calling fn for each. It
// visits only those flags that have been set.
func (p *Parser) Visit(fn func(flag string)) {
	p.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// IsSet returns true if the named flag was given on the command line.
func (p *Parser) IsSet(name string) bool {
	set := false
	p.Visit(func(flag string) {
		if flag == name {
			set = true
		}
	})
	return set
}
