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

// Package commandline is a thin wrapper over the flag package from the
// standard library. It collects the flag definitions, the positional
// arguments and the usage text of a program in one place so that help and
// usage messages are always printed in the same way, whether they were
// requested with -help or are the result of a usage error.
//
//	p := &commandline.Parser{Output: os.Stdout}
//	p.NewArgs(os.Args[1:])
//	p.Usage("prog [options] FILE")
//	log := p.AddBool("log", false, "echo log")
//
//	switch r, err := p.Parse(); r {
//	case commandline.ParseHelp:
//		return
//	case commandline.ParseError:
//		fmt.Println(err)
//		p.Help()
//		return
//	}
//
// The Visit() function reports which flags were explicitly set on the
// command line, allowing a flag to take precedence over a stored preference
// only when it has been given.
package commandline
