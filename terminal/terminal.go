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

package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// ANSI sequences used for fatal messages.
const (
	penFatal  = "\033[91;1m"
	penNormal = "\033[0m"
)

// IsTerminal returns true if the file is connected to a terminal. A file is a
// terminal if its attributes can be read with tcgetattr().
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// Fatal writes a message prefixed with the program name. The message is
// coloured if colour is true.
func Fatal(output io.Writer, colour bool, program string, message string) {
	if colour {
		fmt.Fprintf(output, "%s%s: %s%s\n", penFatal, program, message, penNormal)
		return
	}
	fmt.Fprintf(output, "%s: %s\n", program, message)
}

// Colour returns true if messages written to output should be coloured.
func Colour(output io.Writer) bool {
	if f, ok := output.(*os.File); ok {
		return IsTerminal(f)
	}
	return false
}
