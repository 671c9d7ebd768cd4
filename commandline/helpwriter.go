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
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

func (hw *helpWriter) help(output io.Writer, usage string, additionalHelp string) {
	if usage != "" {
		io.WriteString(output, fmt.Sprintf("usage: %s\n", usage))
	}

	if len(hw.buffer) > 0 {
		if usage != "" {
			io.WriteString(output, "\n")
		}
		io.WriteString(output, "options:\n")
		output.Write(hw.buffer)
	}

	if additionalHelp != "" {
		io.WriteString(output, "\n")
		io.WriteString(output, strings.TrimRight(additionalHelp, "\n"))
		io.WriteString(output, "\n")
	}
}
