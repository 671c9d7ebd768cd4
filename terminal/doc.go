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

// Package terminal decides how messages for the user are presented. Fatal
// messages are printed in bold bright red when the output is a terminal and
// as plain text otherwise, so that redirected output is not littered with
// ANSI escape sequences.
//
// Terminal detection uses the termios package from github.com/pkg/term.
package terminal
