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

// Package logger is the central log for elf2fae. Each stage of the image
// pipeline records what it has done with a short tag and a detail string:
//
//	logger.Logf("partition", "%d bytes extracted", len(data))
//
// The log is held in memory. It can be written to an io.Writer in full with
// Write(), or partially with Tail(). Entries can also be echoed to an
// io.Writer as they are logged with SetEcho().
//
// Repeated entries (the same tag and detail as the previous entry) are
// collapsed into the previous entry and a repeat count is shown.
package logger
