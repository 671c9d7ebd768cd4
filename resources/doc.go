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

// Package resources contains functions to prepare paths for elf2fae
// resources, currently only the preferences file.
//
// Resources are looked for in the portable path, a directory named
// ".elf2fae" in the current working directory. If the portable path does not
// exist, the resource path is a directory named "elf2fae" in the user's
// configuration directory as returned by os.UserConfigDir().
package resources
