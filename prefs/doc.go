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

// Package prefs facilitates the storage of preferential values in the
// elf2fae preferences file. The file is a plain text file of key/value
// pairs, one per line, sorted by key:
//
//	toolchain.objcopy :: arm-none-eabi-objcopy
//	toolchain.timeout :: 2m0s
//
// A Disk instance is created with NewDisk() and values of type Bool, String,
// Int or Duration are associated with a key using the Add() function. Load()
// sets the values from the file and Save() writes them back.
//
// Entries in the file that have not been added to the Disk instance are
// preserved by Save(). This means that more than one Disk instance can share
// the same file.
package prefs
