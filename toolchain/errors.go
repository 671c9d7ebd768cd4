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

package toolchain

// Sentinel patterns for errors created by this package. Use with
// curated.Is() and curated.Has().
const (
	ToolFailed    = "%s: %v: %s"
	ToolTimeout   = "%s: did not finish within %v"
	RemoveFailed  = "failed to remove %s: %v"
	OverlapFailed = "segment at %#08x overlaps previous segment"
	GapTooLarge   = "gap of %#x bytes before segment at %#08x is too large"
)
