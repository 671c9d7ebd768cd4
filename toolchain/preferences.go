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

import (
	"time"

	"github.com/elf2fae/elf2fae/prefs"
)

// Default values for the toolchain preferences.
const (
	DefaultObjcopy  = "arm-none-eabi-objcopy"
	DefaultMake     = "make"
	DefaultTimeout  = 2 * time.Minute
	DefaultCrt0Path = "./crt0/"
)

// Preferences for the external tools.
type Preferences struct {
	dsk *prefs.Disk

	// names of the external tools
	Objcopy prefs.String
	Make    prefs.String

	// maximum time an external tool is allowed to run for. zero means no
	// limit
	Timeout prefs.Duration

	// directory containing the crt0 sources
	Crt0Path prefs.String
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The values are loaded from the preferences file at path.
// A missing file is not an error.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("toolchain.objcopy", &p.Objcopy)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("toolchain.make", &p.Make)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("toolchain.timeout", &p.Timeout)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("crt0.path", &p.Crt0Path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default value.
func (p *Preferences) SetDefaults() {
	// errors are not possible for these values
	_ = p.Objcopy.Set(DefaultObjcopy)
	_ = p.Make.Set(DefaultMake)
	_ = p.Timeout.Set(DefaultTimeout)
	_ = p.Crt0Path.Set(DefaultCrt0Path)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
