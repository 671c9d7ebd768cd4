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

package resources

import (
	"os"
	"path/filepath"

	"github.com/elf2fae/elf2fae/curated"
)

// the name of the portable resource directory.
const portablePath = ".elf2fae"

// the name of the resource directory in the user's configuration directory.
const configPath = "elf2fae"

// JoinPath prepends the resource path to the supplied path elements. The
// path is not created.
func JoinPath(path ...string) (string, error) {
	b, err := resourcePath()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{b}, path...)...), nil
}

func resourcePath() (string, error) {
	if info, err := os.Stat(portablePath); err == nil && info.IsDir() {
		return portablePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf("resources: %v", err)
	}

	return filepath.Join(cfg, configPath), nil
}
