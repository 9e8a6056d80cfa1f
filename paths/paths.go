// This file is part of Memview.
//
// Memview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memview.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/memview/curated"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".memview"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The
// subdirectory is created if it does not exist.
//
// Both arguments can be empty. If the file argument is empty then the
// returned path is the path to the directory.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}
	return filepath.Join(base, file), nil
}

// getBasePath returns the base resource path joined with the subdirectory.
// the base resource path in the current directory is preferred over the
// base resource path in the user's configuration directory.
func getBasePath(subPth string) (string, error) {
	var pth string

	if _, err := os.Stat(baseResourcePath); err == nil {
		pth = filepath.Join(baseResourcePath, subPth)
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, baseResourcePath[1:], subPth)
	}

	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
