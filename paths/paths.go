// This file is part of m8link.
//
// m8link is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m8link is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m8link.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".m8link"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource directory. Empty parts are
// ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}
	return filepath.Join(p...)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(home, strings.TrimPrefix(baseResourcePath, "."))
}

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. Note that the function does not
// test for this.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// The extension is omitted if ext is empty.
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	fn := fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prepend, n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, strings.TrimPrefix(ext, "."))
	}
	return fn
}
