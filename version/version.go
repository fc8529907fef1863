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


// Package version reports the name and version of the application. The
// version number is set by the linker when building a release. Otherwise the
// build information embedded by the Go toolchain is used.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "m8link"

// set with -ldflags "-X github.com/jetsetilly/m8link/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this
// is a numbered release.
//
// The version string is "unreleased" if there is vcs information but no
// version number and "local" if there is neither.
//
// The revision string is suffixed with "+dirty" if the source had been
// modified since the last commit.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for a
// banner or log entry.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
