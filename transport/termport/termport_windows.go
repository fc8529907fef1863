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

//go:build windows

package termport

import (
	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/transport"
)

const unsupported = "termios is not available on this platform"

// Open always fails on this platform.
func Open(cfg transport.Config) (transport.Port, error) {
	return nil, curated.Errorf(transport.Fatal, curated.Errorf(unsupported))
}

// Opener returns a transport.Opener that always fails on this platform.
func Opener(cfg transport.Config) transport.Opener {
	return func() (transport.Port, error) {
		return Open(cfg)
	}
}
