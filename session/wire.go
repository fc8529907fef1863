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

package session

import (
	"github.com/jetsetilly/m8link/userinput"
)

// Tags and messages sent to the device.
const (
	TagController byte = 'C'
	TagEnable     byte = 'D'
	TagDisconnect byte = 'D'
)

var (
	enableDisplay = []byte{TagEnable}
	resetDisplay  = []byte{'E', 'R'}
	disconnect    = []byte{TagDisconnect}
)

// controller returns the message that sends the mask to the device.
func controller(m userinput.Mask) []byte {
	return []byte{TagController, uint8(m)}
}
