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

package transport

// DefaultBaud is the baud rate used if none is specified. The device
// communicates over USB so the value is largely ignored.
const DefaultBaud = 115200

// Config describes how to open a Port.
type Config struct {
	// the device path. an empty string means the device should be found
	// automatically
	Device string

	Baud int
}

func (cfg Config) String() string {
	if cfg.Device == "" {
		return "autodetect"
	}
	return cfg.Device
}
