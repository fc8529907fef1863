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

package serialport

import (
	"strings"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/transport"
	"go.bug.st/serial/enumerator"
)

// USB identifiers of the device.
const (
	VID = "16C0"
	PID = "048A"
)

// Details of a serial port found during enumeration.
type Details struct {
	Name    string
	Product string
	Serial  string

	// whether the USB identifiers match the device
	Device bool
}

func (d Details) String() string {
	s := strings.Builder{}
	s.WriteString(d.Name)
	if d.Product != "" {
		s.WriteString(" (")
		s.WriteString(d.Product)
		s.WriteString(")")
	}
	if d.Device {
		s.WriteString(" *")
	}
	return s.String()
}

// isDevice returns true if the enumerated port is a USB port with the
// identifiers of the device. sysfs reports the identifiers in lower case.
func isDevice(p *enumerator.PortDetails) bool {
	return p.IsUSB && strings.EqualFold(p.VID, VID) && strings.EqualFold(p.PID, PID)
}

func details(ports []*enumerator.PortDetails) []Details {
	d := make([]Details, 0, len(ports))
	for _, p := range ports {
		d = append(d, Details{
			Name:    p.Name,
			Product: p.Product,
			Serial:  p.SerialNumber,
			Device:  isDevice(p),
		})
	}
	return d
}

// List all serial ports on the system. Ports that are the device are marked
// as such.
func List() ([]Details, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, curated.Errorf(transport.Fatal, err)
	}
	return details(ports), nil
}

// first returns the name of the first port in the list that is the device.
func first(ports []Details) (string, bool) {
	for _, p := range ports {
		if p.Device {
			return p.Name, true
		}
	}
	return "", false
}

// Find returns the name of the first serial port that is the device.
func Find() (string, error) {
	ports, err := List()
	if err != nil {
		return "", err
	}

	name, ok := first(ports)
	if !ok {
		return "", curated.Errorf(transport.Fatal, curated.Errorf(transport.NoDevice))
	}

	logger.Logf(logger.Allow, "serial", "found device at %s", name)

	return name, nil
}
