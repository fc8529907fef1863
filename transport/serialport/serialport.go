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
	"time"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/transport"
	"go.bug.st/serial"
)

// Port is an implementation of transport.Port.
type Port struct {
	name string
	port serial.Port
}

// Open the serial port described by cfg. If no device is named then Find()
// is used to locate the device.
func Open(cfg transport.Config) (*Port, error) {
	name := cfg.Device
	if name == "" {
		var err error
		name, err = Find()
		if err != nil {
			return nil, err
		}
	}

	baud := cfg.Baud
	if baud <= 0 {
		baud = transport.DefaultBaud
	}

	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(name, mode)
	if err != nil {
		return nil, curated.Errorf(transport.Fatal, curated.Errorf("%s: %v", name, err))
	}

	// a zero timeout means that a read will return immediately if there is no
	// data waiting
	if err := port.SetReadTimeout(0); err != nil {
		port.Close()
		return nil, curated.Errorf(transport.Fatal, err)
	}

	if err := port.ResetInputBuffer(); err != nil {
		logger.Logf(logger.Allow, "serial", "could not reset input buffer: %v", err)
	}

	logger.Logf(logger.Allow, "serial", "opened %s at %d baud", name, baud)

	return &Port{
		name: name,
		port: port,
	}, nil
}

// Opener returns a transport.Opener for the serial port described by cfg.
func Opener(cfg transport.Config) transport.Opener {
	return func() (transport.Port, error) {
		return Open(cfg)
	}
}

// Name returns the device path of the open port.
func (p *Port) Name() string {
	return p.name
}

// ReadNonBlocking implements the transport.Port interface.
func (p *Port) ReadNonBlocking(b []byte) (int, error) {
	n, err := p.port.Read(b)
	if err != nil {
		return n, curated.Errorf(transport.Fatal, err)
	}
	return n, nil
}

// WriteBlocking implements the transport.Port interface.
func (p *Port) WriteBlocking(b []byte, timeout time.Duration) (int, error) {
	return transport.WriteWithin(p.port, b, timeout)
}

// Close implements the transport.Port interface.
func (p *Port) Close() error {
	logger.Logf(logger.Allow, "serial", "closing %s", p.name)
	if err := p.port.Close(); err != nil {
		return curated.Errorf(transport.Fatal, err)
	}
	return nil
}
