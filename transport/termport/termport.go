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

//go:build !windows

package termport

import (
	"time"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/transport"
	"github.com/pkg/term"
)

// Port is an implementation of transport.Port.
type Port struct {
	name string
	t    *term.Term
}

// Open the serial device described by cfg in raw mode.
func Open(cfg transport.Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, curated.Errorf(transport.Fatal, curated.Errorf(transport.NoDevice))
	}

	baud := cfg.Baud
	if baud <= 0 {
		baud = transport.DefaultBaud
	}

	t, err := term.Open(cfg.Device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(transport.Fatal, err)
	}

	logger.Logf(logger.Allow, "termios", "opened %s at %d baud", cfg.Device, baud)

	return &Port{
		name: cfg.Device,
		t:    t,
	}, nil
}

// Opener returns a transport.Opener for the serial device described by cfg.
func Opener(cfg transport.Config) transport.Opener {
	return func() (transport.Port, error) {
		return Open(cfg)
	}
}

// ReadNonBlocking implements the transport.Port interface. The number of
// bytes waiting in the input queue is checked before reading so that the
// read never blocks.
func (p *Port) ReadNonBlocking(b []byte) (int, error) {
	n, err := p.t.Available()
	if err != nil {
		return 0, curated.Errorf(transport.Fatal, err)
	}
	if n == 0 {
		return 0, nil
	}
	if n > len(b) {
		n = len(b)
	}

	n, err = p.t.Read(b[:n])
	if err != nil {
		return n, curated.Errorf(transport.Fatal, err)
	}
	return n, nil
}

// WriteBlocking implements the transport.Port interface.
func (p *Port) WriteBlocking(b []byte, timeout time.Duration) (int, error) {
	return transport.WriteWithin(p.t, b, timeout)
}

// Close implements the transport.Port interface. The terminal attributes are
// restored before closing.
func (p *Port) Close() error {
	logger.Logf(logger.Allow, "termios", "closing %s", p.name)
	if err := p.t.Restore(); err != nil {
		logger.Logf(logger.Allow, "termios", "could not restore attributes: %v", err)
	}
	if err := p.t.Close(); err != nil {
		return curated.Errorf(transport.Fatal, err)
	}
	return nil
}
