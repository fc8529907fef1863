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

import "time"

// Default values for the Config type.
const (
	DefaultReadChunk     = 1024
	DefaultFrameCapacity = 1024
	DefaultBusyDelay     = 10 * time.Microsecond
	DefaultIdleDelay     = 100 * time.Microsecond
	DefaultWriteTimeout  = 5 * time.Millisecond
	DefaultSettleDelay   = 500 * time.Microsecond
)

// Config for a Session.
type Config struct {
	// maximum number of bytes read from the transport in one iteration
	ReadChunk int

	// maximum size of a frame from the device
	FrameCapacity int

	// sleep durations after a productive read and after an empty read
	BusyDelay time.Duration
	IdleDelay time.Duration

	// timeout for every write to the transport
	WriteTimeout time.Duration

	// delay between enabling and resetting the display
	SettleDelay time.Duration

	// the function used to sleep. if nil then time.Sleep() is used
	Sleep func(time.Duration)
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() Config {
	return Config{
		ReadChunk:     DefaultReadChunk,
		FrameCapacity: DefaultFrameCapacity,
		BusyDelay:     DefaultBusyDelay,
		IdleDelay:     DefaultIdleDelay,
		WriteTimeout:  DefaultWriteTimeout,
		SettleDelay:   DefaultSettleDelay,
		Sleep:         time.Sleep,
	}
}

// normalise replaces zero and negative values with the default.
func (cfg Config) normalise() Config {
	def := DefaultConfig()
	if cfg.ReadChunk <= 0 {
		cfg.ReadChunk = def.ReadChunk
	}
	if cfg.FrameCapacity <= 0 {
		cfg.FrameCapacity = def.FrameCapacity
	}
	if cfg.BusyDelay < 0 {
		cfg.BusyDelay = def.BusyDelay
	}
	if cfg.IdleDelay < 0 {
		cfg.IdleDelay = def.IdleDelay
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	if cfg.SettleDelay < 0 {
		cfg.SettleDelay = def.SettleDelay
	}
	if cfg.Sleep == nil {
		cfg.Sleep = def.Sleep
	}
	return cfg
}
