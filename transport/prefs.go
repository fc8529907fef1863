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

import (
	"fmt"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/paths"
	"github.com/jetsetilly/m8link/prefs"
)

// Backend names accepted by the serial.backend preference.
const (
	BackendSerial  = "serial"
	BackendTermios = "termios"
)

// Sentinel error patterns for preferences.
const (
	PrefsError     = "transport: preferences: %v"
	BadBaud        = "transport: baud rate must be positive (%d)"
	UnknownBackend = "transport: unknown backend %q"
)

// Preferences for the connection to the device.
type Preferences struct {
	dsk *prefs.Disk

	// empty string means the device is found automatically
	Device prefs.String
	Baud   prefs.Int

	// one of BackendSerial or BackendTermios
	Backend prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("%s via %s", p.Config(), p.Backend.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the default preferences
// file.
func NewPreferences() (*Preferences, error) {
	return newPreferences(paths.ResourcePath("", prefs.DefaultPrefsFile))
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	_ = p.Baud.Set(DefaultBaud)
	p.Baud.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(BadBaud, v.(int))
		}
		return nil
	})

	_ = p.Backend.Set(BackendSerial)
	p.Backend.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case BackendSerial, BackendTermios:
			return nil
		}
		return curated.Errorf(UnknownBackend, v.(string))
	})

	if err := p.dsk.Add("serial.device", &p.Device); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}
	if err := p.dsk.Add("serial.baud", &p.Baud); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}
	if err := p.dsk.Add("serial.backend", &p.Backend); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	return p, nil
}

// Config returns the connection settings as a Config value.
func (p *Preferences) Config() Config {
	return Config{
		Device: p.Device.Get().(string),
		Baud:   p.Baud.Get().(int),
	}
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
