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
	"fmt"
	"time"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/paths"
	"github.com/jetsetilly/m8link/prefs"
)

// Sentinel error patterns for preferences.
const (
	PrefsError      = "session: preferences: %v"
	NegativeDelay   = "session: delay cannot be negative (%d)"
	BadWriteTimeout = "session: write timeout must be positive (%d)"
)

// Preferences for the pacing of the control loop.
type Preferences struct {
	dsk *prefs.Disk

	// microseconds
	BusyDelay prefs.Int
	IdleDelay prefs.Int

	// milliseconds
	WriteTimeout prefs.Int
}

func (p *Preferences) String() string {
	cfg := p.Config()
	return fmt.Sprintf("busy %v, idle %v, write timeout %v", cfg.BusyDelay, cfg.IdleDelay, cfg.WriteTimeout)
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

	notNegative := func(v prefs.Value) error {
		if v.(int) < 0 {
			return curated.Errorf(NegativeDelay, v.(int))
		}
		return nil
	}

	_ = p.BusyDelay.Set(int(DefaultBusyDelay / time.Microsecond))
	p.BusyDelay.SetHookPre(notNegative)
	_ = p.IdleDelay.Set(int(DefaultIdleDelay / time.Microsecond))
	p.IdleDelay.SetHookPre(notNegative)
	_ = p.WriteTimeout.Set(int(DefaultWriteTimeout / time.Millisecond))
	p.WriteTimeout.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf(BadWriteTimeout, v.(int))
		}
		return nil
	})

	if err := p.dsk.Add("loop.busyDelay", &p.BusyDelay); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}
	if err := p.dsk.Add("loop.idleDelay", &p.IdleDelay); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}
	if err := p.dsk.Add("loop.writeTimeout", &p.WriteTimeout); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	return p, nil
}

// Config returns DefaultConfig() amended by the preference values.
func (p *Preferences) Config() Config {
	cfg := DefaultConfig()
	cfg.BusyDelay = time.Duration(p.BusyDelay.Get().(int)) * time.Microsecond
	cfg.IdleDelay = time.Duration(p.IdleDelay.Get().(int)) * time.Microsecond
	cfg.WriteTimeout = time.Duration(p.WriteTimeout.Get().(int)) * time.Millisecond
	return cfg
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
