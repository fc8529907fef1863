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

package userinput

import (
	"fmt"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/paths"
	"github.com/jetsetilly/m8link/prefs"
)

// PrefsError is the pattern for errors when loading or changing the key
// binding preferences.
const PrefsError = "userinput: preferences: %v"

// Preferences for the key bindings. Changing a preference value changes the
// Bindings instance immediately.
type Preferences struct {
	dsk      *prefs.Disk
	bindings *Bindings

	controls map[string]*prefs.String
	Quit     prefs.String
	Reset    prefs.String
}

func (p *Preferences) String() string {
	return p.bindings.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are loaded from the default preferences
// file.
func NewPreferences(bindings *Bindings) (*Preferences, error) {
	return newPreferences(bindings, paths.ResourcePath("", prefs.DefaultPrefsFile))
}

func newPreferences(bindings *Bindings, pth string) (*Preferences, error) {
	p := &Preferences{
		bindings: bindings,
		controls: make(map[string]*prefs.String),
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	for name := range controlNames {
		name := name
		v := &prefs.String{}

		// the current bindings are the default value
		_ = v.Set(bindings.ListFor(name))

		v.SetHookPost(func(value prefs.Value) error {
			return p.bindings.BindList(name, value.(string))
		})

		if err := p.dsk.Add(fmt.Sprintf("keys.%s", name), v); err != nil {
			return nil, curated.Errorf(PrefsError, err)
		}
		p.controls[name] = v
	}

	_ = p.Quit.Set(bindings.Quit.String())
	p.Quit.SetHookPost(func(value prefs.Value) error {
		sc, err := ParseShortcut(value.(string))
		if err != nil {
			return err
		}
		p.bindings.Quit = sc
		return nil
	})
	if err := p.dsk.Add("keys.quit", &p.Quit); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	_ = p.Reset.Set(bindings.Reset.String())
	p.Reset.SetHookPost(func(value prefs.Value) error {
		sc, err := ParseShortcut(value.(string))
		if err != nil {
			return err
		}
		p.bindings.Reset = sc
		return nil
	})
	if err := p.dsk.Add("keys.reset", &p.Reset); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, curated.Errorf(PrefsError, err)
	}

	return p, nil
}

// Control returns the preference value for a named control. Nil if the
// control does not exist.
func (p *Preferences) Control(name string) *prefs.String {
	return p.controls[name]
}

// Save current key bindings to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
