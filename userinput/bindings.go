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
	"sort"
	"strings"

	"github.com/jetsetilly/m8link/curated"
)

// Sentinel error patterns.
const (
	InvalidShortcut = "userinput: invalid shortcut %q"
	UnknownControl  = "userinput: unknown control %q"
)

// Shortcut is a key pressed in combination with zero or more modifier keys.
// Shortcuts are used for the reserved quit and reset bindings.
type Shortcut struct {
	Key string
	Mod KeyMod
}

// ParseShortcut converts strings of the form "Ctrl+R" or "Alt+F4" into a
// Shortcut. The modifier names are Shift, Alt and Ctrl.
func ParseShortcut(s string) (Shortcut, error) {
	var sc Shortcut

	parts := strings.Split(s, "+")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if i == len(parts)-1 {
			if p == "" {
				return Shortcut{}, curated.Errorf(InvalidShortcut, s)
			}
			sc.Key = p
			break
		}
		switch strings.ToLower(p) {
		case "shift":
			sc.Mod |= KeyModShift
		case "alt":
			sc.Mod |= KeyModAlt
		case "ctrl":
			sc.Mod |= KeyModCtrl
		default:
			return Shortcut{}, curated.Errorf(InvalidShortcut, s)
		}
	}

	return sc, nil
}

func (sc Shortcut) String() string {
	s := strings.Builder{}
	if sc.Mod&KeyModShift == KeyModShift {
		s.WriteString("Shift+")
	}
	if sc.Mod&KeyModAlt == KeyModAlt {
		s.WriteString("Alt+")
	}
	if sc.Mod&KeyModCtrl == KeyModCtrl {
		s.WriteString("Ctrl+")
	}
	s.WriteString(sc.Key)
	return s.String()
}

// Matches returns true if the keyboard event is for the shortcut. Additional
// modifier keys held at the same time do not prevent a match.
func (sc Shortcut) Matches(ev EventKeyboard) bool {
	if sc.Key == "" {
		return false
	}
	return strings.EqualFold(sc.Key, ev.Key) && ev.Mod&sc.Mod == sc.Mod
}

// Bindings map keys and gamepad buttons to controls. The zero value has no
// bindings at all. NewBindings() returns the default bindings.
type Bindings struct {
	keys    map[string]Mask
	buttons map[GamepadButton]Mask

	// reserved bindings. these produce Special messages
	Quit       Shortcut
	Reset      Shortcut
	QuitButton GamepadButton
}

// NewBindings is the preferred method of initialisation for the Bindings
// type. The default bindings are set.
func NewBindings() *Bindings {
	b := &Bindings{
		keys:    make(map[string]Mask),
		buttons: make(map[GamepadButton]Mask),
	}

	b.Bind(KeyUp, "Up")
	b.Bind(KeyDown, "Down")
	b.Bind(KeyLeft, "Left")
	b.Bind(KeyRight, "Right")
	b.Bind(KeySelect, "Left Shift", "A")
	b.Bind(KeyStart, "Space", "S")
	b.Bind(KeyOption, "Left Alt", "Z")
	b.Bind(KeyEdit, "Left Ctrl", "X")
	b.Bind(KeyOption|KeyEdit, "Delete")

	b.buttons[GamepadButtonDPadUp] = KeyUp
	b.buttons[GamepadButtonDPadDown] = KeyDown
	b.buttons[GamepadButtonDPadLeft] = KeyLeft
	b.buttons[GamepadButtonDPadRight] = KeyRight
	b.buttons[GamepadButtonBack] = KeySelect
	b.buttons[GamepadButtonStart] = KeyStart
	b.buttons[GamepadButtonA] = KeyOption
	b.buttons[GamepadButtonB] = KeyEdit

	b.Quit = Shortcut{Key: "F4", Mod: KeyModAlt}
	b.Reset = Shortcut{Key: "R", Mod: KeyModCtrl}
	b.QuitButton = GamepadButtonGuide

	return b
}

// Bind the keys to the controls. Any keys previously bound to exactly these
// controls are unbound first. Key names are case insensitive.
func (b *Bindings) Bind(controls Mask, keys ...string) {
	if b.keys == nil {
		b.keys = make(map[string]Mask)
	}
	for k, m := range b.keys {
		if m == controls {
			delete(b.keys, k)
		}
	}
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			b.keys[k] = controls
		}
	}
}

// Keys returns the sorted list of keys bound to exactly the controls.
func (b *Bindings) Keys(controls Mask) []string {
	var keys []string
	for k, m := range b.keys {
		if m == controls {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Key returns the controls bound to the named key.
func (b *Bindings) Key(key string) (Mask, bool) {
	m, ok := b.keys[strings.ToLower(key)]
	return m, ok
}

// Button returns the controls bound to the gamepad button.
func (b *Bindings) Button(button GamepadButton) (Mask, bool) {
	m, ok := b.buttons[button]
	return m, ok
}

// controlNames maps the names used in preference keys to controls.
var controlNames = map[string]Mask{
	"left":       KeyLeft,
	"up":         KeyUp,
	"down":       KeyDown,
	"right":      KeyRight,
	"select":     KeySelect,
	"start":      KeyStart,
	"option":     KeyOption,
	"edit":       KeyEdit,
	"optionEdit": KeyOption | KeyEdit,
}

// BindList binds a comma separated list of keys to the named control. The
// control name is one of: left, up, down, right, select, start, option, edit
// or optionEdit.
func (b *Bindings) BindList(control string, list string) error {
	m, ok := controlNames[control]
	if !ok {
		return curated.Errorf(UnknownControl, control)
	}
	b.Bind(m, strings.Split(list, ",")...)
	return nil
}

// ListFor returns the comma separated list of keys bound to the named
// control. The reverse of BindList().
func (b *Bindings) ListFor(control string) string {
	m, ok := controlNames[control]
	if !ok {
		return ""
	}
	return strings.Join(b.Keys(m), ",")
}

func (b *Bindings) String() string {
	s := strings.Builder{}
	names := make([]string, 0, len(controlNames))
	for n := range controlNames {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		s.WriteString(fmt.Sprintf("%s: %s\n", n, b.ListFor(n)))
	}
	s.WriteString(fmt.Sprintf("quit: %s\n", b.Quit))
	s.WriteString(fmt.Sprintf("reset: %s\n", b.Reset))
	return s.String()
}
