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
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/prefs"
	"github.com/jetsetilly/m8link/test"
)

func TestParseShortcut(t *testing.T) {
	sc, err := ParseShortcut("Ctrl+R")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sc, Shortcut{Key: "R", Mod: KeyModCtrl})
	test.ExpectEquality(t, sc.String(), "Ctrl+R")

	sc, err = ParseShortcut("shift+alt+F4")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sc, Shortcut{Key: "F4", Mod: KeyModShift | KeyModAlt})
	test.ExpectEquality(t, sc.String(), "Shift+Alt+F4")

	sc, err = ParseShortcut("Escape")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sc, Shortcut{Key: "Escape"})

	_, err = ParseShortcut("Ctrl+")
	test.ExpectSuccess(t, curated.Is(err, InvalidShortcut))
	_, err = ParseShortcut("Meta+X")
	test.ExpectSuccess(t, curated.Is(err, InvalidShortcut))
}

func TestShortcutMatches(t *testing.T) {
	sc := Shortcut{Key: "R", Mod: KeyModCtrl}
	test.ExpectSuccess(t, sc.Matches(EventKeyboard{Key: "r", Mod: KeyModCtrl}))
	test.ExpectSuccess(t, sc.Matches(EventKeyboard{Key: "R", Mod: KeyModCtrl | KeyModShift}))
	test.ExpectFailure(t, sc.Matches(EventKeyboard{Key: "R"}))
	test.ExpectFailure(t, Shortcut{}.Matches(EventKeyboard{Key: ""}))
}

func TestBindList(t *testing.T) {
	b := NewBindings()
	test.ExpectEquality(t, b.ListFor("select"), "a,left shift")

	test.ExpectSuccess(t, b.BindList("select", "Q, W"))
	test.ExpectEquality(t, b.ListFor("select"), "q,w")

	_, ok := b.Key("A")
	test.ExpectFailure(t, ok)
	m, ok := b.Key("W")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, KeySelect)

	// the combined binding is independent of the single bindings
	test.ExpectEquality(t, b.ListFor("optionEdit"), "delete")

	err := b.BindList("jump", "J")
	test.ExpectSuccess(t, curated.Is(err, UnknownControl))
}

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	data := prefs.WarningBoilerPlate + "\nkeys.up :: W\nkeys.reset :: Alt+R\nserial.baud :: 9600\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	b := NewBindings()
	p, err := newPreferences(b, fn)
	test.DemandSuccess(t, err)

	m, ok := b.Key("W")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, KeyUp)
	_, ok = b.Key("Up")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, b.Reset, Shortcut{Key: "R", Mod: KeyModAlt})

	// changing a preference changes the bindings immediately
	test.ExpectSuccess(t, p.Control("down").Set("S"))
	m, ok = b.Key("S")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, m, KeyDown)

	// unparsable shortcut is rejected
	test.ExpectSuccess(t, curated.Is(p.Quit.Set("Meta+Q"), InvalidShortcut))

	// saving keeps entries from other packages
	test.DemandSuccess(t, p.Save())
	saved, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(saved) > len(data))
	test.ExpectSuccess(t, containsLine(string(saved), "serial.baud :: 9600"))
	test.ExpectSuccess(t, containsLine(string(saved), "keys.up :: W"))
}

func TestPreferencesInvalid(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	data := prefs.WarningBoilerPlate + "\nkeys.quit :: Meta+Q\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	_, err := newPreferences(NewBindings(), fn)
	test.ExpectSuccess(t, curated.Is(err, PrefsError))
}

func containsLine(s string, line string) bool {
	for _, l := range splitLines(s) {
		if l == line {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range s {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}
