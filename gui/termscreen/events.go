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

package termscreen

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/m8link/userinput"
)

// PollEvent implements the userinput.EventSource interface.
func (scr *Screen) PollEvent() userinput.Event {
	if ev := scr.expired(); ev != nil {
		return ev
	}

	select {
	case ev, ok := <-scr.events:
		if !ok {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return scr.key(ev)
		case *tcell.EventResize:
			scr.screen.Sync()
			scr.dirty = true
		}
	default:
	}

	return nil
}

// expired returns a release event for the first held key that has passed
// its release time.
func (scr *Screen) expired() userinput.Event {
	now := scr.now()
	for i, h := range scr.held {
		if now.After(h.release) {
			scr.held = append(scr.held[:i], scr.held[i+1:]...)
			return userinput.EventKeyboard{Key: h.key}
		}
	}
	return nil
}

func (scr *Screen) key(ev *tcell.EventKey) userinput.Event {
	if isQuit(ev) {
		return userinput.EventQuit{}
	}

	name, mod := keyName(ev)
	if name == "" {
		return nil
	}

	scr.lastKey = ev.Name()
	scr.dirty = true

	release := scr.now().Add(scr.hold)

	// a key that is already held is being repeated by the terminal
	for i := range scr.held {
		if scr.held[i].key == name {
			scr.held[i].release = release
			return userinput.EventKeyboard{Key: name, Mod: mod, Down: true, Repeat: true}
		}
	}

	scr.held = append(scr.held, held{key: name, release: release})
	return userinput.EventKeyboard{Key: name, Mod: mod, Down: true}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC, tcell.KeyETX:
		return true
	}
	return ev.Modifiers()&tcell.ModCtrl == tcell.ModCtrl && unicode.ToLower(ev.Rune()) == 'c'
}

// keyName converts the tcell key into a key name that can be used with
// userinput.Bindings. the names match the names used by the SDL GUI where
// possible.
func keyName(ev *tcell.EventKey) (string, userinput.KeyMod) {
	mod := keyMod(ev.Modifiers())

	// control keys are reported with the rune of the letter
	if mod&userinput.KeyModCtrl == userinput.KeyModCtrl && unicode.IsLetter(ev.Rune()) {
		return strings.ToUpper(string(ev.Rune())), mod
	}

	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "Space", mod
		}
		return strings.ToUpper(string(ev.Rune())), mod
	case tcell.KeyEnter:
		return "Return", mod
	}

	if n, ok := tcell.KeyNames[ev.Key()]; ok {
		return n, mod
	}

	return "", mod
}

func keyMod(m tcell.ModMask) userinput.KeyMod {
	var mod userinput.KeyMod
	if m&tcell.ModShift == tcell.ModShift {
		mod |= userinput.KeyModShift
	}
	if m&tcell.ModAlt == tcell.ModAlt {
		mod |= userinput.KeyModAlt
	}
	if m&tcell.ModCtrl == tcell.ModCtrl {
		mod |= userinput.KeyModCtrl
	}
	return mod
}
