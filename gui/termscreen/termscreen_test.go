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
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/m8link/test"
	"github.com/jetsetilly/m8link/userinput"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// keys returns a Screen with no terminal. tcell events are pushed directly
// into the events channel.
func keys() (*Screen, *clock) {
	c := &clock{t: time.Unix(0, 0)}
	scr := &Screen{
		events: make(chan tcell.Event, 16),
		now:    c.now,
		hold:   100 * time.Millisecond,
	}
	return scr, c
}

func TestTap(t *testing.T) {
	scr, c := keys()

	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(nil))

	scr.events <- tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Up", Down: true}))

	// the key is held until the hold duration has passed
	c.advance(50 * time.Millisecond)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(nil))

	c.advance(51 * time.Millisecond)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Up"}))
	test.ExpectEquality(t, len(scr.held), 0)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(nil))
}

func TestRepeat(t *testing.T) {
	scr, c := keys()

	scr.events <- tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Z", Down: true}))

	// the terminal repeating the key extends the hold
	c.advance(80 * time.Millisecond)
	scr.events <- tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Z", Down: true, Repeat: true}))

	c.advance(80 * time.Millisecond)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(nil))

	c.advance(21 * time.Millisecond)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Z"}))
}

func TestSeveralKeys(t *testing.T) {
	scr, c := keys()

	scr.events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	scr.PollEvent()
	c.advance(50 * time.Millisecond)
	scr.events <- tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Delete", Down: true}))

	// keys are released in the order they expire
	c.advance(51 * time.Millisecond)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Space"}))
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(nil))
	c.advance(50 * time.Millisecond)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "Delete"}))
}

func TestQuit(t *testing.T) {
	scr, _ := keys()

	scr.events <- tcell.NewEventKey(tcell.KeyEsc, 0, tcell.ModNone)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventQuit{}))

	scr.events <- tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModCtrl)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventQuit{}))

	// ctrl+c as a raw control character
	scr.events <- tcell.NewEventKey(tcell.KeyRune, 0x03, tcell.ModNone)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventQuit{}))
}

func TestControlKeys(t *testing.T) {
	scr, _ := keys()

	scr.events <- tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModCtrl)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "R", Mod: userinput.KeyModCtrl, Down: true}))

	scr.events <- tcell.NewEventKey(tcell.KeyRune, 0x12, tcell.ModNone)
	test.ExpectEquality(t, scr.PollEvent(), userinput.Event(userinput.EventKeyboard{Key: "R", Mod: userinput.KeyModCtrl, Down: true, Repeat: true}))
}

func TestTranslated(t *testing.T) {
	scr, c := keys()
	tr := userinput.NewTranslator(scr, scr.Gamepads(), nil)

	scr.events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(userinput.KeyLeft))

	scr.events <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(userinput.KeyLeft|userinput.KeyEdit))

	c.advance(time.Second)
	tr.Sample()
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(0))

	scr.events <- tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModCtrl)
	test.ExpectEquality(t, tr.Sample(), userinput.SpecialMessage(userinput.ResetDisplay))
}

func TestStatus(t *testing.T) {
	sim := tcell.NewSimulationScreen("")
	scr, err := newScreen(sim)
	test.DemandSuccess(t, err)
	defer scr.Close()

	c := &clock{t: time.Unix(0, 0)}
	scr.now = c.now
	scr.lastDraw = c.t

	scr.Accept([]byte{0xff, 2, 3, 1, 4, 0})
	c.advance(time.Second)
	scr.Present()

	cells, w, _ := sim.GetContents()
	row := strings.Builder{}
	for _, cell := range cells[w : w*2] {
		for _, r := range cell.Runes {
			row.WriteRune(r)
		}
	}
	test.ExpectSuccess(t, strings.HasPrefix(row.String(), "device: hardware 2, firmware 3.1.4"))
}
