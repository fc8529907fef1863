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

package userinput_test

import (
	"fmt"

	"github.com/jetsetilly/m8link/userinput"
)

// events is an implementation of userinput.EventSource. events are returned
// in order, one per call to PollEvent()
type events struct {
	queue []userinput.Event
}

func (e *events) push(ev ...userinput.Event) {
	e.queue = append(e.queue, ev...)
}

func (e *events) PollEvent() userinput.Event {
	if len(e.queue) == 0 {
		return nil
	}
	ev := e.queue[0]
	e.queue = e.queue[1:]
	return ev
}

type gamepad struct {
	name   string
	closed bool
}

func (g *gamepad) Name() string {
	return g.name
}

func (g *gamepad) Close() {
	g.closed = true
}

// driver is an implementation of userinput.GamepadDriver. the number of
// present devices can be changed at any time
type driver struct {
	present int

	// indexes of devices that are not gamepads
	notGamepad map[int]bool

	// every gamepad ever opened
	opened []*gamepad
}

func (d *driver) NumGamepads() int {
	return d.present
}

func (d *driver) OpenGamepad(index int) (userinput.Gamepad, error) {
	if index >= d.present {
		return nil, fmt.Errorf("no device at index %d", index)
	}
	if d.notGamepad[index] {
		return nil, nil
	}
	g := &gamepad{name: fmt.Sprintf("pad %d", index)}
	d.opened = append(d.opened, g)
	return g, nil
}

func (d *driver) openCount() int {
	n := 0
	for _, g := range d.opened {
		if !g.closed {
			n++
		}
	}
	return n
}

func keyDown(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: true}
}

func keyUp(key string) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: false}
}
