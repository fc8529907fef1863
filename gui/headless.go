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

package gui

import (
	"github.com/jetsetilly/m8link/render"
	"github.com/jetsetilly/m8link/userinput"
)

// Headless is a GUI with no display and no input. Frames are counted by the
// embedded render.Headless type.
type Headless struct {
	*render.Headless
}

// NewHeadless is the preferred method of initialisation for the Headless
// type.
func NewHeadless() *Headless {
	return &Headless{
		Headless: render.NewHeadless(),
	}
}

// PollEvent implements the userinput.EventSource interface. There is never
// any input.
func (hl *Headless) PollEvent() userinput.Event {
	return nil
}

// Gamepads implements the GUI interface.
func (hl *Headless) Gamepads() userinput.GamepadDriver {
	return nil
}
