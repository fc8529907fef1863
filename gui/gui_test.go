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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/m8link/gui"
	"github.com/jetsetilly/m8link/render"
	"github.com/jetsetilly/m8link/test"
	"github.com/jetsetilly/m8link/userinput"
)

func TestHeadless(t *testing.T) {
	var g gui.GUI = gui.NewHeadless()

	test.ExpectEquality(t, g.PollEvent(), userinput.Event(nil))
	test.ExpectEquality(t, g.Gamepads(), userinput.GamepadDriver(nil))

	g.Accept([]byte{0xff, 2, 3, 1, 4, 0})
	g.Present()
	g.Close()

	hl := g.(*gui.Headless)
	test.ExpectEquality(t, hl.Count(render.SystemInfo), 1)
	test.ExpectEquality(t, hl.Presents(), 1)
}
