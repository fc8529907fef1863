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

package sdlscreen

import (
	"github.com/jetsetilly/m8link/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// gamepads is an implementation of the userinput.GamepadDriver interface.
// Only devices that SDL recognises as game controllers are opened.
type gamepads struct{}

func (gamepads) NumGamepads() int {
	return sdl.NumJoysticks()
}

func (gamepads) OpenGamepad(index int) (userinput.Gamepad, error) {
	if !sdl.IsGameController(index) {
		return nil, nil
	}
	pad := sdl.GameControllerOpen(index)
	if pad == nil {
		return nil, sdl.GetError()
	}
	return gamepad{pad: pad}, nil
}

type gamepad struct {
	pad *sdl.GameController
}

func (g gamepad) Name() string {
	return g.pad.Name()
}

func (g gamepad) Close() {
	g.pad.Close()
}
