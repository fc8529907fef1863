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

// GUI defines the operations that can be performed on user interfaces. A GUI
// is both the source of user input and the renderer of frames from the
// device.
type GUI interface {
	userinput.EventSource
	render.Renderer

	// Gamepads returns the driver for any gamepads supported by the GUI. Nil
	// if the GUI does not support gamepads.
	Gamepads() userinput.GamepadDriver
}

// Sentinel error returned if the requested GUI does not exist.
const (
	UnsupportedGUI = "gui: unsupported gui: %v"
)
