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

// Event represents all the different type of events that can occur in the GUI.
//
// Events are always sent by value. The set of types is closed and is handled
// exhaustively by Translator.Sample().
type Event interface{}

// EventQuit is sent when the window is closed or when the terminal requests
// that the program ends.
type EventQuit struct{}

// KeyMod is a bit field of modifier keys held when a key event occurs.
type KeyMod int

// List of valid KeyMod values. Values can be combined.
const (
	KeyModNone  KeyMod = 0
	KeyModShift KeyMod = 1 << iota
	KeyModAlt
	KeyModCtrl
)

// EventKeyboard is sent when a key is pressed or released. Key is the name of
// the key as used in key bindings. eg. "Up", "A", "Left Shift".
type EventKeyboard struct {
	Key    string
	Mod    KeyMod
	Down   bool
	Repeat bool
}

// GamepadButton identifies a gamepad button.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonA
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonBumperLeft
	GamepadButtonBumperRight
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
)

// EventGamepadButton is sent when a gamepad button is pressed or released.
type EventGamepadButton struct {
	ID     int
	Button GamepadButton
	Down   bool
}

// Hat is a bit field describing the position of a directional hat. A hat can
// be pushed in two directions at once, eg. HatUp|HatLeft.
type Hat uint8

// List of valid Hat bits. The values are the same as those used by SDL.
const (
	HatCentred Hat = 0x00
	HatUp      Hat = 0x01
	HatRight   Hat = 0x02
	HatDown    Hat = 0x04
	HatLeft    Hat = 0x08
)

// EventGamepadHat is sent whenever a directional hat changes position.
type EventGamepadHat struct {
	ID  int
	Hat Hat
}

// EventDeviceChange is sent when a gamepad is added or removed.
type EventDeviceChange struct {
	Added bool
}

// EventSource is implemented by GUIs that can supply events.
type EventSource interface {
	// PollEvent returns the next pending event or nil if there is no event
	// pending. It must never block.
	PollEvent() Event
}
