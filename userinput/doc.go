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

// Package userinput translates input from the keyboard and from gamepads into
// the eight bit control mask understood by the device.
//
// Events are created by the GUI implementation (see the gui/sdlscreen and
// gui/termscreen packages) and are collected by the Translator through the
// EventSource interface. The set of events is closed: EventQuit,
// EventKeyboard, EventGamepadButton, EventGamepadHat and EventDeviceChange.
// Each event produces exactly one Message.
//
// A Message is either Normal, carrying the current control mask, or Special,
// carrying a request for the session (quit or reset the display). Special
// events never change the control mask.
//
// The Translator always reports the current state of the controls. Deciding
// whether the state has changed since it was last sent to the device is the
// responsibility of the caller.
//
// Gamepads are tracked by the Registry. The Registry is rebuilt in its
// entirety whenever an EventDeviceChange is seen.
package userinput
