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

// PollEvent implements the userinput.EventSource interface. SDL events that
// have no meaning for the application are skipped.
func (scr *Screen) PollEvent() userinput.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e := convert(ev); e != nil {
			return e
		}
	}
	return nil
}

// convert SDL event to a userinput event. returns nil if the event is not
// interesting.
func convert(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetScancodeName(ev.Keysym.Scancode),
			Mod:    keyMod(ev.Keysym.Mod),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}

	case *sdl.ControllerButtonEvent:
		button := gamepadButton(ev.Button)
		if button == userinput.GamepadButtonNone {
			return nil
		}
		return userinput.EventGamepadButton{
			ID:     int(ev.Which),
			Button: button,
			Down:   ev.State == sdl.PRESSED,
		}

	case *sdl.JoyHatEvent:
		return userinput.EventGamepadHat{
			ID:  int(ev.Which),
			Hat: hat(ev.Value),
		}

	case *sdl.ControllerDeviceEvent:
		switch ev.Type {
		case sdl.CONTROLLERDEVICEADDED:
			return userinput.EventDeviceChange{Added: true}
		case sdl.CONTROLLERDEVICEREMOVED:
			return userinput.EventDeviceChange{Added: false}
		}
	}

	return nil
}

func keyMod(mod uint16) userinput.KeyMod {
	var m userinput.KeyMod
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		m |= userinput.KeyModShift
	}
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		m |= userinput.KeyModAlt
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		m |= userinput.KeyModCtrl
	}
	return m
}

func gamepadButton(b uint8) userinput.GamepadButton {
	switch sdl.GameControllerButton(b) {
	case sdl.CONTROLLER_BUTTON_A:
		return userinput.GamepadButtonA
	case sdl.CONTROLLER_BUTTON_B:
		return userinput.GamepadButtonB
	case sdl.CONTROLLER_BUTTON_X:
		return userinput.GamepadButtonX
	case sdl.CONTROLLER_BUTTON_Y:
		return userinput.GamepadButtonY
	case sdl.CONTROLLER_BUTTON_BACK:
		return userinput.GamepadButtonBack
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return userinput.GamepadButtonGuide
	case sdl.CONTROLLER_BUTTON_START:
		return userinput.GamepadButtonStart
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return userinput.GamepadButtonBumperLeft
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return userinput.GamepadButtonBumperRight
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return userinput.GamepadButtonDPadUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return userinput.GamepadButtonDPadDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return userinput.GamepadButtonDPadLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return userinput.GamepadButtonDPadRight
	}
	return userinput.GamepadButtonNone
}

func hat(v uint8) userinput.Hat {
	var h userinput.Hat
	if v&sdl.HAT_UP == sdl.HAT_UP {
		h |= userinput.HatUp
	}
	if v&sdl.HAT_RIGHT == sdl.HAT_RIGHT {
		h |= userinput.HatRight
	}
	if v&sdl.HAT_DOWN == sdl.HAT_DOWN {
		h |= userinput.HatDown
	}
	if v&sdl.HAT_LEFT == sdl.HAT_LEFT {
		h |= userinput.HatLeft
	}
	return h
}
