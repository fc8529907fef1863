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

// Translator converts events from an EventSource into Messages. The
// Translator owns the control mask and the gamepad registry.
type Translator struct {
	source   EventSource
	bindings *Bindings
	registry *Registry
	mask     Mask
}

// NewTranslator is the preferred method of initialisation for the Translator
// type. If bindings is nil the default bindings are used. The driver can be
// nil if the GUI does not support gamepads.
//
// Gamepads present at the time of the call are opened.
func NewTranslator(source EventSource, driver GamepadDriver, bindings *Bindings) *Translator {
	if bindings == nil {
		bindings = NewBindings()
	}
	tr := &Translator{
		source:   source,
		bindings: bindings,
		registry: NewRegistry(driver, MaxGamepads),
	}
	tr.registry.Rescan()
	return tr
}

// Registry returns the gamepad registry.
func (tr *Translator) Registry() *Registry {
	return tr.registry
}

// Mask returns the current control mask.
func (tr *Translator) Mask() Mask {
	return tr.mask
}

// Close all gamepads.
func (tr *Translator) Close() {
	tr.registry.Close()
}

// Sample polls at most one event from the event source and returns the
// resulting Message. If there is no pending event the current mask is
// returned as a Normal message. Sample never blocks.
func (tr *Translator) Sample() Message {
	switch ev := tr.source.PollEvent().(type) {
	case nil:
	case EventQuit:
		return SpecialMessage(Quit)
	case EventKeyboard:
		return tr.keyboard(ev)
	case EventGamepadButton:
		return tr.gamepadButton(ev)
	case EventGamepadHat:
		tr.mask = tr.mask.Direction(hatMask(ev.Hat))
	case EventDeviceChange:
		tr.registry.Rescan()
	}

	return NormalMessage(tr.mask)
}

func (tr *Translator) keyboard(ev EventKeyboard) Message {
	if ev.Repeat {
		return NormalMessage(tr.mask)
	}

	if ev.Down {
		if tr.bindings.Quit.Matches(ev) {
			return SpecialMessage(Quit)
		}
		if tr.bindings.Reset.Matches(ev) {
			return SpecialMessage(ResetDisplay)
		}
	}

	if m, ok := tr.bindings.Key(ev.Key); ok {
		if ev.Down {
			tr.mask = tr.mask.Press(m)
		} else {
			tr.mask = tr.mask.Release(m)
		}
	}

	return NormalMessage(tr.mask)
}

func (tr *Translator) gamepadButton(ev EventGamepadButton) Message {
	if ev.Button == tr.bindings.QuitButton && ev.Button != GamepadButtonNone {
		if ev.Down {
			return SpecialMessage(Quit)
		}
		return NormalMessage(tr.mask)
	}

	if m, ok := tr.bindings.Button(ev.Button); ok {
		if ev.Down {
			tr.mask = tr.mask.Press(m)
		} else {
			tr.mask = tr.mask.Release(m)
		}
	}

	return NormalMessage(tr.mask)
}
