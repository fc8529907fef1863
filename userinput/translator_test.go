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
	"testing"

	"github.com/jetsetilly/m8link/test"
	"github.com/jetsetilly/m8link/userinput"
)

func TestMaskAccumulation(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	src.push(keyDown("Left Shift"), keyDown("Space"), keyUp("Left Shift"), keyUp("Space"))

	msg := tr.Sample()
	test.ExpectEquality(t, msg, userinput.NormalMessage(userinput.KeySelect))

	// both controls held
	msg = tr.Sample()
	test.ExpectEquality(t, msg, userinput.NormalMessage(userinput.KeySelect|userinput.KeyStart))

	// releasing the first leaves only the second
	msg = tr.Sample()
	test.ExpectEquality(t, msg, userinput.NormalMessage(userinput.KeyStart))

	msg = tr.Sample()
	test.ExpectEquality(t, msg, userinput.NormalMessage(0))
}

func TestNoPendingEvent(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	src.push(keyDown("Up"))
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(userinput.KeyUp))

	// the current mask is reported unchanged when there are no events
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(userinput.KeyUp))
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(userinput.KeyUp))
	test.ExpectEquality(t, tr.Mask(), userinput.KeyUp)
}

func TestOneEventPerSample(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	src.push(keyDown("Up"), keyDown("Down"))
	test.ExpectEquality(t, tr.Sample().Mask(), userinput.KeyUp)
	test.ExpectEquality(t, len(src.queue), 1)
	test.ExpectEquality(t, tr.Sample().Mask(), userinput.KeyUp|userinput.KeyDown)
}

func TestDefaultKeys(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	check := func(key string, expected userinput.Mask) {
		t.Helper()
		src.push(keyDown(key))
		test.ExpectEquality(t, tr.Sample().Mask(), expected, key)
		src.push(keyUp(key))
		test.ExpectEquality(t, tr.Sample().Mask(), userinput.Mask(0), key)
	}

	check("Up", userinput.KeyUp)
	check("Down", userinput.KeyDown)
	check("Left", userinput.KeyLeft)
	check("Right", userinput.KeyRight)
	check("A", userinput.KeySelect)
	check("S", userinput.KeyStart)
	check("Z", userinput.KeyOption)
	check("X", userinput.KeyEdit)
	check("Left Alt", userinput.KeyOption)
	check("Left Ctrl", userinput.KeyEdit)
	check("Delete", userinput.KeyOption|userinput.KeyEdit)

	// key names are not case sensitive
	check("left shift", userinput.KeySelect)

	// unbound keys do nothing
	check("Q", 0)
}

func TestKeyRepeat(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	src.push(keyDown("Up"))
	tr.Sample()

	// a repeated key up would normally release the key but repeats are
	// ignored
	src.push(userinput.EventKeyboard{Key: "Up", Repeat: true})
	test.ExpectEquality(t, tr.Sample().Mask(), userinput.KeyUp)
}

func TestSpecialKeys(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	src.push(keyDown("Up"))
	tr.Sample()

	// alt+f4 quits. the mask is not changed
	src.push(userinput.EventKeyboard{Key: "F4", Mod: userinput.KeyModAlt, Down: true})
	msg := tr.Sample()
	test.ExpectEquality(t, msg, userinput.SpecialMessage(userinput.Quit))
	test.ExpectEquality(t, msg.Code(), userinput.Quit)
	test.ExpectEquality(t, tr.Mask(), userinput.KeyUp)

	// F4 without alt is not a quit
	src.push(keyDown("F4"))
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(userinput.KeyUp))

	// ctrl+r resets the display. special
	// and normal handling are mutually exclusive so the mask is unchanged
	tr2 := userinput.NewTranslator(src, nil, nil)
	src.push(userinput.EventKeyboard{Key: "R", Mod: userinput.KeyModCtrl, Down: true})
	test.ExpectEquality(t, tr2.Sample(), userinput.SpecialMessage(userinput.ResetDisplay))
	test.ExpectEquality(t, tr2.Mask(), userinput.Mask(0))

	// releasing the reset key is not special
	src.push(userinput.EventKeyboard{Key: "R", Mod: userinput.KeyModCtrl, Down: false})
	test.ExpectEquality(t, tr2.Sample(), userinput.NormalMessage(0))
}

func TestQuitEvent(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	src.push(keyDown("Up"), userinput.EventQuit{})
	tr.Sample()
	test.ExpectEquality(t, tr.Sample(), userinput.SpecialMessage(userinput.Quit))
	test.ExpectEquality(t, tr.Mask(), userinput.KeyUp)
}

func TestGamepadButtons(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	src.push(userinput.EventGamepadButton{Button: userinput.GamepadButtonA, Down: true})
	src.push(userinput.EventGamepadButton{Button: userinput.GamepadButtonDPadLeft, Down: true})
	src.push(userinput.EventGamepadButton{Button: userinput.GamepadButtonA, Down: false})
	src.push(userinput.EventGamepadButton{Button: userinput.GamepadButtonGuide, Down: true})
	src.push(userinput.EventGamepadButton{Button: userinput.GamepadButtonGuide, Down: false})

	test.ExpectEquality(t, tr.Sample().Mask(), userinput.KeyOption)
	test.ExpectEquality(t, tr.Sample().Mask(), userinput.KeyOption|userinput.KeyLeft)
	test.ExpectEquality(t, tr.Sample().Mask(), userinput.KeyLeft)
	test.ExpectEquality(t, tr.Sample(), userinput.SpecialMessage(userinput.Quit))
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(userinput.KeyLeft))
}

func TestHat(t *testing.T) {
	src := &events{}
	tr := userinput.NewTranslator(src, nil, nil)

	// hold option and edit. these bits are outside the directional region
	src.push(keyDown("Z"), keyDown("X"))
	tr.Sample()
	tr.Sample()
	actions := userinput.KeyOption | userinput.KeyEdit

	src.push(userinput.EventGamepadHat{Hat: userinput.HatUp | userinput.HatLeft})
	test.ExpectEquality(t, tr.Sample().Mask(), actions|userinput.KeyUp|userinput.KeyLeft)

	// a new hat position replaces the old one
	src.push(userinput.EventGamepadHat{Hat: userinput.HatDown})
	test.ExpectEquality(t, tr.Sample().Mask(), actions|userinput.KeyDown)

	src.push(userinput.EventGamepadHat{Hat: userinput.HatRight})
	test.ExpectEquality(t, tr.Sample().Mask(), actions|userinput.KeyRight)

	// centring the hat clears all directions but leaves the actions
	src.push(userinput.EventGamepadHat{Hat: userinput.HatCentred})
	test.ExpectEquality(t, tr.Sample().Mask(), actions)
}

func TestDirectionalRegion(t *testing.T) {
	test.ExpectEquality(t, uint8(userinput.DirectionalRegion), uint8(0b11100100))

	m := userinput.KeySelect | userinput.KeyStart | userinput.KeyUp
	test.ExpectEquality(t, m.Direction(userinput.KeyDown), userinput.KeySelect|userinput.KeyStart|userinput.KeyDown)

	// non-directional bits in the argument are ignored
	test.ExpectEquality(t, m.Direction(userinput.KeyEdit|userinput.KeyLeft), userinput.KeySelect|userinput.KeyStart|userinput.KeyLeft)
}

func TestMaskLayout(t *testing.T) {
	test.ExpectEquality(t, uint8(userinput.KeyLeft), uint8(0x80))
	test.ExpectEquality(t, uint8(userinput.KeyUp), uint8(0x40))
	test.ExpectEquality(t, uint8(userinput.KeyDown), uint8(0x20))
	test.ExpectEquality(t, uint8(userinput.KeySelect), uint8(0x10))
	test.ExpectEquality(t, uint8(userinput.KeyStart), uint8(0x08))
	test.ExpectEquality(t, uint8(userinput.KeyRight), uint8(0x04))
	test.ExpectEquality(t, uint8(userinput.KeyOption), uint8(0x02))
	test.ExpectEquality(t, uint8(userinput.KeyEdit), uint8(0x01))

	test.ExpectEquality(t, (userinput.KeyUp | userinput.KeyEdit).String(), "Up+Edit")
	test.ExpectEquality(t, userinput.Mask(0).String(), "none")
}

func TestHotPlug(t *testing.T) {
	src := &events{}
	drv := &driver{present: 1}
	tr := userinput.NewTranslator(src, drv, nil)
	test.ExpectEquality(t, tr.Registry().Len(), 1)

	drv.present = 3
	src.push(userinput.EventDeviceChange{Added: true})
	test.ExpectEquality(t, tr.Sample(), userinput.NormalMessage(0))
	test.ExpectEquality(t, tr.Registry().Len(), 3)
	test.ExpectEquality(t, drv.openCount(), 3)

	drv.present = 0
	src.push(userinput.EventDeviceChange{Added: false})
	tr.Sample()
	test.ExpectEquality(t, tr.Registry().Len(), 0)
	test.ExpectEquality(t, drv.openCount(), 0)

	tr.Close()
}
