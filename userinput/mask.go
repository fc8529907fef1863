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

import "strings"

// Mask is the state of the eight controls on the device. One bit per control.
// The bit layout is fixed by the wire protocol.
type Mask uint8

// List of control bits.
const (
	KeyEdit Mask = 1 << iota
	KeyOption
	KeyRight
	KeyStart
	KeySelect
	KeyDown
	KeyUp
	KeyLeft
)

// DirectionalRegion is the part of the mask that is controlled by a
// directional hat. Bits 7, 6, 5 and 2.
const DirectionalRegion = KeyLeft | KeyUp | KeyDown | KeyRight

// Press returns the mask with the bits in controls set.
func (m Mask) Press(controls Mask) Mask {
	return m | controls
}

// Release returns the mask with the bits in controls cleared.
func (m Mask) Release(controls Mask) Mask {
	return m &^ controls
}

// Direction replaces the directional region of the mask with the directional
// bits in d. Bits outside of the directional region are unchanged.
func (m Mask) Direction(d Mask) Mask {
	return m&^DirectionalRegion | d&DirectionalRegion
}

// the order in which controls are listed by String()
var maskNames = []struct {
	bit  Mask
	name string
}{
	{KeyLeft, "Left"},
	{KeyUp, "Up"},
	{KeyDown, "Down"},
	{KeySelect, "Select"},
	{KeyStart, "Start"},
	{KeyRight, "Right"},
	{KeyOption, "Option"},
	{KeyEdit, "Edit"},
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	s := make([]string, 0, len(maskNames))
	for _, n := range maskNames {
		if m&n.bit == n.bit {
			s = append(s, n.name)
		}
	}
	return strings.Join(s, "+")
}

// hatMask converts a hat position to the directional region of the mask.
func hatMask(h Hat) Mask {
	var m Mask
	if h&HatUp == HatUp {
		m |= KeyUp
	}
	if h&HatDown == HatDown {
		m |= KeyDown
	}
	if h&HatLeft == HatLeft {
		m |= KeyLeft
	}
	if h&HatRight == HatRight {
		m |= KeyRight
	}
	return m
}
