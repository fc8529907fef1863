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

import "fmt"

// MessageKind distinguishes the two types of Message.
type MessageKind int

// List of valid MessageKind values.
const (
	Normal MessageKind = iota
	Special
)

// SpecialCode is the value of a Special message.
type SpecialCode uint8

// List of valid SpecialCode values.
const (
	Quit SpecialCode = iota + 1
	ResetDisplay
)

func (c SpecialCode) String() string {
	switch c {
	case Quit:
		return "quit"
	case ResetDisplay:
		return "reset display"
	}
	return fmt.Sprintf("special %d", c)
}

// Message is the result of sampling the user input. Message values are
// comparable; two messages with the same kind and value are the same message.
type Message struct {
	Kind  MessageKind
	Value uint8
}

// NormalMessage creates a Normal Message for a mask.
func NormalMessage(m Mask) Message {
	return Message{Kind: Normal, Value: uint8(m)}
}

// SpecialMessage creates a Special Message for a code.
func SpecialMessage(c SpecialCode) Message {
	return Message{Kind: Special, Value: uint8(c)}
}

// Mask returns the control mask of a Normal message. Zero for a Special
// message.
func (msg Message) Mask() Mask {
	if msg.Kind != Normal {
		return 0
	}
	return Mask(msg.Value)
}

// Code returns the code of a Special message. Zero for a Normal message.
func (msg Message) Code() SpecialCode {
	if msg.Kind != Special {
		return 0
	}
	return SpecialCode(msg.Value)
}

func (msg Message) String() string {
	if msg.Kind == Special {
		return msg.Code().String()
	}
	return fmt.Sprintf("%08b (%s)", msg.Value, msg.Mask())
}
