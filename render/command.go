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

package render

import (
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/m8link/curated"
)

// Dimensions of the device display.
const (
	Width  = 320
	Height = 240
)

// Renderer consumes frames from the device.
type Renderer interface {
	// Accept a single complete frame. The frame must not be retained after
	// the function returns.
	Accept(frame []byte)

	// Present is called when the link is idle. Any pending drawing should
	// be made visible.
	Present()

	Close()
}

// Command is the first byte of a frame and identifies what the frame does.
type Command uint8

// List of valid Command values.
const (
	DrawWaveform  Command = 0xfc
	DrawCharacter Command = 0xfd
	DrawRectangle Command = 0xfe
	SystemInfo    Command = 0xff
)

func (c Command) String() string {
	switch c {
	case DrawWaveform:
		return "waveform"
	case DrawCharacter:
		return "character"
	case DrawRectangle:
		return "rectangle"
	case SystemInfo:
		return "system info"
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(c))
}

// BadCommand is the pattern for frames that are the wrong size for the
// command.
const BadCommand = "render: bad %s command (%d bytes)"

// Colour is an RGB value.
type Colour struct {
	R, G, B uint8
}

func colour(b []byte) Colour {
	return Colour{R: b[0], G: b[1], B: b[2]}
}

// Rectangle is a filled rectangle.
type Rectangle struct {
	X, Y, W, H int
	Colour     Colour
}

// ParseRectangle decodes a DrawRectangle frame.
func ParseRectangle(frame []byte) (Rectangle, error) {
	if len(frame) != 12 || Command(frame[0]) != DrawRectangle {
		return Rectangle{}, curated.Errorf(BadCommand, DrawRectangle, len(frame))
	}
	return Rectangle{
		X:      int(binary.LittleEndian.Uint16(frame[1:])),
		Y:      int(binary.LittleEndian.Uint16(frame[3:])),
		W:      int(binary.LittleEndian.Uint16(frame[5:])),
		H:      int(binary.LittleEndian.Uint16(frame[7:])),
		Colour: colour(frame[9:]),
	}, nil
}

// Character is a single character cell.
type Character struct {
	C          byte
	X, Y       int
	Foreground Colour
	Background Colour
}

// ParseCharacter decodes a DrawCharacter frame.
func ParseCharacter(frame []byte) (Character, error) {
	if len(frame) != 12 || Command(frame[0]) != DrawCharacter {
		return Character{}, curated.Errorf(BadCommand, DrawCharacter, len(frame))
	}
	return Character{
		C:          frame[1],
		X:          int(binary.LittleEndian.Uint16(frame[2:])),
		Y:          int(binary.LittleEndian.Uint16(frame[4:])),
		Foreground: colour(frame[6:]),
		Background: colour(frame[9:]),
	}, nil
}

// Waveform is a line of oscilloscope samples. An empty waveform means the
// oscilloscope should be cleared.
type Waveform struct {
	Colour  Colour
	Samples []byte
}

// ParseWaveform decodes a DrawWaveform frame. The Samples field refers to
// the frame and is only valid for as long as the frame is.
func ParseWaveform(frame []byte) (Waveform, error) {
	if len(frame) < 4 || len(frame) > 4+Width || Command(frame[0]) != DrawWaveform {
		return Waveform{}, curated.Errorf(BadCommand, DrawWaveform, len(frame))
	}
	return Waveform{
		Colour:  colour(frame[1:]),
		Samples: frame[4:],
	}, nil
}

// Info about the connected device.
type Info struct {
	Hardware uint8
	Major    uint8
	Minor    uint8
	Patch    uint8
	FontMode uint8
}

func (inf Info) String() string {
	return fmt.Sprintf("hardware %d, firmware %d.%d.%d", inf.Hardware, inf.Major, inf.Minor, inf.Patch)
}

// ParseSystemInfo decodes a SystemInfo frame.
func ParseSystemInfo(frame []byte) (Info, error) {
	if len(frame) != 6 || Command(frame[0]) != SystemInfo {
		return Info{}, curated.Errorf(BadCommand, SystemInfo, len(frame))
	}
	return Info{
		Hardware: frame[1],
		Major:    frame[2],
		Minor:    frame[3],
		Patch:    frame[4],
		FontMode: frame[5],
	}, nil
}
