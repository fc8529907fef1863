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

package slip

import "github.com/jetsetilly/m8link/curated"

// Reserved byte values of the framing protocol.
const (
	End    byte = 0xc0
	Esc    byte = 0xdb
	EscEnd byte = 0xdc
	EscEsc byte = 0xdd
)

// Sentinel error patterns returned by Decoder.Feed().
const (
	Overflow      = "slip: frame exceeds %d bytes"
	InvalidEscape = "slip: invalid escape sequence (%#02x)"
)

// DefaultCapacity is the frame capacity used by the session. It matches the
// largest single read from the transport.
const DefaultCapacity = 1024

type mode int

const (
	modeNormal mode = iota
	modeEscaped

	// an overflow has occurred and all bytes are dropped until the next End
	modeDiscard
)

// Decoder reconstructs frames from a stream of bytes.
type Decoder struct {
	buffer []byte
	length int
	mode   mode
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
// Capacity is the maximum length of a frame. A capacity of less than one is
// replaced with DefaultCapacity.
func NewDecoder(capacity int) *Decoder {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Decoder{
		buffer: make([]byte, capacity),
	}
}

// Capacity returns the maximum length of a frame.
func (dec *Decoder) Capacity() int {
	return len(dec.buffer)
}

// Pending returns the number of bytes in the partially decoded frame.
func (dec *Decoder) Pending() int {
	return dec.length
}

// Reset discards any partial frame.
func (dec *Decoder) Reset() {
	dec.length = 0
	dec.mode = modeNormal
}

// Feed the next byte in the stream to the decoder. There are three possible
// outcomes:
//
//	(nil, nil)   the byte was consumed and no frame is ready
//	(frame, nil) the byte completed a frame
//	(nil, err)   the partial frame was discarded. err will be one of the
//	             Overflow or InvalidEscape patterns
//
// A returned frame shares memory with the decoder and is only valid until
// the next call to Feed(). Callers that need to retain the frame must copy it.
func (dec *Decoder) Feed(b byte) ([]byte, error) {
	switch dec.mode {
	case modeDiscard:
		if b == End {
			dec.Reset()
		}
		return nil, nil

	case modeEscaped:
		switch b {
		case EscEnd:
			dec.mode = modeNormal
			return nil, dec.append(End)
		case EscEsc:
			dec.mode = modeNormal
			return nil, dec.append(Esc)
		}
		dec.Reset()
		return nil, curated.Errorf(InvalidEscape, b)
	}

	switch b {
	case End:
		if dec.length == 0 {
			return nil, nil
		}
		frame := dec.buffer[:dec.length]
		dec.Reset()
		return frame, nil
	case Esc:
		dec.mode = modeEscaped
		return nil, nil
	}

	return nil, dec.append(b)
}

func (dec *Decoder) append(b byte) error {
	if dec.length >= len(dec.buffer) {
		dec.length = 0
		dec.mode = modeDiscard
		return curated.Errorf(Overflow, len(dec.buffer))
	}
	dec.buffer[dec.length] = b
	dec.length++
	return nil
}
