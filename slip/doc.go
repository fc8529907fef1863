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

// Package slip implements the escape based framing used on the serial link
// with the device. The framing is equivalent to SLIP (RFC 1055) byte
// stuffing. A reserved End byte terminates a frame and a reserved Esc byte
// introduces a two byte escape sequence:
//
//	Esc EscEnd -> End
//	Esc EscEsc -> Esc
//
// The Decoder consumes one byte at a time with Feed() and never allocates
// beyond the fixed capacity given to NewDecoder(). Repeated End bytes are
// frame separators and never produce an empty frame.
//
// Decoding errors are curated errors with one of two patterns, Overflow and
// InvalidEscape. In both cases the partial frame is discarded and the Decoder
// resets itself, so the caller only needs to log the error and continue
// feeding bytes.
//
// Encode() performs the reverse transformation and is used when writing
// capture files.
package slip
