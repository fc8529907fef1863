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

package capture

import (
	"bytes"
	"errors"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/transport"
	"github.com/klauspost/compress/zstd"
)

// Playback is an implementation of the transport.Port interface. Reads
// return the bytes of a capture. Writes are discarded.
type Playback struct {
	dec    *zstd.Decoder
	closer io.Closer

	// the number of bytes returned by Read is limited by the chunk size
	chunk int

	writes int
}

// Open a capture file for playback.
func Open(filename string) (*Playback, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(transport.Fatal, curated.Errorf(Error, err))
	}

	pb, err := NewPlayback(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	pb.closer = f

	logger.Logf(logger.Allow, "capture", "playing back %s", filename)

	return pb, nil
}

// Opener returns a transport.Opener for the capture file.
func Opener(filename string) transport.Opener {
	return func() (transport.Port, error) {
		return Open(filename)
	}
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(r io.Reader) (*Playback, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, curated.Errorf(transport.Fatal, curated.Errorf(Error, err))
	}

	m := make([]byte, len(magic))
	if _, err := io.ReadFull(dec, m); err != nil || !bytes.Equal(m, []byte(magic)) {
		dec.Close()
		return nil, curated.Errorf(transport.Fatal, curated.Errorf(NotACapture))
	}

	return &Playback{
		dec:   dec,
		chunk: 64,
	}, nil
}

// SetChunk sets the maximum number of bytes returned by each call to
// ReadNonBlocking(). Smaller values more closely resemble a real device.
func (pb *Playback) SetChunk(chunk int) {
	if chunk > 0 {
		pb.chunk = chunk
	}
}

// ReadNonBlocking implements the transport.Port interface. Once the capture
// is exhausted every call returns an error with the EndOfCapture pattern.
func (pb *Playback) ReadNonBlocking(p []byte) (int, error) {
	if len(p) > pb.chunk {
		p = p[:pb.chunk]
	}

	n, err := pb.dec.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if n > 0 {
				return n, nil
			}
			return 0, curated.Errorf(transport.Fatal, curated.Errorf(EndOfCapture))
		}
		return n, curated.Errorf(transport.Fatal, curated.Errorf(Error, err))
	}
	return n, nil
}

// WriteBlocking implements the transport.Port interface. The data is
// discarded.
func (pb *Playback) WriteBlocking(p []byte, _ time.Duration) (int, error) {
	pb.writes++
	return len(p), nil
}

// Writes returns the number of calls to WriteBlocking().
func (pb *Playback) Writes() int {
	return pb.writes
}

// Close implements the transport.Port interface.
func (pb *Playback) Close() error {
	pb.dec.Close()
	if pb.closer != nil {
		if err := pb.closer.Close(); err != nil {
			return curated.Errorf(transport.Fatal, err)
		}
	}
	return nil
}
