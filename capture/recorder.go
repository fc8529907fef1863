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
	"io"
	"os"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/render"
	"github.com/jetsetilly/m8link/slip"
	"github.com/klauspost/compress/zstd"
)

// magic is the first thing in every capture.
const magic = "m8link capture\x00\x01"

// Sentinel error patterns.
const (
	Error        = "capture: %v"
	NotACapture  = "capture: not a capture file"
	EndOfCapture = "capture: end of capture"
)

// Recorder is an implementation of the render.Renderer interface.
type Recorder struct {
	next render.Renderer

	w   io.Writer
	enc *zstd.Encoder
	buf []byte

	frames int

	// the first error encountered while writing. once an error has occurred
	// no more frames are recorded
	err error
}

// Create a new capture file and return a Recorder that writes to it. Frames
// are forwarded to the next Renderer, which can be nil.
func Create(filename string, next render.Renderer) (*Recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	rec, err := NewRecorder(f, next)
	if err != nil {
		f.Close()
		return nil, err
	}

	logger.Logf(logger.Allow, "capture", "recording to %s", filename)

	return rec, nil
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. If w is also an io.Closer it will be closed when the Recorder is
// closed.
func NewRecorder(w io.Writer, next render.Renderer) (*Recorder, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	if _, err := enc.Write([]byte(magic)); err != nil {
		enc.Close()
		return nil, curated.Errorf(Error, err)
	}

	return &Recorder{
		next: next,
		w:    w,
		enc:  enc,
		buf:  make([]byte, 0, slip.DefaultCapacity*2),
	}, nil
}

// Accept implements the render.Renderer interface.
func (rec *Recorder) Accept(frame []byte) {
	if rec.err == nil {
		rec.buf = slip.Encode(rec.buf[:0], frame)
		if _, err := rec.enc.Write(rec.buf); err != nil {
			rec.err = err
			logger.Logf(logger.Allow, "capture", "recording stopped: %v", err)
		} else {
			rec.frames++
		}
	}

	if rec.next != nil {
		rec.next.Accept(frame)
	}
}

// Present implements the render.Renderer interface.
func (rec *Recorder) Present() {
	if rec.next != nil {
		rec.next.Present()
	}
}

// Close implements the render.Renderer interface. The capture is flushed and
// closed before the next Renderer is closed.
func (rec *Recorder) Close() {
	if err := rec.enc.Close(); err != nil && rec.err == nil {
		rec.err = err
	}
	if c, ok := rec.w.(io.Closer); ok {
		if err := c.Close(); err != nil && rec.err == nil {
			rec.err = err
		}
	}

	if rec.err != nil {
		logger.Logf(logger.Allow, "capture", "capture incomplete: %v", rec.err)
	}
	logger.Logf(logger.Allow, "capture", "recorded %d frames", rec.frames)

	if rec.next != nil {
		rec.next.Close()
	}
}

// Frames returns the number of frames recorded.
func (rec *Recorder) Frames() int {
	return rec.frames
}

// Err returns the first error encountered by the Recorder.
func (rec *Recorder) Err() error {
	if rec.err == nil {
		return nil
	}
	return curated.Errorf(Error, rec.err)
}
