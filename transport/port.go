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

package transport

import (
	"io"
	"time"

	"github.com/jetsetilly/m8link/curated"
)

// Sentinel error patterns.
const (
	Fatal        = "transport: %v"
	ShortWrite   = "short write (%d of %d bytes)"
	WriteTimeout = "write timed out after %v"
	NoDevice     = "no device found"
	BadReadCount = "bad read count (%d for a buffer of %d bytes)"
)

// Port is an open connection to the device.
type Port interface {
	// ReadNonBlocking reads up to len(p) bytes. If no data is waiting the
	// function returns immediately with a count of zero and a nil error.
	// The count is always in the range 0 to len(p) inclusive. A count outside
	// of that range is treated by the caller as a fatal error.
	ReadNonBlocking(p []byte) (int, error)

	// WriteBlocking writes all of p or fails. An error is returned if the
	// write takes longer than the timeout.
	WriteBlocking(p []byte, timeout time.Duration) (int, error)

	Close() error
}

// Opener returns a newly opened Port.
type Opener func() (Port, error)

// WriteWithin writes p to w in a separate goroutine and waits for no longer
// than the timeout. A write that is incomplete after the timeout is left to
// finish in the background and an error with the WriteTimeout pattern is
// returned. The caller must not write to w again after a timeout because the
// two writes could interleave.
//
// The contents of p are copied so the slice can be reused as soon as the
// function returns.
func WriteWithin(w io.Writer, p []byte, timeout time.Duration) (int, error) {
	type result struct {
		n   int
		err error
	}

	b := make([]byte, len(p))
	copy(b, p)

	done := make(chan result, 1)
	go func() {
		n, err := w.Write(b)
		done <- result{n: n, err: err}
	}()

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case r := <-done:
		if r.err != nil {
			return r.n, curated.Errorf(Fatal, r.err)
		}
		if r.n != len(p) {
			return r.n, curated.Errorf(Fatal, curated.Errorf(ShortWrite, r.n, len(p)))
		}
		return r.n, nil
	case <-t.C:
		return 0, curated.Errorf(Fatal, curated.Errorf(WriteTimeout, timeout))
	}
}
