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

package transport_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/test"
	"github.com/jetsetilly/m8link/transport"
)

type stalledWriter struct {
	release chan bool
}

func (w stalledWriter) Write(p []byte) (int, error) {
	<-w.release
	return len(p), nil
}

type shortWriter struct{}

func (w shortWriter) Write(p []byte) (int, error) {
	return len(p) - 1, nil
}

type failingWriter struct{}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestWriteWithin(t *testing.T) {
	var cw test.CompareWriter
	n, err := transport.WriteWithin(&cw, []byte("DER"), time.Second)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	test.ExpectSuccess(t, cw.Compare("DER"))
}

func TestWriteWithinTimeout(t *testing.T) {
	w := stalledWriter{release: make(chan bool)}
	defer close(w.release)

	_, err := transport.WriteWithin(w, []byte{0x44}, time.Millisecond)
	test.ExpectSuccess(t, curated.Is(err, transport.Fatal))
	test.ExpectSuccess(t, curated.Has(err, transport.WriteTimeout))
}

func TestWriteWithinShort(t *testing.T) {
	n, err := transport.WriteWithin(shortWriter{}, []byte{0x43, 0x00}, time.Second)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, curated.Has(err, transport.ShortWrite))
}

func TestWriteWithinError(t *testing.T) {
	_, err := transport.WriteWithin(failingWriter{}, []byte{0x43, 0x00}, time.Second)
	test.ExpectSuccess(t, curated.Is(err, transport.Fatal))
	test.ExpectEquality(t, err.Error(), "transport: device unplugged")
}
