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

package session_test

import (
	"errors"
	"strings"
	"time"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/session"
	"github.com/jetsetilly/m8link/transport"
	"github.com/jetsetilly/m8link/userinput"
)

// port is an implementation of transport.Port that returns a scripted list of
// reads and records every write.
type port struct {
	reads   [][]byte
	readErr error

	// if non-zero the count returned by every read, regardless of the
	// size of the buffer
	readCount int

	writes [][]byte

	// the number of the write (counting from one) that fails. zero means no
	// write fails
	failWrite    int
	shortWrite   int
	timeoutWrite int

	closed bool
}

func (p *port) ReadNonBlocking(b []byte) (int, error) {
	if p.readCount != 0 {
		return p.readCount, nil
	}
	if len(p.reads) == 0 {
		if p.readErr != nil {
			return 0, p.readErr
		}
		return 0, nil
	}
	n := copy(b, p.reads[0])
	p.reads = p.reads[1:]
	return n, nil
}

func (p *port) WriteBlocking(b []byte, _ time.Duration) (int, error) {
	p.writes = append(p.writes, append([]byte{}, b...))
	switch len(p.writes) {
	case p.failWrite:
		return 0, errors.New("write failed")
	case p.shortWrite:
		return len(b) - 1, nil
	case p.timeoutWrite:
		return 0, curated.Errorf(transport.Fatal, curated.Errorf(transport.WriteTimeout, time.Millisecond))
	}
	return len(b), nil
}

func (p *port) Close() error {
	p.closed = true
	return nil
}

func (p *port) opener() transport.Opener {
	return func() (transport.Port, error) {
		return p, nil
	}
}

// script is an implementation of session.Input. When the script is exhausted
// the stop function is called and the last message is repeated.
type script struct {
	msgs    []userinput.Message
	last    userinput.Message
	stop    func()
	samples int
	closed  bool
}

func (sc *script) Sample() userinput.Message {
	sc.samples++
	if len(sc.msgs) == 0 {
		if sc.stop != nil {
			sc.stop()
		}
		return sc.last
	}
	sc.last = sc.msgs[0]
	sc.msgs = sc.msgs[1:]
	return sc.last
}

func (sc *script) Close() {
	sc.closed = true
}

// renderer is an implementation of render.Renderer that keeps a copy of
// every frame.
type renderer struct {
	frames   [][]byte
	presents int
	closed   bool
}

func (r *renderer) Accept(frame []byte) {
	r.frames = append(r.frames, append([]byte{}, frame...))
}

func (r *renderer) Present() {
	r.presents++
}

func (r *renderer) Close() {
	r.closed = true
}

// sleeps records the duration of every call to the sleep function.
type sleeps []time.Duration

func (sl *sleeps) sleep(d time.Duration) {
	*sl = append(*sl, d)
}

const (
	busy   = 1 * time.Microsecond
	idle   = 2 * time.Microsecond
	settle = 3 * time.Microsecond
)

// fixture creates a session with the port, script and renderer. the script
// stops the session when it runs out of messages.
func fixture(p *port, sc *script, r *renderer) (*session.Session, *sleeps) {
	sl := &sleeps{}

	cfg := session.DefaultConfig()
	cfg.BusyDelay = busy
	cfg.IdleDelay = idle
	cfg.SettleDelay = settle
	cfg.Sleep = sl.sleep

	sess := session.NewSession(cfg, p.opener(), sc, r)
	sc.stop = sess.Stop

	return sess, sl
}

func normal(m userinput.Mask) userinput.Message {
	return userinput.NormalMessage(m)
}

func special(c userinput.SpecialCode) userinput.Message {
	return userinput.SpecialMessage(c)
}

// written joins every write with a '|' for easy comparison.
func written(p *port) string {
	s := make([]string, len(p.writes))
	for i, w := range p.writes {
		s[i] = string(w)
	}
	return strings.Join(s, "|")
}

// events is an implementation of userinput.EventSource. when the queue is
// exhausted the quit event is returned.
type events struct {
	queue []userinput.Event
}

func (e *events) PollEvent() userinput.Event {
	if len(e.queue) == 0 {
		return userinput.EventQuit{}
	}
	ev := e.queue[0]
	e.queue = e.queue[1:]
	return ev
}
