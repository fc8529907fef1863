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

package session

import (
	"sync/atomic"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/render"
	"github.com/jetsetilly/m8link/slip"
	"github.com/jetsetilly/m8link/transport"
	"github.com/jetsetilly/m8link/userinput"
)

// HandshakeFailure is the pattern for errors that occur while enabling the
// device display.
const HandshakeFailure = "session: handshake failed: %v"

// Input is the source of input messages. Sample() must never block.
//
// The userinput.Translator type satisfies this interface.
type Input interface {
	Sample() userinput.Message
	Close()
}

// Session is the control loop. It owns the transport once opened, the frame
// decoder, the input and the renderer.
type Session struct {
	cfg      Config
	open     transport.Opener
	input    Input
	renderer render.Renderer

	port transport.Port
	dec  *slip.Decoder
	buf  []byte

	// the running flag is the only field that is accessed from outside the
	// goroutine calling Run()
	running atomic.Bool
	state   atomic.Int32

	// the last message to have been acted upon
	last userinput.Message

	stats Stats

	// a write that timed out may still be in progress. no further writes are
	// attempted
	stalled bool

	// the first fatal error
	err error
}

// NewSession is the preferred method of initialisation for the Session
// type. The transport is not opened until Run() is called.
func NewSession(cfg Config, open transport.Opener, input Input, renderer render.Renderer) *Session {
	s := &Session{
		cfg:      cfg.normalise(),
		open:     open,
		input:    input,
		renderer: renderer,
		last:     userinput.NormalMessage(0),
	}
	s.running.Store(true)
	s.state.Store(int32(Starting))
	return s
}

// Stop requests that the session end. The request is noticed at the start of
// the next iteration of the loop. Safe to call from any goroutine.
func (s *Session) Stop() {
	s.running.Store(false)
}

// State returns the current state of the session. Safe to call from any
// goroutine.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Stats returns the statistics collected so far. Should not be called while
// Run() is executing in another goroutine.
func (s *Session) Stats() Stats {
	return s.stats
}

func (s *Session) setState(st State) {
	s.state.Store(int32(st))
	logger.Logf(logger.Allow, "session", "%s", st)
}

// Run the session until Stop() is called, the input requests to quit, or a
// fatal error occurs. The returned error is the fatal error that ended the
// session, if any.
func (s *Session) Run() error {
	if err := s.start(); err != nil {
		s.fatal(err)
	} else {
		s.setState(Running)
		for s.running.Load() {
			s.iterate()
		}
	}

	s.setState(ShuttingDown)
	s.shutdown()
	s.setState(Stopped)

	return s.err
}

// fatal records the first fatal error and stops the loop.
func (s *Session) fatal(err error) {
	if s.err == nil {
		s.err = err
	}
	logger.Log(logger.Allow, "session", err.Error())
	s.running.Store(false)
}

// write the entire message to the transport.
func (s *Session) write(p []byte) error {
	n, err := s.port.WriteBlocking(p, s.cfg.WriteTimeout)
	if err != nil {
		if curated.Has(err, transport.WriteTimeout) {
			s.stalled = true
		}
		if curated.Has(err, transport.Fatal) {
			return err
		}
		return curated.Errorf(transport.Fatal, err)
	}
	if n != len(p) {
		return curated.Errorf(transport.Fatal, curated.Errorf(transport.ShortWrite, n, len(p)))
	}
	return nil
}

func (s *Session) start() error {
	var err error

	s.port, err = s.open()
	if err != nil {
		s.port = nil
		if curated.Has(err, transport.Fatal) {
			return err
		}
		return curated.Errorf(transport.Fatal, err)
	}

	logger.Log(logger.Allow, "session", "enabling and resetting display")

	if err := s.write(enableDisplay); err != nil {
		return curated.Errorf(HandshakeFailure, err)
	}
	s.cfg.Sleep(s.cfg.SettleDelay)
	if err := s.write(resetDisplay); err != nil {
		return curated.Errorf(HandshakeFailure, err)
	}

	s.dec = slip.NewDecoder(s.cfg.FrameCapacity)
	s.buf = make([]byte, s.cfg.ReadChunk)

	return nil
}

// iterate performs one iteration of the loop.
func (s *Session) iterate() {
	s.stats.Iterations++

	msg := s.input.Sample()
	if msg != s.last {
		s.last = msg

		switch msg.Kind {
		case userinput.Normal:
			if err := s.write(controller(msg.Mask())); err != nil {
				s.fatal(err)
				return
			}
			s.stats.InputWrites++
		case userinput.Special:
			switch msg.Code() {
			case userinput.Quit:
				logger.Log(logger.Allow, "session", "quit requested")
				s.running.Store(false)
			case userinput.ResetDisplay:
				logger.Log(logger.Allow, "session", "resetting display")
				if err := s.write(resetDisplay); err != nil {
					s.fatal(err)
					return
				}
			}
		}
	}

	n, err := s.port.ReadNonBlocking(s.buf)
	if err != nil {
		if !curated.Has(err, transport.Fatal) {
			err = curated.Errorf(transport.Fatal, err)
		}
		s.fatal(err)
		return
	}
	if n < 0 || n > len(s.buf) {
		s.fatal(curated.Errorf(transport.Fatal, curated.Errorf(transport.BadReadCount, n, len(s.buf))))
		return
	}

	for _, b := range s.buf[:n] {
		frame, err := s.dec.Feed(b)
		if err != nil {
			s.stats.ProtocolErrors++
			logger.Log(logger.Allow, "session", err.Error())
			continue
		}
		if frame != nil {
			s.renderer.Accept(frame)
			s.stats.Frames++
		}
	}

	if n > 0 {
		s.cfg.Sleep(s.cfg.BusyDelay)
	} else {
		s.stats.IdleIterations++
		s.renderer.Present()
		s.cfg.Sleep(s.cfg.IdleDelay)
	}
}

// shutdown releases everything. it is safe to call no matter how far start()
// progressed.
func (s *Session) shutdown() {
	if s.input != nil {
		s.input.Close()
	}
	if s.renderer != nil {
		s.renderer.Close()
	}

	if s.port != nil {
		if s.stalled {
			logger.Log(logger.Allow, "session", "not disconnecting: earlier write still pending")
		} else {
			logger.Log(logger.Allow, "session", "disconnecting")
			if err := s.write(disconnect); err != nil {
				logger.Logf(logger.Allow, "session", "disconnect: %v", err)
			}
		}
		if err := s.port.Close(); err != nil {
			logger.Log(logger.Allow, "session", err.Error())
		}
		s.port = nil
	}

	s.dec = nil
	s.buf = nil

	logger.Logf(logger.Allow, "session", "%s", s.stats)
}

// Snapshot returns a copy of the session state. Should not be called while
// Run() is executing in another goroutine.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State: s.State().String(),
		Stats: s.stats,
		Last:  s.last.String(),
	}
	if s.dec != nil {
		snap.Pending = s.dec.Pending()
	}
	if s.err != nil {
		snap.Err = s.err.Error()
	}
	return snap
}
