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
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/m8link/logger"
)

// Headless is a Renderer that counts frames by command. Frames that fail to
// parse are counted separately.
type Headless struct {
	counts   map[Command]int
	bad      int
	presents int
	info     Info
	closed   bool
}

// NewHeadless is the preferred method of initialisation for the Headless
// type.
func NewHeadless() *Headless {
	return &Headless{
		counts: make(map[Command]int),
	}
}

// Accept implements the Renderer interface.
func (hl *Headless) Accept(frame []byte) {
	if len(frame) == 0 {
		return
	}

	cmd := Command(frame[0])

	var err error
	switch cmd {
	case DrawRectangle:
		_, err = ParseRectangle(frame)
	case DrawCharacter:
		_, err = ParseCharacter(frame)
	case DrawWaveform:
		_, err = ParseWaveform(frame)
	case SystemInfo:
		var inf Info
		inf, err = ParseSystemInfo(frame)
		if err == nil && inf != hl.info {
			hl.info = inf
			logger.Logf(logger.Allow, "render", "device: %s", inf)
		}
	default:
		logger.Logf(logger.Allow, "render", "unrecognised command: %s", cmd)
		hl.bad++
		return
	}

	if err != nil {
		logger.Log(logger.Allow, "render", err.Error())
		hl.bad++
		return
	}

	hl.counts[cmd]++
}

// Present implements the Renderer interface.
func (hl *Headless) Present() {
	hl.presents++
}

// Close implements the Renderer interface.
func (hl *Headless) Close() {
	if !hl.closed {
		hl.closed = true
		logger.Logf(logger.Allow, "render", "headless: %s", hl)
	}
}

// Count returns the number of valid frames received for the command.
func (hl *Headless) Count(cmd Command) int {
	return hl.counts[cmd]
}

// Bad returns the number of frames that could not be parsed.
func (hl *Headless) Bad() int {
	return hl.bad
}

// Presents returns the number of times Present() has been called.
func (hl *Headless) Presents() int {
	return hl.presents
}

// Info returns the most recent system info received from the device.
func (hl *Headless) Info() Info {
	return hl.info
}

func (hl *Headless) String() string {
	cmds := make([]Command, 0, len(hl.counts))
	for c := range hl.counts {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })

	s := strings.Builder{}
	for _, c := range cmds {
		s.WriteString(fmt.Sprintf("%s=%d ", c, hl.counts[c]))
	}
	s.WriteString(fmt.Sprintf("bad=%d", hl.bad))
	return s.String()
}
