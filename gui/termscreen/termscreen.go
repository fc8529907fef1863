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

package termscreen

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/m8link/render"
	"github.com/jetsetilly/m8link/userinput"
	"github.com/jetsetilly/m8link/version"
)

// DefaultHold is the length of time a key is held after it has been pressed
// or repeated by the terminal.
const DefaultHold = 250 * time.Millisecond

// the status display is redrawn no more often than this.
const redrawInterval = 100 * time.Millisecond

// held is a key that has been pressed and not yet released.
type held struct {
	key     string
	release time.Time
}

// Screen is an implementation of the gui.GUI interface.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	now  func() time.Time
	hold time.Duration

	// keys currently held in the order they were pressed
	held []held

	// status information
	frames   int
	info     render.Info
	lastKey  string
	dirty    bool
	lastDraw time.Time
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}

	scr := &Screen{
		screen: s,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
		now:    time.Now,
		hold:   DefaultHold,
		dirty:  true,
	}

	go s.ChannelEvents(scr.events, scr.quit)

	scr.draw()

	return scr, nil
}

// SetHold changes the length of time a key is held for.
func (scr *Screen) SetHold(d time.Duration) {
	if d > 0 {
		scr.hold = d
	}
}

// Gamepads implements the gui.GUI interface. Gamepads are not supported.
func (scr *Screen) Gamepads() userinput.GamepadDriver {
	return nil
}

// Accept implements the render.Renderer interface.
func (scr *Screen) Accept(frame []byte) {
	scr.frames++
	if len(frame) > 0 && render.Command(frame[0]) == render.SystemInfo {
		if inf, err := render.ParseSystemInfo(frame); err == nil {
			scr.info = inf
		}
	}
	scr.dirty = true
}

// Present implements the render.Renderer interface.
func (scr *Screen) Present() {
	if !scr.dirty {
		return
	}
	if scr.now().Sub(scr.lastDraw) < redrawInterval {
		return
	}
	scr.draw()
}

func (scr *Screen) draw() {
	scr.dirty = false
	scr.lastDraw = scr.now()

	scr.screen.Clear()

	title := tcell.StyleDefault.Bold(true)
	normal := tcell.StyleDefault
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	scr.text(0, 0, title, version.ApplicationName)

	if scr.info == (render.Info{}) {
		scr.text(0, 1, dim, "waiting for device")
	} else {
		scr.text(0, 1, normal, fmt.Sprintf("device: %s", scr.info))
	}
	scr.text(0, 2, normal, fmt.Sprintf("frames: %d", scr.frames))
	if scr.lastKey != "" {
		scr.text(0, 3, normal, fmt.Sprintf("key: %s", scr.lastKey))
	}
	scr.text(0, 5, dim, "press Esc to quit")

	scr.screen.Show()
}

func (scr *Screen) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		scr.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// Close implements the render.Renderer interface. The terminal is restored.
func (scr *Screen) Close() {
	close(scr.quit)
	scr.screen.Fini()
}
