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

package sdlscreen

import (
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/render"
	"github.com/veandco/go-sdl2/sdl"
)

// size of a character cell.
const (
	cellWidth  = 8
	cellHeight = 10
)

// Accept implements the render.Renderer interface.
func (scr *Screen) Accept(frame []byte) {
	if len(frame) == 0 {
		return
	}

	var err error

	switch render.Command(frame[0]) {
	case render.DrawRectangle:
		var r render.Rectangle
		r, err = render.ParseRectangle(frame)
		if err == nil {
			scr.rectangle(r)
		}
	case render.DrawCharacter:
		var c render.Character
		c, err = render.ParseCharacter(frame)
		if err == nil {
			scr.character(c)
		}
	case render.DrawWaveform:
		var w render.Waveform
		w, err = render.ParseWaveform(frame)
		if err == nil {
			scr.waveform(w)
		}
	case render.SystemInfo:
		var inf render.Info
		inf, err = render.ParseSystemInfo(frame)
		if err == nil && inf != scr.info {
			scr.info = inf
			logger.Logf(logger.Allow, "sdl", "device: %s", inf)
		}
	default:
		logger.Logf(logger.Allow, "sdl", "unrecognised command: %s", render.Command(frame[0]))
	}

	if err != nil {
		logger.Log(logger.Allow, "sdl", err.Error())
	}
}

func (scr *Screen) setColour(c render.Colour) {
	_ = scr.renderer.SetDrawColor(c.R, c.G, c.B, 255)
}

func (scr *Screen) rectangle(r render.Rectangle) {
	// a rectangle covering the entire display is used to clear the display.
	// the colour is remembered as the background colour
	if r.X == 0 && r.Y == 0 && r.W >= render.Width && r.H >= render.Height {
		scr.background = r.Colour
	}

	scr.setColour(r.Colour)
	_ = scr.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)})
	scr.dirty = true
}

// character draws the character cell. glyphs are not drawn, only the cell
// background and a foreground block for any printable character.
func (scr *Screen) character(c render.Character) {
	scr.setColour(c.Background)
	_ = scr.renderer.FillRect(&sdl.Rect{X: int32(c.X), Y: int32(c.Y), W: cellWidth, H: cellHeight})

	if c.C > ' ' {
		scr.setColour(c.Foreground)
		_ = scr.renderer.FillRect(&sdl.Rect{X: int32(c.X) + 1, Y: int32(c.Y) + 2, W: cellWidth - 2, H: cellHeight - 4})
	}

	scr.dirty = true
}

// waveform draws the oscilloscope in the top right of the display. the area
// used by the previous waveform is cleared first.
func (scr *Screen) waveform(w render.Waveform) {
	width := scr.waveformWidth
	if int32(len(w.Samples)) > width {
		width = int32(len(w.Samples))
	}
	if width > 0 {
		scr.setColour(scr.background)
		_ = scr.renderer.FillRect(&sdl.Rect{X: render.Width - width, Y: 0, W: width, H: waveformHeight + 1})
	}

	scr.waveformWidth = int32(len(w.Samples))
	if scr.waveformWidth == 0 {
		scr.dirty = true
		return
	}

	pts := make([]sdl.Point, len(w.Samples))
	x := render.Width - scr.waveformWidth
	for i, s := range w.Samples {
		y := int32(s)
		if y > waveformHeight {
			y = waveformHeight
		}
		pts[i] = sdl.Point{X: x + int32(i), Y: y}
	}

	scr.setColour(w.Colour)
	_ = scr.renderer.DrawPoints(pts)
	scr.dirty = true
}

// Present implements the render.Renderer interface.
func (scr *Screen) Present() {
	if !scr.dirty {
		return
	}
	scr.dirty = false

	_ = scr.renderer.SetRenderTarget(nil)
	_ = scr.renderer.Copy(scr.texture, nil, nil)
	scr.renderer.Present()
	_ = scr.renderer.SetRenderTarget(scr.texture)
}

// Close implements the render.Renderer interface. SDL is shut down and the
// Screen can not be used again.
func (scr *Screen) Close() {
	logger.Log(logger.Allow, "sdl", "closing window")
	scr.destroy()
}
