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
	"fmt"
	"runtime"

	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/paths"
	"github.com/jetsetilly/m8link/render"
	"github.com/jetsetilly/m8link/userinput"
	"github.com/jetsetilly/m8link/version"
	"github.com/veandco/go-sdl2/sdl"
)

// name of the file containing additional game controller mappings.
const controllerDB = "gamecontrollerdb.txt"

// height of the oscilloscope area at the top of the display.
const waveformHeight = 20

// Screen is an implementation of the gui.GUI interface.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// everything is drawn to the texture and copied to the window on
	// Present()
	texture *sdl.Texture

	// whether anything has been drawn since the last Present()
	dirty bool

	// the most recent background colour. used to clear the waveform area
	background render.Colour

	// the width of the most recent waveform
	waveformWidth int32

	info render.Info
}

// NewScreen is the preferred method of initialisation for the Screen type.
// The scale value is the initial size of the window as a multiple of the
// device display.
func NewScreen(scale int) (*Screen, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	loadControllerDB()

	if scale < 1 {
		scale = 1
	}

	scr := &Screen{}

	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(render.Width*scale), int32(render.Height*scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		scr.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = scr.renderer.SetLogicalSize(render.Width, render.Height)
	if err != nil {
		scr.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_TARGET, render.Width, render.Height)
	if err != nil {
		scr.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = scr.renderer.SetRenderTarget(scr.texture)
	if err != nil {
		scr.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	_ = scr.renderer.SetDrawColor(0, 0, 0, 255)
	_ = scr.renderer.Clear()

	return scr, nil
}

// loadControllerDB adds the mappings in the controller database, if there is
// one. a missing or bad database is not fatal.
func loadControllerDB() {
	fn := paths.ResourcePath("", controllerDB)
	n := sdl.GameControllerAddMappingsFromFile(fn)
	if n < 0 {
		logger.Logf(logger.Allow, "sdl", "no controller mappings loaded from %s", fn)
		return
	}
	logger.Logf(logger.Allow, "sdl", "%d controller mappings loaded from %s", n, fn)
}

func (scr *Screen) destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}

// Gamepads implements the gui.GUI interface.
func (scr *Screen) Gamepads() userinput.GamepadDriver {
	return gamepads{}
}
