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


// Package sdlscreen is the SDL implementation of the gui.GUI interface. It
// opens a window showing the device display and converts SDL keyboard and
// game controller events into userinput events.
//
// SDL requires that all calls are made from the main thread. NewScreen()
// locks the calling goroutine to its thread and every other function must be
// called from that goroutine.
//
// If a file named gamecontrollerdb.txt exists in the resource directory it is
// loaded as a list of additional game controller mappings.
package sdlscreen
