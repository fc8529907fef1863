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


// Package render defines the Renderer interface and the commands that can be
// found in frames received from the device.
//
// A Renderer only ever sees complete frames. Frames are borrowed for the
// duration of the call to Accept() and must be copied if they are needed
// afterwards.
//
// The Headless type is a Renderer that does nothing except count the
// commands it receives. It is useful when there is no display or for
// checking that a device is sending sensible data.
package render
