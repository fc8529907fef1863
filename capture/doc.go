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


// Package capture records the frames received from the device and plays them
// back later.
//
// A capture file is a zstd compressed stream. The decompressed stream starts
// with a short magic string after which every frame is SLIP encoded. Because
// the frames are stored in the same form as they arrive over the serial link
// the Playback type can stand in for a real transport.Port.
//
// The Recorder type is a render.Renderer that writes every frame to the
// capture before passing it on to another Renderer.
package capture
