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


// Package session implements the control loop that connects the device to
// the local display and input devices.
//
// A Session moves through the states Starting, Running, ShuttingDown and
// Stopped, in that order. The shutdown sequence is always performed, even if
// the Session never reached the Running state.
//
// Everything happens in the goroutine that calls Run(). The only exception
// is the Stop() function, which can be called from anywhere, including a
// goroutine receiving signals from the os/signal package. Stop() does
// nothing except clear the running flag. The flag is checked at the start of
// every iteration of the loop.
//
// Reads from the transport never block. The loop sleeps for a short time
// after a read that returned data and for a longer time after a read that
// returned nothing. When nothing is read the renderer is asked to present
// its output.
//
// Changes in input are sent to the device as they happen. An input that has
// not changed since it was last sent is not sent again.
package session
