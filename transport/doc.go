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


// Package transport defines the boundary between the control loop and the
// serial link to the device.
//
// Reads from a Port never block. Writes block but only for as long as the
// timeout given to WriteBlocking(). Every error returned by a Port should be
// considered fatal. The error will be a curated error with the Fatal pattern
// somewhere in the chain.
//
// The serialport and termport sub-packages provide implementations of Port.
// The capture package provides a Port that plays back a previously captured
// session.
package transport
