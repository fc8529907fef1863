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


// Package termscreen is a gui.GUI that runs in a terminal with the help of
// the tcell package. The device display is not reproduced. Instead a short
// status of the connection is shown.
//
// Terminals report key presses but not key releases. A key press is
// therefore treated as a tap: the key is reported as held until the hold
// duration has passed without the terminal repeating the key, after which a
// release is reported.
//
// The escape key and Ctrl+C quit the application.
package termscreen
