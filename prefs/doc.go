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

// Package prefs holds typed preference values and saves them to disk.
//
// Values are registered with a Disk instance under a key. Keys are dotted
// strings grouping related preferences, for example "serial.baud". The file
// format is one "key :: value" pair per line, preceded by a single line of
// warning boilerplate:
//
//	*** do not edit this file by hand ***
//	serial.baud :: 115200
//	serial.device ::
//
// Keys found in a file that have not been registered with the Disk instance
// are preserved when the file is saved. This means that different parts of
// the application can use the same file without knowing about each other.
//
// Preferences can also be set from the command line. A string of the form
// "key::value; key::value" is pushed onto the command line stack with
// PushCommandLineStack(). Any matching values are used by Disk.Load() in
// preference to the values in the file, and are consumed in the process.
//
// Each type can be given hook functions that are called before and after a
// new value is stored. A hook returning an error prevents the value being
// stored (pre) or is passed back to the caller of Set() (post).
package prefs
