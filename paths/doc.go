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

// Package paths contains functions to prepare paths to m8link resources.
//
// The ResourcePath() function prepends the supplied resource with the base
// resource directory. For example, the path to the controller mapping
// database:
//
//	p := paths.ResourcePath("gamecontrollerdb.txt")
//
// The policy is simple: if the base resource directory, ".m8link", is present
// in the program's current directory then that is used. If it is not present
// then the user's config directory is used, as returned by
// os.UserConfigDir(). On a modern Linux system the example above returns:
//
//	/home/user/.config/m8link/gamecontrollerdb.txt
//
// Resource files that the user creates, such as capture files, are better
// named with UniqueFilename().
package paths
