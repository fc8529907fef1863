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


// Package statsview offers a local HTTP server showing runtime statistics.
// The server is only available when the application is built with the
// statsview build tag. Without the tag Available() returns false and
// Launch() does nothing.
//
// Statistics are provided by the github.com/go-echarts/statsview package and
// are viewable at:
//
//	localhost:12680/debug/statsview
package statsview

// Address of the statistics server.
const Address = "localhost:12680"
