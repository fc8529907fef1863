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

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string and are printed as:
//
//	tag: detail
//
// Consecutive identical entries are folded into a single entry with a repeat
// count. The number of entries kept is bounded; the oldest entries are
// forgotten once the bound is reached.
//
// Every logging call is accompanied by a Permission. The Allow value can be
// used when an entry should always be made. Types that sometimes want to
// suppress logging (for example, while replaying a capture) can implement the
// Permission interface themselves.
//
// The central log is safe to use from more than one goroutine but it must
// never be used from inside a signal handler.
package logger
