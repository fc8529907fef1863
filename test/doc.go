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

// Package test bundles helper functions that remove common boilerplate from
// the tests in this project. They are used in conjunction with the standard
// go test harness.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions report a failure with t.Fatalf() and should
// be used when the rest of the test depends on the value being correct, for
// example when checking the length of a slice before indexing it.
//
// Success and failure are decided by the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil case is not obvious but it follows from how errors work in Go. A nil
// error interface is an untyped nil by the time it reaches these functions and
// must be treated as success.
//
// CompareWriter implements io.Writer and is useful for capturing output and
// comparing it against an expected string.
package test
