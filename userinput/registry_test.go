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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/m8link/test"
	"github.com/jetsetilly/m8link/userinput"
)

func TestRegistryEmpty(t *testing.T) {
	drv := &driver{}
	reg := userinput.NewRegistry(drv, 4)
	test.ExpectEquality(t, reg.Rescan(), 0)
	test.ExpectEquality(t, reg.Len(), 0)

	// rescanning is idempotent
	test.ExpectEquality(t, reg.Rescan(), 0)
	test.ExpectEquality(t, reg.Len(), 0)

	// a nil driver is always empty
	reg = userinput.NewRegistry(nil, 4)
	test.ExpectEquality(t, reg.Rescan(), 0)
}

func TestRegistryCapacity(t *testing.T) {
	drv := &driver{present: 6}
	reg := userinput.NewRegistry(drv, 4)
	test.ExpectEquality(t, reg.Rescan(), 4)
	test.ExpectEquality(t, reg.Len(), 4)
	test.ExpectEquality(t, len(drv.opened), 4)

	names := reg.Names()
	test.DemandEquality(t, len(names), 4)
	test.ExpectEquality(t, names[0], "pad 0")
	test.ExpectEquality(t, names[3], "pad 3")

	// rescanning closes every gamepad before reopening
	test.ExpectEquality(t, reg.Rescan(), 4)
	test.ExpectEquality(t, len(drv.opened), 8)
	test.ExpectEquality(t, drv.openCount(), 4)

	reg.Close()
	test.ExpectEquality(t, drv.openCount(), 0)
	test.ExpectEquality(t, reg.Len(), 0)
}

func TestRegistrySkipsNonGamepads(t *testing.T) {
	drv := &driver{present: 3, notGamepad: map[int]bool{1: true}}
	reg := userinput.NewRegistry(drv, 4)
	test.ExpectEquality(t, reg.Rescan(), 2)

	names := reg.Names()
	test.DemandEquality(t, len(names), 2)
	test.ExpectEquality(t, names[0], "pad 0")
	test.ExpectEquality(t, names[1], "pad 2")
}
