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

package userinput

import (
	"github.com/jetsetilly/m8link/logger"
)

// MaxGamepads is the number of gamepads that can be open at once.
const MaxGamepads = 4

// Gamepad is an opened gamepad.
type Gamepad interface {
	Name() string
	Close()
}

// GamepadDriver is implemented by GUIs that support gamepads.
type GamepadDriver interface {
	// NumGamepads returns the number of input devices currently present.
	NumGamepads() int

	// OpenGamepad opens the device at index. Returns (nil, nil) if the
	// device is present but is not usable as a gamepad.
	OpenGamepad(index int) (Gamepad, error)
}

// Registry is the list of opened gamepads, in the order in which they were
// discovered. The list is only ever rebuilt in its entirety.
type Registry struct {
	driver   GamepadDriver
	capacity int
	pads     []Gamepad
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The driver can be nil, in which case the registry is always empty. A
// capacity of less than one is replaced with MaxGamepads.
//
// No gamepads are opened until Rescan() is called.
func NewRegistry(driver GamepadDriver, capacity int) *Registry {
	if capacity < 1 {
		capacity = MaxGamepads
	}
	return &Registry{
		driver:   driver,
		capacity: capacity,
	}
}

// Rescan closes all open gamepads and then opens every gamepad currently
// present, up to the capacity of the registry. Returns the number of opened
// gamepads.
func (reg *Registry) Rescan() int {
	reg.Close()

	if reg.driver == nil {
		return 0
	}

	logger.Log(logger.Allow, "userinput", "looking for gamepads")

	pads := make([]Gamepad, 0, reg.capacity)
	n := reg.driver.NumGamepads()
	for i := 0; i < n && len(pads) < reg.capacity; i++ {
		pad, err := reg.driver.OpenGamepad(i)
		if err != nil {
			logger.Logf(logger.Allow, "userinput", "gamepad %d: %v", i, err)
			continue
		}
		if pad == nil {
			continue
		}
		pads = append(pads, pad)
		logger.Logf(logger.Allow, "userinput", "gamepad %d: %s", len(pads), pad.Name())
	}

	reg.pads = pads

	if len(reg.pads) == 0 {
		logger.Log(logger.Allow, "userinput", "no gamepads found")
	}

	return len(reg.pads)
}

// Close all open gamepads. The registry is empty afterwards.
func (reg *Registry) Close() {
	for _, pad := range reg.pads {
		pad.Close()
	}
	reg.pads = nil
}

// Len returns the number of open gamepads.
func (reg *Registry) Len() int {
	return len(reg.pads)
}

// Names returns the names of the open gamepads in discovery order.
func (reg *Registry) Names() []string {
	n := make([]string, len(reg.pads))
	for i, pad := range reg.pads {
		n[i] = pad.Name()
	}
	return n
}
