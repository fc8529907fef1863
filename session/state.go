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

package session

import "fmt"

// State of a Session.
type State int32

// List of valid State values.
const (
	Starting State = iota
	Running
	ShuttingDown
	Stopped
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Stopped:
		return "stopped"
	}
	return "unknown state"
}

// Stats collected by a Session while running.
type Stats struct {
	// complete frames given to the renderer
	Frames int

	// frames discarded by the decoder
	ProtocolErrors int

	// controller messages written to the device
	InputWrites int

	// iterations of the loop and how many of those read no data
	Iterations     int
	IdleIterations int
}

func (st Stats) String() string {
	return fmt.Sprintf("%d frames, %d protocol errors, %d input messages, %d/%d idle iterations",
		st.Frames, st.ProtocolErrors, st.InputWrites, st.IdleIterations, st.Iterations)
}

// Snapshot is a copy of the state of a Session at a moment in time. It
// contains only plain values so it can be safely inspected or printed.
type Snapshot struct {
	State   string
	Stats   Stats
	Last    string
	Pending int
	Err     string
}
