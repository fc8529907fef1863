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


package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage message produced by the flag package so that
// it can be amended with the mode path and sub-mode list.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	s := hw.buffer.String()
	lines := strings.SplitN(s, "\n", 2)

	if strings.TrimSpace(s) == "Usage:" && len(subModes) == 0 && additionalHelp == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, lines[0])
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], path)
	}

	var flags bool
	if len(lines) > 1 && lines[1] != "" {
		fmt.Fprint(output, lines[1])
		flags = true
	}

	if len(subModes) > 0 {
		if flags {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
