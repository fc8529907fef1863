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

package logger

import (
	"io"
	"strings"
)

const (
	penDimRed = "\033[2;31m"
	penNormal = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag is
// printed normally and the detail is dimmed if it is an error or a warning.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	s := string(p)
	i := strings.Index(s, ": ")
	if i < 0 || !isProblem(s[i+2:]) {
		return c.out.Write(p)
	}

	m, err := io.WriteString(c.out, s[:i+2])
	n += m
	if err != nil {
		return n, err
	}

	_, err = io.WriteString(c.out, penDimRed)
	if err != nil {
		return n, err
	}
	defer io.WriteString(c.out, penNormal)

	m, err = io.WriteString(c.out, s[i+2:])
	n += m
	return n, err
}

func isProblem(detail string) bool {
	d := strings.ToLower(detail)
	return strings.Contains(d, "error") || strings.Contains(d, "fail") || strings.Contains(d, "fatal")
}
