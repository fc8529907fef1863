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
	"errors"
	"flag"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes handles command line arguments that are split into modes. Each mode
// has its own set of flags and an optional list of sub-modes. The Output
// field should be set before calling Parse() otherwise help messages will be
// lost.
type Modes struct {
	// destination for help messages
	Output io.Writer

	// flags for the current mode. recreated on every call to NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes available to the current mode. the first entry is the default
	subModes []string

	// every mode selected so far. never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs begins processing of a new argument list.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that remaining arguments belong to a new mode. Flags and
// sub-modes from the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the flag and sub-mode summary.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue indicates that processing should continue. If sub-modes
	// were added then Mode() will say which was selected.
	ParseContinue ParseResult = iota

	// ParseHelp indicates that help was requested and has been printed.
	ParseHelp

	// ParseError indicates that the arguments could not be parsed. The error
	// is returned alongside.
	ParseError
)

// Parse the arguments for the current mode. Help is printed to Output
// automatically and should be treated by the caller as a reason to stop
// without further comment:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}

		// unrecognised flags select the default sub-mode if there is one
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	// skip over the arguments consumed by the flags so that the next mode
	// begins after them
	md.argsIdx += len(md.args[md.argsIdx:]) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are not flags or a sub-mode.
func (md *Modes) RemainingArgs() []string {
	args := md.flags.Args()
	if len(md.subModes) > 0 && len(args) > 0 && strings.ToUpper(args[0]) == md.Mode() {
		return args[1:]
	}
	return args
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). Returns the empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes to the current mode. The first sub-mode added is the default.
// Sub-modes are matched case insensitively.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag to the current mode.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag in the current mode that was set on the
// command line, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
