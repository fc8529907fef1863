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


package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/m8link/modalflag"
	"github.com/jetsetilly/m8link/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-device", "/dev/ttyACM0", "replay", "-chunk", "16", "session.cap"})
	md.AddSubModes("run", "ports", "replay")
	device := md.AddString("device", "", "serial device")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "REPLAY")
	test.ExpectEquality(t, *device, "/dev/ttyACM0")

	md.NewMode()
	chunk := md.AddInt("chunk", 64, "bytes per read")
	timeout := md.AddDuration("timeout", time.Second, "read timeout")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *chunk, 16)
	test.ExpectEquality(t, *timeout, time.Second)
	test.ExpectEquality(t, md.GetArg(0), "session.cap")
	test.ExpectEquality(t, md.Path(), "REPLAY")

	var set []string
	md.Visit(func(f string) { set = append(set, f) })
	test.ExpectEquality(t, len(set), 1)
	test.ExpectEquality(t, set[0], "chunk")
}

func TestNestedModesWithFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-echo", "-gui", "none", "replay", "-chunk", "8", "fast", "-x", "session.cap"})
	md.AddSubModes("run", "replay")
	echo := md.AddBool("echo", false, "echo log")
	gui := md.AddString("gui", "sdl", "user interface")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "REPLAY")
	test.ExpectSuccess(t, *echo)
	test.ExpectEquality(t, *gui, "none")

	md.NewMode()
	md.AddSubModes("slow", "fast")
	chunk := md.AddInt("chunk", 64, "bytes per read")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "FAST")
	test.ExpectEquality(t, *chunk, 8)

	md.NewMode()
	x := md.AddBool("x", false, "extra")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *x)
	test.ExpectEquality(t, md.GetArg(0), "session.cap")
	test.ExpectEquality(t, md.Path(), "REPLAY/FAST")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"extra"})
	md.AddSubModes("run", "ports")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "extra")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("A", "B", "C")
	md.AdditionalHelp("more")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    \ttest flag (default true)\n" +
		"\n" +
		"  available sub-modes: A, B, C\n" +
		"    default: A\n" +
		"\n" +
		"more\n"
	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}
