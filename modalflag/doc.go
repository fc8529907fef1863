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


// Package modalflag wraps the flag package from the standard library so that
// a program can be divided into modes, each with its own flags. It is used
// in a similar way to flag.FlagSet except that the arguments are given to
// NewArgs() and Parse() is called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "ports", "replay")
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// The first sub-mode is the default and is selected if the first argument
// after the flags does not name another sub-mode. Sub-mode names are case
// insensitive and are reported in upper case by Mode().
//
// Once the mode has been decided, NewMode() begins a fresh set of flags and
// sub-modes for the arguments that remain:
//
//	switch md.Mode() {
//	case "REPLAY":
//		md.NewMode()
//		chunk := md.AddInt("chunk", 64, "bytes per read")
//		if p, _ := md.Parse(); p != modalflag.ParseContinue {
//			return
//		}
//		replay(md.GetArg(0), *chunk)
//	}
//
// Modes can be nested to any depth. Path() returns every mode selected so far.
package modalflag
