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


package transport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/prefs"
	"github.com/jetsetilly/m8link/test"
)

func TestPreferencesDefault(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config(), Config{Baud: DefaultBaud})
	test.ExpectEquality(t, p.Backend.String(), BackendSerial)
	test.ExpectEquality(t, p.String(), "autodetect via serial")
}

func TestPreferencesLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	data := prefs.WarningBoilerPlate + "\nserial.device :: /dev/ttyACM0\nserial.baud :: 9600\nserial.backend :: termios\nkeys.up :: W\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	p, err := newPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config(), Config{Device: "/dev/ttyACM0", Baud: 9600})
	test.ExpectEquality(t, p.Backend.String(), BackendTermios)

	test.ExpectSuccess(t, curated.Is(p.Baud.Set(0), BadBaud))
	test.ExpectSuccess(t, curated.Is(p.Backend.Set("usb"), UnknownBackend))
	test.ExpectEquality(t, p.Config().Baud, 9600)

	test.ExpectSuccess(t, p.Baud.Set("57600"))
	test.DemandSuccess(t, p.Save())
	saved, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(saved), "serial.baud :: 57600\n"))
	test.ExpectSuccess(t, strings.Contains(string(saved), "keys.up :: W\n"))
}

func TestPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("serial.baud::230400")
	defer prefs.PopCommandLineStack()

	p, err := newPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Config().Baud, 230400)
}

func TestPreferencesInvalid(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	data := prefs.WarningBoilerPlate + "\nserial.backend :: carrier pigeon\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o600))

	_, err := newPreferences(fn)
	test.ExpectSuccess(t, curated.Is(err, PrefsError))
}
