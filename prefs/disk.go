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

package prefs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load. Keys must be unique.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, separator) || strings.TrimSpace(key) != key || key == "" {
		return fmt.Errorf("prefs: illegal key %q", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key %q", key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all registered preference values to their zero value.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// read the key/value pairs in the preferences file. a missing file is not an
// error and results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the warning boilerplate
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: %s: not a valid prefs file", dsk.path)
	}

	for scanner.Scan() {
		line := scanner.Text()
		kv := strings.SplitN(line, strings.TrimSpace(separator), 2)
		if len(kv) != 2 {
			continue
		}
		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return data, nil
}

// Load preference values from disk. Values on the command line stack take
// priority over values in the file.
func (dsk *Disk) Load() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
			continue
		}
		if v, ok := data[key]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Entries in the file that have not
// been registered with this Disk instance are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		data[key] = p.String()
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	err = dsk.write(f, data)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func (dsk *Disk) write(w io.Writer, data map[string]string) error {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(separator)
		s.WriteString(data[k])
		s.WriteString("\n")
	}

	_, err := io.WriteString(w, s.String())
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	return nil
}
