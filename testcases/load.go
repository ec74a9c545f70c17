// seehuhn.de/go/hilbert - pseudo-Hilbert scans of arbitrary rectangles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads a list of test cases in YAML format.
// The input must be a sequence of mappings, using the keys given in the
// struct tags of [TestCase].  Unknown keys are an error.
func Load(r io.Reader) ([]TestCase, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cases []TestCase
	err := dec.Decode(&cases)
	if errors.Is(err, io.EOF) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("decoding test cases: %w", err)
	}

	seen := make(map[string]bool, len(cases))
	for i, tc := range cases {
		if !validName(tc.Name) {
			return nil, fmt.Errorf("case %d: invalid name %q", i, tc.Name)
		}
		if seen[tc.Name] {
			return nil, fmt.Errorf("case %d: duplicate name %q", i, tc.Name)
		}
		seen[tc.Name] = true
	}
	return cases, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return true
}
