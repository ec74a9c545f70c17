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

// Package testcases holds named scan configurations shared by the tests
// and by the tools which export and draw reference scans.
package testcases

// TestCase defines a single scan.
type TestCase struct {
	Name     string `yaml:"name"`     // lowercase a-z, 0-9 and _ only
	Width    uint32 `yaml:"width"`    // number of columns
	Height   uint32 `yaml:"height"`   // number of rows
	Vertical bool   `yaml:"vertical"` // leave on the left edge instead of the bottom edge
	Tiled    bool   `yaml:"tiled"`    // use the aspect-bounded tiling driver
}

// Cells returns the number of cells the scan visits.
func (tc TestCase) Cells() uint64 {
	return uint64(tc.Width) * uint64(tc.Height)
}
