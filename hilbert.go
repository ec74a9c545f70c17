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

// Package hilbert computes pseudo-Hilbert scans of arbitrary rectangles.
//
// A pseudo-Hilbert scan visits every cell of a w×h grid exactly once,
// moving one cell left, right, up or down at each step, and keeps cells
// which are close in the visiting order close in the plane.  Unlike the
// classical Hilbert curve, w and h need not be equal or powers of two.
// The construction follows "A Pseudo-Hilbert Scan for Arbitrarily-Sized
// Arrays" by Zhang et al., with two changes:
//
//   - The rule which splits a block into sub-blocks is our own.
//     It is chosen so that every block can be traversed with the
//     required entry and exit corners.
//   - The curve type of a block depends only on the parity of its side
//     lengths.  As a consequence the exit point of a scan is always the
//     same for a given parity class, see [ExitPoint].  This makes it
//     possible to place independently generated scans next to each
//     other and obtain a single connected path.
//
// [Scan] is the basic generator.  Its output degrades as the rectangle
// becomes elongated; [TiledScan] splits the rectangle into tiles of
// bounded aspect ratio, runs one Scan per tile and joins the results.
//
// Both generators are pull based: each call to Next returns one cell.
// The recursion is kept on a fixed-size frame stack with as many frames
// as the coordinate type has bits.
package hilbert

//go:generate go run ./testcases/export

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Point is a cell of the scanned grid.
type Point[T constraints.Unsigned] struct {
	X, Y T
}

// Orientation selects where a scan leaves its rectangle.
// All scans enter the rectangle at (0, 0).
type Orientation uint8

const (
	// Horizontal scans leave at the bottom right cell (w-1, 0).
	// If w is odd and h is even, no such path exists and the scan
	// leaves at the top right cell (w-1, h-1) instead.
	Horizontal Orientation = iota

	// Vertical scans leave at the top left cell (0, h-1).
	// If h is odd and w is even, the scan leaves at (w-1, h-1) instead.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Sequence is the pull interface shared by [Scan] and [TiledScan].
type Sequence[T constraints.Unsigned] interface {
	// Next returns the next cell, or false when the sequence has ended.
	Next() (Point[T], bool)

	// Err returns the error which ended the sequence early, or nil.
	Err() error
}

// ExitPoint returns the last cell of a w×h scan with orientation o.
// The second return value is false if the rectangle is empty.
func ExitPoint[T constraints.Unsigned](w, h T, o Orientation) (Point[T], bool) {
	if w == 0 || h == 0 {
		return Point[T]{}, false
	}
	f := NewScan(w, h, o).root()
	x, y := f.exit()
	return Point[T]{X: x, Y: y}, true
}

// Collect reads the remaining cells of seq into a slice.
// If the sequence ends with an error, the cells read so far are
// returned together with the error.
func Collect[T constraints.Unsigned](seq Sequence[T]) ([]Point[T], error) {
	var pts []Point[T]
	for {
		p, ok := seq.Next()
		if !ok {
			break
		}
		pts = append(pts, p)
	}
	return pts, seq.Err()
}

// Path reads the remaining cells of seq and returns the polyline through
// the cell centres.  The cell (x, y) covers the unit square with lower
// left corner (x, y).
func Path[T constraints.Unsigned](seq Sequence[T]) (*path.Data, error) {
	p := &path.Data{}
	first := true
	for {
		c, ok := seq.Next()
		if !ok {
			break
		}
		v := vec.Vec2{X: float64(c.X) + 0.5, Y: float64(c.Y) + 0.5}
		if first {
			p = p.MoveTo(v)
			first = false
		} else {
			p = p.LineTo(v)
		}
	}
	return p, seq.Err()
}
