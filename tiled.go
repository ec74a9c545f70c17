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

package hilbert

import (
	"fmt"
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/geom/rect"
)

// Tile is one rectangle of a tiling plan.
type Tile[T constraints.Unsigned] struct {
	X, Y          T // lower left cell of the tile
	Width, Height T

	// Orientation is used for the scan inside the tile.  It points along
	// the axis on which the tiles are laid out.
	Orientation Orientation
}

// Rect returns the area covered by the tile, with cell (x, y) covering
// the unit square with lower left corner (x, y).
func (t Tile[T]) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(t.X),
		LLy: float64(t.Y),
		URx: float64(t.X) + float64(t.Width),
		URy: float64(t.Y) + float64(t.Height),
	}
}

// Plan returns the tiles used by [TiledScan] for a w×h rectangle,
// in visiting order.  The tiles are disjoint and cover the rectangle.
// The long side of every tile is at most twice its short side.
func Plan[T constraints.Unsigned](w, h T) []Tile[T] {
	var tiles []Tile[T]
	pl := newPlanner(w, h)
	for {
		t, ok := pl.next()
		if !ok {
			return tiles
		}
		tiles = append(tiles, t)
	}
}

// span is a stretch of the long side which still has to be tiled.
type span[T constraints.Unsigned] struct {
	off, len T
}

// planner produces the tiles of a plan one at a time.
//
// The rectangle is cut across its long side.  A span of length l is
// divided into n = round(l/short) roughly square shares, and the first
// ⌊n/2⌋ shares form the left part.  Left parts are rounded to even
// length, so that every tile except the last can run an adjacent curve
// and leave next to the entry of the following tile.
type planner[T constraints.Unsigned] struct {
	short      T
	horizontal bool
	pending    []span[T] // stack, next span on top
}

func newPlanner[T constraints.Unsigned](w, h T) *planner[T] {
	pl := &planner[T]{}
	if w == 0 || h == 0 {
		return pl
	}
	long := w
	pl.short, pl.horizontal = h, true
	if h > w {
		long, pl.short, pl.horizontal = h, w, false
	}
	pl.pending = append(pl.pending, span[T]{len: long})
	return pl
}

func (pl *planner[T]) next() (Tile[T], bool) {
	n := len(pl.pending)
	if n == 0 {
		return Tile[T]{}, false
	}
	sp := pl.pending[n-1]
	pl.pending = pl.pending[:n-1]

	for !pl.isLeaf(sp.len) {
		k := pl.cut(sp.len)
		pl.pending = append(pl.pending, span[T]{off: sp.off + k, len: sp.len - k})
		sp.len = k
	}

	if pl.horizontal {
		return Tile[T]{X: sp.off, Width: sp.len, Height: pl.short, Orientation: Horizontal}, true
	}
	return Tile[T]{Y: sp.off, Width: pl.short, Height: sp.len, Orientation: Vertical}, true
}

// isLeaf reports whether a span of length l is close enough to square.
func (pl *planner[T]) isLeaf(l T) bool {
	s := pl.short
	return l <= 2 || l <= s || l-s <= s/2
}

// cut returns the length of the left part of a span of length l.
// The result is even and lies in [2, l-1].
func (pl *planner[T]) cut(l T) T {
	s := pl.short
	n := l / s
	if r := l % s; r >= s-r {
		n++
	}

	// l*(n/2)/n, without overflow
	hi, lo := bits.Mul64(uint64(l), uint64(n/2))
	q, _ := bits.Div64(hi, lo, uint64(n))

	k := T(q)
	if k&1 != 0 {
		k++
	}
	return k
}

// TiledScan enumerates the cells of a rectangle in pseudo-Hilbert order,
// keeping the quality of the curve for elongated rectangles.
//
// The rectangle is cut into tiles whose sides differ by at most a factor
// of two (see [Plan]), and each tile is traversed by its own [Scan].
// Each tile's scan leaves the tile next to where the scan of the
// following tile starts, so the joined path is 4-connected throughout.
//
// A TiledScan is single use and not safe for concurrent use.
type TiledScan[T constraints.Unsigned] struct {
	plan  *planner[T]
	tile  Tile[T]
	index int
	scan  *Scan[T]

	// capacity is passed on to the scan of every tile.
	capacity int

	done bool
	err  error
}

// TiledScan32 is a tiled scan over 32-bit coordinates.
type TiledScan32 = TiledScan[uint32]

// NewTiledScan returns a tiled scan over the w×h rectangle.
// The tiles are laid out along the longer side of the rectangle.
func NewTiledScan[T constraints.Unsigned](w, h T) *TiledScan[T] {
	return &TiledScan[T]{
		plan:     newPlanner(w, h),
		index:    -1,
		capacity: bitWidth[T](),
	}
}

// Next returns the next cell of the scan.  Once the scan is exhausted,
// or after an error, Next returns false and keeps doing so.
func (s *TiledScan[T]) Next() (Point[T], bool) {
	if s.done {
		return Point[T]{}, false
	}
	for {
		if s.scan != nil {
			p, ok := s.scan.Next()
			if ok {
				p.X += s.tile.X
				p.Y += s.tile.Y
				return p, true
			}
			if err := s.scan.Err(); err != nil {
				t := s.tile
				s.err = fmt.Errorf("tile %d (%dx%d at %d,%d): %w",
					s.index, t.Width, t.Height, t.X, t.Y, err)
				s.finish()
				return Point[T]{}, false
			}
		}

		t, ok := s.plan.next()
		if !ok {
			s.finish()
			return Point[T]{}, false
		}
		s.tile = t
		s.index++
		s.scan = NewScan(t.Width, t.Height, t.Orientation)
		s.scan.capacity = s.capacity
	}
}

func (s *TiledScan[T]) finish() {
	s.done = true
	s.scan = nil
}

// Err returns the error which ended the scan early, or nil.
// Errors from the scan of a tile are wrapped with the tile's index
// and placement.
func (s *TiledScan[T]) Err() error {
	return s.err
}

// All returns an iterator over the remaining cells of the scan.
// Check Err after the loop.
func (s *TiledScan[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Tile returns the tile which produced the most recent cell, and its
// index in the plan.  Before the first call to Next the index is -1.
func (s *TiledScan[T]) Tile() (Tile[T], int) {
	return s.tile, s.index
}
