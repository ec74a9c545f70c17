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

import "golang.org/x/exp/constraints"

// dir is one of the four unit steps on the integer grid.
type dir uint8

const (
	east  dir = iota // +x
	north            // +y
	west             // -x
	south            // -y
)

// reverse returns the opposite direction.
func (d dir) reverse() dir {
	return (d + 2) & 3
}

// move returns (x, y) moved n cells in direction d.
// The caller guarantees that the result stays inside the scanned
// rectangle, so the unsigned arithmetic never wraps.
func move[T constraints.Unsigned](x, y T, d dir, n T) (T, T) {
	switch d {
	case east:
		return x + n, y
	case north:
		return x, y + n
	case west:
		return x - n, y
	default:
		return x, y - n
	}
}

// axis selects one of a frame's local axes, possibly reversed.
type axis uint8

const (
	alongA axis = iota
	alongB
	backA
	backB
)

// resolve maps the selector to a grid direction, given the frame's axes.
func (s axis) resolve(a, b dir) dir {
	switch s {
	case alongA:
		return a
	case alongB:
		return b
	case backA:
		return a.reverse()
	default:
		return b.reverse()
	}
}

// transpose swaps the roles of a and b.
func (s axis) transpose() axis {
	return s ^ 1
}

// child describes one sub-block produced by the decomposition step,
// in the local coordinates of its parent.
type child[T constraints.Unsigned] struct {
	i, j   T     // entry cell, i along a and j along b
	la, lb T     // extents along the child's own axes
	a, b   axis  // the child's axes in terms of the parent's
	kind   curve // curve type of the child
}

// nest maps d, a sub-block of c given in the local coordinates of c,
// into the coordinates of the parent of c.
// Axis selectors use the same encoding as grid directions, with i
// taking the role of x and j the role of y.
func (c child[T]) nest(d child[T]) child[T] {
	i, j := move(c.i, c.j, dir(c.a), d.i)
	i, j = move(i, j, dir(c.b), d.j)
	return child[T]{
		i:    i,
		j:    j,
		la:   d.la,
		lb:   d.lb,
		a:    axis(d.a.resolve(dir(c.a), dir(c.b))),
		b:    axis(d.b.resolve(dir(c.a), dir(c.b))),
		kind: d.kind,
	}
}

// frame is one level of the generator's explicit recursion stack.
//
// The frame covers the cells entry + i*a + j*b for 0 <= i < la and
// 0 <= j < lb.  The path through the frame starts at the entry cell and
// leaves at the cell given by kind.
//
// Thin frames, at most two cells wide, produce their cells directly.
// All other frames are split into children by the decomposition step.
type frame[T constraints.Unsigned] struct {
	x, y   T // entry cell in absolute coordinates
	la, lb T // extents along a and b
	a, b   dir
	kind   curve

	next int // index of the next child to visit
	n    int // number of children, 0 until the frame is expanded
	kids [maxChildren]child[T]

	// position of the next cell of a thin frame
	pos   T
	phase uint8
}

// isThin reports whether the frame is at most two cells wide.
func (f *frame[T]) isThin() bool {
	return f.la <= 2 || f.lb <= 2
}

// nextCell returns the next cell of a thin frame, or false once the
// path through the frame is complete.
func (f *frame[T]) nextCell() (T, T, bool) {
	var i, j T
	switch {
	case f.lb == 1:
		if f.pos == f.la {
			return 0, 0, false
		}
		i = f.pos
		f.pos++

	case f.la == 1:
		if f.pos == f.lb {
			return 0, 0, false
		}
		j = f.pos
		f.pos++

	case f.la == 2 && f.kind == adjacent:
		// up the first column, down the second
		if f.phase == 2 {
			return 0, 0, false
		}
		i, j = T(f.phase), f.pos
		if f.phase == 1 {
			j = f.lb - 1 - f.pos
		}
		f.pos++
		if f.pos == f.lb {
			f.pos = 0
			f.phase++
		}

	case f.la == 2:
		// row by row, alternating direction
		if f.pos == f.lb {
			return 0, 0, false
		}
		i, j = T(f.phase), f.pos
		if f.pos&1 != 0 {
			i = 1 - i
		}
		f.phase ^= 1
		if f.phase == 0 {
			f.pos++
		}

	default:
		// lb == 2, column by column, alternating direction
		if f.pos == f.la {
			return 0, 0, false
		}
		i, j = f.pos, T(f.phase)
		if f.pos&1 != 0 {
			j = 1 - j
		}
		f.phase ^= 1
		if f.phase == 0 {
			f.pos++
		}
	}

	x, y := move(f.x, f.y, f.a, i)
	x, y = move(x, y, f.b, j)
	return x, y, true
}

// exit returns the cell where the path through f ends.
func (f *frame[T]) exit() (T, T) {
	x, y := move(f.x, f.y, f.a, f.la-1)
	if f.kind == opposite {
		x, y = move(x, y, f.b, f.lb-1)
	}
	return x, y
}

// expand runs the decomposition step on f and stores the children.
func (f *frame[T]) expand() {
	f.n = decompose(&f.kids, f.kind, f.la, f.lb)
}

// child derives the frame for the sub-block c of f.
func (f *frame[T]) child(c *child[T]) frame[T] {
	x, y := move(f.x, f.y, f.a, c.i)
	x, y = move(x, y, f.b, c.j)
	return frame[T]{
		x:    x,
		y:    y,
		la:   c.la,
		lb:   c.lb,
		a:    c.a.resolve(f.a, f.b),
		b:    c.b.resolve(f.a, f.b),
		kind: c.kind,
	}
}
