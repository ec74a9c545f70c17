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

// curve is the shape class of a block: where the path leaves the block,
// relative to the entry corner and the block's axes.
type curve uint8

const (
	// adjacent curves leave at the corner next to the entry along the
	// a axis, i.e. at local position (la-1, 0).
	adjacent curve = iota

	// opposite curves leave at the diagonally opposite corner,
	// at local position (la-1, lb-1).
	opposite
)

// maxChildren is the largest number of sub-blocks a decomposition yields.
const maxChildren = 6

// parityClass classifies a block by the parity of its two side lengths,
// the length along a first.
type parityClass uint8

const (
	evenEven parityClass = iota
	evenOdd
	oddEven
	oddOdd
)

func parityOf[T constraints.Unsigned](la, lb T) parityClass {
	return parityClass(la&1)<<1 | parityClass(lb&1)
}

// curveFor returns the curve type used for a block with the given
// extents.  Colour the grid like a chess board: a path through every
// cell must start and end on differently coloured cells if the cell
// count is even, and on the majority colour if it is odd.  An adjacent
// exit is therefore possible unless la is odd and lb is even.  The
// choice depends on the parity class alone, which fixes the exit point
// of every block independently of where the block sits in the
// recursion.
func curveFor[T constraints.Unsigned](la, lb T) curve {
	if la == 1 {
		if lb == 1 {
			return adjacent
		}
		return opposite
	}
	if parityOf(la, lb) == oddEven {
		return opposite
	}
	return adjacent
}

// decompose splits the la×lb block of the given curve type into
// sub-blocks, stores them in visiting order and returns their number.
//
// The children tile the block exactly.  The first child starts at the
// block's entry, the last child ends at the block's exit, and the exit
// of each child is 4-adjacent to the entry of the next one.  The block
// must not be a single cell.
//
// Children whose longer side exceeds half the longer side of the block,
// plus one, are replaced by their own sub-blocks.  This way every level
// of the recursion at least halves the longer side.
func decompose[T constraints.Unsigned](kids *[maxChildren]child[T], kind curve, la, lb T) int {
	n := split(kids, kind, la, lb)

	half := max(la, lb)/2 + 1
	for k := n - 1; k >= 0; k-- {
		c := kids[k]
		if c.la <= 2 || c.lb <= 2 || max(c.la, c.lb) <= half {
			continue
		}
		var sub [maxChildren]child[T]
		m := split(&sub, c.kind, c.la, c.lb)
		copy(kids[k+m:], kids[k+1:n])
		for i := range m {
			kids[k+i] = c.nest(sub[i])
		}
		n += m - 1
	}
	return n
}

// split performs a single decomposition step.
func split[T constraints.Unsigned](kids *[maxChildren]child[T], kind curve, la, lb T) int {
	if kind == adjacent {
		return splitAdjacent(kids, la, lb)
	}
	return splitOpposite(kids, la, lb)
}

func splitAdjacent[T constraints.Unsigned](kids *[maxChildren]child[T], la, lb T) int {
	if lb == 1 {
		return splitLine(kids, la)
	}

	if la == 2 || longer(lb, la, 3) {
		// Go out along b in the first strip and come back in the second.
		// Both strips have an odd side, so opposite curves fit.
		k := la / 2
		if lb&1 == 0 {
			k = oddHalf(la)
		}
		kids[0] = child[T]{la: lb, lb: k, a: alongB, b: alongA, kind: opposite}
		kids[1] = child[T]{i: k, j: lb - 1, la: lb, lb: la - k, a: backB, b: alongA, kind: opposite}
		return 2
	}

	if lb == 2 || longer(la, lb, 2) {
		k := evenHalf(la)
		kids[0] = child[T]{la: k, lb: lb, a: alongA, b: alongB, kind: adjacent}
		kids[1] = child[T]{i: k, la: la - k, lb: lb, a: alongA, b: alongB, kind: adjacent}
		return 2
	}

	// Hilbert's quadrant split.  Even first extents keep every quadrant
	// feasible; a one column wide upper right quadrant is only feasible
	// when it is also one row high.
	w1 := evenHalf(la)
	h1 := evenHalf(lb)
	if la-w1 == 1 {
		h1 = lb - 1
	}
	w2, h2 := la-w1, lb-h1
	kids[0] = child[T]{la: h1, lb: w1, a: alongB, b: alongA, kind: adjacent}
	kids[1] = child[T]{j: h1, la: w1, lb: h2, a: alongA, b: alongB, kind: adjacent}
	kids[2] = child[T]{i: w1, j: h1, la: w2, lb: h2, a: alongA, b: alongB, kind: adjacent}
	kids[3] = child[T]{i: la - 1, j: h1 - 1, la: h1, lb: w2, a: backB, b: backA, kind: adjacent}
	return 4
}

func splitOpposite[T constraints.Unsigned](kids *[maxChildren]child[T], la, lb T) int {
	if lb == 1 {
		return splitLine(kids, la)
	}
	if la == 1 {
		n := splitLine(kids, lb)
		for i := range n {
			kids[i] = kids[i].transposed()
		}
		return n
	}

	if la > lb {
		n := splitOpposite(kids, lb, la)
		for i := range n {
			kids[i] = kids[i].transposed()
		}
		return n
	}

	// From here on lb >= la.
	if la == 2 || longer(lb, la, 2) {
		k := evenHalf(lb)
		kids[0] = child[T]{la: k, lb: la, a: alongB, b: alongA, kind: adjacent}
		kids[1] = child[T]{j: k, la: la, lb: lb - k, a: alongA, b: alongB, kind: opposite}
		return 2
	}

	// Lower left, lower right, then a band across the top which is
	// entered from the right and leaves at the top right corner.
	w1 := evenHalf(la)
	h1 := lb / 2
	if la&1 == 0 {
		h1 = oddHalf(lb)
	}
	kids[0] = child[T]{la: w1, lb: h1, a: alongA, b: alongB, kind: adjacent}
	kids[1] = child[T]{i: w1, la: la - w1, lb: h1, a: alongA, b: alongB, kind: opposite}
	kids[2] = child[T]{i: la - 1, j: h1, la: lb - h1, lb: la, a: alongB, b: backA, kind: adjacent}
	return 3
}

// splitLine cuts a straight run of n > 1 cells along a into two halves.
func splitLine[T constraints.Unsigned](kids *[maxChildren]child[T], n T) int {
	k := n / 2
	kids[0] = child[T]{la: k, lb: 1, a: alongA, b: alongB, kind: adjacent}
	kids[1] = child[T]{i: k, la: n - k, lb: 1, a: alongA, b: alongB, kind: adjacent}
	return 2
}

// transposed returns c with the roles of the parent's a and b axes
// exchanged.
func (c child[T]) transposed() child[T] {
	c.i, c.j = c.j, c.i
	c.a = c.a.transpose()
	c.b = c.b.transpose()
	return c
}

// evenHalf returns n/2 rounded up to the next even number.
// For n >= 3 the result lies in [2, n-1].
func evenHalf[T constraints.Unsigned](n T) T {
	return (n/2 + 1) &^ 1
}

// oddHalf returns n/2 rounded up to the next odd number.
func oddHalf[T constraints.Unsigned](n T) T {
	return n/2 | 1
}

// longer reports whether l > k*s, without overflow.  l must be positive.
func longer[T constraints.Unsigned](l, s, k T) bool {
	return (l-1)/k >= s
}
