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
	"errors"
	"fmt"
	"iter"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrCapacityExceeded is matched by errors reporting that a scan needed
// more recursion frames than its frame stack can hold.
var ErrCapacityExceeded = errors.New("hilbert: frame stack capacity exceeded")

// CapacityError reports a scan whose recursion outgrew the frame stack.
type CapacityError struct {
	Width, Height uint64 // size of the scanned rectangle
	Capacity      int    // number of frames available
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("hilbert: %dx%d scan needs more than %d frames",
		e.Width, e.Height, e.Capacity)
}

// Unwrap makes errors.Is(err, ErrCapacityExceeded) hold.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// Scan enumerates the cells of a rectangle in pseudo-Hilbert order.
//
// The scan starts at (0, 0) and visits every cell of [0,w)×[0,h) exactly
// once; consecutive cells are 4-adjacent.  Where the scan leaves the
// rectangle depends only on the parity of w and h, see [ExitPoint].
//
// The recursion is kept on an explicit stack with one frame per level.
// The stack holds as many frames as T has bits and is never grown.
// Each level at least halves the longer side of the block, and blocks
// at most two cells wide are traversed without further frames, so a
// scan needs at most bits.Len(max(w, h)) frames.
//
// A Scan is single use and not safe for concurrent use.
type Scan[T constraints.Unsigned] struct {
	width, height T
	orient        Orientation

	// capacity is the maximum number of frames on the stack.
	capacity int

	stack []frame[T]
	done  bool
	err   error
}

// Scan32 is a scan over 32-bit coordinates, with room for 32 frames.
type Scan32 = Scan[uint32]

// NewScan returns a scan over the w×h rectangle.  The orientation
// selects the edge on which the scan prefers to leave the rectangle.
// The frame stack is allocated on the first call to Next.
func NewScan[T constraints.Unsigned](w, h T, o Orientation) *Scan[T] {
	return &Scan[T]{
		width:    w,
		height:   h,
		orient:   o,
		capacity: bitWidth[T](),
	}
}

// Next returns the next cell of the scan.  Once the scan is exhausted,
// or after an error, Next returns false and keeps doing so.
func (s *Scan[T]) Next() (Point[T], bool) {
	if s.done {
		return Point[T]{}, false
	}
	if s.stack == nil {
		if s.width == 0 || s.height == 0 {
			s.done = true
			return Point[T]{}, false
		}
		s.stack = make([]frame[T], 0, s.capacity)
		if !s.push(s.root()) {
			return Point[T]{}, false
		}
	}

	for {
		top := len(s.stack) - 1
		if top < 0 {
			s.done = true
			return Point[T]{}, false
		}
		f := &s.stack[top]

		if f.isThin() {
			if x, y, ok := f.nextCell(); ok {
				return Point[T]{X: x, Y: y}, true
			}
			s.pop()
			continue
		}

		if f.n == 0 {
			f.expand()
		}
		if f.next == f.n {
			s.pop()
			continue
		}
		if !s.push(f.child(&f.kids[f.next])) {
			return Point[T]{}, false
		}
	}
}

// Err returns the error which ended the scan early, or nil.
func (s *Scan[T]) Err() error {
	return s.err
}

// All returns an iterator over the remaining cells of the scan.
// Check Err after the loop.
func (s *Scan[T]) All() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Depth returns the number of frames currently on the stack.
// After a successful call to Next this includes the frame which
// produced the returned cell.
func (s *Scan[T]) Depth() int {
	return len(s.stack)
}

// root builds the frame for the whole rectangle.
func (s *Scan[T]) root() frame[T] {
	f := frame[T]{la: s.width, lb: s.height, a: east, b: north}
	if s.orient == Vertical {
		f.la, f.lb = s.height, s.width
		f.a, f.b = north, east
	}
	f.kind = curveFor(f.la, f.lb)
	return f
}

// push adds f to the stack.  If the stack is full, the scan is
// terminated with a CapacityError.
func (s *Scan[T]) push(f frame[T]) bool {
	if len(s.stack) == s.capacity {
		s.err = &CapacityError{
			Width:    uint64(s.width),
			Height:   uint64(s.height),
			Capacity: s.capacity,
		}
		s.done = true
		s.stack = s.stack[:0]
		return false
	}
	s.stack = append(s.stack, f)
	return true
}

// pop removes the top frame and advances its parent to the next child.
func (s *Scan[T]) pop() {
	s.stack = s.stack[:len(s.stack)-1]
	if n := len(s.stack); n > 0 {
		s.stack[n-1].next++
	}
}

// bitWidth returns the number of bits in T.
func bitWidth[T constraints.Unsigned]() int {
	return bits.Len64(uint64(^T(0)))
}
