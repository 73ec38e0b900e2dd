// hitomezashi-stitch - Hitomezashi stitch patterns
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

package hitomezashi

import (
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// Segment is one drawn stitch, exactly one cell long and parallel to one
// of the axes.
type Segment struct {
	Start, End vec.Vec2
}

// Sweep walks the grid and calls emit for every drawn segment, in drawing
// order.
//
// Axis 0 is processed first. Each of its bits describes one row: the bit
// fixes the horizontal phase of the row, then the row is swept left to
// right, drawing one cell and skipping the next. Axis 1 does the same for
// columns, sweeping top to bottom.
//
// The starting phase of a row or column is -cell/2 for a set bit and
// +cell/2 otherwise. If offset is positive (not zero, negative or NaN), a set bit only keeps the
// -cell/2 phase with probability offset, drawn from rnd.
//
// A step whose segment would cross the clip bound is skipped without
// moving the cursor, so the rest of the row or column is skipped as well.
func Sweep(stitches [2]Stitch, g Geometry, offset float64, rnd *rand.Rand, emit func(Segment)) {
	half := g.Cell / 2
	boundX, boundY := g.Bounds()

	for axis, st := range stitches {
		x, y := -half, -half
		steps := len(stitches[1-axis].Pattern) + 2

		for _, b := range st.Pattern {
			phase := startPhase(b, half, offset, rnd)
			if axis == 0 {
				x = phase
			} else {
				y = phase
			}

			for range steps {
				if x+g.Cell > boundX || y+g.Cell > boundY {
					continue
				}
				seg := Segment{Start: vec.Vec2{X: x, Y: y}}
				if axis == 0 {
					x += g.Cell
				} else {
					y += g.Cell
				}
				seg.End = vec.Vec2{X: x, Y: y}
				emit(seg)

				// skip the gap cell
				if axis == 0 {
					x += g.Cell
				} else {
					y += g.Cell
				}
			}

			if axis == 0 {
				y += g.Cell
			} else {
				x += g.Cell
			}
		}
	}
}

// startPhase returns the starting coordinate for one row or column.
// The random source is only consulted for set bits; a nil rnd uses the
// global source.
func startPhase(b Bit, half, offset float64, rnd *rand.Rand) float64 {
	if !(offset > 0) { // also NaN
		if b != 0 {
			return -half
		}
		return half
	}
	if b == 0 {
		return half
	}
	var u float64
	if rnd != nil {
		u = rnd.Float64()
	} else {
		u = rand.Float64()
	}
	if u < offset {
		return -half
	}
	return half
}
