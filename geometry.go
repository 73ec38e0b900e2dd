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

// Geometry holds the size of the grid a pattern is drawn on.
//
// Width is the length of the axis-1 pattern times Cell, Height the length
// of the axis-0 pattern times Cell.
type Geometry struct {
	Width  float64
	Height float64
	Cell   float64
}

// ComputeGeometry derives the grid size from the two stitches.
func ComputeGeometry(axis0, axis1 Stitch, cell float64) Geometry {
	return Geometry{
		Width:  float64(len(axis1.Pattern)) * cell,
		Height: float64(len(axis0.Pattern)) * cell,
		Cell:   cell,
	}
}

// Drawable returns the visible area, which leaves out one cell on every
// side. Negative sizes are reported as 0.
func (g Geometry) Drawable() (width, height float64) {
	return max(g.Width-2*g.Cell, 0), max(g.Height-2*g.Cell, 0)
}

// PixelSize returns the drawable area in whole pixels, truncating any
// fractional part.
func (g Geometry) PixelSize() (width, height int) {
	w, h := g.Drawable()
	return int(w), int(h)
}

// Bounds returns the limits used to clip segments: no segment which
// would reach past width-cell horizontally or height-cell vertically is
// drawn.
func (g Geometry) Bounds() (x, y float64) {
	return g.Width - g.Cell, g.Height - g.Cell
}
