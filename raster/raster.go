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

// Package raster converts stroked straight-line paths into anti-aliased
// pixel coverage.
//
// Only the subset of the PDF imaging model needed for stitch drawings is
// implemented: line segments, line caps and the nonzero winding rule.
// Curve segments are replaced by a straight line to their end point and
// no join geometry is drawn between consecutive segments.
package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline. The coverage slice
// starts at pixel xMin and is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is one polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// strokeSegment is a non-degenerate line segment with its unit tangent T
// and unit normal N (90° counter-clockwise from T).
type strokeSegment struct {
	A, B vec.Vec2
	T, N vec.Vec2
}

// Rasteriser strokes paths into coverage values between 0 (pixel not
// touched) and 1 (pixel fully covered). Internal buffers are reused
// between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip bounds the output. Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the maximal deviation, in pixels, allowed when round
	// caps are approximated by polygons. Must be positive.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the style used at both ends of every open subpath.
	Cap graphics.LineCapStyle

	cover   []float32
	area    []float32
	rowUsed []bool
	edges   []edge

	segs     []strokeSegment // segments of the current subpath
	outline  []vec.Vec2      // outline vertices of all polygons
	polyEnds []int           // end index (exclusive) of each polygon

	haveBBox bool
	bbXMin   float64
	bbXMax   float64
	bbYMin   float64
	bbYMax   float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// a stroke width of 1 and butt caps.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,
	}
}

// Reset restores the default parameters and installs a new clip
// rectangle. Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.rowUsed = r.rowUsed[:0]
	r.edges = r.edges[:0]
	r.segs = r.segs[:0]
	r.outline = r.outline[:0]
	r.polyEnds = r.polyEnds[:0]
}

// Stroke rasterises the outline of p using Width and Cap.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	r.outline = r.outline[:0]
	r.polyEnds = r.polyEnds[:0]
	r.segs = r.segs[:0]

	var current, start vec.Vec2
	inSubpath := false
	drawn := false // a drawing command was seen in the current subpath

	k := 0
	for _, cmd := range p.Cmds {
		var to vec.Vec2
		switch cmd {
		case path.CmdMoveTo:
			r.finishSubpath(start, inSubpath && drawn, false)
			current = p.Coords[k]
			start = current
			inSubpath = true
			drawn = false
			k++
			continue
		case path.CmdLineTo:
			to = p.Coords[k]
			k++
		case path.CmdQuadTo:
			to = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			to = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if inSubpath {
				if current != start {
					r.addSegment(current, start)
				}
				r.finishSubpath(start, true, true)
				current = start
				inSubpath = false
				drawn = false
			}
			continue
		}
		if !inSubpath {
			continue
		}
		drawn = true
		r.addSegment(current, to)
		current = to
	}
	r.finishSubpath(start, inSubpath && drawn, false)

	r.fillOutlines(emit)
}

// addSegment appends a segment to the current subpath. Segments shorter
// than zeroLengthThreshold are dropped.
func (r *Rasteriser) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// finishSubpath turns the collected segments into outline polygons, one
// rectangle per segment. Open subpaths get caps at both ends. A subpath
// whose segments all had zero length becomes a dot for round caps and
// disappears otherwise.
func (r *Rasteriser) finishSubpath(start vec.Vec2, drawn, closed bool) {
	defer func() { r.segs = r.segs[:0] }()

	d := r.Width / 2
	if len(r.segs) == 0 {
		if drawn && r.Cap == graphics.LineCapRound {
			r.addArc(start, d, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.polyEnds = append(r.polyEnds, len(r.outline))
		}
		return
	}

	last := len(r.segs) - 1
	for i := range r.segs {
		s := &r.segs[i]
		r.outline = append(r.outline, s.A.Add(s.N.Mul(d)), s.B.Add(s.N.Mul(d)))
		if !closed && i == last {
			r.addCap(s.B, s.T, d)
		}
		r.outline = append(r.outline, s.B.Sub(s.N.Mul(d)), s.A.Sub(s.N.Mul(d)))
		if !closed && i == 0 {
			r.addCap(s.A, s.T.Mul(-1), d)
		}
		r.polyEnds = append(r.polyEnds, len(r.outline))
	}
}

// addCap adds the cap vertices at P, where T points away from the line
// and d is half the stroke width. Butt caps need no extra vertices.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// addArc appends vertices approximating a circular arc around center.
// startDir is the unit vector towards the first vertex and sweep the
// signed angle in radians (positive is counter-clockwise).
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	n := 1
	if radius > r.Flatness {
		// A chord spanning angle θ deviates from the arc by
		// radius*(1-cos(θ/2)); solve for the flatness.
		step := 2 * math.Acos(1-r.Flatness/radius)
		if step > 0 && !math.IsNaN(step) {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		} else {
			n = 8
		}
	}

	first := 1
	if includeStart {
		first = 0
	}
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// fillOutlines fills all outline polygons together with the nonzero
// winding rule, so that overlapping polygons are painted only once.
func (r *Rasteriser) fillOutlines(emit EmitFunc) {
	r.edges = r.edges[:0]
	r.haveBBox = false

	begin := 0
	for _, end := range r.polyEnds {
		poly := r.outline[begin:end]
		begin = end
		if len(poly) < 3 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, emit)
}

// addEdge records a polygon edge and grows the bounding box.
// Horizontal edges do not contribute to coverage and are skipped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	lx, hx := min(p0.X, p1.X), max(p0.X, p1.X)
	ly, hy := min(p0.Y, p1.Y), max(p0.Y, p1.Y)
	if !r.haveBBox {
		r.bbXMin, r.bbXMax, r.bbYMin, r.bbYMax = lx, hx, ly, hy
		r.haveBBox = true
		return
	}
	r.bbXMin = min(r.bbXMin, lx)
	r.bbXMax = max(r.bbXMax, hx)
	r.bbYMin = min(r.bbYMin, ly)
	r.bbYMax = max(r.bbYMax, hy)
}

// scan accumulates all edges into per-pixel cover/area buffers spanning
// the box [xMin,xMax)×[yMin,yMax), then integrates each row.
//
// For every pixel, cover holds the signed vertical extent of the edges
// crossing its column and area the same extent weighted by how far left
// in the pixel the crossing lies. Summing cover from the left edge of the
// row and adding area gives the signed covered area of the pixel.
func (r *Rasteriser) scan(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, skip := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+skip, trimmed)
		}
	}
}

// accumulate adds the part of e inside scanline y to cover and area,
// which are indexed by x-xMin. Contributions left of xMin are folded
// into the first pixel; contributions right of xMax are dropped.
func (r *Rasteriser) accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	if right < xMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if left >= xMax {
		return
	}

	if left == right {
		r.addPiece(e, yTop, yBot, sign, left, cover, area, xMin, xMax)
		return
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		r.addPiece(e, lo, hi, sign, pix, cover, area, xMin, xMax)
	}
}

// addPiece adds the part of e between lo and hi, which lies inside pixel
// column pix.
func (r *Rasteriser) addPiece(e *edge, lo, hi float64, sign float32, pix int, cover, area []float32, xMin, xMax int) {
	c := sign * float32(hi-lo)
	switch {
	case pix < xMin:
		cover[0] += c
		area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(pix)
		idx := pix - xMin
		cover[idx] += c
		area[idx] += c * float32(1-frac)
	}
}

// integrateNonZero turns accumulated cover/area values into coverage
// using the nonzero winding rule. The result replaces cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and the last
// non-zero value, and the offset of that part. The result is nil if all
// values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

const (
	// defaultFlatness is 1/4 pixel, below the threshold of visual
	// perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimal vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the minimal length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
