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
	"bytes"
	"io"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG writes the recorded path as an SVG document the size of the
// drawable area. The document holds a single unfilled path, stroked in
// currentColor with the line width and cap of the pattern. Before the
// first render pass the path data is empty.
func (p *Pattern) WriteSVG(w io.Writer) error {
	width, height := p.geom.PixelSize()

	buf := &bytes.Buffer{}
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Path(p.PathData(),
		`fill="none"`,
		`stroke="currentColor"`,
		`stroke-width="`+formatNumber(p.cfg.lineWidth)+`"`,
		`stroke-linecap="`+lineCapName(p.cfg.lineCap)+`"`)
	canvas.End()

	_, err := buf.WriteTo(w)
	return err
}

// SVG returns the document written by [Pattern.WriteSVG].
func (p *Pattern) SVG() string {
	buf := &bytes.Buffer{}
	_ = p.WriteSVG(buf) // writes to a bytes.Buffer do not fail
	return buf.String()
}
