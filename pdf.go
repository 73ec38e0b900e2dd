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
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// WritePDF writes the segments of the last render pass to a single-page
// PDF file. One PDF unit corresponds to one pixel. A pattern without a
// drawable area cannot be written.
func (p *Pattern) WritePDF(fileName string) error {
	width, height := p.geom.PixelSize()
	if width == 0 || height == 0 {
		return fmt.Errorf("%w: empty drawable area", ErrConfig)
	}
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF puts the origin in the bottom-left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(p.cfg.lineWidth)
	page.SetLineCap(p.cfg.lineCap)

	// Subpaths stay open so that the caps match the raster output.
	for _, s := range p.segments {
		page.MoveTo(s.Start.X, s.Start.Y)
		page.LineTo(s.End.X, s.End.Y)
	}
	if len(p.segments) > 0 {
		page.Stroke()
	}

	return page.Close()
}
