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
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/toolbarthomas/hitomezashi-stitch/raster"
)

// SurfaceProvider allocates drawing surfaces.
//
// If a surface with the given id already exists, a provider may return
// it, cleared and resized, instead of allocating a new one.
type SurfaceProvider interface {
	Surface(id string, width, height int) (Surface, error)
}

// Surface is a drawing surface.
type Surface interface {
	// Context returns the stroke context of the surface, or an error if
	// the surface cannot be drawn on.
	Context() (StrokeContext, error)
}

// StrokeContext draws straight lines onto a surface.
type StrokeContext interface {
	SetLineWidth(width float64)
	SetLineCap(c graphics.LineCapStyle)
	StrokeLine(a, b vec.Vec2)
}

// ErrNoContext is returned by surfaces without a stroke context.
var ErrNoContext = errors.New("surface has no stroke context")

// ImageProvider allocates [ImageSurface] values and remembers them by id.
// The zero value is ready to use.
type ImageProvider struct {
	surfaces map[string]*ImageSurface
}

// NewImageProvider returns an empty provider.
func NewImageProvider() *ImageProvider {
	return &ImageProvider{}
}

// Surface returns the surface with the given id, creating it if needed.
// An existing surface is resized and cleared.
func (p *ImageProvider) Surface(id string, width, height int) (Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("surface %q: invalid size %dx%d", id, width, height)
	}
	if p.surfaces == nil {
		p.surfaces = make(map[string]*ImageSurface)
	}
	s, ok := p.surfaces[id]
	if !ok {
		s = &ImageSurface{id: id}
		p.surfaces[id] = s
	}
	s.resize(width, height)
	return s, nil
}

// Exists reports whether a surface with the given id has been allocated.
func (p *ImageProvider) Exists(id string) bool {
	_, ok := p.surfaces[id]
	return ok
}

// Lookup returns the surface with the given id.
func (p *ImageProvider) Lookup(id string) (*ImageSurface, bool) {
	s, ok := p.surfaces[id]
	return s, ok
}

// ImageSurface is an in-memory surface. Strokes are composited into an
// alpha mask using the anti-aliasing rasteriser.
type ImageSurface struct {
	id  string
	img *image.Alpha
	ras *raster.Rasteriser
}

func (s *ImageSurface) resize(width, height int) {
	s.img = image.NewAlpha(image.Rect(0, 0, width, height))
	clip := rect.Rect{URx: float64(width), URy: float64(height)}
	if s.ras == nil {
		s.ras = raster.NewRasteriser(clip)
	} else {
		s.ras.Reset(clip)
	}
}

// ID returns the identifier the surface was allocated under.
func (s *ImageSurface) ID() string {
	return s.id
}

// Image returns the alpha mask holding everything drawn so far.
func (s *ImageSurface) Image() *image.Alpha {
	return s.img
}

// Context implements [Surface]. The surface is its own stroke context.
func (s *ImageSurface) Context() (StrokeContext, error) {
	if s.img == nil {
		return nil, ErrNoContext
	}
	return s, nil
}

// SetLineWidth implements [StrokeContext].
func (s *ImageSurface) SetLineWidth(width float64) {
	s.ras.Width = width
}

// SetLineCap implements [StrokeContext].
func (s *ImageSurface) SetLineCap(c graphics.LineCapStyle) {
	s.ras.Cap = c
}

// StrokeLine implements [StrokeContext].
func (s *ImageSurface) StrokeLine(a, b vec.Vec2) {
	line := (&path.Data{}).MoveTo(a).LineTo(b)
	s.ras.Stroke(line, s.composite)
}

// composite paints one scanline of coverage over the existing pixels.
func (s *ImageSurface) composite(y, xMin int, coverage []float32) {
	row := s.img.Pix[y*s.img.Stride+xMin:]
	for i, c := range coverage {
		old := float32(row[i]) / 255
		a := c + old*(1-c)
		row[i] = uint8(min(255, a*255+0.5))
	}
}

// WritePNG encodes the surface as a grayscale-alpha PNG image.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if s.img == nil {
		return ErrNoContext
	}
	return png.Encode(w, s.img)
}
