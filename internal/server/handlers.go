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

package server

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/gofiber/fiber/v3"

	hitomezashi "github.com/toolbarthomas/hitomezashi-stitch"
)

// errTooLarge is returned for patterns exceeding the configured image
// size.
var errTooLarge = errors.New("pattern too large")

// PatternSVG renders the pattern described by the query parameters as an
// SVG document.
//
// Query parameters: x and y are the text seeds of the two axes; size,
// dpi, width, cap, offset and seed correspond to the pattern options of
// the same names.
func (s *Server) PatternSVG(c fiber.Ctx) error {
	p, _, err := s.render(c)
	if err != nil {
		return sendError(c, err)
	}

	c.Set("Content-Type", "image/svg+xml")
	return c.SendString(p.SVG())
}

// PatternPNG renders the pattern described by the query parameters as a
// PNG image. The query parameters are the same as for
// [Server.PatternSVG].
func (s *Server) PatternPNG(c fiber.Ctx) error {
	p, prov, err := s.render(c)
	if err != nil {
		return sendError(c, err)
	}
	if w, h := p.Geometry().PixelSize(); w == 0 || h == 0 {
		return sendError(c, fmt.Errorf("%w: empty drawable area", hitomezashi.ErrConfig))
	}

	surface, ok := prov.Lookup(p.ID())
	if !ok {
		return sendError(c, hitomezashi.ErrCapabilityUnavailable)
	}
	buf := &bytes.Buffer{}
	if err := surface.WritePNG(buf); err != nil {
		return sendError(c, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(buf.Bytes())
}

// render creates and draws the pattern for a request, on a fresh image
// surface. The size limit is checked before the surface is allocated.
func (s *Server) render(c fiber.Ctx) (*hitomezashi.Pattern, *hitomezashi.ImageProvider, error) {
	seeds := []string{c.Query("x"), c.Query("y")}
	opts := queryOptions(c)

	probe, err := hitomezashi.New(seeds, slices.Concat(opts, []hitomezashi.Option{
		hitomezashi.WithProvider(nil),
		hitomezashi.WithPreventRender(),
	})...)
	if err != nil {
		return nil, nil, err
	}
	limit := float64(s.cfg.MaxImageSize)
	if w, h := probe.Geometry().Drawable(); !(w <= limit && h <= limit) {
		return nil, nil, fmt.Errorf("%w: %gx%g exceeds %d pixels",
			errTooLarge, w, h, s.cfg.MaxImageSize)
	}

	prov := hitomezashi.NewImageProvider()
	p, err := hitomezashi.New(seeds, slices.Concat(opts, []hitomezashi.Option{
		hitomezashi.WithProvider(prov),
	})...)
	if err != nil {
		return nil, nil, err
	}
	return p, prov, nil
}

// queryOptions converts query parameters into pattern options. Malformed
// numbers are ignored, so that the defaults apply.
func queryOptions(c fiber.Ctx) []hitomezashi.Option {
	var opts []hitomezashi.Option
	if v := c.Query("size"); v != "" {
		opts = append(opts, hitomezashi.WithSize(v))
	}
	if f, ok := queryFloat(c, "dpi"); ok {
		opts = append(opts, hitomezashi.WithDPI(f))
	}
	if f, ok := queryFloat(c, "width"); ok {
		opts = append(opts, hitomezashi.WithLineWidth(f))
	}
	if v := c.Query("cap"); v != "" {
		opts = append(opts, hitomezashi.WithLineCap(v))
	}
	if f, ok := queryFloat(c, "offset"); ok {
		opts = append(opts, hitomezashi.WithOffset(f))
	}
	if v := c.Query("seed"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			opts = append(opts, hitomezashi.WithSeed(seed))
		}
	}
	return opts
}

func queryFloat(c fiber.Ctx, key string) (float64, bool) {
	v := c.Query(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// sendError maps pattern errors to HTTP status codes.
func sendError(c fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, errTooLarge), errors.Is(err, hitomezashi.ErrSurfaceSize):
		status = fiber.StatusRequestEntityTooLarge
	case errors.Is(err, hitomezashi.ErrConfig):
		status = fiber.StatusBadRequest
	default:
		hitomezashi.Logger().Error("server: render failed", "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
