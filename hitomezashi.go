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

// Package hitomezashi generates and draws Hitomezashi stitch patterns.
//
// A pattern is defined by two bit sequences. The bits of the first
// sequence (axis 0) select the starting phase of the rows, the bits of
// the second (axis 1) those of the columns. Every row and column then
// alternates between drawn and blank cells. The bit sequences are derived
// from seeds, either text, where vowels and other characters give
// different bits, or explicit sequences of tokens.
//
// Drawing happens on a [Surface] obtained from a [SurfaceProvider]. Every
// drawn segment is also recorded as vector path data, which can be
// exported as SVG or PDF.
package hitomezashi

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrConfig is wrapped by all errors about invalid pattern
	// configurations.
	ErrConfig = errors.New("invalid pattern configuration")

	// ErrStitchCount indicates that the seeds did not yield exactly two
	// stitches.
	ErrStitchCount = fmt.Errorf("%w: need exactly two stitches", ErrConfig)

	// ErrEmptyPattern indicates a seed which yields no bits.
	ErrEmptyPattern = fmt.Errorf("%w: empty stitch pattern", ErrConfig)

	// ErrSurfaceSize indicates a drawable area too large to be
	// represented in pixels.
	ErrSurfaceSize = fmt.Errorf("%w: drawable area too large", ErrConfig)

	// ErrCapabilityUnavailable indicates that no surface or stroke context
	// is available for drawing.
	ErrCapabilityUnavailable = errors.New("drawing capability unavailable")
)

// maxIDAttempts bounds the search for an unused surface id.
const maxIDAttempts = 64

// maxPixelSize is the largest width or height of a drawable area.
const maxPixelSize = math.MaxInt32

// IDGenerator returns a new surface id within the given namespace.
type IDGenerator func(namespace string) string

// RandomID returns the namespace followed by a dash and nine random
// lower-case hexadecimal digits.
func RandomID(namespace string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return namespace + "-" + hex[:9]
}

// Pattern is a Hitomezashi pattern bound to a drawing surface.
//
// The configuration, the stitches and the geometry are fixed when the
// pattern is created. A Pattern is not safe for concurrent use.
type Pattern struct {
	cfg      config
	stitches [2]Stitch
	geom     Geometry
	id       string
	surface  Surface

	doc      pathDoc
	segments []Segment
}

// New creates a pattern from two seeds. stitchings must be a slice of
// exactly two seeds (see [BuildStitches] and [Encoder.Encode]); the first
// seed defines the rows, the second the columns.
//
// Unless [WithPreventRender] is given, New draws the pattern once. If
// this initial render pass fails, New returns the pattern together with
// the error, and the pattern can be rendered again later.
func New(stitchings any, opts ...Option) (*Pattern, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	list := BuildStitches(stitchings, cfg.encoder)
	if len(list) != 2 {
		return nil, fmt.Errorf("%w, got %d", ErrStitchCount, len(list))
	}
	for i, st := range list {
		if len(st.Pattern) == 0 {
			return nil, fmt.Errorf("%w (axis %d)", ErrEmptyPattern, i)
		}
	}

	cell, ok := UseDPI(cfg.size, cfg.dpi)
	if !ok || cell == 0 {
		cell, _ = UseDPI(DefaultSize, cfg.dpi)
	}
	if cell < 0 || math.IsInf(cell, 0) {
		return nil, fmt.Errorf("%w: cell size %g", ErrConfig, cell)
	}

	if cfg.rnd == nil {
		cfg.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	geom := ComputeGeometry(list[0], list[1], cell)
	if w, h := geom.Drawable(); !(w <= maxPixelSize && h <= maxPixelSize) {
		return nil, fmt.Errorf("%w: %gx%g pixels", ErrSurfaceSize, w, h)
	}

	p := &Pattern{
		cfg:      cfg,
		stitches: [2]Stitch{list[0], list[1]},
		geom:     geom,
	}

	if err := p.allocate(); err != nil {
		return nil, err
	}

	if !cfg.preventRender {
		if err := p.Render(); err != nil {
			return p, err
		}
	}
	return p, nil
}

// allocate obtains the drawing surface. A failing provider is logged and
// leaves the pattern without a surface.
func (p *Pattern) allocate() error {
	id := p.cfg.id
	if id == "" {
		var err error
		id, err = p.uniqueID()
		if err != nil {
			return err
		}
	}
	p.id = id

	if p.cfg.provider == nil {
		return nil
	}
	w, h := p.geom.PixelSize()
	s, err := p.cfg.provider.Surface(id, w, h)
	if err != nil {
		Logger().Warn("hitomezashi: cannot allocate surface", "id", id, "error", err)
		return nil
	}
	p.surface = s
	return nil
}

// uniqueID generates ids until one is not yet known to the provider.
func (p *Pattern) uniqueID() (string, error) {
	known, canCheck := p.cfg.provider.(interface{ Exists(id string) bool })
	for range maxIDAttempts {
		id := p.cfg.newID(p.cfg.namespace)
		if !canCheck || !known.Exists(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: no unused surface id in namespace %q", ErrConfig, p.cfg.namespace)
}

// Render draws the pattern onto the surface and records the vector path.
// The path recorded by a previous pass is discarded.
//
// If no stroke context is available, Render logs the problem, leaves the
// recorded path unchanged and returns an error wrapping
// [ErrCapabilityUnavailable].
func (p *Pattern) Render() error {
	if p.surface == nil {
		Logger().Error("hitomezashi: no drawing surface", "id", p.id)
		return fmt.Errorf("%w: no surface for %q", ErrCapabilityUnavailable, p.id)
	}
	ctx, err := p.surface.Context()
	if err == nil && ctx == nil {
		err = ErrNoContext
	}
	if err != nil {
		Logger().Error("hitomezashi: no stroke context", "id", p.id, "error", err)
		return fmt.Errorf("%w: surface %q: %w", ErrCapabilityUnavailable, p.id, err)
	}

	ctx.SetLineCap(p.cfg.lineCap)
	ctx.SetLineWidth(p.cfg.lineWidth)

	p.doc.reset()
	p.segments = p.segments[:0]
	Sweep(p.stitches, p.geom, p.cfg.offset, p.cfg.rnd, func(s Segment) {
		ctx.StrokeLine(s.Start, s.End)
		p.doc.add(s)
		p.segments = append(p.segments, s)
	})

	Logger().Debug("hitomezashi: rendered",
		"id", p.id,
		"segments", len(p.segments),
		"cell", p.geom.Cell)
	return nil
}

// ID returns the id of the drawing surface.
func (p *Pattern) ID() string {
	return p.id
}

// Surface returns the drawing surface, or nil if none could be allocated.
func (p *Pattern) Surface() Surface {
	return p.surface
}

// Stitches returns the axis-0 and axis-1 stitches.
func (p *Pattern) Stitches() [2]Stitch {
	return p.stitches
}

// Geometry returns the grid size.
func (p *Pattern) Geometry() Geometry {
	return p.geom
}

// Segments returns the segments drawn by the last render pass.
func (p *Pattern) Segments() []Segment {
	return slices.Clone(p.segments)
}

// PathCommands returns the path commands of the last render pass, one
// per segment.
func (p *Pattern) PathCommands() []string {
	return slices.Clone(p.doc.commands)
}

// PathData returns the recorded path in SVG path syntax.
func (p *Pattern) PathData() string {
	return p.doc.String()
}

// UseDPI converts a nominal value to pixels at the resolution of p.
func (p *Pattern) UseDPI(v any) (float64, bool) {
	return UseDPI(v, p.cfg.dpi)
}
