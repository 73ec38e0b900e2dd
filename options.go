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

	"seehuhn.de/go/pdf/graphics"
)

// Default values for pattern options.
const (
	// DefaultSize is the nominal cell size, 1/25 of a 500 unit canvas.
	DefaultSize = 500.0 / 25

	DefaultLineWidth = 4.0
	DefaultOffset    = 1.0
	DefaultNamespace = "Hitomezashi"
)

// Option configures a [Pattern] during creation.
type Option func(*config)

type config struct {
	size          any
	dpi           float64
	lineWidth     float64
	lineCap       graphics.LineCapStyle
	offset        float64
	preventRender bool
	namespace     string
	id            string
	provider      SurfaceProvider
	newID         IDGenerator
	rnd           *rand.Rand
	encoder       Encoder
}

func defaultConfig() config {
	return config{
		size:      DefaultSize,
		dpi:       ReferenceDPI,
		lineWidth: DefaultLineWidth,
		lineCap:   graphics.LineCapSquare,
		offset:    DefaultOffset,
		namespace: DefaultNamespace,
		provider:  NewImageProvider(),
		newID:     RandomID,
	}
}

// WithSize sets the nominal cell size, given at [ReferenceDPI]. The value
// may be a number or a numeric string; values which cannot be read as a
// number, and zero, select [DefaultSize].
func WithSize(size any) Option {
	return func(c *config) {
		c.size = size
	}
}

// WithDPI sets the target resolution. Zero or negative values select
// [ReferenceDPI].
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		} else {
			c.dpi = ReferenceDPI
		}
	}
}

// WithLineWidth sets the stroke width in pixels. Zero or negative values
// select [DefaultLineWidth].
func WithLineWidth(width float64) Option {
	return func(c *config) {
		if width > 0 {
			c.lineWidth = width
		} else {
			c.lineWidth = DefaultLineWidth
		}
	}
}

// WithLineCap selects the line cap by name. "round" selects round caps,
// every other value square caps.
func WithLineCap(name string) Option {
	return func(c *config) {
		c.lineCap = parseLineCap(name)
	}
}

// WithOffset sets the offset probability. Zero or a negative value makes
// the starting phase of every row and column depend on its bit alone.
// A positive value is the probability that a set bit keeps its inverted
// starting phase; values above 1 always keep it.
func WithOffset(p float64) Option {
	return func(c *config) {
		c.offset = p
	}
}

// WithPreventRender skips the render pass normally done by [New].
func WithPreventRender() Option {
	return func(c *config) {
		c.preventRender = true
	}
}

// WithNamespace sets the prefix for generated surface ids.
func WithNamespace(ns string) Option {
	return func(c *config) {
		if ns != "" {
			c.namespace = ns
		}
	}
}

// WithID requests the surface with the given id instead of a freshly
// generated one.
func WithID(id string) Option {
	return func(c *config) {
		c.id = id
	}
}

// WithProvider sets where drawing surfaces come from. A nil provider
// leaves the pattern without a surface, so every render pass fails with
// [ErrCapabilityUnavailable].
func WithProvider(p SurfaceProvider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithIDGenerator replaces [RandomID].
func WithIDGenerator(gen IDGenerator) Option {
	return func(c *config) {
		if gen != nil {
			c.newID = gen
		}
	}
}

// WithRand sets the random source used for probabilistic offsets.
func WithRand(rnd *rand.Rand) Option {
	return func(c *config) {
		c.rnd = rnd
	}
}

// WithSeed makes probabilistic offsets reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rnd = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithEncoder sets the encoder used for the seeds.
func WithEncoder(enc Encoder) Option {
	return func(c *config) {
		c.encoder = enc
	}
}

func parseLineCap(name string) graphics.LineCapStyle {
	if name == "round" {
		return graphics.LineCapRound
	}
	return graphics.LineCapSquare
}

// lineCapName returns the SVG name of a cap style.
func lineCapName(c graphics.LineCapStyle) string {
	switch c {
	case graphics.LineCapRound:
		return "round"
	case graphics.LineCapButt:
		return "butt"
	}
	return "square"
}
