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

// Package testcases holds named stitch patterns shared by the tests, the
// benchmarks and the reference exporter.
package testcases

import hitomezashi "github.com/toolbarthomas/hitomezashi-stitch"

// TestCase defines a single pattern.
type TestCase struct {
	Name       string // lowercase a-z, 0-9 and _ only
	Stitchings []any  // axis-0 seed, then axis-1 seed
	Size       float64
	DPI        float64 // 0 means the reference resolution
	LineWidth  float64
	Cap        string  // "round" or "square"
	Offset     float64 // 0 for deterministic phases
	Seed       uint64  // random seed, used when Offset > 0
}

// Deterministic reports whether the pattern does not depend on the random
// source.
func (tc TestCase) Deterministic() bool {
	return tc.Offset <= 0
}

// Options returns the pattern options described by tc.
func (tc TestCase) Options() []hitomezashi.Option {
	return []hitomezashi.Option{
		hitomezashi.WithSize(tc.Size),
		hitomezashi.WithDPI(tc.DPI),
		hitomezashi.WithLineWidth(tc.LineWidth),
		hitomezashi.WithLineCap(tc.Cap),
		hitomezashi.WithOffset(tc.Offset),
		hitomezashi.WithSeed(tc.Seed),
	}
}
