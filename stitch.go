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

// Stitch pairs a seed with the bit sequence derived from it.
type Stitch struct {
	Seed    any
	Pattern []Bit
}

// NewStitch encodes seed with enc.
func NewStitch(seed any, enc Encoder) Stitch {
	return Stitch{Seed: seed, Pattern: enc.Encode(seed)}
}

// BuildStitches turns the input into stitches. A slice of seeds yields
// one stitch per seed, in order. Any other value is treated as a single
// seed.
//
// BuildStitches does not check the number of stitches; [New] requires
// exactly two.
func BuildStitches(input any, enc Encoder) []Stitch {
	var seeds []any
	switch input := input.(type) {
	case []any:
		seeds = input
	case []string:
		seeds = toAny(input)
	case [][]bool:
		seeds = toAny(input)
	case [][]int:
		seeds = toAny(input)
	case [][]float64:
		seeds = toAny(input)
	case [][]string:
		seeds = toAny(input)
	case [][]any:
		seeds = toAny(input)
	default:
		return []Stitch{NewStitch(input, enc)}
	}

	stitches := make([]Stitch, len(seeds))
	for i, seed := range seeds {
		stitches[i] = NewStitch(seed, enc)
	}
	return stitches
}

func toAny[T any](s []T) []any {
	res := make([]any, len(s))
	for i, v := range s {
		res[i] = v
	}
	return res
}
