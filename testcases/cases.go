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

package testcases

var textCases = []TestCase{
	{
		Name:       "vowels_only",
		Stitchings: []any{"io", "ea"},
		Size:       20,
		LineWidth:  4,
		Cap:        "square",
	},
	{
		Name:       "consonants",
		Stitchings: []any{"bcd", "bcdf"},
		Size:       10,
		LineWidth:  2,
		Cap:        "square",
	},
	{
		Name:       "words",
		Stitchings: []any{"hitomezashi", "sashiko stitching"},
		Size:       20,
		LineWidth:  4,
		Cap:        "square",
	},
	{
		Name:       "words_round",
		Stitchings: []any{"hitomezashi", "sashiko stitching"},
		Size:       20,
		LineWidth:  6,
		Cap:        "round",
	},
	{
		Name:       "sentence",
		Stitchings: []any{"the quick brown fox jumps", "over the lazy dog again"},
		Size:       12,
		LineWidth:  3,
		Cap:        "square",
	},
}

var tokenCases = []TestCase{
	{
		Name:       "bools",
		Stitchings: []any{[]bool{true, false, true, true, false, false, true}, []bool{false, true, false, true, true, false}},
		Size:       16,
		LineWidth:  2,
		Cap:        "square",
	},
	{
		Name:       "numbers",
		Stitchings: []any{[]int{1, 0, 0, 1, 1, 0, 1, 0}, []int{0, 1, 1, 0, 1, 0, 0, 1}},
		Size:       16,
		LineWidth:  2,
		Cap:        "round",
	},
	{
		Name:       "mixed",
		Stitchings: []any{[]any{"true", 1, false, " true ", 0, true}, []any{1, 1, "false", true, 2, "true"}},
		Size:       24,
		LineWidth:  4,
		Cap:        "square",
	},
}

var randomCases = []TestCase{
	{
		Name:       "half",
		Stitchings: []any{"hitomezashi sashiko", "running stitch"},
		Size:       16,
		LineWidth:  3,
		Cap:        "square",
		Offset:     0.5,
		Seed:       1,
	},
	{
		Name:       "always",
		Stitchings: []any{"hitomezashi sashiko", "running stitch"},
		Size:       16,
		LineWidth:  3,
		Cap:        "round",
		Offset:     1,
		Seed:       2,
	},
	{
		Name:       "above_one",
		Stitchings: []any{"hitomezashi sashiko", "running stitch"},
		Size:       16,
		LineWidth:  3,
		Cap:        "square",
		Offset:     3,
		Seed:       3,
	},
}

var dpiCases = []TestCase{
	{
		Name:       "dpi_96",
		Stitchings: []any{"hitomezashi", "kogin"},
		Size:       15,
		DPI:        96,
		LineWidth:  4,
		Cap:        "square",
	},
	{
		Name:       "dpi_300",
		Stitchings: []any{"sashiko", "kogin"},
		Size:       6,
		DPI:        300,
		LineWidth:  5,
		Cap:        "round",
	},
}
