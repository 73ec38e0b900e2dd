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
	"math"
	"testing"
)

func TestUseDPI(t *testing.T) {
	cases := []struct {
		in   any
		dpi  float64
		want float64
		ok   bool
	}{
		{20.0, 72, 20, true},
		{20, 144, 40, true},
		{float32(36), 96, 48, true},
		{uint8(9), 300, 37.5, true},
		{"18", 72, 18, true},
		{" 7.2 ", 720, 72, true},
		{"", 72, 0, false},
		{"12px", 72, 0, false},
		{"abc", 72, 0, false},
		{math.NaN(), 72, 0, false},
		{nil, 72, 0, false},
		{true, 72, 0, false},
		{[]int{1}, 72, 0, false},
	}
	for _, c := range cases {
		got, ok := UseDPI(c.in, c.dpi)
		if ok != c.ok || math.Abs(got-c.want) > 1e-12 {
			t.Errorf("UseDPI(%#v, %g) = %g, %t, want %g, %t", c.in, c.dpi, got, ok, c.want, c.ok)
		}
	}
}
