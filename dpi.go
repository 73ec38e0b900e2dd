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
	"strconv"
	"strings"
)

// ReferenceDPI is the resolution at which nominal sizes are given.
const ReferenceDPI = 72

// UseDPI converts the nominal value v, given at ReferenceDPI, into pixels
// at the given dpi.
//
// v may be any Go integer or floating point type, or a string holding a
// decimal number. If v cannot be read as a number, UseDPI returns false
// and the caller should fall back to its default.
func UseDPI(v any, dpi float64) (float64, bool) {
	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	return f / ReferenceDPI * dpi, true
}

// toFloat interprets v as a number. NaN is not a number.
func toFloat(v any) (float64, bool) {
	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = x
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
