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
	"strings"
)

// Bit is one element of a stitch pattern, either 0 or 1.
type Bit uint8

// State selects which bit a vowel maps to when encoding text.
type State int

const (
	// StateOff maps vowels to 0 and all other characters to 1.
	StateOff State = iota

	// StateOn maps vowels to 1 and all other characters to 0.
	StateOn
)

func (s State) String() string {
	if s == StateOn {
		return "on"
	}
	return "off"
}

// vowels is the reference set for text seeds. Matching is case-sensitive.
const vowels = "aeiou"

// Encoder turns seeds into bit sequences.
// The zero value uses StateOff.
type Encoder struct {
	State State
}

// Encode converts a seed into a bit sequence.
//
// A string seed yields one bit per character, classified against the
// vowels a, e, i, o and u. Slices of bool, int, float64, string or any
// are token sequences: string tokens are trimmed and dropped when empty,
// then every token which is boolean true, the string "true" or the
// number 1 becomes 1 and every other token becomes 0.
//
// Seeds of any other type are accepted and yield an empty sequence.
func (e Encoder) Encode(seed any) []Bit {
	switch seed := seed.(type) {
	case string:
		return e.encodeText(seed)
	case []bool:
		bits := make([]Bit, 0, len(seed))
		for _, v := range seed {
			bits = append(bits, bitOf(v))
		}
		return bits
	case []int:
		bits := make([]Bit, 0, len(seed))
		for _, v := range seed {
			bits = append(bits, bitOf(v == 1))
		}
		return bits
	case []float64:
		bits := make([]Bit, 0, len(seed))
		for _, v := range seed {
			bits = append(bits, bitOf(v == 1))
		}
		return bits
	case []string:
		bits := make([]Bit, 0, len(seed))
		for _, v := range seed {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			bits = append(bits, bitOf(v == "true"))
		}
		return bits
	case []any:
		bits := make([]Bit, 0, len(seed))
		for _, v := range seed {
			if s, ok := v.(string); ok {
				s = strings.TrimSpace(s)
				if s == "" {
					continue
				}
				v = s
			}
			bits = append(bits, bitOf(isTrueToken(v)))
		}
		return bits
	}
	return nil
}

func (e Encoder) encodeText(s string) []Bit {
	match, other := Bit(0), Bit(1)
	if e.State == StateOn {
		match, other = 1, 0
	}
	bits := make([]Bit, 0, len(s))
	for _, c := range s {
		if strings.ContainsRune(vowels, c) {
			bits = append(bits, match)
		} else {
			bits = append(bits, other)
		}
	}
	return bits
}

// isTrueToken reports whether a single token counts as 1.
func isTrueToken(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	f, ok := toFloat(v)
	return ok && f == 1
}

func bitOf(b bool) Bit {
	if b {
		return 1
	}
	return 0
}
