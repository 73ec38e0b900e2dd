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
	"strconv"
	"strings"
)

// pathDoc records one "M x,y L x,y z" command per drawn segment.
type pathDoc struct {
	commands []string
}

func (d *pathDoc) reset() {
	d.commands = d.commands[:0]
}

func (d *pathDoc) add(s Segment) {
	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(formatNumber(s.Start.X))
	b.WriteByte(',')
	b.WriteString(formatNumber(s.Start.Y))
	b.WriteString(" L ")
	b.WriteString(formatNumber(s.End.X))
	b.WriteByte(',')
	b.WriteString(formatNumber(s.End.Y))
	b.WriteString(" z")
	d.commands = append(d.commands, b.String())
}

// String joins all commands, separated by single spaces.
func (d *pathDoc) String() string {
	return strings.Join(d.commands, " ")
}

// formatNumber writes v in the shortest form which reads back exactly.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
