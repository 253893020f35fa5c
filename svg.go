// seehuhn.de/go/axis - animated chart axes
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

package axis

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// SVGPath converts p into the syntax of the "d" attribute of an SVG path
// element.  Horizontal and vertical line segments use the H and V
// commands.  A nil path gives the empty string.
func SVGPath(p path.Path) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	var current, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
			b.WriteByte('M')
			writePoint(&b, current)

		case path.CmdLineTo:
			next := pts[0]
			switch {
			case next.Y == current.Y && next.X != current.X:
				b.WriteByte('H')
				writeNumber(&b, next.X)
			case next.X == current.X && next.Y != current.Y:
				b.WriteByte('V')
				writeNumber(&b, next.Y)
			default:
				b.WriteByte('L')
				writePoint(&b, next)
			}
			current = next

		case path.CmdQuadTo, path.CmdCubeTo:
			if cmd == path.CmdQuadTo {
				b.WriteByte('Q')
			} else {
				b.WriteByte('C')
			}
			for i, q := range pts {
				if i > 0 {
					b.WriteByte(' ')
				}
				writePoint(&b, q)
			}
			current = pts[len(pts)-1]

		case path.CmdClose:
			b.WriteByte('Z')
			current = start
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p vec.Vec2) {
	writeNumber(b, p.X)
	b.WriteByte(',')
	writeNumber(b, p.Y)
}

func writeNumber(b *strings.Builder, x float64) {
	if x == 0 {
		x = 0 // no "-0"
	}
	b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
}
