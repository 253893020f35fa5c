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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Baseline returns the path of the axis domain line.
//
// The coordinates range0 and range1 are the end points of the axis
// along its direction, already shifted by the rendering offset.  If
// outer is non-zero, the line is extended by end caps of length outer
// which point in the direction given by [Orientation.Sign].
func Baseline(o Orientation, outer, offset, range0, range1 float64) path.Path {
	k := o.Sign()
	pt := func(along, across float64) vec.Vec2 {
		x, y := o.point(along, across)
		return vec.Vec2{X: x, Y: y}
	}

	if outer == 0 {
		return polyline(pt(range0, offset), pt(range1, offset))
	}
	return polyline(
		pt(range0, k*outer),
		pt(range0, offset),
		pt(range1, offset),
		pt(range1, k*outer))
}

// polyline returns an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for i := range pts {
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, pts[i:i+1]) {
				return
			}
		}
	}
}

// TickGeometry describes the shape of a single tick in tick-local
// coordinates, where the origin is the point where the tick meets the
// baseline.  The same geometry is shared by all ticks of a frame.
type TickGeometry struct {
	// Line is the tick mark.
	Line path.Path

	// Label is the anchor point of the tick label.
	Label vec.Vec2

	Anchor   TextAnchor
	Baseline TextBaseline
}

// tickGeometry computes the tick geometry for the given orientation.
// Labels are placed at distance padding beyond the inner tick.
func tickGeometry(o Orientation, inner, padding float64) TickGeometry {
	k := o.Sign()
	spacing := max(inner, 0) + padding

	x1, y1 := o.point(0, 0)
	x2, y2 := o.point(0, k*inner)
	lx, ly := o.point(0, k*spacing)
	return TickGeometry{
		Line:     polyline(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}),
		Label:    vec.Vec2{X: lx, Y: ly},
		Anchor:   o.Anchor(),
		Baseline: o.Baseline(),
	}
}
