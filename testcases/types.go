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

// Package testcases contains named axis scenarios.  Each scenario is a
// sequence of scale states, rendered one after the other as a user
// would see them while zooming, panning or editing the data.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/axis"
	"seehuhn.de/go/axis/scale"
)

// TestCase defines a single axis scenario.
type TestCase[T comparable] struct {
	Name        string           // lowercase a-z and _ only
	Orientation axis.Orientation // placement of the axis
	Width       int              // canvas width in pixels
	Height      int              // canvas height in pixels
	Origin      vec.Vec2         // position of the axis origin on the canvas
	Steps       []Step[T]        // consecutive inputs of the axis
}

// Step is one input of the axis renderer.
type Step[T comparable] struct {
	Scale      scale.Scale[T]
	TickValues []T // nil means use the scale's tick generator
	TickCount  int // zero means the generator's default
	HideZero   bool
}

// Render renders all steps of tc in order, each frame animating from the
// previous one, and returns the frames.
func Render[T comparable](tc TestCase[T]) []*axis.Frame[T] {
	a := axis.New[T](tc.Orientation)
	var prev *axis.PositionMap[T]
	frames := make([]*axis.Frame[T], 0, len(tc.Steps))
	for _, st := range tc.Steps {
		a.TickValues = st.TickValues
		a.TickCount = st.TickCount
		a.HideZero = st.HideZero
		f := a.Render(st.Scale, prev)
		prev = f.Next
		frames = append(frames, f)
	}
	return frames
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
