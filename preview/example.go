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

package preview

import (
	"image"

	"seehuhn.de/go/axis/testcases"
)

// RenderExample renders the last frame of a test case, at progress u of
// its transition, into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Each byte represents coverage from 0 (transparent) to 255 (opaque).
func RenderExample[T comparable](tc testcases.TestCase[T], buf []byte, width, height, stride int, u float64) {
	frames := testcases.Render(tc)
	if len(frames) == 0 {
		return
	}
	img := &image.Alpha{
		Pix:    buf,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
	Draw(NewCanvas(img, nil), frames[len(frames)-1], tc.Origin, u)
}
