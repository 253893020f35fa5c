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
	"math"

	"seehuhn.de/go/axis/scale"
)

// PositionFunc maps a domain value to the pixel position of its tick,
// not including the rendering offset.
type PositionFunc[T comparable] func(T) float64

// Position returns the tick position function for the scale s.
//
// For continuous scales, ticks are placed where the scale maps the
// value.  For band scales, ticks are centred in the band; the usable
// width of the band is reduced by twice the rendering offset, and the
// result is rounded if the scale rounds.
//
// The caller must pass a scale which is not modified afterwards,
// normally a copy obtained via [scale.Scale.Copy].
func Position[T comparable](s scale.Scale[T], offset float64) PositionFunc[T] {
	if s == nil {
		return nil
	}
	b, ok := s.(scale.Banded)
	if !ok {
		return s.Map
	}

	shift := max(0, b.Bandwidth()-2*offset) / 2
	if b.Round() {
		shift = math.Round(shift)
	}
	return func(v T) float64 {
		return s.Map(v) + shift
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
