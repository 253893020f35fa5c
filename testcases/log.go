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

package testcases

import (
	"seehuhn.de/go/axis"
	"seehuhn.de/go/axis/scale"
)

var logCases = []TestCase[float64]{
	{
		Name:        "decades",
		Orientation: axis.Bottom,
		Width:       240,
		Height:      40,
		Origin:      pt(20, 8),
		Steps: []Step[float64]{
			{Scale: scale.NewLog(1, 100, 0, 200)},
			{Scale: scale.NewLog(1, 1e4, 0, 200)},
			{Scale: scale.NewLog(1, 1e12, 0, 200), TickCount: 5},
		},
	},
	{
		Name:        "non_positive",
		Orientation: axis.Left,
		Width:       60,
		Height:      240,
		Origin:      pt(52, 20),
		Steps: []Step[float64]{
			{Scale: scale.NewLinear(-1, 10, 200, 0), TickValues: []float64{-1, 0, 1, 10}},
			{Scale: scale.NewLog(0.1, 10, 200, 0), TickValues: []float64{-1, 0, 1, 10}},
			{Scale: scale.NewLinear(-1, 10, 200, 0), TickValues: []float64{-1, 0, 1, 10}},
		},
	},
}
