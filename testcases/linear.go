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

var linearCases = []TestCase[float64]{
	{
		Name:        "zoom_in",
		Orientation: axis.Bottom,
		Width:       240,
		Height:      40,
		Origin:      pt(20, 8),
		Steps: []Step[float64]{
			{Scale: scale.NewLinear(0, 100, 0, 200)},
			{Scale: scale.NewLinear(20, 80, 0, 200)},
			{Scale: scale.NewLinear(40, 60, 0, 200)},
		},
	},
	{
		Name:        "pan",
		Orientation: axis.Left,
		Width:       60,
		Height:      240,
		Origin:      pt(52, 20),
		Steps: []Step[float64]{
			{Scale: scale.NewLinear(0, 10, 200, 0)},
			{Scale: scale.NewLinear(3, 13, 200, 0)},
			{Scale: scale.NewLinear(7, 17, 200, 0)},
		},
	},
	{
		Name:        "explicit_ticks",
		Orientation: axis.Top,
		Width:       240,
		Height:      40,
		Origin:      pt(20, 32),
		Steps: []Step[float64]{
			{Scale: scale.NewLinear(0, 10, 0, 200), TickValues: []float64{1, 2, 3}},
			{Scale: scale.NewLinear(0, 10, 0, 200), TickValues: []float64{1, 3, 4}},
		},
	},
	{
		Name:        "hide_zero",
		Orientation: axis.Right,
		Width:       60,
		Height:      240,
		Origin:      pt(8, 20),
		Steps: []Step[float64]{
			{Scale: scale.NewLinear(-10, 10, 200, 0), TickCount: 4, HideZero: true},
			{Scale: scale.NewLinear(-20, 20, 200, 0), TickCount: 4, HideZero: true},
		},
	},
	{
		Name:        "range_lost",
		Orientation: axis.Bottom,
		Width:       240,
		Height:      40,
		Origin:      pt(20, 8),
		Steps: []Step[float64]{
			{Scale: scale.NewLinear(0, 1, 0, 200)},
			{Scale: scale.NewLinear(0, 1, 0, 200).ClearRange()},
			{Scale: scale.NewLinear(0, 2, 0, 200)},
		},
	},
}
