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

var bandCases = []TestCase[string]{
	{
		Name:        "grow",
		Orientation: axis.Bottom,
		Width:       240,
		Height:      40,
		Origin:      pt(20, 8),
		Steps: []Step[string]{
			{Scale: scale.NewBand([]string{"a", "b", "c"}, 0, 180)},
			{Scale: scale.NewBand([]string{"a", "b", "c", "d"}, 0, 180)},
		},
	},
	{
		Name:        "shrink",
		Orientation: axis.Top,
		Width:       240,
		Height:      40,
		Origin:      pt(20, 32),
		Steps: []Step[string]{
			{Scale: scale.NewBand([]string{"a", "b", "c"}, 0, 180)},
			{Scale: scale.NewBand([]string{"a", "b"}, 0, 180)},
		},
	},
	{
		Name:        "padding_round",
		Orientation: axis.Left,
		Width:       60,
		Height:      240,
		Origin:      pt(52, 20),
		Steps: []Step[string]{
			{Scale: scale.NewBand([]string{"x", "y", "z"}, 0, 200).SetPadding(0.2).SetRound(true)},
			{Scale: scale.NewBand([]string{"x", "y", "z"}, 0, 200).SetPaddingInner(0.5).SetRound(true)},
		},
	},
}
