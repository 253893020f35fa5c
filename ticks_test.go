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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/axis/scale"
)

func TestSelectTicks(t *testing.T) {
	lin := scale.NewLinear(-10, 10, 0, 100)
	band := scale.NewBand([]string{"", "x", "y"}, 0, 90)

	cases := []struct {
		name     string
		got      any
		expected any
	}{
		{"generator", SelectTicks[float64](lin, nil, 2, false), []float64{-10, 0, 10}},
		{"hide zero", SelectTicks[float64](lin, nil, 2, true), []float64{-10, 10}},
		{"explicit", SelectTicks[float64](lin, []float64{3, 1, 2}, 2, false), []float64{3, 1, 2}},
		{"explicit hide zero", SelectTicks[float64](lin, []float64{0, 1}, 0, true), []float64{1}},
		{"explicit empty", SelectTicks[float64](lin, []float64{}, 0, false), []float64{}},
		{"domain", SelectTicks[string](band, nil, 0, false), []string{"", "x", "y"}},
		{"domain hide zero", SelectTicks[string](band, nil, 0, true), []string{"x", "y"}},
	}
	for _, c := range cases {
		if d := cmp.Diff(c.expected, c.got); d != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", c.name, d)
		}
	}
}

func TestSelectTicksDoesNotAlias(t *testing.T) {
	values := []float64{1, 2, 3}
	res := SelectTicks[float64](scale.NewLinear(0, 1, 0, 1), values, 0, false)
	res[0] = 99
	if values[0] != 1 {
		t.Error("result aliases the explicit tick values")
	}
}

func TestLabelFunc(t *testing.T) {
	lin := scale.NewLinear(0, 1, 0, 100)
	if got := LabelFunc[float64](lin, nil, 10)(0.5); got != "0.5" {
		t.Errorf("scale format: got %q", got)
	}
	if got := LabelFunc[float64](lin, Comma(0), 10)(12345); got != "12,345" {
		t.Errorf("explicit format: got %q", got)
	}
	band := scale.NewBand([]int{1, 2}, 0, 1)
	if got := LabelFunc[int](band, nil, 0)(2); got != "2" {
		t.Errorf("fallback format: got %q", got)
	}
}

func TestFormats(t *testing.T) {
	cases := []struct {
		f    func(float64) string
		in   float64
		want string
	}{
		{SI(1, ""), 1500, "1.5 k"},
		{SI(1, ""), 0, "0"},
		{SI(0, "B"), 2e6, "2 MB"},
		{Comma(0), 1234567, "1,234,567"},
		{Comma(1), 1234.56, "1,234.6"},
		{Comma(2), 0, "0"},
		{SI(0, ""), 1999, "2 k"},
		{SI(1, ""), 999960, "1 M"},
		{SI(1, "V"), -999960, "-1 MV"},
		{SI(2, ""), 0.0123, "12.3 m"},
		{Comma(0), 999.9, "1,000"},
		{Comma(1), 0.96, "1"},
		{Comma(1), 0.94, "0.9"},
		{Comma(0), -0.2, "0"},
	}
	for _, c := range cases {
		if got := c.f(c.in); got != c.want {
			t.Errorf("format(%g) = %q, want %q", c.in, got, c.want)
		}
	}
}
