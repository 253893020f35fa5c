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
	"errors"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/axis/scale"
)

func TestBaseline(t *testing.T) {
	cases := []struct {
		o     Orientation
		outer float64
		want  string
	}{
		{Left, 6, "M-6,0.5H0.5V100.5H-6"},
		{Right, 6, "M6,0.5H0.5V100.5H6"},
		{Top, 6, "M0.5,-6V0.5H100.5V-6"},
		{Bottom, 6, "M0.5,6V0.5H100.5V6"},
		{Left, 0, "M0.5,0.5V100.5"},
		{Right, 0, "M0.5,0.5V100.5"},
		{Top, 0, "M0.5,0.5H100.5"},
		{Bottom, 0, "M0.5,0.5H100.5"},
	}
	for _, c := range cases {
		p := Baseline(c.o, c.outer, 0.5, 0+0.5, 100+0.5)
		if got := SVGPath(p); got != c.want {
			t.Errorf("%s, outer=%g: got %q, want %q", c.o, c.outer, got, c.want)
		}
	}
}

func TestBaselineViaRender(t *testing.T) {
	for _, o := range []Orientation{Top, Right, Bottom, Left} {
		a := New[float64](o)
		f := a.Render(scale.NewLinear(0, 1, 0, 100), nil)
		want := SVGPath(Baseline(o, 6, 0.5, 0.5, 100.5))
		if got := SVGPath(f.Baseline); got != want {
			t.Errorf("%s: got %q, want %q", o, got, want)
		}
	}
}

func TestSVGPath(t *testing.T) {
	var p path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		segs := []struct {
			cmd path.Command
			pts []vec.Vec2
		}{
			{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
			{path.CmdLineTo, []vec.Vec2{{X: 10, Y: 5}}},
			{path.CmdQuadTo, []vec.Vec2{{X: 10, Y: 0}, {X: 0, Y: 0}}},
			{path.CmdCubeTo, []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: -0.25, Y: 3}}},
			{path.CmdClose, nil},
		}
		for _, s := range segs {
			if !yield(s.cmd, s.pts) {
				return
			}
		}
	}
	want := "M0,0L10,5Q10,0 0,0C1,1 2,2 -0.25,3Z"
	if got := SVGPath(p); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := SVGPath(nil); got != "" {
		t.Errorf("nil path gave %q", got)
	}
}

func TestPolylineStops(t *testing.T) {
	n := 0
	for range Baseline(Bottom, 6, 0.5, 0.5, 100.5) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d segments, want 2", n)
	}
}

func TestOrientation(t *testing.T) {
	cases := []struct {
		o          Orientation
		sign       float64
		horizontal bool
		anchor     TextAnchor
		baseline   TextBaseline
	}{
		{Top, -1, true, AnchorMiddle, BaselineAlphabetic},
		{Right, 1, false, AnchorStart, BaselineCentral},
		{Bottom, 1, true, AnchorMiddle, BaselineHanging},
		{Left, -1, false, AnchorEnd, BaselineCentral},
	}
	for _, c := range cases {
		if c.o.Sign() != c.sign || c.o.Horizontal() != c.horizontal ||
			c.o.Anchor() != c.anchor || c.o.Baseline() != c.baseline {
			t.Errorf("%s: unexpected properties", c.o)
		}

		parsed, err := ParseOrientation(" " + c.o.String() + " ")
		if err != nil || parsed != c.o {
			t.Errorf("ParseOrientation(%q) = %v, %v", c.o.String(), parsed, err)
		}

		text, err := c.o.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Orientation
		if err := back.UnmarshalText(text); err != nil || back != c.o {
			t.Errorf("round trip of %s gave %v, %v", c.o, back, err)
		}
	}

	if _, err := ParseOrientation("diagonal"); !errors.Is(err, ErrOrientation) {
		t.Errorf("unexpected error %v", err)
	}
	if Orientation(0).Valid() {
		t.Error("zero orientation is valid")
	}
	if _, err := Orientation(0).MarshalText(); !errors.Is(err, ErrOrientation) {
		t.Errorf("unexpected error %v", err)
	}
}
