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

package scale

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinearMap(t *testing.T) {
	s := NewLinear(0, 100, 0, 200)
	for _, v := range []float64{0, 50, 100} {
		if got, want := s.Map(v), 2*v; got != want {
			t.Errorf("Map(%g) = %g, want %g", v, got, want)
		}
	}
	if got := s.Invert(100); got != 50 {
		t.Errorf("Invert(100) = %g, want 50", got)
	}

	s.SetClamp(true)
	if got := s.Map(150); got != 200 {
		t.Errorf("clamped Map(150) = %g, want 200", got)
	}
}

func TestLinearDegenerateDomain(t *testing.T) {
	s := NewLinear(5, 5, 0, 100)
	if got := s.Map(5); got != 50 {
		t.Errorf("Map(5) = %g, want 50", got)
	}
	if got := s.Ticks(10); !cmp.Equal(got, []float64{5}) {
		t.Errorf("Ticks = %v, want [5]", got)
	}
}

func TestLinearNoRange(t *testing.T) {
	s := NewLinear(0, 1, 0, 1).ClearRange()
	if r := s.Range(); r != nil {
		t.Errorf("Range() = %v, want nil", r)
	}
	if v := s.Map(0.5); !math.IsNaN(v) {
		t.Errorf("Map without range = %g, want NaN", v)
	}
}

func TestLinearTicks(t *testing.T) {
	cases := []struct {
		d0, d1 float64
		count  int
		want   []float64
	}{
		{0, 100, 10, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
		{0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{0, 1, 10, []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}},
		{-10, 10, 2, []float64{-10, 0, 10}},
		{1, 0, 5, []float64{1, 0.8, 0.6, 0.4, 0.2, 0}},
		{0.5, 9.5, 5, []float64{2, 4, 6, 8}},
		{0, 100, 0, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
	}
	for _, c := range cases {
		got := NewLinear(c.d0, c.d1, 0, 1).Ticks(c.count)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("Ticks([%g, %g], %d) mismatch (-want +got):\n%s", c.d0, c.d1, c.count, d)
		}
	}
}

func TestLinearTickFormat(t *testing.T) {
	cases := []struct {
		d0, d1 float64
		count  int
		in     float64
		want   string
	}{
		{0, 100, 10, 50, "50"},
		{0, 1, 10, 0.5, "0.5"},
		{0, 0.01, 10, 0.005, "0.005"},
		{-1, 1, 10, -0.0000001, "0.0"},
		{0, 1, 5, 0.2, "0.2"},
		{0, 5000, 10, 1000, "1,000"},
		{0, 2e6, 10, 1.2e6, "1,200,000"},
		{-5000, 0, 10, -2500, "-2,500"},
		{0, 2000, 10, 1234.6, "1,235"},
		{1000, 1001, 10, 1000.5, "1,000.5"},
		{0, 0.5, 10, 0.5, "0.50"},
	}
	for _, c := range cases {
		f := NewLinear(c.d0, c.d1, 0, 1).TickFormat(c.count)
		if got := f(c.in); got != c.want {
			t.Errorf("TickFormat([%g, %g], %d)(%g) = %q, want %q",
				c.d0, c.d1, c.count, c.in, got, c.want)
		}
	}
}

func TestLinearNice(t *testing.T) {
	s := NewLinear(0.3, 9.7, 0, 1).Nice(10)
	if d := cmp.Diff([]float64{0, 10}, s.Domain()); d != "" {
		t.Errorf("Nice domain mismatch (-want +got):\n%s", d)
	}
}

func TestLinearCopy(t *testing.T) {
	s := NewLinear(0, 10, 0, 100)
	c := s.Copy()
	s.SetDomain(0, 20)
	if got := c.Map(10); got != 100 {
		t.Errorf("copy changed with original: Map(10) = %g", got)
	}
}

func TestLog(t *testing.T) {
	s := NewLog(1, 100, 0, 200)
	approx := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff([]float64{0, 100, 200}, []float64{s.Map(1), s.Map(10), s.Map(100)}, approx); d != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", d)
	}
	for _, v := range []float64{0, -1} {
		if got := s.Map(v); !math.IsNaN(got) {
			t.Errorf("Map(%g) = %g, want NaN", v, got)
		}
	}

	want := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	if d := cmp.Diff(want, s.Ticks(10), approx); d != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", d)
	}

	wide := NewLog(1, 1e12, 0, 100)
	for _, v := range wide.Ticks(5) {
		l := math.Log10(v)
		if math.Abs(l-math.Round(l)) > 1e-9 {
			t.Errorf("wide domain tick %g is not a power of 10", v)
		}
	}
}

func TestLogTicksInsideDomain(t *testing.T) {
	cases := []struct {
		d0, d1 float64
		count  int
		first  float64
		last   float64
		n      int
	}{
		{2, 5e9, 10, 2, 5e9, 85},
		{2, 5e9, 5, 1e2, 1e8, 4},
		{5e9, 2, 5, 1e8, 1e2, 4},
		{0.1, 1, 10, 0.1, 1, 10},
	}
	for _, c := range cases {
		ticks := NewLog(c.d0, c.d1, 0, 100).Ticks(c.count)
		if len(ticks) != c.n {
			t.Errorf("[%g, %g] count %d: got %d ticks, want %d", c.d0, c.d1, c.count, len(ticks), c.n)
			continue
		}
		if ticks[0] != c.first || ticks[len(ticks)-1] != c.last {
			t.Errorf("[%g, %g] count %d: ticks from %g to %g, want %g to %g",
				c.d0, c.d1, c.count, ticks[0], ticks[len(ticks)-1], c.first, c.last)
		}
		lo, hi := min(c.d0, c.d1), max(c.d0, c.d1)
		for _, v := range ticks {
			if v < lo || v > hi {
				t.Errorf("[%g, %g] count %d: tick %g outside the domain", c.d0, c.d1, c.count, v)
			}
		}
	}
}

func TestLogTicksNegativeDecade(t *testing.T) {
	want := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1}
	if d := cmp.Diff(want, NewLog(0.1, 1, 0, 100).Ticks(10)); d != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", d)
	}
	want = []float64{0.002, 0.003, 0.004, 0.005}
	if d := cmp.Diff(want, NewLog(0.002, 0.005, 0, 100).Ticks(5)); d != "" {
		t.Errorf("Ticks mismatch (-want +got):\n%s", d)
	}
}

func TestLogTickFormat(t *testing.T) {
	f := NewLog(1, 1000, 0, 100).TickFormat(10)
	cases := map[float64]string{
		1:    "1",
		10:   "10",
		1000: "1k",
		0:    "",
	}
	for in, want := range cases {
		if got := f(in); got != want {
			t.Errorf("format(%g) = %q, want %q", in, got, want)
		}
	}
}

func TestBand(t *testing.T) {
	s := NewBand([]string{"a", "b", "c"}, 0, 90)
	if bw := s.Bandwidth(); bw != 30 {
		t.Errorf("Bandwidth() = %g, want 30", bw)
	}
	got := []float64{s.Map("a"), s.Map("b"), s.Map("c")}
	if d := cmp.Diff([]float64{0, 30, 60}, got); d != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", d)
	}
	if v := s.Map("z"); !math.IsNaN(v) {
		t.Errorf("Map(unknown) = %g, want NaN", v)
	}
}

func TestBandReverse(t *testing.T) {
	s := NewBand([]string{"a", "b", "c"}, 90, 0)
	got := []float64{s.Map("a"), s.Map("b"), s.Map("c")}
	if d := cmp.Diff([]float64{60, 30, 0}, got); d != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", d)
	}
}

func TestBandPadding(t *testing.T) {
	s := NewBand([]string{"a", "b"}, 0, 100).SetPaddingInner(0.5).SetPaddingOuter(0.25)
	// n - pi + 2*po = 2 - 0.5 + 0.5 = 2 steps
	if s.Step() != 50 {
		t.Errorf("Step() = %g, want 50", s.Step())
	}
	if s.Bandwidth() != 25 {
		t.Errorf("Bandwidth() = %g, want 25", s.Bandwidth())
	}
	if got := s.Map("a"); got != 12.5 {
		t.Errorf("Map(a) = %g, want 12.5", got)
	}
}

func TestBandRound(t *testing.T) {
	s := NewBand([]int{1, 2, 3}, 0, 100).SetRound(true)
	if s.Step() != 33 {
		t.Errorf("Step() = %g, want 33", s.Step())
	}
	if got := s.Map(1); got != math.Round(got) {
		t.Errorf("Map(1) = %g, want integer", got)
	}
	if !s.Round() {
		t.Error("Round() = false")
	}
}

func TestBandDuplicatesAndCopy(t *testing.T) {
	s := NewBand([]string{"a", "b", "a"}, 0, 100)
	if d := cmp.Diff([]string{"a", "b"}, s.Domain()); d != "" {
		t.Errorf("Domain mismatch (-want +got):\n%s", d)
	}

	c := s.Copy()
	s.SetDomain([]string{"x"})
	if got := c.Map("b"); got != 50 {
		t.Errorf("copy changed with original: Map(b) = %g", got)
	}
}
