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

import "math"

// Linear is a continuous scale with a linear mapping from a numeric
// domain interval to a pixel interval.
type Linear struct {
	d0, d1   float64
	r0, r1   float64
	hasRange bool
	clamp    bool
}

// NewLinear returns a linear scale mapping [d0, d1] onto [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) *Linear {
	return &Linear{d0: d0, d1: d1, r0: r0, r1: r1, hasRange: true}
}

// SetDomain changes the domain end points.
func (s *Linear) SetDomain(d0, d1 float64) *Linear {
	s.d0, s.d1 = d0, d1
	return s
}

// SetRange changes the range end points.
func (s *Linear) SetRange(r0, r1 float64) *Linear {
	s.r0, s.r1 = r0, r1
	s.hasRange = true
	return s
}

// ClearRange removes the range.  Until the next call to SetRange,
// [Linear.Range] returns nil and all values map to NaN.
func (s *Linear) ClearRange() *Linear {
	s.hasRange = false
	return s
}

// SetClamp enables or disables clamping of mapped values to the range.
func (s *Linear) SetClamp(clamp bool) *Linear {
	s.clamp = clamp
	return s
}

// Map implements the [Scale] interface.
// If the domain is degenerate, all values map to the middle of the range.
func (s *Linear) Map(v float64) float64 {
	if !s.hasRange {
		return math.NaN()
	}
	var t float64
	if d := s.d1 - s.d0; d != 0 {
		t = (v - s.d0) / d
	} else if math.IsNaN(d) {
		return math.NaN()
	} else {
		t = 0.5
	}
	if s.clamp {
		t = min(max(t, 0), 1)
	}
	return s.r0 + t*(s.r1-s.r0)
}

// Invert maps a pixel coordinate back to the domain.
func (s *Linear) Invert(x float64) float64 {
	if !s.hasRange || s.r1 == s.r0 {
		return math.NaN()
	}
	t := (x - s.r0) / (s.r1 - s.r0)
	if s.clamp {
		t = min(max(t, 0), 1)
	}
	return s.d0 + t*(s.d1-s.d0)
}

// Domain implements the [Scale] interface.
func (s *Linear) Domain() []float64 {
	return []float64{s.d0, s.d1}
}

// Range implements the [Scale] interface.
func (s *Linear) Range() []float64 {
	if !s.hasRange {
		return nil
	}
	return []float64{s.r0, s.r1}
}

// Copy implements the [Scale] interface.
func (s *Linear) Copy() Scale[float64] {
	c := *s
	return &c
}

// Ticks implements the [Ticker] interface.
func (s *Linear) Ticks(count int) []float64 {
	if count == 0 {
		count = DefaultTickCount
	}
	return linearTicks(s.d0, s.d1, float64(count))
}

// TickFormat implements the [Formatter] interface.  The labels use as
// many decimal digits as the tick spacing requires.
func (s *Linear) TickFormat(count int) func(float64) string {
	if count == 0 {
		count = DefaultTickCount
	}
	prec := precisionFixed(tickStep(s.d0, s.d1, count))
	return func(v float64) string {
		return formatFixed(v, prec)
	}
}

// Nice extends the domain so that it starts and ends on round values.
func (s *Linear) Nice(count int) *Linear {
	if count == 0 {
		count = DefaultTickCount
	}
	start, stop := s.d0, s.d1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	if !(stop > start) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return s
	}

	var prev float64
	for range 10 {
		step := tickStep(start, stop, count)
		if step == prev || step <= 0 || math.IsNaN(step) {
			break
		}
		start = math.Floor(start/step) * step
		stop = math.Ceil(stop/step) * step
		prev = step
	}

	if reverse {
		start, stop = stop, start
	}
	s.d0, s.d1 = start, stop
	return s
}
