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
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Log is a continuous scale with a logarithmic mapping.  The domain
// must be strictly positive; non-positive values map to NaN.
type Log struct {
	base     float64
	d0, d1   float64
	r0, r1   float64
	hasRange bool
}

// NewLog returns a base-10 logarithmic scale mapping [d0, d1] onto
// [r0, r1].
func NewLog(d0, d1, r0, r1 float64) *Log {
	return &Log{base: 10, d0: d0, d1: d1, r0: r0, r1: r1, hasRange: true}
}

// SetBase changes the logarithm base.  Bases <= 1 are ignored.
func (s *Log) SetBase(base float64) *Log {
	if base > 1 {
		s.base = base
	}
	return s
}

// SetDomain changes the domain end points.
func (s *Log) SetDomain(d0, d1 float64) *Log {
	s.d0, s.d1 = d0, d1
	return s
}

// SetRange changes the range end points.
func (s *Log) SetRange(r0, r1 float64) *Log {
	s.r0, s.r1 = r0, r1
	s.hasRange = true
	return s
}

// ClearRange removes the range.
func (s *Log) ClearRange() *Log {
	s.hasRange = false
	return s
}

func (s *Log) log(x float64) float64 {
	if s.base == 10 {
		return math.Log10(x)
	}
	return math.Log(x) / math.Log(s.base)
}

func (s *Log) pow(x float64) float64 {
	if s.base == 10 && x == math.Trunc(x) && math.Abs(x) < 300 {
		return math.Pow10(int(x))
	}
	return math.Pow(s.base, x)
}

// Map implements the [Scale] interface.
func (s *Log) Map(v float64) float64 {
	if !s.hasRange || !(v > 0) || !(s.d0 > 0) || !(s.d1 > 0) {
		return math.NaN()
	}
	l0 := s.log(s.d0)
	d := s.log(s.d1) - l0
	t := 0.5
	if d != 0 {
		t = (s.log(v) - l0) / d
	}
	return s.r0 + t*(s.r1-s.r0)
}

// Domain implements the [Scale] interface.
func (s *Log) Domain() []float64 {
	return []float64{s.d0, s.d1}
}

// Range implements the [Scale] interface.
func (s *Log) Range() []float64 {
	if !s.hasRange {
		return nil
	}
	return []float64{s.r0, s.r1}
}

// Copy implements the [Scale] interface.
func (s *Log) Copy() Scale[float64] {
	c := *s
	return &c
}

// Ticks implements the [Ticker] interface.  If the domain spans fewer
// than count powers of the base, the ticks are the multiples m·base^k
// for m = 1, ..., base-1.  Otherwise only (a subset of) the powers of
// the base are returned.  All ticks lie inside the domain.
func (s *Log) Ticks(count int) []float64 {
	if count == 0 {
		count = DefaultTickCount
	}
	u, v := s.d0, s.d1
	reverse := v < u
	if reverse {
		u, v = v, u
	}
	if !(u > 0) || math.IsInf(v, 0) {
		return nil
	}

	i, j := s.log(u), s.log(v)
	n := float64(count)
	var z []float64
	if s.base == math.Trunc(s.base) && j-i < n {
		for k := math.Floor(i); k <= math.Ceil(j); k++ {
			for m := 1.0; m < s.base; m++ {
				var t float64
				if k < 0 {
					t = m / s.pow(-k)
				} else {
					t = m * s.pow(k)
				}
				if t < u {
					continue
				}
				if t > v {
					break
				}
				z = append(z, t)
			}
		}
		if 2*float64(len(z)) < n {
			z = linearTicks(u, v, n)
		}
	} else {
		for _, e := range linearTicks(i, j, min(j-i, n)) {
			z = append(z, s.pow(e))
		}
	}

	if reverse {
		slices.Reverse(z)
	}
	return z
}

// TickFormat implements the [Formatter] interface.  Labels use SI
// prefixes.  When many ticks are generated, only the labels of ticks
// close to a power of the base are kept; the others are empty.
func (s *Log) TickFormat(count int) func(float64) string {
	if count == 0 {
		count = DefaultTickCount
	}
	n := len(s.Ticks(count))
	k := math.Inf(1)
	if n > 0 {
		k = max(1, s.base*float64(count)/float64(n))
	}
	return func(x float64) string {
		if !(x > 0) {
			return ""
		}
		i := x / s.pow(math.Round(s.log(x)))
		if i*s.base < s.base-0.5 {
			i *= s.base
		}
		if i > k {
			return ""
		}
		return formatSI(x)
	}
}

// formatSI formats x with an SI prefix and without a space, e.g. "10k".
func formatSI(x float64) string {
	v, prefix := humanize.ComputeSI(x)
	return strconv.FormatFloat(roundSignificant(v, 12), 'g', -1, 64) + prefix
}

// roundSignificant removes floating point noise from v, keeping the
// given number of significant digits.
func roundSignificant(v float64, digits int) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', digits, 64), 64)
	if err != nil {
		return v
	}
	return f
}
