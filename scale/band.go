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
	"maps"
	"math"
	"slices"
)

// Band is a discrete scale which divides its range into uniform bands,
// one per domain value.
type Band[T comparable] struct {
	domain []T
	index  map[T]int

	r0, r1   float64
	hasRange bool

	paddingInner float64
	paddingOuter float64
	align        float64
	round        bool

	// derived by rescale
	step      float64
	bandwidth float64
	starts    []float64
}

// NewBand returns a band scale with the given categories and range.
// Duplicate categories are ignored.  Padding is zero and the bands are
// centred within the range.
func NewBand[T comparable](domain []T, r0, r1 float64) *Band[T] {
	s := &Band[T]{
		r0:       r0,
		r1:       r1,
		hasRange: true,
		align:    0.5,
	}
	s.SetDomain(domain)
	return s
}

// SetDomain replaces the list of categories.
func (s *Band[T]) SetDomain(domain []T) *Band[T] {
	s.domain = s.domain[:0]
	s.index = make(map[T]int, len(domain))
	for _, v := range domain {
		if _, seen := s.index[v]; seen {
			continue
		}
		s.index[v] = len(s.domain)
		s.domain = append(s.domain, v)
	}
	s.rescale()
	return s
}

// SetRange changes the range end points.
func (s *Band[T]) SetRange(r0, r1 float64) *Band[T] {
	s.r0, s.r1 = r0, r1
	s.hasRange = true
	s.rescale()
	return s
}

// ClearRange removes the range.
func (s *Band[T]) ClearRange() *Band[T] {
	s.hasRange = false
	s.rescale()
	return s
}

// SetPadding sets both the inner and the outer padding.
func (s *Band[T]) SetPadding(p float64) *Band[T] {
	s.paddingInner = min(1, p)
	s.paddingOuter = p
	s.rescale()
	return s
}

// SetPaddingInner sets the fraction of the step reserved for gaps
// between adjacent bands.  The value is clamped to [0, 1].
func (s *Band[T]) SetPaddingInner(p float64) *Band[T] {
	s.paddingInner = min(1, max(0, p))
	s.rescale()
	return s
}

// SetPaddingOuter sets the space before the first and after the last
// band, in multiples of the step.
func (s *Band[T]) SetPaddingOuter(p float64) *Band[T] {
	s.paddingOuter = max(0, p)
	s.rescale()
	return s
}

// SetAlign sets how the outer padding is distributed: 0 puts all the
// space after the last band, 1 before the first band.
func (s *Band[T]) SetAlign(a float64) *Band[T] {
	s.align = min(1, max(0, a))
	s.rescale()
	return s
}

// SetRound enables rounding of band starts and widths to integers.
func (s *Band[T]) SetRound(round bool) *Band[T] {
	s.round = round
	s.rescale()
	return s
}

func (s *Band[T]) rescale() {
	s.starts = s.starts[:0]
	s.step, s.bandwidth = 0, 0
	if !s.hasRange {
		return
	}

	n := float64(len(s.domain))
	start, stop := s.r0, s.r1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	step := (stop - start) / max(1, n-s.paddingInner+2*s.paddingOuter)
	if s.round {
		step = math.Floor(step)
	}
	start += (stop - start - step*(n-s.paddingInner)) * s.align
	bandwidth := step * (1 - s.paddingInner)
	if s.round {
		start = math.Round(start)
		bandwidth = math.Round(bandwidth)
	}

	for i := range len(s.domain) {
		s.starts = append(s.starts, start+step*float64(i))
	}
	if reverse {
		slices.Reverse(s.starts)
	}
	s.step = step
	s.bandwidth = bandwidth
}

// Map implements the [Scale] interface.  The result is the start of
// the band of v, or NaN if v is not part of the domain.
func (s *Band[T]) Map(v T) float64 {
	i, ok := s.index[v]
	if !ok || !s.hasRange {
		return math.NaN()
	}
	return s.starts[i]
}

// Domain implements the [Scale] interface.
func (s *Band[T]) Domain() []T {
	return slices.Clone(s.domain)
}

// Range implements the [Scale] interface.
func (s *Band[T]) Range() []float64 {
	if !s.hasRange {
		return nil
	}
	return []float64{s.r0, s.r1}
}

// Copy implements the [Scale] interface.
func (s *Band[T]) Copy() Scale[T] {
	c := *s
	c.domain = slices.Clone(s.domain)
	c.starts = slices.Clone(s.starts)
	c.index = maps.Clone(s.index)
	return &c
}

// Bandwidth implements the [Banded] interface.
func (s *Band[T]) Bandwidth() float64 {
	return s.bandwidth
}

// Step returns the distance between the starts of adjacent bands.
func (s *Band[T]) Step() float64 {
	return s.step
}

// Round implements the [Banded] interface.
func (s *Band[T]) Round() bool {
	return s.round
}
