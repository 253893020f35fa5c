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

// Package scale implements the coordinate scales consumed by the axis
// renderer.
//
// A scale maps values from a domain to pixel coordinates.  The axis
// package only relies on the [Scale] interface; the optional interfaces
// [Ticker], [Formatter] and [Banded] are discovered by type assertion.
//
// Values which a scale cannot map (for example non-positive values on a
// logarithmic scale, or unknown categories on a band scale) map to NaN.
package scale

// Scale maps domain values of type T to pixel coordinates.
type Scale[T comparable] interface {
	// Map returns the pixel coordinate of v.
	Map(v T) float64

	// Domain returns the domain of the scale.  For continuous scales
	// this is the pair of domain end points, for discrete scales the
	// ordered list of categories.
	Domain() []T

	// Range returns the pixel interval covered by the scale.
	// A nil slice or a slice with fewer than two elements means that
	// the scale currently has no usable range.
	Range() []float64

	// Copy returns an independent copy of the scale.  Changes to the
	// receiver after the call are not visible through the copy.
	Copy() Scale[T]
}

// Ticker is implemented by scales which can suggest tick values.
type Ticker[T comparable] interface {
	// Ticks returns approximately count representative values from the
	// domain, in increasing order.  If count is zero, a default of 10
	// is used.
	Ticks(count int) []T
}

// Formatter is implemented by scales which provide a label format
// matching their tick values.
type Formatter[T comparable] interface {
	TickFormat(count int) func(T) string
}

// Banded is implemented by discrete scales which partition their range
// into bands of equal width.
type Banded interface {
	Bandwidth() float64
	Round() bool
}

// DefaultTickCount is the number of ticks requested when the caller
// does not specify a count.
const DefaultTickCount = 10
