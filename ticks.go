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
	"fmt"
	"slices"

	"seehuhn.de/go/axis/scale"
)

// SelectTicks returns the domain values which get a tick.
//
// If values is non-nil, it is used verbatim (a copy is returned).
// Otherwise, if the scale implements [scale.Ticker], its tick generator
// is called with count.  Scales without a tick generator contribute
// their whole domain.  If hideZero is set, values equal to the zero
// value of T are removed from the result.
func SelectTicks[T comparable](s scale.Scale[T], values []T, count int, hideZero bool) []T {
	var res []T
	switch {
	case values != nil:
		res = slices.Clone(values)
	case s == nil:
		return nil
	default:
		if ticker, ok := s.(scale.Ticker[T]); ok {
			res = ticker.Ticks(count)
		} else {
			res = s.Domain()
		}
	}

	if hideZero {
		var zero T
		res = slices.DeleteFunc(res, func(v T) bool { return v == zero })
	}
	return res
}

// LabelFunc returns the function used to label ticks.  An explicit
// format takes precedence, followed by the format suggested by the
// scale.  As a last resort, values are printed using fmt.Sprint.
func LabelFunc[T comparable](s scale.Scale[T], format func(T) string, count int) func(T) string {
	if format != nil {
		return format
	}
	if f, ok := s.(scale.Formatter[T]); ok {
		if ff := f.TickFormat(count); ff != nil {
			return ff
		}
	}
	return func(v T) string { return fmt.Sprint(v) }
}
