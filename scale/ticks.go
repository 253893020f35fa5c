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
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns integer bounds i1, i2 and an increment inc for
// nicely rounded ticks inside [start, stop], where start <= stop.
// For inc > 0 the ticks are k*inc, for inc < 0 they are k/-inc,
// for k = i1, ..., i2.  Dividing by an integer avoids the rounding
// errors of multiplying by a fractional step.
func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = roundHalfUp(start * inc)
		i2 = roundHalfUp(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = roundHalfUp(start / inc)
		i2 = roundHalfUp(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}

	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// linearTicks returns approximately count nicely rounded values
// between start and stop (inclusive).  The order of the result follows
// the order of start and stop.
// The count need not be an integer.
func linearTicks(start, stop, count float64) []float64 {
	if !(count > 0) || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}

	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, count)
	if !(i2 >= i1) || math.IsInf(inc, 0) || inc == 0 {
		return nil
	}

	n := int(i2 - i1 + 1)
	ticks := make([]float64, n)
	for i := range n {
		k := i1 + float64(i)
		if reverse {
			k = i2 - float64(i)
		}
		if inc < 0 {
			ticks[i] = k / -inc
		} else {
			ticks[i] = k * inc
		}
	}
	return ticks
}

// tickStep returns the distance between adjacent ticks produced by
// linearTicks.  The result is negative if stop < start.
func tickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	_, _, inc := tickSpec(start, stop, float64(count))
	step := inc
	if inc < 0 {
		step = 1 / -inc
	}
	if reverse {
		step = -step
	}
	return step
}

// precisionFixed returns the number of digits after the decimal point
// required to distinguish values which are step apart.
func precisionFixed(step float64) int {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0
	}
	return max(0, -exponent(step))
}

// exponent returns the decimal exponent of x in scientific notation.
func exponent(x float64) int {
	s := strconv.FormatFloat(math.Abs(x), 'e', -1, 64)
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return 0
	}
	e, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0
	}
	return e
}

// formatFixed formats x with prec digits after the decimal point and
// groups the integer part into thousands, e.g. "12,345.60".
// Negative zero is printed without a sign.
func formatFixed(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'f', prec, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
		if strings.Trim(s, "0.") == "" {
			neg = false
		}
	}

	intPart, frac, hasFrac := strings.Cut(s, ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		s = humanize.Comma(n)
		if hasFrac {
			s += "." + frac
		}
	}
	if neg {
		s = "-" + s
	}
	return s
}

func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
