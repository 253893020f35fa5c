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
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// SI returns a tick label format which uses SI prefixes, for example
// "1.5 k" for 1500.  Values are rounded to at most digits decimal
// places.
func SI(digits int, unit string) func(float64) string {
	return func(v float64) string {
		m, prefix := humanize.ComputeSI(v)
		r := roundDigits(m, digits)
		if math.Abs(r) >= 1000 {
			// rounding carried over into the next prefix
			_, prefix = humanize.ComputeSI(math.Copysign(1001, m) * (v / m))
			r = math.Copysign(1, m)
		}
		return strings.TrimSpace(humanize.FtoaWithDigits(r, digits) + " " + prefix + unit)
	}
}

// Comma returns a tick label format which groups the integer part
// into thousands, for example "12,345.5".  Values are rounded to at
// most digits decimal places.
func Comma(digits int) func(float64) string {
	return func(v float64) string {
		r := roundDigits(v, digits)
		if r == 0 {
			return "0"
		}
		return humanize.CommafWithDigits(r, digits)
	}
}

func roundDigits(v float64, digits int) float64 {
	p := math.Pow10(max(digits, 0))
	return math.Round(v*p) / p
}
