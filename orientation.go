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
	"fmt"
	"strings"
)

// Orientation is the placement of an axis relative to the plot area.
type Orientation int

// These are the supported axis orientations.
const (
	Top Orientation = iota + 1
	Right
	Bottom
	Left
)

// ErrOrientation is returned when an orientation name is not recognised.
var ErrOrientation = errors.New("invalid axis orientation")

// TextAnchor describes the horizontal alignment of tick labels.
type TextAnchor int

// These are the text anchors used by the four orientations.
const (
	AnchorMiddle TextAnchor = iota
	AnchorStart
	AnchorEnd
)

func (a TextAnchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "middle"
	}
}

// TextBaseline describes the vertical alignment of tick labels.
type TextBaseline int

// These are the text baselines used by the four orientations.
const (
	// BaselineCentral centres the label vertically on the tick.
	BaselineCentral TextBaseline = iota
	// BaselineHanging aligns the top of the label with the anchor point.
	BaselineHanging
	// BaselineAlphabetic puts the label baseline on the anchor point.
	BaselineAlphabetic
)

func (b TextBaseline) String() string {
	switch b {
	case BaselineHanging:
		return "hanging"
	case BaselineAlphabetic:
		return "alphabetic"
	default:
		return "central"
	}
}

// orientationInfo collects everything which depends on the orientation.
type orientationInfo struct {
	name       string
	k          float64 // direction in which ticks and labels point
	horizontal bool    // ticks are distributed along the x axis
	anchor     TextAnchor
	baseline   TextBaseline
}

var orientations = [...]orientationInfo{
	Top:    {name: "top", k: -1, horizontal: true, anchor: AnchorMiddle, baseline: BaselineAlphabetic},
	Right:  {name: "right", k: +1, horizontal: false, anchor: AnchorStart, baseline: BaselineCentral},
	Bottom: {name: "bottom", k: +1, horizontal: true, anchor: AnchorMiddle, baseline: BaselineHanging},
	Left:   {name: "left", k: -1, horizontal: false, anchor: AnchorEnd, baseline: BaselineCentral},
}

func (o Orientation) info() orientationInfo {
	if o < Top || o > Left {
		return orientationInfo{name: fmt.Sprintf("Orientation(%d)", int(o)), k: +1, horizontal: true}
	}
	return orientations[o]
}

// Valid reports whether o is one of the four defined orientations.
func (o Orientation) Valid() bool {
	return o >= Top && o <= Left
}

func (o Orientation) String() string {
	return o.info().name
}

// Sign returns -1 for top and left axes and +1 for bottom and right
// axes.  Tick marks and labels extend in this direction away from the
// baseline.
func (o Orientation) Sign() float64 {
	return o.info().k
}

// Horizontal reports whether the ticks of the axis are positioned along
// the x axis.
func (o Orientation) Horizontal() bool {
	return o.info().horizontal
}

// Anchor returns the default text anchor for tick labels.
func (o Orientation) Anchor() TextAnchor {
	return o.info().anchor
}

// Baseline returns the default text baseline for tick labels.
func (o Orientation) Baseline() TextBaseline {
	return o.info().baseline
}

// point converts a position along the axis and a perpendicular
// displacement into x, y coordinates.
func (o Orientation) point(along, across float64) (x, y float64) {
	if o.Horizontal() {
		return along, across
	}
	return across, along
}

// ParseOrientation converts "top", "right", "bottom" or "left" (in any
// letter case) into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for o := Top; o <= Left; o++ {
		if orientations[o].name == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrOrientation)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%d: %w", int(o), ErrOrientation)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (o *Orientation) UnmarshalText(text []byte) error {
	v, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
