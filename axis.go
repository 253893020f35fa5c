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

// Package axis computes animated chart axes.
//
// For every change of a scale or of the axis configuration, [Axis.Render]
// decides which ticks exist, where they are placed, and how the ticks
// of the new frame relate to the ticks of the previous frame.  Ticks are
// identified by their pixel position, so that ticks of a rescaled axis
// slide into place instead of being replaced.
//
// The package does not animate anything itself.  It emits start and end
// states for every tick, which an animation driver interpolates over
// time, and leaves drawing to the caller.  The state needed to connect
// consecutive frames is the [PositionMap] returned in [Frame.Next]; the
// caller passes it back into the next call to Render.  [Tracker] does
// this bookkeeping for callers which render from several goroutines.
package axis

//go:generate go run ./testcases/export

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/axis/scale"
)

// Default values for the axis configuration.
const (
	DefaultTickSize    = 6
	DefaultTickPadding = 3
)

// DefaultOffset returns the rendering offset for a display with the
// given number of device pixels per pixel.  On low density displays,
// lines are shifted by half a pixel so that one pixel wide lines cover
// exactly one pixel row or column.
func DefaultOffset(pixelRatio float64) float64 {
	if pixelRatio > 1 {
		return 0
	}
	return 0.5
}

// Axis holds the configuration of an axis.
// The zero value is not useful; use [New] to get default values.
type Axis[T comparable] struct {
	// Orientation determines on which side of the plot area the axis is
	// drawn.
	Orientation Orientation

	// TickValues, if non-nil, overrides the tick values suggested by the
	// scale.  The order of the values is preserved.
	TickValues []T

	// TickCount is passed to the tick generator of the scale.
	// Zero selects the generator's default.
	TickCount int

	// TickFormat, if non-nil, is used to label the ticks.  Otherwise the
	// format suggested by the scale is used.
	TickFormat func(T) string

	// TickSizeInner is the length of the tick marks.
	TickSizeInner float64

	// TickSizeOuter is the length of the end caps of the baseline.
	// Zero gives a straight baseline.
	TickSizeOuter float64

	// TickPadding is the distance between tick marks and labels.
	TickPadding float64

	// Offset is added to all coordinates to keep thin lines crisp.
	// See [DefaultOffset].
	Offset float64

	// HideZero removes the tick for the zero value.
	HideZero bool

	// Animated selects whether the frame describes a transition from the
	// previous frame.  If false, all ticks are placed at their final
	// position immediately and exiting ticks are omitted.
	Animated bool
}

// New returns an axis with default settings for the given orientation.
func New[T comparable](o Orientation) *Axis[T] {
	return &Axis[T]{
		Orientation:   o,
		TickSizeInner: DefaultTickSize,
		TickSizeOuter: DefaultTickSize,
		TickPadding:   DefaultTickPadding,
		Offset:        DefaultOffset(1),
		Animated:      true,
	}
}

// SetTickSize sets both the inner and the outer tick size.
func (a *Axis[T]) SetTickSize(size float64) *Axis[T] {
	a.TickSizeInner = size
	a.TickSizeOuter = size
	return a
}

// Frame is the render description of an axis for one set of inputs.
type Frame[T comparable] struct {
	Orientation Orientation
	Offset      float64

	// Ticks lists all ticks which are visible at some point during the
	// transition into this frame: entering and persisting ticks in tick
	// order, followed by exiting ticks.
	Ticks []Transition[T]

	// Diff contains the same ticks as Ticks, partitioned by phase.
	Diff Diff[T]

	// Baseline is the domain line of the axis, or nil if the frame is
	// empty.
	Baseline path.Path

	// Tick is the geometry shared by all ticks.
	Tick TickGeometry

	// Range is the range of the scale, shifted by the offset.
	Range [2]float64

	// Next must be passed to the next call of [Axis.Render].
	Next *PositionMap[T]
}

// Empty reports whether the frame has no baseline.  This happens if the
// scale has no usable range.
func (f *Frame[T]) Empty() bool {
	return f.Baseline == nil
}

// Transform returns the translation which moves the tick geometry to
// the position given by s.
func (f *Frame[T]) Transform(s State) matrix.Matrix {
	return matrix.Translate(f.Orientation.point(s.Position, 0))
}

// BBox returns the bounding box of the baseline and of all tick marks
// at their end positions.  Tick labels are not included.
func (f *Frame[T]) BBox() rect.Rect {
	if f.Empty() {
		return rect.Rect{}
	}

	bbox := f.Baseline.BBox()
	for _, t := range f.Ticks {
		if t.Phase == Exit || t.End.Hold || f.Tick.Line == nil {
			continue
		}
		for _, pts := range f.Tick.Line.Transform(f.Transform(t.End)) {
			for _, p := range pts {
				bbox.Add(p.X, p.Y)
			}
		}
	}
	return bbox
}

// Render computes the frame for the scale s.  The argument prev is the
// [Frame.Next] value of the previous frame, or nil for the first frame.
//
// The scale is copied before use, so that concurrent modifications of s
// do not affect the result.  If the scale has no usable range, the
// result is an empty frame and prev is passed through unchanged.
func (a *Axis[T]) Render(s scale.Scale[T], prev *PositionMap[T]) *Frame[T] {
	f := &Frame[T]{
		Orientation: a.Orientation,
		Offset:      a.Offset,
		Next:        prev,
	}
	if s == nil || !a.Orientation.Valid() {
		return f
	}
	sc := s.Copy()
	if sc == nil {
		return f
	}
	r := sc.Range()
	if len(r) < 2 || !isFinite(r[0]) || !isFinite(r[len(r)-1]) {
		return f
	}

	values := SelectTicks(sc, a.TickValues, a.TickCount, a.HideZero)
	label := LabelFunc(sc, a.TickFormat, a.TickCount)
	position := Position(sc, a.Offset)

	ticks := make([]TickDatum[T], len(values))
	for i, v := range values {
		ticks[i] = TickDatum[T]{
			Value: v,
			Label: label(v),
			Key:   position(v),
		}
	}

	f.Diff = Reconcile(ticks, prev, position, a.Offset, a.Animated)
	f.Ticks = f.Diff.All()

	f.Range = [2]float64{r[0] + a.Offset, r[len(r)-1] + a.Offset}
	f.Baseline = Baseline(a.Orientation, a.TickSizeOuter, a.Offset, f.Range[0], f.Range[1])
	f.Tick = tickGeometry(a.Orientation, a.TickSizeInner, a.TickPadding)
	f.Next = NewPositionMap(ticks, position, a.Offset)
	return f
}
