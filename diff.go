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
	"cmp"
	"math"
	"slices"
)

// Epsilon is the opacity used instead of 0 for ticks which are invisible
// at one end of a transition.  Some rasterisers produce artefacts for
// denormalised opacity values during interpolation.
const Epsilon = 1e-6

// TickDatum is a single tick of one rendered frame.
type TickDatum[T comparable] struct {
	Value T
	Label string

	// Key is the pixel position of the tick at the time it was rendered,
	// without the rendering offset.  Ticks of consecutive frames with
	// equal keys are considered to be the same tick.
	Key float64
}

// State is the visual state of a tick at one end of a transition.
type State struct {
	// Position is the tick coordinate along the axis, including the
	// rendering offset.
	Position float64

	Opacity float64

	// Hold indicates that no usable position could be computed.  The
	// renderer should keep the tick at its current position and only
	// animate the opacity.  Position then contains the last known
	// target position (possibly NaN).
	Hold bool
}

// Phase says how a tick participates in a transition.
type Phase int

// These are the possible phases of a tick.
const (
	Enter Phase = iota
	Update
	Exit
)

func (p Phase) String() string {
	switch p {
	case Enter:
		return "enter"
	case Update:
		return "update"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Transition describes how one tick moves from its start state to its
// end state.
type Transition[T comparable] struct {
	TickDatum[T]
	Phase      Phase
	Start, End State

	order int
}

// Diff is the result of matching the ticks of a new frame against the
// ticks of the previous frame.
type Diff[T comparable] struct {
	Entering   []Transition[T] // ticks which are new in this frame
	Persisting []Transition[T] // ticks present in both frames
	Exiting    []Transition[T] // ticks which disappear in this frame
}

// All returns all transitions.  Entering and persisting ticks come first,
// in the order of the current frame, followed by the exiting ticks in
// the order of the previous frame.
func (d Diff[T]) All() []Transition[T] {
	res := make([]Transition[T], 0, len(d.Entering)+len(d.Persisting)+len(d.Exiting))
	res = append(res, d.Entering...)
	res = append(res, d.Persisting...)
	slices.SortStableFunc(res, func(a, b Transition[T]) int {
		return cmp.Compare(a.order, b.order)
	})
	return append(res, d.Exiting...)
}

// PositionMap records the ticks of a rendered frame, keyed by pixel
// position, together with the position function used for the frame.
// It is the state which must be carried from one render to the next.
// A nil *PositionMap is valid and represents the state before the first
// render.
type PositionMap[T comparable] struct {
	ticks    []TickDatum[T]
	index    map[uint64]int
	position PositionFunc[T]
	offset   float64
}

// NewPositionMap records the given ticks.  If several ticks have the
// same key, the last one wins and keeps its place in the order.
func NewPositionMap[T comparable](ticks []TickDatum[T], position PositionFunc[T], offset float64) *PositionMap[T] {
	last := lastIndex(ticks)
	m := &PositionMap[T]{
		ticks:    make([]TickDatum[T], 0, len(last)),
		index:    make(map[uint64]int, len(last)),
		position: position,
		offset:   offset,
	}
	for i, t := range ticks {
		k := keyBits(t.Key)
		if last[k] != i {
			continue
		}
		m.index[k] = len(m.ticks)
		m.ticks = append(m.ticks, t)
	}
	return m
}

// lastIndex maps each key to the index of its last occurrence.
func lastIndex[T comparable](ticks []TickDatum[T]) map[uint64]int {
	last := make(map[uint64]int, len(ticks))
	for i, t := range ticks {
		last[keyBits(t.Key)] = i
	}
	return last
}

// Len returns the number of ticks in the map.
func (m *PositionMap[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.ticks)
}

// Lookup returns the tick with the given key.
func (m *PositionMap[T]) Lookup(key float64) (TickDatum[T], bool) {
	if m == nil {
		var zero TickDatum[T]
		return zero, false
	}
	i, ok := m.index[keyBits(key)]
	if !ok {
		var zero TickDatum[T]
		return zero, false
	}
	return m.ticks[i], true
}

// Ticks returns the recorded ticks in render order.
func (m *PositionMap[T]) Ticks() []TickDatum[T] {
	if m == nil {
		return nil
	}
	return slices.Clone(m.ticks)
}

// Position returns the position function of the recorded frame, or nil.
func (m *PositionMap[T]) Position() PositionFunc[T] {
	if m == nil {
		return nil
	}
	return m.position
}

// Reconcile matches the ticks of the current frame against the ticks of
// the previous frame and computes start and end states for all of them.
//
// Ticks are matched by key.  Entering ticks start where their value
// would have been placed by the previous frame's position function, so
// that they slide in together with the scale; if that position is not
// finite, they fade in at their new position.  Exiting ticks move to
// where the current position function places their value, or hold
// their last position if that is not finite.  If animated is false,
// all ticks jump to their end state and exiting ticks are dropped.
//
// If several current ticks have the same key, the last one wins.
func Reconcile[T comparable](current []TickDatum[T], prev *PositionMap[T], position PositionFunc[T], offset float64, animated bool) Diff[T] {
	last := lastIndex(current)

	var d Diff[T]
	for i, t := range current {
		if last[keyBits(t.Key)] != i {
			continue
		}

		end := State{Position: t.Key + offset, Opacity: 1}
		if !isFinite(t.Key) {
			end.Hold = true
		}

		old, persisting := prev.Lookup(t.Key)
		tr := Transition[T]{TickDatum: t, End: end, order: i}
		switch {
		case !animated:
			tr.Phase = Update
			if !persisting {
				tr.Phase = Enter
			}
			tr.Start = end
		case persisting:
			tr.Phase = Update
			tr.Start = State{Position: old.Key + prev.offset, Opacity: 1, Hold: end.Hold}
		default:
			tr.Phase = Enter
			tr.Start = enterState(t, prev.Position(), offset)
			if tr.End.Hold && !tr.Start.Hold {
				tr.End.Position = tr.Start.Position
			}
		}

		if tr.Phase == Enter {
			d.Entering = append(d.Entering, tr)
		} else {
			d.Persisting = append(d.Persisting, tr)
		}
	}

	if !animated || prev == nil {
		return d
	}

	for _, old := range prev.ticks {
		if _, ok := last[keyBits(old.Key)]; ok {
			continue
		}
		d.Exiting = append(d.Exiting, exitTransition(old, prev.offset, position, offset))
	}
	return d
}

// enterState computes the start state of an entering tick.
func enterState[T comparable](t TickDatum[T], prevPosition PositionFunc[T], offset float64) State {
	if prevPosition != nil {
		if p := prevPosition(t.Value); isFinite(p) {
			return State{Position: p + offset, Opacity: Epsilon}
		}
	}
	return State{
		Position: t.Key + offset,
		Opacity:  Epsilon,
		Hold:     !isFinite(t.Key),
	}
}

// exitTransition computes the transition of a tick which is no longer
// part of the frame.
func exitTransition[T comparable](old TickDatum[T], oldOffset float64, position PositionFunc[T], offset float64) Transition[T] {
	last := old.Key + oldOffset
	tr := Transition[T]{
		TickDatum: old,
		Phase:     Exit,
		Start:     State{Position: last, Opacity: 1, Hold: !isFinite(last)},
		End:       State{Position: last, Opacity: Epsilon, Hold: true},
	}
	if position != nil {
		if p := position(old.Value); isFinite(p) {
			tr.End = State{Position: p + offset, Opacity: Epsilon}
		}
	}
	return tr
}

// keyBits converts a key into a form suitable for use as a map key.
// All NaN values are identified, and so are +0 and -0.
func keyBits(k float64) uint64 {
	switch {
	case math.IsNaN(k):
		return math.Float64bits(math.NaN())
	case k == 0:
		return 0
	}
	return math.Float64bits(k)
}

// Position returns the position of the tick at the end of the transition.
func (t Transition[T]) Position() float64 {
	return t.End.Position
}

// Opacity returns the opacity of the tick at the end of the transition.
func (t Transition[T]) Opacity() float64 {
	return t.End.Opacity
}

// At returns the state of the tick at progress u of the transition.
func (t Transition[T]) At(u float64) State {
	return Interpolate(t.Start, t.End, u)
}

// Interpolate returns the state at progress u between a (u = 0) and
// b (u = 1), using linear interpolation.  Values of u outside [0, 1]
// are clamped.  A state with Hold set keeps the position of the other
// state.
//
// Real animation drivers will use their own easing; this function is
// meant for previews and tests.
func Interpolate(a, b State, u float64) State {
	u = min(max(u, 0), 1)
	s := State{Opacity: a.Opacity + u*(b.Opacity-a.Opacity)}
	switch {
	case a.Hold && b.Hold:
		s.Position = a.Position
		s.Hold = true
	case b.Hold:
		s.Position = a.Position
	case a.Hold:
		s.Position = b.Position
	default:
		s.Position = a.Position + u*(b.Position-a.Position)
	}
	return s
}
