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
	"sync"

	"seehuhn.de/go/axis/scale"
)

// Tracker renders an axis and remembers the state needed to animate the
// next frame.  It is safe for concurrent use.
type Tracker[T comparable] struct {
	mu   sync.Mutex
	axis Axis[T]
	prev *PositionMap[T]
}

// NewTracker returns a tracker which renders with a copy of the
// configuration a.  If a is nil, the tracker starts with the zero
// configuration and renders empty frames until [Tracker.Configure]
// sets an orientation.
func NewTracker[T comparable](a *Axis[T]) *Tracker[T] {
	t := &Tracker[T]{}
	if a != nil {
		t.axis = *a
	}
	return t
}

// Render renders the next frame for s.
func (t *Tracker[T]) Render(s scale.Scale[T]) *Frame[T] {
	t.mu.Lock()
	defer t.mu.Unlock()

	f := t.axis.Render(s, t.prev)
	t.prev = f.Next
	return f
}

// Configure calls fn to modify the axis configuration used for
// subsequent frames.
func (t *Tracker[T]) Configure(fn func(a *Axis[T])) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.axis)
}

// Previous returns the state recorded by the most recent frame.
func (t *Tracker[T]) Previous() *PositionMap[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.prev
}

// Reset forgets the previous frame, so that the next frame fades in
// without sliding.
func (t *Tracker[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prev = nil
}
