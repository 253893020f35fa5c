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

// Package preview rasterises axis frames into grayscale images.
//
// The images are meant for tests, documentation and quick visual checks
// of transitions.  Lines are drawn with [vector.Rasterizer], labels use
// the fixed 7x13 bitmap font.
package preview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/axis"
)

// Options control the appearance of the preview.
type Options struct {
	// LineWidth is the width of the baseline and of the tick marks.
	LineWidth float64

	// Labels selects whether tick labels are drawn.
	Labels bool
}

var defaultOptions = Options{
	LineWidth: 1,
	Labels:    true,
}

// Canvas draws axis frames into an alpha image.  Internal buffers are
// reused between calls.
type Canvas struct {
	Dst  *image.Alpha
	Opts Options

	z *vector.Rasterizer
}

// NewCanvas returns a canvas which draws into dst.  If opts is nil,
// default options are used.
func NewCanvas(dst *image.Alpha, opts *Options) *Canvas {
	c := &Canvas{Dst: dst, Opts: defaultOptions}
	if opts != nil {
		c.Opts = *opts
	}
	b := dst.Bounds()
	c.z = vector.NewRasterizer(b.Dx(), b.Dy())
	return c
}

// Draw draws the frame f as it appears at progress u of the transition
// into f, with the axis origin placed at origin.
func Draw[T comparable](c *Canvas, f *axis.Frame[T], origin vec.Vec2, u float64) {
	if f == nil || f.Empty() {
		return
	}
	shift := matrix.Translate(origin.X, origin.Y)
	c.strokePath(f.Baseline, shift, 1)

	for _, t := range f.Ticks {
		s := t.At(u)
		if s.Hold && math.IsNaN(s.Position) {
			continue
		}
		m := f.Transform(s).Mul(shift)
		c.strokePath(f.Tick.Line, m, s.Opacity)
		if c.Opts.Labels && t.Label != "" {
			x, y := m.Apply(f.Tick.Label.X, f.Tick.Label.Y)
			c.label(t.Label, vec.Vec2{X: x, Y: y}, f.Tick.Anchor, f.Tick.Baseline, s.Opacity)
		}
	}
}

// strokePath draws the segments of p, transformed by m.
// Curves are replaced by their chords.
func (c *Canvas) strokePath(p path.Path, m matrix.Matrix, opacity float64) {
	if p == nil || opacity <= 0 {
		return
	}
	var current, start vec.Vec2
	for cmd, pts := range p.Transform(m) {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo, path.CmdQuadTo, path.CmdCubeTo:
			next := pts[len(pts)-1]
			c.line(current, next, opacity)
			current = next
		case path.CmdClose:
			c.line(current, start, opacity)
			current = start
		}
	}
}

// line fills the rectangle of width LineWidth around the segment a-b.
func (c *Canvas) line(a, b vec.Vec2, opacity float64) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(c.Opts.LineWidth / 2 / l)
	// extend the ends by half a line width, so that corners are closed
	e := d.Mul(c.Opts.LineWidth / 2 / l)
	a = a.Sub(e)
	b = b.Add(e)

	bounds := c.Dst.Bounds()
	c.z.Reset(bounds.Dx(), bounds.Dy())
	c.z.MoveTo(f32(a.Add(n)))
	c.z.LineTo(f32(b.Add(n)))
	c.z.LineTo(f32(b.Sub(n)))
	c.z.LineTo(f32(a.Sub(n)))
	c.z.ClosePath()
	c.z.Draw(c.Dst, bounds, uniform(opacity), image.Point{})
}

// label draws text with its anchor point at p.
func (c *Canvas) label(text string, p vec.Vec2, anchor axis.TextAnchor, baseline axis.TextBaseline, opacity float64) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.Dst,
		Src:  uniform(opacity),
		Face: face,
	}

	x := p.X
	switch anchor {
	case axis.AnchorMiddle:
		x -= float64(d.MeasureString(text).Round()) / 2
	case axis.AnchorEnd:
		x -= float64(d.MeasureString(text).Round())
	}

	metrics := face.Metrics()
	ascent := float64(metrics.Ascent.Round())
	descent := float64(metrics.Descent.Round())
	y := p.Y
	switch baseline {
	case axis.BaselineHanging:
		y += ascent
	case axis.BaselineCentral:
		y += (ascent - descent) / 2
	}

	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(text)
}

func f32(p vec.Vec2) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

func uniform(opacity float64) *image.Uniform {
	a := uint8(math.Round(255 * min(max(opacity, 0), 1)))
	return image.NewUniform(color.Alpha{A: a})
}
