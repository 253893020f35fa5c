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

// Command genpdf writes the final frame of every test case to a PDF file,
// for visual inspection in a PDF viewer.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/axis"
	"seehuhn.de/go/axis/testcases"
)

const outDir = "testdata/pdf"

func main() {
	// Create output directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.Continuous)) {
		for _, tc := range testcases.Continuous[category] {
			name := category + "_" + tc.Name
			if err := generatePDF(tc, filepath.Join(outDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.Discrete)) {
		for _, tc := range testcases.Discrete[category] {
			name := category + "_" + tc.Name
			if err := generatePDF(tc, filepath.Join(outDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF[T comparable](tc testcases.TestCase[T], pdfPath string) error {
	frames := testcases.Render(tc)
	if len(frames) == 0 {
		return nil
	}
	f := frames[len(frames)-1]

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; test cases assume top-left.
	// Apply Y-axis flip, then move to the axis origin.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	page.Transform(matrix.Translate(tc.Origin.X, tc.Origin.Y))

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)

	if !f.Empty() {
		drawPath(page, f.Baseline, matrix.Identity)
		for _, t := range f.Ticks {
			if t.Phase == axis.Exit || t.End.Hold {
				continue
			}
			drawPath(page, f.Tick.Line, f.Transform(t.End))
		}
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the part of the page interface used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// drawPath appends the segments of p, transformed by m, to the current
// path of the page.
func drawPath(page pathBuilder, p path.Path, m matrix.Matrix) {
	for cmd, pts := range p.Transform(m).ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}
