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

// Command axisdemo renders an animated zoom of a linear axis into a
// sequence of PNG images.
//
// Every zoom step produces one axis frame; each frame is sampled at
// several points of its transition.  The images can be combined into an
// animation with external tools.
package main

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/axis"
	"seehuhn.de/go/axis/preview"
	"seehuhn.de/go/axis/scale"
)

type config struct {
	orient    string
	start     float64
	end       float64
	zoom      float64
	steps     int
	samples   int
	width     int
	height    int
	format    string
	tickCount int
	hideZero  bool
	outDir    string
	verbose   bool
}

func main() {
	var conf config
	flags := pflag.NewFlagSet("axisdemo", pflag.ExitOnError)
	flags.StringVar(&conf.orient, "orient", "bottom", "axis orientation (top, right, bottom, left)")
	flags.Float64Var(&conf.start, "start", 0, "initial domain start")
	flags.Float64Var(&conf.end, "end", 100, "initial domain end")
	flags.Float64Var(&conf.zoom, "zoom", 1.5, "zoom factor per step, values < 1 zoom out")
	flags.IntVar(&conf.steps, "steps", 5, "number of zoom steps")
	flags.IntVar(&conf.samples, "samples", 8, "images per transition")
	flags.IntVar(&conf.width, "width", 320, "image width in pixels")
	flags.IntVar(&conf.height, "height", 320, "image height in pixels")
	flags.StringVar(&conf.format, "format", "", "tick label format (si, comma or empty for the scale default)")
	flags.IntVar(&conf.tickCount, "ticks", 0, "approximate number of ticks, 0 for the default")
	flags.BoolVar(&conf.hideZero, "hide-zero", false, "omit the tick at zero")
	flags.StringVarP(&conf.outDir, "out", "o", "frames", "output directory")
	flags.BoolVarP(&conf.verbose, "verbose", "v", false, "log every transition")
	flags.Parse(os.Args[1:])

	if conf.verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := run(&conf); err != nil {
		logrus.Fatal(err)
	}
}

func run(conf *config) error {
	o, err := axis.ParseOrientation(conf.orient)
	if err != nil {
		return err
	}
	if conf.samples < 2 {
		return fmt.Errorf("need at least 2 samples per transition, got %d", conf.samples)
	}
	if !(conf.zoom > 0) || math.IsInf(conf.zoom, 0) {
		return fmt.Errorf("zoom factor must be positive and finite, got %g", conf.zoom)
	}
	if err := os.MkdirAll(conf.outDir, 0755); err != nil {
		return err
	}

	const margin = 40
	length := float64(conf.width - 2*margin)
	origin := vec.Vec2{X: margin, Y: margin}
	switch o {
	case axis.Top:
		origin.Y = float64(conf.height - margin)
	case axis.Right, axis.Left:
		length = float64(conf.height - 2*margin)
		if o == axis.Left {
			origin.X = float64(conf.width - margin)
		}
	}

	s := scale.NewLinear(conf.start, conf.end, 0, length)
	a := axis.New[float64](o)
	a.TickCount = conf.tickCount
	a.HideZero = conf.hideZero
	switch conf.format {
	case "si":
		a.TickFormat = axis.SI(1, "")
	case "comma":
		a.TickFormat = axis.Comma(2)
	case "":
	default:
		return fmt.Errorf("unknown label format %q", conf.format)
	}
	tracker := axis.NewTracker(a)

	img := image.NewAlpha(image.Rect(0, 0, conf.width, conf.height))
	canvas := preview.NewCanvas(img, nil)
	n := 0
	for step := 0; step <= conf.steps; step++ {
		if step > 0 {
			zoom(s, conf.zoom)
		}
		f := tracker.Render(s)
		logrus.WithFields(logrus.Fields{
			"step":       step,
			"domain":     s.Domain(),
			"entering":   len(f.Diff.Entering),
			"persisting": len(f.Diff.Persisting),
			"exiting":    len(f.Diff.Exiting),
		}).Info("rendered frame")

		for i := range conf.samples {
			u := float64(i) / float64(conf.samples-1)
			clear(img.Pix)
			preview.Draw(canvas, f, origin, u)

			name := filepath.Join(conf.outDir, fmt.Sprintf("frame_%04d.png", n))
			if err := writePNG(name, img); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"file": name, "progress": u}).Debug("wrote image")
			n++
		}
	}
	logrus.WithField("images", n).Info("done")
	return nil
}

// zoom scales the domain of s by the given factor around its centre.
func zoom(s *scale.Linear, factor float64) {
	d := s.Domain()
	mid := (d[0] + d[1]) / 2
	half := (d[1] - d[0]) / 2 / factor
	s.SetDomain(mid-half, mid+half)
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
