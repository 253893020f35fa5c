// Command export renders all test cases and writes the resulting tick
// transitions to JSON, in the form consumed by an external animation
// driver.  Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/axis"
	"seehuhn.de/go/axis/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.Continuous)) {
		for _, tc := range testcases.Continuous[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.Discrete)) {
		for _, tc := range testcases.Discrete[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name        string      `json:"name"`
	Orientation string      `json:"orientation"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Frames      []jsonFrame `json:"frames"`
}

type jsonFrame struct {
	Baseline string     `json:"baseline,omitempty"`
	TickLine string     `json:"tick_line,omitempty"`
	Anchor   string     `json:"anchor,omitempty"`
	Ticks    []jsonTick `json:"ticks"`
}

type jsonTick struct {
	Key   *float64  `json:"key"` // null for non-finite keys
	Label string    `json:"label"`
	Phase string    `json:"phase"`
	Start jsonState `json:"start"`
	End   jsonState `json:"end"`
}

type jsonState struct {
	Position *float64 `json:"position"` // null means hold
	Opacity  float64  `json:"opacity"`
}

func toJSON[T comparable](category string, tc testcases.TestCase[T]) jsonTestCase {
	jtc := jsonTestCase{
		Name:        category + "_" + tc.Name,
		Orientation: tc.Orientation.String(),
		Width:       tc.Width,
		Height:      tc.Height,
	}
	for _, f := range testcases.Render(tc) {
		jf := jsonFrame{
			Baseline: axis.SVGPath(f.Baseline),
			Ticks:    []jsonTick{},
		}
		if !f.Empty() {
			jf.TickLine = axis.SVGPath(f.Tick.Line)
			jf.Anchor = f.Tick.Anchor.String()
		}
		for _, t := range f.Ticks {
			jf.Ticks = append(jf.Ticks, jsonTick{
				Key:   finite(t.Key),
				Label: t.Label,
				Phase: t.Phase.String(),
				Start: stateToJSON(t.Start),
				End:   stateToJSON(t.End),
			})
		}
		jtc.Frames = append(jtc.Frames, jf)
	}
	return jtc
}

func stateToJSON(s axis.State) jsonState {
	js := jsonState{Opacity: s.Opacity}
	if !s.Hold {
		js.Position = finite(s.Position)
	}
	return js
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}
