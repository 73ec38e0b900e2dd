// Command export renders all test cases and writes their inputs and path
// data to JSON, for comparison with other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	hitomezashi "github.com/toolbarthomas/hitomezashi-stitch"
	"github.com/toolbarthomas/hitomezashi-stitch/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
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
	Name       string  `json:"name"`
	Stitchings []any   `json:"stitchings"`
	Axis0      []int   `json:"axis0"`
	Axis1      []int   `json:"axis1"`
	Size       float64 `json:"size"`
	DPI        float64 `json:"dpi,omitempty"`
	Cell       float64 `json:"cell"`
	LineWidth  float64 `json:"line_width"`
	LineCap    string  `json:"line_cap"`
	Offset     float64 `json:"offset"`
	Seed       uint64  `json:"seed,omitempty"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Segments   int     `json:"segments"`
	Path       string  `json:"path"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	p, err := hitomezashi.New(tc.Stitchings, tc.Options()...)
	if err != nil {
		return jsonTestCase{}, err
	}

	st := p.Stitches()
	w, h := p.Geometry().PixelSize()
	return jsonTestCase{
		Name:       category + "_" + tc.Name,
		Stitchings: tc.Stitchings,
		Axis0:      bitsToInts(st[0].Pattern),
		Axis1:      bitsToInts(st[1].Pattern),
		Size:       tc.Size,
		DPI:        tc.DPI,
		Cell:       p.Geometry().Cell,
		LineWidth:  tc.LineWidth,
		LineCap:    tc.Cap,
		Offset:     tc.Offset,
		Seed:       tc.Seed,
		Width:      w,
		Height:     h,
		Segments:   len(p.Segments()),
		Path:       p.PathData(),
	}, nil
}

func bitsToInts(bits []hitomezashi.Bit) []int {
	res := make([]int, len(bits))
	for i, b := range bits {
		res[i] = int(b)
	}
	return res
}
