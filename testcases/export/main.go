// Command export writes the decoded test case streams to JSON, in the
// format read by the web front-end.
// Run from the plotter module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/testcases"
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
	Name   string        `json:"name"`
	Stream string        `json:"stream"`
	View   *plotter.View `json:"view"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	var c *plotter.Canvas
	if b := tc.Canvas; b != nil {
		var err error
		c, err = plotter.NewCanvas(b.MinX, b.MaxX, b.MinY, b.MaxY, nil)
		if err != nil {
			return jsonTestCase{}, err
		}
	}
	res, err := plotter.Decode(tc.Stream, c)
	if err != nil {
		return jsonTestCase{}, err
	}
	return jsonTestCase{
		Name:   category + "_" + tc.Name,
		Stream: tc.Stream,
		View:   res.View(),
	}, nil
}
