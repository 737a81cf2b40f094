// seehuhn.de/go/plotter - decode pen-plotter byte streams
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

// Command genpdf generates plots of all test cases, for visual inspection.
// It writes a PDF and a PNG preview for every test case.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/plotter"
	"seehuhn.de/go/plotter/testcases"
)

const plotDir = "testdata/plots"

func main() {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		panic(err)
	}

	preview := plotter.NewPreview(512, 512)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(preview, tc, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(preview *plotter.Preview, tc testcases.TestCase, name string) error {
	var c *plotter.Canvas
	if b := tc.Canvas; b != nil {
		var err error
		c, err = plotter.NewCanvas(b.MinX, b.MaxX, b.MinY, b.MaxY, nil)
		if err != nil {
			return err
		}
	}
	res, err := plotter.Decode(tc.Stream, c)
	if err != nil {
		return err
	}

	err = plotter.WritePDF(res, filepath.Join(plotDir, name+".pdf"), nil)
	if err != nil {
		return err
	}

	img, err := preview.Render(res)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(plotDir, name+".png"))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
