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

package plotter

import (
	"image/color"
	"testing"
)

func TestPreviewTransform(t *testing.T) {
	c, err := NewCanvas(-100, 100, -50, 50, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := NewPreview(220, 220)
	p.Margin = 10
	p.ctm = p.canvasTransform(c)

	// the canvas is 200 wide, scaled to fill the 200 available pixels and
	// centered vertically
	cases := []struct {
		in   Point
		x, y float64
	}{
		{Point{-100, 50}, 10, 60},
		{Point{100, -50}, 210, 160},
		{Point{0, 0}, 110, 110},
	}
	for _, tc := range cases {
		got := p.toDevice(tc.in.Vec())
		if got.X != tc.x || got.Y != tc.y {
			t.Errorf("toDevice(%s) = %v, want (%g, %g)", tc.in, got, tc.x, tc.y)
		}
	}
}

func TestPreviewRender(t *testing.T) {
	c, err := NewCanvas(-100, 100, -100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	// red horizontal line from (0, 0) to (50, 0)
	res, err := Decode("F0"+"A0417F40004000417F"+"804001"+"C040324000"+"804000", c)
	if err != nil {
		t.Fatal(err)
	}

	p := NewPreview(220, 220)
	p.Margin = 10
	p.LineWidth = 4
	p.ShowPenPoints = false
	p.Labels = false
	img, err := p.Render(res)
	if err != nil {
		t.Fatal(err)
	}

	red := color.RGBA{R: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := img.RGBAAt(140, 110); got != red {
		t.Errorf("pixel on the line is %v", got)
	}
	if got := img.RGBAAt(140, 40); got != white {
		t.Errorf("pixel above the line is %v", got)
	}
	if got := img.RGBAAt(80, 110); got != white {
		t.Errorf("pixel left of the line start is %v", got)
	}
}

func TestPreviewPenPoints(t *testing.T) {
	c, err := NewCanvas(-100, 100, -100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Decode("F0"+"804001"+"C040324000"+"804000", c)
	if err != nil {
		t.Fatal(err)
	}

	p := NewPreview(220, 220)
	p.Margin = 10
	p.Labels = false
	img, err := p.Render(res)
	if err != nil {
		t.Fatal(err)
	}
	// pen down at the center, pen up at (50, 0)
	if got := img.RGBAAt(110, 110); got.G <= got.R {
		t.Errorf("pen down marker missing, pixel is %v", got)
	}
	if got := img.RGBAAt(160, 110); got.R <= got.G {
		t.Errorf("pen up marker missing, pixel is %v", got)
	}
}

func TestPreviewInvalid(t *testing.T) {
	res, err := Decode("F0", nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range []*Preview{
		NewPreview(0, 100),
		{Width: 10, Height: 10, LineWidth: 0},
	} {
		if _, err := p.Render(res); err == nil {
			t.Errorf("Render succeeded for %dx%d, width %g", p.Width, p.Height, p.LineWidth)
		}
	}
}
