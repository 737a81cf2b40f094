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
	"errors"
	"maps"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/plotter/codec"
	"seehuhn.de/go/plotter/testcases"
)

// canvasFor returns the canvas a test case is decoded on.
func canvasFor(t testing.TB, tc testcases.TestCase) *Canvas {
	t.Helper()
	if tc.Canvas == nil {
		return nil
	}
	b := tc.Canvas
	c, err := NewCanvas(b.MinX, b.MaxX, b.MinY, b.MaxY, nil)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestTestCases(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				res, err := Decode(tc.Stream, canvasFor(t, tc))
				if err != nil {
					t.Fatal(err)
				}
				got := res.Strings()
				if !slices.Equal(got, tc.Want) {
					t.Errorf("wrong commands:\n got: %s\nwant: %s",
						strings.Join(got, " "), strings.Join(tc.Want, " "))
				}
				checkInvariants(t, res)
			})
		}
	}
}

// checkInvariants verifies properties which hold for every decoded stream.
func checkInvariants(t *testing.T, res *Result) {
	t.Helper()

	c := res.Canvas
	onEdge := func(p Point) bool {
		insideX := p.X >= c.MinX && p.X <= c.MaxX
		insideY := p.Y >= c.MinY && p.Y <= c.MaxY
		return insideX && insideY && !c.Contains(p)
	}
	for i, l := range res.Lines {
		if (c.Contains(l.Start) || onEdge(l.Start)) && (c.Contains(l.End) || onEdge(l.End)) {
			continue
		}
		t.Errorf("line %d %s leaves the canvas", i, l)
	}

	// replay the pen commands and check that every pen down happens on
	// the canvas
	var pos Point
	for _, cmd := range res.Commands {
		switch cmd := cmd.(type) {
		case Clear:
			pos = c.Center()
		case Move:
			pos = cmd.Points[len(cmd.Points)-1]
		case Pen:
			if cmd.Down && !c.Contains(pos) && !onEdge(pos) {
				t.Errorf("pen down at %s, off the canvas", pos)
			}
		}
	}
}

func TestGreenLine(t *testing.T) {
	res, err := Decode("F0A04000417F4000417FC040004000804001C05F205F20804000", nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Lines) != 5 {
		t.Fatalf("expected 4 borders and 1 stroke, got %d lines", len(res.Lines))
	}
	if !slices.Equal(res.Lines[:4], DefaultCanvas().Borders()) {
		t.Errorf("borders missing from line list: %v", res.Lines[:4])
	}
	green := Color{R: 0, G: 255, B: 0, A: 255}
	want := Line{Start: Point{0, 0}, End: Point{4000, 4000}, Color: green}
	if res.Lines[4] != want {
		t.Errorf("got line %s, want %s", res.Lines[4], want)
	}

	if !slices.Equal(res.PenDownPoints, []Point{{0, 0}}) {
		t.Errorf("pen down points: %v", res.PenDownPoints)
	}
	if !slices.Equal(res.PenUpPoints, []Point{{4000, 4000}}) {
		t.Errorf("pen up points: %v", res.PenUpPoints)
	}
}

func TestRedClippingGeometry(t *testing.T) {
	res, err := Decode("F0A0417F40004000417FC067086708804001C0670840004000187818784000804000", nil)
	if err != nil {
		t.Fatal(err)
	}

	red := Color{R: 255, G: 0, B: 0, A: 255}
	wantLines := []Line{
		{Start: Point{5000, 5000}, End: Point{8191, 5000}, Color: red},
		{Start: Point{5000, 0}, End: Point{8191, 0}, Color: red},
	}
	if !slices.Equal(res.Lines[4:], wantLines) {
		t.Errorf("got lines %v, want %v", res.Lines[4:], wantLines)
	}

	wantDown := []Point{{5000, 5000}, {8191, 0}}
	if !slices.Equal(res.PenDownPoints, wantDown) {
		t.Errorf("pen down points %v, want %v", res.PenDownPoints, wantDown)
	}
	wantUp := []Point{{8191, 5000}, {5000, 0}}
	if !slices.Equal(res.PenUpPoints, wantUp) {
		t.Errorf("pen up points %v, want %v", res.PenUpPoints, wantUp)
	}
}

func TestCustomCanvasHasNoBorders(t *testing.T) {
	c, err := NewCanvas(-10, 10, -10, 10, nil)
	if err != nil {
		t.Fatal(err)
	}
	res, err := Decode("F0804001C040054005804000", c)
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{{Start: Point{0, 0}, End: Point{5, 5}, Color: Black}}
	if !slices.Equal(res.Lines, want) {
		t.Errorf("got lines %v, want %v", res.Lines, want)
	}
	if res.Canvas != c {
		t.Error("result does not refer to the custom canvas")
	}
}

// TestClearResetsColor checks that a clear command restores the default
// pen color.
func TestClearResetsColor(t *testing.T) {
	blue := Color{R: 0, G: 0, B: 255, A: 255}
	c, err := NewCanvas(-100, 100, -100, 100, &blue)
	if err != nil {
		t.Fatal(err)
	}
	// red, clear, then draw
	stream := "A0417F40004000417F" + "F0" + "804001" + "C040054005"
	res, err := Decode(stream, c)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(res.Lines); n != 1 {
		t.Fatalf("expected 1 line, got %d", n)
	}
	if res.Lines[0].Color != blue {
		t.Errorf("line color %v, want %v", res.Lines[0].Color, blue)
	}
}

func TestDecodeErrors(t *testing.T) {
	small, err := NewCanvas(-100, 100, -100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	w := func(n int) string {
		hi, lo, err := codec.EncodeBytes(n)
		if err != nil {
			t.Fatal(err)
		}
		return hi + lo
	}

	cases := []struct {
		name   string
		stream string
		canvas *Canvas
		reason error
		offset int
	}{
		{
			name:   "pen_down_without_position",
			stream: "804001",
			reason: ErrPenDownNoPosition,
			offset: 0,
		},
		{
			// the pen goes down again after leaving the canvas
			name:   "pen_down_off_canvas",
			stream: "F0" + "804001" + "C0" + w(150) + w(0) + "804001",
			canvas: small,
			reason: ErrPenDownOutOfBounds,
			offset: 9,
		},
		{
			name:   "pen_down_after_pen_up_exit",
			stream: "F0" + "C0" + w(150) + w(0) + "804001",
			canvas: small,
			reason: ErrPenDownOutOfBounds,
			offset: 6,
		},
		{
			// still off the canvas after a second pen up point
			name:   "pen_down_after_pen_up_wander",
			stream: "F0" + "C0" + w(150) + w(0) + w(10) + w(0) + "804001",
			canvas: small,
			reason: ErrPenDownOutOfBounds,
			offset: 10,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Decode(tc.stream, tc.canvas)
			if res != nil {
				t.Error("partial result returned")
			}
			if !errors.Is(err, tc.reason) {
				t.Fatalf("got error %v, want %v", err, tc.reason)
			}
			var protoErr *ProtocolError
			if !errors.As(err, &protoErr) {
				t.Fatalf("%v is not a ProtocolError", err)
			}
			if protoErr.Offset != tc.offset {
				t.Errorf("error at token %d, want %d", protoErr.Offset, tc.offset)
			}
		})
	}
}

// TestPenUpMoveOffCanvas checks that pen up moves leaving the canvas are
// passed on unchanged.
func TestPenUpMoveOffCanvas(t *testing.T) {
	c, err := NewCanvas(-100, 100, -100, 100, nil)
	if err != nil {
		t.Fatal(err)
	}
	// offsets (150, 0), (10, 0), (-110, 0)
	res, err := Decode("F0"+"C0"+"41164000"+"400A4000"+"3F124000", c)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"CLR;", "MV (150, 0) (160, 0) (50, 0);"}
	if got := res.Strings(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if len(res.Lines) != 0 {
		t.Errorf("pen up move drew lines %v", res.Lines)
	}
}

func TestDecodeMalformedBytes(t *testing.T) {
	for _, stream := range []string{
		"F0A0G000417F4000417F",
		"F080XY01",
		"F0C04001ZZ01",
	} {
		_, err := Decode(stream, nil)
		var formatErr *codec.FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("%s: expected FormatError, got %v", stream, err)
		}
	}
}

// TestUnclampedColor documents that color components are passed on
// without range checks.
func TestUnclampedColor(t *testing.T) {
	res, err := Decode("F0A07F7F00004000417F", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"CLR;", "CO 8191 -8192 0 255;"}
	if got := res.Strings(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokens(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"F", []string{}},
		{"f0a0", []string{"F0", "A0"}},
		{"F0A0C", []string{"F0", "A0"}},
	}
	for _, tc := range cases {
		got := Tokens(tc.in)
		if !slices.Equal(got, tc.want) {
			t.Errorf("Tokens(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// BenchmarkDecodeAll measures decoding of all test case streams.
func BenchmarkDecodeAll(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}
	canvases := make([]*Canvas, len(cases))
	for i, tc := range cases {
		canvases[i] = canvasFor(b, tc)
	}

	b.ReportAllocs()
	for b.Loop() {
		for i, tc := range cases {
			if _, err := Decode(tc.Stream, canvases[i]); err != nil {
				b.Fatal(err)
			}
		}
	}
}
