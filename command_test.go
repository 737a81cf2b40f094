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

import "testing"

func TestCommandText(t *testing.T) {
	cases := []struct {
		cmd   Command
		text  string
		width int
	}{
		{Clear{}, "CLR;", 1},
		{SetColor{Color: Color{R: 255, G: 128, B: 0, A: 255}}, "CO 255 128 0 255;", 9},
		{Pen{Down: true}, "PEN DOWN;", 3},
		{Pen{Down: false}, "PEN UP;", 3},
		{Move{Points: []Point{{0, 0}}}, "MV (0, 0);", 5},
		{Move{Points: []Point{{4000, 0}, {4000, -8000}, {-500, 0}}}, "MV (4000, 0) (4000, -8000) (-500, 0);", 13},
	}
	for _, tc := range cases {
		if got := tc.cmd.String(); got != tc.text {
			t.Errorf("got %q, want %q", got, tc.text)
		}
		if got := tc.cmd.Width(); got != tc.width {
			t.Errorf("%s: width %d, want %d", tc.text, got, tc.width)
		}
	}
}

func TestDecodeSetColor(t *testing.T) {
	cmd, err := decodeSetColor([]string{"41", "7F", "41", "00", "40", "00", "41", "7F"})
	if err != nil {
		t.Fatal(err)
	}
	want := Color{R: 255, G: 128, B: 0, A: 255}
	if cmd.Color != want {
		t.Errorf("got %v, want %v", cmd.Color, want)
	}
}

func TestDecodePen(t *testing.T) {
	cases := []struct {
		hi, lo string
		down   bool
	}{
		{"40", "00", false},
		{"40", "01", true},
		{"00", "00", true}, // any non-zero value
		{"3F", "7F", true},
	}
	for _, tc := range cases {
		cmd, err := decodePen(tc.hi, tc.lo)
		if err != nil {
			t.Fatal(err)
		}
		if cmd.Down != tc.down {
			t.Errorf("decodePen(%s, %s).Down = %t", tc.hi, tc.lo, cmd.Down)
		}
	}
	if _, err := decodePen("4", "00"); err == nil {
		t.Error("malformed pen operand accepted")
	}
}
