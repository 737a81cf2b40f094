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

// Package testcases holds plotter byte streams together with the command
// listings they decode to.
package testcases

import (
	"strings"

	"seehuhn.de/go/plotter/codec"
)

// TestCase defines a single decoding test.
type TestCase struct {
	Name   string   // lowercase a-z and _ only
	Stream string   // hex op code stream
	Canvas *Bounds  // canvas to decode on (nil means the default canvas)
	Want   []string // expected textual commands
}

// Bounds describes a custom canvas.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// small is the canvas used by the clipping cases.
var small = &Bounds{MinX: -100, MaxX: 100, MinY: -100, MaxY: 100}

// stream concatenates instructions.
func stream(parts ...string) string {
	return strings.Join(parts, "")
}

// word encodes a value as two hex tokens.
func word(n int) string {
	hi, lo, err := codec.EncodeBytes(n)
	if err != nil {
		panic(err)
	}
	return hi + lo
}

func clearCanvas() string {
	return "F0"
}

func color(r, g, b, a int) string {
	return "A0" + word(r) + word(g) + word(b) + word(a)
}

func penDown() string {
	return "80" + word(1)
}

func penUp() string {
	return "80" + word(0)
}

// move builds a move instruction from relative offsets.
func move(offsets ...[2]int) string {
	var b strings.Builder
	b.WriteString("C0")
	for _, d := range offsets {
		b.WriteString(word(d[0]))
		b.WriteString(word(d[1]))
	}
	return b.String()
}
