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
	"strings"

	"seehuhn.de/go/plotter/codec"
)

// Op codes of the stream format.
const (
	OpClear = "F0"
	OpColor = "A0"
	OpPen   = "80"
	OpMove  = "C0"
)

// Command is one decoded plotter instruction.
// The concrete types are [Clear], [SetColor], [Pen] and [Move].
type Command interface {
	// String returns the textual form of the command, for example "PEN UP;".
	String() string

	// Width returns the number of stream tokens the command occupies,
	// including the op code.
	Width() int

	isCommand()
}

// Clear resets the canvas.
type Clear struct{}

func (Clear) String() string { return "CLR;" }

func (Clear) Width() int { return 1 }

func (Clear) isCommand() {}

// SetColor changes the pen color.
type SetColor struct {
	Color Color
}

// decodeSetColor builds a SetColor command from four high/low byte pairs.
func decodeSetColor(operands []string) (SetColor, error) {
	var rgba [4]int
	for i := range rgba {
		v, err := codec.Decode(operands[2*i], operands[2*i+1])
		if err != nil {
			return SetColor{}, err
		}
		rgba[i] = v
	}
	return SetColor{Color: Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}}, nil
}

func (c SetColor) String() string { return "CO " + c.Color.String() + ";" }

func (SetColor) Width() int { return 9 }

func (SetColor) isCommand() {}

// Pen raises or lowers the pen.
type Pen struct {
	Down bool
}

// decodePen builds a Pen command from a high/low byte pair.
// Any non-zero value puts the pen down.
func decodePen(hi, lo string) (Pen, error) {
	v, err := codec.Decode(hi, lo)
	if err != nil {
		return Pen{}, err
	}
	return Pen{Down: v != 0}, nil
}

func (p Pen) String() string {
	if p.Down {
		return "PEN DOWN;"
	}
	return "PEN UP;"
}

func (Pen) Width() int { return 3 }

func (Pen) isCommand() {}

// Move moves the pen through a sequence of absolute points.
type Move struct {
	Points []Point
}

func (m Move) String() string {
	var b strings.Builder
	b.WriteString("MV")
	for _, p := range m.Points {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	b.WriteByte(';')
	return b.String()
}

// Width returns the stream width of a move with the same number of
// points.  Moves produced by clipping do not correspond one-to-one to
// stream tokens.
func (m Move) Width() int { return 1 + 4*len(m.Points) }

func (Move) isCommand() {}
