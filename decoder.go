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
	"fmt"
	"strings"

	"seehuhn.de/go/plotter/codec"
)

// Tokens splits a stream into two-character tokens.  Tokens are converted
// to upper case.  A trailing single character is dropped.
func Tokens(stream string) []string {
	stream = strings.ToUpper(stream)
	tokens := make([]string, 0, len(stream)/2)
	for i := 0; i+2 <= len(stream); i += 2 {
		tokens = append(tokens, stream[i:i+2])
	}
	return tokens
}

// isInstruction reports whether tok starts an instruction which ends a
// preceding move.
func isInstruction(tok string) bool {
	return tok == OpClear || tok == OpColor || tok == OpPen
}

// Decode interprets a plotter byte stream, given as a string of hex digit
// pairs, and returns the resulting commands and stroke geometry.
//
// Drawing is restricted to the canvas c.  Paths which leave the canvas
// with the pen down are cut at the canvas edge: the move ends at the edge
// point and a "PEN UP" command is inserted.  When the path comes back,
// a move to the re-entry point and a "PEN DOWN" command are inserted.
//
// If c is nil, [DefaultCanvas] is used and its four border lines are
// placed at the start of Result.Lines.
//
// Unknown op codes are skipped, and so are instructions which are cut off
// by the end of the stream.  On error, no partial result is returned.
func Decode(stream string, c *Canvas) (*Result, error) {
	res := &Result{Canvas: c}
	if c == nil {
		res.Canvas = DefaultCanvas()
		res.Lines = append(res.Lines, res.Canvas.Borders()...)
	}

	d := &drawer{
		canvas: res.Canvas,
		tokens: Tokens(stream),
		res:    res,
	}
	d.st.color = res.Canvas.DefaultColor
	if err := d.run(); err != nil {
		return nil, err
	}
	return res, nil
}

// drawerState is the pen state during one decode.
type drawerState struct {
	current     Point
	hasPosition bool

	penDown bool

	// outOfBounds is set while the current point is off the canvas.
	outOfBounds bool

	// wasDrawing is set while an excursion which started with the pen
	// down is in progress.
	wasDrawing bool

	color Color
}

// drawer walks the token list of one stream.
type drawer struct {
	canvas *Canvas
	tokens []string
	pos    int // index of the next op code
	st     drawerState
	res    *Result
}

func (d *drawer) run() error {
	for d.pos < len(d.tokens) {
		var err error
		switch d.tokens[d.pos] {
		case OpClear:
			d.clear()
		case OpColor:
			err = d.setColor()
		case OpPen:
			err = d.pen()
		case OpMove:
			err = d.move()
		default:
			// unrecognised op code
			d.skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (d *drawer) emit(cmd Command) {
	d.res.Commands = append(d.res.Commands, cmd)
}

func (d *drawer) stroke(from, to Point) {
	d.res.Lines = append(d.res.Lines, Line{Start: from, End: to, Color: d.st.color})
}

func (d *drawer) protocolError(reason error) error {
	return &ProtocolError{Offset: d.pos, OpCode: d.tokens[d.pos], Reason: reason}
}

// operands returns the n tokens following the current op code, or false
// if the stream ends before them.
func (d *drawer) operands(n int) ([]string, bool) {
	if d.pos+n >= len(d.tokens) {
		return nil, false
	}
	return d.tokens[d.pos+1 : d.pos+1+n], true
}

// skip passes over the current op code as if it were unknown.
func (d *drawer) skip() {
	d.pos++
}

func (d *drawer) wrap(err error) error {
	return fmt.Errorf("plotter: %s instruction at token %d: %w", d.tokens[d.pos], d.pos, err)
}

func (d *drawer) clear() {
	cmd := Clear{}
	d.emit(cmd)
	d.pos += cmd.Width()

	center := d.canvas.Center()
	d.st = drawerState{
		current:     center,
		hasPosition: true,
		outOfBounds: !d.canvas.Contains(center),
		color:       d.canvas.DefaultColor,
	}
}

func (d *drawer) setColor() error {
	ops, ok := d.operands(8)
	if !ok {
		d.skip()
		return nil
	}
	cmd, err := decodeSetColor(ops)
	if err != nil {
		return d.wrap(err)
	}
	d.emit(cmd)
	d.pos += cmd.Width()
	d.st.color = cmd.Color
	return nil
}

func (d *drawer) pen() error {
	ops, ok := d.operands(2)
	if !ok {
		d.skip()
		return nil
	}
	cmd, err := decodePen(ops[0], ops[1])
	if err != nil {
		return d.wrap(err)
	}
	if cmd.Down && d.st.outOfBounds {
		return d.protocolError(ErrPenDownOutOfBounds)
	}
	if cmd.Down && !d.st.hasPosition {
		return d.protocolError(ErrPenDownNoPosition)
	}
	d.emit(cmd)
	d.pos += cmd.Width()
	d.st.penDown = cmd.Down
	if !cmd.Down {
		// an explicit pen up ends any pending re-entry
		d.st.wasDrawing = false
	}

	if d.st.hasPosition {
		if cmd.Down {
			d.res.PenDownPoints = append(d.res.PenDownPoints, d.st.current)
		} else {
			d.res.PenUpPoints = append(d.res.PenUpPoints, d.st.current)
		}
	}
	return nil
}

// move reads the coordinate pairs following a C0 op code.  Each pair is
// an offset relative to the previous point.  The list ends at the next
// instruction, when fewer than four tokens are left for another pair, or
// after a point which lands exactly on the canvas center.
//
// The last rule is a heuristic for streams which do not mark the end of
// a move clearly.  A legitimate move through the center is cut short by it
// and the remaining coordinate tokens are skipped as unknown op codes.
//
// Offsets cannot be applied before the first F0, so a move at that stage
// is skipped.
func (d *drawer) move() error {
	if !d.st.hasPosition {
		d.skip()
		return nil
	}

	center := d.canvas.Center()
	current := d.st.current
	var points []Point
	for p := d.pos; p+1 < len(d.tokens) && !isInstruction(d.tokens[p+1]); p += 4 {
		if p+4 >= len(d.tokens) {
			break
		}
		dx, err := codec.Decode(d.tokens[p+1], d.tokens[p+2])
		if err != nil {
			return d.wrap(err)
		}
		dy, err := codec.Decode(d.tokens[p+3], d.tokens[p+4])
		if err != nil {
			return d.wrap(err)
		}
		current = current.Add(dx, dy)
		points = append(points, current)

		if p+5 == len(d.tokens) || current == center {
			break
		}
	}

	d.pos += Move{Points: points}.Width()
	return d.clip(points)
}

// clip appends the move commands for a list of absolute points, cutting
// the path where it crosses the canvas edge with the pen down.
func (d *drawer) clip(points []Point) error {
	var pending []Point
	for _, next := range points {
		cur := d.st.current
		curIn := d.canvas.Contains(cur)
		nextIn := d.canvas.Contains(next)

		switch {
		case d.st.penDown && curIn && !nextIn:
			// leaving the canvas: draw to the edge and lift the pen
			edge, err := d.canvas.EdgePoint(cur, next)
			if err != nil {
				return err
			}
			d.emit(Move{Points: append(pending, edge)})
			d.emit(Pen{Down: false})
			d.st.penDown = false
			d.stroke(cur, edge)
			d.res.PenUpPoints = append(d.res.PenUpPoints, edge)
			d.st.outOfBounds = true
			d.st.wasDrawing = true
			pending = nil

		case d.st.penDown && curIn:
			pending = append(pending, next)
			d.stroke(cur, next)

		case d.st.penDown:
			// Unreachable: the pen cannot go down off the canvas.

		case d.st.outOfBounds && nextIn && d.st.wasDrawing:
			// coming back: move to the edge and lower the pen
			edge, err := d.canvas.EdgePoint(next, cur)
			if err != nil {
				return err
			}
			d.emit(Move{Points: append(pending, edge)})
			d.emit(Pen{Down: true})
			d.st.penDown = true
			d.stroke(next, edge)
			d.res.PenDownPoints = append(d.res.PenDownPoints, edge)
			d.st.outOfBounds = false
			d.st.wasDrawing = false
			pending = []Point{next}

		case d.st.outOfBounds && d.st.wasDrawing:
			// points off the canvas are not recorded until the path
			// comes back

		default:
			// pen up moves are kept as they are, on the canvas or off it
			pending = append(pending, next)
			d.st.outOfBounds = !nextIn
		}
		d.st.current = next
	}

	if len(pending) > 0 {
		d.emit(Move{Points: pending})
	}
	return nil
}
