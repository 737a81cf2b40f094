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
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plotter/codec"
)

// Point is an absolute position on the canvas.
type Point struct {
	X, Y int
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Vec returns p as a floating point vector.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Color is a pen color.  Components are stored exactly as decoded from the
// stream and are not clamped to [0, 255].
type Color struct {
	R, G, B, A int
}

// String returns the components in the form used by the CO command.
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d %d", c.R, c.G, c.B, c.A)
}

// NRGBA converts c to a non-premultiplied image color.
// Components are clamped to [0, 255].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A),
	}
}

// Gray returns the luminance of c in the range [0, 1].
func (c Color) Gray() float64 {
	rgba := c.NRGBA()
	y := 0.299*float64(rgba.R) + 0.587*float64(rgba.G) + 0.114*float64(rgba.B)
	return y / 255
}

func clampByte(x int) uint8 {
	return uint8(max(0, min(255, x)))
}

// Line is a stroke drawn with the pen down.
type Line struct {
	Start, End Point
	Color      Color
}

func (l Line) String() string {
	return fmt.Sprintf("(%s, %s, (%s))", l.Start, l.End, l.Color)
}

// Canvas is the axis-aligned rectangle the plotter may draw in.
//
// The rectangle is open: points on the boundary are not inside the canvas.
// A Canvas must not be modified after construction.
type Canvas struct {
	MinX, MaxX int
	MinY, MaxY int

	// DefaultColor is the pen color after a clear command, and the
	// color of the border lines.
	DefaultColor Color

	borders [4]Line
}

// Black is the default pen color.
var Black = Color{R: 0, G: 0, B: 0, A: 255}

// NewCanvas returns a canvas with the given bounds.
// If c is nil, [Black] is used as the default color.
func NewCanvas(minX, maxX, minY, maxY int, c *Color) (*Canvas, error) {
	if minX >= maxX || minY >= maxY {
		return nil, fmt.Errorf("plotter: invalid canvas bounds x=[%d, %d] y=[%d, %d]",
			minX, maxX, minY, maxY)
	}
	canvas := &Canvas{
		MinX:         minX,
		MaxX:         maxX,
		MinY:         minY,
		MaxY:         maxY,
		DefaultColor: Black,
	}
	if c != nil {
		canvas.DefaultColor = *c
	}

	ll := Point{X: minX, Y: minY}
	lr := Point{X: maxX, Y: minY}
	ur := Point{X: maxX, Y: maxY}
	ul := Point{X: minX, Y: maxY}
	canvas.borders = [4]Line{
		{Start: ul, End: ur, Color: canvas.DefaultColor}, // top
		{Start: ur, End: lr, Color: canvas.DefaultColor}, // right
		{Start: lr, End: ll, Color: canvas.DefaultColor}, // bottom
		{Start: ll, End: ul, Color: canvas.DefaultColor}, // left
	}
	return canvas, nil
}

var defaultCanvas = mustCanvas(codec.Min, codec.Max, codec.Min, codec.Max)

func mustCanvas(minX, maxX, minY, maxY int) *Canvas {
	c, err := NewCanvas(minX, maxX, minY, maxY, nil)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCanvas returns the canvas covering the full range of the codec,
// [-8192, 8191] on both axes.  The returned value is shared and must not be
// modified.
func DefaultCanvas() *Canvas {
	return defaultCanvas
}

// Borders returns the four edges of the canvas in the order top, right,
// bottom, left.
func (c *Canvas) Borders() []Line {
	return c.borders[:]
}

// Center returns the midpoint of the canvas, rounded towards zero.
// This is where a clear command places the pen.
func (c *Canvas) Center() Point {
	return Point{X: (c.MinX + c.MaxX) / 2, Y: (c.MinY + c.MaxY) / 2}
}

// Contains reports whether p lies strictly inside the canvas.
func (c *Canvas) Contains(p Point) bool {
	return p.X > c.MinX && p.X < c.MaxX && p.Y > c.MinY && p.Y < c.MaxY
}

// Rect returns the canvas bounds as a rectangle.
func (c *Canvas) Rect() rect.Rect {
	return rect.Rect{
		LLx: float64(c.MinX),
		LLy: float64(c.MinY),
		URx: float64(c.MaxX),
		URy: float64(c.MaxY),
	}
}
