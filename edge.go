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

import "seehuhn.de/go/geom/vec"

// EdgePoint returns the point where the segment from inner to outer
// crosses the canvas boundary.  The caller must make sure that inner is
// inside the canvas and outer is not.
//
// The crossing is found from the line equation y = m*x + b through both
// points.  The edges are tried in the order right, bottom, left, top; an
// edge is used if outer lies beyond it while its other coordinate is still
// within the canvas range.  If outer lies beyond two edges at once, the
// corner in the direction of travel is returned.  This is only an
// approximation: unless the segment passes exactly through the corner,
// the true crossing lies elsewhere on one of the two edges.  For example,
// the segment from (0, 0) to (20000, 9000) on the default canvas crosses
// the right edge near (8191, 3686), but (8191, 8191) is returned.
// Coordinates are truncated towards zero.
//
//	  H   top    E
//	   +-------+
//	   |       |
//	left       right
//	   |       |
//	   +-------+
//	  G  bottom  F
func (c *Canvas) EdgePoint(inner, outer Point) (Point, error) {
	a := inner.Vec()
	d := outer.Vec().Sub(a)

	insideX := outer.X > c.MinX && outer.X < c.MaxX
	insideY := outer.Y > c.MinY && outer.Y < c.MaxY

	if d.X == 0 {
		// vertical segments only cross the top or bottom edge
		switch {
		case outer.Y >= c.MaxY:
			return Point{X: inner.X, Y: c.MaxY}, nil
		case outer.Y <= c.MinY:
			return Point{X: inner.X, Y: c.MinY}, nil
		}
		return Point{}, &GeometryError{Inner: inner, Outer: outer}
	}

	// The explicit conversions prevent fused multiply-add, so that the
	// truncated results do not depend on the architecture.
	m := d.Y / d.X
	b := a.Y - float64(m*a.X)

	minX, maxX := float64(c.MinX), float64(c.MaxX)
	minY, maxY := float64(c.MinY), float64(c.MaxY)

	switch {
	case outer.X >= c.MaxX && insideY: // right
		return truncate(vec.Vec2{X: maxX, Y: float64(m*maxX) + b}), nil
	case outer.Y <= c.MinY && insideX && m != 0: // bottom
		return truncate(vec.Vec2{X: (minY - b) / m, Y: minY}), nil
	case outer.X <= c.MinX && insideY: // left
		return truncate(vec.Vec2{X: minX, Y: float64(m*minX) + b}), nil
	case outer.Y >= c.MaxY && insideX && m != 0: // top
		return truncate(vec.Vec2{X: (maxY - b) / m, Y: maxY}), nil
	}

	// corner regions
	switch {
	case d.X > 0 && d.Y > 0: // E
		return Point{X: c.MaxX, Y: c.MaxY}, nil
	case d.X > 0 && d.Y < 0: // F
		return Point{X: c.MaxX, Y: c.MinY}, nil
	case d.X < 0 && d.Y < 0: // G
		return Point{X: c.MinX, Y: c.MinY}, nil
	case d.X < 0 && d.Y > 0: // H
		return Point{X: c.MinX, Y: c.MaxY}, nil
	}
	return Point{}, &GeometryError{Inner: inner, Outer: outer}
}

func truncate(v vec.Vec2) Point {
	return Point{X: int(v.X), Y: int(v.Y)}
}
