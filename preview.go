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
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Preview renders decoded streams into RGBA images, for checking a plot
// before sending it to the device.  Create one instance and reuse it for
// multiple results.
//
// A Preview is not safe for concurrent use.
type Preview struct {
	// Width and Height set the image size in pixels.
	Width, Height int

	// Margin is the space between the canvas and the image border,
	// in pixels.
	Margin int

	// LineWidth is the stroke width in pixels.  Must be positive.
	LineWidth float64

	// Background fills the image before drawing.
	Background color.Color

	// ShowPenPoints marks the positions where the pen was lowered (green)
	// and raised (red).
	ShowPenPoints bool

	// Labels prints the canvas bounds and the number of commands.
	Labels bool

	rast *vector.Rasterizer
	ctm  matrix.Matrix // canvas to pixel coordinates
}

// NewPreview returns a Preview for images of the given size, with
// default values for all other parameters.
func NewPreview(width, height int) *Preview {
	return &Preview{
		Width:         width,
		Height:        height,
		Margin:        defaultPreviewMargin,
		LineWidth:     defaultPreviewLineWidth,
		Background:    color.White,
		ShowPenPoints: true,
		Labels:        true,
	}
}

const (
	defaultPreviewMargin    = 16
	defaultPreviewLineWidth = 1.5

	// penMarkSize is the diameter of pen point markers, relative to the
	// line width.
	penMarkSize = 3
)

var (
	penDownMark = color.NRGBA{R: 0, G: 160, B: 0, A: 255}
	penUpMark   = color.NRGBA{R: 200, G: 0, B: 0, A: 255}
	labelColor  = color.NRGBA{R: 96, G: 96, B: 96, A: 255}
)

// Render draws the lines of res.  The canvas is scaled uniformly to fit
// into the image, with the y-axis pointing up.
func (p *Preview) Render(res *Result) (*image.RGBA, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return nil, fmt.Errorf("plotter: invalid preview size %dx%d", p.Width, p.Height)
	}
	if p.LineWidth <= 0 {
		return nil, fmt.Errorf("plotter: invalid preview line width %g", p.LineWidth)
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)

	p.ctm = p.canvasTransform(res.Canvas)
	if p.rast == nil {
		p.rast = vector.NewRasterizer(p.Width, p.Height)
	}

	for _, s := range res.Strokes() {
		p.rast.Reset(p.Width, p.Height)
		p.addPath(s.Path)
		p.rast.Draw(img, img.Bounds(), image.NewUniform(s.Color.NRGBA()), image.Point{})
	}

	if p.ShowPenPoints {
		p.drawMarks(img, res.PenDownPoints, penDownMark)
		p.drawMarks(img, res.PenUpPoints, penUpMark)
	}

	if p.Labels {
		c := res.Canvas
		p.label(img, 2, 13, fmt.Sprintf("%d commands", len(res.Commands)))
		p.label(img, 2, p.Height-3, fmt.Sprintf("x [%d, %d]  y [%d, %d]", c.MinX, c.MaxX, c.MinY, c.MaxY))
	}

	return img, nil
}

// canvasTransform maps canvas coordinates to pixel coordinates.
func (p *Preview) canvasTransform(c *Canvas) matrix.Matrix {
	r := c.Rect()
	availX := float64(p.Width - 2*p.Margin)
	availY := float64(p.Height - 2*p.Margin)
	scale := min(availX/(r.URx-r.LLx), availY/(r.URy-r.LLy))

	// center the canvas inside the margins
	offsX := float64(p.Margin) + (availX-scale*(r.URx-r.LLx))/2
	offsY := float64(p.Margin) + (availY-scale*(r.URy-r.LLy))/2

	return matrix.Matrix{
		scale, 0,
		0, -scale,
		offsX - scale*r.LLx, offsY + scale*r.URy,
	}
}

// toDevice transforms a point from canvas to pixel coordinates.
func (p *Preview) toDevice(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.ctm[0]*v.X + p.ctm[2]*v.Y + p.ctm[4],
		Y: p.ctm[1]*v.X + p.ctm[3]*v.Y + p.ctm[5],
	}
}

// addPath adds the outline of every line segment in pth to the rasterizer.
func (p *Preview) addPath(pth *path.Data) {
	var current vec.Vec2
	coordIdx := 0
	for _, cmd := range pth.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.toDevice(pth.Coords[coordIdx])
			coordIdx++
		case path.CmdLineTo:
			next := p.toDevice(pth.Coords[coordIdx])
			p.addSegment(current, next)
			current = next
			coordIdx++
		}
	}
}

// addSegment adds a rectangle of width LineWidth around the segment from a
// to b.  The rectangle extends by half the line width beyond both ends, so
// that consecutive segments join without gaps.
//
// All rectangles are added with the same orientation, so overlapping
// segments do not cancel out.
func (p *Preview) addSegment(a, b vec.Vec2) {
	hw := p.LineWidth / 2

	t := vec.Vec2{X: 1, Y: 0}
	if l := b.Sub(a).Length(); l > zeroLengthThreshold {
		t = b.Sub(a).Mul(1 / l)
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(hw)
	a = a.Sub(t.Mul(hw))
	b = b.Add(t.Mul(hw))

	p.quad(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

func (p *Preview) quad(v0, v1, v2, v3 vec.Vec2) {
	p.rast.MoveTo(float32(v0.X), float32(v0.Y))
	p.rast.LineTo(float32(v1.X), float32(v1.Y))
	p.rast.LineTo(float32(v2.X), float32(v2.Y))
	p.rast.LineTo(float32(v3.X), float32(v3.Y))
	p.rast.ClosePath()
}

// drawMarks draws a small disc at every point.
func (p *Preview) drawMarks(img *image.RGBA, pts []Point, col color.Color) {
	if len(pts) == 0 {
		return
	}
	radius := float32(p.LineWidth * penMarkSize / 2)
	p.rast.Reset(p.Width, p.Height)
	for _, pt := range pts {
		c := p.toDevice(pt.Vec())
		p.disc(float32(c.X), float32(c.Y), radius)
	}
	p.rast.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
}

// disc adds a circle, approximated by four cubic Bézier curves.
func (p *Preview) disc(cx, cy, r float32) {
	const k = float32(0.5522847498)
	kr := k * r

	p.rast.MoveTo(cx, cy-r)
	p.rast.CubeTo(cx+kr, cy-r, cx+r, cy-kr, cx+r, cy)
	p.rast.CubeTo(cx+r, cy+kr, cx+kr, cy+r, cx, cy+r)
	p.rast.CubeTo(cx-kr, cy+r, cx-r, cy+kr, cx-r, cy)
	p.rast.CubeTo(cx-r, cy-kr, cx-kr, cy-r, cx, cy-r)
	p.rast.ClosePath()
}

// label prints text with its baseline starting at pixel (x, y).
func (p *Preview) label(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// zeroLengthThreshold is the pixel length below which a segment is drawn
// as a dot.
const zeroLengthThreshold = 1e-10
