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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
)

// PlotOptions controls the page layout of [WritePDF].
type PlotOptions struct {
	// PageWidth and PageHeight give the paper size in PDF points.
	PageWidth, PageHeight float64

	// Margin is the blank space around the canvas, in PDF points.
	Margin float64

	// LineWidth is the pen width in PDF points.
	LineWidth float64

	// Cap and Join set the pen shape at line ends and corners.
	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle
}

// DefaultPlotOptions gives an A4 page with round pen strokes.
var DefaultPlotOptions = &PlotOptions{
	PageWidth:  595,
	PageHeight: 842,
	Margin:     36,
	LineWidth:  0.5,
	Cap:        graphics.LineCapRound,
	Join:       graphics.LineJoinRound,
}

// WritePDF writes the lines of res as a single-page PDF file.  The canvas
// is scaled uniformly to fit the page inside the margins.  Colors are
// converted to gray levels.
//
// If opts is nil, [DefaultPlotOptions] is used.
func WritePDF(res *Result, fileName string, opts *PlotOptions) error {
	if opts == nil {
		opts = DefaultPlotOptions
	}
	availX := opts.PageWidth - 2*opts.Margin
	availY := opts.PageHeight - 2*opts.Margin
	if availX <= 0 || availY <= 0 {
		return fmt.Errorf("plotter: page %gx%g too small for margin %g",
			opts.PageWidth, opts.PageHeight, opts.Margin)
	}

	paper := &pdf.Rectangle{
		URx: opts.PageWidth,
		URy: opts.PageHeight,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF and canvas coordinates both have the y-axis pointing up
	r := res.Canvas.Rect()
	scale := min(availX/(r.URx-r.LLx), availY/(r.URy-r.LLy))
	offsX := opts.Margin + (availX-scale*(r.URx-r.LLx))/2
	offsY := opts.Margin + (availY-scale*(r.URy-r.LLy))/2
	page.Transform(matrix.Matrix{
		scale, 0,
		0, scale,
		offsX - scale*r.LLx, offsY - scale*r.LLy,
	})

	// line widths are given in user space
	page.SetLineWidth(opts.LineWidth / scale)
	page.SetLineCap(opts.Cap)
	page.SetLineJoin(opts.Join)

	for _, s := range res.Strokes() {
		page.SetStrokeColor(color.DeviceGray(s.Color.Gray()))
		coordIdx := 0
		for _, cmd := range s.Path.Cmds {
			pt := s.Path.Coords[coordIdx]
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pt.X, pt.Y)
			case path.CmdLineTo:
				page.LineTo(pt.X, pt.Y)
			}
			coordIdx++
		}
		page.Stroke()
	}

	return page.Close()
}
