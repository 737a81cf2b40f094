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

	"seehuhn.de/go/geom/path"
)

// Result is the output of [Decode].
type Result struct {
	// Canvas is the canvas the stream was decoded on.
	Canvas *Canvas

	// Commands lists the decoded commands, including the moves and pen
	// changes inserted where the path crosses the canvas edge.
	Commands []Command

	// Lines lists the strokes drawn with the pen down.  When decoding on
	// the default canvas, the first four entries are the canvas borders.
	Lines []Line

	// PenUpPoints and PenDownPoints list the positions where the pen was
	// raised or lowered.
	PenUpPoints   []Point
	PenDownPoints []Point
}

// Strings returns the textual form of all commands.
func (r *Result) Strings() []string {
	res := make([]string, len(r.Commands))
	for i, cmd := range r.Commands {
		res[i] = cmd.String()
	}
	return res
}

// Stroke is a group of consecutive lines drawn in the same color.
type Stroke struct {
	Color Color

	// Path holds the lines in canvas coordinates.  Lines which join up
	// form a single subpath.
	Path *path.Data
}

// Strokes groups the lines of r by color, keeping their order.
func (r *Result) Strokes() []Stroke {
	var res []Stroke
	var last Point
	for _, l := range r.Lines {
		n := len(res)
		if n == 0 || res[n-1].Color != l.Color {
			res = append(res, Stroke{Color: l.Color, Path: &path.Data{}})
			n++
		} else if l.Start == last {
			res[n-1].Path = res[n-1].Path.LineTo(l.End.Vec())
			last = l.End
			continue
		}
		res[n-1].Path = res[n-1].Path.MoveTo(l.Start.Vec()).LineTo(l.End.Vec())
		last = l.End
	}
	return res
}

// View is the data shown by the web front-end for one decoded stream.
type View struct {
	Commands      []string    `json:"commands"`
	Lines         []ViewLine  `json:"lines"`
	PenUpPoints   []ViewPoint `json:"pen_up_points"`
	PenDownPoints []ViewPoint `json:"pen_down_points"`
	CanvasRange   ViewRange   `json:"canvas_range"`
}

// ViewPoint is a point in a [View].
type ViewPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ViewLine is a line in a [View].  Color is formatted as "rgba(r, g, b, a)".
type ViewLine struct {
	Start ViewPoint `json:"start_point"`
	End   ViewPoint `json:"finish_point"`
	Color string    `json:"color"`
}

// ViewRange is the visible area of a [View].
type ViewRange struct {
	MinX int `json:"min_x"`
	MaxX int `json:"max_x"`
	MinY int `json:"min_y"`
	MaxY int `json:"max_y"`
}

// ViewPadding is the space shown around the canvas in a [View].
const ViewPadding = 300

// View returns the data needed to display r.
func (r *Result) View() *View {
	v := &View{
		Commands:      r.Strings(),
		Lines:         make([]ViewLine, len(r.Lines)),
		PenUpPoints:   viewPoints(r.PenUpPoints),
		PenDownPoints: viewPoints(r.PenDownPoints),
		CanvasRange: ViewRange{
			MinX: r.Canvas.MinX - ViewPadding,
			MaxX: r.Canvas.MaxX + ViewPadding,
			MinY: r.Canvas.MinY - ViewPadding,
			MaxY: r.Canvas.MaxY + ViewPadding,
		},
	}
	for i, l := range r.Lines {
		v.Lines[i] = ViewLine{
			Start: ViewPoint(l.Start),
			End:   ViewPoint(l.End),
			Color: fmt.Sprintf("rgba(%d, %d, %d, %d)", l.Color.R, l.Color.G, l.Color.B, l.Color.A),
		}
	}
	return v
}

func viewPoints(pts []Point) []ViewPoint {
	res := make([]ViewPoint, len(pts))
	for i, p := range pts {
		res[i] = ViewPoint(p)
	}
	return res
}
