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
	"fmt"
)

// Reasons for a [ProtocolError].  Use [errors.Is] to test for them.
var (
	ErrPenDownOutOfBounds = errors.New("cannot put the pen down while the drawer is off the canvas")
	ErrPenDownNoPosition  = errors.New("cannot put the pen down before setting an initial point")
)

// ProtocolError reports an instruction which is not valid in the current
// drawer state.
type ProtocolError struct {
	// Offset is the token index of the offending op code.
	Offset int

	// OpCode is the op code token, for example "80".
	OpCode string

	Reason error
}

func (err *ProtocolError) Error() string {
	return fmt.Sprintf("plotter: invalid %s instruction at token %d: %v",
		err.OpCode, err.Offset, err.Reason)
}

func (err *ProtocolError) Unwrap() error {
	return err.Reason
}

// GeometryError is returned when no canvas edge crossing can be found for
// a segment.  For segments with one end inside the canvas and one end
// outside this cannot happen.
type GeometryError struct {
	Inner, Outer Point
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf("plotter: failed to find canvas edge point between %s and %s",
		err.Inner, err.Outer)
}
