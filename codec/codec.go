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

// Package codec converts between signed 14-bit integers and the two-byte
// representation used by the plotter stream format.
//
// A value n in the range [Min, Max] is biased by 8192 to give an unsigned
// 14-bit number d.  The low seven bits of d form the low byte, the high
// seven bits are shifted left by one and form the high byte.  The most
// significant bit of each byte is therefore always clear:
//
//	encoded = (d & 0x7F) | (d & 0x3F80) << 1
//
// For example, 6111 encodes to 0x6F5F and -2628 to 0x2B3C.
package codec

import (
	"fmt"
	"strconv"
)

// Range of values which can be represented.
const (
	Min = -8192
	Max = 8191
)

const bias = 8192

// RangeError is returned by [Encode] for values outside [Min, Max].
type RangeError struct {
	Value int
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("codec: value %d out of range [%d, %d]", err.Value, Min, Max)
}

// FormatError is returned when a byte token is not exactly two hex digits.
type FormatError struct {
	Token string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("codec: malformed byte token %q", err.Token)
}

// Encode returns the two-byte representation of n.
// The high byte is stored in the upper eight bits of the result.
func Encode(n int) (uint16, error) {
	if n < Min || n > Max {
		return 0, &RangeError{Value: n}
	}
	d := n + bias
	low := d & 0x007F
	high := d & 0x3F80
	return uint16(low + high<<1), nil
}

// EncodeBytes returns the two-byte representation of n as a pair of
// upper-case hex tokens, in the order they appear in a stream.
func EncodeBytes(n int) (hi, lo string, err error) {
	v, err := Encode(n)
	if err != nil {
		return "", "", err
	}
	return fmt.Sprintf("%02X", v>>8), fmt.Sprintf("%02X", v&0xFF), nil
}

// Hex formats an encoded value as "0x..." in lower case, without
// leading zeros.
func Hex(v uint16) string {
	return "0x" + strconv.FormatUint(uint64(v), 16)
}

// Decode converts a pair of hex byte tokens back into a signed value.
//
// Each token must consist of exactly two hexadecimal digits.  Beyond this
// no range check is applied: bytes with the most significant bit set,
// which [Encode] never produces, are accepted and decode to values outside
// [Min, Max].
func Decode(hi, lo string) (int, error) {
	h, err := ParseByte(hi)
	if err != nil {
		return 0, err
	}
	l, err := ParseByte(lo)
	if err != nil {
		return 0, err
	}
	return DecodeBytes(h, l), nil
}

// DecodeBytes converts a pair of raw bytes into a signed value.
func DecodeBytes(hi, lo byte) int {
	shifted := int(lo) + int(hi)<<7
	return shifted - bias
}

// ParseByte parses a two-digit hex token.
func ParseByte(tok string) (byte, error) {
	if len(tok) != 2 {
		return 0, &FormatError{Token: tok}
	}
	var b byte
	for i := range 2 {
		c := tok[i]
		var nibble byte
		switch {
		case '0' <= c && c <= '9':
			nibble = c - '0'
		case 'a' <= c && c <= 'f':
			nibble = c - 'a' + 10
		case 'A' <= c && c <= 'F':
			nibble = c - 'A' + 10
		default:
			return 0, &FormatError{Token: tok}
		}
		b = b<<4 | nibble
	}
	return b, nil
}
