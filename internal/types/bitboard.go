/*
 * Tak engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2020-2026 Tak engine contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import "math/bits"

// Bitboard is a 64 bit unsigned int with one bit per square. The board is
// always stored inside a fixed 8x8 grid (RowLen == 8) regardless of the
// configured N, which keeps every supported size (3..8) inside a single
// machine word: unused columns/rows beyond N are simply never set.
type Bitboard uint64

// RowLen is the fixed row stride every Geometry uses. N (3..8) is always
// less than or equal to RowLen, so the padding columns/rows absorb the
// difference and a single uint64 bitboard width serves every board size.
const RowLen = 8

// hardware column masks (independent of N - these bound the raw 8x8 grid)
const (
	colHW0 Bitboard = 0x0101010101010101 // column 0 of every row
	colHW7 Bitboard = 0x8080808080808080 // column 7 of every row
)

// Bb returns the single-bit Bitboard for a square.
func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sq.Bb() != 0
}

// Set returns b with sq's bit set.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | sq.Bb()
}

// Clear returns b with sq's bit cleared.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ sq.Bb()
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Empty reports whether no bit is set.
func (b Bitboard) Empty() bool {
	return b == 0
}

// LowestSquare returns the lowest-index set square of b. Only valid when
// b is non-empty.
func (b Bitboard) LowestSquare() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// HighestSquare returns the highest-index set square of b. Only valid
// when b is non-empty.
func (b Bitboard) HighestSquare() Square {
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// BitSquares returns the set squares of b in ascending order.
func (b Bitboard) BitSquares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for bb := b; bb != 0; {
		sq := bb.LowestSquare()
		squares = append(squares, sq)
		bb = bb.Clear(sq)
	}
	return squares
}

// Shift moves every bit of b by one square in the given direction, using
// hardware column masks to stop bits spilling into the next/previous row.
// The caller is responsible for intersecting the result with a Geometry's
// Board mask when off-board squares must not count.
func Shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case East:
		return (b &^ colHW7) << 1
	case West:
		return (b &^ colHW0) >> 1
	case North:
		return b << RowLen
	case South:
		return b >> RowLen
	default:
		return b
	}
}

// Spread ORs together the four single-step shifts of b, i.e. every square
// orthogonally adjacent to a set bit of b.
func Spread(b Bitboard) Bitboard {
	return Shift(b, East) | Shift(b, North) | Shift(b, West) | Shift(b, South)
}
