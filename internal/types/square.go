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

import "fmt"

// Square is a row-major index into the fixed 8-wide grid: sq = row*RowLen + col.
type Square int8

// SqNone is the sentinel "no square" value, one past the largest square
// the 8x8 grid can address.
const SqNone Square = 64

// Row returns the square's row (0-based, 0 is the bottom rank).
func (sq Square) Row() int {
	return int(sq) / RowLen
}

// Col returns the square's column (0-based).
func (sq Square) Col() int {
	return int(sq) % RowLen
}

// MakeSquare builds a Square from a row and column.
func MakeSquare(row, col int) Square {
	return Square(row*RowLen + col)
}

// Name renders the square using Tak's usual column-letter/row-number
// notation, e.g. "a1", "c3".
func (sq Square) Name() string {
	return fmt.Sprintf("%c%d", 'a'+sq.Col(), sq.Row()+1)
}

func (sq Square) String() string {
	if sq == SqNone {
		return "-"
	}
	return sq.Name()
}

// SquareFromName parses Tak's column-letter/row-number square notation
// within an N-sized board. Returns false if the text isn't a well formed
// square name or falls outside the board.
func SquareFromName(s string, n int) (Square, bool) {
	if len(s) < 2 {
		return 0, false
	}
	col := int(s[0] - 'a')
	if col < 0 || col >= n {
		return 0, false
	}
	row := 0
	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
		row = row*10 + int(c-'0')
	}
	row--
	if row < 0 || row >= n {
		return 0, false
	}
	return MakeSquare(row, col), true
}
