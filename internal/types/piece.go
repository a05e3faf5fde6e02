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

// PieceKind distinguishes the three kinds of pieces. Flat and Cap are
// "road" pieces that contribute to road connectivity; Wall and Cap are
// "block"/noble pieces that cannot be thrown over and cannot be
// captured except by a capstone smash.
type PieceKind uint8

const (
	Flat PieceKind = iota
	Wall
	Cap
	PieceKindLength
)

// IsRoad reports whether the piece kind contributes to road connectivity.
func (k PieceKind) IsRoad() bool {
	return k == Flat || k == Cap
}

// IsBlock reports whether the piece kind blocks throws (noble piece).
func (k PieceKind) IsBlock() bool {
	return k == Wall || k == Cap
}

func (k PieceKind) String() string {
	switch k {
	case Flat:
		return ""
	case Wall:
		return "S"
	case Cap:
		return "C"
	default:
		return "?"
	}
}

// Marker returns the single character PTN uses as a placement prefix,
// or empty string for a flat (the default, unprefixed, placement).
func (k PieceKind) Marker() string {
	switch k {
	case Flat:
		return ""
	case Wall:
		return "S"
	case Cap:
		return "C"
	default:
		return "?"
	}
}
