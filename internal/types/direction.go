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

// Direction is one of the four throw/ray directions. The move generator
// iterates them in this order: East, North, West, South.
type Direction uint8

const (
	East Direction = iota
	North
	West
	South
	DirectionLength
)

// AllDirections lists the four directions in the order the move
// generator walks them.
var AllDirections = [4]Direction{East, North, West, South}

// PtnGlyph returns the PTN character for the direction.
func (d Direction) PtnGlyph() byte {
	switch d {
	case East:
		return '>'
	case North:
		return '+'
	case West:
		return '<'
	case South:
		return '-'
	default:
		return '?'
	}
}

// DirectionFromGlyph parses a PTN direction character.
func DirectionFromGlyph(b byte) (Direction, bool) {
	switch b {
	case '>':
		return East, true
	case '+':
		return North, true
	case '<':
		return West, true
	case '-':
		return South, true
	default:
		return 0, false
	}
}

func (d Direction) String() string {
	return string(d.PtnGlyph())
}
