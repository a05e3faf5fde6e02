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

// Geometry precomputes the masks and tables that depend on the configured
// board size N. Every other package works against a *Geometry rather than
// a bare N so that a single runtime-polymorphic board/search/evaluator can
// serve any supported size (3..8) without per-size builds or generics.
type Geometry struct {
	N int

	// Board is the mask of all N*N in-bounds squares inside the fixed
	// 8x8 grid.
	Board Bitboard

	// EdgeWest/EdgeEast/EdgeSouth/EdgeNorth are the masks of the squares
	// touching each board edge, used to seed road flood fills.
	EdgeWest, EdgeEast, EdgeSouth, EdgeNorth Bitboard

	// rayTable[sq][d] is the set of in-bounds squares strictly beyond sq
	// in direction d, nearest first, i.e. the full ray cast from sq.
	rayTable [64][4][]Square
}

// NewGeometry builds the Geometry for an N x N board, 3 <= n <= 8.
func NewGeometry(n int) *Geometry {
	g := &Geometry{N: n}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			g.Board = g.Board.Set(MakeSquare(row, col))
		}
	}
	for row := 0; row < n; row++ {
		g.EdgeWest = g.EdgeWest.Set(MakeSquare(row, 0))
		g.EdgeEast = g.EdgeEast.Set(MakeSquare(row, n-1))
	}
	for col := 0; col < n; col++ {
		g.EdgeSouth = g.EdgeSouth.Set(MakeSquare(0, col))
		g.EdgeNorth = g.EdgeNorth.Set(MakeSquare(n-1, col))
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			sq := MakeSquare(row, col)
			for _, d := range AllDirections {
				g.rayTable[sq][d] = g.buildRay(row, col, d)
			}
		}
	}
	return g
}

func (g *Geometry) buildRay(row, col int, d Direction) []Square {
	var ray []Square
	r, c := row, col
	for {
		switch d {
		case East:
			c++
		case West:
			c--
		case North:
			r++
		case South:
			r--
		}
		if r < 0 || r >= g.N || c < 0 || c >= g.N {
			break
		}
		ray = append(ray, MakeSquare(r, c))
	}
	return ray
}

// InBounds reports whether sq lies within the N x N board.
func (g *Geometry) InBounds(sq Square) bool {
	return g.Board.Has(sq)
}

// Ray returns the in-bounds squares strictly beyond sq in direction d,
// ordered nearest-first. The slice must not be mutated by the caller.
func (g *Geometry) Ray(sq Square, d Direction) []Square {
	return g.rayTable[sq][d]
}

// ClosestHit walks the ray from sq in direction d and returns the first
// square whose bit is set in occupied, and whether one was found; a ray
// that reaches the board edge without a hit returns false. Move
// generation uses it to find the first wall or cap along a cap's throw.
func (g *Geometry) ClosestHit(sq Square, d Direction, occupied Bitboard) (Square, bool) {
	for _, s := range g.rayTable[sq][d] {
		if occupied.Has(s) {
			return s, true
		}
	}
	return SqNone, false
}

// Distance returns the number of squares strictly between sq and the
// nearest occupied square in direction d, i.e. how far a piece could
// travel from sq before running into occupied or the board edge.
// Distance returns len(ray) (the full ray length) if nothing blocks it.
func (g *Geometry) Distance(sq Square, d Direction, occupied Bitboard) int {
	ray := g.rayTable[sq][d]
	for i, s := range ray {
		if occupied.Has(s) {
			return i
		}
	}
	return len(ray)
}
