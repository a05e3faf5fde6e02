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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/ptn"
)

// The opening's first two plies are placements only, one per empty
// square, each owned by the mover's opponent (the swap rule) -- so the
// depth-1 and depth-2 leaf counts reduce to simple closed forms (N*N and
// N*N*(N*N-1)) independent of the rest of move generation, and are a
// useful low-level cross-check before trusting deeper counts that
// exercise throws.
func TestPerftOpeningDepths(t *testing.T) {
	cases := []struct {
		n      int
		d1, d2 uint64
	}{
		{3, 9, 72},
		{4, 16, 240},
		{5, 25, 600},
		{6, 36, 1260},
		{7, 49, 2352},
	}
	for _, c := range cases {
		s := board.NewState(c.n)
		assert.Equal(t, c.d1, Count(s, 1, Batch), "N=%d depth 1", c.n)
		assert.Equal(t, c.d2, Count(s, 2, Batch), "N=%d depth 2", c.n)
		assert.Equal(t, Count(s, 1, Naive), Count(s, 1, Batch), "N=%d naive/batch parity depth 1", c.n)
	}
}

// TestPerftStartPositionDeepCounts exercises throws, since depth 3 is
// the first ply on which a stack exists to throw from. These leaf
// counts come straight from the reference engine, not from this
// implementation, so they catch regressions in move generation and in
// the make/unmake path (stack.Take/Drop/Top included) that the
// opening-only depth-1/2 closed forms above can't reach.
func TestPerftStartPositionDeepCounts(t *testing.T) {
	cases := []struct {
		n     int
		depth []uint64
	}{
		{3, []uint64{9, 72, 1200, 17792, 271812}},
		{4, []uint64{16, 240, 7440, 216464}},
		{5, []uint64{25, 600, 43320}},
		{6, []uint64{36, 1260, 132720}},
	}
	for _, c := range cases {
		s := board.NewState(c.n)
		for depth, want := range c.depth {
			assert.Equal(t, want, Count(s, depth+1, Batch), "N=%d depth %d", c.n, depth+1)
		}
	}
}

// TestPerftMidgameDeepCounts cross-checks a position that already holds
// a multi-piece stack (the "121" square), so it exercises throws whose
// source pile has height >= 2, unlike the fresh-board counts above.
func TestPerftMidgameDeepCounts(t *testing.T) {
	tps := "x4,2C,1/x4,1C,x/x2,1S,1,121,x/x,2,x4/x3,2S,2S,x/2,x5 1 8"
	s, err := ptn.ParseTPS(tps)
	assert.NoError(t, err)
	want := []uint64{72, 4655, 332432, 21315929}
	for depth, w := range want {
		assert.Equal(t, w, Count(s, depth+1, Batch), "depth %d", depth+1)
	}
}
