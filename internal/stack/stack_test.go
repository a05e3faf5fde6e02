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

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherstak/tak/internal/types"
)

// buildPile drops colors onto Empty bottom-first, so colors[0] ends up
// buried deepest and colors[len-1] ends up on top.
func buildPile(colors ...types.Color) Pile {
	p := Empty
	for _, c := range colors {
		p, _ = p.Drop(Hand(c), 1)
	}
	return p
}

func TestTopIsTheLastPieceDropped(t *testing.T) {
	p := buildPile(types.White, types.White, types.Black)
	top, ok := p.Top()
	assert.True(t, ok)
	assert.Equal(t, types.Black, top)
	assert.Equal(t, 3, p.Height())
}

func TestTopOnEmptyIsFalse(t *testing.T) {
	_, ok := Empty.Top()
	assert.False(t, ok)
	assert.Equal(t, 0, Empty.Height())
	assert.True(t, Empty.IsEmpty())
}

// TestTakeThenDropRoundTrips checks that Take is Drop's exact inverse,
// for piles taller than one piece.
func TestTakeThenDropRoundTrips(t *testing.T) {
	p := buildPile(types.Black, types.White, types.White, types.Black, types.White)
	for k := 1; k <= p.Height(); k++ {
		rest, hand := p.Take(k)
		rebuilt, leftover := rest.Drop(hand, k)
		assert.Equal(t, Hand(0), leftover, "k=%d", k)
		assert.Equal(t, p, rebuilt, "k=%d", k)
	}
}

// TestTakeOnTallPileReadsTopColorsFirst checks that taking from a
// height >= 2 pile hands back the colors nearest the top, not the ones
// buried at the bottom.
func TestTakeOnTallPileReadsTopColorsFirst(t *testing.T) {
	// bottom-to-top: white, white, black -- top is black.
	p := buildPile(types.White, types.White, types.Black)
	rest, hand := p.Take(2)

	assert.Equal(t, 1, rest.Height())
	restTop, ok := rest.Top()
	assert.True(t, ok)
	assert.Equal(t, types.White, restTop)

	handTop, ok := Pile(hand).Top()
	assert.True(t, ok, "hand bit 0 should read back as the pile's former top")
	assert.Equal(t, types.Black, handTop)
}

func TestTakeAllEmptiesThePile(t *testing.T) {
	p := buildPile(types.White, types.Black)
	rest, hand := p.Take(2)
	assert.Equal(t, Empty, rest)
	assert.True(t, rest.IsEmpty())
	assert.Equal(t, p, FromHandAndCount(hand, 2))
}

func TestDropGrowsHeightAndKeepsOldContentBelow(t *testing.T) {
	p := buildPile(types.White)
	grown, leftover := p.Drop(Hand(types.Black), 1)
	assert.Equal(t, Hand(0), leftover)
	assert.Equal(t, 2, grown.Height())
	top, _ := grown.Top()
	assert.Equal(t, types.Black, top)
}

func TestFromHandAndCountMatchesDirectBuild(t *testing.T) {
	built := buildPile(types.Black, types.White, types.Black)
	_, hand := built.Take(built.Height())
	fromHand := FromHandAndCount(hand, 3)
	assert.Equal(t, built, fromHand)
}

func TestRemainingCapacity(t *testing.T) {
	assert.Equal(t, Bits-1, Empty.RemainingCapacity())
	p := buildPile(types.White, types.White)
	assert.Equal(t, Bits-1-2, p.RemainingCapacity())
}
