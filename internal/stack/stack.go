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

// Package stack implements the per-square pile encoding: a compact
// integer representation of the colored pieces beneath and including a
// square's top, with the take/drop operations throws are built from.
package stack

import (
	"math/bits"

	"github.com/gopherstak/tak/internal/types"
)

// Pile is the per-square stack integer. One bit per piece, color-coded
// (0=white, 1=black), bit 0 is the topmost piece and each higher bit is
// one piece further down, plus a sentinel bit one above the bottom
// piece's bit so that height is recoverable and the all-zero value is
// distinct from "one white piece". Width is fixed at 64 bits for every
// supported board size: the tallest a Tak stack can plausibly grow is
// bounded by the total number of stones+caps in play, well under 63 for
// any N in 3..8.
type Pile uint64

// Empty is the sentinel value of an unoccupied square: no pieces, no
// sentinel bit set either.
const Empty Pile = 0

// Bits is the width of Pile in bits.
const Bits = 64

// Hand is pieces picked up off a stack (or off the board for the first
// placement source) during a throw, encoded the same way a Pile is:
// bit i is the color of the piece i steps below the hand's top (bit 0
// was the top piece of the pile it was taken from).
type Hand uint64

// Height returns the number of pieces in p. The empty pile has height 0.
func (p Pile) Height() int {
	if p == Empty {
		return 0
	}
	return Bits - 1 - bits.LeadingZeros64(uint64(p))
}

// IsEmpty reports whether the stack holds no pieces.
func (p Pile) IsEmpty() bool {
	return p == Empty
}

// Top returns the color of the topmost piece and true, or false if the
// stack is empty. Bit 0 is always the top piece.
func (p Pile) Top() (types.Color, bool) {
	if p == Empty {
		return 0, false
	}
	return types.Color(p & 1), true
}

// Take removes the top k pieces of p into a Hand and returns the
// remaining stack and the hand. Hand bit i is p's bit i, the exact
// inverse of Drop (hand bit i lands back at pile bit i). Requires
// k <= p.Height().
func (p Pile) Take(k int) (Pile, Hand) {
	h := p.Height()
	remaining := h - k
	hand := Hand(p) & ((Hand(1) << uint(k)) - 1)
	rest := p >> uint(k)
	if remaining == 0 {
		rest = Empty
	}
	return rest, hand
}

// Drop pushes the low k bits of hand (the hand's top k pieces) onto p,
// hand bit 0 becoming p's new top, shifting p's own sentinel/content
// left by k, and returns the rest of the hand shifted down by k. Requires
// k <= Bits-1-p.Height().
func (p Pile) Drop(hand Hand, k int) (Pile, Hand) {
	h := p.Height()
	var content Pile
	if p != Empty {
		content = p &^ (Pile(1) << uint(h))
	}
	dropped := hand & ((Hand(1) << uint(k)) - 1)
	newHeight := h + k
	newContent := (content << uint(k)) | Pile(dropped)
	rest := hand >> uint(k)
	return newContent | (Pile(1) << uint(newHeight)), rest
}

// FromHandAndCount builds the Pile that represents taking the top k
// pieces of hand off the board, bottom-to-top, as a standalone stack.
// Bits of hand at or above position k are ignored. Used to compute the
// Zobrist sub-stack key for the slice of a pile that moved.
func FromHandAndCount(hand Hand, k int) Pile {
	if k == 0 {
		return Empty
	}
	content := uint64(hand) & ((uint64(1) << uint(k)) - 1)
	return Pile(content) | (Pile(1) << uint(k))
}

// RemainingCapacity returns how many more pieces could be dropped onto p
// before it exhausts the Pile's bit width.
func (p Pile) RemainingCapacity() int {
	return Bits - 1 - p.Height()
}
