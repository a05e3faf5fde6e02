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

// Package zobrist holds the process-wide Zobrist key tables: one
// contribution per (square, top piece kind), one per (square, stack
// contents, remaining capacity), and a side-to-move constant. The
// tables are immutable once initialized and freely shared across any
// number of board.State instances.
package zobrist

import (
	"math/rand"
	"runtime"
	"sync/atomic"

	"github.com/gopherstak/tak/internal/stack"
	"github.com/gopherstak/tak/internal/types"
)

const (
	stateUninitialized int32 = iota
	stateInitializing
	stateInitialized
)

var initState int32

// sqPieceKind[sq][kind] is the contribution for square sq's top piece
// being of kind k, independent of color.
var sqPieceKind [64][types.PieceKindLength]uint64

// stackLayer[sq][remainingCapacity][color] is the per-piece contribution
// used by StackKey's recursive factorization: the key of a single piece
// of the given color sitting at the square when the pile above it still
// has remainingCapacity free slots.
var stackLayer [64][stack.Bits][types.ColorLength]uint64

var sideToMoveKey uint64

// Ensure performs the one-time table fill. Safe to call from any number
// of goroutines: a three-state flag (uninitialized / initializing /
// initialized) guarantees that any caller who observes "initialized"
// also observes the fully populated tables, and a concurrent caller who
// arrives mid-fill spins rather than reading a half-built table.
func Ensure() {
	for {
		switch atomic.LoadInt32(&initState) {
		case stateInitialized:
			return
		case stateUninitialized:
			if atomic.CompareAndSwapInt32(&initState, stateUninitialized, stateInitializing) {
				fill()
				atomic.StoreInt32(&initState, stateInitialized)
				return
			}
		default:
			runtime.Gosched()
		}
	}
}

func fill() {
	r := rand.New(rand.NewSource(seed))
	for sq := 0; sq < 64; sq++ {
		for k := types.PieceKind(0); k < types.PieceKindLength; k++ {
			sqPieceKind[sq][k] = r.Uint64()
		}
		for rc := 0; rc < stack.Bits; rc++ {
			for c := types.Color(0); c < types.ColorLength; c++ {
				stackLayer[sq][rc][c] = r.Uint64()
			}
		}
	}
	sideToMoveKey = r.Uint64()
}

// SqPieceKind returns the Zobrist contribution for sq's top piece being
// of kind k.
func SqPieceKind(sq types.Square, k types.PieceKind) uint64 {
	Ensure()
	return sqPieceKind[sq][k]
}

// SideToMove returns the constant XORed in when it is black to move.
func SideToMove() uint64 {
	Ensure()
	return sideToMoveKey
}

// StackKey returns the Zobrist contribution for the full color
// composition of the pile p sitting at sq. Defined recursively: a
// height-1 pile draws its key straight from stackLayer; a taller pile
// XORs its top piece's key (at its own remaining-capacity slot) with
// the key of the pile beneath it (whose remaining capacity is one
// greater). This factorization is what lets a throw XOR out exactly
// the vertical slice it disturbs without rehashing untouched pieces.
func StackKey(sq types.Square, p stack.Pile) uint64 {
	Ensure()
	if p.IsEmpty() {
		return 0
	}
	color, _ := p.Top()
	rc := p.RemainingCapacity()
	rest, _ := p.Take(1)
	return stackLayer[sq][rc][color] ^ StackKey(sq, rest)
}
