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

// Package movegen generates the pseudo-legal actions available in a
// board.State: placements (flats, then walls, then caps, honoring the
// opening's swap rule) and throws (every direction, every takeable
// prefix of a stack, every valid drop pattern, plus capstone smashes).
package movegen

import (
	"math/bits"

	"github.com/op/go-logging"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/board"
	myLogging "github.com/gopherstak/tak/internal/logging"
	"github.com/gopherstak/tak/internal/types"
)

var log *logging.Logger

func init() {
	if log == nil {
		log = myLogging.GetLog()
	}
}

// Generate returns every pseudo-legal action available to the side to
// move in s, in the emission order spec'd: flat placements, then wall
// placements, then cap placements (both skipped during the opening), then
// throws in all four directions (skipped during the opening).
func Generate(s *board.State) []action.Action {
	var actions []action.Action
	actions = appendPlacements(actions, s)
	if !s.IsOpening() {
		actions = appendThrows(actions, s)
	}
	return actions
}

func appendPlacements(actions []action.Action, s *board.State) []action.Action {
	owner := s.ActiveColor()
	if s.IsOpening() {
		owner = owner.Flip()
	}
	empty := s.Empty()

	if s.StonesLeft(owner) > 0 {
		for _, sq := range empty.BitSquares() {
			actions = append(actions, action.NewPlacement(sq, types.Flat))
		}
		if !s.IsOpening() {
			for _, sq := range empty.BitSquares() {
				actions = append(actions, action.NewPlacement(sq, types.Wall))
			}
		}
	}
	if !s.IsOpening() && s.CapsLeft(owner) > 0 {
		for _, sq := range empty.BitSquares() {
			actions = append(actions, action.NewPlacement(sq, types.Cap))
		}
	}
	return actions
}

func appendThrows(actions []action.Action, s *board.State) []action.Action {
	geo := s.Geometry()
	mover := s.ActiveColor()
	own := s.Own(mover)
	blockAll := s.BlockAll()
	hand := geo.N

	for _, src := range own.BitSquares() {
		height := s.StackAt(src).Height()
		maxTake := height
		if maxTake > hand {
			maxTake = hand
		}
		if maxTake == 0 {
			continue
		}
		startBit := uint32(1) << uint(hand-maxTake)
		origKind, _, _ := s.TopKind(src)

		for _, dir := range types.AllDirections {
			rng := geo.Distance(src, dir, blockAll)
			if rng > 0 {
				for _, p := range enumeratePatterns(startBit, rng, hand) {
					actions = append(actions, action.NewThrow(src, dir, p))
				}
			}
			if origKind == types.Cap && rng+1 <= hand {
				hitSq, found := geo.ClosestHit(src, dir, blockAll)
				if found {
					wallKind, _, wallOk := s.TopKind(hitSq)
					if wallOk && wallKind == types.Wall {
						for _, p := range enumeratePatterns(startBit, rng+1, hand) {
							counts := p.DropCounts(hand)
							if len(counts) == rng+1 && counts[len(counts)-1] == 1 {
								actions = append(actions, action.NewThrow(src, dir, p))
							}
						}
					}
				}
			}
		}
	}
	return actions
}

// enumeratePatterns walks the bit-trick from start_bit, yielding every
// pattern value < 1<<hand that spreads the taken pieces over at most rng
// squares: while the running pattern already uses rng squares (popcount
// == rng) the next square's run is extended by adding the pattern's own
// lowest set bit; otherwise a fresh square is opened by adding start_bit.
func enumeratePatterns(startBit uint32, rng, hand int) []action.Pattern {
	var patterns []action.Pattern
	pattern := startBit
	limit := uint32(1) << uint(hand)
	for pattern < limit {
		patterns = append(patterns, action.Pattern(pattern))
		if bits.OnesCount32(pattern) == rng {
			pattern += pattern & (-pattern)
		} else {
			pattern += startBit
		}
	}
	return patterns
}
