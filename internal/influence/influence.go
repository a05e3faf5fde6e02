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

// Package influence implements the edge-seeded flood fill that detects
// road connectivity and, expanded by one halo tile, feeds the
// evaluator's road-distance estimate.
package influence

import "github.com/gopherstak/tak/internal/types"

// Sides holds, for one color, the four edge-seeded floods over that
// color's road tiles: South grows from the bottom edge, North from the
// top, West from the left, East from the right. A road exists once
// South meets North (a vertical road) or West meets East (a horizontal
// one).
type Sides struct {
	South, North, West, East types.Bitboard
}

// Flood runs the flood fill to a fixed point: repeatedly OR each
// direction's frontier with its orthogonal neighbors that are set in
// road, until nothing changes. road should be the color's own road
// bitboard (flats and the color's caps).
func Flood(g *types.Geometry, road types.Bitboard) Sides {
	grow := func(seed types.Bitboard) types.Bitboard {
		self := seed
		for {
			next := self | (types.Spread(self) & road)
			if next == self {
				return self
			}
			self = next
		}
	}
	return Sides{
		South: grow(g.EdgeSouth),
		North: grow(g.EdgeNorth),
		West:  grow(g.EdgeWest),
		East:  grow(g.EdgeEast),
	}
}

// HasRoad runs the same flood as Flood but stops as soon as a road is
// found, or as soon as every axis has stagnated without one (the "fast
// lane" exit: once both the vertical pair and the horizontal pair have
// each independently reached a fixed point without meeting, no further
// growth can create a road).
func HasRoad(g *types.Geometry, road types.Bitboard) bool {
	south, north := g.EdgeSouth, g.EdgeNorth
	west, east := g.EdgeWest, g.EdgeEast
	vertDone, horizDone := false, false

	for {
		if !(south & north).Empty() || !(west & east).Empty() {
			return true
		}
		if vertDone && horizDone {
			return false
		}

		if !vertDone {
			nSouth := south | (types.Spread(south) & road)
			nNorth := north | (types.Spread(north) & road)
			if nSouth == south && nNorth == north {
				vertDone = true
			}
			south, north = nSouth, nNorth
		}
		if !horizDone {
			nWest := west | (types.Spread(west) & road)
			nEast := east | (types.Spread(east) & road)
			if nWest == west && nEast == east {
				horizDone = true
			}
			west, east = nWest, nEast
		}
	}
}

// Halo expands each flood one tile further, including non-road
// neighbors and unconditionally the board's own edges, to build the
// wider "influence" map board.State.Influence returns.
func (s Sides) Halo(g *types.Geometry) Sides {
	edges := g.EdgeSouth | g.EdgeNorth | g.EdgeWest | g.EdgeEast
	expand := func(self types.Bitboard) types.Bitboard {
		return self | edges | (types.Spread(self) & g.Board)
	}
	return Sides{
		South: expand(s.South),
		North: expand(s.North),
		West:  expand(s.West),
		East:  expand(s.East),
	}
}

// HasRoad reports whether the already-converged Sides contains a road.
func (s Sides) HasRoad() bool {
	return !(s.South & s.North).Empty() || !(s.West & s.East).Empty()
}
