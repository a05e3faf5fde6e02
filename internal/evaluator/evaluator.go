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

// Package evaluator scores a non-terminal board.State: material (flat
// count and reserves) plus a bounded flood-distance estimate of how far
// each side is from finishing a road, symmetric around the side to move.
package evaluator

import (
	"container/list"

	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/config"
	"github.com/gopherstak/tak/internal/types"
)

// Evaluate scores s from the perspective of the side to move: positive
// favors the mover. Terminal positions return a decisive Win/Loss/Draw
// value; non-terminal ones combine material and road-distance.
func Evaluate(s *board.State, ply int) types.Value {
	us := s.ActiveColor()

	switch status := s.CheckStatus(); status {
	case board.Ongoing:
		// fall through to the heuristic below.
	case board.Draw:
		return types.Draw
	default:
		moverWon := (status == board.WhiteWins && us == types.White) ||
			(status == board.BlackWins && us == types.Black)
		if moverWon {
			return types.Win(ply)
		}
		return types.Loss(ply)
	}

	them := us.Flip()

	material := materialScore(s, us) - materialScore(s, them)

	cfg := config.Settings.Eval
	maxDist := s.N() + cfg.MaxDistOffset
	if maxDist < 0 {
		maxDist = 0
	}
	if maxDist > s.N()-1 {
		maxDist = s.N() - 1
	}
	ourDist := roadDistance(s, us, maxDist)
	theirDist := roadDistance(s, them, maxDist)
	// Closer to a road is worth more: invert the distance into a score.
	geometry := types.Value((maxDist-ourDist)-(maxDist-theirDist)) * types.Value(cfg.RoadDistanceWeight)

	score := material + geometry + types.Value(cfg.SideToMoveBonus)
	return score
}

func materialScore(s *board.State, c types.Color) types.Value {
	cfg := config.Settings.Eval
	flats := s.FlatCount(c)
	return types.Value(flats*cfg.FlatDiffWeight) +
		types.Value(s.StonesLeft(c)*cfg.StonesLeftWeight) +
		types.Value(s.CapsLeft(c)*cfg.CapsLeftWeight)
}

// roadDistance returns the minimum over the two axes of the bounded
// flood-distance estimate of how many non-road placements c still needs
// to complete a road, capped at maxDist.
func roadDistance(s *board.State, c types.Color, maxDist int) int {
	geo := s.Geometry()
	own := s.RoadBb(c)
	opp := s.Opp(c)
	blockedByOwnWall := ownWallsOf(s, c)
	traversable := geo.Board &^ (blockedByOwnWall | opp)

	vertical := flood(geo, geo.EdgeSouth, geo.EdgeNorth, traversable, own, maxDist)
	horizontal := flood(geo, geo.EdgeWest, geo.EdgeEast, traversable, own, maxDist)
	if vertical < horizontal {
		return vertical
	}
	return horizontal
}

func ownWallsOf(s *board.State, c types.Color) types.Bitboard {
	var walls types.Bitboard
	for _, sq := range s.Own(c).BitSquares() {
		k, _, _ := s.TopKind(sq)
		if k == types.Wall {
			walls = walls.Set(sq)
		}
	}
	return walls
}

type frontierNode struct {
	sq   types.Square
	dist int
}

// flood runs a 0-1 BFS from every traversable square on edgeFrom toward
// edgeTo: stepping into a fast (already-road) square costs 0, any other
// traversable square costs 1, stepping into a blocked square is
// impossible. Returns the minimum distance to edgeTo, capped at cap+1
// (meaning "no road on this axis within the budget").
func flood(g *types.Geometry, edgeFrom, edgeTo, traversable, fast types.Bitboard, cap int) int {
	const unreached = 1 << 30
	var dist [64]int
	for i := range dist {
		dist[i] = unreached
	}

	dq := list.New()
	for _, sq := range (edgeFrom & traversable).BitSquares() {
		d := 1
		if fast.Has(sq) {
			d = 0
		}
		if d <= cap {
			dist[sq] = d
			if d == 0 {
				dq.PushFront(frontierNode{sq, d})
			} else {
				dq.PushBack(frontierNode{sq, d})
			}
		}
	}

	for dq.Len() > 0 {
		front := dq.Front()
		dq.Remove(front)
		cur := front.Value.(frontierNode)
		if cur.dist > dist[cur.sq] {
			continue
		}
		for _, d := range types.AllDirections {
			next := types.Shift(cur.sq.Bb(), d) & traversable
			if next.Empty() {
				continue
			}
			nsq := next.LowestSquare()
			step := 1
			if fast.Has(nsq) {
				step = 0
			}
			nd := cur.dist + step
			if nd > cap {
				continue
			}
			if nd < dist[nsq] {
				dist[nsq] = nd
				if step == 0 {
					dq.PushFront(frontierNode{nsq, nd})
				} else {
					dq.PushBack(frontierNode{nsq, nd})
				}
			}
		}
	}

	best := cap + 1
	for _, sq := range (edgeTo & traversable).BitSquares() {
		if dist[sq] < best {
			best = dist[sq]
		}
	}
	return best
}
