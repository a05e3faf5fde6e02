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

// Package board represents the state of a game in progress: the per-square
// stacks, the road/block ownership bitboards they imply, each side's
// reserves, a Zobrist key maintained incrementally, and a fixed-size undo
// ring that lets Play/Undo pairs be used the way a search walks and
// retracts the tree.
//
// Create a new instance with NewState(n).
package board

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/assert"
	"github.com/gopherstak/tak/internal/influence"
	myLogging "github.com/gopherstak/tak/internal/logging"
	"github.com/gopherstak/tak/internal/stack"
	"github.com/gopherstak/tak/internal/types"
	"github.com/gopherstak/tak/internal/zobrist"
)

var log *logging.Logger

func init() {
	zobrist.Ensure()
}

// maxHistory bounds the undo ring. It is sized generously above any game
// that can plausibly be played out under the configured reserves: every
// ply either consumes a reserve piece (bounded) or reduces the mover's
// material distribution (bounded by board size), so real games stay a
// small multiple of the total piece count. Search never nears this bound
// since it is itself depth-limited; it only matters for a played-out game
// history kept for display/PTN purposes.
const maxHistory = 4096

// reserves holds the standard stone/capstone counts for board sizes 3..8,
// indexed by N.
var reserves = map[int][2]int{
	3: {10, 0},
	4: {15, 0},
	5: {21, 1},
	6: {30, 1},
	7: {40, 2},
	8: {50, 2},
}

// DefaultReserves returns board size n's starting stone and cap counts,
// exported for the ptn package to recover the reserves a TPS position
// doesn't encode directly (TPS only shows what's on the board; reserves
// are derived by subtracting placed pieces from these defaults).
func DefaultReserves(n int) (stones, caps int, ok bool) {
	r, ok := reserves[n]
	return r[0], r[1], ok
}

// Status classifies the outcome of a position, checked after every move.
type Status int

const (
	// Ongoing means neither side has won and the game continues.
	Ongoing Status = iota
	// WhiteWins and BlackWins are road wins or flat-count wins.
	WhiteWins
	BlackWins
	// Draw is a full board / exhausted reserves with equal flat counts.
	Draw
)

func (s Status) String() string {
	switch s {
	case WhiteWins:
		return "white wins"
	case BlackWins:
		return "black wins"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// undoRecord is a full snapshot of everything a Play call can touch,
// restored verbatim by Undo. Capturing a snapshot rather than computing
// the exact inverse of a throw keeps Undo trivially correct: the squares
// touched by even the most tangled multi-drop smash are just whatever was
// there before, copied back.
type undoRecord struct {
	action              action.Action
	road, block         [types.ColorLength]types.Bitboard
	stonesLeft, capsLeft [types.ColorLength]int
	zobristKey          uint64
	lastReversible      int
	ply                 int
	nextPlayer          types.Color
	touched             [types.RowLen + 1]types.Square
	touchedPiles        [types.RowLen + 1]stack.Pile
	touchedCount        int
}

// State is one position of a game in progress on an N x N board.
type State struct {
	geo *types.Geometry
	n   int
	// hand is the carry limit for a throw, always equal to n.
	hand int

	stacks [64]stack.Pile
	road   [types.ColorLength]types.Bitboard
	block  [types.ColorLength]types.Bitboard

	stonesLeft [types.ColorLength]int
	capsLeft   [types.ColorLength]int

	zobristKey     uint64
	ply            int
	lastReversible int
	nextPlayer     types.Color

	historyCounter int
	history        [maxHistory]undoRecord
}

// NewState creates the empty starting position for an N x N board, 3 <= n
// <= 8, with the standard reserve counts for that size and White to move.
func NewState(n int) *State {
	if log == nil {
		log = myLogging.GetLog()
	}
	r, ok := reserves[n]
	if !ok {
		panic(fmt.Sprintf("board: unsupported board size %d", n))
	}
	s := &State{
		geo:  types.NewGeometry(n),
		n:    n,
		hand: n,
	}
	s.stonesLeft[types.White], s.capsLeft[types.White] = r[0], r[1]
	s.stonesLeft[types.Black], s.capsLeft[types.Black] = r[0], r[1]
	s.nextPlayer = types.White
	return s
}

// N returns the board size.
func (s *State) N() int { return s.n }

// Geometry returns the board's precomputed geometry.
func (s *State) Geometry() *types.Geometry { return s.geo }

// Hash returns the current Zobrist key.
func (s *State) Hash() uint64 { return s.zobristKey }

// Ply returns the number of half-moves played so far.
func (s *State) Ply() int { return s.ply }

// ActiveColor returns the side to move.
func (s *State) ActiveColor() types.Color { return s.nextPlayer }

// IsOpening reports whether the position is within the first two plies,
// where placements are for the opponent and throws are illegal.
func (s *State) IsOpening() bool { return s.ply < 2 }

// StonesLeft and CapsLeft return a side's remaining reserve.
func (s *State) StonesLeft(c types.Color) int { return s.stonesLeft[c] }
func (s *State) CapsLeft(c types.Color) int   { return s.capsLeft[c] }

// LastReversible returns the ply number after which no irreversible
// move (a placement or a wall smash) has been made -- the Tak analogue
// of chess's half-move clock, kept for parity with the ambient stack's
// repetition-style bookkeeping even though Tak has no draw-by-repetition
// rule of its own.
func (s *State) LastReversible() int { return s.lastReversible }

// Own, Opp and Empty return the relevant occupancy bitboards for c.
func (s *State) Own(c types.Color) types.Bitboard  { return s.road[c] | s.block[c] }
func (s *State) Opp(c types.Color) types.Bitboard  { return s.Own(c.Flip()) }
func (s *State) Empty() types.Bitboard             { return s.geo.Board &^ (s.Own(types.White) | s.Own(types.Black)) }
func (s *State) BlockAll() types.Bitboard          { return s.block[types.White] | s.block[types.Black] }
func (s *State) RoadBb(c types.Color) types.Bitboard { return s.road[c] }

// StackAt returns the pile at sq.
func (s *State) StackAt(sq types.Square) stack.Pile { return s.stacks[sq] }

// SetStack places a fully formed pile directly on sq, bypassing Play's
// move legality and incremental bookkeeping. Used only by the ptn package
// while building a position from TPS text; callers must follow a batch of
// SetStack calls with SetTurn and RecomputeHash.
func (s *State) SetStack(sq types.Square, p stack.Pile) {
	s.road[types.White] = s.road[types.White].Clear(sq)
	s.road[types.Black] = s.road[types.Black].Clear(sq)
	s.block[types.White] = s.block[types.White].Clear(sq)
	s.block[types.Black] = s.block[types.Black].Clear(sq)
	s.stacks[sq] = p
	if p.IsEmpty() {
		return
	}
	color, _ := p.Top()
	// TPS only ever fixes the top piece's kind explicitly (its trailing
	// letter); the caller is responsible for calling SetTopKind right
	// after SetStack when the top is a wall or a cap. Flat is the default.
	s.road[color] = s.road[color].Set(sq)
}

// SetTopKind overrides the kind of sq's already-placed top piece, for
// TPS's trailing S/C marker.
func (s *State) SetTopKind(sq types.Square, k types.PieceKind) {
	color, ok := s.stacks[sq].Top()
	if !ok {
		return
	}
	s.road[types.White] = s.road[types.White].Clear(sq)
	s.road[types.Black] = s.road[types.Black].Clear(sq)
	s.block[types.White] = s.block[types.White].Clear(sq)
	s.block[types.Black] = s.block[types.Black].Clear(sq)
	if k.IsRoad() {
		s.road[color] = s.road[color].Set(sq)
	}
	if k.IsBlock() {
		s.block[color] = s.block[color].Set(sq)
	}
}

// SetReserves overrides a side's remaining reserve, for TPS positions
// that start mid-game.
func (s *State) SetReserves(c types.Color, stones, caps int) {
	s.stonesLeft[c] = stones
	s.capsLeft[c] = caps
}

// SetTurn sets the side to move and the ply counter (2*(moveNumber-1),
// +1 if black to move), matching TPS's "moveNumber color" suffix.
func (s *State) SetTurn(c types.Color, ply int) {
	s.nextPlayer = c
	s.ply = ply
	s.lastReversible = ply
}

// RecomputeHash rebuilds the Zobrist key from scratch. Used once after a
// batch of SetStack/SetTopKind/SetTurn calls finishes building a position
// from TPS text, since those setters do not maintain the key
// incrementally the way Play does.
func (s *State) RecomputeHash() {
	var key uint64
	for _, sq := range s.geo.Board.BitSquares() {
		k, _, ok := s.TopKind(sq)
		if !ok {
			continue
		}
		key ^= stackContribution(sq, s.stacks[sq], k)
	}
	if s.nextPlayer == types.Black {
		key ^= zobrist.SideToMove()
	}
	s.zobristKey = key
}

// TopKind returns the kind and color of the top piece at sq, or
// (Flat, White, false) if the square is empty.
func (s *State) TopKind(sq types.Square) (types.PieceKind, types.Color, bool) {
	for c := types.Color(0); c < types.ColorLength; c++ {
		isRoad := s.road[c].Has(sq)
		isBlock := s.block[c].Has(sq)
		switch {
		case isRoad && isBlock:
			return types.Cap, c, true
		case isBlock:
			return types.Wall, c, true
		case isRoad:
			return types.Flat, c, true
		}
	}
	return types.Flat, types.White, false
}

// FlatCount returns the number of squares whose top piece is a flat owned
// by c.
func (s *State) FlatCount(c types.Color) int {
	return (s.road[c] &^ s.block[c]).PopCount()
}

// HasRoad reports whether c currently has a completed road.
func (s *State) HasRoad(c types.Color) bool {
	return influence.HasRoad(s.geo, s.road[c])
}

// Influence returns the halo-expanded edge floods for c. The evaluator's
// road-distance estimate runs its own flood and does not read this.
func (s *State) Influence(c types.Color) influence.Sides {
	return influence.Flood(s.geo, s.road[c]).Halo(s.geo)
}

// CheckStatus evaluates the end-of-game condition in the order spec'd:
// an opponent road beats a simultaneous own road (the mover who just
// completed their opponent's road by a bad spread loses), reserve
// exhaustion or a full board triggers a flat-count comparison.
func (s *State) CheckStatus() Status {
	opp := s.nextPlayer.Flip()
	oppRoad := s.HasRoad(opp)
	myRoad := s.HasRoad(s.nextPlayer)
	if oppRoad {
		return winStatus(opp)
	}
	if myRoad {
		return winStatus(s.nextPlayer)
	}
	reservesOut := (s.stonesLeft[types.White] == 0 && s.capsLeft[types.White] == 0) ||
		(s.stonesLeft[types.Black] == 0 && s.capsLeft[types.Black] == 0)
	boardFull := s.Empty().Empty()
	if reservesOut || boardFull {
		wf, bf := s.FlatCount(types.White), s.FlatCount(types.Black)
		switch {
		case wf > bf:
			return WhiteWins
		case bf > wf:
			return BlackWins
		default:
			return Draw
		}
	}
	return Ongoing
}

func winStatus(c types.Color) Status {
	if c == types.White {
		return WhiteWins
	}
	return BlackWins
}

// stackContribution is the Zobrist term for a non-empty pile at sq whose
// top is of kind k; zero for an empty square.
func stackContribution(sq types.Square, p stack.Pile, k types.PieceKind) uint64 {
	if p.IsEmpty() {
		return 0
	}
	return zobrist.SqPieceKind(sq, k) ^ zobrist.StackKey(sq, p)
}

// placementOwner returns which color a placement at the current ply
// belongs to: the swap rule means the first two plies place a piece for
// the opponent of whoever is to move.
func (s *State) placementOwner() types.Color {
	if s.IsOpening() {
		return s.nextPlayer.Flip()
	}
	return s.nextPlayer
}

// snapshot captures everything Play is about to touch, before mutation.
func (s *State) snapshot(a action.Action) *undoRecord {
	s.historyCounter++
	if s.historyCounter > maxHistory {
		panic("board: undo history exhausted")
	}
	r := &s.history[s.historyCounter-1]
	r.action = a
	r.road = s.road
	r.block = s.block
	r.stonesLeft = s.stonesLeft
	r.capsLeft = s.capsLeft
	r.zobristKey = s.zobristKey
	r.lastReversible = s.lastReversible
	r.ply = s.ply
	r.nextPlayer = s.nextPlayer
	r.touchedCount = 0
	return r
}

func (r *undoRecord) touch(s *State, sq types.Square) {
	r.touched[r.touchedCount] = sq
	r.touchedPiles[r.touchedCount] = s.stacks[sq]
	r.touchedCount++
}

// Play commits a to the position, maintaining the road/block bitboards,
// reserves, ply counter and Zobrist key incrementally. Use Undo to
// retract it.
func (s *State) Play(a action.Action) {
	r := s.snapshot(a)

	switch {
	case a.IsPass():
		s.playPass()
	case a.IsPlacement():
		s.playPlacement(r, a)
	default:
		s.playThrow(r, a)
	}

	s.ply++
	s.nextPlayer = s.nextPlayer.Flip()
	s.zobristKey ^= zobrist.SideToMove()

	if assert.DEBUG {
		assert.Assert(s.stonesLeft[types.White] >= 0 && s.stonesLeft[types.Black] >= 0,
			"board Play: negative stone reserve after %s", a.String())
	}
}

func (s *State) playPass() {
	// null move: no board mutation, just the ply/side flip Play always does.
}

func (s *State) playPlacement(r *undoRecord, a action.Action) {
	sq := a.Square()
	k := a.PieceKind()
	owner := s.placementOwner()

	if assert.DEBUG {
		assert.Assert(s.stacks[sq].IsEmpty(), "board Play: placement on occupied square %s", sq.Name())
	}

	r.touch(s, sq)
	pile, _ := stack.Empty.Drop(stack.Hand(owner), 1)
	s.stacks[sq] = pile

	if k.IsRoad() {
		s.road[owner] = s.road[owner].Set(sq)
	}
	if k.IsBlock() {
		s.block[owner] = s.block[owner].Set(sq)
	}

	if k == types.Cap {
		s.capsLeft[owner]--
	} else {
		s.stonesLeft[owner]--
	}

	s.zobristKey ^= stackContribution(sq, pile, k)
	s.lastReversible = s.ply + 1
}

func (s *State) playThrow(r *undoRecord, a action.Action) {
	src := a.Square()
	dir := a.Direction()
	pattern := a.Pattern()
	mover := s.nextPlayer

	origKind, origColor, ok := s.TopKind(src)
	if assert.DEBUG {
		assert.Assert(ok && origColor == mover, "board Play: throw from square %s not owned by mover", src.Name())
	}

	taken := pattern.TakenCount(s.hand)
	r.touch(s, src)
	oldSrcPile := s.stacks[src]
	oldContribution := stackContribution(src, oldSrcPile, origKind)
	newSrcPile, hand := oldSrcPile.Take(taken)
	s.stacks[src] = newSrcPile

	s.road[mover] = s.road[mover].Clear(src)
	s.block[mover] = s.block[mover].Clear(src)
	var newSrcKind types.PieceKind
	if !newSrcPile.IsEmpty() {
		revColor, _ := newSrcPile.Top()
		s.road[revColor] = s.road[revColor].Set(src)
		newSrcKind = types.Flat
		s.zobristKey ^= oldContribution ^ stackContribution(src, newSrcPile, newSrcKind)
	} else {
		s.zobristKey ^= oldContribution
	}

	counts := pattern.DropCounts(s.hand)
	ray := s.geo.Ray(src, dir)
	squares := ray[:len(counts)]

	smashApplied := false
	for i := len(counts) - 1; i >= 0; i-- {
		destSq := squares[i]
		cnt := counts[i]
		isFinal := i == len(counts)-1

		oldDestPile := s.stacks[destSq]
		destKind, destColor, destHasTop := s.TopKind(destSq)
		destOldContribution := stackContribution(destSq, oldDestPile, destKind)

		smash := isFinal && cnt == 1 && origKind == types.Cap && destHasTop && destKind == types.Wall

		r.touch(s, destSq)
		if destHasTop {
			s.road[destColor] = s.road[destColor].Clear(destSq)
			s.block[destColor] = s.block[destColor].Clear(destSq)
		}

		newDestPile, rest := oldDestPile.Drop(hand, cnt)
		s.stacks[destSq] = newDestPile
		hand = rest

		newColor, _ := newDestPile.Top()
		var newKind types.PieceKind
		if isFinal {
			newKind = origKind
		} else {
			newKind = types.Flat
		}
		switch newKind {
		case types.Flat:
			s.road[newColor] = s.road[newColor].Set(destSq)
		case types.Wall:
			s.block[newColor] = s.block[newColor].Set(destSq)
		case types.Cap:
			s.road[newColor] = s.road[newColor].Set(destSq)
			s.block[newColor] = s.block[newColor].Set(destSq)
		}

		s.zobristKey ^= destOldContribution ^ stackContribution(destSq, newDestPile, newKind)

		if smash {
			smashApplied = true
		}
	}

	if smashApplied {
		s.lastReversible = s.ply + 1
	}
}

// Undo retracts the most recently played action, restoring the exact
// prior state.
func (s *State) Undo() {
	if assert.DEBUG {
		assert.Assert(s.historyCounter > 0, "board Undo: no move to undo")
	}
	r := &s.history[s.historyCounter-1]
	s.historyCounter--

	s.road = r.road
	s.block = r.block
	s.stonesLeft = r.stonesLeft
	s.capsLeft = r.capsLeft
	s.zobristKey = r.zobristKey
	s.lastReversible = r.lastReversible
	s.ply = r.ply
	s.nextPlayer = r.nextPlayer
	for i := 0; i < r.touchedCount; i++ {
		s.stacks[r.touched[i]] = r.touchedPiles[i]
	}
}

// String renders a simple per-row ASCII board, bottom row first, for
// logging and debugging.
func (s *State) String() string {
	var out string
	for row := s.n - 1; row >= 0; row-- {
		for col := 0; col < s.n; col++ {
			sq := types.MakeSquare(row, col)
			k, c, ok := s.TopKind(sq)
			if !ok {
				out += ". "
				continue
			}
			glyph := "f"
			if k == types.Wall {
				glyph = "s"
			} else if k == types.Cap {
				glyph = "c"
			}
			if c == types.Black {
				glyph = fmt.Sprintf("%s%s", "x", glyph)
			} else {
				glyph = fmt.Sprintf("%s%s", "o", glyph)
			}
			out += glyph + " "
		}
		out += "\n"
	}
	return out
}
