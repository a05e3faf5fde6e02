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

// Package search implements the negamax alpha-beta driver: iterative
// deepening with aspiration windows over a single-threaded search that
// consults a transposition table, orders moves by TT-move then killer,
// and prunes with a null-move heuristic. Time control lives above this
// package, in the protocol layer's "go" handler; there is no opening
// book or pondering. search only honors a caller-supplied abort flag.
package search

import (
	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/config"
	"github.com/gopherstak/tak/internal/evaluator"
	myLogging "github.com/gopherstak/tak/internal/logging"
	"github.com/gopherstak/tak/internal/movegen"
	"github.com/gopherstak/tak/internal/transpositiontable"
	"github.com/gopherstak/tak/internal/types"
	"github.com/gopherstak/tak/internal/util"
)

var out = message.NewPrinter(language.German)

// Searcher runs a negamax search against a transposition table it owns.
// A Searcher is not safe for concurrent Search calls; internal/game
// serializes access to a Searcher the way the protocol layer serializes
// access to a position.
type Searcher struct {
	log *logging.Logger

	tt      *transpositiontable.Table
	killers []action.Action

	Nodes      uint64
	Statistics Statistics

	// OnDepth, when set, is called after each iterative-deepening depth
	// completes, for the protocol layer's per-depth "info" reporting.
	// It is not called for an aborted depth.
	OnDepth func(depth int, score types.Value, move action.Action, nodes uint64)
}

// New creates a Searcher backed by a transposition table of sizeInMByte.
func New(sizeInMByte int) *Searcher {
	return &Searcher{
		log:     myLogging.GetSearchLog(),
		tt:      transpositiontable.New(sizeInMByte),
		killers: make([]action.Action, util.Max(1, config.Settings.Search.KillerTableSize)),
	}
}

// TT exposes the underlying transposition table, e.g. for Hashfull
// reporting or an explicit Clear on a new game.
func (s *Searcher) TT() *transpositiontable.Table { return s.tt }

// ClearNodes resets the node counter, called once per facade search.
func (s *Searcher) ClearNodes() { s.Nodes = 0 }

// IterativeDeepening searches st from depth 1 up to maxDepth, returning
// the best score and move found at the deepest completed iteration.
// abort is polled before every child node; when it trips mid-iteration
// the partially searched depth is discarded and the previous iteration's
// result stands.
func (s *Searcher) IterativeDeepening(st *board.State, maxDepth int, abort *util.Bool) (types.Value, action.Action) {
	s.tt.NewGeneration()
	for i := range s.killers {
		s.killers[i] = action.Pass
	}

	score := evaluator.Evaluate(st, 0)
	move := action.Pass
	if legal := movegen.Generate(st); len(legal) > 0 {
		move = legal[0]
	}

	for depth := 1; depth <= maxDepth; depth++ {
		s.Statistics.CurrentIterationDepth = depth
		iterScore := s.iterSearch(st, depth, score, abort)
		if abort.Load() {
			break
		}
		score = iterScore
		if e := s.tt.Probe(st.Hash()); e != nil && e.Move() != action.Pass {
			if e.Move() != move {
				s.Statistics.BestMoveChanges++
			}
			move = e.Move()
		}
		if s.OnDepth != nil {
			s.OnDepth(depth, score, move, s.Nodes)
		}
	}
	return score, move
}

// iterSearch wraps search with an aspiration window centered on
// lastScore, widening on fail-low/fail-high up to AspirationAttempts
// times before falling back to a full window.
func (s *Searcher) iterSearch(st *board.State, depth int, lastScore types.Value, abort *util.Bool) types.Value {
	cfg := config.Settings.Search
	if !cfg.UseAspiration || depth < 2 {
		return s.search(st, depth, 0, -types.Max, types.Max, true, abort)
	}

	margin := types.Value(cfg.AspirationWindow)
	alpha := lastScore - margin
	beta := lastScore + margin

	for attempt := 0; attempt < cfg.AspirationAttempts; attempt++ {
		value := s.search(st, depth, 0, alpha, beta, true, abort)
		if abort.Load() {
			return value
		}
		if value <= alpha {
			s.Statistics.AspirationResearches++
			margin *= 2
			alpha = lastScore - margin
			continue
		}
		if value >= beta {
			s.Statistics.AspirationResearches++
			margin *= 2
			beta = lastScore + margin
			continue
		}
		return value
	}
	return s.search(st, depth, 0, -types.Max, types.Max, true, abort)
}

// search is the negamax core: search(depth, alpha, beta, allowNmp) from
// spec's search driver, one ply per recursive call relative to ply.
func (s *Searcher) search(st *board.State, depth, ply int, alpha, beta types.Value, allowNmp bool, abort *util.Bool) types.Value {
	s.Nodes++

	if status := st.CheckStatus(); status != board.Ongoing {
		return evaluator.Evaluate(st, ply)
	}
	if depth <= 0 {
		return evaluator.Evaluate(st, ply)
	}

	cfg := config.Settings.Search
	alpha0, beta0 := alpha, beta
	sig := st.Hash()

	var ttMove action.Action
	if cfg.UseTT {
		if e := s.tt.Probe(sig); e != nil {
			s.Statistics.TTHits++
			ttMove = e.Move()
			if e.Depth() == depth {
				switch e.Bound() {
				case transpositiontable.Exact:
					return e.Value()
				case transpositiontable.Lower:
					if e.Value() > alpha {
						alpha = e.Value()
					}
				case transpositiontable.Upper:
					if e.Value() < beta {
						beta = e.Value()
					}
				}
				if alpha >= beta {
					s.Statistics.TTCuts++
					s.tt.Put(sig, e.Move(), depth, e.Value(), alpha0, beta0)
					return e.Value()
				}
			}
		} else {
			s.Statistics.TTMisses++
		}
	}

	if cfg.UseNullMove && allowNmp && depth > cfg.NmpFactor {
		staticEval := evaluator.Evaluate(st, ply)
		margin := types.Value(cfg.NmpFudge) + types.Value(cfg.NmpEvalMargin)
		if staticEval+margin >= beta {
			st.Play(action.Pass)
			nullScore := -s.search(st, depth-cfg.NmpFactor-1, ply+1, -beta, -beta+1, false, abort)
			st.Undo()
			if nullScore+types.Value(cfg.NmpFudge) >= beta {
				s.Statistics.NullMoveCuts++
				return beta
			}
		}
	}

	moves := movegen.Generate(st)
	ordered := s.orderMoves(moves, ttMove, ply, cfg.UseKiller)

	bestValue := -types.Max - 1
	bestMove := action.Pass
	aborted := false

	for i, mv := range ordered {
		if abort.Load() {
			aborted = true
			break
		}

		st.Play(mv)
		var value types.Value
		if !cfg.UsePVS || i == 0 {
			value = -s.search(st, depth-1, ply+1, -beta, -alpha, true, abort)
		} else {
			value = -s.search(st, depth-1, ply+1, -alpha-1, -alpha, true, abort)
			if value > alpha && value < beta {
				s.Statistics.PVSResearches++
				value = -s.search(st, depth-1, ply+1, -beta, -alpha, true, abort)
			}
		}
		st.Undo()

		if value > bestValue {
			bestValue = value
			bestMove = mv
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			s.Statistics.BetaCuts++
			if i == 0 {
				s.Statistics.BetaCuts1st++
			}
			if cfg.UseKiller {
				s.storeKiller(ply, mv)
			}
			break
		}
	}

	if aborted {
		return bestValue
	}

	if cfg.UseTT {
		s.tt.Put(sig, bestMove, depth, bestValue, alpha0, beta0)
	}
	return bestValue
}

// orderMoves places the TT move first (if still legal), then the killer
// for this ply (if legal and distinct), then the rest of moves unchanged.
func (s *Searcher) orderMoves(moves []action.Action, ttMove action.Action, ply int, useKiller bool) []action.Action {
	var killer action.Action
	if useKiller {
		killer = s.killers[ply%len(s.killers)]
	}

	ordered := make([]action.Action, 0, len(moves))
	if ttMove != action.Pass && contains(moves, ttMove) {
		ordered = append(ordered, ttMove)
	}
	if killer != action.Pass && killer != ttMove && contains(moves, killer) {
		ordered = append(ordered, killer)
	}
	for _, mv := range moves {
		if mv == ttMove || mv == killer {
			continue
		}
		ordered = append(ordered, mv)
	}
	return ordered
}

func (s *Searcher) storeKiller(ply int, mv action.Action) {
	s.killers[ply%len(s.killers)] = mv
}

func contains(moves []action.Action, mv action.Action) bool {
	for _, m := range moves {
		if m == mv {
			return true
		}
	}
	return false
}

// PrincipalVariation walks the transposition table from st's position,
// following each stored best move up to maxLen plies or until an entry
// is missing or its move is no longer legal.
func PrincipalVariation(tt *transpositiontable.Table, st *board.State, maxLen int) []action.Action {
	pv := make([]action.Action, 0, maxLen)
	walked := 0

	for len(pv) < maxLen {
		e := tt.Probe(st.Hash())
		if e == nil || e.Move() == action.Pass {
			break
		}
		if !contains(movegen.Generate(st), e.Move()) {
			break
		}
		pv = append(pv, e.Move())
		st.Play(e.Move())
		walked++
		if st.CheckStatus() != board.Ongoing {
			break
		}
	}

	for ; walked > 0; walked-- {
		st.Undo()
	}
	return pv
}
