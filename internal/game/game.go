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

// Package game is the facade the external driver (the CLI and the
// protocol loop) programs against: one engine instance per running
// game, owning a position, a searcher and the pair of abort flags a
// "go"/"stop" exchange swaps between iterative-deepening runs.
package game

import (
	"context"

	"github.com/op/go-logging"
	"golang.org/x/sync/semaphore"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/config"
	myLogging "github.com/gopherstak/tak/internal/logging"
	"github.com/gopherstak/tak/internal/movegen"
	"github.com/gopherstak/tak/internal/ptn"
	"github.com/gopherstak/tak/internal/search"
	"github.com/gopherstak/tak/internal/types"
	"github.com/gopherstak/tak/internal/util"
)

// Game is not safe for concurrent method calls other than StopSearch
// while a search started with StartSearch is running; the protocol
// loop is the only caller that needs that, and it is itself
// single-threaded apart from the search worker.
type Game struct {
	log *logging.Logger

	n     int
	state *board.State

	searcher *search.Searcher

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	activeAbort   *util.Bool
	inactiveAbort *util.Bool

	lastScore types.Value
	lastMove  action.Action
}

// New creates an engine for a board of size n (3..8).
func New(n int) (*Game, error) {
	if n < 3 || n > 8 {
		return nil, &NewGameError{Reason: "board size must be between 3 and 8"}
	}
	return &Game{
		log:           myLogging.GetLog(),
		n:             n,
		state:         board.NewState(n),
		searcher:      search.New(config.Settings.Search.TTSize),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		activeAbort:   util.NewBool(false),
		inactiveAbort: util.NewBool(false),
	}, nil
}

// OnDepth installs a callback invoked after every completed
// iterative-deepening depth, letting the protocol layer emit one
// "info" line per depth without the facade knowing anything about the
// wire format.
func (g *Game) OnDepth(fn func(depth int, score types.Value, move action.Action, nodes uint64)) {
	g.searcher.OnDepth = fn
}

// Search runs a blocking iterative-deepening search on the current
// position to depth and returns its result. Intended for synchronous
// callers (the search/showmatch CLI subcommands); the protocol's "go"/
// "stop" exchange uses StartSearch/StopSearch instead.
func (g *Game) Search(depth int) (types.Value, action.Action) {
	_ = g.isRunning.Acquire(context.TODO(), 1)
	defer g.isRunning.Release(1)

	g.activeAbort.Store(false)
	score, move := g.searcher.IterativeDeepening(g.state, depth, g.activeAbort)
	g.lastScore, g.lastMove = score, move
	return score, move
}

// StartSearch launches the search in a goroutine and returns once it
// has actually begun, mirroring the teacher's init-then-run semaphore
// handshake. Callers retrieve the result with WaitWhileSearching
// followed by LastResult, or stop it early with StopSearch.
func (g *Game) StartSearch(depth int) {
	_ = g.initSemaphore.Acquire(context.TODO(), 1)
	g.activeAbort.Store(false)
	go g.run(depth)
	_ = g.initSemaphore.Acquire(context.TODO(), 1)
	g.initSemaphore.Release(1)
}

func (g *Game) run(depth int) {
	if !g.isRunning.TryAcquire(1) {
		g.initSemaphore.Release(1)
		return
	}
	defer g.isRunning.Release(1)
	g.initSemaphore.Release(1)

	score, move := g.searcher.IterativeDeepening(g.state, depth, g.activeAbort)
	g.lastScore, g.lastMove = score, move
}

// StopSearch aborts a running search as quickly as possible and blocks
// until it has actually returned.
func (g *Game) StopSearch() {
	g.activeAbort.Store(true)
	g.WaitWhileSearching()
}

// IsSearching reports whether a search started with StartSearch is
// still running.
func (g *Game) IsSearching() bool {
	if !g.isRunning.TryAcquire(1) {
		return true
	}
	g.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (g *Game) WaitWhileSearching() {
	_ = g.isRunning.Acquire(context.TODO(), 1)
	g.isRunning.Release(1)
}

// LastResult returns the score and move the most recently completed
// search (synchronous or started) produced.
func (g *Game) LastResult() (types.Value, action.Action) {
	return g.lastScore, g.lastMove
}

// Perft counts the leaves of the game tree below the current position.
func (g *Game) Perft(depth int, mode movegen.Mode) uint64 {
	return movegen.Count(g.state, depth, mode)
}

// ParseMove parses PTN move text against the current board size.
func (g *Game) ParseMove(text string) (action.Action, error) {
	mv, err := ptn.ParseMove(text, g.n)
	if err != nil {
		return action.Pass, &ParseMoveError{Text: text, Err: err}
	}
	return mv, nil
}

// Play applies move to the current position. It is the caller's
// responsibility to have obtained move from ParseMove or PV.
func (g *Game) Play(move action.Action) error {
	if move != action.Pass {
		legal := false
		for _, mv := range movegen.Generate(g.state) {
			if mv == move {
				legal = true
				break
			}
		}
		if !legal {
			return &PlayMoveError{Move: move.StringN(g.n)}
		}
	}
	g.state.Play(move)
	return nil
}

// SetPosition replaces the current position with the one tps encodes.
func (g *Game) SetPosition(tps string) error {
	st, err := ptn.ParseTPS(tps)
	if err != nil {
		return &SetPositionError{Text: tps, Err: err}
	}
	g.n = st.N()
	g.state = st
	return nil
}

// PV walks the transposition table from the current position and
// returns the followable principal variation.
func (g *Game) PV() []action.Action {
	return search.PrincipalVariation(g.searcher.TT(), g.state, config.Settings.Search.MaxDepth)
}

func (g *Game) AbortFlag() bool { return g.activeAbort.Load() }

// ClearAbortFlag compare-and-swaps the active abort flag from true to
// false, reporting whether it was actually set.
func (g *Game) ClearAbortFlag() bool { return g.activeAbort.CAS(true, false) }

// SwapAbortFlags exchanges the active and inactive flags, letting the
// driver pre-stage a flag that only takes effect once it becomes
// active, without disturbing a search already polling the old one.
func (g *Game) SwapAbortFlags() {
	g.activeAbort, g.inactiveAbort = g.inactiveAbort, g.activeAbort
}

func (g *Game) Nodes() uint64       { return g.searcher.Nodes }
func (g *Game) ClearNodes()         { g.searcher.ClearNodes() }
func (g *Game) Hash() uint64        { return g.state.Hash() }
func (g *Game) N() int              { return g.n }
func (g *Game) State() *board.State { return g.state }

func (g *Game) StonesLeft(c types.Color) int { return g.state.StonesLeft(c) }
func (g *Game) CapsLeft(c types.Color) int   { return g.state.CapsLeft(c) }
func (g *Game) ActiveColor() types.Color     { return g.state.ActiveColor() }
func (g *Game) IsOpening() bool              { return g.state.IsOpening() }
