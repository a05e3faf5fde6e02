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

package search

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/evaluator"
	"github.com/gopherstak/tak/internal/stack"
	"github.com/gopherstak/tak/internal/types"
	"github.com/gopherstak/tak/internal/util"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func placeFlat(s *board.State, sq types.Square, c types.Color) {
	s.SetStack(sq, stack.FromHandAndCount(stack.Hand(c), 1))
}

func TestIterativeDeepeningFindsImmediateRoadWin(t *testing.T) {
	s := board.NewState(4)
	for r := 0; r < 3; r++ {
		placeFlat(s, types.MakeSquare(r, 0), types.White)
	}
	s.SetTurn(types.White, 2) // past the opening's swap-rule plies
	s.RecomputeHash()
	assert.False(t, s.HasRoad(types.White))

	searcher := New(1)
	abort := util.NewBool(false)
	score, mv := searcher.IterativeDeepening(s, 2, abort)

	assert.True(t, score.IsWin(), "a one-move road completion should be found and scored as a win")
	assert.NotEqual(t, action.Pass, mv)
}

func TestIterativeDeepeningRespectsAbort(t *testing.T) {
	s := board.NewState(5)
	searcher := New(1)
	abort := util.NewBool(true)

	score, mv := searcher.IterativeDeepening(s, 5, abort)
	assert.Equal(t, evaluator.Evaluate(s, 0), score, "an immediately aborted search falls back to the static eval")
	assert.NotEqual(t, action.Pass, mv, "the fallback move is still a legal one, not Pass")
}

func TestSearchOnEmptyBoardIsNotDecisive(t *testing.T) {
	s := board.NewState(5)
	searcher := New(1)
	abort := util.NewBool(false)

	score := searcher.search(s, 1, 0, -types.Max, types.Max, true, abort)
	assert.True(t, score > -types.Decisive && score < types.Decisive)
}

func TestOrderMovesPutsTTMoveAndKillerFirst(t *testing.T) {
	searcher := New(1)

	moves := []action.Action{
		action.NewPlacement(types.MakeSquare(0, 0), types.Flat),
		action.NewPlacement(types.MakeSquare(1, 1), types.Flat),
		action.NewPlacement(types.MakeSquare(2, 2), types.Flat),
	}
	ttMove := moves[2]
	searcher.killers[0] = moves[1]

	ordered := searcher.orderMoves(moves, ttMove, 0, true)
	assert.Equal(t, ttMove, ordered[0])
	assert.Equal(t, moves[1], ordered[1])
	assert.Len(t, ordered, 3)
}

func TestPrincipalVariationStopsWithoutTTEntries(t *testing.T) {
	s := board.NewState(5)
	searcher := New(1)
	pv := PrincipalVariation(searcher.tt, s, 10)
	assert.Empty(t, pv, "an empty table has nothing to walk")
}

func TestPrincipalVariationWalksStoredBestMoves(t *testing.T) {
	s := board.NewState(5)
	searcher := New(1)
	abort := util.NewBool(false)

	searcher.IterativeDeepening(s, 2, abort)
	pv := PrincipalVariation(searcher.tt, s, 2)
	assert.NotEmpty(t, pv, "a completed search should leave a followable PV behind")
}
