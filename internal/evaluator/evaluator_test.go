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

package evaluator

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/config"
	"github.com/gopherstak/tak/internal/stack"
	"github.com/gopherstak/tak/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// placeFlat drops a single flat owned by c directly on sq, bypassing the
// placement/opponent-owns-the-opening-move rules Play enforces.
func placeFlat(s *board.State, sq types.Square, c types.Color) {
	s.SetStack(sq, stack.FromHandAndCount(stack.Hand(c), 1))
}

func TestEvaluateSymmetricOnEmptyBoard(t *testing.T) {
	s := board.NewState(5)
	// Equal material and equal (zero) road progress on both sides: the
	// only asymmetry is the side-to-move bonus.
	score := Evaluate(s, 0)
	assert.Equal(t, types.Value(config.Settings.Eval.SideToMoveBonus), score)
}

func TestEvaluateRewardsMoreFlats(t *testing.T) {
	s := board.NewState(5)
	placeFlat(s, types.MakeSquare(2, 2), types.White)
	s.RecomputeHash()
	scoreWithExtraFlat := Evaluate(s, 0)

	empty := board.NewState(5)
	scoreEmpty := Evaluate(empty, 0)

	assert.NotEqual(t, scoreEmpty, scoreWithExtraFlat)
}

func TestEvaluateTerminalWinLoss(t *testing.T) {
	s := board.NewState(4)
	// Build a vertical White road on column 0.
	for r := 0; r < 4; r++ {
		placeFlat(s, types.MakeSquare(r, 0), types.White)
	}
	s.RecomputeHash()
	assert.True(t, s.HasRoad(types.White))

	whiteToMove := Evaluate(s, 3)
	assert.Equal(t, types.Win(3), whiteToMove, "mover with a completed road wins")
}

func TestMaterialScoreWeighsReserves(t *testing.T) {
	s := board.NewState(5)
	before := materialScore(s, types.White)
	s.SetReserves(types.White, s.StonesLeft(types.White)-5, s.CapsLeft(types.White))
	after := materialScore(s, types.White)
	assert.True(t, after > before, "fewer stones left in reserve scores higher material")
}

func TestRoadDistanceShrinksAsRoadFills(t *testing.T) {
	s := board.NewState(5)
	maxDist := s.N() - 1
	empty := roadDistance(s, types.White, maxDist)

	for r := 0; r < 4; r++ {
		placeFlat(s, types.MakeSquare(r, 0), types.White)
	}
	s.RecomputeHash()
	partial := roadDistance(s, types.White, maxDist)

	assert.True(t, partial <= empty, "owning a column only ever shortens the flood distance")
}
