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

package game

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/movegen"
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

func TestNewRejectsOutOfRangeSize(t *testing.T) {
	_, err := New(2)
	require.Error(t, err)
	assert.IsType(t, &NewGameError{}, err)
}

func TestNewBuildsAnOpeningPosition(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)
	assert.True(t, g.IsOpening())
	assert.Equal(t, types.White, g.ActiveColor())
}

func TestParseMoveWrapsPTNErrors(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)
	_, err = g.ParseMove("not a move")
	require.Error(t, err)
	assert.IsType(t, &ParseMoveError{}, err)
}

func TestPlayRejectsIllegalMove(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	mv := action.NewPlacement(types.MakeSquare(0, 0), types.Cap)
	err = g.Play(mv)
	require.Error(t, err)
	assert.IsType(t, &PlayMoveError{}, err)
}

func TestPlayAppliesLegalMove(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	legal := movegen.Generate(g.State())
	require.NotEmpty(t, legal)
	require.NoError(t, g.Play(legal[0]))
	assert.Equal(t, types.Black, g.ActiveColor())
}

func TestSetPositionReplacesState(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	err = g.SetPosition("x6/x6/x6/x6/x6/x6 1 1")
	require.NoError(t, err)
	assert.Equal(t, 6, g.N())
}

func TestSetPositionWrapsTPSErrors(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)
	err = g.SetPosition("garbage")
	require.Error(t, err)
	assert.IsType(t, &SetPositionError{}, err)
}

func TestAbortFlagRoundTrip(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	assert.False(t, g.AbortFlag())
	assert.False(t, g.ClearAbortFlag(), "nothing to clear yet")

	g.activeAbort.Store(true)
	assert.True(t, g.AbortFlag())
	assert.True(t, g.ClearAbortFlag())
	assert.False(t, g.AbortFlag())
}

func TestSwapAbortFlagsExchangesActiveAndInactive(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	g.activeAbort.Store(true)
	g.SwapAbortFlags()
	assert.False(t, g.AbortFlag(), "the freshly active flag was the old inactive one")

	g.SwapAbortFlags()
	assert.True(t, g.AbortFlag(), "swapping back restores the original active flag")
}

func TestSearchReturnsALegalMove(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	_, mv := g.Search(2)
	assert.NotEqual(t, action.Pass, mv)
}

func TestNodesAccumulateAndClear(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	g.Search(2)
	assert.True(t, g.Nodes() > 0)
	g.ClearNodes()
	assert.Equal(t, uint64(0), g.Nodes())
}

func TestStartSearchThenStopSearchReturnsPromptly(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)

	g.StartSearch(64)
	g.StopSearch()
	assert.False(t, g.IsSearching())

	_, mv := g.LastResult()
	assert.NotEqual(t, action.Pass, mv)
}

func TestPerftMatchesBatchAndNaive(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	batch := g.Perft(2, movegen.Batch)
	naive := g.Perft(2, movegen.Naive)
	assert.Equal(t, naive, batch)
}

func TestPVIsEmptyBeforeAnySearch(t *testing.T) {
	g, err := New(5)
	require.NoError(t, err)
	assert.Empty(t, g.PV())
}

func TestPVFollowsACompletedSearch(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)
	g.Search(2)
	assert.NotEmpty(t, g.PV())
}
