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

package ptn

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherstak/tak/internal/board"
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

func TestParseMovePlacements(t *testing.T) {
	a, err := ParseMove("c3", 5)
	require.NoError(t, err)
	assert.True(t, a.IsPlacement())
	assert.Equal(t, types.Flat, a.PieceKind())
	assert.Equal(t, "c3", a.Square().Name())

	a, err = ParseMove("Sc3", 5)
	require.NoError(t, err)
	assert.Equal(t, types.Wall, a.PieceKind())

	a, err = ParseMove("Ca1", 5)
	require.NoError(t, err)
	assert.Equal(t, types.Cap, a.PieceKind())
}

func TestParseMoveThrowRoundTripsWithStringN(t *testing.T) {
	a, err := ParseMove("3c3>111", 5)
	require.NoError(t, err)
	assert.True(t, a.IsThrow())
	assert.Equal(t, "3c3>111", a.StringN(5), "a three-way split keeps its drop digits")

	a2, err := ParseMove(a.StringN(5), 5)
	require.NoError(t, err)
	assert.Equal(t, a, a2)
}

func TestParseMoveThrowSuppressesWholeHandDrop(t *testing.T) {
	a, err := ParseMove("3c3>3", 5)
	require.NoError(t, err)
	assert.Equal(t, "3c3>", a.StringN(5), "a single square taking the whole hand drops its count suffix")

	a2, err := ParseMove(a.StringN(5), 5)
	require.NoError(t, err)
	assert.Equal(t, a, a2)
}

func TestParseMoveThrowWithUnevenDrops(t *testing.T) {
	a, err := ParseMove("4c3>211", 5)
	require.NoError(t, err)
	assert.Equal(t, "4c3>211", a.StringN(5))
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	_, err := ParseMove("", 5)
	assert.Error(t, err)
	_, err = ParseMove("z9", 5)
	assert.Error(t, err)
}

func TestParseTPSStartingPosition(t *testing.T) {
	st, err := ParseTPS("x5/x5/x5/x5/x5 1 1")
	require.NoError(t, err)
	assert.Equal(t, 5, st.N())
	assert.Equal(t, types.White, st.ActiveColor())
	assert.True(t, st.IsOpening())
	stones, caps, _ := boardDefaultReserves(5)
	assert.Equal(t, stones, st.StonesLeft(types.White))
	assert.Equal(t, caps, st.CapsLeft(types.White))
}

func TestParseTPSPlacesStacksAndReducesReserves(t *testing.T) {
	st, err := ParseTPS("x4,2C,1/x4,1C,x/x2,1S,1,121,x/x,2,x4/x3,2S,2S,x/2,x5 1 8")
	require.NoError(t, err)
	assert.Equal(t, 6, st.N())

	topKind, color, ok := st.TopKind(types.MakeSquare(5, 4))
	require.True(t, ok)
	assert.Equal(t, types.Cap, topKind)
	assert.Equal(t, types.Black, color)

	assert.True(t, st.StonesLeft(types.White) < 30)
}

func TestFormatTPSRoundTripsParseTPS(t *testing.T) {
	original := "x4,2C,1/x4,1C,x/x2,1S,1,121,x/x,2,x4/x3,2S,2S,x/2,x5 1 8"
	st, err := ParseTPS(original)
	require.NoError(t, err)
	assert.Equal(t, original, FormatTPS(st))
}

func boardDefaultReserves(n int) (int, int, bool) {
	return board.DefaultReserves(n)
}

// TestParseTPSMatchesPlayBuiltStack is the cross-check the round-trip
// tests above can't do: it builds a two-piece stack purely by playing
// moves (so its bit layout comes straight from stack.Drop, never from
// tps.go), then parses a hand-written TPS string describing the same
// position and checks the two piles agree piece-for-piece. A parseRow
// that indexes TPS digits in the wrong direction would still pass every
// ParseTPS/FormatTPS round trip (both ends apply the same convention)
// but would fail here.
func TestParseTPSMatchesPlayBuiltStack(t *testing.T) {
	st := board.NewState(5)

	play := func(text string) {
		a, err := ParseMove(text, 5)
		require.NoError(t, err)
		st.Play(a)
	}
	play("a1")   // opening swap: owner is Black
	play("b1")   // opening swap: owner is White
	play("1b1<") // White's single flat throws west onto a1, landing on top

	a1 := types.MakeSquare(0, 0)
	b1 := types.MakeSquare(0, 1)
	assert.True(t, st.StackAt(b1).IsEmpty())
	assert.Equal(t, 2, st.StackAt(a1).Height())
	top, ok := st.StackAt(a1).Top()
	require.True(t, ok)
	assert.Equal(t, types.White, top)

	parsed, err := ParseTPS("x5/x5/x5/x5/21,x4 2 2")
	require.NoError(t, err)
	assert.Equal(t, st.StackAt(a1), parsed.StackAt(a1))
	assert.Equal(t, st.ActiveColor(), parsed.ActiveColor())
	assert.Equal(t, st.Ply(), parsed.Ply())
}
