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

package movegen

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/ptn"
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

func TestOpeningOnlyEmitsFlats(t *testing.T) {
	s := board.NewState(4)
	actions := Generate(s)
	assert.Equal(t, 16, len(actions), "4x4 opening: one flat placement per empty square")
	for _, a := range actions {
		assert.True(t, a.IsPlacement())
	}
}

func TestSecondPlySkipsThrows(t *testing.T) {
	s := board.NewState(4)
	s.Play(Generate(s)[0])
	for _, a := range Generate(s) {
		assert.True(t, a.IsPlacement())
	}
}

func TestThirdPlyEmitsWallsCapsAndThrows(t *testing.T) {
	s := board.NewState(5)
	s.Play(Generate(s)[0])
	s.Play(Generate(s)[0])
	hasWall, hasThrow := false, false
	for _, a := range Generate(s) {
		if a.IsThrow() {
			hasThrow = true
		}
		if a.IsPlacement() && a.PieceKind().String() == "S" {
			hasWall = true
		}
	}
	assert.True(t, hasWall)
	assert.True(t, hasThrow)
}

// TestThrowFromTallStackPreservesTopColor exercises stack.Take/Drop/Top
// on a source pile taller than one piece landing on a single square --
// the one make/unmake path the rest of this file's single-flat throws
// never reach.
func TestThrowFromTallStackPreservesTopColor(t *testing.T) {
	// Bottom-to-top TPS digits "2,1,1" put black at the bottom and white
	// on top.
	s, err := ptn.ParseTPS("x5/x5/x5/x5/211,x4 1 5")
	assert.NoError(t, err)

	a1, _ := types.SquareFromName("a1", 5)
	b1, _ := types.SquareFromName("b1", 5)

	beforeTop, ok := s.StackAt(a1).Top()
	assert.True(t, ok)
	assert.Equal(t, types.White, beforeTop)

	mv, err := ptn.ParseMove("3a1>", 5)
	assert.NoError(t, err)
	s.Play(mv)

	assert.True(t, s.StackAt(a1).IsEmpty())
	dest := s.StackAt(b1)
	assert.Equal(t, 3, dest.Height())
	destTop, ok := dest.Top()
	assert.True(t, ok)
	assert.Equal(t, types.White, destTop, "dropping the whole hand on one square must reproduce the original pile")
}

// TestThrowFromTallStackSpreadsInOriginalOrder throws the same 3-high
// stack across three squares, checking that the originally-topmost
// piece walks all the way to the farthest square.
func TestThrowFromTallStackSpreadsInOriginalOrder(t *testing.T) {
	s, err := ptn.ParseTPS("x5/x5/x5/x5/211,x4 1 5")
	assert.NoError(t, err)

	mv, err := ptn.ParseMove("3a1>111", 5)
	assert.NoError(t, err)
	s.Play(mv)

	a1, _ := types.SquareFromName("a1", 5)
	b1, _ := types.SquareFromName("b1", 5)
	c1, _ := types.SquareFromName("c1", 5)
	d1, _ := types.SquareFromName("d1", 5)

	assert.True(t, s.StackAt(a1).IsEmpty())

	bTop, _ := s.StackAt(b1).Top()
	cTop, _ := s.StackAt(c1).Top()
	dTop, _ := s.StackAt(d1).Top()
	assert.Equal(t, 1, s.StackAt(b1).Height())
	assert.Equal(t, 1, s.StackAt(c1).Height())
	assert.Equal(t, 1, s.StackAt(d1).Height())
	assert.Equal(t, types.Black, bTop, "the stack's original bottom piece is the last one dropped, nearest the source")
	assert.Equal(t, types.White, cTop)
	assert.Equal(t, types.White, dTop, "the original top piece walks to the farthest square")
}
