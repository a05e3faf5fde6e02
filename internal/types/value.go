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

package types

// Value is a search score, symmetric around Draw=0 and always expressed
// from the side-to-move's point of view at the node it was computed.
type Value int32

const (
	// Draw is the value of a drawn or otherwise perfectly balanced position.
	Draw Value = 0

	// Max is the magnitude of the full alpha-beta window, [-Max, Max];
	// aspiration windows are not clamped to it.
	Max Value = 100000

	// Decisive is the lowest magnitude a win/loss score can have. Any
	// Value at or beyond +/-Decisive (before the ply adjustment) is a
	// proven win or loss rather than a heuristic evaluation, which lets
	// the search and the protocol layer distinguish "found mate" from
	// "evaluated very favorably".
	Decisive Value = 99000
)

// Win returns the value of a win found ply moves from the current node.
// Wins closer to the root (smaller ply) score higher so the search
// prefers the fastest win.
func Win(ply int) Value {
	return Max - Value(ply)
}

// Loss returns the value of a loss found ply moves from the current node.
// Losses closer to the root score lower so the search steers toward the
// slowest loss when no better alternative exists.
func Loss(ply int) Value {
	return -Max + Value(ply)
}

// IsWin reports whether v represents a proven win.
func (v Value) IsWin() bool {
	return v >= Decisive
}

// IsLoss reports whether v represents a proven loss.
func (v Value) IsLoss() bool {
	return v <= -Decisive
}

// IsDecisive reports whether v represents a proven win or loss rather
// than a heuristic evaluation.
func (v Value) IsDecisive() bool {
	return v.IsWin() || v.IsLoss()
}

// MatePly extracts the number of plies to a decisive result encoded in v.
// Only meaningful when v.IsDecisive().
func (v Value) MatePly() int {
	if v.IsWin() {
		return int(Max - v)
	}
	return int(Max + v)
}
