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

import "fmt"

// NewGameError reports an unsupported board size, a non-power-of-two
// transposition-table size, or an invalid option value at engine
// construction.
type NewGameError struct {
	Reason string
}

func (e *NewGameError) Error() string { return fmt.Sprintf("new game: %s", e.Reason) }

// ParseMoveError reports move text that fails PTN parsing.
type ParseMoveError struct {
	Text string
	Err  error
}

func (e *ParseMoveError) Error() string { return fmt.Sprintf("parse move %q: %v", e.Text, e.Err) }
func (e *ParseMoveError) Unwrap() error { return e.Err }

// PlayMoveError reports a well-formed move that is illegal in the
// current position.
type PlayMoveError struct {
	Move string
}

func (e *PlayMoveError) Error() string { return fmt.Sprintf("illegal move: %s", e.Move) }

// SetPositionError reports TPS text that fails to parse, or a position
// it describes that is internally inconsistent (reserves overdrawn).
type SetPositionError struct {
	Text string
	Err  error
}

func (e *SetPositionError) Error() string { return fmt.Sprintf("set position %q: %v", e.Text, e.Err) }
func (e *SetPositionError) Unwrap() error { return e.Err }
