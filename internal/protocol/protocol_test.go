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

package protocol

import (
	"bufio"
	"bytes"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gopherstak/tak/internal/action"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestTeiCommandAnnouncesIdentityAndOption(t *testing.T) {
	p := New()
	out := p.Command("tei")
	assert.Contains(t, out, "id name")
	assert.Contains(t, out, "option name HalfKomi")
	assert.Contains(t, out, "teiok")
}

func TestIsReadyRespondsReadyOk(t *testing.T) {
	p := New()
	assert.Contains(t, p.Command("isready"), "readyok")
}

func TestTeiNewGameRejectsBadSize(t *testing.T) {
	p := New()
	out := p.Command("teinewgame 20")
	assert.Contains(t, out, "info string")
}

func TestPositionAcceptsAnExtendingMoveList(t *testing.T) {
	p := New()
	p.Command("teinewgame 5")

	out := p.Command("position startpos moves a1")
	assert.Equal(t, "", out, "a bare flat placement on an empty 5x5 board is always legal")
	assert.Equal(t, []string{"a1"}, p.moveHistory)
}

func TestPositionRejectsAMoveHistoryRetraction(t *testing.T) {
	p := New()
	p.Command("teinewgame 5")
	p.Command("position startpos moves a1 b1")

	out := p.Command("position startpos moves a1")
	assert.Contains(t, out, "info string")
	assert.Equal(t, []string{"a1", "b1"}, p.moveHistory, "a rejected retraction leaves history untouched")
}

func TestPositionRejectsMalformedMoveText(t *testing.T) {
	p := New()
	p.Command("teinewgame 5")

	out := p.Command("position startpos moves notamove")
	assert.Contains(t, out, "info string")
}

func TestSetOptionAcceptsHalfKomiInRange(t *testing.T) {
	p := New()
	out := p.Command("setoption name HalfKomi value 4")
	assert.Equal(t, "", out)
	assert.Equal(t, 4, p.halfKomi)
}

func TestSetOptionRejectsOutOfRangeHalfKomi(t *testing.T) {
	p := New()
	out := p.Command("setoption name HalfKomi value 99")
	assert.Contains(t, out, "info string")
}

func TestLoopStopsOnQuit(t *testing.T) {
	p := New()
	p.InIo = bufio.NewScanner(strings.NewReader("isready\nquit\n"))
	buffer := new(bytes.Buffer)
	p.OutIo = bufio.NewWriter(buffer)
	p.Loop()
	assert.Contains(t, buffer.String(), "readyok")
}

func TestGoWithMovetimeProducesALegalResult(t *testing.T) {
	p := New()
	p.Command("teinewgame 4")
	p.Command("go movetime 10")
	p.g.WaitWhileSearching()
	_, move := p.g.LastResult()
	assert.NotEqual(t, action.Pass, move)
}
