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

// Package protocol implements the line-oriented TEI text protocol: a
// bufio.Scanner read loop over stdin, dispatching each line to a
// command handler that drives an internal/game.Game.
package protocol

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/op/go-logging"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/config"
	"github.com/gopherstak/tak/internal/game"
	myLogging "github.com/gopherstak/tak/internal/logging"
	"github.com/gopherstak/tak/internal/types"
)

var regexWhiteSpace = regexp.MustCompile(`\s+`)

// Protocol handles TEI communication between the external driver and
// one internal/game.Game at a time; "teinewgame" replaces it.
type Protocol struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	log *logging.Logger

	g           *game.Game
	moveHistory []string
	halfKomi    int
	debug       bool
	searchStart time.Time
}

// New creates a Protocol reading from stdin and writing to stdout,
// with a default 5x5 game so "position"/"go" work even before a
// "teinewgame" is received.
func New() *Protocol {
	g, err := game.New(5)
	if err != nil {
		panic(err)
	}
	p := &Protocol{
		InIo:  bufio.NewScanner(os.Stdin),
		OutIo: bufio.NewWriter(os.Stdout),
		log:   myLogging.GetProtocolLog(),
		g:     g,
	}
	p.g.OnDepth(p.onDepth)
	return p
}

// Loop runs the read loop until "quit" is received.
func (p *Protocol) Loop() {
	for p.InIo.Scan() {
		if p.handleReceivedCommand(p.InIo.Text()) {
			return
		}
	}
}

// Command handles a single line and returns everything it wrote,
// for tests.
func (p *Protocol) Command(cmd string) string {
	tmp := p.OutIo
	buffer := new(bytes.Buffer)
	p.OutIo = bufio.NewWriter(buffer)
	p.handleReceivedCommand(cmd)
	_ = p.OutIo.Flush()
	p.OutIo = tmp
	return buffer.String()
}

func (p *Protocol) send(line string) {
	p.log.Debugf(">> %s", line)
	_, _ = p.OutIo.WriteString(line)
	_ = p.OutIo.WriteByte('\n')
	_ = p.OutIo.Flush()
}

func (p *Protocol) sendInfoString(msg string) {
	p.log.Warning(msg)
	p.send(fmt.Sprintf("info string %s", msg))
}

func (p *Protocol) handleReceivedCommand(cmd string) bool {
	if len(cmd) == 0 {
		return false
	}
	p.log.Debugf("<< %s", cmd)
	tokens := regexWhiteSpace.Split(cmd, -1)
	switch tokens[0] {
	case "quit":
		p.g.StopSearch()
		return true
	case "tei":
		p.teiCommand()
	case "isready":
		p.send("readyok")
	case "debug":
		p.debugCommand(tokens)
	case "setoption":
		p.setOptionCommand(tokens)
	case "teinewgame":
		p.teiNewGameCommand(tokens)
	case "position":
		p.positionCommand(tokens)
	case "go":
		p.goCommand(tokens)
	case "stop":
		p.g.StopSearch()
	default:
		p.sendInfoString(fmt.Sprintf("unknown command: %s", tokens[0]))
	}
	return false
}

func (p *Protocol) teiCommand() {
	p.send("id name gopherstak")
	p.send("id author the gopherstak contributors")
	p.send("option name HalfKomi type spin default 0 min -20 max 20")
	p.send("teiok")
}

func (p *Protocol) debugCommand(tokens []string) {
	if len(tokens) < 2 {
		return
	}
	switch tokens[1] {
	case "on":
		p.debug = true
	case "off":
		p.debug = false
	}
}

func (p *Protocol) setOptionCommand(tokens []string) {
	if len(tokens) < 5 || tokens[1] != "name" || tokens[2] != "HalfKomi" || tokens[3] != "value" {
		p.sendInfoString(fmt.Sprintf("setoption malformed or unknown option: %v", tokens))
		return
	}
	v, err := strconv.Atoi(tokens[4])
	if err != nil || v < -20 || v > 20 {
		p.sendInfoString("setoption: HalfKomi must be an integer between -20 and 20")
		return
	}
	p.halfKomi = v
}

func (p *Protocol) teiNewGameCommand(tokens []string) {
	p.g.StopSearch()

	size := 5
	if len(tokens) > 1 {
		if n, err := strconv.Atoi(tokens[1]); err == nil {
			size = n
		}
	}
	g, err := game.New(size)
	if err != nil {
		p.sendInfoString(err.Error())
		return
	}
	p.g = g
	p.g.OnDepth(p.onDepth)
	p.moveHistory = nil
}

// positionCommand applies "startpos moves m1 m2 …". The new move list
// must extend the previously accepted one; there is no undo, so a
// shorter or diverging list is rejected rather than replayed.
func (p *Protocol) positionCommand(tokens []string) {
	if len(tokens) < 2 || tokens[1] != "startpos" {
		p.sendInfoString("position command must start with 'startpos'")
		return
	}

	var moves []string
	if len(tokens) > 2 {
		if tokens[2] != "moves" {
			p.sendInfoString(fmt.Sprintf("position command malformed: %v", tokens))
			return
		}
		moves = tokens[3:]
	}

	if len(moves) < len(p.moveHistory) {
		p.sendInfoString("position: move history can't be retracted (no undo supported)")
		return
	}
	for i, mv := range p.moveHistory {
		if moves[i] != mv {
			p.sendInfoString("position: move history mismatch (no undo supported)")
			return
		}
	}

	for _, text := range moves[len(p.moveHistory):] {
		mv, err := p.g.ParseMove(text)
		if err != nil {
			p.sendInfoString(err.Error())
			return
		}
		if err := p.g.Play(mv); err != nil {
			p.sendInfoString(err.Error())
			return
		}
		p.moveHistory = append(p.moveHistory, text)
	}
}

// goCommand starts a search on a worker. Per-move time budgeting from
// wtime/btime/winc/binc is explicitly out of scope (spec.md's
// Non-goals exclude a time-management policy beyond the abort flag);
// only "movetime" (a hard timer) and "infinite" (no timer, wait for an
// explicit "stop") actually govern how long the search runs. The
// clock fields are still parsed so malformed input is still caught.
func (p *Protocol) goCommand(tokens []string) {
	var movetime time.Duration
	infinite := false

	for i := 1; i < len(tokens); i++ {
		switch tokens[i] {
		case "wtime", "btime", "winc", "binc":
			i++
		case "movetime":
			i++
			if i < len(tokens) {
				ms, err := strconv.Atoi(tokens[i])
				if err != nil {
					p.sendInfoString(fmt.Sprintf("go: movetime not a number: %s", tokens[i]))
					return
				}
				movetime = time.Duration(ms) * time.Millisecond
			}
		case "infinite":
			infinite = true
		}
	}

	p.g.ClearNodes()
	p.searchStart = time.Now()
	p.g.StartSearch(config.Settings.Search.MaxDepth)

	if !infinite && movetime > 0 {
		time.AfterFunc(movetime, p.g.StopSearch)
	}

	go func() {
		p.g.WaitWhileSearching()
		_, move := p.g.LastResult()
		p.send(fmt.Sprintf("bestmove %s", move.StringN(p.g.N())))
	}()
}

func (p *Protocol) onDepth(depth int, score types.Value, move action.Action, nodes uint64) {
	elapsed := time.Since(p.searchStart)
	p.send(fmt.Sprintf("info depth %d time %d pv %s score cp %d",
		depth, elapsed.Milliseconds(), move.StringN(p.g.N()), int(score)))
}
