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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherstak/tak/internal/board"
)

var out = message.NewPrinter(language.German)

// Mode selects how Perft counts leaves: Naive plays and undoes every move
// at every depth; Batch skips the make/unmake at the final ply and just
// adds the branching factor, since the leaf count at depth 1 is exactly
// the move count.
type Mode int

const (
	Naive Mode = iota
	Batch
)

// Perft counts the leaves of the game tree below a position to a given
// depth, used to cross-check move generation against known node counts.
type Perft struct {
	Nodes    uint64
	stopFlag bool
}

// NewPerft creates a new empty Perft instance.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop can be used when perft has been started in a goroutine to stop the
// currently running perft test.
func (p *Perft) Stop() {
	p.stopFlag = true
}

// StartPerftMulti runs Count for every depth from start to end, reporting
// each depth's nodes-per-second to the log. If started in a goroutine it
// can be stopped via Stop().
func (p *Perft) StartPerftMulti(s *board.State, start, end int, mode Mode) {
	p.stopFlag = false
	for d := start; d <= end; d++ {
		if p.stopFlag {
			out.Print("perft multi depth stopped\n")
			return
		}
		p.StartPerft(s, d, mode)
	}
}

// StartPerft runs Count once at depth, timing and logging the result.
func (p *Perft) StartPerft(s *board.State, depth int, mode Mode) uint64 {
	p.stopFlag = false
	if depth <= 0 {
		depth = 1
	}
	start := time.Now()
	p.Nodes = 0
	p.count(s, depth, mode)
	elapsed := time.Since(start)
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(p.Nodes) / elapsed.Seconds())
	}
	out.Printf("perft depth %d: %d nodes in %s (%d nps)\n", depth, p.Nodes, elapsed, nps)
	return p.Nodes
}

// Count returns the number of leaves of the game tree below s at depth,
// without the logging/timing StartPerft does.
func Count(s *board.State, depth int, mode Mode) uint64 {
	p := &Perft{}
	p.count(s, depth, mode)
	return p.Nodes
}

func (p *Perft) count(s *board.State, depth int, mode Mode) {
	if p.stopFlag {
		return
	}
	if s.CheckStatus() != board.Ongoing {
		p.Nodes++
		return
	}
	actions := Generate(s)
	if depth == 1 {
		if mode == Batch {
			p.Nodes += uint64(len(actions))
			return
		}
		for _, a := range actions {
			s.Play(a)
			p.Nodes++
			s.Undo()
		}
		return
	}
	for _, a := range actions {
		s.Play(a)
		p.count(s, depth-1, mode)
		s.Undo()
		if p.stopFlag {
			return
		}
	}
}
