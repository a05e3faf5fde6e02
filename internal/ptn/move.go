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

// Package ptn parses the two text formats the external driver speaks:
// PTN move text (into an action.Action) and TPS position text (into a
// board.State). Displaying an already-built Action back as PTN is
// action.Action.StringN's job, not this package's; ptn only goes
// text-to-value.
package ptn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/types"
)

// ParseMove parses a to PTN move text against an n-sized board: a bare
// placement "[FSC]?<square>", or a throw "[count]?<square><dir><drops>?"
// with a direction glyph in "<>+-" and drops a run of digits (or the
// "(n)" parenthesized form for counts >= 10) summing to count.
func ParseMove(text string, n int) (action.Action, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return action.Pass, fmt.Errorf("ptn: empty move text")
	}
	if text == "pass" {
		return action.Pass, nil
	}

	switch text[0] {
	case 'F', 'S', 'C':
		kind, _ := markerToKind(text[0])
		sq, ok := types.SquareFromName(text[1:], n)
		if !ok {
			return action.Pass, fmt.Errorf("ptn: bad placement square in %q", text)
		}
		return action.NewPlacement(sq, kind), nil
	}

	rest := text
	count := 1
	if rest[0] >= '1' && rest[0] <= '9' {
		count = int(rest[0] - '0')
		rest = rest[1:]
	}

	dirIdx := strings.IndexAny(rest, "<>+-")
	if dirIdx < 0 {
		// No direction glyph: a bare square is a flat placement, PTN's
		// unprefixed form.
		sq, ok := types.SquareFromName(rest, n)
		if !ok {
			return action.Pass, fmt.Errorf("ptn: unrecognized move %q", text)
		}
		return action.NewPlacement(sq, types.Flat), nil
	}

	sq, ok := types.SquareFromName(rest[:dirIdx], n)
	if !ok {
		return action.Pass, fmt.Errorf("ptn: bad throw square in %q", text)
	}
	dir, ok := types.DirectionFromGlyph(rest[dirIdx])
	if !ok {
		return action.Pass, fmt.Errorf("ptn: bad direction in %q", text)
	}

	drops, err := parseDrops(rest[dirIdx+1:], count)
	if err != nil {
		return action.Pass, fmt.Errorf("ptn: %s in %q", err, text)
	}
	return action.NewThrow(sq, dir, patternFromDrops(drops, n)), nil
}

func markerToKind(b byte) (types.PieceKind, bool) {
	switch b {
	case 'F':
		return types.Flat, true
	case 'S':
		return types.Wall, true
	case 'C':
		return types.Cap, true
	default:
		return types.Flat, false
	}
}

// parseDrops reads a drop-count suffix, defaulting to a single drop of
// the whole taken count when the suffix is empty (PTN suppresses the
// suffix when the entire hand lands on one square).
func parseDrops(text string, count int) ([]int, error) {
	if text == "" {
		return []int{count}, nil
	}
	var drops []int
	sum := 0
	for i := 0; i < len(text); {
		if text[i] == '(' {
			close := strings.IndexByte(text[i:], ')')
			if close < 0 {
				return nil, fmt.Errorf("unterminated '(' in drop counts")
			}
			v, err := strconv.Atoi(text[i+1 : i+close])
			if err != nil {
				return nil, fmt.Errorf("bad parenthesized drop count")
			}
			drops = append(drops, v)
			sum += v
			i += close + 1
			continue
		}
		if text[i] < '0' || text[i] > '9' {
			return nil, fmt.Errorf("bad drop count digit %q", text[i])
		}
		v := int(text[i] - '0')
		drops = append(drops, v)
		sum += v
		i++
	}
	if sum != count {
		return nil, fmt.Errorf("drop counts sum to %d, not the taken count %d", sum, count)
	}
	return drops, nil
}

// patternFromDrops rebuilds the Pattern bitmask action.Pattern.DropCounts
// decodes: a set bit at hand-taken marks where the taken pieces start,
// then one more set bit per drop boundary except the last, which is the
// pattern's own implicit top (action.Pattern.DropCounts ORs in a sentinel
// bit at position hand before walking the boundaries).
func patternFromDrops(drops []int, n int) action.Pattern {
	hand := n
	taken := 0
	for _, d := range drops {
		taken += d
	}
	pos := hand - taken
	pattern := uint32(1) << uint(pos)
	for i := 0; i < len(drops)-1; i++ {
		pos += drops[i]
		pattern |= uint32(1) << uint(pos)
	}
	return action.Pattern(pattern)
}
