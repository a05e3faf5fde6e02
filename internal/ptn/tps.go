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
	"fmt"
	"strconv"
	"strings"

	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/stack"
	"github.com/gopherstak/tak/internal/types"
)

// ParseTPS builds a board.State from TPS text: rows top-to-bottom
// separated by '/', cells within a row separated by ',', a trailing
// "<side-to-move> <full-move-number>" pair. Reserves aren't encoded in
// TPS directly; they're recovered by subtracting the pieces TPS places
// from board.DefaultReserves(n).
func ParseTPS(text string) (*board.State, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 3 {
		return nil, fmt.Errorf("tps: expected 3 space-separated fields, got %d", len(fields))
	}

	rowsText := strings.Split(fields[0], "/")
	n := len(rowsText)
	stonesDefault, capsDefault, ok := board.DefaultReserves(n)
	if !ok {
		return nil, fmt.Errorf("tps: unsupported board size %d", n)
	}

	st := board.NewState(n)
	for i, rowText := range rowsText {
		row := n - 1 - i
		if err := parseRow(st, rowText, row, n); err != nil {
			return nil, fmt.Errorf("tps: row %d: %w", i, err)
		}
	}

	var stonesUsed, capsUsed [2]int
	for _, sq := range st.Geometry().Board.BitSquares() {
		p := st.StackAt(sq)
		h := p.Height()
		if h == 0 {
			continue
		}
		topKind, _, _ := st.TopKind(sq)
		for i := 0; i < h; i++ {
			color := types.Color((p >> uint(i)) & 1)
			if i == 0 && topKind == types.Cap {
				capsUsed[color]++
			} else {
				stonesUsed[color]++
			}
		}
	}
	for _, c := range []types.Color{types.White, types.Black} {
		stonesLeft := stonesDefault - stonesUsed[c]
		capsLeft := capsDefault - capsUsed[c]
		if stonesLeft < 0 || capsLeft < 0 {
			return nil, fmt.Errorf("tps: position uses more pieces than %s's reserve allows", c)
		}
		st.SetReserves(c, stonesLeft, capsLeft)
	}

	side, err := parseSide(fields[1])
	if err != nil {
		return nil, fmt.Errorf("tps: %w", err)
	}
	moveNumber, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("tps: bad move number %q", fields[2])
	}
	ply := 2 * (moveNumber - 1)
	if side == types.Black {
		ply++
	}
	st.SetTurn(side, ply)
	st.RecomputeHash()

	return st, nil
}

func parseSide(text string) (types.Color, error) {
	switch text {
	case "1":
		return types.White, nil
	case "2":
		return types.Black, nil
	default:
		return types.White, fmt.Errorf("bad side-to-move field %q", text)
	}
}

// parseRow applies one TPS row's cells to row of st, left to right.
func parseRow(st *board.State, rowText string, row, n int) error {
	col := 0
	for _, cell := range strings.Split(rowText, ",") {
		if cell == "" {
			return fmt.Errorf("empty cell")
		}
		if cell[0] == 'x' {
			count := 1
			if len(cell) > 1 {
				c, err := strconv.Atoi(cell[1:])
				if err != nil {
					return fmt.Errorf("bad empty-run count %q", cell)
				}
				count = c
			}
			col += count
			continue
		}

		digits := cell
		kind := types.Flat
		hasKind := false
		switch cell[len(cell)-1] {
		case 'S':
			kind, hasKind = types.Wall, true
			digits = cell[:len(cell)-1]
		case 'C':
			kind, hasKind = types.Cap, true
			digits = cell[:len(cell)-1]
		}
		if digits == "" {
			return fmt.Errorf("cell %q has no pieces", cell)
		}

		// digits runs bottom-to-top; Pile/Hand bit 0 is the top piece, so
		// the last digit maps to bit 0 and the first digit to the highest bit.
		var hand stack.Hand
		for i := 0; i < len(digits); i++ {
			bit := uint(len(digits) - 1 - i)
			switch digits[i] {
			case '1':
				hand |= stack.Hand(types.White) << bit
			case '2':
				hand |= stack.Hand(types.Black) << bit
			default:
				return fmt.Errorf("bad piece digit %q in cell %q", digits[i], cell)
			}
		}

		if col >= n {
			return fmt.Errorf("row has more than %d cells", n)
		}
		sq := types.MakeSquare(row, col)
		st.SetStack(sq, stack.FromHandAndCount(hand, len(digits)))
		if hasKind {
			st.SetTopKind(sq, kind)
		}
		col++
	}
	if col != n {
		return fmt.Errorf("row spans %d columns, want %d", col, n)
	}
	return nil
}

// FormatTPS renders st as TPS text, the inverse of ParseTPS.
func FormatTPS(st *board.State) string {
	n := st.N()
	rows := make([]string, 0, n)
	for row := n - 1; row >= 0; row-- {
		rows = append(rows, formatRow(st, row, n))
	}

	side := "1"
	if st.ActiveColor() == types.Black {
		side = "2"
	}
	moveNumber := st.Ply()/2 + 1
	return fmt.Sprintf("%s %s %d", strings.Join(rows, "/"), side, moveNumber)
}

func formatRow(st *board.State, row, n int) string {
	var cells []string
	emptyRun := 0
	flush := func() {
		if emptyRun == 0 {
			return
		}
		if emptyRun == 1 {
			cells = append(cells, "x")
		} else {
			cells = append(cells, fmt.Sprintf("x%d", emptyRun))
		}
		emptyRun = 0
	}

	for col := 0; col < n; col++ {
		p := st.StackAt(types.MakeSquare(row, col))
		if p.IsEmpty() {
			emptyRun++
			continue
		}
		flush()
		cells = append(cells, pileDigits(p)+topKindSuffix(st, types.MakeSquare(row, col)))
	}
	flush()
	return strings.Join(cells, ",")
}

// pileDigits renders p's pieces bottom-to-top, the inverse of the bit
// indexing applied in parseRow: bit 0 (the top piece) becomes the last
// digit.
func pileDigits(p stack.Pile) string {
	h := p.Height()
	b := make([]byte, h)
	for i := 0; i < h; i++ {
		b[i] = '1' + byte((p>>uint(h-1-i))&1)
	}
	return string(b)
}

func topKindSuffix(st *board.State, sq types.Square) string {
	kind, _, _ := st.TopKind(sq)
	switch kind {
	case types.Wall:
		return "S"
	case types.Cap:
		return "C"
	default:
		return ""
	}
}
