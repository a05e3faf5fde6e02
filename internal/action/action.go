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

// Package action implements the move handle: a small integer encoding a
// pass, a placement, or a throw, with the bitfield accessors make/unmake,
// generation and display build on.
package action

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/gopherstak/tak/internal/types"
)

// Action is the move handle. Layout, little-endian bitfields:
//
//	bits [0, squareBits)               square
//	bits [tagOffset, tagOffset+tagBits) road+2*noble for a placement, or
//	                                     direction for a throw
//	bits [patternOffset, width)         pattern (throws only)
//
// The zero value is Pass: square 0 with no tag bits set can never be a
// legal placement (every placement sets a nonzero piece-kind tag) or a
// legal throw (every throw's pattern has at least one bit set), so 0 is
// unambiguous.
type Action uint32

const (
	squareBits    = 6
	tagOffset     = squareBits
	tagBits       = 2
	patternOffset = tagOffset + tagBits

	squareMask = (1 << squareBits) - 1
	tagMask    = (1 << tagBits) - 1
)

// Pattern is the drop-count bit mask of a throw, per spec: ones
// demarcate drop-count boundaries; trailing zeros below the lowest one
// encode how many pieces HAND - trailingZeros were picked up.
type Pattern uint32

// Pass is the sentinel "no move" action.
const Pass Action = 0

// NewPlacement builds the action that places a piece of kind k on sq.
func NewPlacement(sq types.Square, k types.PieceKind) Action {
	tag := placementTag(k)
	return Action(sq)&squareMask | Action(tag)<<tagOffset
}

func placementTag(k types.PieceKind) uint32 {
	var tag uint32
	if k.IsRoad() {
		tag |= 1
	}
	if k.IsBlock() {
		tag |= 2
	}
	return tag
}

func tagToPieceKind(tag uint32) types.PieceKind {
	switch tag {
	case 1:
		return types.Flat
	case 2:
		return types.Wall
	case 3:
		return types.Cap
	default:
		return types.Flat
	}
}

// NewThrow builds the action that throws the top of src's stack pattern
// steps in direction dir.
func NewThrow(src types.Square, dir types.Direction, pattern Pattern) Action {
	return Action(src)&squareMask | Action(dir)<<tagOffset | Action(pattern)<<patternOffset
}

// IsPass reports whether a is the pass sentinel.
func (a Action) IsPass() bool {
	return a == Pass
}

// Square returns the placement square, or the throw's source square.
func (a Action) Square() types.Square {
	return types.Square(a & squareMask)
}

func (a Action) tag() uint32 {
	return uint32(a>>tagOffset) & tagMask
}

// Pattern returns the throw's drop-count pattern. Zero for placements
// and for Pass.
func (a Action) Pattern() Pattern {
	return Pattern(a >> patternOffset)
}

// IsThrow reports whether a is a throw.
func (a Action) IsThrow() bool {
	return !a.IsPass() && a.Pattern() != 0
}

// IsPlacement reports whether a is a placement.
func (a Action) IsPlacement() bool {
	return !a.IsPass() && a.Pattern() == 0
}

// PieceKind returns the piece kind of a placement action. Only valid
// when a.IsPlacement().
func (a Action) PieceKind() types.PieceKind {
	return tagToPieceKind(a.tag())
}

// Direction returns the throw direction of a throw action. Only valid
// when a.IsThrow().
func (a Action) Direction() types.Direction {
	return types.Direction(a.tag())
}

// TakenCount returns how many pieces a throw's pattern picks up from
// the source stack, given the board's HAND (carry limit, equal to N).
func (p Pattern) TakenCount(hand int) int {
	return hand - bits.TrailingZeros32(uint32(p))
}

// DropCounts decodes a throw's pattern into the ordered sequence of
// drop counts along the throw, source square first. hand is the
// board's HAND (carry limit, equal to N).
func (p Pattern) DropCounts(hand int) []int {
	augmented := uint32(p) | (1 << uint(hand))
	pos := bits.TrailingZeros32(uint32(p))
	var counts []int
	for pos < hand {
		next := pos + 1
		for (augmented>>uint(next))&1 == 0 {
			next++
		}
		counts = append(counts, next-pos)
		pos = next
	}
	return counts
}

// String renders the action in PTN-ish form: a bare square name for a
// placement of a flat, {marker}{square} for walls/caps, and
// {square}{dir}[{pattern bits}] for a throw, since the taken and drop
// counts depend on N. StringN renders a throw as PTN proper.
func (a Action) String() string {
	if a.IsPass() {
		return "pass"
	}
	if a.IsPlacement() {
		return a.PieceKind().Marker() + a.Square().Name()
	}
	return a.throwString()
}

func (a Action) throwString() string {
	dir := a.Direction()
	sq := a.Square()
	pattern := a.Pattern()
	// hand/N isn't recoverable from the action alone; callers that need
	// exact PTN drop-count suppression should use StringN with the
	// board's N. This fallback renders the raw pattern bits.
	return fmt.Sprintf("%s%s[%0*b]", sq.Name(), string(dir.PtnGlyph()), 8, uint32(pattern))
}

// StringN renders a throw using PTN's count-suppression rules, given
// the board's N (== HAND). Placements and Pass ignore n and behave like
// String.
func (a Action) StringN(n int) string {
	if !a.IsThrow() {
		return a.String()
	}
	dir := a.Direction()
	sq := a.Square()
	taken := a.Pattern().TakenCount(n)
	counts := a.Pattern().DropCounts(n)

	var b strings.Builder
	if taken != 1 {
		b.WriteString(strconv.Itoa(taken))
	}
	b.WriteString(sq.Name())
	b.WriteByte(dir.PtnGlyph())
	if !(len(counts) == 1 && counts[0] == taken) {
		for _, c := range counts {
			b.WriteString(strconv.Itoa(c))
		}
	}
	return b.String()
}
