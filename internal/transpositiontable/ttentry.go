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

package transpositiontable

import (
	"github.com/gopherstak/tak/internal/action"
	"github.com/gopherstak/tak/internal/types"
)

// Bound says how a stored value relates to the window it was computed
// with: Exact is a proven score, Lower means the true score is at least
// this value (the window's beta was reached), Upper means the true
// score is at most this value (the window's alpha was never reached).
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

// Entry is one slot of a bucket: a 64-bit Zobrist key, a 32-bit packed
// action, a 32-bit value, and a 16-bit field packing depth/bound/
// generation.
type Entry struct {
	key   uint64
	move  action.Action
	value int32
	vmeta uint16
}

const (
	// EntrySize is the size in bytes of one Entry.
	EntrySize = 24

	genMask    = uint16(0b0000_0000_0011_1111)
	boundMask  = uint16(0b0000_0000_1100_0000)
	boundShift = uint16(6)
	depthMask  = uint16(0b0111_1111_0000_0000)
	depthShift = uint16(8)

	// genCycle is the modulus the generation counter and rate() wrap
	// around at (spec.md §4.10: "6-bit cyclic counter").
	genCycle = 64
)

func (e *Entry) Key() uint64 { return e.key }

func (e *Entry) Move() action.Action { return e.move }

func (e *Entry) Value() types.Value { return types.Value(e.value) }

func (e *Entry) Depth() int { return int((e.vmeta & depthMask) >> depthShift) }

func (e *Entry) Bound() Bound { return Bound((e.vmeta & boundMask) >> boundShift) }

func (e *Entry) Generation() uint8 { return uint8(e.vmeta & genMask) }

func (e *Entry) isEmpty() bool { return e.key == 0 }

func (e *Entry) fill(key uint64, move action.Action, depth int, value types.Value, bound Bound, gen uint8) {
	e.key = key
	e.move = move
	e.value = int32(value)
	e.vmeta = uint16(depth)<<depthShift | uint16(bound)<<boundShift | uint16(gen)%genCycle
}

// rate scores how worth keeping an entry is: deeper searches and more
// recent generations rate higher (spec.md §4.10). currGen-entryGen is
// taken mod genCycle so the cyclic counter never produces a negative
// age once it wraps.
func rate(depth int, entryGen, currGen uint8) int {
	age := (int(currGen) - int(entryGen)) % genCycle
	if age < 0 {
		age += genCycle
	}
	return depth - age
}
