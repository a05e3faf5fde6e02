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

// Package transpositiontable implements the search's position cache: a
// fixed number of two-entry buckets keyed by the low bits of the
// position's Zobrist hash, with a depth/generation replacement policy.
// Table is not safe for concurrent Put/Resize/Clear calls.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherstak/tak/internal/action"
	myLogging "github.com/gopherstak/tak/internal/logging"
	"github.com/gopherstak/tak/internal/types"
	"github.com/gopherstak/tak/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	KB = uint64(1024)
	MB = KB * KB

	// MaxSizeInMB caps Resize's requested size.
	MaxSizeInMB = 65_536

	// BucketSize is the number of entries sharing one hash slot
	// (spec.md §4.10: "a bucket holds two entries").
	BucketSize = 2
)

type bucket [BucketSize]Entry

// Table is the transposition table.
type Table struct {
	log             *logging.Logger
	data            []bucket
	sizeInByte      uint64
	hashKeyMask     uint64
	maxNumBuckets   uint64
	numberOfEntries uint64
	generation      uint8
	Stats           Stats
}

// Stats holds usage counters, reported by String and used in tests.
type Stats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// New creates a Table sized to fit within sizeInMByte, rounded down to
// the nearest power-of-two bucket count.
func New(sizeInMByte int) *Table {
	tt := &Table{log: myLogging.GetLog()}
	tt.Resize(sizeInMByte)
	return tt
}

// Resize clears the table and rebuilds it to fit within sizeInMByte.
func (tt *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	requested := uint64(sizeInMByte) * MB
	bucketBytes := uint64(BucketSize * EntrySize)
	tt.maxNumBuckets = 0
	if requested >= bucketBytes {
		tt.maxNumBuckets = 1 << uint64(math.Floor(math.Log2(float64(requested/bucketBytes))))
	}
	tt.hashKeyMask = 0
	if tt.maxNumBuckets > 0 {
		tt.hashKeyMask = tt.maxNumBuckets - 1
	}
	tt.sizeInByte = tt.maxNumBuckets * bucketBytes

	tt.data = make([]bucket, tt.maxNumBuckets)
	tt.numberOfEntries = 0
	tt.generation = 0

	tt.log.Info(out.Sprintf("TT size %d MByte, %d buckets of %d entries (%d Byte each) (requested %d MByte)",
		tt.sizeInByte/MB, tt.maxNumBuckets, BucketSize, unsafe.Sizeof(Entry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// NewGeneration advances the cyclic generation counter, called once per
// root search so rate() ages every entry already in the table.
func (tt *Table) NewGeneration() {
	tt.generation = uint8((int(tt.generation) + 1) % genCycle)
}

// Probe returns the bucket slot matching key, or nil on a miss.
func (tt *Table) Probe(key uint64) *Entry {
	tt.Stats.numberOfProbes++
	if tt.maxNumBuckets == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	b := &tt.data[tt.index(key)]
	for i := range b {
		if !b[i].isEmpty() && b[i].key == key {
			tt.Stats.numberOfHits++
			return &b[i]
		}
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result under key, computed with window
// [alpha0, beta0]: scores at or below alpha0 are an upper bound, at or
// above beta0 a lower bound, otherwise exact (spec.md §4.10).
func (tt *Table) Put(key uint64, move action.Action, depth int, value, alpha0, beta0 types.Value) {
	if tt.maxNumBuckets == 0 {
		return
	}
	tt.Stats.numberOfPuts++

	bound := Exact
	switch {
	case value <= alpha0:
		bound = Upper
	case value >= beta0:
		bound = Lower
	}

	b := &tt.data[tt.index(key)]

	for i := range b {
		if b[i].isEmpty() {
			tt.numberOfEntries++
			b[i].fill(key, move, depth, value, bound, tt.generation)
			return
		}
		if b[i].key == key {
			tt.Stats.numberOfUpdates++
			if move == action.Pass {
				move = b[i].move
			}
			b[i].fill(key, move, depth, value, bound, tt.generation)
			return
		}
	}

	// Bucket full of other positions: replace the worst-rated entry.
	tt.Stats.numberOfCollisions++
	worst := 0
	worstRate := rate(b[0].Depth(), b[0].Generation(), tt.generation)
	for i := 1; i < len(b); i++ {
		r := rate(b[i].Depth(), b[i].Generation(), tt.generation)
		if r <= worstRate {
			worstRate = r
			worst = i
		}
	}
	tt.Stats.numberOfOverwrites++
	b[worst].fill(key, move, depth, value, bound, tt.generation)
}

// Clear empties every bucket and resets the stats.
func (tt *Table) Clear() {
	tt.data = make([]bucket, tt.maxNumBuckets)
	tt.numberOfEntries = 0
	tt.generation = 0
	tt.Stats = Stats{}
}

// Hashfull reports how full the table is, in permille.
func (tt *Table) Hashfull() int {
	if tt.maxNumBuckets == 0 {
		return 0
	}
	capacity := tt.maxNumBuckets * BucketSize
	return int((1000 * tt.numberOfEntries) / capacity)
}

// Len returns the number of occupied entries.
func (tt *Table) Len() uint64 { return tt.numberOfEntries }

// String renders the table's size and usage statistics.
func (tt *Table) String() string {
	return out.Sprintf("TT: size %d MB buckets %d entries %d (%d%%) puts %d updates %d collisions %d "+
		"overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumBuckets, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites,
		tt.Stats.numberOfProbes, tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

func (tt *Table) index(key uint64) uint64 {
	return key & tt.hashKeyMask
}
