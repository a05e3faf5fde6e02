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

package config

// searchConfiguration holds the tunable knobs of internal/search's
// iterative-deepening alpha-beta driver, per spec.md §4.10/§4.11.
type searchConfiguration struct {
	// Transposition table
	UseTT  bool
	TTSize int // MiB, rounded down to a power-of-two entry count

	// Move ordering
	UsePVS    bool
	UseKiller bool

	// KillerTableSize bounds the killer-move ring: indexed by ply mod
	// KillerTableSize, so the search never looks back further than this
	// many plies for a remembered cutoff move.
	KillerTableSize int

	// Null-move pruning
	UseNullMove   bool
	NmpFactor     int // depth reduction: search at depth-NmpFactor-1
	NmpFudge      int
	NmpEvalMargin int

	// Aspiration windows
	UseAspiration      bool
	AspirationWindow   int
	AspirationAttempts int

	// Iterative deepening ceiling (also bounds the principal-variation
	// walk length).
	MaxDepth int
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Search.UseTT = true
	Settings.Search.TTSize = 64

	Settings.Search.UsePVS = true
	Settings.Search.UseKiller = true
	Settings.Search.KillerTableSize = 2

	Settings.Search.UseNullMove = true
	Settings.Search.NmpFactor = 2
	Settings.Search.NmpFudge = 50
	Settings.Search.NmpEvalMargin = 100

	Settings.Search.UseAspiration = true
	Settings.Search.AspirationWindow = 50
	Settings.Search.AspirationAttempts = 4

	Settings.Search.MaxDepth = 64
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupSearch() {
}
