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

// evalConfiguration holds the tunable weights of internal/evaluator, per
// spec.md §4.8.
type evalConfiguration struct {
	// Material: flat_count * FlatDiffWeight + stones_left*StonesLeftWeight
	// + caps_left*CapsLeftWeight. The reserve weights are negative:
	// reserves still in hand are a tempo liability, not an asset.
	FlatDiffWeight   int
	StonesLeftWeight int
	CapsLeftWeight   int

	// Geometry: weight applied to each axis's bounded flood-distance
	// estimate (closer to a finished road is worth more).
	RoadDistanceWeight int

	// MaxDistOffset is added to N to cap the flood_distance search
	// (spec.md §4.8); Open Question (b) fixes this at -1 with a floor
	// of 0, saturating at N-1.
	MaxDistOffset int

	// SideToMoveBonus is added once for whichever side is to move.
	SideToMoveBonus int
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.FlatDiffWeight = 2
	Settings.Eval.StonesLeftWeight = -1
	Settings.Eval.CapsLeftWeight = -2

	Settings.Eval.RoadDistanceWeight = 20

	Settings.Eval.MaxDistOffset = -1

	Settings.Eval.SideToMoveBonus = 5
}

// set defaults for configurations here in case a configuration is not
// available from the config file.
func setupEval() {
}
