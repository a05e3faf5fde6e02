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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gopherstak/tak/internal/board"
	"github.com/gopherstak/tak/internal/config"
	"github.com/gopherstak/tak/internal/game"
	"github.com/gopherstak/tak/internal/logging"
	"github.com/gopherstak/tak/internal/movegen"
	"github.com/gopherstak/tak/internal/protocol"
	"github.com/gopherstak/tak/internal/util"
)

var out = message.NewPrinter(language.German)

const cliVersion = "0.1.0"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./tak.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	profileFlag := flag.Bool("profile", false, "enable CPU profiling for perft and search")
	depth := flag.Int("depth", 4, "search/perft/showmatch/hashtest depth")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.Settings.Log.Level = lvl
	}
	logging.GetLog()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("usage: tak [flags] tei | perft|search|showmatch|hashtest <tps>")
		os.Exit(1)
	}
	cmd := args[0]

	if cmd == "tei" {
		protocol.New().Loop()
		return
	}

	if len(args) < 2 {
		fmt.Printf("%s requires a tps argument\n", cmd)
		os.Exit(1)
	}
	tps := args[1]

	if *profileFlag && (cmd == "perft" || cmd == "search") {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	g, err := game.New(5)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if err := g.SetPosition(tps); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	switch cmd {
	case "perft":
		runPerft(g, *depth)
	case "search":
		runSearch(g, *depth)
	case "showmatch":
		runShowmatch(g, *depth)
	case "hashtest":
		runHashtest(g, *depth)
	default:
		fmt.Printf("unknown command: %s\n", cmd)
		os.Exit(1)
	}
}

func printVersionInfo() {
	out.Printf("tak %s\n", cliVersion)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}

// runPerft reports leaf counts for every depth from 1 up to depth,
// using batch counting (generation only, no make/unmake at the leaf).
func runPerft(g *game.Game, depth int) {
	p := movegen.NewPerft()
	p.StartPerftMulti(g.State(), 1, depth, movegen.Batch)
}

func runSearch(g *game.Game, depth int) {
	start := time.Now()
	score, move := g.Search(depth)
	elapsed := time.Since(start)
	out.Printf("bestmove %s score %d nodes %d time %s nps %d\n",
		move.StringN(g.N()), int(score), g.Nodes(), elapsed, util.Nps(g.Nodes(), elapsed))
}

// runShowmatch plays the engine against itself at a fixed search depth
// until the position is decided, printing the board after every ply.
func runShowmatch(g *game.Game, depth int) {
	out.Println(g.State().String())
	for g.State().CheckStatus() == board.Ongoing {
		mover := g.ActiveColor()
		_, move := g.Search(depth)
		if err := g.Play(move); err != nil {
			out.Printf("search produced an illegal move: %v\n", err)
			return
		}
		out.Printf("%s plays %s\n", mover, move.StringN(g.N()))
		out.Println(g.State().String())
	}
	out.Printf("result: %s\n", g.State().CheckStatus())
}

// runHashtest walks the game tree to depth, verifying at every node that
// the Zobrist key Play maintains incrementally matches a full recompute
// from the board contents.
func runHashtest(g *game.Game, depth int) {
	if hashWalk(g.State(), depth) {
		out.Printf("hashtest depth %d: all incremental hashes matched a full recompute\n", depth)
		return
	}
	out.Println("hashtest: FAILED, see mismatches above")
}

func hashWalk(st *board.State, depth int) bool {
	ok := checkHash(st)
	if depth <= 0 || st.CheckStatus() != board.Ongoing {
		return ok
	}
	for _, mv := range movegen.Generate(st) {
		st.Play(mv)
		if !hashWalk(st, depth-1) {
			ok = false
		}
		st.Undo()
	}
	return ok
}

func checkHash(st *board.State) bool {
	before := st.Hash()
	st.RecomputeHash()
	if st.Hash() != before {
		out.Printf("hash mismatch at ply %d: incremental %d recompute %d\n", st.Ply(), before, st.Hash())
		return false
	}
	return true
}
