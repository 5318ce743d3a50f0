// Command variantgen is the CLI front end for the move-generation engine
// (spec component P): given a FEN-like position and a variant name, it
// prints the 64-entry array of destination-square arrays as JSON. It
// mirrors the shape of the teacher's cmd/FrankyGo/main.go: flag.Parse up
// front, config.Setup before anything else touches config.Settings, then
// dispatch on the mode flags the user passed.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/kopptools/variantmove/internal/attacks"
	"github.com/kopptools/variantmove/internal/batch"
	"github.com/kopptools/variantmove/internal/board"
	"github.com/kopptools/variantmove/internal/config"
	"github.com/kopptools/variantmove/internal/logging"
	"github.com/kopptools/variantmove/internal/movegen"
	"github.com/kopptools/variantmove/internal/util"
	"github.com/kopptools/variantmove/internal/variant"
)

var log = logging.GetLog("main")

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fen := flag.String("fen", board.StartFen, "fen-like position string to generate moves for")
	variantName := flag.String("variant", "", "name of the variant to generate moves under")
	variantsFile := flag.String("variants", "", "path to the variants INI file (overrides config.toml)")
	batchFile := flag.String("batch", "", "path to a file of fen|variantName lines (blank and #-prefixed lines skipped); runs all of them concurrently and exits")
	workers := flag.Int("workers", 4, "number of concurrent workers for -batch")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of this run to ./cpu.pprof")
	stats := flag.Bool("stats", false, "print a memory/timing summary to stderr before exiting")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()
	logging.SetLevel(logging.LevelFromString(config.Settings.Log.Level))

	start := time.Now()
	if *stats {
		defer func() { util.TimeTrack(start, "variantgen run") }()
	}

	vf := config.Settings.Engine.VariantsFile
	if *variantsFile != "" {
		vf = *variantsFile
	}
	registry, err := variant.LoadRegistry(vf)
	if err != nil {
		log.Errorf("failed to load variants file %q: %v", vf, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cacheDir, err := util.ResolveCreateFolder(config.Settings.Engine.CacheDir)
	if err != nil {
		log.Errorf("failed to resolve cache dir: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	tables := attacks.NewTables(cacheDir)

	if *batchFile != "" {
		runBatch(*batchFile, tables, registry, *workers)
		if *stats {
			fmt.Fprintln(os.Stderr, util.MemStat())
		}
		return
	}

	if *variantName == "" {
		fmt.Fprintln(os.Stderr, "missing -variant (or use -batch)")
		os.Exit(1)
	}

	v, err := registry.Get(*variantName)
	if err != nil {
		log.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pos, err := board.Parse(*fen)
	if err != nil {
		log.Warningf("fen parse warning: %v", err)
	}

	moves := movegen.Generate(pos, v, tables)
	emit(moves)

	if *stats {
		fmt.Fprintln(os.Stderr, util.MemStat())
	}
}

// emit prints moves as a JSON array of 64 ascending-square-index arrays,
// per §6's output contract.
func emit(moves [64]board.Bitboard) {
	out := make([][]int, 64)
	for sq := 0; sq < 64; sq++ {
		out[sq] = moves[sq].Squares()
	}
	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(out); err != nil {
		log.Errorf("failed to encode output: %v", err)
		os.Exit(1)
	}
}

// parseBatchFile reads the line grammar documented in SPEC_FULL.md §6:
// one `fen|variantName` pair per line, blank lines and `#`-prefixed
// lines skipped.
func parseBatchFile(path string) ([]batch.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var queries []batch.Query
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		i := strings.LastIndexByte(line, '|')
		if i < 0 {
			log.Warningf("ignoring malformed batch line (missing '|'): %q", line)
			continue
		}
		queries = append(queries, batch.Query{
			Fen:     strings.TrimSpace(line[:i]),
			Variant: strings.TrimSpace(line[i+1:]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}

// batchOutput is a single batch result per §6: either a {"moves": ...}
// object holding the 64-array-of-arrays shape, or an {"error": "..."}
// object.
type batchOutput struct {
	Moves [][]int `json:"moves,omitempty"`
	Error string  `json:"error,omitempty"`
}

func runBatch(path string, tables *attacks.Tables, registry *variant.Registry, workers int) {
	queries, err := parseBatchFile(path)
	if err != nil {
		log.Errorf("failed to read batch file %q: %v", path, err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	results := batch.Run(context.Background(), queries, tables, registry, workers)

	out := make([]batchOutput, len(results))
	for i, r := range results {
		if r.Err != nil {
			out[i] = batchOutput{Error: r.Err.Error()}
			continue
		}
		moves := make([][]int, 64)
		for sq := 0; sq < 64; sq++ {
			moves[sq] = r.Moves[sq].Squares()
		}
		out[i] = batchOutput{Moves: moves}
	}

	enc := json.NewEncoder(os.Stdout)
	if err := enc.Encode(out); err != nil {
		log.Errorf("failed to encode batch output: %v", err)
		os.Exit(1)
	}
}
