// Package batch implements spec component O: running many independent
// FEN/variant queries concurrently, bounded to a fixed worker count. It
// is grounded on the teacher's use of golang.org/x/sync/semaphore.Weighted
// in internal/search/search.go to cap the number of simultaneously active
// goroutines; here the semaphore bounds how many Query values are being
// parsed and dispatched at once.
//
// The "no multi-threaded generation" Non-goal of §2 scopes a single
// query's move generation to one goroutine; it says nothing about
// running independent queries in parallel, which is what this package
// does. Each Query gets its own Position and its own movegen.Generate
// call — no state is shared across goroutines except the read-only
// *attacks.Tables and *variant.Registry.
package batch

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/kopptools/variantmove/internal/attacks"
	"github.com/kopptools/variantmove/internal/board"
	"github.com/kopptools/variantmove/internal/logging"
	"github.com/kopptools/variantmove/internal/movegen"
	"github.com/kopptools/variantmove/internal/variant"
)

var log = logging.GetLog("batch")

// Query is one unit of batch work: a FEN string to parse against a named
// variant.
type Query struct {
	Fen     string
	Variant string
}

// Result is a single Query's outcome. Err is non-nil exactly when the
// variant name was unknown, the FEN failed to parse into a usable
// position, or ctx was done before the query could start; Moves is the
// zero value in that case.
type Result struct {
	Query Query
	Moves [64]board.Bitboard
	Err   error
}

// Run evaluates every query in queries, using at most workers goroutines
// concurrently, and returns results in the same order as queries (P9):
// result[i] always corresponds to queries[i], regardless of which
// goroutine finished first.
func Run(ctx context.Context, queries []Query, tables *attacks.Tables, registry *variant.Registry, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(queries))
	sem := semaphore.NewWeighted(int64(workers))
	done := make(chan int, len(queries))

	for i, q := range queries {
		i, q := i, q
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result{Query: q, Err: err}
			done <- i
			continue
		}
		go func() {
			defer sem.Release(1)
			results[i] = evaluate(q, tables, registry)
			done <- i
		}()
	}

	for range queries {
		<-done
	}
	return results
}

func evaluate(q Query, tables *attacks.Tables, registry *variant.Registry) Result {
	v, err := registry.Get(q.Variant)
	if err != nil {
		log.Warningf("batch query %+v: %v", q, err)
		return Result{Query: q, Err: err}
	}

	pos, err := board.Parse(q.Fen)
	if err != nil {
		log.Warningf("batch query %+v: %v", q, err)
		return Result{Query: q, Err: err}
	}

	moves := movegen.Generate(pos, v, tables)
	return Result{Query: q, Moves: moves}
}
