// Package verify sweeps a whole board checking the geometry's contracts:
// CommonNode is symmetric and returns a shared endpoint, an edge is never
// adjacent to itself, disjoint edges are not adjacent, coordinates
// round-trip and incident edges touch their node.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/hexboard/internal/board"
	"github.com/lox/hexboard/internal/coord"
	"github.com/lox/hexboard/internal/randutil"
)

// Property names one checked contract.
type Property string

const (
	Symmetry   Property = "symmetry"
	Membership Property = "membership"
	Reflexive  Property = "reflexive"
	Disjoint   Property = "disjoint"
	RoundTrip  Property = "round-trip"
	Incidence  Property = "incidence"
)

// Properties lists every property in report order.
var Properties = []Property{Symmetry, Membership, Reflexive, Disjoint, RoundTrip, Incidence}

const defaultMaxFailures = 20

// Options configures a sweep. Zero values get defaults.
type Options struct {
	Workers     int
	Samples     int // random edge pairs for the disjointness check
	Seed        int64
	MaxFailures int
	Clock       quartz.Clock
	Logger      *log.Logger
}

// Failure is one violated property.
type Failure struct {
	Property Property
	A, B     coord.Coord
	Detail   string
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %s %s: %s", f.Property, f.A, f.B, f.Detail)
}

// Report is the outcome of a sweep.
type Report struct {
	Extent   board.Extent
	Checks   map[Property]int
	Failures []Failure
	Dropped  int // failures beyond MaxFailures
	Elapsed  time.Duration
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0 && r.Dropped == 0
}

// Total returns the number of checks run.
func (r *Report) Total() int {
	n := 0
	for _, c := range r.Checks {
		n += c
	}
	return n
}

type workerResult struct {
	checks   map[Property]int
	failures []Failure
	dropped  int
	limit    int
}

func newWorkerResult(limit int) *workerResult {
	return &workerResult{checks: make(map[Property]int), limit: limit}
}

func (w *workerResult) total() int {
	n := 0
	for _, c := range w.checks {
		n += c
	}
	return n
}

func (w *workerResult) pass(p Property) {
	w.checks[p]++
}

func (w *workerResult) fail(p Property, a, b coord.Coord, format string, args ...any) {
	w.checks[p]++
	if len(w.failures) >= w.limit {
		w.dropped++
		return
	}
	w.failures = append(w.failures, Failure{Property: p, A: a, B: b, Detail: fmt.Sprintf(format, args...)})
}

func (r *Report) merge(w *workerResult, limit int) {
	for p, n := range w.checks {
		r.Checks[p] += n
	}
	for _, f := range w.failures {
		if len(r.Failures) >= limit {
			r.Dropped++
			continue
		}
		r.Failures = append(r.Failures, f)
	}
	r.Dropped += w.dropped
}

// Run checks every property across the extent, fanning rows out over
// Options.Workers goroutines. It returns ctx's error if cancelled.
func Run(ctx context.Context, e board.Extent, opts Options) (*Report, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.MaxFailures < 1 {
		opts.MaxFailures = defaultMaxFailures
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	start := opts.Clock.Now()
	edges := e.Edges()

	logger.Debug("Starting sweep",
		"extent", e,
		"edges", len(edges),
		"workers", opts.Workers,
		"samples", opts.Samples,
		"seed", opts.Seed)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan *workerResult, opts.Workers)

	perWorker := opts.Samples / opts.Workers
	remainder := opts.Samples % opts.Workers

	for w := 0; w < opts.Workers; w++ {
		samples := perWorker
		if w < remainder {
			samples++
		}
		seed := randutil.Stream(opts.Seed, w)

		g.Go(func() error {
			res := newWorkerResult(opts.MaxFailures)
			for row := w; row <= e.MaxRow(); row += opts.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				checkRow(e, row, res)
			}
			checkSamples(edges, samples, randutil.New(seed), res)

			logger.Debug("Worker finished", "worker", w, "checks", res.total(), "failures", len(res.failures))

			select {
			case results <- res:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		defer close(results)
		_ = g.Wait()
	}()

	report := &Report{Extent: e, Checks: make(map[Property]int)}
	for res := range results {
		report.merge(res, opts.MaxFailures)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Elapsed = opts.Clock.Since(start)

	logger.Info("Sweep complete",
		"extent", e,
		"checks", report.Total(),
		"failures", len(report.Failures)+report.Dropped,
		"elapsed", report.Elapsed)

	return report, nil
}

// checkRow runs the per-coordinate checks for one row of the board.
func checkRow(e board.Extent, row int, res *workerResult) {
	for col := 0; col <= e.MaxCol(); col++ {
		c := coord.Encode(row, col)
		if r, cc := coord.Decode(c); r != row || cc != col {
			res.fail(RoundTrip, c, c, "decoded (%d, %d), want (%d, %d)", r, cc, row, col)
		} else {
			res.pass(RoundTrip)
		}

		if e.EdgeOnBoard(c) {
			checkReflexive(c, res)
		}
		if row%2 == 0 {
			checkNode(e, c, res)
		}
	}
}

func checkReflexive(edge coord.Coord, res *workerResult) {
	n, err := board.CommonNode(edge, edge)
	if !errors.Is(err, board.ErrNotAdjacent) {
		res.fail(Reflexive, edge, edge, "got node %s, err %v", n, err)
		return
	}
	res.pass(Reflexive)
}

// checkNode checks that the node's edges touch it and that every pair of
// them meets exactly there.
func checkNode(e board.Extent, node coord.Coord, res *workerResult) {
	edges, err := e.IncidentEdges(node)
	if err != nil {
		res.fail(Incidence, node, node, "%v", err)
		return
	}
	for _, edge := range edges {
		lo, hi := board.AdjacentNodes(edge)
		if lo != node && hi != node {
			res.fail(Incidence, node, edge, "edge ends are %s and %s", lo, hi)
		} else {
			res.pass(Incidence)
		}
	}

	for i, a := range edges {
		for _, b := range edges[i+1:] {
			checkPair(a, b, res)
		}
	}
}

// checkPair checks CommonNode on two edges expected to be adjacent.
func checkPair(a, b coord.Coord, res *workerResult) {
	ab, errAB := board.CommonNode(a, b)
	ba, errBA := board.CommonNode(b, a)
	if errAB != nil || errBA != nil || ab != ba {
		res.fail(Symmetry, a, b, "got %s (%v) and %s (%v)", ab, errAB, ba, errBA)
		return
	}
	res.pass(Symmetry)

	aLo, aHi := board.AdjacentNodes(a)
	bLo, bHi := board.AdjacentNodes(b)
	if (ab != aLo && ab != aHi) || (ab != bLo && ab != bHi) {
		res.fail(Membership, a, b, "node %s is not an end of both edges", ab)
		return
	}
	res.pass(Membership)
}

// checkSamples draws random edge pairs. Disjoint pairs must fail with
// ErrNotAdjacent; pairs that happen to touch go through checkPair.
func checkSamples(edges []coord.Coord, n int, rng *rand.Rand, res *workerResult) {
	if len(edges) == 0 {
		return
	}
	for i := 0; i < n; i++ {
		a := randutil.Pick(rng, edges)
		b := randutil.Pick(rng, edges)
		if a == b {
			checkReflexive(a, res)
			continue
		}
		if shareNode(a, b) {
			checkPair(a, b, res)
			continue
		}
		if _, err := board.CommonNode(a, b); !errors.Is(err, board.ErrNotAdjacent) {
			res.fail(Disjoint, a, b, "expected ErrNotAdjacent, got %v", err)
			continue
		}
		res.pass(Disjoint)
	}
}

func shareNode(a, b coord.Coord) bool {
	for _, x := range board.Endpoints(a) {
		for _, y := range board.Endpoints(b) {
			if x == y {
				return true
			}
		}
	}
	return false
}
