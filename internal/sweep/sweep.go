// Package sweep runs many independent soups headlessly and summarises how
// each one evolved. Every board is owned by a single worker goroutine.
package sweep

import (
	"cmp"
	"encoding/binary"
	"hash/fnv"
	"slices"
	"sort"
	"sync"

	"infinite-life/internal/patterns"
	"infinite-life/pkg/life"
)

// maxPeriod is the longest oscillation the settle detector recognises.
const maxPeriod = 3

// Result summarises one soup run.
type Result struct {
	Seed            int64
	Steps           int
	InitialPop      int
	FinalPop        int
	PeakPop         int
	PeakGeneration  int
	SettledAt       int // generation the board first repeated, or -1
	Period          int // repeat period once settled, 0 if never settled
	Width, Height   int64
	ReachedNegative bool
}

// Run paints a soup from cfg and advances it up to steps generations. It
// stops early once the board repeats a state from at most three
// generations earlier.
func Run(cfg patterns.SoupConfig, steps int) Result {
	b := life.New()
	patterns.Soup(b, cfg)

	res := Result{Seed: cfg.Seed, InitialPop: b.Len(), PeakPop: b.Len(), SettledAt: -1}
	history := []snapshot{takeSnapshot(b)}
	for gen := 1; gen <= steps; gen++ {
		b.Step()
		res.Steps = gen
		if pop := b.Len(); pop > res.PeakPop {
			res.PeakPop = pop
			res.PeakGeneration = gen
		}
		if minC, _, ok := b.Bounds(); ok && (minC.X < 0 || minC.Y < 0) {
			res.ReachedNegative = true
		}

		cur := takeSnapshot(b)
		if p := repeatPeriod(history, cur); p > 0 {
			res.SettledAt = gen - p
			res.Period = p
			break
		}
		history = append(history, cur)
		if len(history) > maxPeriod {
			history = history[1:]
		}
	}

	res.FinalPop = b.Len()
	if minC, maxC, ok := b.Bounds(); ok {
		res.Width = maxC.X - minC.X + 1
		res.Height = maxC.Y - minC.Y + 1
	}
	return res
}

// snapshot is a board state in canonical order plus its hash. The hash
// rules out most candidates cheaply; equal hashes are confirmed on cells.
type snapshot struct {
	fp    uint64
	cells []life.Cell
}

func (s snapshot) equal(o snapshot) bool {
	return s.fp == o.fp && slices.Equal(s.cells, o.cells)
}

func repeatPeriod(history []snapshot, cur snapshot) int {
	for p := 1; p <= len(history); p++ {
		if history[len(history)-p].equal(cur) {
			return p
		}
	}
	return 0
}

func takeSnapshot(b *life.Board) snapshot {
	cells := slices.Collect(b.LiveCells())
	slices.SortFunc(cells, func(a, b life.Cell) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	h := fnv.New64a()
	var buf [16]byte
	for _, c := range cells {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return snapshot{fp: h.Sum64(), cells: cells}
}

// Sweep runs one soup per seed on the given number of workers and returns
// the results ordered by peak population, largest first.
func Sweep(base patterns.SoupConfig, seeds []int64, steps, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := base
				cfg.Seed = seed
				results <- Run(cfg, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].PeakPop != all[j].PeakPop {
			return all[i].PeakPop > all[j].PeakPop
		}
		return all[i].Seed < all[j].Seed
	})
	return all
}
