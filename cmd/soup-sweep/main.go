package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"infinite-life/internal/patterns"
	"infinite-life/internal/sweep"
)

func main() {
	steps := flag.Int("steps", 2000, "maximum generations per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	first := flag.Int64("seed", 1, "first seed")
	count := flag.Int("count", 64, "number of consecutive seeds to run")
	width := flag.Int("w", 32, "soup width")
	height := flag.Int("h", 32, "soup height")
	density := flag.Float64("density", 0.35, "initial live fraction")
	top := flag.Int("top", 10, "results to print")
	flag.Parse()

	if *count <= 0 || *steps <= 0 {
		log.Fatalf("count and steps must be positive (count=%d steps=%d)", *count, *steps)
	}
	if *density < 0 || *density > 1 {
		log.Fatalf("density must be within [0, 1], got %g", *density)
	}

	base := patterns.DefaultSoupConfig()
	base.Width = *width
	base.Height = *height
	base.Density = *density

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *first + int64(i)
	}

	fmt.Printf("Sweeping %d soups of %dx%d at density %.2f (%d workers, %d steps)\n",
		len(seeds), base.Width, base.Height, base.Density, *workers, *steps)

	start := time.Now()
	results := sweep.Sweep(base, seeds, *steps, *workers)
	elapsed := time.Since(start)

	settled := 0
	for _, r := range results {
		if r.SettledAt >= 0 {
			settled++
		}
	}

	fmt.Printf("\nTop %d by peak population (elapsed %s, %d/%d settled):\n", min(*top, len(results)), elapsed.Round(time.Millisecond), settled, len(results))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		state := "still running"
		if r.SettledAt >= 0 {
			state = fmt.Sprintf("settled at %d (period %d)", r.SettledAt, r.Period)
		}
		fmt.Printf("%2d) seed=%d peak=%d@%d final=%d initial=%d extent=%dx%d %s\n",
			i+1, r.Seed, r.PeakPop, r.PeakGeneration, r.FinalPop, r.InitialPop, r.Width, r.Height, state)
	}
}
