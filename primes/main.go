package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	times   = 2_000 // repetitions per size
	minSize = 20
	maxSize = 4_000
	step    = 20

	upperBound1 uint32 = 1e3
	upperBound2 uint32 = 1e4
	upperBound3 uint32 = 1e5
	upperBound4 uint32 = 1e6

	outputDir = "r"
)

func main() {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	bounds := []uint32{upperBound1, upperBound2, upperBound3, upperBound4}

	log.Printf("primality benchmark: %d repetitions, sizes %d..%d step %d", times, minSize, maxSize, step)

	results := make([]BenchmarkResult, 0, len(bounds))
	for _, n := range bounds {
		start := time.Now()
		result, _, err := runBenchmark(os.Stdout, genSizes(minSize, maxSize, step), rng, n, times)
		if err != nil {
			log.Fatalf("upper bound %d: %+v", n, err)
		}
		results = append(results, result)

		var checked int64
		for _, size := range result.Sizes {
			checked += int64(size) * times
		}
		log.Printf("upper bound %s: %s samples checked per strategy in %v",
			humanize.Comma(int64(n)), humanize.Comma(checked), time.Since(start).Round(time.Millisecond))
	}

	for i, result := range results {
		sizesPath, simplePath, sievePath := resultPaths(outputDir, i)
		if err := saveResults(os.Stdout, result, sizesPath, simplePath, sievePath); err != nil {
			log.Fatalf("saving results: %+v", err)
		}
	}
}

// resultPaths output files for the i-th upper bound. Sizes do not depend on
// the upper bound, so only the first run keeps them.
func resultPaths(dir string, i int) (sizes, simple, sieve string) {
	sizes = os.DevNull
	if i == 0 {
		sizes = filepath.Join(dir, "sizes.txt")
	}
	simple = filepath.Join(dir, fmt.Sprintf("simple_totals%d.txt", i+1))
	sieve = filepath.Join(dir, fmt.Sprintf("sieve_totals%d.txt", i+1))
	return sizes, simple, sieve
}
