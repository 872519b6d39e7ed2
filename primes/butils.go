package main

import (
	"fmt"
	"io"
	"iter"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// BenchmarkResult averaged timings for one upper bound. Index i of every
// slice belongs to the same trial size.
type BenchmarkResult struct {
	Sizes        []int
	SimpleTotals []time.Duration
	SieveTotals  []time.Duration
}

// PrimeCounts primes found by each strategy over a whole run.
type PrimeCounts struct {
	Simple uint64
	Sieve  uint64
}

// genSizes ascending trial sizes from minSize to maxSize. A zero minSize is
// bumped by one step so no trial runs on an empty sample.
func genSizes(minSize, maxSize, step int) iter.Seq[int] {
	start := minSize
	if start == 0 {
		start += step
	}
	return func(yield func(int) bool) {
		for size := start; size <= maxSize; size += step {
			if !yield(size) {
				return
			}
		}
	}
}

// generateSample size values drawn uniformly from [0, n]
func generateSample(rng *rand.Rand, size int, n uint32) []uint32 {
	sample := make([]uint32, size)
	for i := range sample {
		sample[i] = uint32(rng.Uint64N(uint64(n) + 1))
	}
	return sample
}

// runBenchmark times trial division against a freshly built sieve for every
// size in sizes, averaging over times repetitions. Both strategies must
// agree on the total number of primes seen, otherwise an assertion failure
// is returned.
func runBenchmark(w io.Writer, sizes iter.Seq[int], rng *rand.Rand, n uint32, times int) (BenchmarkResult, PrimeCounts, error) {
	return compareStrategies(w, sizes, rng, n, times, isPrime, genSieve)
}

// compareStrategies runBenchmark with the two primality strategies supplied
// by the caller.
func compareStrategies(
	w io.Writer,
	sizes iter.Seq[int],
	rng *rand.Rand,
	n uint32,
	times int,
	check func(uint32) bool,
	buildSieve func(uint32) []bool,
) (BenchmarkResult, PrimeCounts, error) {
	var result BenchmarkResult
	var counts PrimeCounts

	if times <= 0 {
		return result, counts, errors.Newf("repeat count must be positive, got %d", times)
	}

	for size := range sizes {
		var simpleTotal, sieveTotal time.Duration

		for range times {
			haystack := generateSample(rng, size, n)

			simpleStart := time.Now()
			for _, value := range haystack {
				if check(value) {
					counts.Simple++
				}
			}
			simpleTotal += time.Since(simpleStart)

			sieveStart := time.Now()
			sieve := buildSieve(n)
			for _, value := range haystack {
				if sieve[value] {
					counts.Sieve++
				}
			}
			sieveTotal += time.Since(sieveStart)
		}

		simpleTotal /= time.Duration(times)
		sieveTotal /= time.Duration(times)
		fmt.Fprintf(w, "size = %d, simple total = %d, sieve total = %d\n",
			size, simpleTotal.Nanoseconds(), sieveTotal.Nanoseconds())

		result.Sizes = append(result.Sizes, size)
		result.SimpleTotals = append(result.SimpleTotals, simpleTotal)
		result.SieveTotals = append(result.SieveTotals, sieveTotal)
	}

	fmt.Fprintf(w, "Simple: %d, Sieve: %d\n", counts.Simple, counts.Sieve)
	if counts.Simple != counts.Sieve {
		return result, counts, errors.AssertionFailedf(
			"prime counts differ for upper bound %d: simple %d, sieve %d",
			n, counts.Simple, counts.Sieve)
	}
	return result, counts, nil
}

// saveResults prints the three result lines to w and writes each one to
// its own file, replacing any previous content.
func saveResults(w io.Writer, result BenchmarkResult, sizesPath, simplePath, sievePath string) error {
	sizesLine := joinLine(result.Sizes, strconv.Itoa)
	simpleLine := joinLine(result.SimpleTotals, formatNanos)
	sieveLine := joinLine(result.SieveTotals, formatNanos)

	for _, line := range []string{sizesLine, simpleLine, sieveLine} {
		if _, err := io.WriteString(w, line); err != nil {
			return errors.Wrap(err, "writing results")
		}
	}

	files := []struct {
		path string
		line string
	}{
		{sizesPath, sizesLine},
		{simplePath, simpleLine},
		{sievePath, sieveLine},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.line), 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", f.path)
		}
	}
	return nil
}

// joinLine space separated values with a trailing newline
func joinLine[T any](values []T, format func(T) string) string {
	var builder strings.Builder
	for i, v := range values {
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(format(v))
	}
	builder.WriteByte('\n')
	return builder.String()
}

func formatNanos(d time.Duration) string {
	return strconv.FormatInt(d.Nanoseconds(), 10)
}
