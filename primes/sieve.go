package main

import "math"

// genSieve marks every prime in 0..n; sieve[i] == true iff i is prime.
func genSieve(n uint32) []bool {
	sieve := make([]bool, int(n)+1)
	for i := range sieve {
		sieve[i] = true
	}
	sieve[0] = false
	if n >= 1 {
		sieve[1] = false
	}

	limit := int(math.Sqrt(float64(n)))
	bound := int(n)
	for i := 2; i <= limit; i++ {
		if !sieve[i] {
			continue
		}
		for j := i * i; j <= bound; j += i {
			sieve[j] = false
		}
	}
	return sieve
}
