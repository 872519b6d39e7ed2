package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenSieveSmallBound(t *testing.T) {
	sieve := genSieve(30)
	require.Len(t, sieve, 31)

	var primes []int
	for i, prime := range sieve {
		if prime {
			primes = append(primes, i)
		}
	}
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes)
}

func TestGenSieveZeroAndOne(t *testing.T) {
	assert.Equal(t, []bool{false}, genSieve(0))
	assert.Equal(t, []bool{false, false}, genSieve(1))

	for _, n := range []uint32{2, 3, 10, 1000} {
		sieve := genSieve(n)
		assert.False(t, sieve[0], "n=%d", n)
		assert.False(t, sieve[1], "n=%d", n)
	}
}

func TestGenSieveMatchesTrialDivision(t *testing.T) {
	for _, n := range []uint32{2, 3, 4, 49, 50, 121, 1000, 10_007, 100_000} {
		sieve := genSieve(n)
		require.Len(t, sieve, int(n)+1)
		for k := uint32(0); k <= n; k++ {
			if !assert.Equal(t, isPrime(k), sieve[k], "n=%d k=%d", n, k) {
				return
			}
		}
	}
}

func TestGenSievePrimeCount(t *testing.T) {
	count := 0
	for _, prime := range genSieve(1_000_000) {
		if prime {
			count++
		}
	}
	assert.Equal(t, 78_498, count)
}

func BenchmarkGenSieve(b *testing.B) {
	for i := 0; i < b.N; i++ {
		genSieve(1_000_000)
	}
}
