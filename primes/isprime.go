package main

import "math"

// isPrime trial division up to floor(sqrt(num))
func isPrime(num uint32) bool {
	if num < 2 {
		return false
	}
	limit := uint32(math.Sqrt(float64(num)))
	for i := uint32(2); i <= limit; i++ {
		if num%i == 0 {
			return false
		}
	}
	return true
}
