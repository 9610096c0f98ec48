package mathutil

// Primes returns the first amount prime numbers in ascending order.
// Returns nil for amount < 1.
func Primes(amount int) []int {
	if amount < 1 {
		return nil
	}

	primes := make([]int, 0, amount)
	primes = append(primes, 2)

	for candidate := 3; len(primes) < amount; candidate++ {
		if isPrimeAgainst(candidate, primes) {
			primes = append(primes, candidate)
		}
	}

	return primes
}

// PrimesUpTo returns every prime not greater than limit, ascending.
// Returns nil for limit < 2.
func PrimesUpTo(limit int) []int {
	if limit < 2 {
		return nil
	}

	composite := make([]bool, limit+1)
	primes := make([]int, 0)

	for n := 2; n <= limit; n++ {
		if composite[n] {
			continue
		}

		primes = append(primes, n)

		for multiple := n * n; multiple <= limit && multiple > 0; multiple += n {
			composite[multiple] = true
		}
	}

	return primes
}

// isPrimeAgainst reports whether candidate has no divisor among the
// primes found so far. The list covers every prime below candidate, so
// divisibility by any of them is a complete test.
func isPrimeAgainst(candidate int, primes []int) bool {
	for _, p := range primes {
		if p*p > candidate {
			break
		}

		if candidate%p == 0 {
			return false
		}
	}

	return true
}
