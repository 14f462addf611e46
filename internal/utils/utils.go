package utils

// IsPrime - Returns true if n has no divisor between 2 and n - 1.
// Note that 0 and 1 pass the test since there is nothing to divide by, a table of size 1 is still usable
// since the probing step then degrades to 1.
func IsPrime(n int64) bool {
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest number equal to or bigger than size that passes IsPrime
func NextPrime(size int64) int64 {
	candidate := size
	for !IsPrime(candidate) {
		candidate++
	}

	return candidate
}
