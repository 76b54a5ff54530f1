package nthprime

// lucyCount implements the Lucy_Hedgehog recurrence: it returns π(x),
// the count of primes <= x, given base primes covering every prime
// <= floor(sqrt(x)).
//
// The pivot set W(x) = {1..r} ∪ {floor(x/k) : 1 <= k <= r}, r = floor(sqrt(x)),
// is built directly (no hash-set deduplication pass): walk k = 1..r
// emitting both k and floor(x/k); the two halves meet at r with at most
// one overlapping value, trimmed below.
func lucyCount(x uint64, basePrimes []uint32) uint64 {
	if x < 2 {
		return 0
	}
	if x == 2 {
		return 1
	}

	r := isqrt(x)

	// Build W in descending order. Large half: floor(x/k) for k=1..r,
	// which is itself descending as k increases. Small half: r..1.
	// large[last] == r == small[0] when x/r == r exactly is the only
	// possible overlap; drop the duplicate.
	large := make([]uint64, r)
	for k := uint64(1); k <= r; k++ {
		large[k-1] = x / k
	}
	small := make([]uint64, r)
	for v := uint64(1); v <= r; v++ {
		small[r-v] = v
	}
	if len(large) > 0 && len(small) > 0 && large[len(large)-1] == small[0] {
		small = small[1:]
	}

	w := make([]uint64, 0, len(large)+len(small))
	w = append(w, large...)
	w = append(w, small...)

	indexOf := make(map[uint64]int, len(w))
	for i, v := range w {
		indexOf[v] = i
	}

	s := make([]uint64, len(w))
	for i, v := range w {
		s[i] = v - 1
	}

	for _, p64 := range basePrimes {
		p := uint64(p64)
		if p*p > x {
			break
		}

		var prev uint64
		if idx, ok := indexOf[p-1]; ok {
			prev = s[idx]
		} else {
			prev = p - 2
		}

		for i := 0; i < len(w) && w[i] >= p*p; i++ {
			q := w[i] / p
			var sq uint64
			if idx, ok := indexOf[q]; ok {
				sq = s[idx]
			} else {
				sq = q - 1
			}
			s[i] -= sq - prev
		}
	}

	if idx, ok := indexOf[x]; ok {
		return s[idx]
	}
	// Callers only query x values included in W; this path exists for
	// defensive completeness and returns the count at the nearest pivot
	// below x.
	best := uint64(0)
	for _, v := range w {
		if v <= x && v > best {
			best = v
		}
	}
	return s[indexOf[best]]
}

// generateBasePrimesForLimit runs the odds-only sieve up to floor(sqrt(limit))
// plus headroom, returning base primes sufficient to sieve or count up to
// limit.
func generateBasePrimesForLimit(limit uint64) ([]uint32, error) {
	root := isqrt(limit)
	baseLimit := root + 1
	if baseLimit > maxOddsSieveLimit {
		return nil, &SieveLimitOverflowError{Limit: baseLimit}
	}
	return oddsPrimes(uint32(baseLimit))
}

// PrimeCount returns π(x), the number of primes <= x, using the
// Lucy_Hedgehog recurrence. It is the same recurrence the Locator uses
// internally to bracket the n-th prime, exposed as a standalone
// operation. Each call allocates and discards its own base primes and
// pivot-set arrays; nothing persists across calls.
func PrimeCount(x uint64) (uint64, error) {
	if x < 2 {
		return 0, nil
	}
	base, err := generateBasePrimesForLimit(x)
	if err != nil {
		return 0, err
	}
	return lucyCount(x, base), nil
}
