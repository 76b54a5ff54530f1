package nthprime

// NthPrime returns the 0-based n-th prime: n=0 yields 2. opts selects
// the locator strategy and its tuning knobs; a nil opts is rejected
// with InvalidArgumentError (use NthPrimeDefault for the defaults).
func NthPrime(n int64, opts *Options) (uint64, error) {
	if n < 0 {
		return 0, &InvalidArgumentError{Reason: "n must be >= 0"}
	}
	if opts == nil {
		return 0, &InvalidArgumentError{Reason: "opts must not be nil"}
	}
	resolved := opts.resolved()

	method := resolved.Method
	target := uint64(n) + 1

	switch method {
	case Auto:
		method = autoSelect(target, resolved)
	case Regular, Segmented, PrimeCounting:
		adviseIfOutOfRange(method, target, resolved)
	default:
		return 0, &UnknownMethodError{Method: method}
	}

	switch method {
	case Regular:
		return findRegular(uint64(n), resolved)
	case Segmented:
		return findSegmented(uint64(n), resolved)
	case PrimeCounting:
		return findCountAndZoom(uint64(n), resolved)
	default:
		return 0, &UnknownMethodError{Method: method}
	}
}

// NthPrimeDefault is the overload NthPrime(n) that substitutes
// DefaultOptions().
func NthPrimeDefault(n int64) (uint64, error) {
	return NthPrime(n, DefaultOptions())
}

func autoSelect(target uint64, opts *Options) Method {
	n := target - 1
	switch {
	case n > opts.PrimeCountingThreshold:
		return PrimeCounting
	case n > opts.RegularThreshold:
		return Segmented
	default:
		return Regular
	}
}

// adviseIfOutOfRange logs (never errors) when a caller forces a method
// clearly outside its comfort range. The forced choice is always
// honored.
func adviseIfOutOfRange(method Method, target uint64, opts *Options) {
	n := target - 1
	switch method {
	case Regular:
		if n > opts.RegularThreshold*10 {
			opts.logf("nthprime: method=Regular forced for n=%d, well above regular_threshold=%d; expect high memory use", n, opts.RegularThreshold)
		}
	case Segmented:
		if n > opts.PrimeCountingThreshold*10 {
			opts.logf("nthprime: method=Segmented forced for n=%d, well above prime_counting_threshold=%d; expect a long scan", n, opts.PrimeCountingThreshold)
		}
	case PrimeCounting:
		if n < opts.RegularThreshold {
			opts.logf("nthprime: method=PrimeCounting forced for small n=%d; Regular would be cheaper", n)
		}
	}
}

// findRegular implements the regular path: sieve once, sized from the
// Dusart upper bound, growing geometrically if the bound undershoots.
func findRegular(n uint64, opts *Options) (uint64, error) {
	k := n + 1
	ub := upperBound(k)
	if ub < 2 {
		ub = 2
	}
	if ub > maxOddsSieveLimit {
		ub = maxOddsSieveLimit
	}
	atCap := ub == maxOddsSieveLimit
	for {
		primes, err := oddsPrimes(uint32(ub))
		if err != nil {
			return 0, err
		}
		if uint64(len(primes)) > n {
			return uint64(primes[n]), nil
		}
		if atCap {
			return 0, &SieveLimitOverflowError{Limit: ub}
		}
		grown := uint64(float64(ub) * 1.25)
		if grown <= ub {
			grown = ub + 1
		}
		if grown >= maxOddsSieveLimit {
			grown = maxOddsSieveLimit
			atCap = true
		}
		ub = grown
	}
}

// findSegmented iterates growing [lo, hi] windows, regrowing base
// primes whenever a window needs a larger floor(sqrt(hi)).
func findSegmented(n uint64, opts *Options) (uint64, error) {
	seg := uint64(opts.SegmentSize)
	lo := uint64(2)
	produced := uint64(0)

	baseLimit := uint64(1024)
	base, err := oddsPrimes(uint32(baseLimit))
	if err != nil {
		return 0, err
	}

	for {
		hi := lo + seg - 1
		need := isqrt(max(uint64(4), hi))
		if baseLimit < need {
			grown := max(need+1024, baseLimit*2)
			if grown > maxOddsSieveLimit {
				grown = maxOddsSieveLimit
			}
			baseLimit = grown
			base, err = oddsPrimes(uint32(baseLimit))
			if err != nil {
				return 0, err
			}
		}

		for _, p := range segmentPrimes(lo, hi, base) {
			if produced == n {
				return p, nil
			}
			produced++
		}
		lo = hi + 1
	}
}

// findCountAndZoom implements the count-and-zoom path: binary search on
// LucyCounter to bracket p_n, then resolve it exactly with a local
// segmented sieve.
func findCountAndZoom(n uint64, opts *Options) (uint64, error) {
	target := n + 1
	lo := lowerBound(target)
	hi := upperBound(target)

	rootHi := isqrt(hi)
	base, err := oddsPrimes(uint32(rootHi) + 1)
	if err != nil {
		return 0, err
	}

	opts.logf("nthprime: count-and-zoom binary search starting, n=%d lo=%d hi=%d", n, lo, hi)

	for iter := 0; lo < hi && iter < 50; iter++ {
		mid := lo + (hi-lo)/2
		count := lucyCount(mid, base)
		if count < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	estimate := lo

	if p, ok, err := resolveLocalWindow(n, estimate, opts, 10_000, 10_000, 1_000_000, 4); ok || err != nil {
		return p, err
	}

	window := max(uint64(10_000_000), estimate/100)
	start := subClampU64(estimate, window/2)
	end := estimate + window
	opts.logf("nthprime: count-and-zoom expanding window, n=%d estimate=%d start=%d end=%d", n, estimate, start, end)

	if p, ok, err := resolveLocalWindowExplicit(n, estimate, start, end, opts); ok || err != nil {
		return p, err
	}

	return 0, &SearchExhaustedError{N: n, Estimate: estimate, Start: start, End: end}
}

// resolveLocalWindow computes [start, end] from the clamp geometry of
// the initial local-window search and delegates to
// resolveLocalWindowExplicit.
func resolveLocalWindow(n, estimate uint64, opts *Options, divisor, lo, hi, quarterDivisor uint64) (uint64, bool, error) {
	window := clampU64(estimate/divisor, lo, hi)
	start := subClampU64(estimate, window/quarterDivisor)
	end := estimate + window
	opts.logf("nthprime: count-and-zoom local window n=%d estimate=%d start=%d end=%d", n, estimate, start, end)
	return resolveLocalWindowExplicit(n, estimate, start, end, opts)
}

// resolveLocalWindowExplicit precounts primes below start, then sweeps
// [start, end] in sub-segments looking for the (n+1)-th prime overall.
func resolveLocalWindowExplicit(n, estimate, start, end uint64, opts *Options) (uint64, bool, error) {
	base, err := generateBasePrimesForLimit(end)
	if err != nil {
		return 0, false, err
	}

	var precount uint64
	if start > 2 {
		precount = lucyCount(start-1, base)
	}

	subSize := uint64(opts.SegmentSize)
	if subSize > 100_000 {
		subSize = 100_000
	}
	if subSize == 0 {
		subSize = 100_000
	}

	for lo := start; lo <= end; lo += subSize {
		hi := lo + subSize - 1
		if hi > end {
			hi = end
		}
		for _, p := range segmentPrimes(lo, hi, base) {
			if precount == n {
				opts.logf("nthprime: count-and-zoom resolved n=%d estimate=%d found=%d", n, estimate, p)
				return p, true, nil
			}
			precount++
		}
	}
	return 0, false, nil
}

func subClampU64(v, delta uint64) uint64 {
	if delta >= v {
		return 2
	}
	r := v - delta
	if r < 2 {
		return 2
	}
	return r
}
