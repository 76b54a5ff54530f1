package nthprime

import "fmt"

// InvalidArgumentError reports a malformed call: a negative index or a
// nil options bundle.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("nthprime: invalid argument: %s", e.Reason)
}

// SieveLimitOverflowError reports that the regular path's working upper
// bound grew past the 32-bit odds-only sieve cap.
type SieveLimitOverflowError struct {
	Limit uint64
}

func (e *SieveLimitOverflowError) Error() string {
	return fmt.Sprintf("nthprime: sieve limit overflow: requested limit %d exceeds the 32-bit odds sieve cap; retry with method=PrimeCounting", e.Limit)
}

// SearchExhaustedError reports that count-and-zoom's expanded local
// window did not contain the target prime. It indicates a Bounds or
// LucyCounter correctness defect, not a transient condition.
type SearchExhaustedError struct {
	N        uint64
	Estimate uint64
	Start    uint64
	End      uint64
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("nthprime: search exhausted: n=%d estimate=%d window=[%d,%d]", e.N, e.Estimate, e.Start, e.End)
}

// UnknownMethodError reports an opts.Method value outside the four
// recognized variants.
type UnknownMethodError struct {
	Method Method
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("nthprime: unknown method: %v", e.Method)
}
