package nthprime

// Method selects which of the three locator strategies resolves a call.
// Auto lets the Locator pick based on n and the configured thresholds.
type Method int

const (
	// Auto dispatches to Regular, Segmented, or PrimeCounting based on
	// n and opts.RegularThreshold / opts.PrimeCountingThreshold.
	Auto Method = iota
	// Regular runs a single odds-only sieve sized to cover the n-th prime.
	Regular
	// Segmented iterates the odds-only sieve over growing windows.
	Segmented
	// PrimeCounting brackets the target with the Lucy_Hedgehog recurrence
	// before resolving it locally with a segmented sieve.
	PrimeCounting
)

func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Regular:
		return "regular"
	case Segmented:
		return "segmented"
	case PrimeCounting:
		return "prime-counting"
	default:
		return "unknown"
	}
}

// Logger receives purely advisory diagnostic messages. Implementations
// must be safe for the caller's own concurrency needs; the core never
// stores a Logger across calls and invokes it synchronously from the
// calling goroutine.
type Logger interface {
	Logf(format string, args ...any)
}

// LoggerFunc adapts a plain function to the Logger interface.
type LoggerFunc func(format string, args ...any)

// Logf implements Logger.
func (f LoggerFunc) Logf(format string, args ...any) {
	if f != nil {
		f(format, args...)
	}
}

// Default option values.
const (
	DefaultSegmentSize            = 1_000_000
	DefaultRegularThreshold       = 1_000_000
	DefaultPrimeCountingThreshold = 10_000_000
)

// Options configures a single NthPrime call. Options are
// read-only for the duration of a call; the core never mutates them.
type Options struct {
	// Method forces a strategy; Auto (the zero value) lets the Locator
	// choose based on n and the thresholds below.
	Method Method

	// SegmentSize is the number of integers swept per segmented window.
	// Must be positive; zero or negative falls back to the default.
	SegmentSize int

	// RegularThreshold is the n above which Auto prefers Segmented over
	// Regular.
	RegularThreshold uint64

	// PrimeCountingThreshold is the n above which Auto prefers
	// PrimeCounting over Segmented.
	PrimeCountingThreshold uint64

	// Logger receives advisory messages. Nil silently drops them.
	Logger Logger
}

// DefaultOptions returns the Options bundle NthPrime(n) uses when called
// without an explicit opts argument.
func DefaultOptions() *Options {
	return &Options{
		Method:                 Auto,
		SegmentSize:            DefaultSegmentSize,
		RegularThreshold:       DefaultRegularThreshold,
		PrimeCountingThreshold: DefaultPrimeCountingThreshold,
	}
}

// resolved returns a copy of opts with zero-valued fields replaced by
// defaults, never mutating the caller's Options.
func (o *Options) resolved() *Options {
	if o == nil {
		d := DefaultOptions()
		return d
	}
	r := *o
	if r.SegmentSize <= 0 {
		r.SegmentSize = DefaultSegmentSize
	}
	if r.RegularThreshold == 0 {
		r.RegularThreshold = DefaultRegularThreshold
	}
	if r.PrimeCountingThreshold == 0 {
		r.PrimeCountingThreshold = DefaultPrimeCountingThreshold
	}
	return &r
}

func (o *Options) logf(format string, args ...any) {
	if o != nil && o.Logger != nil {
		o.Logger.Logf(format, args...)
	}
}
