//go:build !nthprime_debug

package nthprime

// debugAssertionsEnabled gates the segment sieve's precondition
// assertion. Build with the nthprime_debug tag to enable it; off by
// default to keep the core's hot path allocation- and branch-free.
const debugAssertionsEnabled = false
