//go:build nthprime_debug

package nthprime

const debugAssertionsEnabled = true
