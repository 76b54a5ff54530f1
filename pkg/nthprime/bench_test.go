package nthprime

import "testing"

func benchmarkNthPrime(b *testing.B, n int64, method Method) {
	opts := &Options{Method: method}
	for i := 0; i < b.N; i++ {
		if _, err := NthPrime(n, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNthPrimeRegular1000(b *testing.B)   { benchmarkNthPrime(b, 1000, Regular) }
func BenchmarkNthPrimeSegmented1000(b *testing.B) { benchmarkNthPrime(b, 1000, Segmented) }

func BenchmarkNthPrimeSegmented100000(b *testing.B) { benchmarkNthPrime(b, 100000, Segmented) }

func BenchmarkNthPrimePrimeCounting100000(b *testing.B) {
	benchmarkNthPrime(b, 100000, PrimeCounting)
}

func BenchmarkOddsPrimes1000000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := oddsPrimes(1000000); err != nil {
			b.Fatal(err)
		}
	}
}
