// Package testutil provides testing utilities shared across this module's
// test files.
//
// This package is intended for use in tests and benchmarks only.
//
// # Key Generation
//
//	rng := testutil.NewRNG(4711)
//	keys := rng.Keys(100, 1<<24)        // 100 distinct uniform keys
//	skewed := rng.SkewedKeys(100, 1<<24, 1.5) // heavy-tail clustered keys
package testutil
