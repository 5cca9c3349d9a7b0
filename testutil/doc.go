// Package testutil provides testing utilities for stdvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe random source and helpers for
// generating element data with controlled shapes (random, sorted,
// reversed, few distinct values) for sort and search tests.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Int32s(1000, 100)   // values in [0, 100)
//	asc := testutil.Ascending(1000) // 0, 1, 2, ...
package testutil
