// Package testutil provides testing utilities for the vectors module.
//
// This package is intended for use in tests only. It provides a seeded,
// goroutine-safe RNG that generates random Vectors for property tests.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(3)             // coordinates uniform in [-10, 10)
//	vs := rng.Vectors(8, 3)
//	u := rng.NonZeroVector(2)
package testutil
