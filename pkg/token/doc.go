// Package token generates opaque session keys from a cryptographically
// secure random source.
//
// Keys are drawn uniformly from a 62-symbol alphanumeric alphabet. The
// default length of 48 characters carries roughly 285 bits of entropy, far
// beyond what brute-forcing a live session would require.
//
// # Usage
//
//	key := token.New(token.DefaultLength)
//
// For deterministic output in tests, construct a Generator around a seeded
// reader:
//
//	gen := token.NewGenerator(mathrand.New(mathrand.NewSource(1)))
//	key := gen.Generate(48)
//
// The package has no error surface: a failing entropy source is a
// process-level fault and panics, consistent with failing fast on security
// misconfiguration rather than degrading silently.
package token
