// Package uniuri draws uniformly distributed random symbols from a byte
// alphabet. The default helpers read from crypto/rand; Reader binds the
// sampler to any other byte stream so callers can inject a seeded source.
package uniuri
