// Package main provides the entry point for flaggen, a command line tool
// that generates random CTF style flags such as CTF{a1b2c3d4}. Tokens are
// sampled from a named charset, rendered into a template and optionally
// deduplicated within a bounded number of attempts. Results are printed or
// written to a file as text, JSON, YAML, CSV or argon2id hashed lines.
package main
