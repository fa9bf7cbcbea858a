// Package generator produces batches of flags.
//
// A batch is built by sampling a token, rendering it into the template and,
// if uniqueness is requested, discarding flags that were already produced.
// Every sample counts against an attempt budget of ten times the requested
// count. A batch that cannot be filled within the budget fails as a whole
// with ErrInsufficientUniqueFlags; partial batches are never returned.
package generator
