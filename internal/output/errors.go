package output

import "errors"

// ErrUnknownFormat is returned by ParseFormat for names outside Formats().
var ErrUnknownFormat = errors.New("unknown output format")
