package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a row is absent, so that
// callers can map lookup failures with errors.Is instead of matching
// message strings. Messages still read "product with ID xyz not found".
var ErrNotFound = errors.New("not found")
