package engine

import "errors"

// ErrNilDocument is returned by Init when no document is supplied.
var ErrNilDocument = errors.New("engine: document is nil")
