package keymint

import "errors"

// ErrNotImplemented signals functionality a host has declared but not
// yet built. Detect it with errors.Is.
var ErrNotImplemented = errors.New("keymint: not implemented")
