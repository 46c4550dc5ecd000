package repo

import "errors"

// ErrNotFound is returned when a lookup matches no document, including
// syntactically invalid ids (they cannot match anything).
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when registering an email that already exists.
var ErrDuplicateEmail = errors.New("email already registered")
