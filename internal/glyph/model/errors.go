package model

import "errors"

// ErrNotFound is returned by stores when a lookup by key matches nothing.
var ErrNotFound = errors.New("not found")
