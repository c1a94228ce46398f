package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrInvariant signals a broken structural invariant detected by Check.
	ErrInvariant = errors.New("rbtree: broken tree invariant")
)
