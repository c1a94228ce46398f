package rbtree

import "fmt"

// Config configures a red-black tree over keys K and values V.
type Config[K, V any] struct {
	// Less is the strict less-than predicate establishing key order.
	//
	// For keys a, b, c it must be irreflexive, asymmetric and transitive:
	//
	//	Less(a, a) == false
	//	Less(a, b) => !Less(b, a)
	//	Less(a, b) && Less(b, c) => Less(a, c)
	//
	// A predicate violating strictness corrupts ordering and uniqueness
	// without a detectable error.
	Less func(a, b K) bool

	// ReleaseKey, if non-nil, is called once for the key of every node the
	// tree erases (single erase, range erase, clear). Trees storing keys
	// that reference external resources use it as a destructor hook.
	ReleaseKey func(K)

	// ReleaseValue is the value counterpart of ReleaseKey.
	ReleaseValue func(V)
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	return cfg
}

func (cfg Config[K, V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Less == nil {
		return fmt.Errorf("%w: less predicate is required", ErrInvalidConfig)
	}
	return nil
}
