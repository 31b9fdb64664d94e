package ptree

import (
	"fmt"

	"github.com/npillmayer/arbor/order"
	"github.com/npillmayer/arbor/tree"
)

// Config configures a predicated tree.
type Config[T any] struct {
	// Left is the in-order predicate. If nil, the natural ordering of T is
	// used; construction fails for types without one.
	Left order.LessFunc[T]
	// Tall is the heap predicate. Nil (or order.Indifferent) configures a
	// plain binary search tree.
	Tall order.LessFunc[T]
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Left == nil {
		if less, err := order.Default[T](); err == nil {
			tracer().Debugf("ptree config: using natural ordering for in-order")
			cfg.Left = less
		}
	}
	if order.IsIndifferent(cfg.Tall) {
		cfg.Tall = nil
	}
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Left == nil {
		_, err := order.Default[T]()
		return fmt.Errorf("%w: in-order predicate is required: %w", tree.ErrInvalidConfig, err)
	}
	return nil
}

// Comparator returns the comparator made up from the configured predicates.
func (cfg Config[T]) Comparator() order.Comparator[T] {
	return order.NewComparator(cfg.Tall, cfg.Left)
}
