package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// DefaultCapacity is the number of node slots a tree reserves on its first
// insertion when no capacity is configured.
const DefaultCapacity = 16

// Config configures a red-black tree.
//
// The zero value is a valid configuration.
type Config struct {
	// Capacity pre-sizes the node arena (number of keys). Zero selects
	// DefaultCapacity.
	Capacity int
}

func (cfg Config) normalized() Config {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, cfg.Capacity)
	}
	if uint64(cfg.Capacity) >= maxSlots {
		return fmt.Errorf("%w: capacity %d exceeds handle range", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}

// New creates an empty tree with arena capacity as configured.
//
// Clients not needing a configuration may as well start with
//
//	var tree rbtree.Tree[int]
//
// which is a valid empty tree.
func New[K cmp.Ordered](cfg Config) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K]{}
	t.nodes.init(cfg.Capacity)
	T().Debugf("rbtree: new tree with capacity %d", cfg.Capacity)
	return t, nil
}
