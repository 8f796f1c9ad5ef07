package rbtree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Stats is a snapshot of a tree's shape and of its operation counters.
type Stats struct {
	Len                int    // number of keys
	Height             int    // number of nodes on the longest root-to-leaf path
	Slots              int    // arena slots in use or free, including the sentinel
	Free               int    // released slots awaiting reuse
	Inserts            uint64 // successful insertions
	Deletes            uint64 // successful deletions
	Misses             uint64 // deletions of absent keys
	Rotations          uint64 // rotations over the lifetime of the tree
	LastRotations      int    // rotations performed by the latest Insert or Delete
	MaxInsertRotations int    // most rotations a single Insert needed
	MaxDeleteRotations int    // most rotations a single Delete needed
}

func (s Stats) String() string {
	return fmt.Sprintf("len=%d height=%d slots=%d/%d ins=%d del=%d miss=%d rot=%d (max %d/%d)",
		s.Len, s.Height, s.Slots-s.Free, s.Slots, s.Inserts, s.Deletes, s.Misses,
		s.Rotations, s.MaxInsertRotations, s.MaxDeleteRotations)
}

// Stats returns the current statistics of t. Computing the height is O(n).
func (t *Tree[K]) Stats() Stats {
	return Stats{
		Len:                t.size,
		Height:             t.Height(),
		Slots:              len(t.nodes.slots),
		Free:               len(t.nodes.free),
		Inserts:            t.stats.inserts,
		Deletes:            t.stats.deletes,
		Misses:             t.stats.misses,
		Rotations:          t.stats.rotations,
		LastRotations:      t.stats.current,
		MaxInsertRotations: t.stats.maxInsert,
		MaxDeleteRotations: t.stats.maxDelete,
	}
}

type counters struct {
	inserts, deletes, misses uint64
	rotations                uint64
	current                  int // rotations of the running operation
	maxInsert, maxDelete     int
}

func (c *counters) begin() {
	c.current = 0
}

func (c *counters) rotated() {
	c.rotations++
	c.current++
}

func (c *counters) inserted() {
	c.inserts++
	c.maxInsert = max(c.maxInsert, c.current)
}

func (c *counters) deleted() {
	c.deletes++
	c.maxDelete = max(c.maxDelete, c.current)
}

func (c *counters) missed() {
	c.misses++
}
