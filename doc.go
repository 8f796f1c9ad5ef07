/*
Package rbtree implements a red-black tree, a self-balancing binary search tree
for keys with a total order.

Red-Black Trees

A red-black tree keeps its height within 2·log₂(N+1) for N keys by coloring
every node red or black and maintaining a handful of invariants:

1. The root is black.

2. The sentinel, standing in for every absent child and for the root's
parent, is black.

3. No red node has a red child.

4. Every path from a node down to a sentinel contains the same number of
black nodes.

Insertion and deletion restore these invariants with recolorings and at most
2 (insert) or 3 (delete) rotations, giving O(log N) worst case bounds for
insertion, deletion and lookup. Ordered iteration and range queries come
for free from the binary search tree layout, which makes the tree a
building block for indexes, schedulers and memtables wherever a hash map
cannot provide sorted access.

Representation

Nodes live in an arena owned by the tree and are addressed by NodeID handles.
Slot 0 of the arena is the sentinel NIL. Parent, left and right links are
handles, so the cyclic parent/child graph never needs owning pointers, and
rotations stay O(1).

Duplicate keys are accepted. They are placed to the right of equal keys on
insertion; deleting a duplicate removes one of the equal occurrences.

A tree is not safe for concurrent use. Clients have to serialize access to
a tree instance, including iteration, when mutating it.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the rbtree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged when a tree configuration cannot be honoured.
const ErrInvalidConfig = TreeError("rbtree: invalid configuration")

// ErrInvariantViolated is wrapped by every error returned from Tree.Check.
const ErrInvariantViolated = TreeError("rbtree: invariant violated")

// assert panics if condition does not hold. It guards preconditions whose
// violation is a programming error, never a user-recoverable condition.
func assert(condition bool, msg string) {
	if !condition {
		panic("rbtree: " + msg)
	}
}
