/*
Package formatter renders red-black trees and their traversals for output
on a console.

The rbtree package itself never prints. Traversals are sequences of
(key, color) pairs, and this package is one of their consumers: it writes
them as colored tokens, wrapping lines to the width of the terminal, or
draws a tree sideways with its right subtree on top.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
