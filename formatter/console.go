package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"iter"

	"github.com/fatih/color"
	"github.com/npillmayer/rbtree"
)

// Console is a type for outputting tree traversals to a console with
// a fixed width font. Every node is written as a token
//
//	key(color)
//
// colored according to the node's color. Tokens are separated by a single
// space and lines are broken between tokens whenever the next token would
// exceed the configured line width.
//
type Console struct {
	colors  map[rbtree.Color]*color.Color
	ccnt    int // number of character positions already printed for line
	ctarget int // linelength in fixedwidth ‘en’s
}

// NewConsole creates a new console formatter.
//
// colors is a map from node colors to display colors. It may contain just a
// subset of the node colors; tokens without an entry are written uncolored.
// If colors is nil, a default palette is used.
//
func NewConsole(colors map[rbtree.Color]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[rbtree.Color]*color.Color {
	return map[rbtree.Color]*color.Color{
		rbtree.Red:   color.New(color.FgRed, color.Bold),
		rbtree.Black: color.New(color.FgHiBlue),
	}
}

// Token returns the textual form of a node, without any coloring.
func Token(key string, c rbtree.Color) string {
	return key + "(" + c.String() + ")"
}

// Sequence writes a traversal to w. If config is nil, a heuristic
// will create a config from the current terminal's properties.
//
// Writing stops at the first error returned by w.
func (c *Console) Sequence(w io.Writer, seq iter.Seq2[string, rbtree.Color], config *Config) error {
	config = config.normalized()
	c.ctarget, c.ccnt = config.LineWidth, 0
	var err error
	for key, col := range seq {
		token := Token(key, col)
		width := displayWidth(token, config.Context)
		if c.ccnt > 0 {
			sep := " "
			if c.ctarget > 0 && c.ccnt+1+width > c.ctarget {
				sep = "\n"
				c.ccnt = 0
			} else {
				c.ccnt++
			}
			if _, err = io.WriteString(w, sep); err != nil {
				return err
			}
		}
		if err = c.write(w, token, col); err != nil {
			return err
		}
		c.ccnt += width
	}
	if c.ccnt > 0 {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

func (c *Console) write(w io.Writer, s string, col rbtree.Color) (err error) {
	if clr, ok := c.colors[col]; ok && clr != nil {
		_, err = clr.Fprint(w, s)
	} else {
		_, err = io.WriteString(w, s)
	}
	return
}

// Stringify adapts a traversal with arbitrary keys to the string keys
// expected by Console.Sequence.
func Stringify[K any](seq iter.Seq2[K, rbtree.Color]) iter.Seq2[string, rbtree.Color] {
	return func(yield func(string, rbtree.Color) bool) {
		for k, c := range seq {
			if !yield(fmt.Sprint(k), c) {
				return
			}
		}
	}
}
