// Command rbtree builds a red-black tree from keys given on the command
// line, deletes some of them again and prints the result.
//
//	rbtree -i 5,3,8,1 -d 3 --order all --sketch
//
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/rbtree"
	"github.com/npillmayer/rbtree/formatter"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func main() {
	app := cli.NewApp()
	app.Name = "rbtree"
	app.Usage = "insert and delete keys in a red-black tree and print it"
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "insert, i",
			Value: "10,18,7,15,16,30,25,40,60,2,1,70",
			Usage: " comma separated `KEYS` to insert",
		},
		cli.StringFlag{
			Name:  "delete, d",
			Value: "18,11,7",
			Usage: " comma separated `KEYS` to delete after inserting",
		},
		cli.StringFlag{
			Name:  "order, o",
			Value: "all",
			Usage: " traversal `ORDER` to print [in|pre|post|all]",
		},
		cli.BoolFlag{
			Name:  "sketch, s",
			Usage: " draw the tree sideways",
		},
		cli.StringFlag{
			Name:  "dot",
			Value: "",
			Usage: " write the tree in Graphviz format to `FILE`",
		},
		cli.BoolFlag{
			Name:  "check, c",
			Usage: " verify the red-black properties",
		},
		cli.StringFlag{
			Name:  "trace, t",
			Value: "error",
			Usage: " trace `LEVEL` [error|info|debug]",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "rbtree: %s\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	gtrace.CoreTracer = gologadapter.New()
	level, err := traceLevel(c.String("trace"))
	if err != nil {
		return err
	}
	gtrace.CoreTracer.SetTraceLevel(level)

	orders, err := traversalOrders(c.String("order"))
	if err != nil {
		return err
	}
	inserts, err := parseKeys(c.String("insert"))
	if err != nil {
		return err
	}
	deletes, err := parseKeys(c.String("delete"))
	if err != nil {
		return err
	}

	tree, err := rbtree.New[int](rbtree.Config{Capacity: len(inserts)})
	if err != nil {
		return err
	}
	for _, k := range inserts {
		tree.Insert(k)
	}
	gtrace.CoreTracer.Infof("inserted %d keys", len(inserts))
	for _, k := range deletes {
		if !tree.Delete(k) {
			fmt.Fprintf(c.App.Writer, "%d: not found\n", k)
		}
	}
	gtrace.CoreTracer.Infof("%s", tree.Stats())

	console := formatter.NewConsole(nil)
	config := formatter.ConfigFromTerminal()
	for _, order := range orders {
		fmt.Fprintf(c.App.Writer, "%s:\n", order)
		seq := formatter.Stringify(tree.Traverse(order))
		if err := console.Sequence(c.App.Writer, seq, config); err != nil {
			return err
		}
	}
	if c.Bool("sketch") {
		if _, err := formatter.Sketch(c.App.Writer, tree, console); err != nil {
			return err
		}
	}
	if name := c.String("dot"); name != "" {
		if err := writeDot(name, tree); err != nil {
			return err
		}
	}
	if c.Bool("check") {
		if err := tree.Check(); err != nil {
			gtrace.CoreTracer.Errorf("%v", err)
			return err
		}
		fmt.Fprintf(c.App.Writer, "ok: %d keys, height %d, black height %d\n",
			tree.Len(), tree.Height(), tree.BlackHeight())
	}
	return nil
}

func writeDot(name string, tree *rbtree.Tree[int]) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	tree.ToDot(f)
	return f.Close()
}

// parseKeys splits a comma separated list of integers. An empty list is
// allowed.
func parseKeys(s string) ([]int, error) {
	var keys []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		k, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q", field)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func traversalOrders(s string) ([]rbtree.Order, error) {
	switch strings.ToLower(s) {
	case "in":
		return []rbtree.Order{rbtree.InOrder}, nil
	case "pre":
		return []rbtree.Order{rbtree.PreOrder}, nil
	case "post":
		return []rbtree.Order{rbtree.PostOrder}, nil
	case "all":
		return []rbtree.Order{rbtree.InOrder, rbtree.PreOrder, rbtree.PostOrder}, nil
	case "", "none":
		return nil, nil
	}
	return nil, errors.New("unknown traversal order " + s)
}

func traceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "error", "":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, errors.New("unknown trace level " + s)
}
