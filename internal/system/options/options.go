// Released under an MIT license. See LICENSE.

// Package options parses ratio's command line.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	size        int
	usage       = `ratio - a desk calculator for exact rational arithmetic.

Usage:
  ratio [-g SIZE] [SCRIPT]
  ratio [-g SIZE] -c EXPR
  ratio -h
  ratio -v

Arguments:
  SCRIPT  Path to a file of ratio expressions, one per line.

Options:
  -c, --command=EXPR  Evaluate the single expression EXPR.
  -g, --grid=SIZE     Length of a side of the cell grid [default: 8].
  -h, --help          Display this help.
  -v, --version       Print ratio version.

If ratio's stdin is a TTY and no script or command is given, ratio reads
expressions interactively.
`
	version = "0.1.0"
)

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	g, _ := opts.String("--grid")

	size, err = strconv.Atoi(g)
	if err != nil || size < 1 {
		println("ratio: invalid grid size '" + g + "'")
		os.Exit(2)
	}

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

func Script() string {
	return script
}

func Size() int {
	return size
}
