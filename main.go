// Released under an MIT license. See LICENSE.

// Ratio is a desk calculator. Its only numeric type is the exact
// rational number and its memory is a square grid of named cells.
//
//	> 1/2 + 1/3
//	5/6
//	> a1 = 117/1098
//	13/122
//	> a1 * 2
//	13/61
//
// Comparisons evaluate to 1 or 0 so that they can nest in arithmetic.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ratiolang/ratio/internal/engine"
	"github.com/ratiolang/ratio/internal/reader"
	"github.com/ratiolang/ratio/internal/system/options"
	"github.com/ratiolang/ratio/internal/ui"
)

func main() {
	options.Parse()

	e := engine.New(options.Size())

	switch {
	case options.Command() != "":
		os.Exit(run(e, "-c", strings.NewReader(options.Command())))
	case options.Script() != "":
		f, err := os.Open(options.Script())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		rc := run(e, options.Script(), f)

		f.Close()
		os.Exit(rc)
	case options.Interactive():
		ui.Run(e)
	default:
		os.Exit(run(e, "stdin", os.Stdin))
	}
}

// run evaluates in line by line, printing each result. It returns 1 if
// any line failed.
func run(e *engine.T, name string, in io.Reader) int {
	r := reader.New(name)
	s := bufio.NewScanner(in)

	rc := 0

	for s.Scan() {
		x, err := r.Scan(s.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			rc = 1

			continue
		}

		if x == nil {
			continue
		}

		v, err := e.Evaluate(x)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			rc = 1

			continue
		}

		fmt.Println(v)
	}

	return rc
}
