// Released under an MIT license. See LICENSE.

// Package ui provides the interactive interface for ratio.
package ui

import (
	"fmt"
	"os"

	"github.com/peterh/liner"
	"github.com/ratiolang/ratio/internal/reader"
	"github.com/ratiolang/ratio/internal/system/history"
	"github.com/ratiolang/ratio/internal/type/expr"
	"github.com/ratiolang/ratio/internal/type/rat"
)

// Evaluator is the interface for things that want to process parsed
// expressions.
type Evaluator interface {
	Evaluate(x expr.T) (*rat.T, error)
}

// Run reads expressions interactively and sends them to the Evaluator.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	// A missing history file is not an error.
	_ = history.Load(cli.ReadHistory)

	r := reader.New("stdin")

	for {
		line, err := cli.Prompt("> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			fmt.Println()

			continue
		default:
			fmt.Println()

			_ = history.Save(cli.WriteHistory)

			return
		}

		if line != "" {
			cli.AppendHistory(line)
		}

		x, err := r.Scan(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			continue
		}

		if x == nil {
			continue
		}

		v, err := e.Evaluate(x)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)

			continue
		}

		fmt.Println(v)
	}
}
