// Released under an MIT license. See LICENSE.

// Package engine evaluates ratio expressions against the grid of
// named cells that serves as calculator memory.
package engine

import (
	"fmt"
	"strconv"

	"github.com/ratiolang/ratio/internal/reader/token"
	"github.com/ratiolang/ratio/internal/type/expr"
	"github.com/ratiolang/ratio/internal/type/grid"
	"github.com/ratiolang/ratio/internal/type/rat"
)

// T (engine) evaluates expressions. Cells that have never been
// assigned read as zero.
type T struct {
	sheet *grid.T[*rat.T]
}

type engine = T

// New creates an engine with a size x size cell grid.
func New(size int) *T {
	return &engine{sheet: grid.New[*rat.T](size)}
}

// Evaluate computes the value of the expression x.
func (e *engine) Evaluate(x expr.T) (*rat.T, error) {
	switch x := x.(type) {
	case *expr.Number:
		return x.Value, nil

	case *expr.Cell:
		c, r, err := e.locate(x.Name)
		if err != nil {
			return nil, err
		}

		v := e.sheet.At(c, r)
		if v == nil {
			v = rat.Int(0)
		}

		return v, nil

	case *expr.Neg:
		v, err := e.Evaluate(x.X)
		if err != nil {
			return nil, err
		}

		return v.Neg(), nil

	case *expr.Binary:
		return e.binary(x)

	case *expr.Assign:
		v, err := e.Evaluate(x.X)
		if err != nil {
			return nil, err
		}

		c, r, err := e.locate(x.Name)
		if err != nil {
			return nil, err
		}

		e.sheet.Set(c, r, v)

		return v, nil
	}

	return nil, fmt.Errorf("cannot evaluate %T", x)
}

func (e *engine) binary(x *expr.Binary) (*rat.T, error) {
	l, err := e.Evaluate(x.L)
	if err != nil {
		return nil, err
	}

	r, err := e.Evaluate(x.R)
	if err != nil {
		return nil, err
	}

	switch x.Op {
	case '+':
		return l.Add(r), nil
	case '-':
		return l.Sub(r), nil
	case '*':
		return l.Mul(r), nil
	case '/':
		return l.Div(r)
	case '<':
		return truth(l.Cmp(r) < 0), nil
	case '>':
		return truth(l.Cmp(r) > 0), nil
	case token.Le:
		return truth(l.Cmp(r) <= 0), nil
	case token.Ge:
		return truth(l.Cmp(r) >= 0), nil
	case token.Eq:
		return truth(l.Equal(r)), nil
	case token.Ne:
		return truth(!l.Equal(r)), nil
	}

	return nil, fmt.Errorf("unknown operator %s", x.Op.String())
}

// locate converts a cell name like b2 to grid coordinates. Columns are
// letters, rows are numbers starting at 1.
func (e *engine) locate(name string) (int, int, error) {
	if len(name) < 2 || name[0] < 'a' || name[0] > 'z' {
		return 0, 0, fmt.Errorf("'%s' is not a cell name", name)
	}

	row, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("'%s' is not a cell name", name)
	}

	c, r := int(name[0]-'a'), row-1
	if !e.sheet.InBounds(c, r) {
		return 0, 0, fmt.Errorf("%s: cell is off the grid", name)
	}

	return c, r, nil
}

// Comparisons yield numbers so that they can nest in arithmetic.
func truth(b bool) *rat.T {
	if b {
		return rat.Int(1)
	}

	return rat.Int(0)
}
