// Released under an MIT license. See LICENSE.

// Package expr provides the expression cells built by the ratio parser.
package expr

import (
	"github.com/ratiolang/ratio/internal/reader/token"
	"github.com/ratiolang/ratio/internal/type/rat"
)

// T (expr) is any expression cell the engine can evaluate.
type T interface {
	String() string

	expression()
}

// Number is a literal rational value.
type Number struct {
	Value *rat.T
}

// Cell refers to a grid cell by name.
type Cell struct {
	Name string
}

// Neg negates the value of X.
type Neg struct {
	X T
}

// Binary applies the operator Op to L and R.
type Binary struct {
	Op token.Class
	L  T
	R  T
}

// Assign stores the value of X in the named cell.
type Assign struct {
	Name string
	X    T
}

func (x *Number) String() string {
	return x.Value.String()
}

func (x *Cell) String() string {
	return x.Name
}

func (x *Neg) String() string {
	return "(- " + x.X.String() + ")"
}

func (x *Binary) String() string {
	return "(" + x.L.String() + " " + operator(x.Op) + " " + x.R.String() + ")"
}

func (x *Assign) String() string {
	return x.Name + " = " + x.X.String()
}

func (*Number) expression() {}
func (*Cell) expression()   {}
func (*Neg) expression()    {}
func (*Binary) expression() {}
func (*Assign) expression() {}

// operator returns the source text for an operator class.
func operator(c token.Class) string {
	switch c {
	case token.Eq:
		return "=="
	case token.Ge:
		return ">="
	case token.Le:
		return "<="
	case token.Ne:
		return "!="
	}

	return string(rune(c))
}
