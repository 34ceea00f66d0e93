// Released under an MIT license. See LICENSE.

// Package reader wraps the ratio lexer and parser.
package reader

import (
	"github.com/ratiolang/ratio/internal/reader/lexer"
	"github.com/ratiolang/ratio/internal/reader/parser"
	"github.com/ratiolang/ratio/internal/type/expr"
)

// T (reader) encapsulates the ratio lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	r := &T{s: lexer.New(name)}

	r.p = parser.New(r.s.Token)

	return r
}

// Scan reads one line and returns the expression it describes, or nil
// for a line with no expression. Scan returns any lexing or parsing
// error for the line.
func (r *reader) Scan(line string) (expr.T, error) {
	r.s.Scan(line + "\n")

	return r.p.Parse()
}
