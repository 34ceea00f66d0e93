// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for ratio expressions.
package parser

import (
	"errors"
	"strings"

	"github.com/ratiolang/ratio/internal/reader/token"
	"github.com/ratiolang/ratio/internal/type/expr"
	"github.com/ratiolang/ratio/internal/type/rat"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that consumes the tokens produced by item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes one newline-terminated line of tokens and returns the
// expression it describes. A line with no expression returns nil.
func (p *T) Parse() (x expr.T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		// Discard the rest of the offending line, including its
		// terminating newline.
		for t := p.peek(); t != nil; t = p.peek() {
			p.consume()

			if t.Is('\n') {
				break
			}
		}

		x = nil

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		default:
			panic(r)
		}
	}()

	t := p.peek()
	if t == nil {
		return nil, nil
	}

	if t.Is('\n') {
		p.consume()

		return nil, nil
	}

	x = p.line()

	p.expect('\n')

	return x, nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume.")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) expect(cs ...token.Class) {
	if p.peek().Is(cs...) {
		p.consume()

		return
	}

	// Make a nice error message.
	n := len(cs)
	e := make([]string, n)

	for i, c := range cs[:n-1] {
		e[i] = c.String()
	}

	l := cs[n-1].String()
	if n > 2 { //nolint:gomnd
		l = ", or " + l
	} else if n > 1 {
		l = " or " + l
	}

	l = strings.Join(e, ", ") + l

	panic(p.message("expected " + l + ` got "` + p.value() + `"`))
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	p.token = p.item()
	p.ahead = 1

	return p.token
}

// message prefixes s with the current source location.
func (p *T) message(s string) error {
	t := p.peek()
	if t == nil {
		return errors.New(s)
	}

	source := t.Source()

	return errors.New(source.String() + ": " + s)
}

// value returns the text of the current token, for error messages.
func (p *T) value() string {
	t := p.peek()
	if t == nil {
		return "end of input"
	}

	if t.Is('\n') {
		return "end of line"
	}

	return t.Value()
}

// T grammar rules.

// <line> ::= <comparison> ('=' <comparison>)? .
func (p *T) line() expr.T {
	x := p.comparison()

	if p.peek().Is('=') {
		c, ok := x.(*expr.Cell)
		if !ok {
			panic(p.message("target of = is not a cell"))
		}

		p.consume()

		return &expr.Assign{Name: c.Name, X: p.comparison()}
	}

	return x
}

// <comparison> ::= <additive> (('<'|'>'|Le|Ge|Eq|Ne) <additive>)? .
func (p *T) comparison() expr.T {
	x := p.additive()

	if t := p.peek(); t.Is('<', '>', token.Le, token.Ge, token.Eq, token.Ne) {
		p.consume()

		return &expr.Binary{Op: t.Class(), L: x, R: p.additive()}
	}

	return x
}

// <additive> ::= <multiplicative> (('+'|'-') <multiplicative>)* .
func (p *T) additive() expr.T {
	x := p.multiplicative()

	for t := p.peek(); t.Is('+', '-'); t = p.peek() {
		p.consume()

		x = &expr.Binary{Op: t.Class(), L: x, R: p.multiplicative()}
	}

	return x
}

// <multiplicative> ::= <unary> (('*'|'/') <unary>)* .
func (p *T) multiplicative() expr.T {
	x := p.unary()

	for t := p.peek(); t.Is('*', '/'); t = p.peek() {
		p.consume()

		x = &expr.Binary{Op: t.Class(), L: x, R: p.unary()}
	}

	return x
}

// <unary> ::= '-' <unary> | <primary> .
func (p *T) unary() expr.T {
	if p.peek().Is('-') {
		p.consume()

		return &expr.Neg{X: p.unary()}
	}

	return p.primary()
}

// <primary> ::= Number | Name | '(' <comparison> ')' .
func (p *T) primary() expr.T {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()

		v, err := rat.Parse(t.Value())
		if err != nil {
			panic(p.message(err.Error()))
		}

		return &expr.Number{Value: v}
	case t.Is(token.Name):
		p.consume()

		return &expr.Cell{Name: t.Value()}
	case t.Is('('):
		p.consume()

		x := p.comparison()

		p.expect(')')

		return x
	}

	panic(p.message(`unexpected "` + p.value() + `"`))
}
