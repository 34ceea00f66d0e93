// Released under an MIT license. See LICENSE.

// Package token is shared by the ratio lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/ratiolang/ratio/internal/type/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// Token classes. Single-character operators, parentheses, and newline
// use their own rune as their class.
const (
	Error Class = iota

	Eq Class = unicode.MaxRune + iota // ==
	Ge                                // >=
	Le                                // <=
	Ne                                // !=
	Name
	Number
)

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Eq:
		return "Eq"
	case Ge:
		return "Ge"
	case Le:
		return "Le"
	case Ne:
		return "Ne"
	case Name:
		return "Name"
	case Number:
		return "Number"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the class of the token t.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
