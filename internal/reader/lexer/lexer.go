// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for ratio expressions.
//
// The ratio lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/ratiolang/ratio/internal/reader/token"
	"github.com/ratiolang/ratio/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = scan

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	l.tokens <- token.New(c, v, source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterBang(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '=':
		l.accept(r, w)
		l.emit(token.Ne, l.Text())
	default:
		l.emit(token.Error, l.Text())
	}

	return scan
}

func afterEquals(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '=':
		l.accept(r, w)
		l.emit(token.Eq, l.Text())
	default:
		l.emit('=', l.Text())
	}

	return scan
}

func afterGreater(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '=':
		l.accept(r, w)
		l.emit(token.Ge, l.Text())
	default:
		l.emit('>', l.Text())
	}

	return scan
}

func afterLess(l *T) action {
	r, w := l.peek()

	switch r {
	case eof:
		return nil
	case '=':
		l.accept(r, w)
		l.emit(token.Le, l.Text())
	default:
		l.emit('<', l.Text())
	}

	return scan
}

func scan(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\t', ' ':
			l.skip()
		case '\n', '(', ')', '*', '+', '-', '/':
			l.emit(r, l.Text())
		case '!':
			return afterBang
		case '#':
			return skipComment
		case '<':
			return afterLess
		case '=':
			return afterEquals
		case '>':
			return afterGreater
		default:
			switch {
			case digit(r):
				return scanNumber
			case letter(r):
				return scanName
			default:
				l.emit(token.Error, l.Text())
			}
		}
	}
}

func scanName(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case digit(r), letter(r):
			l.accept(r, w)
		default:
			l.emit(token.Name, l.Text())
			return scan
		}
	}
}

func scanNumber(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case digit(r):
			l.accept(r, w)
		default:
			l.emit(token.Number, l.Text())
			return scan
		}
	}
}

func skipComment(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\n':
			l.emit('\n', l.Text())
			return scan
		}
	}
}

// Helper functions.

func digit(r token.Class) bool {
	return '0' <= r && r <= '9'
}

func letter(r token.Class) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
