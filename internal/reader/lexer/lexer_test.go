// Released under an MIT license. See LICENSE.

package lexer

import (
	"strings"
	"testing"

	"github.com/ratiolang/ratio/internal/reader/token"
	"github.com/ratiolang/ratio/internal/type/loc"
)

func TestExpression(t *testing.T) {
	h := setup(t, "Expression")

	h.scan("1 + 2\n",
		h.number("1"),
		h.gap(1),
		h.literal("+"),
		h.gap(1),
		h.number("2"),
		h.literal("\n"),
		nil,
	)
}

func TestAssignment(t *testing.T) {
	h := setup(t, "Assignment")

	h.scan("a1 = 1/2\n",
		h.name("a1"),
		h.gap(1),
		h.literal("="),
		h.gap(1),
		h.number("1"),
		h.literal("/"),
		h.number("2"),
		h.literal("\n"),
		nil,
	)
}

func TestComparisonOperators(t *testing.T) {
	for _, op := range []string{
		"<", "<=", ">", ">=", "==", "!=",
	} {
		h := setup(t, "ComparisonOperators")

		h.scan("1 "+op+" 2\n",
			h.number("1"),
			h.gap(1),
			h.literal(op),
			h.gap(1),
			h.number("2"),
			h.literal("\n"),
			nil,
		)
	}
}

func TestParentheses(t *testing.T) {
	h := setup(t, "Parentheses")

	h.scan("-(12*troll)\n",
		h.literal("-"),
		h.literal("("),
		h.number("12"),
		h.literal("*"),
		h.name("troll"),
		h.literal(")"),
		h.literal("\n"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("1 # the rest is ignored\n",
		h.number("1"),
		h.gap(1),
		h.other('\n', "# the rest is ignored\n"),
		nil,
	)
}

func TestMultipleLines(t *testing.T) {
	h := setup(t, "MultipleLines")

	h.scan("1\n22\n",
		h.number("1"),
		h.literal("\n"),
		h.number("22"),
		h.literal("\n"),
		nil,
	)
}

func TestErrorRune(t *testing.T) {
	h := setup(t, "ErrorRune")

	h.scan("1 % 2\n",
		h.number("1"),
		h.gap(1),
		h.other(token.Error, "%"),
		h.gap(1),
		h.number("2"),
		h.literal("\n"),
		nil,
	)
}

func TestLoneBang(t *testing.T) {
	h := setup(t, "LoneBang")

	h.scan("! 1\n",
		h.other(token.Error, "!"),
		h.gap(1),
		h.number("1"),
		h.literal("\n"),
		nil,
	)
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{ //nolint:gochecknoglobals
	Char: 0,
	Line: 0,
	Name: "",
})

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) scan(text string, tokens ...*token.T) {
	h.lexer.Scan(text)
	h.expect(tokens...)
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == e:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

// gap accounts for whitespace, which produces no token.
func (h *harness) gap(n int) *token.T {
	h.index += n

	return skip
}

func (h *harness) literal(s string) *token.T {
	id, found := map[string]token.Class{
		"!=": token.Ne,
		"<=": token.Le,
		"==": token.Eq,
		">=": token.Ge,
	}[s]
	if !found {
		id = token.Class(s[0])
	}

	return h.other(id, s)
}

func (h *harness) name(s string) *token.T {
	return h.other(token.Name, s)
}

func (h *harness) number(s string) *token.T {
	return h.other(token.Number, s)
}

func (h *harness) other(c token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	t := token.New(c, s, h.source)

	if strings.HasSuffix(s, "\n") {
		h.index = 1
		h.source.Line++
	}

	return t
}
