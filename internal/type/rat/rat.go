// Released under an MIT license. See LICENSE.

// Package rat provides ratio's exact rational number type.
package rat

import (
	"errors"
	"math/big"
	"strings"
)

// T (rat) is an immutable rational number. Every value is stored in
// lowest terms with a positive denominator; zero is stored as 0/1.
type T struct {
	num *big.Int
	den *big.Int
}

type rat = T

// ErrDivideByZero is returned when a denominator, or a divisor, is zero.
var ErrDivideByZero = errors.New("division by zero")

// ParseError is returned when text cannot be converted to a rat.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return "'" + e.Text + "' is not a valid number"
}

// New creates a rat with the value num/den.
// It fails with ErrDivideByZero when den is zero.
func New(num, den *big.Int) (*T, error) {
	if den.Sign() == 0 {
		return nil, ErrDivideByZero
	}

	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// Int creates a rat from the integer i.
func Int(i int64) *T {
	return &rat{num: big.NewInt(i), den: big.NewInt(1)}
}

// Parse converts the text s to a rat. Text containing a single '/' is
// split into numerator and denominator; anything else is read as an
// integer with an implicit denominator of 1.
func Parse(s string) (*T, error) {
	num, den := s, "1"

	switch parts := strings.Split(s, "/"); len(parts) {
	case 1:
	case 2:
		num, den = parts[0], parts[1]
	default:
		return nil, &ParseError{Text: s}
	}

	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, &ParseError{Text: num}
	}

	d, ok := new(big.Int).SetString(den, 10)
	if !ok {
		return nil, &ParseError{Text: den}
	}

	return New(n, d)
}

// Add returns the sum a + b.
func (a *rat) Add(b *T) *T {
	n := new(big.Int).Mul(a.num, b.den)
	n.Add(n, new(big.Int).Mul(b.num, a.den))

	return reduce(n, new(big.Int).Mul(a.den, b.den))
}

// Sub returns the difference a - b.
func (a *rat) Sub(b *T) *T {
	n := new(big.Int).Mul(a.num, b.den)
	n.Sub(n, new(big.Int).Mul(b.num, a.den))

	return reduce(n, new(big.Int).Mul(a.den, b.den))
}

// Mul returns the product a * b.
func (a *rat) Mul(b *T) *T {
	n := new(big.Int).Mul(a.num, b.num)

	return reduce(n, new(big.Int).Mul(a.den, b.den))
}

// Div returns the quotient a / b.
// It fails with ErrDivideByZero when b is zero.
func (a *rat) Div(b *T) (*T, error) {
	if b.num.Sign() == 0 {
		return nil, ErrDivideByZero
	}

	n := new(big.Int).Mul(a.num, b.den)

	return reduce(n, new(big.Int).Mul(a.den, b.num)), nil
}

// Neg returns the negation -a.
func (a *rat) Neg() *T {
	return &rat{num: new(big.Int).Neg(a.num), den: new(big.Int).Set(a.den)}
}

// Cmp compares a and b and returns -1, 0, or +1. Both denominators are
// positive so the sign of num(a)*den(b) - num(b)*den(a) is the sign of
// a - b.
func (a *rat) Cmp(b *T) int {
	l := new(big.Int).Mul(a.num, b.den)
	r := new(big.Int).Mul(b.num, a.den)

	return l.Cmp(r)
}

// Equal returns true if b is the same number as a. Values are stored
// reduced so comparing the pairs compares the numbers.
func (a *rat) Equal(b *T) bool {
	return a.num.Cmp(b.num) == 0 && a.den.Cmp(b.den) == 0
}

// InRange returns true if a is in the closed interval [lo, hi].
func (a *rat) InRange(lo, hi *T) bool {
	return lo.Cmp(a) <= 0 && a.Cmp(hi) <= 0
}

// Key returns a string usable as a map key. Two rats have the same key
// exactly when they are Equal.
func (a *rat) Key() string {
	return a.String()
}

// Num returns a copy of the numerator of the rat a.
func (a *rat) Num() *big.Int {
	return new(big.Int).Set(a.num)
}

// Den returns a copy of the denominator of the rat a.
func (a *rat) Den() *big.Int {
	return new(big.Int).Set(a.den)
}

// Rat returns the value of the rat a as a *big.Rat.
func (a *rat) Rat() *big.Rat {
	return new(big.Rat).SetFrac(a.num, a.den)
}

// String returns the text of the rat a.
func (a *rat) String() string {
	if a.den.Cmp(one) == 0 {
		return a.num.String()
	}

	return a.num.String() + "/" + a.den.String()
}

var one = big.NewInt(1) //nolint:gochecknoglobals

// reduce takes ownership of n and d, divides both by their gcd, and
// moves any sign to the numerator. It assumes d is not zero.
func reduce(n, d *big.Int) *T {
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), new(big.Int).Abs(d))

	n.Quo(n, g)
	d.Quo(d, g)

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	return &rat{num: n, den: d}
}
