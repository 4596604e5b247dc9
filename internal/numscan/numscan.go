// Package numscan holds a small hand-written scanner for floating point
// text. It accepts an optional sign, digits with an optional fraction,
// and an optional exponent, and reports malformed or out-of-range input
// explicitly instead of deferring to locale- or platform-dependent
// behavior.
package numscan

import (
	"errors"
	"math"
)

var (
	// ErrSyntax is returned when the input is not a number at all.
	ErrSyntax = errors.New("invalid numeric text")
	// ErrRange is returned when the value does not fit a float64.
	ErrRange = errors.New("numeric value out of range")
)

type state int

const (
	integerSign state = iota
	integer
	fraction
	exponentSign
	exponent
)

// ParseFloat scans s as a floating point number. The whole input must be
// consumed; trailing characters are a syntax error.
func ParseFloat(s string) (float64, error) {
	st := integerSign
	sign := 1.0
	var mantissa float64
	frac := 1.0
	expSign := 1
	exp := 0

	pos := 0
	for pos < len(s) {
		ch := s[pos]
		pos++

		switch st {
		case integerSign:
			switch {
			case ch == '-':
				sign = -1
				st = integer
			case ch == '+':
				st = integer
			case ch >= '0' && ch <= '9':
				mantissa = float64(ch - '0')
				st = integer
			case ch == '.':
				st = fraction
			default:
				return 0, ErrSyntax
			}

		case integer:
			switch {
			case ch >= '0' && ch <= '9':
				mantissa = 10*mantissa + float64(ch-'0')
			case ch == 'e' || ch == 'E':
				st = exponentSign
			case ch == '.':
				st = fraction
			default:
				return 0, ErrSyntax
			}

		case fraction:
			switch {
			case ch >= '0' && ch <= '9':
				mantissa = 10*mantissa + float64(ch-'0')
				frac /= 10
			case ch == 'e' || ch == 'E':
				st = exponentSign
			default:
				return 0, ErrSyntax
			}

		case exponentSign:
			switch {
			case ch == '-':
				expSign = -1
				st = exponent
			case ch == '+':
				st = exponent
			case ch >= '0' && ch <= '9':
				exp = int(ch - '0')
				st = exponent
			default:
				return 0, ErrSyntax
			}

		case exponent:
			if ch >= '0' && ch <= '9' {
				exp = 10*exp + int(ch-'0')
			} else {
				return 0, ErrSyntax
			}
		}
	}

	// A bare sign, a bare ".", or a dangling exponent never reached a digit.
	if st == integerSign || st == exponentSign || !hasDigit(s) {
		return 0, ErrSyntax
	}

	v := sign * mantissa * frac
	if exp != 0 {
		v *= math.Pow(10, float64(exp*expSign))
	}

	if math.IsNaN(v) {
		return 0, ErrSyntax
	}
	if math.IsInf(v, 0) || math.Abs(v) > math.MaxFloat64 {
		return 0, ErrRange
	}

	return v, nil
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
