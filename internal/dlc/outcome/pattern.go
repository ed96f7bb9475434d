// Package outcome models numeric oracle outcomes as fixed-length digit
// sequences and the wildcard patterns that group them.
package outcome

import (
	"strings"

	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

const (
	MinBase = 2
	MaxBase = 36

	// DefaultBase decomposes outcomes into bits.
	DefaultBase = 2

	// Wildcard marks a position whose digit does not matter.
	Wildcard = -1

	WildcardChar = '?'
)

// Pattern is a big-endian digit sequence in which any entry may be Wildcard.
// An outcome matches a pattern if it agrees on every fixed position.
type Pattern []int

// CheckBase validates a radix.
func CheckBase(field string, base int) error {
	if base < MinBase || base > MaxBase {
		return dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "base must be within [%d, %d], got %d", MinBase, MaxBase, base)
	}
	return nil
}

// ParsePattern decodes s, one character per position: a digit of base
// (0-9 then a-z, case insensitive) or '?'.
func ParsePattern(field string, s string, base int, numDigits int) (Pattern, error) {
	if err := CheckBase("base", base); err != nil {
		return nil, err
	}
	if len(s) != numDigits {
		return nil, dlcerr.Count(dlcerr.KindDigitCountMismatch, field, numDigits, len(s))
	}

	p := make(Pattern, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == WildcardChar {
			p[i] = Wildcard
			continue
		}

		d := digitValue(c)
		if d < 0 || d >= base {
			return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "character %q at position %d is not a base %d digit", c, i, base)
		}
		p[i] = d
	}

	return p, nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

func digitChar(d int) byte {
	if d < 10 {
		return byte('0' + d)
	}
	return byte('a' + d - 10)
}

// String renders p in the form ParsePattern accepts.
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, d := range p {
		if d == Wildcard {
			b.WriteByte(WildcardChar)
			continue
		}
		b.WriteByte(digitChar(d))
	}
	return b.String()
}

// Fixed returns the number of non-wildcard positions.
func (p Pattern) Fixed() int {
	n := 0
	for _, d := range p {
		if d != Wildcard {
			n++
		}
	}
	return n
}

// Matches reports whether the outcome digits agree with every fixed position.
func (p Pattern) Matches(digits []int) bool {
	if len(digits) != len(p) {
		return false
	}
	for i, d := range p {
		if d != Wildcard && digits[i] != d {
			return false
		}
	}
	return true
}

// Constrain merges p into template: positions fixed by the template keep the
// template's digit, the rest take p's entry. A CET pattern that fixes a
// position to a different digit than the template is rejected.
func (p Pattern) Constrain(field string, template Pattern) (Pattern, error) {
	if len(p) != len(template) {
		return nil, dlcerr.Count(dlcerr.KindDigitCountMismatch, field, len(template), len(p))
	}

	merged := make(Pattern, len(p))
	for i, d := range p {
		t := template[i]
		switch {
		case t == Wildcard:
			merged[i] = d
		case d == Wildcard || d == t:
			merged[i] = t
		default:
			return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, field, "digit %d at position %d conflicts with template digit %d", d, i, t)
		}
	}

	return merged, nil
}
