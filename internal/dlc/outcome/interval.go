package outcome

import (
	"math"
	"math/bits"

	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

// MaxValue returns the largest outcome representable with numDigits digits
// of base, saturating at math.MaxUint64.
func MaxValue(base int, numDigits int) uint64 {
	var capacity uint64 = 1
	for i := 0; i < numDigits; i++ {
		hi, lo := bits.Mul64(capacity, uint64(base))
		if hi != 0 {
			return math.MaxUint64
		}
		capacity = lo
	}
	return capacity - 1
}

// Digits decomposes value into numDigits big-endian digits of base.
func Digits(value uint64, base int, numDigits int) ([]int, error) {
	if err := CheckBase("base", base); err != nil {
		return nil, err
	}
	if numDigits <= 0 {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "num_digits", "num_digits must be positive")
	}
	if value > MaxValue(base, numDigits) {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "value", "%d does not fit %d base %d digits", value, numDigits, base)
	}

	digits := make([]int, numDigits)
	for i := numDigits - 1; i >= 0; i-- {
		digits[i] = int(value % uint64(base))
		value /= uint64(base)
	}
	return digits, nil
}

// Value is the inverse of Digits.
func Value(digits []int, base int) uint64 {
	var v uint64
	for _, d := range digits {
		v = v*uint64(base) + uint64(d)
	}
	return v
}

// DecomposeInterval covers [start, end] with the fewest patterns of the form
// "fixed prefix followed by wildcards". Each pattern covers an aligned block
// of base^k outcomes.
func DecomposeInterval(start, end uint64, base int, numDigits int) ([]Pattern, error) {
	if err := CheckBase("base", base); err != nil {
		return nil, err
	}
	if numDigits <= 0 {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "num_digits", "num_digits must be positive")
	}
	if start > end {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "start", "start %d is after end %d", start, end)
	}
	if end > MaxValue(base, numDigits) {
		return nil, dlcerr.New(dlcerr.KindInvalidInputEncoding, "end", "%d does not fit %d base %d digits", end, numDigits, base)
	}

	b := uint64(base)
	var patterns []Pattern
	for cur := start; ; {
		// grow the block while it stays aligned and inside the interval;
		// span is the block size minus one so the full uint64 range fits
		wild, span := 0, uint64(0)
		for wild < numDigits {
			hi, lo := bits.Mul64(span, b)
			next, carry := bits.Add64(lo, b-1, 0)
			if hi != 0 || carry != 0 || next > end-cur {
				break
			}
			if next != math.MaxUint64 && cur%(next+1) != 0 {
				break
			}
			span = next
			wild++
		}

		digits, err := Digits(cur, base, numDigits)
		if err != nil {
			return nil, err
		}
		p := Pattern(digits)
		for i := numDigits - wild; i < numDigits; i++ {
			p[i] = Wildcard
		}
		patterns = append(patterns, p)

		if span >= end-cur {
			return patterns, nil
		}
		cur += span + 1
	}
}
