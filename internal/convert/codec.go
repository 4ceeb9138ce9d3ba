// Package convert implements the digit-string codec between the supported
// numeral systems and the int64 intermediate form. All conversions chain
// as source base -> decimal -> target base; there is no direct digit
// manipulation between two non-decimal bases.
package convert

import (
	"strings"

	"github.com/malii-code/NumberConverterSystem/internal/domain"
	"github.com/malii-code/NumberConverterSystem/pkg/safe"
)

// hexValues maps hexadecimal digit characters to their numeric values,
// both cases. Bases below 16 resolve digits with the plain '0' offset.
var hexValues = map[byte]int64{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4,
	'5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 10, 'B': 11, 'C': 12, 'D': 13, 'E': 14, 'F': 15,
	'a': 10, 'b': 11, 'c': 12, 'd': 13, 'e': 14, 'f': 15,
}

// digitChars maps digit values 0-15 to output characters. Hex letters are
// emitted uppercase.
var digitChars = [16]byte{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'A', 'B', 'C', 'D', 'E', 'F',
}

// Decode parses a most-significant-first digit string in the given base
// into its decimal value. It fails on the first character that is not a
// valid digit of the base, on empty input, and on values that do not fit
// in an int64 (reported, never saturated or truncated).
func Decode(digits string, base domain.Base) (int64, error) {
	if !base.Valid() {
		panic("CONVERT_UNSUPPORTED_BASE")
	}
	if digits == "" {
		return 0, domain.ErrEmptyInput
	}

	// Leading zeros carry no value but would exhaust the positional
	// multiplier on long inputs, so they are stripped up front.
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return 0, nil
	}

	var value int64
	multiplier := int64(1)
	for i := len(trimmed) - 1; i >= 0; i-- {
		d, err := digitValue(trimmed[i], base)
		if err != nil {
			return 0, err
		}

		term, ok := safe.CheckedMul(d, multiplier)
		if !ok {
			return 0, &domain.RangeError{Input: digits, Base: base}
		}
		value, ok = safe.CheckedAdd(value, term)
		if !ok {
			return 0, &domain.RangeError{Input: digits, Base: base}
		}
		if i > 0 {
			multiplier, ok = safe.CheckedMul(multiplier, int64(base))
			if !ok {
				return 0, &domain.RangeError{Input: digits, Base: base}
			}
		}
	}
	return value, nil
}

// Encode renders a non-negative decimal value as a digit string in the
// given base. Zero encodes to "0"; the output has no leading zeros.
func Encode(value int64, base domain.Base) string {
	if !base.Valid() {
		panic("CONVERT_UNSUPPORTED_BASE")
	}
	if value < 0 {
		panic("CONVERT_NEGATIVE_VALUE")
	}
	if value == 0 {
		return "0"
	}

	// 64 bytes covers MaxInt64 in binary, the widest case.
	var buf [64]byte
	i := len(buf)
	for value > 0 {
		i--
		buf[i] = digitChars[value%int64(base)]
		value /= int64(base)
	}
	return string(buf[i:])
}

// digitValue resolves a single character to its numeric value, enforcing
// that it is a valid digit strictly below the base.
func digitValue(c byte, base domain.Base) (int64, error) {
	var d int64
	if base == domain.Hexadecimal {
		v, ok := hexValues[c]
		if !ok {
			return 0, &domain.InvalidDigitError{Digit: c, Base: base}
		}
		d = v
	} else {
		if c < '0' || c > '9' {
			return 0, &domain.InvalidDigitError{Digit: c, Base: base}
		}
		d = int64(c - '0')
	}
	if d >= int64(base) {
		return 0, &domain.InvalidDigitError{Digit: c, Base: base}
	}
	return d, nil
}
