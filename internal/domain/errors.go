package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the converter's input taxonomy.
var (
	// ErrInvalidDigit indicates a character that is not a digit of the base
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrOutOfRange indicates a value that does not fit in an int64
	ErrOutOfRange = errors.New("value out of range")
	// ErrEmptyInput indicates a blank digit string
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidChoice indicates an unrecognized menu selection
	ErrInvalidChoice = errors.New("invalid choice")
)

// InvalidDigitError reports a character that does not represent a valid
// digit for the stated base.
type InvalidDigitError struct {
	Digit byte
	Base  Base
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit '%c' for base %d", e.Digit, int(e.Base))
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

// RangeError reports an input whose value exceeds the int64 range.
type RangeError struct {
	Input string
	Base  Base
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("number %q exceeds the supported range for base %d", e.Input, int(e.Base))
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }
