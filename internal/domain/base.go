package domain

import (
	"fmt"
)

// Base is the radix of a supported positional numeral system.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases lists the supported radices in ascending order.
var Bases = [...]Base{Binary, Octal, Decimal, Hexadecimal}

// Valid reports whether b is one of the supported radices.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// String returns the lowercase system name, used in prompts.
func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return fmt.Sprintf("base %d", int(b))
}

// Label returns the capitalized system name, used in menu rows and results.
func (b Base) Label() string {
	switch b {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	}
	return fmt.Sprintf("Base %d", int(b))
}
