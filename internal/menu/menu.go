// Package menu implements the interactive conversion menu.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/malii-code/NumberConverterSystem/internal/convert"
	"github.com/malii-code/NumberConverterSystem/internal/domain"
)

// Conversion is one menu entry: a source and target base pair.
type Conversion struct {
	Source domain.Base
	Target domain.Base
}

// conversions is the fixed dispatch table, in menu order. Choice n maps to
// conversions[n-1]; choice 0 exits.
var conversions = [12]Conversion{
	{domain.Binary, domain.Decimal},
	{domain.Decimal, domain.Binary},
	{domain.Octal, domain.Decimal},
	{domain.Decimal, domain.Octal},
	{domain.Hexadecimal, domain.Decimal},
	{domain.Decimal, domain.Hexadecimal},
	{domain.Binary, domain.Octal},
	{domain.Octal, domain.Binary},
	{domain.Binary, domain.Hexadecimal},
	{domain.Hexadecimal, domain.Binary},
	{domain.Octal, domain.Hexadecimal},
	{domain.Hexadecimal, domain.Octal},
}

// Loop drives the menu over plain reader/writers so tests can script it.
type Loop struct {
	in   *bufio.Scanner
	out  io.Writer
	errw io.Writer
}

// New builds a Loop reading choices and numbers from in, writing the menu
// and results to out and validation errors to errw.
func New(in io.Reader, out, errw io.Writer) *Loop {
	return &Loop{in: bufio.NewScanner(in), out: out, errw: errw}
}

// Run executes menu iterations until the exit choice is selected or input
// ends. It returns a non-nil error only when reading input fails.
func (l *Loop) Run() error {
	for {
		l.printMenu()

		line, ok := l.readLine()
		if !ok {
			// End of input behaves as exit so piped sessions terminate cleanly.
			fmt.Fprintln(l.out, "Exiting program.")
			return l.in.Err()
		}

		choice, err := parseChoice(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(l.out, "Invalid choice. Please try again.")
			continue
		}
		if choice == 0 {
			fmt.Fprintln(l.out, "Exiting program.")
			return nil
		}

		l.perform(conversions[choice-1])
	}
}

// perform runs a single conversion request: prompt, decode, encode, print.
// Validation failures are reported to errw and abandon the request; the
// caller redisplays the menu.
func (l *Loop) perform(c Conversion) {
	fmt.Fprintf(l.out, "Enter %s number: ", c.Source)

	line, ok := l.readLine()
	if !ok {
		return
	}
	input := strings.TrimSpace(line)

	value, err := decode(input, c.Source)
	if err != nil {
		fmt.Fprintf(l.errw, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(l.out, "%s equivalent: %s\n", c.Target.Label(), encode(value, c.Target))
}

func (l *Loop) printMenu() {
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, "Number System Converter")
	fmt.Fprintln(l.out, "-----------------------")
	for i, c := range conversions {
		fmt.Fprintf(l.out, "%d. %s to %s\n", i+1, c.Source.Label(), c.Target.Label())
	}
	fmt.Fprintln(l.out, "0. Exit")
	fmt.Fprint(l.out, "Enter your choice: ")
}

func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}

// parseChoice maps a trimmed menu input line onto an action: 0 for exit,
// or a 1-based conversion index. Anything else is ErrInvalidChoice.
func parseChoice(line string) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 || n > len(conversions) {
		return 0, domain.ErrInvalidChoice
	}
	return n, nil
}

// decode applies the identity shortcut: decimal input is parsed directly,
// everything else goes through the converter.
func decode(input string, base domain.Base) (int64, error) {
	if base == domain.Decimal {
		return parseDecimal(input)
	}
	return convert.Decode(input, base)
}

// encode applies the identity shortcut for decimal targets.
func encode(value int64, base domain.Base) string {
	if base == domain.Decimal {
		return strconv.FormatInt(value, 10)
	}
	return convert.Encode(value, base)
}

// parseDecimal parses direct decimal input, mapping failures onto the
// converter's error taxonomy. Signs are rejected digit-wise: negative
// numbers are outside the supported domain.
func parseDecimal(input string) (int64, error) {
	if input == "" {
		return 0, domain.ErrEmptyInput
	}
	for i := 0; i < len(input); i++ {
		if input[i] < '0' || input[i] > '9' {
			return 0, &domain.InvalidDigitError{Digit: input[i], Base: domain.Decimal}
		}
	}
	v, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		// All characters are digits, so only a range failure remains.
		return 0, &domain.RangeError{Input: input, Base: domain.Decimal}
	}
	return v, nil
}
