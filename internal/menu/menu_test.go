package menu

import (
	"bytes"
	"strings"
	"testing"
)

// runScript drives a full Loop session over scripted input and returns
// what was written to stdout and stderr.
func runScript(t *testing.T, input string) (string, string) {
	t.Helper()
	var out, errw bytes.Buffer
	l := New(strings.NewReader(input), &out, &errw)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String(), errw.String()
}

func TestLoopConversions(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"Binary To Decimal", "1\n1010\n0\n", "Decimal equivalent: 10"},
		{"Decimal To Binary", "2\n10\n0\n", "Binary equivalent: 1010"},
		{"Octal To Decimal", "3\n17\n0\n", "Decimal equivalent: 15"},
		{"Decimal To Octal", "4\n26\n0\n", "Octal equivalent: 32"},
		{"Hex To Decimal Lowercase", "5\nff\n0\n", "Decimal equivalent: 255"},
		{"Decimal To Hex", "6\n255\n0\n", "Hexadecimal equivalent: FF"},
		{"Binary To Octal", "7\n1111\n0\n", "Octal equivalent: 17"},
		{"Octal To Binary", "8\n17\n0\n", "Binary equivalent: 1111"},
		{"Binary To Hex", "9\n11111111\n0\n", "Hexadecimal equivalent: FF"},
		{"Hex To Binary", "10\nF\n0\n", "Binary equivalent: 1111"},
		{"Octal To Hex", "11\n32\n0\n", "Hexadecimal equivalent: 1A"},
		{"Hex To Octal", "12\n1A\n0\n", "Octal equivalent: 32"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := runScript(t, tt.script)
			if !strings.Contains(out, tt.want) {
				t.Errorf("output should contain %q, got:\n%s", tt.want, out)
			}
			if errOut != "" {
				t.Errorf("unexpected stderr output: %s", errOut)
			}
		})
	}
}

func TestLoopPrompts(t *testing.T) {
	out, _ := runScript(t, "5\nFF\n0\n")
	if !strings.Contains(out, "Enter hexadecimal number: ") {
		t.Errorf("prompt should name the source system, got:\n%s", out)
	}
}

func TestLoopInvalidDigit(t *testing.T) {
	out, errOut := runScript(t, "1\n2\n0\n")

	if !strings.Contains(errOut, "invalid digit '2' for base 2") {
		t.Errorf("stderr should name digit and base, got: %s", errOut)
	}
	if strings.Contains(out, "equivalent:") {
		t.Error("no result should be printed for invalid input")
	}
	// The loop keeps going: the menu is shown again before exit.
	if got := strings.Count(out, "Number System Converter"); got != 2 {
		t.Errorf("menu shown %d times, want 2", got)
	}
}

func TestLoopInvalidChoice(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"Out Of Range", "99\n0\n"},
		{"Negative", "-3\n0\n"},
		{"Non Numeric", "abc\n0\n"},
		{"Blank Line", "\n0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := runScript(t, tt.script)
			if !strings.Contains(out, "Invalid choice. Please try again.") {
				t.Errorf("should report invalid choice, got:\n%s", out)
			}
			if got := strings.Count(out, "Number System Converter"); got != 2 {
				t.Errorf("menu shown %d times, want 2", got)
			}
			if !strings.Contains(out, "Exiting program.") {
				t.Error("loop should continue to the exit choice")
			}
		})
	}
}

func TestLoopDecimalValidation(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr string
	}{
		{"Letter", "2\n12x\n0\n", "invalid digit 'x' for base 10"},
		{"Negative", "2\n-5\n0\n", "invalid digit '-' for base 10"},
		{"Plus Sign", "2\n+5\n0\n", "invalid digit '+' for base 10"},
		{"Overflow", "2\n9223372036854775808\n0\n", "exceeds the supported range"},
		{"Empty", "2\n\n0\n", "empty input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := runScript(t, tt.script)
			if !strings.Contains(errOut, tt.wantErr) {
				t.Errorf("stderr should contain %q, got: %s", tt.wantErr, errOut)
			}
			if strings.Contains(out, "equivalent:") {
				t.Error("no result should be printed for rejected input")
			}
		})
	}
}

func TestLoopEOFExits(t *testing.T) {
	out, _ := runScript(t, "")
	if !strings.Contains(out, "Exiting program.") {
		t.Errorf("EOF should exit with farewell, got:\n%s", out)
	}
}

func TestLoopTrimsWhitespace(t *testing.T) {
	out, errOut := runScript(t, " 1 \n  1010  \n 0 \n")
	if !strings.Contains(out, "Decimal equivalent: 10") {
		t.Errorf("whitespace around input should be ignored, got:\n%s\nstderr: %s", out, errOut)
	}
}

func TestMenuListsAllOptions(t *testing.T) {
	out, _ := runScript(t, "0\n")

	for _, row := range []string{
		"1. Binary to Decimal",
		"6. Decimal to Hexadecimal",
		"12. Hexadecimal to Octal",
		"0. Exit",
	} {
		if !strings.Contains(out, row) {
			t.Errorf("menu should contain %q, got:\n%s", row, out)
		}
	}
}
