package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eugenenazirov/fuelcalc/internal/fuel"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []fuel.Mass
	}{
		{
			name: "PuzzleVectors",
			text: "12\n14\n1969\n100756\n",
			want: []fuel.Mass{12, 14, 1969, 100756},
		},
		{
			name: "SurroundingWhitespace",
			text: "  12 \n\t14\n",
			want: []fuel.Mass{12, 14},
		},
		{
			name: "BlankLinesSkipped",
			text: "12\n\n14\n\n\n",
			want: []fuel.Mass{12, 14},
		},
		{
			name: "NegativeAndZero",
			text: "-5\n0\n9\n",
			want: []fuel.Mass{-5, 0, 9},
		},
		{
			name: "MissingTrailingNewline",
			text: "12\n14",
			want: []fuel.Mass{12, 14},
		},
		{
			name: "Empty",
			text: "",
			want: nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.text))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d masses, got %d (%v)", len(tc.want), len(got), got)
			}
			for i, m := range tc.want {
				if got[i] != m {
					t.Fatalf("expected mass %d at position %d, got %d", m, i, got[i])
				}
			}
		})
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	t.Parallel()

	masses, err := Parse(strings.NewReader("12\nabc\n14\n"))
	if masses != nil {
		t.Fatalf("expected no partial result, got %v", masses)
	}
	if !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Line != 2 {
		t.Fatalf("expected failure on line 2, got line %d", parseErr.Line)
	}
	if parseErr.Text != "abc" {
		t.Fatalf("expected offending text %q, got %q", "abc", parseErr.Text)
	}
	if !strings.Contains(parseErr.Error(), "abc") {
		t.Fatalf("expected diagnostic to name the offending content, got %q", parseErr.Error())
	}
}

func TestParseRejectsNonIntegerSyntax(t *testing.T) {
	t.Parallel()

	invalid := []string{"1.5", "0x10", "12three", "+-3"}
	for _, line := range invalid {
		line := line
		t.Run(line, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(line + "\n")); !errors.Is(err, ErrInvalidMass) {
				t.Fatalf("expected ErrInvalidMass for %q, got %v", line, err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "masses.txt")
	if err := os.WriteFile(path, []byte("1969\n100756\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != 1969 || got[1] != 100756 {
		t.Fatalf("unexpected masses: %v", got)
	}
}

func TestReadFileErrors(t *testing.T) {
	t.Parallel()

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("12\nnot-a-mass\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := ReadFile(path)
	if !errors.Is(err, ErrInvalidMass) {
		t.Fatalf("expected ErrInvalidMass, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to name the file, got %q", err.Error())
	}
}
