package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eugenenazirov/fuelcalc/internal/fuel"
)

// Parse reads one module mass per line from r. Surrounding whitespace is
// trimmed, blank lines are skipped, and input order is preserved. The first
// line that fails to parse aborts the whole read with a *ParseError; no
// partial result is returned.
func Parse(r io.Reader) ([]fuel.Mass, error) {
	scanner := bufio.NewScanner(r)

	var masses []fuel.Mass
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		masses = append(masses, fuel.Mass(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return masses, nil
}

// ReadFile parses module masses from the file at path.
func ReadFile(path string) ([]fuel.Mass, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	masses, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return masses, nil
}
