// Package input reads a 2×2 matrix from an interactive prompt or from a
// compact command-line string.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/eigen2x2/matrix"
)

var (
	// ErrNoInput is returned by Prompt when the reader ends before four entries.
	ErrNoInput = errors.New("input: unexpected end of input")

	// ErrBadNumber wraps a token that is not a real number.
	ErrBadNumber = errors.New("input: not a number")
)

// Header is printed once before the first prompt.
const Header = "Fill a 2x2 matrix:\n\n"

// Prompt asks for A[0][0], A[0][1], A[1][0], A[1][1] in order, one line per
// entry. A line that is not a finite real is reported on w and asked again.
func Prompt(r io.Reader, w io.Writer) (matrix.Matrix2x2, error) {
	var (
		sc   = bufio.NewScanner(r)
		vals [4]float64
	)
	if _, err := io.WriteString(w, Header); err != nil {
		return matrix.Matrix2x2{}, err
	}

	for k := 0; k < len(vals); {
		if _, err := fmt.Fprintf(w, "A[%d][%d] = ", k/2, k%2); err != nil {
			return matrix.Matrix2x2{}, err
		}
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return matrix.Matrix2x2{}, fmt.Errorf("input: read: %w", err)
			}

			return matrix.Matrix2x2{}, ErrNoInput
		}

		v, err := parseValue(sc.Text())
		if err != nil {
			fmt.Fprintf(w, "%v, try again\n", err)
			continue
		}
		vals[k] = v
		k++
	}

	return matrix.New(vals[0], vals[1], vals[2], vals[3]), nil
}

// Parse reads four reals separated by commas and/or whitespace, row-major.
func Parse(s string) (matrix.Matrix2x2, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) != 4 {
		return matrix.Matrix2x2{}, fmt.Errorf("input: Parse: got %d values: %w", len(fields), matrix.ErrEntryCount)
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := parseValue(f)
		if err != nil {
			return matrix.Matrix2x2{}, fmt.Errorf("input: Parse: A[%d][%d]: %w", i/2, i%2, err)
		}
		vals[i] = v
	}

	return matrix.FromEntries(vals)
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, s)
	}
	if err = matrix.ValidateValue(v); err != nil {
		return 0, err
	}

	return v, nil
}
