// Package coloring - matrix text format loader.
//
// Grounded on matrix/validators.go's validate-then-construct convention
// and matrix/impl_dense.go's Dense matrix type (used here as the concrete
// matrix.Matrix fed to BuildGraph). Per spec.md §6, this is the one
// collaborator allowed to do file I/O; it uses only bufio/strconv, no
// third-party parsing library, since the format is a few deliberately
// simple textual tokens — exactly the kind of parsing tsp and matrix
// leave to the standard library elsewhere in the pack.
package coloring

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/matrix"
)

// LoadRecords reads a sequence of matrix records from r per spec.md §6:
//
//	n = <positive integer>
//	[d = <density in [0,1]>]      (optional metadata, ignored)
//	matrix:
//	<n*n whitespace-separated numeric tokens>
//
// `//`-to-end-of-line comments are stripped before tokenizing. Records may
// be separated by a line of dashes (any line consisting solely of '-'
// characters, ignoring surrounding whitespace, once comments are
// stripped).
//
// Errors:
//   - ErrDimensionMismatch if a record's matrix has the wrong token count,
//     a non-numeric token, or a missing "matrix:" marker.
//   - ErrInvalidGraph if a record's matrix is not symmetric (checked via
//     BuildGraph, which also performs this check).
//
// Complexity: O(total tokens) time, O(n^2) space per record.
func LoadRecords(r io.Reader) ([]*AdjacencyGraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var graphs []*AdjacencyGraph

	for {
		n, hasRecord, err := nextRecordSize(sc)
		if err != nil {
			return nil, err
		}
		if !hasRecord {
			break
		}

		tokens, err := readMatrixTokens(sc, n*n)
		if err != nil {
			return nil, err
		}

		dense, err := matrix.NewDense(n, n)
		if err != nil {
			return nil, fmt.Errorf("coloring: LoadRecords: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v, err := strconv.ParseFloat(tokens[i*n+j], 64)
				if err != nil {
					return nil, fmt.Errorf("coloring: LoadRecords: token (%d,%d) %q: %w", i, j, tokens[i*n+j], ErrDimensionMismatch)
				}
				if err := dense.Set(i, j, v); err != nil {
					return nil, fmt.Errorf("coloring: LoadRecords: %w", err)
				}
			}
		}

		g, err := BuildGraph(dense)
		if err != nil {
			return nil, err
		}
		graphs = append(graphs, g)
	}

	return graphs, sc.Err()
}

// stripComment removes a trailing "//..." comment from line, if present.
func stripComment(line string) string {
	if idx := strings.Index(line, "//"); idx >= 0 {
		return line[:idx]
	}

	return line
}

// isDashSeparator reports whether line (after comment stripping) is a
// record separator: non-empty and composed solely of '-' characters.
func isDashSeparator(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r != '-' {
			return false
		}
	}

	return true
}

// nextRecordSize scans forward past blank lines, comments, and dash
// separators until it finds an "n = <int>" declaration, optionally
// followed by a "d = <float>" metadata line (ignored) and a "matrix:"
// marker. Returns (n, true, nil) on success, (0, false, nil) at clean
// EOF with no more records, or an error for a malformed declaration.
func nextRecordSize(sc *bufio.Scanner) (int, bool, error) {
	for sc.Scan() {
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" || isDashSeparator(line) {
			continue
		}
		if !strings.HasPrefix(line, "n") {
			return 0, false, fmt.Errorf("coloring: LoadRecords: expected \"n = <int>\", got %q: %w", line, ErrDimensionMismatch)
		}
		n, err := parseKeyInt(line, "n")
		if err != nil {
			return 0, false, err
		}
		if n <= 0 {
			return 0, false, fmt.Errorf("coloring: LoadRecords: n must be positive, got %d: %w", n, ErrInvalidGraph)
		}

		if err := skipOptionalDensityAndMarker(sc); err != nil {
			return 0, false, err
		}

		return n, true, nil
	}

	return 0, false, nil
}

// skipOptionalDensityAndMarker consumes an optional "d = <float>" line and
// the mandatory "matrix:" marker line that follows an "n = " declaration.
func skipOptionalDensityAndMarker(sc *bufio.Scanner) error {
	for sc.Scan() {
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" || isDashSeparator(line) {
			continue
		}
		if strings.HasPrefix(line, "d") {
			continue // density metadata, ignored
		}
		if strings.TrimSuffix(line, ":") == "matrix" {
			return nil
		}

		return fmt.Errorf("coloring: LoadRecords: expected \"matrix:\", got %q: %w", line, ErrDimensionMismatch)
	}

	return fmt.Errorf("coloring: LoadRecords: unexpected EOF before \"matrix:\": %w", ErrDimensionMismatch)
}

// readMatrixTokens reads whitespace-separated numeric tokens (across as
// many lines as needed, skipping comments/separators) until exactly want
// tokens have been collected.
func readMatrixTokens(sc *bufio.Scanner, want int) ([]string, error) {
	tokens := make([]string, 0, want)
	for len(tokens) < want && sc.Scan() {
		line := strings.TrimSpace(stripComment(sc.Text()))
		if line == "" || isDashSeparator(line) {
			continue
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if len(tokens) != want {
		return nil, fmt.Errorf("coloring: LoadRecords: expected %d matrix tokens, got %d: %w", want, len(tokens), ErrDimensionMismatch)
	}

	return tokens, nil
}

// parseKeyInt parses a "<key> = <int>" line's integer value.
func parseKeyInt(line, key string) (int, error) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) != key {
		return 0, fmt.Errorf("coloring: LoadRecords: malformed %q declaration %q: %w", key, line, ErrDimensionMismatch)
	}
	v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("coloring: LoadRecords: malformed %q value %q: %w", key, parts[1], ErrDimensionMismatch)
	}

	return v, nil
}
