// Package gff reads the 9-column, tab-separated feature rows of GFF-like
// annotation files. Only what the CDS extractor needs is parsed; there is no
// validation beyond column count and integer coordinates.
package gff

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Column positions of a GFF row.
const (
	FieldSeqid = iota
	FieldSource
	FieldType
	FieldStart
	FieldEnd
	FieldScore
	FieldStrand
	FieldPhase
	FieldAttributes

	NumFields
)

var (
	ErrBadCoordinate  = errors.New("coordinate is not a positive integer")
	ErrTooManyColumns = errors.New("more than 9 columns")
)

// Feature is one annotation row. Start and End are 1-based and inclusive, as
// written in the file.
type Feature struct {
	SeqID      string
	Source     string
	Type       string
	Start      int
	End        int
	Score      string
	Strand     string
	Phase      string
	Attributes string
}

// Reverse reports whether the feature lies on the minus strand.
func (f Feature) Reverse() bool { return f.Strand == "-" }

// Attrs parses the attribute column.
func (f Feature) Attrs() Attributes { return ParseAttributes(f.Attributes) }

// LineError ties a parse error to its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string { return fmt.Sprintf("gff line %d: %v", e.Line, e.Err) }
func (e *LineError) Unwrap() error { return e.Err }

// splitRow trims the line and splits it into columns. ok is false for
// comment lines and rows with fewer than NumFields columns.
func splitRow(line string) (cols []string, ok bool, err error) {
	if strings.HasPrefix(line, "#") {
		return nil, false, nil
	}
	cols = strings.Split(strings.TrimSpace(line), "\t")
	if len(cols) < NumFields {
		return nil, false, nil
	}
	if len(cols) > NumFields {
		return nil, false, fmt.Errorf("%w: got %d", ErrTooManyColumns, len(cols))
	}
	return cols, true, nil
}

func parseCoord(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrBadCoordinate, name, s)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s %d", ErrBadCoordinate, name, n)
	}
	return n, nil
}

// ParseLine parses one row. ok is false when the line is a comment or has
// too few columns; such lines are not errors.
func ParseLine(line string) (f Feature, ok bool, err error) {
	cols, ok, err := splitRow(line)
	if !ok || err != nil {
		return Feature{}, false, err
	}
	return featureFromCols(cols)
}

func featureFromCols(cols []string) (Feature, bool, error) {
	start, err := parseCoord("start", cols[FieldStart])
	if err != nil {
		return Feature{}, false, err
	}
	end, err := parseCoord("end", cols[FieldEnd])
	if err != nil {
		return Feature{}, false, err
	}
	return Feature{
		SeqID:      cols[FieldSeqid],
		Source:     cols[FieldSource],
		Type:       cols[FieldType],
		Start:      start,
		End:        end,
		Score:      cols[FieldScore],
		Strand:     cols[FieldStrand],
		Phase:      cols[FieldPhase],
		Attributes: cols[FieldAttributes],
	}, true, nil
}
