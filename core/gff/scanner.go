package gff

import (
	"bufio"
	"io"
)

// Stats counts the lines a Scanner passed over without yielding a feature.
type Stats struct {
	Lines    int
	Comments int
	Short    int // fewer than 9 columns
	Filtered int // wrong feature type
}

// Scanner streams features of one type from a GFF-like file.
//
// Usage mirrors bufio.Scanner:
//
//	sc := gff.NewScanner(r, "CDS")
//	for sc.Scan() {
//		f := sc.Feature()
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner struct {
	sc    *bufio.Scanner
	typ   string
	feat  Feature
	err   error
	stats Stats
}

// NewScanner returns a Scanner yielding only rows whose type column equals
// featureType exactly. An empty featureType yields every row. Coordinates
// are parsed only for yielded rows.
func NewScanner(r io.Reader, featureType string) *Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // attribute columns can be very long
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Scanner{sc: sc, typ: featureType}
}

// Scan advances to the next matching feature. It returns false at EOF or on
// the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.sc.Scan() {
		s.stats.Lines++
		line := s.sc.Text()
		cols, ok, err := splitRow(line)
		if err != nil {
			s.err = &LineError{Line: s.stats.Lines, Err: err}
			return false
		}
		if !ok {
			if len(line) > 0 && line[0] == '#' {
				s.stats.Comments++
			} else {
				s.stats.Short++
			}
			continue
		}
		if s.typ != "" && cols[FieldType] != s.typ {
			s.stats.Filtered++
			continue
		}
		f, _, err := featureFromCols(cols)
		if err != nil {
			s.err = &LineError{Line: s.stats.Lines, Err: err}
			return false
		}
		s.feat = f
		return true
	}
	if err := s.sc.Err(); err != nil {
		s.err = err
	}
	return false
}

// Feature returns the feature found by the last successful Scan.
func (s *Scanner) Feature() Feature { return s.feat }

// Line is the 1-based number of the last line read.
func (s *Scanner) Line() int { return s.stats.Lines }

// Stats reports what has been skipped so far.
func (s *Scanner) Stats() Stats { return s.stats }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }
