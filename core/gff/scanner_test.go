package gff

import (
	"errors"
	"strings"
	"testing"
)

const annotation = `##gff-version 3
#!processor NCBI annotwriter
chr1	RefSeq	region	1	12	.	+	.	ID=chr1:1..12
chr1	RefSeq	gene	2	5	.	+	.	ID=gene-1
chr1	RefSeq	CDS	2	5	.	+	0	protein_id=P1
short	row
chr1	RefSeq	CDS	6	9	.	-	0	ID=cds-2
chr1	RefSeq	exon	notanumber	9	.	-	.	ID=exon-1
`

func TestScannerFiltersType(t *testing.T) {
	sc := NewScanner(strings.NewReader(annotation), "CDS")
	var got []Feature
	for sc.Scan() {
		got = append(got, sc.Feature())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 CDS, got %d: %+v", len(got), got)
	}
	if got[0].Start != 2 || got[1].Strand != "-" {
		t.Errorf("unexpected features %+v", got)
	}
	st := sc.Stats()
	want := Stats{Lines: 8, Comments: 2, Short: 1, Filtered: 3}
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
}

func TestScannerAllTypesReportsBadCoordinate(t *testing.T) {
	sc := NewScanner(strings.NewReader(annotation), "")
	n := 0
	for sc.Scan() {
		n++
	}
	var le *LineError
	if !errors.As(sc.Err(), &le) || le.Line != 8 || !errors.Is(sc.Err(), ErrBadCoordinate) {
		t.Fatalf("expected line 8 coordinate error, got %v", sc.Err())
	}
	if n != 4 {
		t.Errorf("want 4 features before the error, got %d", n)
	}
	if sc.Scan() {
		t.Errorf("Scan must stay false after an error")
	}
}
