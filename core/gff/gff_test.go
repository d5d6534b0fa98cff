package gff

import (
	"errors"
	"testing"
)

func TestParseLine(t *testing.T) {
	f, ok, err := ParseLine("chr1\tRefSeq\tCDS\t2\t5\t.\t-\t0\tID=cds1;protein_id=P1\n")
	if err != nil || !ok {
		t.Fatalf("ParseLine: ok=%v err=%v", ok, err)
	}
	want := Feature{
		SeqID: "chr1", Source: "RefSeq", Type: "CDS", Start: 2, End: 5,
		Score: ".", Strand: "-", Phase: "0", Attributes: "ID=cds1;protein_id=P1",
	}
	if f != want {
		t.Errorf("got %+v, want %+v", f, want)
	}
	if !f.Reverse() {
		t.Errorf("expected minus strand")
	}
}

func TestParseLineSkips(t *testing.T) {
	for _, line := range []string{
		"##gff-version 3",
		"#chr1\tX\tCDS\t1\t4\t.\t+\t.\tprotein_id=P1",
		"",
		"chr1\tX\tCDS\t1\t4",
		// trailing tab trimmed away leaves 8 columns
		"chr1\tX\tCDS\t1\t4\t.\t+\t.\t",
	} {
		if _, ok, err := ParseLine(line); ok || err != nil {
			t.Errorf("ParseLine(%q): ok=%v err=%v, want skip", line, ok, err)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	cases := []struct {
		line string
		want error
	}{
		{"chr1\tX\tCDS\tone\t4\t.\t+\t.\tprotein_id=P1", ErrBadCoordinate},
		{"chr1\tX\tCDS\t1\t4.5\t.\t+\t.\tprotein_id=P1", ErrBadCoordinate},
		{"chr1\tX\tCDS\t0\t2\t.\t+\t.\tprotein_id=P1", ErrBadCoordinate},
		{"chr1\tX\tCDS\t-3\t2\t.\t+\t.\tprotein_id=P1", ErrBadCoordinate},
		{"chr1\tX\tCDS\t1\t-2\t.\t-\t.\tprotein_id=P1", ErrBadCoordinate},
		{"chr1\tX\tCDS\t1\t4\t.\t+\t.\tprotein_id=P1\textra", ErrTooManyColumns},
	}
	for _, c := range cases {
		if _, _, err := ParseLine(c.line); !errors.Is(err, c.want) {
			t.Errorf("ParseLine(%q) err=%v, want %v", c.line, err, c.want)
		}
	}
}
