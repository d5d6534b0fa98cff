package fasta

import (
	"bytes"
	"testing"
)

func TestWriteRecordSingleLine(t *testing.T) {
	var buf bytes.Buffer
	seq := bytes.Repeat([]byte("ACGT"), 40)
	if err := WriteRecord(&buf, "P1", seq); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := ">P1\n" + string(seq) + "\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteKeepsDescription(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Record{ID: "NODE_1", Desc: "length_4_cov_2.0", Seq: []byte("ACGT")}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != ">NODE_1 length_4_cov_2.0\nACGT\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
