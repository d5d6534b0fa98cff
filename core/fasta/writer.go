package fasta

import (
	"fmt"
	"io"
)

// WriteRecord writes a two-line FASTA entry: ">header" then the whole
// sequence on one line.
func WriteRecord(w io.Writer, header string, seq []byte) error {
	if _, err := fmt.Fprintf(w, ">%s\n%s\n", header, seq); err != nil {
		return err
	}
	return nil
}

// Write writes r with its full header line.
func Write(w io.Writer, r Record) error {
	return WriteRecord(w, r.Header(), r.Seq)
}
