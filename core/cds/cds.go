// Package cds extracts coding sequences from a genome using the CDS rows of
// a GFF-like annotation.
package cds

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"seqpost-core/dna"
	"seqpost-core/fasta"
	"seqpost-core/gff"
)

const (
	FeatureType    = "CDS"
	ProteinIDKey   = "protein_id"
	FallbackPrefix = "CDS_"
)

// ErrUnknownSequence is returned when a row names a sequence the genome
// does not contain.
var ErrUnknownSequence = errors.New("sequence id not found in genome")

// Entry is one extracted coding sequence.
type Entry struct {
	Label   string
	Seq     []byte
	Feature gff.Feature
}

// Result summarises an extraction run.
type Result struct {
	Count int
	Stats gff.Stats
}

// Label returns the protein_id attribute of f, or CDS_<n+1> where n is the
// number of entries already extracted.
func Label(f gff.Feature, n int) string {
	return f.Attrs().Get(ProteinIDKey, FallbackPrefix+strconv.Itoa(n+1))
}

// Sequence cuts the feature's span out of seq, reverse-complementing it for
// minus-strand features. The result never aliases seq.
func Sequence(seq []byte, f gff.Feature) []byte {
	span := dna.Span(seq, f.Start, f.End)
	if f.Reverse() {
		return dna.RevComp(span)
	}
	return append([]byte(nil), span...)
}

// Extract streams the CDS rows of annotation in file order and calls emit
// once per row. The first unknown sequence id aborts the run.
func Extract(ctx context.Context, genome fasta.Index, annotation io.Reader, emit func(Entry) error) (Result, error) {
	var res Result
	sc := gff.NewScanner(annotation, FeatureType)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		f := sc.Feature()
		rec, ok := genome.Lookup(f.SeqID)
		if !ok {
			return res, &gff.LineError{Line: sc.Line(), Err: fmt.Errorf("%w: %q", ErrUnknownSequence, f.SeqID)}
		}
		e := Entry{Label: Label(f, res.Count), Seq: Sequence(rec.Seq, f), Feature: f}
		if err := emit(e); err != nil {
			return res, err
		}
		res.Count++
	}
	res.Stats = sc.Stats()
	if err := sc.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// WriteFASTA runs Extract and writes each entry to w as a two-line record.
func WriteFASTA(ctx context.Context, genome fasta.Index, annotation io.Reader, w io.Writer) (Result, error) {
	return Extract(ctx, genome, annotation, func(e Entry) error {
		return fasta.WriteRecord(w, e.Label, e.Seq)
	})
}
