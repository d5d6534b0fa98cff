// Package contig picks the longest sequence out of an assembly.
package contig

import (
	"context"
	"errors"

	"seqpost-core/fasta"
)

// ErrNoRecords is returned when there is nothing to choose from.
var ErrNoRecords = errors.New("no sequences in input")

// Longest returns the record with the most symbols. Ties go to the record
// seen first.
func Longest(recs []fasta.Record) (fasta.Record, error) {
	if len(recs) == 0 {
		return fasta.Record{}, ErrNoRecords
	}
	best := 0
	for i := 1; i < len(recs); i++ {
		if recs[i].Len() > recs[best].Len() {
			best = i
		}
	}
	return recs[best], nil
}

// LongestPath loads path and returns its longest record along with the
// number of records read.
func LongestPath(ctx context.Context, path string) (fasta.Record, int, error) {
	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		return fasta.Record{}, 0, err
	}
	best, err := Longest(recs)
	return best, len(recs), err
}
