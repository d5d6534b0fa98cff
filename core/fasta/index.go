package fasta

import (
	"context"
	"errors"
	"fmt"
)

// ErrDuplicateID is returned by LoadIndex when two records share an ID.
var ErrDuplicateID = errors.New("duplicate sequence id")

// Index maps record IDs to records. It is built once and only read afterwards.
type Index map[string]Record

// LoadIndex reads the whole of path into an Index.
func LoadIndex(ctx context.Context, path string) (Index, error) {
	idx := Index{}
	err := ReadPath(ctx, path, func(r Record) error {
		if _, dup := idx[r.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateID, r.ID)
		}
		idx[r.ID] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}

// Lookup returns the record for id.
func (x Index) Lookup(id string) (Record, bool) {
	r, ok := x[id]
	return r, ok
}
