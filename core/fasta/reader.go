// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	bfasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"seqpost-core/fileio"
)

// Record is one FASTA entry. ID is the first whitespace-delimited token of
// the header line; Desc holds the remainder, if any. Title is the header
// line itself, without the '>' and trailing whitespace.
type Record struct {
	ID    string
	Desc  string
	Title string
	Seq   []byte
}

// Header returns the header line as it was read, without the leading '>'.
// Records built by hand without a Title get ID and Desc joined by a space.
func (r Record) Header() string {
	if r.Title != "" {
		return r.Title
	}
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Len is the number of sequence symbols.
func (r Record) Len() int { return len(r.Seq) }

// Read parses FASTA from r and calls emit for each record in file order.
// Letters are kept as read (no case folding, no alphabet validation).
// Cancellation via ctx is checked between records.
func Read(ctx context.Context, r io.Reader, emit func(Record) error) error {
	tap := &titleTap{r: r, bol: true}
	sc := seqio.NewScanner(bfasta.NewReader(tap, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("fasta: unexpected sequence type %T", sc.Seq())
		}
		rec := Record{ID: s.ID, Desc: s.Desc, Seq: lettersToBytes(s.Seq)}
		if title, ok := tap.next(); ok && strings.HasPrefix(title, s.ID) {
			rec.Title = title
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}

// ReadPath opens path (see fileio.Open) and streams its records to emit.
func ReadPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := fileio.Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Read(ctx, rc, emit)
}

// ReadAll loads every record of path into memory, in file order.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var recs []Record
	err := ReadPath(ctx, path, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func lettersToBytes(ls alphabet.Letters) []byte {
	out := make([]byte, len(ls))
	for i, l := range ls {
		out[i] = byte(l)
	}
	return out
}

// titleTap passes bytes through to the biogo reader unchanged while keeping
// each '>' line verbatim; the parser splits headers at the first blank and
// the separator is otherwise lost. Titles queue up in file order, which is
// also the order records come out in.
type titleTap struct {
	r      io.Reader
	bol    bool // next byte starts a line
	inHdr  bool
	cur    []byte
	titles []string
}

func (t *titleTap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	for _, b := range p[:n] {
		switch {
		case t.inHdr && b == '\n':
			t.flush()
			t.bol = true
		case t.inHdr:
			t.cur = append(t.cur, b)
		case t.bol && b == '>':
			t.inHdr, t.bol = true, false
		default:
			t.bol = b == '\n'
		}
	}
	if err == io.EOF && t.inHdr {
		t.flush()
	}
	return n, err
}

func (t *titleTap) flush() {
	t.titles = append(t.titles, strings.TrimRight(string(t.cur), " \t\r"))
	t.cur = t.cur[:0]
	t.inHdr = false
}

func (t *titleTap) next() (string, bool) {
	if len(t.titles) == 0 {
		return "", false
	}
	s := t.titles[0]
	t.titles = t.titles[1:]
	return s, true
}
