package contig

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seqpost-core/fasta"
)

func recs(lens ...int) []fasta.Record {
	out := make([]fasta.Record, len(lens))
	for i, n := range lens {
		out[i] = fasta.Record{ID: "r" + string(rune('a'+i)), Seq: []byte(strings.Repeat("A", n))}
	}
	return out
}

func TestLongest(t *testing.T) {
	cases := []struct {
		name string
		lens []int
		want string
	}{
		{"single", []int{7}, "ra"},
		{"max last", []int{1, 2, 3}, "rc"},
		{"max first", []int{9, 2, 3}, "ra"},
		{"tie keeps first", []int{10, 25, 25, 5}, "rb"},
		{"all equal", []int{4, 4, 4}, "ra"},
		{"empty sequences", []int{0, 0}, "ra"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Longest(recs(c.lens...))
			if err != nil {
				t.Fatalf("Longest: %v", err)
			}
			if got.ID != c.want {
				t.Errorf("got %s, want %s", got.ID, c.want)
			}
		})
	}
}

func TestLongestEmpty(t *testing.T) {
	if _, err := Longest(nil); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

func TestLongestPath(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "contigs.fasta")
	data := ">NODE_1_length_4\nACGT\n>NODE_2_length_6\nACG\nTAC\n>NODE_3_length_6\nGGGGGG\n"
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, n, err := LongestPath(context.Background(), fn)
	if err != nil {
		t.Fatalf("LongestPath: %v", err)
	}
	if n != 3 || got.ID != "NODE_2_length_6" || string(got.Seq) != "ACGTAC" {
		t.Fatalf("got %+v (n=%d)", got, n)
	}
}

func TestLongestPathEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.fasta")
	if err := os.WriteFile(fn, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, _, err := LongestPath(context.Background(), fn); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}
