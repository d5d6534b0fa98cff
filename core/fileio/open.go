// Package fileio opens the tools' inputs: genome and contig FASTA as well as
// GFF annotation, any of which may arrive gzip-compressed or on stdin.
package fileio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

var gzipMagic = []byte{0x1f, 0x8b}

// input pairs the decoded stream with whatever has to be released after it.
type input struct {
	io.Reader
	release []func() error
}

func (in *input) Close() error {
	var first error
	for _, f := range in.release {
		if err := f(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns a reader over path's contents. "-" means stdin, which Close
// leaves open. Compression is recognised from the leading bytes, not the
// file name, so piped gzip input works too.
func Open(path string) (io.ReadCloser, error) {
	src := os.Stdin
	closeSrc := func() error { return nil }
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		src, closeSrc = fh, fh.Close
	}

	br := bufio.NewReader(src)
	if head, _ := br.Peek(len(gzipMagic)); !bytes.Equal(head, gzipMagic) {
		return &input{Reader: br, release: []func() error{closeSrc}}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		_ = closeSrc()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &input{Reader: zr, release: []func() error{zr.Close, closeSrc}}, nil
}
