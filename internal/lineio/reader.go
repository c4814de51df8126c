// Package lineio opens plain, gzip, or bzip2 text files transparently and
// scans them line by line. CAIDA/RouteViews relationship dumps are
// routinely distributed gzipped, so relationship and seed files here
// follow the same convention.
package lineio

import (
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader transparently decompresses .gz and .bz2 files; anything else is
// read as plain text.
type Reader struct {
	filename string
	fp       io.ReadCloser
	closer   io.Closer // bzip2.Reader has no Close method, so this may be nil
	body     io.Reader
}

// New returns a Reader for filename. Call Open before Scanner.
func New(filename string) *Reader {
	return &Reader{filename: filename}
}

// Open opens the underlying file and wires up decompression if needed.
func (r *Reader) Open() error {
	fp, err := os.Open(r.filename)
	if err != nil {
		return fmt.Errorf("lineio: opening %s: %w", r.filename, err)
	}
	r.fp = fp

	switch {
	case strings.HasSuffix(r.filename, ".gz"):
		gz, err := gzip.NewReader(fp)
		if err != nil {
			fp.Close()
			return fmt.Errorf("lineio: gzip header in %s: %w", r.filename, err)
		}
		r.body = gz
		r.closer = gz
	case strings.HasSuffix(r.filename, ".bz2"):
		r.body = bzip2.NewReader(fp)
	default:
		r.body = fp
	}
	return nil
}

// Scanner returns a line scanner over the decompressed body.
func (r *Reader) Scanner() *bufio.Scanner {
	return bufio.NewScanner(r.body)
}

// Close releases the underlying file (and decompressor, if any).
func (r *Reader) Close() error {
	if r.closer != nil {
		r.closer.Close()
	}
	if r.fp != nil {
		return r.fp.Close()
	}
	return nil
}
