// Package modelfile opens geoloc model files for streaming reads,
// transparently decompressing gzip input.
package modelfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// gzipMagic is the fixed two-byte header of RFC 1952 gzip streams.
var gzipMagic = []byte{0x1f, 0x8b}

// Open opens the model file at path. Compression is detected from the magic
// bytes rather than the file extension, so both plain and gzip-compressed
// model files work regardless of how they are named.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}

	br := bufio.NewReader(f)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		f.Close()
		return nil, fmt.Errorf("read model file header: %w", err)
	}

	if bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &modelReader{r: zr, closers: []io.Closer{zr, f}}, nil
	}
	return &modelReader{r: br, closers: []io.Closer{f}}, nil
}

// modelReader pairs the decoding reader with every underlying closer.
type modelReader struct {
	r       io.Reader
	closers []io.Closer
}

func (m *modelReader) Read(p []byte) (int, error) {
	return m.r.Read(p)
}

func (m *modelReader) Close() error {
	var firstErr error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
