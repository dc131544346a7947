package cccompress

import (
	"compress/gzip"
	"fmt"
	"io"
)

// CCGzip .
type CCGzip struct {
	CompressionLevel int
}

// Compress .
func (p *CCGzip) Compress(in []byte) ([]byte, error) {
	out, err := pipe(in, func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriterLevel(w, p.CompressionLevel)
	})
	if err != nil {
		return nil, fmt.Errorf("CCGzip.Compress.err[%w]", err)
	}
	return out, nil
}

// Decompress .
func (p *CCGzip) Decompress(in []byte) ([]byte, error) {
	out, err := drain(in, func(r io.Reader) (io.Reader, error) {
		return gzip.NewReader(r)
	})
	if err != nil {
		return nil, fmt.Errorf("CCGzip.Decompress.err[%w]", err)
	}
	return out, nil
}

// DefaultGzip .
var DefaultGzip = &CCGzip{CompressionLevel: gzip.DefaultCompression}
