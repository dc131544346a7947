package cccompress

import (
	"compress/zlib"
	"fmt"
	"io"
)

// CCZlib .
type CCZlib struct {
	CompressionLevel int
}

// Compress .
func (p *CCZlib) Compress(in []byte) ([]byte, error) {
	out, err := pipe(in, func(w io.Writer) (io.WriteCloser, error) {
		return zlib.NewWriterLevel(w, p.CompressionLevel)
	})
	if err != nil {
		return nil, fmt.Errorf("CCZlib.Compress.err[%w]", err)
	}
	return out, nil
}

// Decompress .
func (p *CCZlib) Decompress(in []byte) ([]byte, error) {
	out, err := drain(in, func(r io.Reader) (io.Reader, error) {
		return zlib.NewReader(r)
	})
	if err != nil {
		return nil, fmt.Errorf("CCZlib.Decompress.err[%w]", err)
	}
	return out, nil
}

// DefaultZlib .
var DefaultZlib = &CCZlib{CompressionLevel: zlib.DefaultCompression}
