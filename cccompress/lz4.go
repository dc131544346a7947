package cccompress

import (
	"fmt"
	"io"

	"github.com/pierrec/lz4"
)

// CCLz4 .
type CCLz4 struct {
	CompressionLevel int
}

// Compress .
func (p *CCLz4) Compress(in []byte) ([]byte, error) {
	out, err := pipe(in, func(w io.Writer) (io.WriteCloser, error) {
		writer := lz4.NewWriter(w)
		writer.Header.CompressionLevel = p.CompressionLevel
		return writer, nil
	})
	if err != nil {
		return nil, fmt.Errorf("CCLz4.Compress.err[%w]", err)
	}
	return out, nil
}

// Decompress .
func (p *CCLz4) Decompress(in []byte) ([]byte, error) {
	out, err := drain(in, func(r io.Reader) (io.Reader, error) {
		return lz4.NewReader(r), nil
	})
	if err != nil {
		return nil, fmt.Errorf("CCLz4.Decompress.err[%w]", err)
	}
	return out, nil
}

// DefaultLz4 .
var DefaultLz4 = &CCLz4{CompressionLevel: 9}
