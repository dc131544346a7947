package cccompress

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// CCBz2 .
type CCBz2 struct {
	CompressionLevel int
}

// Compress .
func (p *CCBz2) Compress(in []byte) ([]byte, error) {
	out, err := pipe(in, func(w io.Writer) (io.WriteCloser, error) {
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: p.CompressionLevel})
	})
	if err != nil {
		return nil, fmt.Errorf("CCBz2.Compress.err[%w]", err)
	}
	return out, nil
}

// Decompress .
func (p *CCBz2) Decompress(in []byte) ([]byte, error) {
	out, err := drain(in, func(r io.Reader) (io.Reader, error) {
		return bzip2.NewReader(r, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("CCBz2.Decompress.err[%w]", err)
	}
	return out, nil
}

// DefaultBz2 .
var DefaultBz2 = &CCBz2{CompressionLevel: bzip2.DefaultCompression}
