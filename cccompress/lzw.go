package cccompress

import (
	"compress/lzw"
	"fmt"
	"io"
)

// CCLzw wraps the GIF/TIFF flavour of LZW from the standard library, with
// variable-width codes. It is kept as a reference point for Text.
type CCLzw struct {
	Order    lzw.Order
	LitWidth int
}

// Compress .
func (p *CCLzw) Compress(in []byte) ([]byte, error) {
	out, err := pipe(in, func(w io.Writer) (io.WriteCloser, error) {
		return lzw.NewWriter(w, p.Order, p.LitWidth), nil
	})
	if err != nil {
		return nil, fmt.Errorf("CCLzw.Compress.err[%w]", err)
	}
	return out, nil
}

// Decompress .
func (p *CCLzw) Decompress(in []byte) ([]byte, error) {
	out, err := drain(in, func(r io.Reader) (io.Reader, error) {
		return lzw.NewReader(r, p.Order, p.LitWidth), nil
	})
	if err != nil {
		return nil, fmt.Errorf("CCLzw.Decompress.err[%w]", err)
	}
	return out, nil
}

// DefaultLzw .
var DefaultLzw = &CCLzw{Order: lzw.MSB, LitWidth: 8}
