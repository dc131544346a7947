package cccompress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// CCZstd .
type CCZstd struct {
	Level zstd.EncoderLevel
}

// Compress .
func (p *CCZstd) Compress(in []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(p.Level))
	if err != nil {
		return nil, fmt.Errorf("CCZstd.Compress.NewWriter.err[%w]", err)
	}
	defer enc.Close()
	return enc.EncodeAll(in, nil), nil
}

// Decompress .
func (p *CCZstd) Decompress(in []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("CCZstd.Decompress.NewReader.err[%w]", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(in, nil)
	if err != nil {
		return nil, fmt.Errorf("CCZstd.Decompress.err[%w]", err)
	}
	return out, nil
}

// DefaultZstd .
var DefaultZstd = &CCZstd{Level: zstd.SpeedDefault}
