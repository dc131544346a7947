package cccompress

import (
	"fmt"

	"CCText.com/cclzw"
)

// CCText is the fixed-width dictionary codec from package cclzw.
type CCText struct {
	Config cclzw.Config
}

// Compress .
func (p *CCText) Compress(in []byte) ([]byte, error) {
	codec, err := cclzw.New(p.Config)
	if err != nil {
		return nil, err
	}
	out, err := codec.CompressBytes(in)
	if err != nil {
		return nil, fmt.Errorf("CCText.Compress.err[%w]", err)
	}
	return out, nil
}

// Decompress .
func (p *CCText) Decompress(in []byte) ([]byte, error) {
	codec, err := cclzw.New(p.Config)
	if err != nil {
		return nil, err
	}
	out, err := codec.ExpandBytes(in)
	if err != nil {
		return nil, fmt.Errorf("CCText.Decompress.err[%w]", err)
	}
	return out, nil
}

// DefaultText .
var DefaultText = &CCText{Config: cclzw.DefaultConfig()}
