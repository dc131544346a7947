package cccompress

import (
	"bytes"
	"fmt"
	"io"

	"CCText.com/cclzw"
)

// compressed mode
const (
	Uncompressed = 0
	GZip         = 1
	Zlib         = 2
	Bz2          = 3
	Lzw          = 4
	Lz4          = 5
	Zstd         = 6
	Text         = 7
)

var modeNames = [...]string{"uncompressed", "gzip", "zlib", "bzip2", "lzw", "lz4", "zstd", "text"}

// Codec compresses whole buffers.
type Codec interface {
	Compress(in []byte) ([]byte, error)
	Decompress(in []byte) ([]byte, error)
}

// ModeName .
func ModeName(mode byte) string {
	if !IsValidCompressMode(mode) {
		return fmt.Sprintf("mode(%d)", mode)
	}
	return modeNames[mode]
}

// IsValidCompressMode .
func IsValidCompressMode(s byte) bool {
	return s <= Text
}

// NewCodec returns the codec for mode. cfg is only used by Text.
func NewCodec(mode byte, cfg cclzw.Config) (Codec, error) {
	switch mode {
	case Uncompressed:
		return ccRaw{}, nil
	case GZip:
		return DefaultGzip, nil
	case Zlib:
		return DefaultZlib, nil
	case Bz2:
		return DefaultBz2, nil
	case Lzw:
		return DefaultLzw, nil
	case Lz4:
		return DefaultLz4, nil
	case Zstd:
		return DefaultZstd, nil
	case Text:
		if cfg == cclzw.DefaultConfig() {
			return DefaultText, nil
		}
		return &CCText{Config: cfg}, nil
	}
	return nil, fmt.Errorf("NewCodec[%v].unknown mode", mode)
}

type ccRaw struct{}

func (ccRaw) Compress(in []byte) ([]byte, error)   { return bytes.Clone(in), nil }
func (ccRaw) Decompress(in []byte) ([]byte, error) { return bytes.Clone(in), nil }

// pipe feeds in through the compressing writer returned by open.
func pipe(in []byte, open func(io.Writer) (io.WriteCloser, error)) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := open(&buffer)
	if err != nil {
		return nil, err
	}
	if _, err = writer.Write(in); err != nil {
		writer.Close()
		return nil, err
	}
	if err = writer.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// drain reads everything out of the decompressing reader returned by open.
func drain(in []byte, open func(io.Reader) (io.Reader, error)) ([]byte, error) {
	reader, err := open(bytes.NewReader(in))
	if err != nil {
		return nil, err
	}
	if c, ok := reader.(io.Closer); ok {
		defer c.Close()
	}
	return io.ReadAll(reader)
}
