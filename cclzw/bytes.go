package cclzw

import (
	"bytes"
	"io"

	"CCText.com/ccbitio"
	"github.com/pkg/errors"
)

// CompressBytes returns the code stream for text.
func (c *Codec) CompressBytes(text []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.Compress(text, ccbitio.NewWriter(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExpandBytes returns the text of a code stream. Nothing is returned on
// error.
func (c *Codec) ExpandBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(2 * len(data))
	if _, err := c.Expand(ccbitio.NewReader(bytes.NewReader(data)), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressStream reads all of r as text and writes its code stream to w.
// Like ExpandStream, w receives nothing unless the whole text compresses.
func (c *Codec) CompressStream(r io.Reader, w io.Writer) (Stats, error) {
	text, err := ccbitio.NewReader(r).ReadText()
	if err != nil {
		return Stats{}, err
	}
	var buf bytes.Buffer
	st, err := c.Compress(text, ccbitio.NewWriter(&buf))
	if err != nil {
		return st, err
	}
	_, err = buf.WriteTo(w)
	return st, errors.Wrap(err, "cclzw.CompressStream")
}

// ExpandStream decodes the code stream in r and writes the text to w.
// Output is held back until the sentinel has been read, so w receives
// nothing from a corrupt or truncated stream.
func (c *Codec) ExpandStream(r io.Reader, w io.Writer) (Stats, error) {
	var buf bytes.Buffer
	st, err := c.Expand(ccbitio.NewReader(r), &buf)
	if err != nil {
		return st, err
	}
	_, err = buf.WriteTo(w)
	return st, errors.Wrap(err, "cclzw.ExpandStream")
}
