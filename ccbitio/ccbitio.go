// Package ccbitio reads and writes fixed-width codes, most significant bit
// first, on top of a byte stream.
package ccbitio

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Reader .
type Reader struct {
	br *bitio.Reader
}

// NewReader returns a Reader consuming r. r is buffered if it is not an
// io.ByteReader already.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bitio.NewReader(r)}
}

// ReadBits reads one unsigned value of width bits.
// At the end of the underlying stream the returned error wraps io.EOF.
func (r *Reader) ReadBits(width uint8) (uint64, error) {
	v, err := r.br.ReadBits(width)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return v, nil
}

// ReadText returns every remaining byte of the stream.
func (r *Reader) ReadText() ([]byte, error) {
	b, err := io.ReadAll(r.br)
	if err != nil {
		return nil, errors.Wrap(err, "ccbitio.ReadText")
	}
	return b, nil
}

// Writer .
// Nothing reaches the underlying writer's final byte until Close.
type Writer struct {
	bw *bitio.Writer
}

// NewWriter .
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bitio.NewWriter(w)}
}

// WriteBits writes the low width bits of v.
func (w *Writer) WriteBits(v uint64, width uint8) error {
	return errors.WithStack(w.bw.WriteBits(v, width))
}

// WriteBytes .
func (w *Writer) WriteBytes(b []byte) error {
	_, err := w.bw.Write(b)
	return errors.WithStack(err)
}

// Write implements io.Writer.
func (w *Writer) Write(b []byte) (int, error) {
	n, err := w.bw.Write(b)
	return n, errors.WithStack(err)
}

// Close zero-pads the trailing partial byte and flushes it.
// The underlying writer is not closed.
func (w *Writer) Close() error {
	return errors.Wrap(w.bw.Close(), "ccbitio.Close")
}
