// Package cclzw implements an LZW text codec with fixed-width codes.
//
// The stream is a sequence of Width-bit codes, most significant bit first,
// closed by the sentinel code R and zero-padded to a byte boundary. Codes
// 0..R-1 stand for single bytes. Both directions learn one entry per step,
// assigning codes R+1, R+2, ... in the same order, and freeze for good once
// the code space is used up.
package cclzw

import (
	"io"

	"CCText.com/ccdict"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("cc/lzw")

// CodeWriter is the sink Compress writes codes to.
type CodeWriter interface {
	WriteBits(v uint64, width uint8) error
	Close() error
}

// CodeReader is the source Expand reads codes from.
type CodeReader interface {
	ReadBits(width uint8) (uint64, error)
}

// Stats describes one run.
type Stats struct {
	Codes   int64 // codes written or read, sentinel included
	Learned int   // entries added beyond the base alphabet
	Frozen  bool  // the code space was exhausted
}

// Codec .
type Codec struct {
	cfg Config
}

// New returns a Codec for cfg, or a *ConfigurationError.
func New(cfg Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Codec{cfg: cfg}, nil
}

// Config .
func (c *Codec) Config() Config { return c.cfg }

// Compress writes the code stream for text to w and closes w.
func (c *Codec) Compress(text []byte, w CodeWriter) (Stats, error) {
	var st Stats
	width := uint8(c.cfg.Width)
	maxCodes := c.cfg.MaxCodes()
	trie := ccdict.NewTrie(c.cfg.Alphabet, maxCodes)
	next := c.cfg.EOF() + 1

	for i := 0; i < len(text); {
		n, code, ok := trie.LongestPrefix(text, i)
		if !ok {
			return st, &AlphabetError{Offset: i, Symbol: text[i], Alphabet: c.cfg.Alphabet}
		}
		if err := w.WriteBits(uint64(code), width); err != nil {
			return st, errors.Wrap(err, "cclzw.Compress")
		}
		st.Codes++
		if next < maxCodes && i+n < len(text) {
			trie.Extend(code, text[i+n], next)
			next++
		}
		i += n
	}
	if err := w.WriteBits(uint64(c.cfg.EOF()), width); err != nil {
		return st, errors.Wrap(err, "cclzw.Compress")
	}
	st.Codes++
	if err := w.Close(); err != nil {
		return st, errors.Wrap(err, "cclzw.Compress")
	}

	st.Learned = next - c.cfg.EOF() - 1
	st.Frozen = next >= maxCodes
	log.Debugf("compress: in[%v] codes[%v] learned[%v] frozen[%v]", len(text), st.Codes, st.Learned, st.Frozen)
	return st, nil
}

// Expand decodes the code stream from r and writes the text to w.
// It stops at the sentinel; anything after it is left unread.
func (c *Codec) Expand(r CodeReader, w io.Writer) (Stats, error) {
	var st Stats
	width := uint8(c.cfg.Width)
	maxCodes := c.cfg.MaxCodes()
	eof := uint64(c.cfg.EOF())
	table := ccdict.NewTable(c.cfg.Alphabet, maxCodes)
	next := c.cfg.EOF() + 1

	read := func() (uint64, error) {
		code, err := r.ReadBits(width)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return 0, &TruncatedStreamError{Index: st.Codes, Err: err}
			}
			return 0, errors.Wrap(err, "cclzw.Expand")
		}
		st.Codes++
		return code, nil
	}

	code, err := read()
	if err != nil {
		return st, err
	}
	if code == eof {
		log.Debugf("expand: empty stream")
		return st, nil
	}
	if code >= uint64(c.cfg.Alphabet) {
		return st, &CorruptStreamError{Index: 0, Code: code, Next: next}
	}

	var out int
	var scratch []byte
	prefix := table.Get(int(code))
	for {
		if _, err := w.Write(prefix); err != nil {
			return st, errors.Wrap(err, "cclzw.Expand")
		}
		out += len(prefix)

		if code, err = read(); err != nil {
			return st, err
		}
		if code == eof {
			break
		}

		var cur []byte
		switch {
		case code < uint64(maxCodes) && table.Has(int(code)):
			cur = table.Get(int(code))
			if next < maxCodes {
				scratch = append(append(scratch[:0], prefix...), cur[0])
				table.Put(next, scratch)
				next++
			}
		case code == uint64(next) && next < maxCodes:
			// The encoder assigned this code on the step that produced it.
			scratch = append(append(scratch[:0], prefix...), prefix[0])
			table.Put(next, scratch)
			next++
			cur = table.Get(int(code))
		default:
			return st, &CorruptStreamError{Index: st.Codes - 1, Code: code, Next: next}
		}
		prefix = cur
	}

	st.Learned = next - c.cfg.EOF() - 1
	st.Frozen = next >= maxCodes
	log.Debugf("expand: out[%v] codes[%v] learned[%v] frozen[%v]", out, st.Codes, st.Learned, st.Frozen)
	return st, nil
}
