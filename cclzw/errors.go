package cclzw

import "fmt"

// ConfigurationError reports unusable wire constants. It is returned before
// any stream is touched.
type ConfigurationError struct {
	Field  string
	Value  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("cclzw: invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

// CorruptStreamError reports a code the decoder cannot resolve.
type CorruptStreamError struct {
	Index int64 // position of the code in the stream, from 0
	Code  uint64
	Next  int // next code the decoder would have assigned
}

func (e *CorruptStreamError) Error() string {
	return fmt.Sprintf("cclzw: corrupt stream: code %d at index %d cannot be resolved (next code %d)", e.Code, e.Index, e.Next)
}

// TruncatedStreamError reports a stream that ended before its sentinel.
type TruncatedStreamError struct {
	Index int64 // number of complete codes read
	Err   error
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("cclzw: stream truncated after %d codes: %v", e.Index, e.Err)
}

func (e *TruncatedStreamError) Unwrap() error { return e.Err }

// AlphabetError reports an input byte with no base entry.
type AlphabetError struct {
	Offset   int
	Symbol   byte
	Alphabet int
}

func (e *AlphabetError) Error() string {
	return fmt.Sprintf("cclzw: byte 0x%02x at offset %d is outside the %d-symbol alphabet", e.Symbol, e.Offset, e.Alphabet)
}
