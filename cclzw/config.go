package cclzw

// MaxWidth bounds the code width so the dictionary arenas stay a few
// megabytes at most.
const MaxWidth = 20

// Config holds the wire constants. Encoder and decoder of one stream must use
// the same Config.
type Config struct {
	// Alphabet is R, the number of single-byte base entries. Input bytes
	// must be below it.
	Alphabet int
	// Width is the number of bits in every code.
	Width int
}

// DefaultConfig covers the full byte range with 12-bit codes.
func DefaultConfig() Config {
	return Config{Alphabet: 256, Width: 12}
}

// MaxCodes is 2^Width, the size of the code space.
func (c Config) MaxCodes() int { return 1 << c.Width }

// EOF is the sentinel code that terminates a stream.
func (c Config) EOF() int { return c.Alphabet }

// Validate rejects layouts without room for the base alphabet, the sentinel
// and at least one learned code.
func (c Config) Validate() error {
	switch {
	case c.Alphabet < 2 || c.Alphabet > 256:
		return &ConfigurationError{Field: "alphabet", Value: c.Alphabet, Reason: "must be in [2, 256]"}
	case c.Width < 1 || c.Width > MaxWidth:
		return &ConfigurationError{Field: "width", Value: c.Width, Reason: "must be in [1, 20]"}
	case c.MaxCodes() < c.Alphabet+2:
		return &ConfigurationError{Field: "width", Value: c.Width, Reason: "too narrow for the alphabet, the sentinel and one learned code"}
	}
	return nil
}
