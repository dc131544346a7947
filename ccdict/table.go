package ccdict

import "fmt"

type span struct {
	off, n int
}

// Table maps codes back to strings. Entry bytes are appended to a single pool
// and never modified afterwards, so slices returned by Get stay valid for the
// life of the Table.
type Table struct {
	spans []span // n == 0 marks an empty slot
	pool  []byte
	size  int
}

// NewTable returns a Table with maxCodes slots, seeded with the base alphabet.
func NewTable(alphabet, maxCodes int) *Table {
	if alphabet < 1 || alphabet > 256 || maxCodes <= alphabet {
		panic(fmt.Sprintf("ccdict.NewTable: bad layout alphabet=%d maxCodes=%d", alphabet, maxCodes))
	}
	t := &Table{
		spans: make([]span, maxCodes),
		pool:  make([]byte, alphabet, alphabet+4*maxCodes),
	}
	for i := 0; i < alphabet; i++ {
		t.pool[i] = byte(i)
		t.spans[i] = span{off: i, n: 1}
	}
	t.size = alphabet
	return t
}

// Len .
func (t *Table) Len() int { return t.size }

// Full reports whether every code except the sentinel is taken.
func (t *Table) Full() bool { return t.size >= len(t.spans)-1 }

// Has .
func (t *Table) Has(code int) bool {
	return code >= 0 && code < len(t.spans) && t.spans[code].n > 0
}

// Get returns the string for code, or nil if code is not present.
// The result must not be modified.
func (t *Table) Get(code int) []byte {
	if !t.Has(code) {
		return nil
	}
	sp := t.spans[code]
	return t.pool[sp.off : sp.off+sp.n : sp.off+sp.n]
}

// Put stores a copy of s under code, replacing any previous string.
// It returns false, storing nothing, if code lies outside the table.
func (t *Table) Put(code int, s []byte) bool {
	if len(s) == 0 {
		panic("ccdict.Table.Put: empty string")
	}
	if code < 0 || code >= len(t.spans) {
		return false
	}
	if t.spans[code].n == 0 {
		t.size++
	}
	t.spans[code] = span{off: len(t.pool), n: len(s)}
	t.pool = append(t.pool, s...)
	return true
}
