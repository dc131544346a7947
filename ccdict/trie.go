// Package ccdict holds the two dictionary structures of the text codec: a
// prefix trie searched while compressing and a code table resolved while
// expanding. Both are seeded with one single-byte entry per symbol of the
// base alphabet, codes 0..R-1. Code R is the end-of-stream sentinel and is
// never stored.
package ccdict

import "fmt"

const (
	none   = -1
	vacant = -2
)

// Trie maps byte strings to codes. Nodes live in arenas indexed by code, so
// each code is also the node holding its string.
type Trie struct {
	alphabet int
	// parent is the code of the string minus its last byte, none for base
	// entries and vacant for unused slots.
	parent  []int32
	child   []int32 // first child
	sibling []int32 // next child of the same parent
	symbol  []byte  // last byte of the string
	size    int
}

// NewTrie returns a Trie with room for maxCodes codes, seeded with the base
// alphabet.
func NewTrie(alphabet, maxCodes int) *Trie {
	if alphabet < 1 || alphabet > 256 || maxCodes <= alphabet {
		panic(fmt.Sprintf("ccdict.NewTrie: bad layout alphabet=%d maxCodes=%d", alphabet, maxCodes))
	}
	t := &Trie{
		alphabet: alphabet,
		parent:   make([]int32, maxCodes),
		child:    make([]int32, maxCodes),
		sibling:  make([]int32, maxCodes),
		symbol:   make([]byte, maxCodes),
	}
	for i := range t.parent {
		t.parent[i] = vacant
		t.child[i] = none
		t.sibling[i] = none
	}
	for i := 0; i < alphabet; i++ {
		t.parent[i] = none
		t.symbol[i] = byte(i)
	}
	t.size = alphabet
	return t
}

// Len returns the number of stored strings.
func (t *Trie) Len() int { return t.size }

// Full reports whether every code except the sentinel is taken.
func (t *Trie) Full() bool { return t.size >= len(t.parent)-1 }

func (t *Trie) has(code int) bool {
	return code >= 0 && code < len(t.parent) && t.parent[code] != vacant
}

func (t *Trie) find(node int32, b byte) int32 {
	for c := t.child[node]; c != none; c = t.sibling[c] {
		if t.symbol[c] == b {
			return c
		}
	}
	return none
}

// Extend stores the string of prefix followed by b under code. It does
// nothing and returns false once the trie is full or code lies outside the
// table. The extended string must not be present already.
func (t *Trie) Extend(prefix int, b byte, code int) bool {
	if t.Full() || code <= t.alphabet || code >= len(t.parent) {
		return false
	}
	if !t.has(prefix) {
		panic(fmt.Sprintf("ccdict.Trie.Extend: unknown prefix code %d", prefix))
	}
	if t.parent[code] != vacant {
		panic(fmt.Sprintf("ccdict.Trie.Extend: code %d already assigned", code))
	}
	t.parent[code] = int32(prefix)
	t.symbol[code] = b
	t.sibling[code] = t.child[prefix]
	t.child[prefix] = int32(code)
	t.size++
	return true
}

// Insert stores s under code. s without its last byte must be present and s
// itself must not be.
func (t *Trie) Insert(s []byte, code int) bool {
	if len(s) < 2 {
		panic(fmt.Sprintf("ccdict.Trie.Insert: %q is a base entry", s))
	}
	prefix := t.Lookup(s[:len(s)-1])
	if t.find(int32(prefix), s[len(s)-1]) != none {
		panic(fmt.Sprintf("ccdict.Trie.Insert: %q already present", s))
	}
	return t.Extend(prefix, s[len(s)-1], code)
}

// Lookup returns the code of s, which must be present.
func (t *Trie) Lookup(s []byte) int {
	if len(s) == 0 || int(s[0]) >= t.alphabet {
		panic(fmt.Sprintf("ccdict.Trie.Lookup: %q not present", s))
	}
	node := int32(s[0])
	for _, b := range s[1:] {
		if node = t.find(node, b); node == none {
			panic(fmt.Sprintf("ccdict.Trie.Lookup: %q not present", s))
		}
	}
	return int(node)
}

// LongestPrefix returns the length and code of the longest stored string that
// prefixes text[offset:]. ok is false when offset is at the end of text or
// text[offset] lies outside the base alphabet.
func (t *Trie) LongestPrefix(text []byte, offset int) (n, code int, ok bool) {
	if offset < 0 || offset >= len(text) || int(text[offset]) >= t.alphabet {
		return 0, 0, false
	}
	node := int32(text[offset])
	n = 1
	for offset+n < len(text) {
		c := t.find(node, text[offset+n])
		if c == none {
			break
		}
		node = c
		n++
	}
	return n, int(node), true
}
