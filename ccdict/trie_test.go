package ccdict

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestTrieSeeded(t *testing.T) {
	c := qt.New(t)

	tr := NewTrie(256, 512)
	c.Assert(tr.Len(), qt.Equals, 256)
	for i := 0; i < 256; i++ {
		c.Assert(tr.Lookup([]byte{byte(i)}), qt.Equals, i)
	}
	c.Assert(tr.Full(), qt.IsFalse)
}

func TestTrieLongestPrefix(t *testing.T) {
	c := qt.New(t)

	tr := NewTrie(256, 4096)
	c.Assert(tr.Insert([]byte("ab"), 257), qt.IsTrue)
	c.Assert(tr.Insert([]byte("abc"), 258), qt.IsTrue)
	c.Assert(tr.Insert([]byte("abd"), 259), qt.IsTrue)
	c.Assert(tr.Insert([]byte("ba"), 260), qt.IsTrue)

	text := []byte("abcabdabxba")
	tests := []struct {
		offset int
		n      int
		code   int
	}{
		{0, 3, 258},
		{3, 3, 259},
		{6, 2, 257},
		{8, 1, 'x'},
		{9, 2, 260},
		{10, 1, 'a'},
	}
	for _, test := range tests {
		n, code, ok := tr.LongestPrefix(text, test.offset)
		c.Assert(ok, qt.IsTrue)
		c.Assert(n, qt.Equals, test.n, qt.Commentf("offset %d", test.offset))
		c.Assert(code, qt.Equals, test.code, qt.Commentf("offset %d", test.offset))
	}

	_, _, ok := tr.LongestPrefix(text, len(text))
	c.Assert(ok, qt.IsFalse)
}

func TestTrieUnknownSymbol(t *testing.T) {
	c := qt.New(t)

	tr := NewTrie(128, 1024)
	_, _, ok := tr.LongestPrefix([]byte{'a', 0xc3}, 1)
	c.Assert(ok, qt.IsFalse)
	n, code, ok := tr.LongestPrefix([]byte{'a', 0xc3}, 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(n, qt.Equals, 1)
	c.Assert(code, qt.Equals, int('a'))
}

func TestTrieExtend(t *testing.T) {
	c := qt.New(t)

	tr := NewTrie(256, 4096)
	c.Assert(tr.Extend('t', 'o', 257), qt.IsTrue)
	c.Assert(tr.Extend(257, 'b', 258), qt.IsTrue)
	n, code, ok := tr.LongestPrefix([]byte("tobe"), 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(n, qt.Equals, 3)
	c.Assert(code, qt.Equals, 258)
	c.Assert(tr.Lookup([]byte("tob")), qt.Equals, 258)
	c.Assert(tr.Len(), qt.Equals, 258)
}

func TestTrieCapacity(t *testing.T) {
	c := qt.New(t)

	// 4 slots: 'a', 'b', the sentinel and one learned code.
	tr := NewTrie(2, 4)
	c.Assert(tr.Full(), qt.IsFalse)
	c.Assert(tr.Extend(0, 1, 3), qt.IsTrue)
	c.Assert(tr.Full(), qt.IsTrue)
	c.Assert(tr.Extend(1, 0, 3), qt.IsFalse)
	c.Assert(tr.Len(), qt.Equals, 3)

	n, code, ok := tr.LongestPrefix([]byte{0, 1, 1}, 0)
	c.Assert(ok, qt.IsTrue)
	c.Assert(n, qt.Equals, 2)
	c.Assert(code, qt.Equals, 3)
}

func TestTrieSentinelNeverAssigned(t *testing.T) {
	c := qt.New(t)

	tr := NewTrie(256, 4096)
	c.Assert(tr.Extend('a', 'a', 256), qt.IsFalse)
	c.Assert(tr.Extend('a', 'a', 4096), qt.IsFalse)
}

func TestTrieMisuse(t *testing.T) {
	c := qt.New(t)

	tr := NewTrie(256, 4096)
	tr.Insert([]byte("ab"), 257)
	c.Assert(func() { tr.Insert([]byte("ab"), 258) }, qt.PanicMatches, `.*already present`)
	c.Assert(func() { tr.Lookup([]byte("zz")) }, qt.PanicMatches, `.*not present`)
	c.Assert(func() { tr.Extend('a', 'c', 257) }, qt.PanicMatches, `.*already assigned`)
}
