package ccutility

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestWriteReadBinary(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "a", "b", "out.bin")

	n, err := WriteBinary(path, []byte("abracadabra"))
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(11))

	got, err := ReadBinary(path)
	c.Assert(err, qt.IsNil)
	c.Assert(string(got), qt.Equals, "abracadabra")

	_, err = ReadBinary(filepath.Join(c.TempDir(), "missing"))
	c.Assert(err, qt.ErrorMatches, `ReadBinary\[.*\]\.err\[.*\]`)
}

func TestGetAllFileByExt(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()
	for _, name := range []string{"one.txt", "two.TXT", "three.md", "sub/four.txt"} {
		p := filepath.Join(dir, name)
		c.Assert(os.MkdirAll(filepath.Dir(p), 0o755), qt.IsNil)
		c.Assert(os.WriteFile(p, []byte(name), 0o644), qt.IsNil)
	}

	got, err := GetAllFileByExt(dir, ".txt", nil)
	c.Assert(err, qt.IsNil)
	sort.Strings(got)
	c.Assert(got, qt.DeepEquals, []string{
		filepath.Join(dir, "one.txt"),
		filepath.Join(dir, "sub", "four.txt"),
		filepath.Join(dir, "two.TXT"),
	})
}

func TestConversions(t *testing.T) {
	c := qt.New(t)
	c.Assert(BytesToInt64(Int64ToBytes(1<<40+7)), qt.Equals, int64(1<<40+7))
	c.Assert(Uint16ToBytes(256), qt.DeepEquals, []byte{1, 0})
	c.Assert(BytesToUint16([]byte{1, 0}), qt.Equals, uint16(256))
	c.Assert(Ratio(0, 10), qt.Equals, 0.0)
	c.Assert(Ratio(200, 50), qt.Equals, 25.0)
}
