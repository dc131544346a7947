package cccompress

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"CCText.com/cclzw"
	qt "github.com/frankban/quicktest"
	"github.com/op/go-logging"
)

var sample = []byte(strings.Repeat("Twas brillig, and the slithy toves did gyre and gimble in the wabe. ", 30))

func TestMain(m *testing.M) {
	logging.SetLevel(logging.CRITICAL, "")
	os.Exit(m.Run())
}

func TestCodecs(t *testing.T) {
	for mode := byte(Uncompressed); mode <= Text; mode++ {
		t.Run(ModeName(mode), func(t *testing.T) {
			c := qt.New(t)
			codec, err := NewCodec(mode, cclzw.DefaultConfig())
			c.Assert(err, qt.IsNil)
			dst, err := codec.Compress(sample)
			c.Assert(err, qt.IsNil)
			back, err := codec.Decompress(dst)
			c.Assert(err, qt.IsNil)
			c.Assert(string(back), qt.Equals, string(sample))
		})
	}
}

func TestNewCodecUnknownMode(t *testing.T) {
	c := qt.New(t)
	_, err := NewCodec(Text+1, cclzw.DefaultConfig())
	c.Assert(err, qt.ErrorMatches, `NewCodec\[8\]\.unknown mode`)
	c.Assert(ModeName(Text+1), qt.Equals, "mode(8)")
}

func TestCompressDecompress(t *testing.T) {
	cfg := cclzw.Config{Alphabet: 128, Width: 10}
	for _, mode := range []byte{Uncompressed, Bz2, Zstd, Text} {
		t.Run(ModeName(mode), func(t *testing.T) {
			c := qt.New(t)
			dst, err := Compress(sample, mode, cfg)
			c.Assert(err, qt.IsNil)

			header, back, err := Decompress(dst)
			c.Assert(err, qt.IsNil)
			c.Assert(header.CompressMode[0], qt.Equals, mode)
			c.Assert(string(back), qt.Equals, string(sample))
			if mode == Text {
				c.Assert(header.Config(), qt.Equals, cfg)
			}

			_, err = Compress(dst, mode, cfg)
			c.Assert(err, qt.ErrorMatches, `Compress\.header exists.*`)
		})
	}
}

func TestDecompressTextErrors(t *testing.T) {
	c := qt.New(t)
	dst, err := Compress(sample, Text, cclzw.DefaultConfig())
	c.Assert(err, qt.IsNil)

	// Corrupt the first code, right after the 31-byte header, so it points
	// past the base alphabet.
	bad := append([]byte(nil), dst...)
	bad[31] = 0xff
	_, _, err = Decompress(bad)
	var ce *cclzw.CorruptStreamError
	c.Assert(errors.As(err, &ce), qt.IsTrue, qt.Commentf("err %v", err))

	// A header announcing an unusable width.
	bad = append([]byte(nil), dst...)
	bad[14] = 8
	_, _, err = Decompress(bad)
	var cfgErr *cclzw.ConfigurationError
	c.Assert(errors.As(err, &cfgErr), qt.IsTrue, qt.Commentf("err %v", err))
}

func TestDecompressBadHeader(t *testing.T) {
	c := qt.New(t)
	_, _, err := Decompress([]byte("short"))
	c.Assert(err, qt.ErrorMatches, `getHeader\.src\.short`)

	dst, err := Compress(sample, GZip, cclzw.DefaultConfig())
	c.Assert(err, qt.IsNil)
	_, _, err = Decompress(dst[:len(dst)-1])
	c.Assert(err, qt.ErrorMatches, `getHeader\.size.*no match`)
}

func TestFiles(t *testing.T) {
	c := qt.New(t)
	dir := c.TempDir()
	names := []string{"a.txt", "b.txt", "sub/c.txt", "skip.log"}
	for _, name := range names {
		p := filepath.Join(dir, name)
		c.Assert(os.MkdirAll(filepath.Dir(p), 0o755), qt.IsNil)
		c.Assert(os.WriteFile(p, append([]byte(name+": "), sample...), 0o644), qt.IsNil)
	}

	n, err := CompressFolders(dir, ".txt", Text, cclzw.DefaultConfig(), true, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(3))

	packed, err := os.ReadFile(filepath.Join(dir, "sub", "c.txt"))
	c.Assert(err, qt.IsNil)
	c.Assert(len(packed) < len(sample), qt.IsTrue)

	n, err = DecompressFolders(dir, ".txt", false, 4)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(3))

	for _, name := range names[:3] {
		got, err := os.ReadFile(filepath.Join(dir, name))
		c.Assert(err, qt.IsNil)
		c.Assert(string(got), qt.Equals, name+": "+string(sample))
		_, err = os.Stat(filepath.Join(dir, name+".bak"))
		c.Assert(err, qt.IsNil)
	}
}

func TestReport(t *testing.T) {
	c := qt.New(t)
	results := Report(sample, cclzw.DefaultConfig())
	c.Assert(results, qt.HasLen, int(Text)+1)
	for _, res := range results {
		c.Assert(res.Err, qt.IsNil, qt.Commentf("%v", res))
		c.Assert(res.OriginLen, qt.Equals, len(sample))
	}
	text := results[Text]
	c.Assert(text.Ratio < 100, qt.IsTrue)
	c.Assert(results[Uncompressed].Ratio, qt.Equals, 100.0)
}
