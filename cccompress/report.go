package cccompress

import (
	"bytes"
	"fmt"
	"time"

	"CCText.com/cclzw"
	"CCText.com/ccutility"
)

// Result is one line of a Report.
type Result struct {
	Mode          byte
	OriginLen     int
	CompressedLen int
	Ratio         float64 // compressed size as a percentage of the original
	Elapsed       time.Duration
	Err           error
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%-12s err[%v]", ModeName(r.Mode), r.Err)
	}
	return fmt.Sprintf("%-12s %10d -> %10d  %7.2f%%  %v", ModeName(r.Mode), r.OriginLen, r.CompressedLen, r.Ratio, r.Elapsed)
}

// Report compresses src with every mode, checks that each one restores it,
// and returns the sizes. Container headers are not counted.
func Report(src []byte, cfg cclzw.Config) []Result {
	results := make([]Result, 0, Text+1)
	for mode := byte(Uncompressed); mode <= Text; mode++ {
		results = append(results, measure(src, mode, cfg))
	}
	return results
}

func measure(src []byte, mode byte, cfg cclzw.Config) Result {
	res := Result{Mode: mode, OriginLen: len(src)}
	codec, err := NewCodec(mode, cfg)
	if err != nil {
		res.Err = err
		return res
	}

	s := time.Now()
	dst, err := codec.Compress(src)
	if err != nil {
		res.Err = err
		return res
	}
	back, err := codec.Decompress(dst)
	res.Elapsed = time.Since(s)
	switch {
	case err != nil:
		res.Err = err
	case !bytes.Equal(back, src):
		res.Err = fmt.Errorf("Report[%v].round trip mismatch", ModeName(mode))
	}
	res.CompressedLen = len(dst)
	res.Ratio = ccutility.Ratio(len(src), len(dst))
	return res
}
