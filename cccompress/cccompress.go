package cccompress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"CCText.com/cclzw"
	"CCText.com/ccutility"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cc/compress")

var cccompressFormat = [...]byte{0x00, 0x00, 0x43, 0x54}
var cccompressVersion = []byte{'1', '0', '2', '1', '0', '1', '7'}

// TagCCHeaderInfo .
type TagCCHeaderInfo struct {
	Format        [4]byte // 0x00 0x00 0x43 0x54
	Version       [7]byte // 1021017
	CompressMode  [1]byte // 0=Uncompressed、1=GZip、2=Zlib、3=Bz2、4=Lzw、5=Lz4、6=Zstd、7=Text
	Alphabet      [2]byte // Text only: base alphabet size, big endian
	Width         [1]byte // Text only: bits per code
	CompressedLen [8]byte // Length of compressed data.range:[0x00,0xFFFFFFFFFFFFFFFF]
	OriginLen     [8]byte // Length before data compression.range:[0x00,0xFFFFFFFFFFFFFFFF]
}

// IsValidFormat .
func IsValidFormat(s []byte) bool {
	return bytes.Equal(s, cccompressFormat[:])
}

// IsValid .
func (p *TagCCHeaderInfo) IsValid() bool {
	if p == nil {
		return false
	}
	return IsValidFormat(p.Format[:]) && IsValidCompressMode(p.CompressMode[0])
}

// Config returns the wire constants recorded for a Text payload.
func (p *TagCCHeaderInfo) Config() cclzw.Config {
	return cclzw.Config{
		Alphabet: int(ccutility.BytesToUint16(p.Alphabet[:])),
		Width:    int(p.Width[0]),
	}
}

// Compress wraps src, compressed with mode, in a header. cfg only applies to
// Text.
func Compress(src []byte, compressMode byte, cfg cclzw.Config) ([]byte, error) {
	if src == nil {
		src = []byte{}
	}

	// if the header format is correct, we ignore it
	if _, err := getHeader(src); err == nil {
		return nil, fmt.Errorf("Compress.header exists.ignore it")
	}

	codec, err := NewCodec(compressMode, cfg)
	if err != nil {
		return nil, err
	}
	dst, err := codec.Compress(src)
	if err != nil {
		return nil, fmt.Errorf("Compress[%v].err[%w]", ModeName(compressMode), err)
	}

	header := &TagCCHeaderInfo{
		Format:       cccompressFormat,
		CompressMode: [...]byte{compressMode},
	}
	copy(header.Version[:], cccompressVersion)
	if compressMode == Text {
		copy(header.Alphabet[:], ccutility.Uint16ToBytes(uint16(cfg.Alphabet)))
		header.Width[0] = byte(cfg.Width)
	}
	copy(header.CompressedLen[:], ccutility.Int64ToBytes(int64(len(dst))))
	copy(header.OriginLen[:], ccutility.Int64ToBytes(int64(len(src))))

	buf := new(bytes.Buffer)
	buf.Grow(binary.Size(header) + len(dst))
	if err = binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("Compress.binary.Write.err[%w]", err)
	}
	buf.Write(dst)

	return buf.Bytes(), nil
}

// Decompress .
func Decompress(src []byte) (header *TagCCHeaderInfo, ret []byte, err error) {
	header, err = getHeader(src)
	if err != nil {
		return nil, nil, err
	}

	mode := header.CompressMode[0]
	codec, err := NewCodec(mode, header.Config())
	if err != nil {
		return nil, nil, err
	}

	dst, err := codec.Decompress(src[binary.Size(header):])
	if err != nil {
		return nil, nil, fmt.Errorf("Decompress[%v].err[%w]", ModeName(mode), err)
	}

	if want := ccutility.BytesToInt64(header.OriginLen[:]); int64(len(dst)) != want {
		return nil, nil, fmt.Errorf("Decompress[%v].size[%v/%v].no match", ModeName(mode), len(dst), want)
	}

	return header, dst, nil
}

// getHeader .
func getHeader(src []byte) (header *TagCCHeaderInfo, err error) {
	header = &TagCCHeaderInfo{}
	if len(src) < binary.Size(header) {
		return nil, fmt.Errorf("getHeader.src.short")
	}

	if err := binary.Read(bytes.NewReader(src), binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("getHeader.Read.err[%w]", err)
	}

	if !header.IsValid() {
		return nil, fmt.Errorf("getHeader.header.IsValid.false")
	}

	l := ccutility.BytesToInt64(header.CompressedLen[:])

	bodySize := len(src) - binary.Size(header)
	if int(l) != bodySize {
		return nil, fmt.Errorf("getHeader.size[%v/%v].no match", l, bodySize)
	}

	return header, nil
}

// CompressFile compresses filePath in place, keeping the original as .bak
// unless bOverWrite is set.
func CompressFile(filePath string, compressMode int, cfg cclzw.Config, bOverWrite bool) (dlen int64, err error) {
	src, err := ccutility.ReadBinary(filePath)
	if err != nil {
		return 0, fmt.Errorf("CompressFile[%v].ReadBinary.err[%w]", filePath, err)
	}
	dst, err := Compress(src, byte(compressMode), cfg)
	if err != nil {
		return 0, fmt.Errorf("CompressFile[%v].Compress.err[%w]", filePath, err)
	}
	if err = keepOrigin(filePath, bOverWrite); err != nil {
		return 0, err
	}
	log.Debugf("CompressFile[%v].mode[%v].size[%v->%v]", filePath, ModeName(byte(compressMode)), len(src), len(dst))
	return ccutility.WriteBinary(filePath, dst)
}

// DecompressFile .
func DecompressFile(filePath string, bOverWrite bool) (dlen int64, err error) {
	src, err := ccutility.ReadBinary(filePath)
	if err != nil {
		return 0, fmt.Errorf("DecompressFile[%v].ReadBinary.err[%w]", filePath, err)
	}
	_, dst, err := Decompress(src)
	if err != nil {
		return 0, fmt.Errorf("DecompressFile[%v].Decompress.err[%w]", filePath, err)
	}
	if err = keepOrigin(filePath, bOverWrite); err != nil {
		return 0, err
	}
	return ccutility.WriteBinary(filePath, dst)
}

func keepOrigin(filePath string, bOverWrite bool) error {
	if bOverWrite {
		return nil
	}
	if err := os.Rename(filePath, filePath+".bak"); err != nil {
		return fmt.Errorf("keepOrigin[%v].Rename.err[%w]", filePath, err)
	}
	return nil
}

// CompressFolders .
func CompressFolders(folders string, ext string, compressMode int, cfg cclzw.Config, bOverWrite bool, iWorkerNum int) (successed int64, err error) {
	return eachFile(folders, ext, iWorkerNum, func(f string) error {
		_, err := CompressFile(f, compressMode, cfg, bOverWrite)
		return err
	})
}

// DecompressFolders .
func DecompressFolders(folders string, ext string, bOverWrite bool, iWorkerNum int) (successed int64, err error) {
	return eachFile(folders, ext, iWorkerNum, func(f string) error {
		_, err := DecompressFile(f, bOverWrite)
		return err
	})
}

// eachFile runs fn on every file under folders ending in ext, with iWorkerNum
// workers. It returns the number of successes and the first failure.
func eachFile(folders string, ext string, iWorkerNum int, fn func(string) error) (successed int64, err error) {
	allFile, err := ccutility.GetAllFileByExt(folders, ext, nil)
	if err != nil {
		return 0, err
	}
	if iWorkerNum > len(allFile) {
		iWorkerNum = len(allFile)
	}
	if iWorkerNum < 1 {
		iWorkerNum = 1
	}

	ch := make(chan string)
	var wg sync.WaitGroup
	var lock sync.Mutex

	for i := 0; i < iWorkerNum; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range ch {
				ferr := fn(f)
				lock.Lock()
				if ferr == nil {
					successed++
				} else {
					log.Errorf("f[%v].err=%v", f, ferr)
					if err == nil {
						err = ferr
					}
				}
				lock.Unlock()
			}
		}()
	}
	for _, f := range allFile {
		ch <- f
	}
	close(ch)
	wg.Wait()
	return successed, err
}
