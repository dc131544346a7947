package ccutility

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cc/utility")

// GetAllFileByExt appends to s every regular file under pathname whose name
// ends in ext, case-insensitively.
func GetAllFileByExt(pathname string, ext string, s []string) ([]string, error) {
	rd, err := os.ReadDir(pathname)
	if err != nil {
		log.Errorf("GetAllFileByExt.ReadDir[%v].err[%v]", pathname, err)
		return s, err
	}
	for _, fi := range rd {
		fullName := filepath.Join(pathname, fi.Name())
		if fi.IsDir() {
			s, err = GetAllFileByExt(fullName, ext, s)
			if err != nil {
				return s, err
			}
		} else if strings.HasSuffix(strings.ToLower(fi.Name()), strings.ToLower(ext)) {
			s = append(s, fullName)
		}
	}
	return s, nil
}

// ReadBinary .
func ReadBinary(filePath string) ([]byte, error) {
	b, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("ReadBinary[%v].err[%w]", filePath, err)
	}
	return b, nil
}

// WriteBinary creates filePath, and its directory if needed, holding src.
func WriteBinary(filePath string, src []byte) (int64, error) {
	dirs := filepath.Dir(filePath)
	if err := os.MkdirAll(dirs, os.ModePerm); err != nil {
		log.Errorf("WriteBinary.MkdirAll[%v].err[%v]", dirs, err)
		return 0, fmt.Errorf("WriteBinary.MkdirAll[%v].err[%w]", dirs, err)
	}

	fs, err := os.Create(filePath)
	if err != nil {
		log.Errorf("WriteBinary.Create[%v].err[%v]", filePath, err)
		return 0, fmt.Errorf("WriteBinary.Create[%v].err[%w]", filePath, err)
	}

	n, err := fs.Write(src)
	if err != nil {
		fs.Close()
		log.Errorf("WriteBinary.Write[%v].err[%v]", filePath, err)
		return 0, fmt.Errorf("WriteBinary.Write[%v].err[%w]", filePath, err)
	}

	if err = fs.Close(); err != nil {
		log.Errorf("WriteBinary.Close[%v].err[%v]", filePath, err)
		return 0, fmt.Errorf("WriteBinary.Close[%v].err[%w]", filePath, err)
	}

	return int64(n), nil
}

// Ratio returns compressed as a percentage of origin; 0 for empty input.
func Ratio(origin, compressed int) float64 {
	if origin == 0 {
		return 0
	}
	return 100 * float64(compressed) / float64(origin)
}

// Int64ToBytes .
func Int64ToBytes(i int64) []byte {
	var buf = make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(i))
	return buf
}

// BytesToInt64 .
func BytesToInt64(buf []byte) int64 {
	return int64(binary.BigEndian.Uint64(buf))
}

// Uint16ToBytes .
func Uint16ToBytes(i uint16) []byte {
	var buf = make([]byte, 2)
	binary.BigEndian.PutUint16(buf, i)
	return buf
}

// BytesToUint16 .
func BytesToUint16(buf []byte) uint16 {
	return binary.BigEndian.Uint16(buf)
}
