package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"CCText.com/cccompress"
	"CCText.com/cclzw"
	"CCText.com/ccutility"
	"github.com/op/go-logging"
)

const progName = "cctext"

var log = logging.MustGetLogger("cc")

var (
	bCompress   bool
	bDecompress bool
	bReport     bool
	bOverWrite  bool
	bVerbose    bool
	iMode       int
	iWorkerNum  int
	iAlphabet   int
	iWidth      int
	sTarget     string
	sExt        string
)

// Op is the operation selected on the command line.
type Op int

const (
	OpNone Op = iota
	OpCompress
	OpDecompress
	OpReport
	OpCompressStream // "-": stdin to stdout, bare code stream
	OpExpandStream   // "+"
)

func init() {
	def := cclzw.DefaultConfig()

	flag.BoolVar(&bCompress, "c", false, "Compress")
	flag.BoolVar(&bDecompress, "d", false, "Decompress")
	flag.BoolVar(&bReport, "s", false, "Report the compression ratio of every mode on the target file")
	flag.BoolVar(&bOverWrite, "w", false, "Overwrite origin files,otherwise rename origin files to .bak")
	flag.BoolVar(&bVerbose, "v", false, "Debug logging")
	flag.IntVar(&iMode, "m", cccompress.Text, "Compress mode [0,7](none,gzip,zlib,bzip2,lzw,lz4,zstd,text)")
	flag.IntVar(&iWorkerNum, "n", 10, "Number of workers when compress/decompress folders")
	flag.IntVar(&iAlphabet, "r", def.Alphabet, "Text mode: base alphabet size")
	flag.IntVar(&iWidth, "b", def.Width, "Text mode: bits per code")
	flag.StringVar(&sTarget, "t", "", "Target path")
	flag.StringVar(&sExt, "e", "", "Ext")

	flag.Usage = useAge
}

// useAge .
func useAge() {
	cmdStr := "\n*****************************************\n"
	cmdStr += "Usage:\n"
	cmdStr += "  " + progName + " [flags] -c|-d|-s -t path\n"
	cmdStr += "  " + progName + " [-r n] [-b n] - < text > codes\n"
	cmdStr += "  " + progName + " [-r n] [-b n] + < codes > text\n"
	cmdStr += "*****************************************\n"
	fmt.Fprint(os.Stderr, cmdStr)

	flag.PrintDefaults()
}

func startLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatter := logging.MustStringFormatter("%{level:8s} %{module:-12s} | %{message}")
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveled.SetLevel(logging.INFO, "")
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	}
	logging.SetBackend(leveled)
}

func selectOp(args []string) Op {
	if len(args) > 0 {
		switch args[0] {
		case "-":
			return OpCompressStream
		case "+":
			return OpExpandStream
		}
		return OpNone
	}
	switch {
	case bCompress:
		return OpCompress
	case bDecompress:
		return OpDecompress
	case bReport:
		return OpReport
	}
	return OpNone
}

func main() {
	flag.Parse()
	startLogging(bVerbose)

	op := selectOp(flag.Args())
	if op == OpNone {
		useAge()
		os.Exit(2)
	}

	cfg := cclzw.Config{Alphabet: iAlphabet, Width: iWidth}
	if err := cfg.Validate(); err != nil {
		log.Error(err)
		os.Exit(2)
	}

	s := time.Now()
	total, err := run(op, cfg)
	cost := time.Since(s)
	if err != nil {
		log.Errorf("Total[%v].failed...cost[%v].err[%v]", total, cost, err)
		os.Exit(1)
	}
	log.Infof("Total[%v].finished!...cost[%v]", total, cost)
}

func run(op Op, cfg cclzw.Config) (int64, error) {
	switch op {
	case OpCompressStream, OpExpandStream:
		codec, err := cclzw.New(cfg)
		if err != nil {
			return 0, err
		}
		var st cclzw.Stats
		if op == OpCompressStream {
			st, err = codec.CompressStream(os.Stdin, os.Stdout)
		} else {
			st, err = codec.ExpandStream(os.Stdin, os.Stdout)
		}
		log.Debugf("codes[%v].learned[%v].frozen[%v]", st.Codes, st.Learned, st.Frozen)
		return st.Codes, err
	case OpReport:
		src, err := ccutility.ReadBinary(sTarget)
		if err != nil {
			return 0, err
		}
		for _, res := range cccompress.Report(src, cfg) {
			fmt.Println(res)
		}
		return int64(len(src)), nil
	}

	fi, err := os.Stat(sTarget)
	if err != nil {
		return 0, err
	}
	if fi.IsDir() {
		if op == OpCompress {
			return cccompress.CompressFolders(sTarget, sExt, iMode, cfg, bOverWrite, iWorkerNum)
		}
		return cccompress.DecompressFolders(sTarget, sExt, bOverWrite, iWorkerNum)
	}
	if op == OpCompress {
		return cccompress.CompressFile(sTarget, iMode, cfg, bOverWrite)
	}
	return cccompress.DecompressFile(sTarget, bOverWrite)
}
