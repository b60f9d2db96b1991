// dorado-split runs the duplex split engine over a stream of
// newline-delimited JSON Reads, writing one JSON Read per line for every
// subread it emits.
//
// Usage: dorado-split [-workers N] [-queue N] <input> <output>
//
// Either path may be "-" for stdin/stdout.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"io"
	"os"
	"runtime"

	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/splitnode"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	workersFlag = flag.Int("workers", runtime.NumCPU(), "number of split-finder worker goroutines")
	queueFlag   = flag.Int("queue", 64, "bounded queue capacity (max_reads)")
	simplexFlag = flag.Bool("simplex", false, "run only the PORE_ADAPTER strategy")
	debugFlag   = flag.Bool("debug", false, "log full alignment traces at debug level")
)

// jsonLineSink writes every Read variant it receives to enc as one
// compact JSON object per line; non-Read variants are dropped, since this
// harness only round-trips Reads.
type jsonLineSink struct {
	enc *json.Encoder
}

func (s *jsonLineSink) PushMessage(m splitnode.Message) {
	if m.Kind != splitnode.KindRead {
		return
	}
	if err := s.enc.Encode(m.Read); err != nil {
		log.Panicf("dorado-split: write subread %s: %v", m.Read.ReadID, err)
	}
}

func (s *jsonLineSink) Close() {}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	flag.Usage = func() {
		os.Stderr.WriteString("Usage: dorado-split [flags] <input> <output>\n")
		flag.PrintDefaults()
	}
	shutdown := grail.Init()
	defer shutdown()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inPath, outPath := args[0], args[1]
	ctx := vcontext.Background()

	var in io.Reader
	if inPath == "-" {
		in = os.Stdin
	} else {
		f, err := file.Open(ctx, inPath)
		if err != nil {
			log.Panicf("dorado-split: open %s: %v", inPath, err)
		}
		in = f.Reader(ctx)
	}

	var out io.Writer
	if outPath == "-" {
		out = os.Stdout
	} else {
		w, err := file.Create(ctx, outPath)
		if err != nil {
			log.Panicf("dorado-split: create %s: %v", outPath, err)
		}
		defer func() {
			if err := w.Close(ctx); err != nil {
				log.Panicf("dorado-split: close %s: %v", outPath, err)
			}
		}()
		out = w.Writer(ctx)
	}

	settings := duplexread.DefaultSettings()
	settings.SimplexMode = *simplexFlag
	settings.Debug = *debugFlag

	sink := &jsonLineSink{enc: json.NewEncoder(out)}
	node := splitnode.NewNode(sink, settings, *workersFlag, *queueFlag)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 1<<20), 1<<28)

	nReads := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var r duplexread.Read
		if err := json.Unmarshal(line, &r); err != nil {
			log.Panicf("dorado-split: parse read %d: %v", nReads, err)
		}
		node.PushMessage(splitnode.ReadMessage(&r))
		nReads++
	}
	if err := scanner.Err(); err != nil {
		log.Panicf("dorado-split: read %s: %v", inPath, err)
	}
	node.Close()
	log.Printf("dorado-split: processed %d input reads", nReads)
}
