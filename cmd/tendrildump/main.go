// Package main provides a command-line utility that streams a file (or
// stdin) through a UTF-8 validating sink and reports what it found:
// byte count, chunk count, and any recoverable encoding faults.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tendril "github.com/go-tendril/tendril"
	"github.com/go-tendril/tendril/format"
	"github.com/go-tendril/tendril/sink"
)

// countingSink accumulates byte/chunk counts instead of content, so
// large inputs can be dumped without holding the whole thing in memory.
type countingSink struct {
	chunks int
	bytes  uint32
	faults []string
}

func (s *countingSink) Process(t tendril.Tendril[format.UTF8, tendril.NonAtomic]) error {
	s.chunks++
	s.bytes += t.Len()
	return nil
}

func (s *countingSink) HandleError(desc string) {
	s.faults = append(s.faults, desc)
}

func (s *countingSink) Finish() *countingSink { return s }

func main() {
	latin1 := flag.Bool("latin1", false, "treat input as ISO-8859-1 instead of UTF-8")
	flag.Parse()

	var r io.Reader = os.Stdin
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Failed to open file: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Printf("Failed to close file: %v", err)
			}
		}()
		r = f
	}

	result := &countingSink{}
	var err error
	if *latin1 {
		d := sink.NewISO88591Decoder[tendril.NonAtomic, *countingSink](result)
		err = streamThrough(r, d.Process)
		d.Finish()
	} else {
		v := sink.NewUTF8Validator[tendril.NonAtomic, *countingSink](result)
		err = streamThrough(r, v.Process)
		v.Finish()
	}
	if err != nil {
		log.Fatalf("Read error: %v", err)
	}

	fmt.Printf("chunks: %d\nbytes: %d\nfaults: %d\n", result.chunks, result.bytes, len(result.faults))
	for _, f := range result.faults {
		fmt.Printf("  - %s\n", f)
	}
}

func streamThrough(r io.Reader, process func(tendril.Tendril[format.Bytes, tendril.NonAtomic]) error) error {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := tendril.FromByteSliceUnchecked[format.Bytes, tendril.NonAtomic](buf[:n])
			if perr := process(chunk); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
