package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/genomekit/agc-go/pkg/agc"
)

func main() {
	prefetch := flag.Bool("prefetch", false, "preload the whole archive into memory")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: agc-go [-prefetch] <archive.agc>")
	}
	path := flag.Arg(0)

	log.Printf("agc-go version: %s", agc.Version)

	archive, err := agc.Open(path, *prefetch)
	if err != nil {
		if errors.Is(err, agc.ErrNotBuilt) {
			fmt.Printf("native bindings unavailable: %v\n", err)
			return
		}
		log.Fatalf("open %s: %v", path, err)
	}
	defer func() {
		if cerr := archive.Close(); cerr != nil {
			log.Printf("close error: %v", cerr)
		}
	}()

	if ref, err := archive.ReferenceSample(); err == nil {
		fmt.Printf("reference sample: %s\n", ref)
	}

	samples, err := archive.Samples()
	if err != nil {
		log.Fatalf("list samples: %v", err)
	}
	fmt.Printf("samples: %d\n", len(samples))
	for _, sample := range samples {
		n, err := archive.ContigCount(sample)
		if err != nil {
			log.Fatalf("contig count for %s: %v", sample, err)
		}
		fmt.Printf("  %s: %d contigs\n", sample, n)
	}
}
